package selection

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"cmodel/model"
)

func text(s string, selected bool) *model.Text {
	t := model.NewText(s, model.SegmentFormat{}, nil, nil)
	t.IsSelected = selected
	return t
}

func para(segments ...model.Segment) *model.Paragraph {
	p := model.NewParagraph(false, model.BlockFormat{}, nil, nil)
	p.SetSegments(segments...)
	return p
}

func describe(s model.Segment) string {
	switch v := s.(type) {
	case *model.Text:
		return v.Text
	case *model.SelectionMarker:
		return "|"
	}
	return s.SegmentType().String()
}

// record turns every callback invocation into a short string.
func record(group model.BlockGroup, opts *Options) []string {
	var visits []string
	IterateSelections(group, func(path []model.BlockGroup, table *TableContext, block model.Block, segments []model.Segment) bool {
		var b strings.Builder
		fmt.Fprintf(&b, "%s", path[0].BlockGroupType())
		if table != nil {
			fmt.Fprintf(&b, "@%d,%d", table.RowIndex, table.ColIndex)
		}
		if block != nil {
			fmt.Fprintf(&b, " %s", block.BlockType())
		}
		for _, s := range segments {
			fmt.Fprintf(&b, " %s", describe(s))
		}
		visits = append(visits, b.String())
		return false
	}, opts)
	return visits
}

func TestIterateSelections_Paragraphs(t *testing.T) {
	doc := model.NewDocument(nil)
	doc.AddBlock(para(text("a", false), text("b", true), text("c", true)))
	doc.AddBlock(para(text("d", false)))
	doc.AddBlock(para(model.NewSelectionMarker(model.SegmentFormat{})))

	got := record(doc, nil)
	want := []string{"Document Paragraph b c", "Document Paragraph |"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("visits mismatch (-want +got):\n%s", diff)
	}
}

func TestIterateSelections_ListFormatHolder(t *testing.T) {
	build := func(allSelected bool) *model.Document {
		doc := model.NewDocument(nil)
		li := model.NewListItem([]model.ListLevel{{}}, model.SegmentFormat{})
		li.AddBlock(para(text("x", true), text("y", allSelected)))
		doc.AddBlock(li)
		return doc
	}

	tests := []struct {
		name   string
		all    bool
		holder ListFormatHolder
		want   []string
	}{
		{"all selected", true, AllSegments, []string{"ListItem Paragraph x y", "Document |"}},
		{"partial", false, AllSegments, []string{"ListItem Paragraph x"}},
		{"partial any", false, AnySegment, []string{"ListItem Paragraph x", "Document |"}},
		{"never", true, Never, []string{"ListItem Paragraph x y"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := record(build(tt.all), &Options{IncludeListFormatHolder: tt.holder})
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("visits mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func newTable(selected ...bool) *model.Table {
	tbl := model.NewTable(1, model.TableFormat{})
	for i, sel := range selected {
		cell := model.NewTableCell(false, false, false, model.TableCellFormat{})
		cell.IsSelected = sel
		cell.AddBlock(para(text(fmt.Sprint(i), false)))
		tbl.SetCell(0, i, cell)
	}
	return tbl
}

func TestIterateSelections_Table(t *testing.T) {
	tests := []struct {
		name     string
		selected []bool
		content  TableCellContent
		want     []string
	}{
		{"include", []bool{true, false}, Include, []string{"Document@0,0", "TableCell@0,0 Paragraph 0"}},
		{"ignore for cell", []bool{true, false}, IgnoreForTableOrCell, []string{"Document@0,0"}},
		{"whole table included", []bool{true, true}, IgnoreForTable, []string{"Document Table"}},
		{"whole table cells", []bool{true, true}, Include, []string{
			"Document@0,0", "TableCell@0,0 Paragraph 0",
			"Document@0,1", "TableCell@0,1 Paragraph 1",
		}},
		{"partial table", []bool{false, true}, IgnoreForTable, []string{"Document@0,1", "TableCell@0,1 Paragraph 1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := model.NewDocument(nil)
			doc.AddBlock(newTable(tt.selected...))
			got := record(doc, &Options{ContentUnderSelectedTableCell: tt.content})
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("visits mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestIterateSelections_General(t *testing.T) {
	build := func() *model.Document {
		doc := model.NewDocument(nil)
		g := model.NewGeneralBlock(nil)
		g.IsSelected = true
		g.AddBlock(para(text("in", false)))
		doc.AddBlock(g)
		return doc
	}
	tests := []struct {
		name    string
		content GeneralContent
		want    []string
	}{
		{"content only", ContentOnly, []string{"General Paragraph in"}},
		{"element only", GeneralElementOnly, []string{"Document BlockGroup"}},
		{"both", GeneralElementAndContent, []string{"Document BlockGroup", "General Paragraph in"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := record(build(), &Options{ContentUnderSelectedGeneralElement: tt.content})
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("visits mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestIterateSelections_GeneralSegment(t *testing.T) {
	doc := model.NewDocument(nil)
	gs := model.NewGeneralSegment(nil, model.SegmentFormat{})
	gs.IsSelected = true
	gs.AddBlock(para(text("inner", false)))
	doc.AddBlock(para(text("a", false), gs))

	got := record(doc, &Options{ContentUnderSelectedGeneralElement: GeneralElementAndContent})
	want := []string{"General Paragraph inner", "Document Paragraph General"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("visits mismatch (-want +got):\n%s", diff)
	}
}

func TestIterateSelections_BlocksAndStop(t *testing.T) {
	doc := model.NewDocument(nil)
	hr := model.NewDivider("hr", model.DividerFormat{})
	hr.IsSelected = true
	e := model.NewEntity(nil, true, model.SegmentFormat{}, "e1", "x")
	e.IsSelected = true
	doc.AddBlock(hr)
	doc.AddBlock(e)
	doc.AddBlock(para(text("never", true)))

	var seen []model.Block
	stopped := IterateSelections(doc, func(_ []model.BlockGroup, _ *TableContext, block model.Block, _ []model.Segment) bool {
		seen = append(seen, block)
		return len(seen) == 2
	}, nil)
	if !stopped {
		t.Fatal("expected iteration to stop")
	}
	if len(seen) != 2 || seen[0] != hr || seen[1] != e {
		t.Errorf("unexpected blocks %v", seen)
	}
}

func TestQueries(t *testing.T) {
	marker := model.NewSelectionMarker(model.SegmentFormat{})
	p1 := para(text("a", false), marker)
	p2 := para(text("b", false))
	cell := model.NewTableCell(false, false, false, model.TableCellFormat{})
	cell.AddBlock(p1)
	tbl := model.NewTable(1, model.TableFormat{})
	tbl.SetCell(0, 0, cell)
	doc := model.NewDocument(nil)
	doc.AddBlock(p2)
	doc.AddBlock(tbl)

	ip := FindInsertPoint(doc)
	if ip == nil {
		t.Fatal("no insert point")
	}
	if ip.Marker != marker || ip.Paragraph != p1 || ip.Path[0] != model.BlockGroup(cell) {
		t.Errorf("wrong insert point %+v", ip)
	}
	if ip.Table == nil || ip.Table.Table != tbl {
		t.Errorf("wrong table context %+v", ip.Table)
	}
	if !HasSelection(doc) || !IsCollapsed(doc) {
		t.Error("expected collapsed selection")
	}

	p2.Segments()[0].SetSelected(true)
	if IsCollapsed(doc) {
		t.Error("selection should not be collapsed")
	}
	if got := GetSelectedParagraphs(doc); len(got) != 2 || got[0] != p2 || got[1] != p1 {
		t.Errorf("wrong paragraphs %v", got)
	}
	if got := GetSelectedSegments(doc, false); len(got) != 2 {
		t.Errorf("wrong segments %v", got)
	}

	empty := model.NewDocument(nil)
	empty.AddBlock(para(text("x", false)))
	if HasSelection(empty) || FindInsertPoint(empty) != nil || IsCollapsed(empty) {
		t.Error("unexpected selection in empty document")
	}
}
