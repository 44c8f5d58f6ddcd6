package model

import (
	"encoding/json"
	"strings"
	"testing"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

func element(a atom.Atom) *html.Node {
	return &html.Node{Type: html.ElementNode, DataAtom: a, Data: a.String()}
}

func TestCache_StructuralMutationInvalidates(t *testing.T) {
	el := element(atom.Div)

	p := NewParagraph(false, BlockFormat{}, nil, nil)
	fc := NewFormatContainer("div", FormatContainerFormat{})
	cell := NewTableCell(false, false, false, TableCellFormat{})
	cell.SetBlocks(NewParagraph(true, BlockFormat{}, nil, nil))
	table := NewTable(1, TableFormat{})

	tests := []struct {
		name   string
		cache  *Cache
		mutate func()
	}{
		{"paragraph add", &p.Cache, func() { p.AddSegment(NewBr(SegmentFormat{})) }},
		{"paragraph implicit flip", &p.Cache, func() { p.IsImplicit = true; p.SetNotImplicit() }},
		{"container set blocks", &fc.Cache, func() { fc.SetBlocks(NewParagraph(true, BlockFormat{}, nil, nil)) }},
		{"cell replace", &cell.Cache, func() { cell.ReplaceBlockAt(0, NewDivider("hr", DividerFormat{})) }},
		{"table set cell", &table.Cache, func() { table.SetCell(0, 0, cell) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.cache.SetCachedElement(el)
			if tt.cache.CachedElement() != el {
				t.Fatalf("expected cached element before mutation")
			}
			tt.mutate()
			if tt.cache.CachedElement() != nil {
				t.Errorf("cached element survived structural mutation")
			}
			if !tt.cache.Dirty() {
				t.Errorf("node is not marked dirty")
			}
		})
	}
}

func TestCreators_CopyFormats(t *testing.T) {
	sf := SegmentFormat{}
	sf.FontSize = "10px"
	text := NewText("a", sf, nil, nil)
	sf.FontSize = "20px"
	if text.Format.FontSize != "10px" {
		t.Errorf("text format aliases caller state: %q", text.Format.FontSize)
	}

	ds := DatasetFormat{"k": "v"}
	levels := []ListLevel{{Format: ListLevelFormat{ListTypeFormat: ListTypeFormat{ListType: "OL"}}, Dataset: ds}}
	li := NewListItem(levels, SegmentFormat{})
	ds["k"] = "changed"
	levels[0].Format.ListType = "UL"
	if li.Levels[0].Format.ListType != "OL" || li.Levels[0].Dataset["k"] != "v" {
		t.Errorf("list item levels alias caller state: %+v", li.Levels[0])
	}
	if li.FormatHolder == nil || li.FormatHolder.IsSelected {
		t.Errorf("format holder must exist and start unselected")
	}

	m := NewSelectionMarker(SegmentFormat{})
	if !m.IsSelected {
		t.Errorf("selection marker must be selected")
	}

	p := NewParagraph(true, BlockFormat{}, &SegmentFormat{}, nil)
	if p.SegmentFormat != nil {
		t.Errorf("empty segment format should not be stored")
	}
}

func TestSameLink(t *testing.T) {
	a := NewLink(HyperLinkFormat{LinkFormat: LinkFormat{Href: "http://a"}}, DatasetFormat{"x": "1"})
	b := NewLink(HyperLinkFormat{LinkFormat: LinkFormat{Href: "http://a"}}, DatasetFormat{"x": "1"})
	c := NewLink(HyperLinkFormat{LinkFormat: LinkFormat{Href: "http://a"}}, DatasetFormat{"x": "2"})

	if !SameLink(a, b) {
		t.Errorf("equal links reported different")
	}
	if SameLink(a, c) {
		t.Errorf("different datasets reported equal")
	}
	if SameLink(a, nil) || !SameLink(nil, nil) {
		t.Errorf("nil handling is wrong")
	}
}

func TestTable_SetCellGrows(t *testing.T) {
	table := NewTable(0, TableFormat{})
	table.SetCell(1, 2, NewTableCell(false, false, false, TableCellFormat{}))
	if len(table.Rows()) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(table.Rows()))
	}
	if table.ColumnCount() != 3 {
		t.Errorf("expected 3 columns, got %d", table.ColumnCount())
	}
	if table.Cell(0, 0) != nil || table.Cell(1, 2) == nil || table.Cell(5, 5) != nil {
		t.Errorf("unexpected cell lookup results")
	}
}

func TestJSON_Tags(t *testing.T) {
	doc := NewDocument(nil)
	p := NewParagraph(false, BlockFormat{}, nil, nil)
	sf := SegmentFormat{}
	sf.FontWeight = "bold"
	p.AddSegment(NewText("hello", sf, nil, nil))
	p.AddSegment(NewSelectionMarker(SegmentFormat{}))
	doc.AddBlock(p)

	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	s := string(data)
	for _, want := range []string{
		`"blockGroupType":"Document"`,
		`"blockType":"Paragraph"`,
		`"segmentType":"Text"`,
		`"text":"hello"`,
		`"fontWeight":"bold"`,
		`"segmentType":"SelectionMarker"`,
		`"isSelected":true`,
	} {
		if !strings.Contains(s, want) {
			t.Errorf("json %s does not contain %s", s, want)
		}
	}
	if strings.Contains(s, `"isImplicit"`) {
		t.Errorf("unset flags must be omitted: %s", s)
	}
}

func TestDocument_String(t *testing.T) {
	doc := NewDocument(nil)
	p := NewParagraph(true, BlockFormat{}, nil, NewParagraphDecorator("h1", SegmentFormat{}))
	p.AddSegment(NewText("hi", SegmentFormat{}, nil, nil))
	doc.AddBlock(p)

	got := doc.String()
	want := "Document\n  Paragraph implicit decorator=h1\n    Text \"hi\"\n"
	if got != want {
		t.Errorf("unexpected dump:\n%s\nwant:\n%s", got, want)
	}
}

func TestNodeKindNames(t *testing.T) {
	for _, name := range SegmentTypeNames() {
		st, err := ParseSegmentType(name)
		if err != nil {
			t.Fatalf("ParseSegmentType(%q) error = %v", name, err)
		}
		text, _ := st.MarshalText()
		if string(text) != name {
			t.Errorf("MarshalText() = %q, want %q", text, name)
		}
	}
	if got := BlockGroupTypeTableCell.String(); got != "TableCell" {
		t.Errorf("BlockGroupTypeTableCell = %q", got)
	}
	if got := BlockType(42).String(); got != "BlockType(42)" {
		t.Errorf("unknown block type = %q", got)
	}
	var bt BlockType
	if err := bt.UnmarshalText([]byte("Divider")); err != nil || bt != BlockTypeDivider {
		t.Errorf("UnmarshalText() = %v, %v", bt, err)
	}
	if err := bt.UnmarshalText([]byte("Heading")); err == nil {
		t.Error("expected error for unknown block type")
	}
}
