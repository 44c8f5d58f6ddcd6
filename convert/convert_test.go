package convert

import (
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap/zaptest"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"cmodel/css"
	"cmodel/model"
)

func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id%d", n)
	}
}

// convertString converts body of src, caret "|" marks selection.
func convertString(t *testing.T, src string, opts ...Option) (*model.Document, *Context) {
	t.Helper()

	doc, err := ParseHTML(strings.NewReader(src), "text/html; charset=utf-8")
	if err != nil {
		t.Fatalf("ParseHTML() error = %v", err)
	}
	root, err := FindRoot(doc, "")
	if err != nil {
		t.Fatalf("FindRoot() error = %v", err)
	}
	sel, err := SelectionFromCaret(root, "|")
	if err != nil {
		t.Fatalf("SelectionFromCaret() error = %v", err)
	}

	all := []Option{WithLogger(zaptest.NewLogger(t)), WithIDGenerator(sequentialIDs())}
	if sel != nil {
		all = append(all, WithRegularSelection(sel))
	}
	ctx := NewContext(append(all, opts...)...)
	return Convert(root, ctx), ctx
}

func toJSON(t *testing.T, v any) string {
	t.Helper()
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		t.Fatalf("json.Marshal() error = %v", err)
	}
	return string(data)
}

func paragraphAt(t *testing.T, group model.BlockGroup, i int) *model.Paragraph {
	t.Helper()
	blocks := group.Blocks()
	if i >= len(blocks) {
		t.Fatalf("expected at least %d blocks, got %d\n%s", i+1, len(blocks), dumpGroup(group))
	}
	p, ok := blocks[i].(*model.Paragraph)
	if !ok {
		t.Fatalf("block %d is %T, expected paragraph", i, blocks[i])
	}
	return p
}

func dumpGroup(group model.BlockGroup) string {
	if doc, ok := group.(*model.Document); ok {
		return doc.String()
	}
	return fmt.Sprintf("%T with %d blocks", group, len(group.Blocks()))
}

// segmentKinds describes segments as "Text:he", "SelectionMarker" etc.
func segmentKinds(p *model.Paragraph) []string {
	var out []string
	for _, s := range p.Segments() {
		kind := s.SegmentType().String()
		if t, ok := s.(*model.Text); ok {
			kind += ":" + t.Text
			if t.IsSelected {
				kind += "*"
			}
		}
		out = append(out, kind)
	}
	return out
}

func TestStackFormat_RestoresSlots(t *testing.T) {
	ctx := NewContext()
	ctx.SegmentFormat.FontWeight = "bold"
	ctx.SegmentFormat.BackgroundColor = "red"
	ctx.BlockFormat.MarginLeft = "10px"
	ctx.BlockFormat.Direction = "rtl"
	before := *ctx

	StackFormat(ctx, StackOptions{Segment: ShallowCloneForBlock, Paragraph: ShallowCopyInherit, Link: LinkDefault, Code: CodeDefault}, func() {
		if ctx.SegmentFormat.BackgroundColor != "" {
			t.Errorf("background color leaked into block scope")
		}
		if ctx.SegmentFormat.FontWeight != "bold" {
			t.Errorf("font weight was not inherited")
		}
		if ctx.BlockFormat.MarginLeft != "" || ctx.BlockFormat.Direction != "rtl" {
			t.Errorf("unexpected inherited block format %+v", ctx.BlockFormat)
		}
		if ctx.Link == nil || !ctx.Link.Format.Underline {
			t.Errorf("link default is not underlined")
		}
		if ctx.Code == nil || ctx.Code.Format.FontFamily != "monospace" {
			t.Errorf("code default is not monospace")
		}
		ctx.SegmentFormat.Italic = true
	})

	if ctx.SegmentFormat != before.SegmentFormat || ctx.BlockFormat != before.BlockFormat || ctx.Link != nil || ctx.Code != nil {
		t.Errorf("slots were not restored")
	}
}

func TestStackFormat_RestoresOnPanic(t *testing.T) {
	ctx := NewContext()
	ctx.SegmentFormat.FontSize = "12pt"

	func() {
		defer func() {
			if recover() == nil {
				t.Fatalf("expected panic")
			}
		}()
		StackFormat(ctx, StackOptions{Segment: Empty, BlockDecorator: Empty}, func() {
			ctx.BlockDecorator = model.NewParagraphDecorator("h1", model.SegmentFormat{})
			panic("boom")
		})
	}()

	if ctx.SegmentFormat.FontSize != "12pt" {
		t.Errorf("segment format not restored: %+v", ctx.SegmentFormat)
	}
	if ctx.BlockDecorator != nil {
		t.Errorf("decorator not restored")
	}
}

func TestConvert_CollapsedSelection(t *testing.T) {
	doc, _ := convertString(t, `<div>he|llo</div>`)

	if len(doc.Blocks()) != 1 {
		t.Fatalf("expected single block:\n%s", doc)
	}
	p := paragraphAt(t, doc, 0)
	if p.IsImplicit {
		t.Errorf("paragraph of DIV must be explicit")
	}
	want := []string{"Text:he", "SelectionMarker", "Text:llo"}
	if diff := cmp.Diff(want, segmentKinds(p)); diff != "" {
		t.Errorf("segments mismatch (-want +got):\n%s", diff)
	}
}

func TestConvert_RangeSelection(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want []string
	}{
		{"inside text", `<div>a|bc|d</div>`, []string{"Text:a", "SelectionMarker", "Text:bc*", "SelectionMarker", "Text:d"}},
		{"across elements", `<div>a|b<b>c</b>d|e</div>`, []string{"Text:a", "SelectionMarker", "Text:b*", "Text:c*", "Text:d*", "SelectionMarker", "Text:e"}},
		{"runes", `<div>é|ß|ü</div>`, []string{"Text:é", "SelectionMarker", "Text:ß*", "SelectionMarker", "Text:ü"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, _ := convertString(t, tt.src)
			if diff := cmp.Diff(tt.want, segmentKinds(paragraphAt(t, doc, 0))); diff != "" {
				t.Errorf("segments mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConvert_SelectionByChildIndex(t *testing.T) {
	doc, err := ParseHTML(strings.NewReader(`<div><b>a</b><b>b</b><b>c</b></div>`), "")
	if err != nil {
		t.Fatal(err)
	}
	div, err := FindRoot(doc, "div")
	if err != nil {
		t.Fatal(err)
	}
	ctx := NewContext(WithRegularSelection(&RegularSelection{
		StartContainer: div, StartOffset: 1,
		EndContainer: div, EndOffset: 2,
	}))
	got := Convert(div, ctx)

	want := []string{"Text:a", "SelectionMarker", "Text:b*", "SelectionMarker", "Text:c"}
	if diff := cmp.Diff(want, segmentKinds(paragraphAt(t, got, 0))); diff != "" {
		t.Errorf("segments mismatch (-want +got):\n%s", diff)
	}
	if ctx.IsInSelection {
		t.Errorf("selection is still open after conversion")
	}
}

func TestConvert_OrderedList(t *testing.T) {
	doc, ctx := convertString(t, `<ol><li>A</li><li>B</li></ol>`)

	blocks := doc.Blocks()
	if len(blocks) != 2 {
		t.Fatalf("expected 2 list items:\n%s", doc)
	}
	for i, text := range []string{"A", "B"} {
		li, ok := blocks[i].(*model.ListItem)
		if !ok {
			t.Fatalf("block %d is %T", i, blocks[i])
		}
		if len(li.Levels) != 1 || li.Levels[0].Format.ListType != "OL" {
			t.Errorf("item %d levels = %+v", i, li.Levels)
		}
		p := paragraphAt(t, li, 0)
		if !p.IsImplicit {
			t.Errorf("item %d paragraph must be implicit", i)
		}
		if diff := cmp.Diff([]string{"Text:" + text}, segmentKinds(p)); diff != "" {
			t.Errorf("item %d segments (-want +got):\n%s", i, diff)
		}
	}
	if len(ctx.ListFormat.Levels) != 0 || ctx.ListFormat.ListParent != nil {
		t.Errorf("list state leaked: %+v", ctx.ListFormat)
	}
}

func TestConvert_NestedLists(t *testing.T) {
	doc, ctx := convertString(t, `<ul><li>a<ol><li>b</li><li>c</li></ol></li><li>d</li></ul><div>after</div>`)

	var depths []int
	for _, b := range doc.Blocks() {
		if li, ok := b.(*model.ListItem); ok {
			depths = append(depths, len(li.Levels))
		}
	}
	if diff := cmp.Diff([]int{1, 2, 2, 1}, depths); diff != "" {
		t.Errorf("list depths (-want +got):\n%s", diff)
	}
	last := paragraphAt(t, doc, len(doc.Blocks())-1)
	if diff := cmp.Diff([]string{"Text:after"}, segmentKinds(last)); diff != "" {
		t.Errorf("content after list (-want +got):\n%s", diff)
	}
	if len(ctx.ListFormat.Levels) != 0 {
		t.Errorf("levels are not balanced: %d left", len(ctx.ListFormat.Levels))
	}
}

func TestConvert_ListThreads(t *testing.T) {
	doc, _ := convertString(t, `<ol><li>a</li><li>b</li></ol><p>x</p><ol start="3"><li>c</li></ol><ol><li>d</li><li>e</li></ol>`)

	var items []*model.ListItem
	for _, b := range doc.Blocks() {
		if li, ok := b.(*model.ListItem); ok {
			items = append(items, li)
		}
	}
	if len(items) != 5 {
		t.Fatalf("expected 5 items:\n%s", doc)
	}
	thread := func(i int) model.ListThreadFormat { return items[i].Levels[0].Format.ListThreadFormat }

	if thread(0).StartNumberOverride != 0 || thread(0).ThreadID == "" {
		t.Errorf("first list: %+v", thread(0))
	}
	if thread(2).ThreadID != thread(0).ThreadID || thread(2).StartNumberOverride != 0 {
		t.Errorf("list starting at 3 must continue the thread: %+v vs %+v", thread(2), thread(0))
	}
	if thread(3).ThreadID == thread(0).ThreadID || thread(3).StartNumberOverride != 1 {
		t.Errorf("restarted list must start new thread with override: %+v", thread(3))
	}
	if thread(4).StartNumberOverride != 0 {
		t.Errorf("override must be kept on the first item only: %+v", thread(4))
	}
}

func TestConvert_ListMetadata(t *testing.T) {
	tests := []struct {
		name string
		info string
		keep bool
	}{
		{"valid", `{"orderedStyleType":3}`, true},
		{"out of range", `{"orderedStyleType":99}`, false},
		{"not json", `{orderedStyleType`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, _ := convertString(t, `<ol data-editing-info='`+tt.info+`'><li>a</li></ol>`)
			li := doc.Blocks()[0].(*model.ListItem)
			_, kept := li.Levels[0].Dataset[editingInfoKey]
			if kept != tt.keep {
				t.Errorf("editing info kept = %v, want %v", kept, tt.keep)
			}
		})
	}
}

func TestConvert_BareListItem(t *testing.T) {
	doc, _ := convertString(t, `<li>orphan</li>`)

	g, ok := doc.Blocks()[0].(*model.General)
	if !ok {
		t.Fatalf("expected general block:\n%s", doc)
	}
	if g.Element == nil || g.Element.Data != "li" {
		t.Errorf("general block must reference source element")
	}
	if diff := cmp.Diff([]string{"Text:orphan"}, segmentKinds(paragraphAt(t, g, 0))); diff != "" {
		t.Errorf("content (-want +got):\n%s", diff)
	}
}

func TestConvert_NestedDivsAreIdempotent(t *testing.T) {
	single, _ := convertString(t, `<div>x</div>`)
	for _, src := range []string{
		`<div><div>x</div></div>`,
		`<div><div><div>x</div></div></div>`,
	} {
		nested, _ := convertString(t, src)
		if diff := cmp.Diff(toJSON(t, single), toJSON(t, nested)); diff != "" {
			t.Errorf("%s (-single +nested):\n%s", src, diff)
		}
	}
}

func TestConvert_Heading(t *testing.T) {
	doc, _ := convertString(t, `<h1>Title</h1><p>text</p>`)

	h := paragraphAt(t, doc, 0)
	if h.Decorator == nil || h.Decorator.TagName != "h1" {
		t.Fatalf("heading decorator = %+v", h.Decorator)
	}
	if h.Decorator.Format.FontWeight != "bold" {
		t.Errorf("heading weight = %q", h.Decorator.Format.FontWeight)
	}
	if h.Format.MarginTop != "0.67em" {
		t.Errorf("heading margin = %q", h.Format.MarginTop)
	}
	if txt := h.Segments()[0].(*model.Text); txt.Format.FontWeight != "" {
		t.Errorf("heading format leaked into text: %+v", txt.Format)
	}

	p := paragraphAt(t, doc, 1)
	if p.Decorator == nil || p.Decorator.TagName != "p" {
		t.Errorf("p decorator = %+v", p.Decorator)
	}
}

func TestConvert_InlineFormats(t *testing.T) {
	doc, _ := convertString(t,
		`<div style="color: red">a<b>b<i>c</i></b><span style="font-size: 20px; background-color: yellow">d</span><sup><sub>e</sub></sup></div>`)

	p := paragraphAt(t, doc, 0)
	segs := p.Segments()
	if len(segs) != 5 {
		t.Fatalf("expected 5 segments:\n%s", doc)
	}
	format := func(i int) model.SegmentFormat { return *segs[i].SegmentFormat() }

	if format(0).TextColor != "red" {
		t.Errorf("color is not inherited from block: %+v", format(0))
	}
	if format(1).FontWeight != "bold" || format(1).Italic {
		t.Errorf("b format = %+v", format(1))
	}
	if format(2).FontWeight != "bold" || !format(2).Italic {
		t.Errorf("i format = %+v", format(2))
	}
	if format(3).FontSize != "20px" || format(3).BackgroundColor != "yellow" {
		t.Errorf("span format = %+v", format(3))
	}
	if format(4).SuperOrSubScriptSequence != "super sub" {
		t.Errorf("sup/sub sequence = %q", format(4).SuperOrSubScriptSequence)
	}
}

func TestConvert_Font(t *testing.T) {
	tests := []struct {
		src  string
		want model.SegmentFormat
	}{
		{`<font size="5" face="Arial" color="red">x</font>`, model.SegmentFormat{
			TextColorFormat:  model.TextColorFormat{TextColor: "red"},
			FontSizeFormat:   model.FontSizeFormat{FontSize: "24px"},
			FontFamilyFormat: model.FontFamilyFormat{FontFamily: "Arial"},
		}},
		{`<font size="12">x</font>`, model.SegmentFormat{FontSizeFormat: model.FontSizeFormat{FontSize: "48px"}}},
		{`<font size="+1" style="font-size: 9px">x</font>`, model.SegmentFormat{FontSizeFormat: model.FontSizeFormat{FontSize: "9px"}}},
		{`<font size="huge">x</font>`, model.SegmentFormat{}},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			doc, _ := convertString(t, tt.src)
			got := *paragraphAt(t, doc, 0).Segments()[0].SegmentFormat()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("format (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConvert_Link(t *testing.T) {
	doc, _ := convertString(t, `<div><a href="https://example.com" target="_blank" data-x="1">go</a> on <a name="anchor">here</a></div>`)

	segs := paragraphAt(t, doc, 0).Segments()
	link, _ := segs[0].Decorators()
	if link == nil {
		t.Fatalf("link decorator missing:\n%s", doc)
	}
	if link.Format.Href != "https://example.com" || link.Format.Target != "_blank" || !link.Format.Underline {
		t.Errorf("link format = %+v", link.Format)
	}
	if link.Dataset["x"] != "1" {
		t.Errorf("link dataset = %v", link.Dataset)
	}
	for _, s := range segs[1:] {
		if l, _ := s.Decorators(); l != nil {
			t.Errorf("anchor without href must not produce link: %+v", l)
		}
	}
}

func TestConvert_Code(t *testing.T) {
	doc, _ := convertString(t, `<div>a<code>b</code></div><pre>  x
  y</pre>`)

	segs := paragraphAt(t, doc, 0).Segments()
	_, code := segs[1].Decorators()
	if code == nil || code.Format.FontFamily != "monospace" {
		t.Errorf("code decorator = %+v", code)
	}
	if _, c := segs[0].Decorators(); c != nil {
		t.Errorf("code decorator leaked to preceding text")
	}

	pre := paragraphAt(t, doc, 1)
	if diff := cmp.Diff([]string{"Text:  x\n  y"}, segmentKinds(pre)); diff != "" {
		t.Errorf("white space of pre is not preserved (-want +got):\n%s", diff)
	}
}

func TestConvert_WhiteSpace(t *testing.T) {
	doc, _ := convertString(t, "<div>\n   a\n   b  <br>   c</div>\n   ")

	if len(doc.Blocks()) != 1 {
		t.Fatalf("white space only text must not create paragraphs:\n%s", doc)
	}
	want := []string{"Text:a b ", "Br", "Text:c"}
	if diff := cmp.Diff(want, segmentKinds(paragraphAt(t, doc, 0))); diff != "" {
		t.Errorf("segments (-want +got):\n%s", diff)
	}
}

func TestConvert_Table(t *testing.T) {
	doc, _ := convertString(t, `<table>
<tr><td colspan="2" style="width: 30px">a</td></tr>
<tr><th style="width: 10px; height: 5px">b</th><td style="width: 20px">c</td></tr>
</table>`)

	table, ok := doc.Blocks()[0].(*model.Table)
	if !ok {
		t.Fatalf("expected table:\n%s", doc)
	}
	if len(table.Rows()) != 2 || table.ColumnCount() != 2 {
		t.Fatalf("table is %dx%d", len(table.Rows()), table.ColumnCount())
	}
	if c := table.Cell(0, 1); c == nil || !c.SpanLeft {
		t.Errorf("cell 0,1 must be span placeholder")
	}
	if c := table.Cell(1, 0); c == nil || !c.IsHeader {
		t.Errorf("cell 1,0 must be header")
	}
	if diff := cmp.Diff([]float64{10, 20}, table.Widths); diff != "" {
		t.Errorf("widths (-want +got):\n%s", diff)
	}
	if h := table.Rows()[1].Height; h != 5 {
		t.Errorf("row height = %v", h)
	}
	if diff := cmp.Diff([]string{"Text:c"}, segmentKinds(paragraphAt(t, table.Cell(1, 1), 0))); diff != "" {
		t.Errorf("cell content (-want +got):\n%s", diff)
	}
}

type fixedMeasurer struct{ w, h float64 }

func (m fixedMeasurer) BoundingRect(*html.Node) (float64, float64, bool) { return m.w, m.h, true }

func TestConvert_TableMeasuredAndSelected(t *testing.T) {
	src := `<table id="t"><tr><td>a</td><td>b</td></tr><tr><td rowspan="2">c</td><td>d</td></tr></table>`
	doc, err := ParseHTML(strings.NewReader(src), "")
	if err != nil {
		t.Fatal(err)
	}
	tableEl, err := FindRoot(doc, "#t")
	if err != nil {
		t.Fatal(err)
	}
	body, _ := FindRoot(doc, "")

	ctx := NewContext(
		WithMeasurer(fixedMeasurer{w: 100, h: 40}),
		WithZoomScale(2),
		WithTableSelection(&TableSelection{Table: tableEl, FirstCell: Coordinates{Row: 1, Col: 1}, LastCell: Coordinates{Row: 0, Col: 1}}),
	)
	table := Convert(body, ctx).Blocks()[0].(*model.Table)

	if diff := cmp.Diff([]float64{50, 50}, table.Widths); diff != "" {
		t.Errorf("widths (-want +got):\n%s", diff)
	}
	for r, row := range table.Rows() {
		for c, cell := range row.Cells() {
			want := c == 1
			if cell.IsSelected != want {
				t.Errorf("cell %d,%d selected = %v", r, c, cell.IsSelected)
			}
		}
	}
}

func TestConvert_Blockquote(t *testing.T) {
	t.Run("quote", func(t *testing.T) {
		doc, _ := convertString(t, `<blockquote>q</blockquote>`)
		q, ok := doc.Blocks()[0].(*model.Quote)
		if !ok {
			t.Fatalf("expected quote:\n%s", doc)
		}
		if q.Format.MarginLeft != "40px" {
			t.Errorf("quote format = %+v", q.Format)
		}
		if p := paragraphAt(t, q, 0); p.Format.MarginLeft != "" {
			t.Errorf("indentation leaked into quote content: %+v", p.Format)
		}
	})
	t.Run("indentation", func(t *testing.T) {
		doc, _ := convertString(t, `<blockquote style="margin-top: 0; margin-bottom: 0">q</blockquote>`)
		p := paragraphAt(t, doc, 0)
		if p.Format.MarginLeft != "40px" || p.Format.MarginTop != "0" {
			t.Errorf("indented paragraph format = %+v", p.Format)
		}
	})
	t.Run("vertical margins", func(t *testing.T) {
		doc, _ := convertString(t, `<blockquote style="margin-top: 10px; margin-bottom: 0">q</blockquote>`)
		if _, ok := doc.Blocks()[0].(*model.Quote); !ok {
			t.Fatalf("expected quote:\n%s", doc)
		}
	})
}

func TestIsIndentation(t *testing.T) {
	tests := []struct {
		style string
		want  bool
	}{
		{"margin-top: 0; margin-bottom: 0", true},
		{"margin-top: 0px; margin-bottom: 0em", true},
		{"margin-top: 1em; margin-bottom: 1em", false},
		{"margin-top: 0; margin-bottom: 2px", false},
		{"margin-top: auto; margin-bottom: 0", false},
		{"margin-top: 0", false},
		{"margin-top: 0; margin-bottom: 0; color: red", false},
	}
	for _, tt := range tests {
		if got := isIndentation(css.ParseInline(tt.style)); got != tt.want {
			t.Errorf("isIndentation(%q) = %v, want %v", tt.style, got, tt.want)
		}
	}
}

func TestConvert_FormatContainer(t *testing.T) {
	doc, _ := convertString(t, `<div style="border: 1px solid red; margin-left: 10px"><div>a</div><div>b</div></div>`)

	fc, ok := doc.Blocks()[0].(*model.FormatContainer)
	if !ok {
		t.Fatalf("expected format container:\n%s", doc)
	}
	if fc.TagName != "div" || fc.Format.BorderTop != "1px solid red" || fc.Format.MarginLeft != "10px" {
		t.Errorf("container = %s %+v", fc.TagName, fc.Format)
	}
	if len(fc.Blocks()) != 2 {
		t.Fatalf("expected 2 paragraphs inside container:\n%s", doc)
	}
	if p := paragraphAt(t, fc, 0); p.Format.MarginLeft != "" {
		t.Errorf("container margin duplicated on child: %+v", p.Format)
	}
}

func TestConvert_IndentationAccumulates(t *testing.T) {
	doc, _ := convertString(t, `<div style="margin-left: 20px"><div style="padding-left: 5px">x</div></div>`)

	p := paragraphAt(t, doc, 0)
	if p.Format.MarginLeft != "20px" || p.Format.PaddingLeft != "5px" {
		t.Errorf("nested block format = %+v", p.Format)
	}
}

func TestConvert_ZeroFontSize(t *testing.T) {
	doc, _ := convertString(t, `<div style="font-size: 0">x</div>`)

	p := paragraphAt(t, doc, 0)
	if !p.ZeroFontSize {
		t.Errorf("zero font size not detected")
	}
	if fs := p.Segments()[0].SegmentFormat().FontSize; fs != "" {
		t.Errorf("zero font size leaked into text: %q", fs)
	}
}

func TestConvert_Entity(t *testing.T) {
	doc, _ := convertString(t, `<div>a<span class="_Entity _EType_mention _EReadonly_1">@bob</span><div class="_Entity _EType_card _EId_c1">card</div></div>`)

	p := paragraphAt(t, doc, 0)
	e, ok := p.Segments()[1].(*model.Entity)
	if !ok {
		t.Fatalf("expected inline entity:\n%s", doc)
	}
	if e.EntityType != "mention" || !e.IsReadonly || e.ID != "mention_id1" {
		t.Errorf("inline entity = %+v", e)
	}

	var block *model.Entity
	for _, b := range doc.Blocks() {
		if e, ok := b.(*model.Entity); ok {
			block = e
		}
	}
	if block == nil || block.ID != "c1" || block.IsReadonly {
		t.Errorf("block entity = %+v", block)
	}
}

func TestConvert_GeneralElements(t *testing.T) {
	doc, _ := convertString(t, `<div>a<custom-tag>b</custom-tag></div><video style="display: block"></video>`)

	p := paragraphAt(t, doc, 0)
	g, ok := p.Segments()[1].(*model.GeneralSegment)
	if !ok {
		t.Fatalf("expected general segment:\n%s", doc)
	}
	if diff := cmp.Diff([]string{"Text:b"}, segmentKinds(paragraphAt(t, g, 0))); diff != "" {
		t.Errorf("general segment content (-want +got):\n%s", diff)
	}
	if _, ok := doc.Blocks()[1].(*model.General); !ok {
		t.Errorf("block element without processor must become general block:\n%s", doc)
	}
}

func TestConvert_SkipsHiddenAndScripts(t *testing.T) {
	doc, _ := convertString(t, `<div>a<span style="display:none">hidden</span><script>var x;</script>b</div>`)

	if diff := cmp.Diff([]string{"Text:ab"}, segmentKinds(paragraphAt(t, doc, 0))); diff != "" {
		t.Errorf("segments (-want +got):\n%s", diff)
	}
}

func TestConvert_Image(t *testing.T) {
	src := `<div><img id="i" src="a.png" alt="A" width="20" style="height: 10px"></div>`
	doc, err := ParseHTML(strings.NewReader(src), "")
	if err != nil {
		t.Fatal(err)
	}
	imgEl, _ := FindRoot(doc, "#i")
	body, _ := FindRoot(doc, "")

	got := Convert(body, NewContext(WithImageSelection(&ImageSelection{Image: imgEl})))
	img, ok := paragraphAt(t, got, 0).Segments()[0].(*model.Image)
	if !ok {
		t.Fatalf("expected image:\n%s", got)
	}
	if img.Src != "a.png" || img.Alt != "A" || img.Format.Width != "20px" || img.Format.Height != "10px" {
		t.Errorf("image = %+v", img)
	}
	if !img.IsSelected || !img.IsSelectedAsImageSelection {
		t.Errorf("image selection is not reflected")
	}
}

func TestConvert_CachedElements(t *testing.T) {
	src := `<div id="d">x</div>`
	doc, err := ParseHTML(strings.NewReader(src), "")
	if err != nil {
		t.Fatal(err)
	}
	div, _ := FindRoot(doc, "#d")
	body, _ := FindRoot(doc, "")

	got := Convert(body, NewContext(WithAllowCacheElement(true)))
	if el := paragraphAt(t, got, 0).CachedElement(); el != div {
		t.Errorf("cached element = %v, want source div", el)
	}

	got = Convert(body, NewContext())
	if el := paragraphAt(t, got, 0).CachedElement(); el != nil {
		t.Errorf("element cached without permission")
	}
}

func TestConvert_ProcessorOverride(t *testing.T) {
	var seen []string
	doc, _ := convertString(t, `<div>a<b>b</b><span>c</span><i>d</i></div>`,
		WithProcessorOverride(atom.B, func(group model.BlockGroup, el *html.Node, ctx *Context) {
			seen = append(seen, el.Data)
			ctx.Processors.Child(group, el, ctx)
		}),
		WithProcessorOverride(atom.I, nil),
		WithAdditionalFormatParsers(func(p *FormatParsers) {
			p.Segment = append(p.Segment, func(f *model.SegmentFormat, el *html.Node, _ *Context, _ css.Style) {
				if el.Data == "span" {
					f.Lang = "x-test"
				}
			})
		}))

	if diff := cmp.Diff([]string{"b"}, seen); diff != "" {
		t.Errorf("override calls (-want +got):\n%s", diff)
	}
	p := paragraphAt(t, doc, 0)
	if diff := cmp.Diff([]string{"Text:ab", "Text:c", "General"}, segmentKinds(p)); diff != "" {
		t.Errorf("segments (-want +got):\n%s", diff)
	}
	if f := p.Segments()[1].SegmentFormat(); f.Lang != "x-test" {
		t.Errorf("additional parser was not run: %+v", f)
	}
}

func TestSelectionFromCaret(t *testing.T) {
	doc, err := ParseHTML(strings.NewReader(`<p>a|b</p><p>c|d|e</p>`), "")
	if err != nil {
		t.Fatal(err)
	}
	body, _ := FindRoot(doc, "")
	if _, err := SelectionFromCaret(body, "|"); err == nil {
		t.Errorf("expected error for three carets")
	}
	if _, err := SelectionFromCaret(body, ""); err == nil {
		t.Errorf("expected error for empty caret")
	}
}

func TestFindRoot(t *testing.T) {
	doc, err := ParseHTML(strings.NewReader(`<div class="a"><p class="b">x</p></div>`), "")
	if err != nil {
		t.Fatal(err)
	}
	if n, err := FindRoot(doc, ".a .b"); err != nil || n.Data != "p" {
		t.Errorf("FindRoot() = %v, %v", n, err)
	}
	if _, err := FindRoot(doc, ".missing"); err == nil {
		t.Errorf("expected error for missing root")
	}
}
