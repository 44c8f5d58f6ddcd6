package formatting

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.uber.org/zap/zaptest"

	"cmodel/convert"
	"cmodel/model"
)

func convertString(t *testing.T, src string) *model.Document {
	t.Helper()
	doc, err := convert.ConvertHTML(strings.NewReader(src), "text/html; charset=utf-8", "", "|",
		convert.WithLogger(zaptest.NewLogger(t)))
	if err != nil {
		t.Fatalf("unable to convert %q: %v", src, err)
	}
	return doc
}

func text(s string, selected bool) *model.Text {
	t := model.NewText(s, model.SegmentFormat{}, nil, nil)
	t.IsSelected = selected
	return t
}

func marker() *model.SelectionMarker {
	return model.NewSelectionMarker(model.SegmentFormat{})
}

func docOf(blocks ...model.Block) *model.Document {
	doc := model.NewDocument(nil)
	for _, b := range blocks {
		doc.AddBlock(b)
	}
	return doc
}

func para(segments ...model.Segment) *model.Paragraph {
	p := model.NewParagraph(false, model.BlockFormat{}, nil, nil)
	p.SetSegments(segments...)
	return p
}

// describe lists segments as "Text:ab{10px}", font size in braces when set.
func describe(p *model.Paragraph) []string {
	var out []string
	for _, s := range p.Segments() {
		d := s.SegmentType().String()
		if t, ok := s.(*model.Text); ok {
			d += ":" + t.Text
		}
		if size := s.SegmentFormat().FontSize; size != "" {
			d += "{" + size + "}"
		}
		out = append(out, d)
	}
	return out
}

func TestApplyPendingFormat(t *testing.T) {
	tests := []struct {
		name     string
		segments []model.Segment
		data     string
		want     []string
		changed  bool
	}{
		{
			"typed before caret", []model.Segment{text("abc", false), marker()}, "c",
			[]string{"Text:ab", "Text:c{10px}", "SelectionMarker{10px}"}, true,
		},
		{
			"caret before typed text", []model.Segment{text("ab", false), marker(), text("c", false)}, "c",
			[]string{"Text:ab", "Text:c{10px}", "SelectionMarker{10px}"}, true,
		},
		{
			"whole text typed", []model.Segment{text("c", false), marker()}, "c",
			[]string{"Text:c{10px}", "SelectionMarker{10px}"}, true,
		},
		{
			"non breaking space", []model.Segment{text("a\u00a0", false), marker()}, " ",
			[]string{"Text:a", "Text:\u00a0{10px}", "SelectionMarker{10px}"}, true,
		},
		{
			"mismatch", []model.Segment{text("ab", false), marker()}, "x",
			[]string{"Text:ab", "SelectionMarker"}, false,
		},
		{
			"range selection", []model.Segment{marker(), text("ab", true), marker()}, "b",
			[]string{"SelectionMarker", "Text:ab", "SelectionMarker"}, false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := model.NewParagraph(true, model.BlockFormat{}, nil, nil)
			p.SetSegments(tt.segments...)
			doc := docOf(p)

			changed := ApplyPendingFormat(doc, tt.data, model.SegmentFormat{FontSizeFormat: model.FontSizeFormat{FontSize: "10px"}})
			if changed != tt.changed {
				t.Errorf("expected changed=%t, got %t", tt.changed, changed)
			}
			if diff := cmp.Diff(tt.want, describe(p)); diff != "" {
				t.Errorf("segments mismatch (-want +got):\n%s", diff)
			}
			if changed && p.IsImplicit {
				t.Errorf("paragraph must become explicit")
			}
		})
	}
}

func TestApplyPendingFormat_KeepsDecorators(t *testing.T) {
	link := model.NewLink(model.HyperLinkFormat{LinkFormat: model.LinkFormat{Href: "https://example.com"}}, nil)
	typed := model.NewText("ab", model.SegmentFormat{ItalicFormat: model.ItalicFormat{Italic: true}}, link, nil)
	p := para(typed, marker())

	if !ApplyPendingFormat(docOf(p), "b", model.SegmentFormat{BoldFormat: model.BoldFormat{FontWeight: "bold"}}) {
		t.Fatal("expected model to change")
	}
	got, ok := p.Segments()[1].(*model.Text)
	if !ok {
		t.Fatalf("expected text, got %T", p.Segments()[1])
	}
	if !got.Format.Italic || got.Format.FontWeight != "bold" {
		t.Errorf("format is not merged: %+v", got.Format)
	}
	if l, _ := got.Decorators(); !model.SameLink(l, link) || l == link {
		t.Errorf("link decorator must be copied")
	}
}

func TestToggleBold(t *testing.T) {
	doc := convertString(t, `<div>a|bc|d</div>`)
	p := doc.Blocks()[0].(*model.Paragraph)
	segs := p.Segments()

	if !ToggleBold(doc) {
		t.Fatal("nothing was selected")
	}
	if w := segs[2].SegmentFormat().FontWeight; w != "bold" {
		t.Errorf("selected text weight = %q", w)
	}
	if w := segs[1].SegmentFormat().FontWeight; w != "bold" {
		t.Errorf("caret has to follow selected text, weight = %q", w)
	}
	if w := segs[0].SegmentFormat().FontWeight; w != "" {
		t.Errorf("unselected text changed: %q", w)
	}
	if !RetrieveFormatState(doc).IsBold {
		t.Errorf("state is not bold after toggle")
	}

	ToggleBold(doc)
	if w := segs[2].SegmentFormat().FontWeight; w != "normal" {
		t.Errorf("second toggle weight = %q", w)
	}
}

func TestToggleBold_Mixed(t *testing.T) {
	doc := convertString(t, `<div>|a<b>b</b>|</div>`)
	if RetrieveFormatState(doc).IsBold {
		t.Errorf("mixed selection must not be reported bold")
	}
	ToggleBold(doc)
	for _, s := range doc.Blocks()[0].(*model.Paragraph).Segments() {
		if !IsBold(s.SegmentFormat().FontWeight) {
			t.Errorf("%s is not bold", s.SegmentType())
		}
	}
}

func TestToggleBold_Heading(t *testing.T) {
	p := model.NewParagraph(false, model.BlockFormat{}, nil,
		model.NewParagraphDecorator("h1", model.SegmentFormat{BoldFormat: model.BoldFormat{FontWeight: "bold"}}))
	sel := text("title", true)
	p.SetSegments(marker(), sel, marker())
	doc := docOf(p)

	state := RetrieveFormatState(doc)
	if !state.IsBold || state.HeadingLevel != 1 {
		t.Errorf("heading state = %+v", state)
	}
	ToggleBold(doc)
	if sel.Format.FontWeight != "normal" {
		t.Errorf("heading bold has to be turned off, got %q", sel.Format.FontWeight)
	}
	if RetrieveFormatState(doc).IsBold {
		t.Errorf("explicit weight must win over heading")
	}
}

func TestToggle_Collapsed(t *testing.T) {
	doc := convertString(t, `<div>ab|</div>`)
	p := doc.Blocks()[0].(*model.Paragraph)

	if !ToggleItalic(doc) {
		t.Fatal("caret has to count as selection")
	}
	segs := p.Segments()
	if segs[0].SegmentFormat().Italic {
		t.Errorf("text outside selection changed")
	}
	if !segs[1].SegmentFormat().Italic {
		t.Errorf("caret has to carry pending format")
	}
	state := RetrieveFormatState(doc)
	if !state.IsItalic || !state.IsCollapsed {
		t.Errorf("state = %+v", state)
	}
}

func TestToggle_Flags(t *testing.T) {
	tests := []struct {
		name   string
		toggle func(*model.Document) bool
		get    func(model.SegmentFormat) bool
	}{
		{"underline", ToggleUnderline, func(f model.SegmentFormat) bool { return f.Underline }},
		{"strikethrough", ToggleStrikethrough, func(f model.SegmentFormat) bool { return f.Strikethrough }},
		{"italic", ToggleItalic, func(f model.SegmentFormat) bool { return f.Italic }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := text("x", true)
			doc := docOf(para(marker(), sel, marker()))
			tt.toggle(doc)
			if !tt.get(sel.Format) {
				t.Errorf("not turned on: %+v", sel.Format)
			}
			tt.toggle(doc)
			if tt.get(sel.Format) {
				t.Errorf("not turned off: %+v", sel.Format)
			}
		})
	}
}

func TestToggleScripts(t *testing.T) {
	tests := []struct {
		name    string
		initial string
		toggles []func(*model.Document) bool
		want    string
	}{
		{"superscript", "", []func(*model.Document) bool{ToggleSuperscript}, "super"},
		{"superscript off", "super", []func(*model.Document) bool{ToggleSuperscript}, ""},
		{"replace subscript", "sub", []func(*model.Document) bool{ToggleSuperscript}, "super"},
		{"nested", "super sub", []func(*model.Document) bool{ToggleSubscript}, "super"},
		{"nest into", "super", []func(*model.Document) bool{ToggleSubscript}, "super sub"},
		{"round trip", "", []func(*model.Document) bool{ToggleSubscript, ToggleSubscript}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := text("x", true)
			sel.Format.SuperOrSubScriptSequence = tt.initial
			doc := docOf(para(marker(), sel, marker()))
			for _, toggle := range tt.toggles {
				toggle(doc)
			}
			if got := sel.Format.SuperOrSubScriptSequence; got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestSetters(t *testing.T) {
	sel := text("x", true)
	li := model.NewListItem([]model.ListLevel{{}}, model.SegmentFormat{})
	li.AddBlock(para(sel))
	doc := docOf(li)

	SetFontSize(doc, "12pt")
	SetFontName(doc, "Arial")
	SetTextColor(doc, "red")
	SetBackgroundColor(doc, "yellow")

	want := model.SegmentFormat{
		FontSizeFormat:        model.FontSizeFormat{FontSize: "12pt"},
		FontFamilyFormat:      model.FontFamilyFormat{FontFamily: "Arial"},
		TextColorFormat:       model.TextColorFormat{TextColor: "red"},
		BackgroundColorFormat: model.BackgroundColorFormat{BackgroundColor: "yellow"},
	}
	if diff := cmp.Diff(want, sel.Format); diff != "" {
		t.Errorf("segment format mismatch (-want +got):\n%s", diff)
	}
	// bullet follows font of the item, not its highlight
	want.BackgroundColor = ""
	if diff := cmp.Diff(want, li.FormatHolder.Format); diff != "" {
		t.Errorf("format holder mismatch (-want +got):\n%s", diff)
	}
}

func TestSetSegmentFormat_NoSelection(t *testing.T) {
	doc := docOf(para(text("x", false)))
	if SetFontSize(doc, "10pt") {
		t.Errorf("expected no change without selection")
	}
}

func TestRetrieveFormatState(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		check func(FormatState) bool
	}{
		{"bullet", `<ul><li>a|b</li></ul>`, func(s FormatState) bool { return s.IsBullet && !s.IsNumbering }},
		{"numbering", `<ol><li>a|b</li></ol>`, func(s FormatState) bool { return s.IsNumbering && !s.IsBullet }},
		{"quote", `<blockquote>a|b</blockquote>`, func(s FormatState) bool { return s.IsBlockQuote }},
		{"link", `<div><a href="https://example.com">a|b</a></div>`, func(s FormatState) bool { return s.CanUnlink }},
		{"code", `<div><code>a|b</code></div>`, func(s FormatState) bool { return s.IsCodeInline }},
		{"multiline", `<div>a|b</div><div>c|d</div>`, func(s FormatState) bool { return s.IsMultilineSelection && !s.IsCollapsed }},
		{"font", `<div><span style="font-family: Arial; font-size: 12pt; color: red">a|b</span></div>`,
			func(s FormatState) bool { return s.FontName == "Arial" && s.FontSize == "12pt" && s.TextColor == "red" }},
		{"differing font", `<div><span style="font-size: 12pt">a|b</span><span style="font-size: 14pt">c|d</span></div>`,
			func(s FormatState) bool { return s.FontSize == "" }},
		{"align", `<div style="text-align: center">a|b</div>`, func(s FormatState) bool { return s.TextAlign == "center" }},
		{"table", `<table><tr><th>h</th></tr><tr><td>a|b</td></tr></table>`,
			func(s FormatState) bool { return s.IsInTable && s.TableHasHeader }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := RetrieveFormatState(convertString(t, tt.src))
			if !tt.check(state) {
				t.Errorf("unexpected state %+v", state)
			}
		})
	}
}

func TestIsBold(t *testing.T) {
	for weight, want := range map[string]bool{
		"": false, "normal": false, "bold": true, "bolder": true, "lighter": false,
		"400": false, "600": true, "700": true, "heavy": false,
	} {
		if got := IsBold(weight); got != want {
			t.Errorf("IsBold(%q) = %t, want %t", weight, got, want)
		}
	}
}
