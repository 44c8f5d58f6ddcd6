package formatting

import (
	"slices"
	"strconv"
	"strings"

	"cmodel/model"
	"cmodel/selection"
)

// FormatState describes format of current selection the way toolbar shows
// it. A property which differs across selected content is left unset.
type FormatState struct {
	IsBold          bool   `json:"isBold,omitempty"`
	IsItalic        bool   `json:"isItalic,omitempty"`
	IsUnderline     bool   `json:"isUnderline,omitempty"`
	IsStrikeThrough bool   `json:"isStrikeThrough,omitempty"`
	IsSuperscript   bool   `json:"isSuperscript,omitempty"`
	IsSubscript     bool   `json:"isSubscript,omitempty"`
	FontName        string `json:"fontName,omitempty"`
	FontSize        string `json:"fontSize,omitempty"`
	TextColor       string `json:"textColor,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	LineHeight      string `json:"lineHeight,omitempty"`

	Direction    string `json:"direction,omitempty"`
	TextAlign    string `json:"textAlign,omitempty"`
	HeadingLevel int    `json:"headingLevel,omitempty"`

	IsBullet       bool `json:"isBullet,omitempty"`
	IsNumbering    bool `json:"isNumbering,omitempty"`
	IsBlockQuote   bool `json:"isBlockQuote,omitempty"`
	IsCodeInline   bool `json:"isCodeInline,omitempty"`
	CanUnlink      bool `json:"canUnlink,omitempty"`
	IsInTable      bool `json:"isInTable,omitempty"`
	TableHasHeader bool `json:"tableHasHeader,omitempty"`

	CanAddImageAltText   bool `json:"canAddImageAltText,omitempty"`
	IsMultilineSelection bool `json:"isMultilineSelection,omitempty"`
	IsCollapsed          bool `json:"isCollapsed,omitempty"`
}

// mergeValue sets value for the first visited segment and drops it when a
// later one disagrees.
func mergeValue[T comparable](dst *T, v T, first bool) {
	var zero T
	switch {
	case first:
		*dst = v
	case *dst != v:
		*dst = zero
	}
}

// RetrieveFormatState collects format of selected content. Segment format
// is layered over paragraph and document defaults.
func RetrieveFormatState(doc *model.Document) FormatState {
	var (
		state     FormatState
		first     = true
		lastPara  *model.Paragraph
		paraCount int
	)
	state.IsCollapsed = selection.IsCollapsed(doc)

	selection.IterateSelections(doc, func(path []model.BlockGroup, table *selection.TableContext, block model.Block, segments []model.Segment) bool {
		p, ok := block.(*model.Paragraph)
		if !ok {
			return false
		}
		if p != lastPara {
			lastPara = p
			paraCount++
			retrieveParagraphState(&state, p, path, table, paraCount == 1)
		}
		content := slices.ContainsFunc(segments, func(s model.Segment) bool {
			return s.SegmentType() != model.SegmentTypeSelectionMarker
		})
		for _, s := range segments {
			if content && s.SegmentType() == model.SegmentTypeSelectionMarker {
				continue
			}
			retrieveSegmentState(&state, effectiveFormat(doc, p, s), s, first)
			first = false
		}
		return false
	}, &selection.Options{
		IncludeListFormatHolder:            selection.Never,
		ContentUnderSelectedTableCell:      selection.IgnoreForTable,
		ContentUnderSelectedGeneralElement: selection.ContentOnly,
	})

	state.IsMultilineSelection = paraCount > 1
	return state
}

func retrieveSegmentState(state *FormatState, f model.SegmentFormat, s model.Segment, first bool) {
	script := lastScript(f.SuperOrSubScriptSequence)
	mergeValue(&state.IsBold, IsBold(f.FontWeight), first)
	mergeValue(&state.IsItalic, f.Italic, first)
	mergeValue(&state.IsUnderline, f.Underline, first)
	mergeValue(&state.IsStrikeThrough, f.Strikethrough, first)
	mergeValue(&state.IsSuperscript, script == "super", first)
	mergeValue(&state.IsSubscript, script == "sub", first)
	mergeValue(&state.FontName, f.FontFamily, first)
	mergeValue(&state.FontSize, f.FontSize, first)
	mergeValue(&state.TextColor, f.TextColor, first)
	mergeValue(&state.BackgroundColor, f.BackgroundColor, first)
	mergeValue(&state.LineHeight, f.LineHeight, first)

	link, code := s.Decorators()
	mergeValue(&state.IsCodeInline, code != nil, first)
	if link != nil {
		state.CanUnlink = true
	}
	if s.SegmentType() == model.SegmentTypeImage && s.Selected() {
		state.CanAddImageAltText = true
	}
}

func retrieveParagraphState(state *FormatState, p *model.Paragraph, path []model.BlockGroup, table *selection.TableContext, first bool) {
	mergeValue(&state.Direction, p.Format.Direction, first)
	mergeValue(&state.TextAlign, p.Format.TextAlign, first)
	mergeValue(&state.HeadingLevel, headingLevel(p), first)

	var bullet, numbering, quote bool
	for _, g := range path {
		switch v := g.(type) {
		case *model.ListItem:
			if n := len(v.Levels); n > 0 && !bullet && !numbering {
				numbering = v.Levels[n-1].Format.ListType == "OL"
				bullet = !numbering
			}
		case *model.Quote:
			quote = true
		}
	}
	mergeValue(&state.IsBullet, bullet, first)
	mergeValue(&state.IsNumbering, numbering, first)
	mergeValue(&state.IsBlockQuote, quote, first)

	if table != nil {
		state.IsInTable = true
		state.TableHasHeader = tableHasHeader(table.Table)
	}
}

func headingLevel(p *model.Paragraph) int {
	if p.Decorator == nil {
		return 0
	}
	tag := strings.ToLower(p.Decorator.TagName)
	if len(tag) != 2 || tag[0] != 'h' {
		return 0
	}
	n, err := strconv.Atoi(tag[1:])
	if err != nil || n < 1 || n > 6 {
		return 0
	}
	return n
}

func tableHasHeader(t *model.Table) bool {
	rows := t.Rows()
	if len(rows) == 0 {
		return false
	}
	for _, cell := range rows[0].Cells() {
		if cell != nil && cell.IsHeader {
			return true
		}
	}
	return false
}

// effectiveFormat resolves format segment is rendered with.
func effectiveFormat(doc *model.Document, p *model.Paragraph, s model.Segment) model.SegmentFormat {
	f := doc.Format
	if p.SegmentFormat != nil {
		merge(&f, *p.SegmentFormat)
	}
	if p.Decorator != nil {
		merge(&f, p.Decorator.Format)
	}
	merge(&f, *s.SegmentFormat())
	return f
}
