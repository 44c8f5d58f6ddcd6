// Package formatting changes and queries segment formats of selected
// content.
package formatting

import (
	"strings"

	"cmodel/model"
	"cmodel/selection"
)

// ApplyPendingFormat applies format remembered for collapsed selection to
// text just typed at the caret. Data is the typed text, it is expected
// right before the caret (or, when the caret was not moved yet, right after
// it). Typed text is split into its own segment carrying the format and
// the caret gets the format too, so typing continues with it. Returns true
// when model was changed.
func ApplyPendingFormat(doc *model.Document, data string, format model.SegmentFormat) bool {
	if data == "" {
		return false
	}
	changed := false
	selection.IterateSelections(doc, func(_ []model.BlockGroup, _ *selection.TableContext, block model.Block, segments []model.Segment) bool {
		p, ok := block.(*model.Paragraph)
		if !ok || len(segments) != 1 {
			return true
		}
		marker, ok := segments[0].(*model.SelectionMarker)
		if !ok {
			return true
		}
		index := p.IndexOfSegment(marker)
		all := p.Segments()

		var typed *model.Text
		if prev, ok := segmentAt(all, index-1).(*model.Text); ok {
			if n := matchSuffix(prev.Text, data); n > 0 {
				typed = newTypedText(prev, prev.Text[len(prev.Text)-n:], format)
				prev.Text = prev.Text[:len(prev.Text)-n]
			}
		}
		if next, ok := segmentAt(all, index+1).(*model.Text); ok && typed == nil {
			if n := matchPrefix(next.Text, data); n > 0 {
				typed = newTypedText(next, next.Text[:n], format)
				next.Text = next.Text[n:]
			}
		}
		if typed == nil {
			return true
		}

		merge(marker.SegmentFormat(), format)
		p.InsertSegments(index, typed)
		dropEmptyTexts(p)
		p.SetNotImplicit()
		changed = true
		return true
	}, &selection.Options{IncludeListFormatHolder: selection.Never})
	return changed
}

func segmentAt(segments []model.Segment, i int) model.Segment {
	if i < 0 || i >= len(segments) {
		return nil
	}
	return segments[i]
}

func newTypedText(from *model.Text, data string, format model.SegmentFormat) *model.Text {
	f := from.Format
	merge(&f, format)
	link, code := from.Decorators()
	return model.NewText(data, f, link, code)
}

func dropEmptyTexts(p *model.Paragraph) {
	for i := len(p.Segments()) - 1; i >= 0; i-- {
		if t, ok := p.Segments()[i].(*model.Text); ok && t.Text == "" {
			p.RemoveSegmentAt(i)
		}
	}
}

// spellings returns data as typed and with spaces stored as non breaking
// ones, editor keeps both in text.
func spellings(data string) []string {
	return []string{data, strings.ReplaceAll(data, " ", "\u00a0"), strings.ReplaceAll(data, "\u00a0", " ")}
}

// matchSuffix returns byte length of data found at the end of s, 0 if none.
func matchSuffix(s, data string) int {
	for _, v := range spellings(data) {
		if strings.HasSuffix(s, v) {
			return len(v)
		}
	}
	return 0
}

func matchPrefix(s, data string) int {
	for _, v := range spellings(data) {
		if strings.HasPrefix(s, v) {
			return len(v)
		}
	}
	return 0
}
