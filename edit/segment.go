package edit

import (
	"strings"

	"github.com/rivo/uniseg"

	"cmodel/model"
)

const nbsp = "\u00a0"

// DeleteSegment removes segment from paragraph or, for unselected text with
// direction, a single character from its start (forward) or end
// (backward). Returns false when deletion is refused and host should
// handle it, which only happens for unselected general segments.
func DeleteSegment(p *model.Paragraph, seg model.Segment, ctx *Context, dir Direction) bool {
	index := p.IndexOfSegment(seg)
	if index < 0 {
		return false
	}
	preserve := p.Format.PreservesWhiteSpace()

	switch s := seg.(type) {
	case *model.SelectionMarker:
		p.RemoveSegmentAt(index)
		return true

	case *model.Br, *model.Image:
		removeSegmentAt(p, index, preserve)
		return true

	case *model.Entity:
		op, ok := entityOperation(s.IsSelected, dir)
		if ok && !ctx.deleteEntity(s, op) {
			removeSegmentAt(p, index, preserve)
		}
		return true

	case *model.Text:
		if s.Text == "" || s.IsSelected {
			removeSegmentAt(p, index, preserve)
			return true
		}
		if dir == Selection {
			return true
		}
		s.Text = deleteSingleChar(s.Text, dir == Forward)
		if s.Text == "" {
			removeSegmentAt(p, index, preserve)
		} else {
			p.Touch()
			if !preserve {
				normalizeTextEdges(p, index)
			}
		}
		return true

	case *model.GeneralSegment:
		if !s.IsSelected {
			return false
		}
		removeSegmentAt(p, index, preserve)
		return true
	}
	return false
}

func entityOperation(selected bool, dir Direction) (EntityOperation, bool) {
	switch {
	case selected:
		return Overwrite, true
	case dir == Forward:
		return RemoveFromStart, true
	case dir == Backward:
		return RemoveFromEnd, true
	}
	return 0, false
}

func removeSegmentAt(p *model.Paragraph, index int, preserve bool) {
	if !preserve {
		protectTrailingSpace(p, index)
	}
	p.RemoveSegmentAt(index)
}

// protectTrailingSpace turns trailing space of text preceding segment at
// index into non breaking one, the space may become last on the line once
// segment is gone.
func protectTrailingSpace(p *model.Paragraph, index int) {
	if t, ok := visibleNeighbor(p, index, false).(*model.Text); ok {
		if trimmed, found := strings.CutSuffix(t.Text, " "); found {
			t.Text = trimmed + nbsp
		}
	}
}

// normalizeTextEdges keeps edge spaces of text at index visible after it was
// shortened.
func normalizeTextEdges(p *model.Paragraph, index int) {
	t := p.Segments()[index].(*model.Text)
	if rest, ok := strings.CutPrefix(t.Text, " "); ok && endsWithSpace(visibleNeighbor(p, index, false)) {
		t.Text = nbsp + rest
	}
	if rest, ok := strings.CutSuffix(t.Text, " "); ok && visibleNeighbor(p, index, true) == nil {
		t.Text = rest + nbsp
	}
}

// visibleNeighbor returns closest segment before or after index skipping
// selection markers.
func visibleNeighbor(p *model.Paragraph, index int, after bool) model.Segment {
	segments := p.Segments()
	step := -1
	if after {
		step = 1
	}
	for i := index + step; i >= 0 && i < len(segments); i += step {
		if segments[i].SegmentType() != model.SegmentTypeSelectionMarker {
			return segments[i]
		}
	}
	return nil
}

// endsWithSpace reports whether leading space after s would collapse, which
// is also the case at the start of paragraph.
func endsWithSpace(s model.Segment) bool {
	switch v := s.(type) {
	case nil:
		return true
	case *model.Text:
		return v.Text == "" || strings.HasSuffix(v.Text, " ")
	case *model.Br:
		return true
	}
	return false
}

// deleteSingleChar removes first or last user perceived character. Emoji
// sequences and combining marks go away as a whole.
func deleteSingleChar(text string, fromStart bool) string {
	if fromStart {
		_, rest, _, _ := uniseg.FirstGraphemeClusterInString(text, -1)
		return rest
	}
	last := 0
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		last, _ = g.Positions()
	}
	return text[:last]
}
