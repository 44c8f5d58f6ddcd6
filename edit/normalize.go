package edit

import "cmodel/model"

// Normalize tidies model after editing: drops empty paragraphs and
// containers, unwraps list items without levels, removes empty text
// segments, merges neighbor texts of the same format and fixes trailing
// line breaks. Tables and general segments are processed too.
func Normalize(group model.BlockGroup) {
	blocks := group.Blocks()
	for i := len(blocks) - 1; i >= 0; i-- {
		block := blocks[i]
		switch b := block.(type) {
		case *model.ListItem:
			if len(b.Levels) == 0 {
				Normalize(b)
				group.ReplaceBlockAt(i, b.Blocks()...)
				continue
			}
			Normalize(b)
		case model.BlockGroup:
			Normalize(b)
		case *model.Paragraph:
			normalizeParagraph(b)
		case *model.Table:
			for _, row := range b.Rows() {
				for _, cell := range row.Cells() {
					if cell != nil {
						Normalize(cell)
					}
				}
			}
		}
		if isBlockEmpty(block) {
			group.RemoveBlockAt(i)
		}
	}
}

func isBlockEmpty(block model.Block) bool {
	switch b := block.(type) {
	case *model.Paragraph:
		return len(b.Segments()) == 0
	case *model.Table:
		return len(b.Rows()) == 0
	case *model.ListItem, *model.FormatContainer, *model.Quote:
		return len(b.(model.BlockGroup).Blocks()) == 0
	}
	return false
}

func normalizeParagraph(p *model.Paragraph) {
	var (
		kept    []model.Segment
		changed bool
	)
	for _, s := range p.Segments() {
		switch v := s.(type) {
		case *model.Text:
			if v.Text == "" {
				changed = true
				continue
			}
			if n := len(kept); n > 0 {
				if prev, ok := kept[n-1].(*model.Text); ok && sameTextFormat(prev, v) {
					prev.Text += v.Text
					changed = true
					continue
				}
			}
		case *model.GeneralSegment:
			Normalize(v)
		}
		kept = append(kept, s)
	}
	if changed {
		p.SetSegments(kept...)
	}
	if p.IsImplicit || len(kept) == 0 {
		return
	}

	// explicit paragraph holding only caret needs a line break to have a
	// height, trailing break after content is redundant
	last := kept[len(kept)-1]
	var secondLast model.Segment
	if len(kept) > 1 {
		secondLast = kept[len(kept)-2]
	}
	switch {
	case last.SegmentType() == model.SegmentTypeSelectionMarker && (secondLast == nil || secondLast.SegmentType() == model.SegmentTypeBr):
		p.AddSegment(model.NewBr(*last.SegmentFormat()))
	case last.SegmentType() == model.SegmentTypeBr:
		var content []model.Segment
		for _, s := range kept {
			if s.SegmentType() != model.SegmentTypeSelectionMarker {
				content = append(content, s)
			}
		}
		if n := len(content); n > 1 && content[n-2].SegmentType() != model.SegmentTypeBr {
			p.RemoveSegment(last)
		}
	}
}

func sameTextFormat(a, b *model.Text) bool {
	la, ca := a.Decorators()
	lb, cb := b.Decorators()
	return a.IsSelected == b.IsSelected &&
		a.Format == b.Format &&
		model.SameLink(la, lb) &&
		model.SameCode(ca, cb)
}
