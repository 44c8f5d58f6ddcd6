package edit

import (
	"go.uber.org/zap"

	"cmodel/model"
)

var (
	ForwardDeleteCollapsed  = DeleteCollapsedStep(Forward)
	BackwardDeleteCollapsed = DeleteCollapsedStep(Backward)
)

// DeleteCollapsedStep deletes content next to collapsed selection: single
// character or segment, or, at paragraph edge, the neighbor block. Adjacent
// paragraphs are merged by MergeAfterDelete.
func DeleteCollapsedStep(dir Direction) Step {
	forward := dir == Forward
	return func(ctx *Context) {
		if dir == Selection || ctx.Result != NotDeleted {
			return
		}
		ip := ctx.InsertPoint
		p := ip.Paragraph

		fixupBr(p)

		index := p.IndexOfSegment(ip.Marker)
		if forward {
			index++
		} else {
			index--
		}
		segments := p.Segments()

		if index >= 0 && index < len(segments) {
			if DeleteSegment(p, segments[index], ctx, dir) {
				ctx.Result = SingleChar
				// paragraph may be empty now and has to keep its format
				p.SetNotImplicit()
			}
			return
		}

		sibling := LeafSibling(ip.Path, p, forward)
		if sibling == nil {
			// at the edge of document or table cell, nothing may be removed
			// there without breaking minimal structure
			ctx.Result = NothingToDelete
			return
		}

		next, ok := sibling.Block.(*model.Paragraph)
		if !ok {
			if DeleteBlock(sibling.Path[0], sibling.Block, nil, ctx, dir) {
				ctx.Result = Range
			}
			return
		}

		switch {
		case sibling.Segment != nil:
			// caret is inside general segment, delete from its neighbor
			if DeleteSegment(next, sibling.Segment, ctx, dir) {
				ctx.Result = Range
			}
		case forward:
			ctx.LastParagraph, ctx.LastPath = next, sibling.Path
			ctx.Result = Range
		default:
			if m, ok := next.LastSegment().(*model.SelectionMarker); ok {
				next.RemoveSegment(m)
			}
			ctx.LastParagraph, ctx.LastPath = p, ip.Path
			ip.Paragraph, ip.Path = next, sibling.Path
			ctx.Result = Range
		}
		ctx.LastTableContext = ip.Table
		ctx.Log.Debug("Merging with sibling paragraph", zap.Stringer("direction", dir))
	}
}

// fixupBr drops trailing line break unless it is preceded by another one,
// single trailing break is invisible and would otherwise take a keystroke
// to delete.
func fixupBr(p *model.Paragraph) {
	last, ok := p.LastSegment().(*model.Br)
	if !ok {
		return
	}
	var content []model.Segment
	for _, s := range p.Segments() {
		if s.SegmentType() != model.SegmentTypeSelectionMarker {
			content = append(content, s)
		}
	}
	if n := len(content); n < 2 || content[n-2].SegmentType() != model.SegmentTypeBr {
		p.RemoveSegment(last)
	}
}
