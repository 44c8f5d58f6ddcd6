package edit

import "cmodel/model"

// DeleteBlock removes block from group, putting replacement (may be nil) in
// its place. General blocks are only removed when replacement is given.
// Returns false when nothing was done.
func DeleteBlock(group model.BlockGroup, block model.Block, replacement model.Block, ctx *Context, dir Direction) bool {
	index := group.IndexOfBlock(block)
	if index < 0 {
		return false
	}
	replace := func() {
		if replacement != nil {
			group.ReplaceBlockAt(index, replacement)
		} else {
			group.RemoveBlockAt(index)
		}
	}

	switch b := block.(type) {
	case *model.Table, *model.Divider:
		replace()
		return true

	case *model.Entity:
		op, ok := entityOperation(b.IsSelected, dir)
		if !ok {
			return true
		}
		if !ctx.deleteEntity(b, op) {
			replace()
		} else if replacement != nil {
			// entity stays, caret goes after it
			group.InsertBlocks(index+1, replacement)
		}
		return true

	case *model.General:
		if replacement == nil {
			return false
		}
		replace()
		return true

	case *model.ListItem, *model.FormatContainer, *model.Quote:
		group.RemoveBlockAt(index)
		return true
	}
	return false
}

// Sibling is a leaf block next to some block in document order.
type Sibling struct {
	Block model.Block
	// Path goes from the group owning Block up to the root.
	Path []model.BlockGroup
	// Segment is set when block is the paragraph owning general segment the
	// search started from, it is the segment next to it.
	Segment model.Segment
}

// LeafSibling finds closest leaf block before or after block, whose parent
// is path[0]. Search crosses list items, containers and general elements but
// never leaves document or table cell. Returns nil when there is no sibling.
func LeafSibling(path []model.BlockGroup, block model.Block, forward bool) *Sibling {
	path = append([]model.BlockGroup(nil), path...)
	step := -1
	if forward {
		step = 1
	}

	for len(path) > 0 {
		group := path[0]
		index := group.IndexOfBlock(block)
		if index < 0 {
			break
		}
		blocks := group.Blocks()
		if next := index + step; next >= 0 && next < len(blocks) {
			return descend(path, blocks[next], forward)
		}

		switch g := group.(type) {
		case *model.GeneralSegment:
			path = path[1:]
			if len(path) == 0 {
				return nil
			}
			p, segIndex := owningParagraph(path[0], g)
			if p == nil {
				return nil
			}
			segments := p.Segments()
			if i := segIndex + step; i >= 0 && i < len(segments) {
				return &Sibling{Block: p, Path: path, Segment: segments[i]}
			}
			block = p
		case *model.Document, *model.TableCell:
			return nil
		default:
			b, ok := group.(model.Block)
			if !ok {
				return nil
			}
			path, block = path[1:], b
		}
	}
	return nil
}

// descend goes down into block groups to their first (or last) leaf.
func descend(path []model.BlockGroup, block model.Block, forward bool) *Sibling {
	for {
		g, ok := block.(model.BlockGroup)
		if !ok {
			return &Sibling{Block: block, Path: path}
		}
		blocks := g.Blocks()
		if len(blocks) == 0 {
			return &Sibling{Block: block, Path: path}
		}
		path = append([]model.BlockGroup{g}, path...)
		if forward {
			block = blocks[0]
		} else {
			block = blocks[len(blocks)-1]
		}
	}
}

func owningParagraph(group model.BlockGroup, seg *model.GeneralSegment) (*model.Paragraph, int) {
	for _, b := range group.Blocks() {
		if p, ok := b.(*model.Paragraph); ok {
			if i := p.IndexOfSegment(seg); i >= 0 {
				return p, i
			}
		}
	}
	return nil, -1
}
