// Package selection walks selected parts of content model.
//
// Selection is not stored separately: it is a property of the model itself
// (selected segments, selection markers, selected table cells, dividers,
// entities and general elements). IterateSelections visits every selected
// piece in document order and all other queries are built on top of it.
package selection

import "cmodel/model"

//go:generate go tool go-enum --marshal --names --noprefix

// TableCellContent controls how content of selected table cells is visited:
// Include visits selected cells and their content, IgnoreForTable reports
// fully selected table as a block and does not descend into it,
// IgnoreForTableOrCell additionally skips content of selected cells.
// ENUM(include, ignoreForTable, ignoreForTableOrCell)
type TableCellContent int

// GeneralContent controls how selected general elements are visited.
// ENUM(contentOnly, generalElementOnly, generalElementAndContent)
type GeneralContent int

// ListFormatHolder controls when format holder of a list item is reported.
// AllSegments requires all segments of the item to be selected, AnySegment
// is satisfied by any of them.
// ENUM(allSegments, anySegment, never)
type ListFormatHolder int

// Options of IterateSelections, zero value is the default behavior.
type Options struct {
	ContentUnderSelectedTableCell      TableCellContent
	ContentUnderSelectedGeneralElement GeneralContent
	IncludeListFormatHolder            ListFormatHolder
}

// TableContext describes cell being visited.
type TableContext struct {
	Table                *model.Table
	RowIndex             int
	ColIndex             int
	IsWholeTableSelected bool
}

// Callback receives path from the innermost group to the root, table
// context when inside a table cell, and either a selected block or
// selected segments of a paragraph (block is nil for list format holder).
// Returning true stops iteration.
type Callback func(path []model.BlockGroup, table *TableContext, block model.Block, segments []model.Segment) bool

// IterateSelections visits selected content of group in document order.
// Returns true when callback stopped iteration.
func IterateSelections(group model.BlockGroup, cb Callback, opts *Options) bool {
	var o Options
	if opts != nil {
		o = *opts
	}
	it := iterator{cb: cb, opts: o}
	return it.walk([]model.BlockGroup{group}, nil, false)
}

type iterator struct {
	cb   Callback
	opts Options
}

func (it *iterator) walk(path []model.BlockGroup, table *TableContext, selectAll bool) bool {
	parent := path[0]
	var hasSelected, hasUnselected bool

	for _, block := range parent.Blocks() {
		switch b := block.(type) {
		case *model.General:
			if it.general(path, table, b, selectAll) {
				return true
			}
		case model.BlockGroup:
			if it.walk(prepend(b, path), table, selectAll) {
				return true
			}
		case *model.Table:
			if it.table(path, table, b, selectAll) {
				return true
			}
		case *model.Paragraph:
			var segments []model.Segment
			for _, seg := range b.Segments() {
				selected := selectAll || seg.Selected()
				if g, ok := seg.(*model.GeneralSegment); ok {
					if selected && it.opts.ContentUnderSelectedGeneralElement != ContentOnly {
						segments = append(segments, seg)
					}
					if (!selected || it.opts.ContentUnderSelectedGeneralElement != GeneralElementOnly) &&
						it.walk(prepend(g, path), table, selected) {
						return true
					}
				} else if selected {
					segments = append(segments, seg)
				}
				if selected {
					hasSelected = true
				} else {
					hasUnselected = true
				}
			}
			if len(segments) > 0 && it.cb(path, table, b, segments) {
				return true
			}
		case *model.Divider:
			if (selectAll || b.IsSelected) && it.cb(path, table, b, nil) {
				return true
			}
		case *model.Entity:
			if (selectAll || b.IsSelected) && it.cb(path, table, b, nil) {
				return true
			}
		}
	}

	if li, ok := parent.(*model.ListItem); ok && li.FormatHolder != nil &&
		it.opts.IncludeListFormatHolder != Never && hasSelected &&
		(!hasUnselected || it.opts.IncludeListFormatHolder == AnySegment) {
		if it.cb(path[1:], table, nil, []model.Segment{li.FormatHolder}) {
			return true
		}
	}
	return false
}

func (it *iterator) general(path []model.BlockGroup, table *TableContext, g *model.General, selectAll bool) bool {
	selected := selectAll || g.IsSelected
	if selected && it.opts.ContentUnderSelectedGeneralElement != ContentOnly {
		if it.cb(path, table, g, nil) {
			return true
		}
	}
	if !selected || it.opts.ContentUnderSelectedGeneralElement != GeneralElementOnly {
		return it.walk(prepend(g, path), table, selected)
	}
	return false
}

func (it *iterator) table(path []model.BlockGroup, _ *TableContext, t *model.Table, selectAll bool) bool {
	whole := IsWholeTableSelected(t)
	if it.opts.ContentUnderSelectedTableCell != Include && whole {
		return it.cb(path, nil, t, nil)
	}
	for r, row := range t.Rows() {
		for c, cell := range row.Cells() {
			if cell == nil {
				continue
			}
			ctx := &TableContext{Table: t, RowIndex: r, ColIndex: c, IsWholeTableSelected: whole}
			if cell.IsSelected && it.cb(path, ctx, nil, nil) {
				return true
			}
			if !cell.IsSelected || it.opts.ContentUnderSelectedTableCell != IgnoreForTableOrCell {
				if it.walk(prepend(cell, path), ctx, selectAll || cell.IsSelected) {
					return true
				}
			}
		}
	}
	return false
}

// IsWholeTableSelected reports whether every cell of a non empty table is
// selected.
func IsWholeTableSelected(t *model.Table) bool {
	any := false
	for _, row := range t.Rows() {
		for _, cell := range row.Cells() {
			if cell == nil || !cell.IsSelected {
				return false
			}
			any = true
		}
	}
	return any
}

func prepend(g model.BlockGroup, path []model.BlockGroup) []model.BlockGroup {
	out := make([]model.BlockGroup, 0, len(path)+1)
	out = append(out, g)
	return append(out, path...)
}
