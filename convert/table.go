package convert

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"cmodel/css"
	"cmodel/model"
)

// maxSpan limits colspan and rowspan the same way browsers do.
const maxSpan = 1000

// tableRows returns rows of a table in rendering order: header section,
// body sections and direct rows, footer section.
func tableRows(table *html.Node) []*html.Node {
	var head, body, foot []*html.Node
	collect := func(section *html.Node, dst *[]*html.Node) {
		for n := section.FirstChild; n != nil; n = n.NextSibling {
			if n.Type == html.ElementNode && n.DataAtom == atom.Tr {
				*dst = append(*dst, n)
			}
		}
	}
	for n := table.FirstChild; n != nil; n = n.NextSibling {
		if n.Type != html.ElementNode {
			continue
		}
		switch n.DataAtom {
		case atom.Thead:
			collect(n, &head)
		case atom.Tbody:
			collect(n, &body)
		case atom.Tfoot:
			collect(n, &foot)
		case atom.Tr:
			body = append(body, n)
		}
	}
	return append(append(head, body...), foot...)
}

func rowCells(tr *html.Node) []*html.Node {
	var cells []*html.Node
	for n := tr.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == html.ElementNode && (n.DataAtom == atom.Td || n.DataAtom == atom.Th) {
			cells = append(cells, n)
		}
	}
	return cells
}

func span(el *html.Node, name string) int {
	n, err := strconv.Atoi(strings.TrimSpace(attr(el, name)))
	if err != nil || n < 1 {
		return 1
	}
	return min(n, maxSpan)
}

// positions accumulates edges of columns or rows, an edge is unknown until
// some cell ends on it.
type positions struct {
	pos   []float64
	known []bool
}

func newPositions() *positions {
	return &positions{pos: []float64{0}, known: []bool{true}}
}

func (p *positions) grow(n int) {
	for len(p.pos) <= n {
		p.pos = append(p.pos, 0)
		p.known = append(p.known, false)
	}
}

func (p *positions) isKnown(i int) bool {
	p.grow(i)
	return p.known[i]
}

func (p *positions) set(i int, v float64) {
	p.grow(i)
	p.pos[i], p.known[i] = v, true
}

func (p *positions) at(i int) float64 {
	p.grow(i)
	return p.pos[i]
}

// sizes converts edges into sizes. Size of a span whose inner edges stay
// unknown is attributed to its first column.
func (p *positions) sizes(count int) []float64 {
	p.grow(count)
	result := make([]float64, count)
	last := p.pos[count]
	for i := count - 1; i >= 0; i-- {
		if !p.known[i] {
			continue
		}
		result[i] = max(last-p.pos[i], 0)
		last = p.pos[i]
	}
	return result
}

// cellSize returns explicit size in pixels, then measured size divided by
// zoom scale, then 0.
func cellSize(explicit string, measured float64, ok bool, zoom float64) float64 {
	if explicit != "" && !strings.HasSuffix(explicit, "%") {
		if px, valid := css.ToPx(explicit, 0); valid {
			return px
		}
	}
	if ok {
		if zoom <= 0 {
			zoom = 1
		}
		return measured / zoom
	}
	return 0
}

func tableProcessor(group model.BlockGroup, el *html.Node, ctx *Context) {
	StackFormat(ctx, StackOptions{Segment: ShallowCloneForBlock, Paragraph: ShallowCopyInherit, BlockDecorator: Empty}, func() {
		parseFormat(el, ctx.FormatParsers.SegmentOnBlock, &ctx.SegmentFormat, ctx)

		rows := tableRows(el)
		var format model.TableFormat
		parseFormat(el, ctx.FormatParsers.Table, &format, ctx)
		table := model.NewTable(len(rows), format)
		table.Dataset = model.DatasetFormat{}
		parseFormat(el, ctx.FormatParsers.Dataset, table.Dataset, ctx)
		if len(table.Dataset) == 0 {
			table.Dataset = nil
		}
		group.AddBlock(table)

		var sel *TableSelection
		if ctx.TableSelection != nil && ctx.TableSelection.Table == el {
			sel = ctx.TableSelection
		}

		cols, heights := newPositions(), newPositions()
		for r, tr := range rows {
			var rowFormat model.BlockFormat
			parseBackgroundColor(&rowFormat, tr, ctx, ctx.defaultStyle(tr))
			table.Rows()[r].Format = rowFormat

			col := 0
			for _, td := range rowCells(tr) {
				for table.Cell(r, col) != nil {
					col++
				}
				colSpan, rowSpan := span(td, "colspan"), span(td, "rowspan")
				rowSpan = min(rowSpan, len(rows)-r)
				selectedBefore := ctx.IsInSelection

				var cellFormat model.TableCellFormat
				cellDataset := model.DatasetFormat{}
				var content *model.TableCell

				StackFormat(ctx, StackOptions{Segment: ShallowClone, Paragraph: ShallowClone}, func() {
					parseFormat(td, ctx.FormatParsers.Block, &ctx.BlockFormat, ctx)
					parseFormat(td, ctx.FormatParsers.TableCell, &cellFormat, ctx)
					parseFormat(td, ctx.FormatParsers.SegmentOnBlock, &ctx.SegmentFormat, ctx)
					parseFormat(td, ctx.FormatParsers.Dataset, cellDataset, ctx)

					width, height := cellFormat.Width, cellFormat.Height
					cellFormat.Width, cellFormat.Height = "", ""
					if !cols.isKnown(col+colSpan) || !heights.isKnown(r+rowSpan) {
						var mw, mh float64
						var ok bool
						if ctx.Measurer != nil {
							mw, mh, ok = ctx.Measurer.BoundingRect(td)
						}
						if !cols.isKnown(col + colSpan) {
							cols.set(col+colSpan, cols.at(col)+cellSize(width, mw, ok, ctx.ZoomScale))
						}
						if !heights.isKnown(r + rowSpan) {
							heights.set(r+rowSpan, heights.at(r)+cellSize(height, mh, ok, ctx.ZoomScale))
						}
					}

					content = model.NewTableCell(false, false, td.DataAtom == atom.Th, cellFormat)
					if len(cellDataset) > 0 {
						content.Dataset = cellDataset
					}

					// lists do not continue across cell boundary
					lf := ctx.ListFormat
					ctx.ListFormat.ListParent, ctx.ListFormat.Levels = nil, nil
					defer func() {
						ctx.ListFormat.ListParent, ctx.ListFormat.Levels = lf.ListParent, lf.Levels
					}()
					ctx.Processors.Child(content, td, ctx)
				})
				if ctx.AllowCacheElement {
					content.SetCachedElement(td)
				}

				for dc := range colSpan {
					for dr := range rowSpan {
						cell := content
						if dc > 0 || dr > 0 {
							cell = model.NewTableCell(dc > 0, dr > 0, content.IsHeader, cellFormat)
						}
						row, c := r+dr, col+dc
						if sel != nil &&
							row >= min(sel.FirstCell.Row, sel.LastCell.Row) && row <= max(sel.FirstCell.Row, sel.LastCell.Row) &&
							c >= min(sel.FirstCell.Col, sel.LastCell.Col) && c <= max(sel.FirstCell.Col, sel.LastCell.Col) {
							cell.IsSelected = true
						}
						if selectedBefore && ctx.IsInSelection {
							cell.IsSelected = true
						}
						table.SetCell(row, c, cell)
					}
				}
				col += colSpan
			}
		}

		// holes left by short rows next to row spans
		for r, row := range table.Rows() {
			for c, cell := range row.Cells() {
				if cell == nil {
					table.SetCell(r, c, model.NewTableCell(false, false, false, model.TableCellFormat{}))
				}
			}
		}

		table.Widths = cols.sizes(table.ColumnCount())
		for i, h := range heights.sizes(len(table.Rows())) {
			if h > 0 {
				table.SetRowHeight(i, h)
			}
		}
		if ctx.AllowCacheElement {
			table.SetCachedElement(el)
		}
	})
}
