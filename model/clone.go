package model

// Deep copy of content model. Elements referenced by entities and general
// nodes are owned by the live document and are copied by reference.

// CloneOptions controls CloneModel.
type CloneOptions struct {
	// IncludeCachedElement keeps cached rendered elements in the copy.
	IncludeCachedElement bool
}

type cloner struct {
	opts CloneOptions
}

// CloneModel creates a deep copy of the document.
func CloneModel(doc *Document, opts *CloneOptions) *Document {
	if doc == nil {
		return nil
	}
	c := cloner{}
	if opts != nil {
		c.opts = *opts
	}
	clone := &Document{Format: doc.Format}
	clone.blocks = c.cloneBlocks(doc.blocks)
	return clone
}

func (c cloner) cloneCache(src Cache) Cache {
	if c.opts.IncludeCachedElement {
		return src
	}
	return Cache{}
}

func (c cloner) cloneBlocks(blocks []Block) []Block {
	if blocks == nil {
		return nil
	}
	result := make([]Block, 0, len(blocks))
	for _, b := range blocks {
		result = append(result, c.cloneBlock(b))
	}
	return result
}

func (c cloner) cloneBlock(b Block) Block {
	switch v := b.(type) {
	case *Paragraph:
		return c.cloneParagraph(v)
	case *Table:
		return c.cloneTable(v)
	case *Divider:
		return &Divider{
			Cache:      c.cloneCache(v.Cache),
			TagName:    v.TagName,
			Format:     v.Format,
			IsSelected: v.IsSelected,
		}
	case *Entity:
		return cloneEntity(v)
	case *FormatContainer:
		return &FormatContainer{
			group:        c.cloneGroup(&v.group),
			TagName:      v.TagName,
			Format:       v.Format,
			ZeroFontSize: v.ZeroFontSize,
		}
	case *Quote:
		return &Quote{group: c.cloneGroup(&v.group), Format: v.Format}
	case *ListItem:
		return c.cloneListItem(v)
	case *GeneralSegment:
		return c.cloneGeneralSegment(v)
	case *General:
		return &General{group: c.cloneGroup(&v.group), Element: v.Element, IsSelected: v.IsSelected}
	case *TableCell:
		return c.cloneTableCell(v)
	}
	return b
}

func (c cloner) cloneGroup(g *group) group {
	return group{Cache: c.cloneCache(g.Cache), blocks: c.cloneBlocks(g.blocks)}
}

func (c cloner) cloneParagraph(p *Paragraph) *Paragraph {
	result := &Paragraph{
		Cache:        c.cloneCache(p.Cache),
		Format:       p.Format,
		IsImplicit:   p.IsImplicit,
		ZeroFontSize: p.ZeroFontSize,
	}
	if p.SegmentFormat != nil {
		f := *p.SegmentFormat
		result.SegmentFormat = &f
	}
	if p.Decorator != nil {
		result.Decorator = NewParagraphDecorator(p.Decorator.TagName, p.Decorator.Format)
	}
	if p.segments != nil {
		result.segments = make([]Segment, 0, len(p.segments))
		for _, s := range p.segments {
			result.segments = append(result.segments, c.cloneSegment(s))
		}
	}
	return result
}

func (c cloner) cloneSegment(s Segment) Segment {
	switch v := s.(type) {
	case *Text:
		t := &Text{segmentBase: cloneSegmentBase(&v.segmentBase), Text: v.Text}
		return t
	case *Br:
		return &Br{segmentBase: cloneSegmentBase(&v.segmentBase)}
	case *SelectionMarker:
		return &SelectionMarker{segmentBase: cloneSegmentBase(&v.segmentBase)}
	case *Image:
		return &Image{
			Src:                        v.Src,
			Alt:                        v.Alt,
			Title:                      v.Title,
			Format:                     v.Format,
			Dataset:                    v.Dataset.Clone(),
			IsSelected:                 v.IsSelected,
			IsSelectedAsImageSelection: v.IsSelectedAsImageSelection,
			Link:                       cloneLink(v.Link),
			Code:                       cloneCode(v.Code),
		}
	case *Entity:
		return cloneEntity(v)
	case *GeneralSegment:
		return c.cloneGeneralSegment(v)
	}
	return s
}

func cloneSegmentBase(s *segmentBase) segmentBase {
	return segmentBase{
		Format:     s.Format,
		IsSelected: s.IsSelected,
		Link:       cloneLink(s.Link),
		Code:       cloneCode(s.Code),
	}
}

func cloneEntity(e *Entity) *Entity {
	clone := *e
	return &clone
}

func (c cloner) cloneGeneralSegment(g *GeneralSegment) *GeneralSegment {
	return &GeneralSegment{
		General: General{group: c.cloneGroup(&g.group), Element: g.Element, IsSelected: g.IsSelected},
		Format:  g.Format,
		Link:    cloneLink(g.Link),
		Code:    cloneCode(g.Code),
	}
}

func (c cloner) cloneListItem(li *ListItem) *ListItem {
	result := &ListItem{
		group:  c.cloneGroup(&li.group),
		Format: li.Format,
	}
	if li.Levels != nil {
		result.Levels = make([]ListLevel, 0, len(li.Levels))
		for _, l := range li.Levels {
			result.Levels = append(result.Levels, NewListLevel(l.Format, l.Dataset))
		}
	}
	if li.FormatHolder != nil {
		result.FormatHolder = &SelectionMarker{segmentBase: cloneSegmentBase(&li.FormatHolder.segmentBase)}
	}
	return result
}

func (c cloner) cloneTable(t *Table) *Table {
	result := &Table{
		Cache:   c.cloneCache(t.Cache),
		Format:  t.Format,
		Dataset: t.Dataset.Clone(),
	}
	if t.Widths != nil {
		result.Widths = append([]float64(nil), t.Widths...)
	}
	for _, r := range t.rows {
		row := &TableRow{Height: r.Height, Format: r.Format}
		if r.cells != nil {
			row.cells = make([]*TableCell, 0, len(r.cells))
			for _, cell := range r.cells {
				if cell == nil {
					row.cells = append(row.cells, nil)
					continue
				}
				row.cells = append(row.cells, c.cloneTableCell(cell))
			}
		}
		result.rows = append(result.rows, row)
	}
	return result
}

func (c cloner) cloneTableCell(cell *TableCell) *TableCell {
	return &TableCell{
		group:      c.cloneGroup(&cell.group),
		Format:     cell.Format,
		Dataset:    cell.Dataset.Clone(),
		SpanLeft:   cell.SpanLeft,
		SpanAbove:  cell.SpanAbove,
		IsHeader:   cell.IsHeader,
		IsSelected: cell.IsSelected,
	}
}

func cloneLink(l *Link) *Link {
	if l == nil {
		return nil
	}
	return &Link{Format: l.Format, Dataset: l.Dataset.Clone()}
}

func cloneCode(c *Code) *Code {
	if c == nil {
		return nil
	}
	return &Code{Format: c.Format}
}
