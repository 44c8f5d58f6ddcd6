package model

import "golang.org/x/net/html"

// Creators always copy formats and datasets passed in, so caller state never
// aliases model state.

func NewDocument(format *SegmentFormat) *Document {
	doc := &Document{}
	if format != nil {
		doc.Format = *format
	}
	return doc
}

func NewParagraph(isImplicit bool, format BlockFormat, segmentFormat *SegmentFormat, decorator *ParagraphDecorator) *Paragraph {
	p := &Paragraph{
		Format:     format,
		IsImplicit: isImplicit,
	}
	if segmentFormat != nil && !segmentFormat.IsEmpty() {
		f := *segmentFormat
		p.SegmentFormat = &f
	}
	if decorator != nil {
		p.Decorator = NewParagraphDecorator(decorator.TagName, decorator.Format)
	}
	return p
}

func NewParagraphDecorator(tagName string, format SegmentFormat) *ParagraphDecorator {
	return &ParagraphDecorator{TagName: tagName, Format: format}
}

func NewText(text string, format SegmentFormat, link *Link, code *Code) *Text {
	t := &Text{Text: text}
	t.Format = format
	t.Link, t.Code = cloneLink(link), cloneCode(code)
	return t
}

func NewBr(format SegmentFormat) *Br {
	br := &Br{}
	br.Format = format
	return br
}

func NewSelectionMarker(format SegmentFormat) *SelectionMarker {
	m := &SelectionMarker{}
	m.Format = format
	m.IsSelected = true
	return m
}

func NewImage(src string, format ImageFormat) *Image {
	return &Image{Src: src, Format: format}
}

func NewEntity(wrapper *html.Node, isReadonly bool, format SegmentFormat, id, entityType string) *Entity {
	return &Entity{
		Wrapper:    wrapper,
		IsReadonly: isReadonly,
		Format:     format,
		ID:         id,
		EntityType: entityType,
	}
}

func NewDivider(tagName string, format DividerFormat) *Divider {
	return &Divider{TagName: tagName, Format: format}
}

func NewFormatContainer(tagName string, format FormatContainerFormat) *FormatContainer {
	return &FormatContainer{TagName: tagName, Format: format}
}

func NewQuote(format FormatContainerFormat) *Quote {
	return &Quote{Format: format}
}

// NewListItem creates list item copying levels.
func NewListItem(levels []ListLevel, format SegmentFormat) *ListItem {
	li := &ListItem{
		Levels:       make([]ListLevel, 0, len(levels)),
		FormatHolder: NewSelectionMarker(format),
	}
	for _, l := range levels {
		li.Levels = append(li.Levels, NewListLevel(l.Format, l.Dataset))
	}
	li.FormatHolder.IsSelected = false
	return li
}

func NewListLevel(format ListLevelFormat, dataset DatasetFormat) ListLevel {
	return ListLevel{Format: format, Dataset: dataset.Clone()}
}

func NewTable(rowCount int, format TableFormat) *Table {
	t := &Table{Format: format}
	for range rowCount {
		t.rows = append(t.rows, &TableRow{})
	}
	return t
}

func NewTableCell(spanLeft, spanAbove, isHeader bool, format TableCellFormat) *TableCell {
	return &TableCell{
		SpanLeft:  spanLeft,
		SpanAbove: spanAbove,
		IsHeader:  isHeader,
		Format:    format,
	}
}

func NewGeneralBlock(el *html.Node) *General {
	return &General{Element: el}
}

func NewGeneralSegment(el *html.Node, format SegmentFormat) *GeneralSegment {
	g := &GeneralSegment{Format: format}
	g.Element = el
	return g
}

func NewLink(format HyperLinkFormat, dataset DatasetFormat) *Link {
	return &Link{Format: format, Dataset: dataset.Clone()}
}

func NewCode(format CodeFormat) *Code {
	return &Code{Format: format}
}
