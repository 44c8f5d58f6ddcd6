package model

import (
	"encoding/json"

	"golang.org/x/net/html"
)

// JSON encoding of the model is meant for tooling and debugging, there is no
// decoding. Elements are represented by their tag names.

func elementTag(n *html.Node) string {
	if n == nil {
		return ""
	}
	return n.Data
}

type jsonSegmentBase struct {
	SegmentType SegmentType   `json:"segmentType"`
	Format      SegmentFormat `json:"format"`
	IsSelected  bool          `json:"isSelected,omitempty"`
	Link        *Link         `json:"link,omitempty"`
	Code        *Code         `json:"code,omitempty"`
}

func newJSONSegmentBase(t SegmentType, s *segmentBase) jsonSegmentBase {
	return jsonSegmentBase{SegmentType: t, Format: s.Format, IsSelected: s.IsSelected, Link: s.Link, Code: s.Code}
}

func (t *Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		jsonSegmentBase
		Text string `json:"text"`
	}{newJSONSegmentBase(SegmentTypeText, &t.segmentBase), t.Text})
}

func (b *Br) MarshalJSON() ([]byte, error) {
	return json.Marshal(newJSONSegmentBase(SegmentTypeBr, &b.segmentBase))
}

func (m *SelectionMarker) MarshalJSON() ([]byte, error) {
	return json.Marshal(newJSONSegmentBase(SegmentTypeSelectionMarker, &m.segmentBase))
}

func (i *Image) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		SegmentType                SegmentType   `json:"segmentType"`
		Src                        string        `json:"src"`
		Alt                        string        `json:"alt,omitempty"`
		Title                      string        `json:"title,omitempty"`
		Format                     ImageFormat   `json:"format"`
		Dataset                    DatasetFormat `json:"dataset,omitempty"`
		IsSelected                 bool          `json:"isSelected,omitempty"`
		IsSelectedAsImageSelection bool          `json:"isSelectedAsImageSelection,omitempty"`
		Link                       *Link         `json:"link,omitempty"`
		Code                       *Code         `json:"code,omitempty"`
	}{SegmentTypeImage, i.Src, i.Alt, i.Title, i.Format, i.Dataset, i.IsSelected, i.IsSelectedAsImageSelection, i.Link, i.Code})
}

func (e *Entity) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		BlockType   BlockType     `json:"blockType"`
		SegmentType SegmentType   `json:"segmentType"`
		Wrapper     string        `json:"wrapper"`
		ID          string        `json:"id,omitempty"`
		EntityType  string        `json:"type,omitempty"`
		IsReadonly  bool          `json:"isReadonly,omitempty"`
		IsSelected  bool          `json:"isSelected,omitempty"`
		Format      SegmentFormat `json:"format"`
	}{BlockTypeEntity, SegmentTypeEntity, elementTag(e.Wrapper), e.ID, e.EntityType, e.IsReadonly, e.IsSelected, e.Format})
}

func (p *Paragraph) MarshalJSON() ([]byte, error) {
	segments := p.segments
	if segments == nil {
		segments = []Segment{}
	}
	return json.Marshal(struct {
		BlockType     BlockType           `json:"blockType"`
		Segments      []Segment           `json:"segments"`
		Format        BlockFormat         `json:"format"`
		SegmentFormat *SegmentFormat      `json:"segmentFormat,omitempty"`
		Decorator     *ParagraphDecorator `json:"decorator,omitempty"`
		IsImplicit    bool                `json:"isImplicit,omitempty"`
		ZeroFontSize  bool                `json:"zeroFontSize,omitempty"`
	}{BlockTypeParagraph, segments, p.Format, p.SegmentFormat, p.Decorator, p.IsImplicit, p.ZeroFontSize})
}

func (d *Divider) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		BlockType  BlockType     `json:"blockType"`
		TagName    string        `json:"tagName"`
		Format     DividerFormat `json:"format"`
		IsSelected bool          `json:"isSelected,omitempty"`
	}{BlockTypeDivider, d.TagName, d.Format, d.IsSelected})
}

type jsonGroup struct {
	BlockType      *BlockType     `json:"blockType,omitempty"`
	BlockGroupType BlockGroupType `json:"blockGroupType"`
	Blocks         []Block        `json:"blocks"`
}

func newJSONGroup(t BlockGroupType, g *group, isBlock bool) jsonGroup {
	jg := jsonGroup{BlockGroupType: t, Blocks: g.blocks}
	if jg.Blocks == nil {
		jg.Blocks = []Block{}
	}
	if isBlock {
		bt := BlockTypeBlockGroup
		jg.BlockType = &bt
	}
	return jg
}

func (d *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		jsonGroup
		Format SegmentFormat `json:"format"`
	}{newJSONGroup(BlockGroupTypeDocument, &d.group, false), d.Format})
}

func (fc *FormatContainer) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		jsonGroup
		TagName      string                `json:"tagName"`
		Format       FormatContainerFormat `json:"format"`
		ZeroFontSize bool                  `json:"zeroFontSize,omitempty"`
	}{newJSONGroup(BlockGroupTypeFormatContainer, &fc.group, true), fc.TagName, fc.Format, fc.ZeroFontSize})
}

func (q *Quote) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		jsonGroup
		Format FormatContainerFormat `json:"format"`
	}{newJSONGroup(BlockGroupTypeQuote, &q.group, true), q.Format})
}

type jsonListLevel struct {
	Format  ListLevelFormat `json:"format"`
	Dataset DatasetFormat   `json:"dataset,omitempty"`
}

func (li *ListItem) MarshalJSON() ([]byte, error) {
	levels := make([]jsonListLevel, 0, len(li.Levels))
	for _, l := range li.Levels {
		levels = append(levels, jsonListLevel(l))
	}
	return json.Marshal(struct {
		jsonGroup
		Levels       []jsonListLevel  `json:"levels"`
		FormatHolder *SelectionMarker `json:"formatHolder,omitempty"`
		Format       ListItemFormat   `json:"format"`
	}{newJSONGroup(BlockGroupTypeListItem, &li.group, true), levels, li.FormatHolder, li.Format})
}

func (g *General) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		jsonGroup
		Element    string `json:"element"`
		IsSelected bool   `json:"isSelected,omitempty"`
	}{newJSONGroup(BlockGroupTypeGeneral, &g.group, true), elementTag(g.Element), g.IsSelected})
}

func (g *GeneralSegment) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		jsonGroup
		SegmentType SegmentType   `json:"segmentType"`
		Element     string        `json:"element"`
		IsSelected  bool          `json:"isSelected,omitempty"`
		Format      SegmentFormat `json:"format"`
		Link        *Link         `json:"link,omitempty"`
		Code        *Code         `json:"code,omitempty"`
	}{newJSONGroup(BlockGroupTypeGeneral, &g.group, true), SegmentTypeGeneral, elementTag(g.Element), g.IsSelected, g.Format, g.Link, g.Code})
}

func (c *TableCell) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		jsonGroup
		Format     TableCellFormat `json:"format"`
		Dataset    DatasetFormat   `json:"dataset,omitempty"`
		SpanLeft   bool            `json:"spanLeft,omitempty"`
		SpanAbove  bool            `json:"spanAbove,omitempty"`
		IsHeader   bool            `json:"isHeader,omitempty"`
		IsSelected bool            `json:"isSelected,omitempty"`
	}{newJSONGroup(BlockGroupTypeTableCell, &c.group, false), c.Format, c.Dataset, c.SpanLeft, c.SpanAbove, c.IsHeader, c.IsSelected})
}

func (t *Table) MarshalJSON() ([]byte, error) {
	type jsonRow struct {
		Height float64      `json:"height"`
		Format BlockFormat  `json:"format"`
		Cells  []*TableCell `json:"cells"`
	}
	rows := make([]jsonRow, 0, len(t.rows))
	for _, r := range t.rows {
		cells := r.cells
		if cells == nil {
			cells = []*TableCell{}
		}
		rows = append(rows, jsonRow{Height: r.Height, Format: r.Format, Cells: cells})
	}
	widths := t.Widths
	if widths == nil {
		widths = []float64{}
	}
	return json.Marshal(struct {
		BlockType BlockType     `json:"blockType"`
		Rows      []jsonRow     `json:"rows"`
		Widths    []float64     `json:"widths"`
		Format    TableFormat   `json:"format"`
		Dataset   DatasetFormat `json:"dataset,omitempty"`
	}{BlockTypeTable, rows, widths, t.Format, t.Dataset})
}
