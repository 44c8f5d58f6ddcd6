package model

import "golang.org/x/net/html"

// Segment is an inline unit inside a paragraph.
type Segment interface {
	SegmentType() SegmentType
	Selected() bool
	SetSelected(bool)
	// SegmentFormat returns pointer to the segment format so it could be
	// modified in place.
	SegmentFormat() *SegmentFormat
	Decorators() (*Link, *Code)
	SetDecorators(link *Link, code *Code)
}

// Link decorates segments which are inside a hyperlink.
type Link struct {
	Format  HyperLinkFormat `json:"format"`
	Dataset DatasetFormat   `json:"dataset,omitempty"`
}

// Code decorates segments which are inside <code>.
type Code struct {
	Format CodeFormat `json:"format"`
}

// ParagraphDecorator records that paragraph came from heading or <p>.
type ParagraphDecorator struct {
	TagName string        `json:"tagName"`
	Format  SegmentFormat `json:"format"`
}

// SameLink reports whether two link decorators are equal by value.
func SameLink(a, b *Link) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Format != b.Format || len(a.Dataset) != len(b.Dataset) {
		return false
	}
	for k, v := range a.Dataset {
		if bv, ok := b.Dataset[k]; !ok || bv != v {
			return false
		}
	}
	return true
}

// SameCode reports whether two code decorators are equal by value.
func SameCode(a, b *Code) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Format == b.Format
}

type segmentBase struct {
	Format     SegmentFormat
	IsSelected bool
	Link       *Link
	Code       *Code
}

func (s *segmentBase) Selected() bool { return s.IsSelected }
func (s *segmentBase) SetSelected(v bool) { s.IsSelected = v }
func (s *segmentBase) SegmentFormat() *SegmentFormat { return &s.Format }
func (s *segmentBase) Decorators() (*Link, *Code) { return s.Link, s.Code }
func (s *segmentBase) SetDecorators(link *Link, code *Code) { s.Link, s.Code = link, code }

// Text is a run of text sharing the same format.
type Text struct {
	segmentBase
	Text string
}

func (*Text) SegmentType() SegmentType { return SegmentTypeText }

// Br is a line break.
type Br struct {
	segmentBase
}

func (*Br) SegmentType() SegmentType { return SegmentTypeBr }

// SelectionMarker is a zero width segment standing for caret or selection
// boundary. Marker is always selected.
type SelectionMarker struct {
	segmentBase
}

func (*SelectionMarker) SegmentType() SegmentType { return SegmentTypeSelectionMarker }

// Image is an inline image.
type Image struct {
	Src        string
	Alt        string
	Title      string
	Format     ImageFormat
	Dataset    DatasetFormat
	IsSelected bool
	// IsSelectedAsImageSelection is set when image is the anchor of image
	// selection (resize mode), independently of range selection.
	IsSelectedAsImageSelection bool
	Link                       *Link
	Code                       *Code
}

func (*Image) SegmentType() SegmentType { return SegmentTypeImage }
func (i *Image) Selected() bool { return i.IsSelected }
func (i *Image) SetSelected(v bool) { i.IsSelected = v }
func (i *Image) SegmentFormat() *SegmentFormat { return &i.Format.SegmentFormat }
func (i *Image) Decorators() (*Link, *Code) { return i.Link, i.Code }
func (i *Image) SetDecorators(link *Link, code *Code) { i.Link, i.Code = link, code }

// Entity wraps a host owned element (both a block and a segment depending on
// where it is placed).
type Entity struct {
	Wrapper    *html.Node
	ID         string
	EntityType string
	IsReadonly bool
	IsSelected bool
	Format     SegmentFormat
}

func (*Entity) BlockType() BlockType { return BlockTypeEntity }
func (*Entity) SegmentType() SegmentType { return SegmentTypeEntity }
func (e *Entity) Selected() bool { return e.IsSelected }
func (e *Entity) SetSelected(v bool) { e.IsSelected = v }
func (e *Entity) SegmentFormat() *SegmentFormat { return &e.Format }
func (e *Entity) Decorators() (*Link, *Code) { return nil, nil }
func (e *Entity) SetDecorators(_ *Link, _ *Code) {}
