package model

import (
	"slices"

	"golang.org/x/net/html"
)

// BlockGroup is a container of blocks. Block groups (except Document and
// TableCell) are blocks themselves.
type BlockGroup interface {
	BlockGroupType() BlockGroupType
	Blocks() []Block
	SetBlocks(blocks ...Block)
	AddBlock(b Block)
	InsertBlocks(i int, blocks ...Block)
	RemoveBlockAt(i int)
	ReplaceBlockAt(i int, blocks ...Block)
	IndexOfBlock(b Block) int
}

type group struct {
	Cache
	blocks []Block
}

func (g *group) Blocks() []Block {
	return g.blocks
}

func (g *group) SetBlocks(blocks ...Block) {
	g.blocks = blocks
	g.Touch()
}

func (g *group) AddBlock(b Block) {
	g.blocks = append(g.blocks, b)
	g.Touch()
}

func (g *group) InsertBlocks(i int, blocks ...Block) {
	g.blocks = slices.Insert(g.blocks, i, blocks...)
	g.Touch()
}

func (g *group) RemoveBlockAt(i int) {
	g.blocks = slices.Delete(g.blocks, i, i+1)
	g.Touch()
}

func (g *group) ReplaceBlockAt(i int, blocks ...Block) {
	g.blocks = slices.Replace(g.blocks, i, i+1, blocks...)
	g.Touch()
}

func (g *group) IndexOfBlock(b Block) int {
	for i, blk := range g.blocks {
		if blk == b {
			return i
		}
	}
	return -1
}

// LastBlock returns last block of the group or nil.
func LastBlock(g BlockGroup) Block {
	blocks := g.Blocks()
	if len(blocks) == 0 {
		return nil
	}
	return blocks[len(blocks)-1]
}

// Document is the root of content model.
type Document struct {
	group
	// Format is default segment format of the document.
	Format SegmentFormat
}

func (*Document) BlockGroupType() BlockGroupType { return BlockGroupTypeDocument }

// FormatContainer is a generic container carrying container level format
// (borders, margins, size) for its children.
type FormatContainer struct {
	group
	TagName      string
	Format       FormatContainerFormat
	ZeroFontSize bool
}

func (*FormatContainer) BlockType() BlockType { return BlockTypeBlockGroup }
func (*FormatContainer) BlockGroupType() BlockGroupType { return BlockGroupTypeFormatContainer }

// Quote is a block quotation.
type Quote struct {
	group
	Format FormatContainerFormat
}

func (*Quote) BlockType() BlockType { return BlockTypeBlockGroup }
func (*Quote) BlockGroupType() BlockGroupType { return BlockGroupTypeQuote }

// ListLevel is format of one nesting level of a list.
type ListLevel struct {
	Format  ListLevelFormat
	Dataset DatasetFormat
}

// ListItem is an item of (possibly nested) list.
type ListItem struct {
	group
	// Levels are ordered from outer to inner list.
	Levels []ListLevel
	// FormatHolder stands for the whole item when format of the item (bullet
	// or number) is queried or changed.
	FormatHolder *SelectionMarker
	Format       ListItemFormat
}

func (*ListItem) BlockType() BlockType { return BlockTypeBlockGroup }
func (*ListItem) BlockGroupType() BlockGroupType { return BlockGroupTypeListItem }

// General wraps an element which has no dedicated model, keeping it opaque.
type General struct {
	group
	Element    *html.Node
	IsSelected bool
}

func (*General) BlockType() BlockType { return BlockTypeBlockGroup }
func (*General) BlockGroupType() BlockGroupType { return BlockGroupTypeGeneral }

// GeneralSegment is a General placed inline.
type GeneralSegment struct {
	General
	Format SegmentFormat
	Link   *Link
	Code   *Code
}

func (*GeneralSegment) SegmentType() SegmentType { return SegmentTypeGeneral }
func (g *GeneralSegment) Selected() bool { return g.IsSelected }
func (g *GeneralSegment) SetSelected(v bool) { g.IsSelected = v }
func (g *GeneralSegment) SegmentFormat() *SegmentFormat { return &g.Format }
func (g *GeneralSegment) Decorators() (*Link, *Code) { return g.Link, g.Code }
func (g *GeneralSegment) SetDecorators(link *Link, code *Code) { g.Link, g.Code = link, code }

// TableCell is a cell of a table. Cells covered by span of another cell are
// placeholders with SpanLeft or SpanAbove set.
type TableCell struct {
	group
	Format     TableCellFormat
	Dataset    DatasetFormat
	SpanLeft   bool
	SpanAbove  bool
	IsHeader   bool
	IsSelected bool
}

func (*TableCell) BlockType() BlockType { return BlockTypeBlockGroup }
func (*TableCell) BlockGroupType() BlockGroupType { return BlockGroupTypeTableCell }
