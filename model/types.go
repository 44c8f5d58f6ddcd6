// Package model defines content model - DOM independent tree representation
// of editable document.
package model

//go:generate go tool go-enum --marshal --names

// BlockType identifies kind of block.
// ENUM(Paragraph, Table, Divider, Entity, BlockGroup)
type BlockType int

// BlockGroupType identifies kind of block group.
// ENUM(Document, FormatContainer, General, ListItem, TableCell, Quote)
type BlockGroupType int

// SegmentType identifies kind of inline segment.
// ENUM(Text, Image, Br, SelectionMarker, Entity, General)
type SegmentType int
