package convert

import (
	"golang.org/x/net/html"

	"cmodel/css"
	"cmodel/model"
)

// FormatParser reads one aspect of format from element into format. def is
// default style of the element tag.
type FormatParser[T any] func(format T, el *html.Node, ctx *Context, def css.Style)

// FormatParsers holds ordered parser lists per format category.
type FormatParsers struct {
	// Block parses inheritable block properties.
	Block []FormatParser[*model.BlockFormat]
	// Container parses box properties of block elements.
	Container []FormatParser[*model.FormatContainerFormat]
	Segment   []FormatParser[*model.SegmentFormat]
	// SegmentOnBlock parses segment properties stored on paragraph itself.
	SegmentOnBlock  []FormatParser[*model.SegmentFormat]
	Link            []FormatParser[*model.HyperLinkFormat]
	Dataset         []FormatParser[model.DatasetFormat]
	ListLevel       []FormatParser[*model.ListLevelFormat]
	ListLevelThread []FormatParser[*model.ListLevelFormat]
	ListItem        []FormatParser[*model.ListItemFormat]
	ListItemThread  []FormatParser[*model.ListItemFormat]
	Table           []FormatParser[*model.TableFormat]
	TableCell       []FormatParser[*model.TableCellFormat]
	Image           []FormatParser[*model.ImageFormat]
	Divider         []FormatParser[*model.DividerFormat]
	Code            []FormatParser[*model.CodeFormat]
	Quote           []FormatParser[*model.FormatContainerFormat]
	Root            []FormatParser[*model.BlockFormat]
}

// DefaultFormatParsers returns parsers used by default.
func DefaultFormatParsers() FormatParsers {
	return FormatParsers{
		Block: []FormatParser[*model.BlockFormat]{
			parseDirection[*model.BlockFormat],
			parseTextAlign[*model.BlockFormat],
			parseLineHeight[*model.BlockFormat],
			parseWhiteSpace[*model.BlockFormat],
			parseTextIndent[*model.BlockFormat],
		},
		Container: []FormatParser[*model.FormatContainerFormat]{
			parseBackgroundColor[*model.FormatContainerFormat],
			parseMargin[*model.FormatContainerFormat],
			parsePadding[*model.FormatContainerFormat],
			parseBorder[*model.FormatContainerFormat],
			parseSize[*model.FormatContainerFormat],
			parseDisplay[*model.FormatContainerFormat],
		},
		Segment:        segmentParsers(true),
		SegmentOnBlock: segmentParsers(false),
		Link: []FormatParser[*model.HyperLinkFormat]{
			parseLink[*model.HyperLinkFormat],
			parseTextColor[*model.HyperLinkFormat],
			parseBackgroundColor[*model.HyperLinkFormat],
			parseUnderline[*model.HyperLinkFormat],
			parseDisplay[*model.HyperLinkFormat],
		},
		Dataset: []FormatParser[model.DatasetFormat]{
			parseDataset,
		},
		ListLevel: []FormatParser[*model.ListLevelFormat]{
			parseDirection[*model.ListLevelFormat],
			parseTextAlign[*model.ListLevelFormat],
			parseMargin[*model.ListLevelFormat],
			parsePadding[*model.ListLevelFormat],
			parseListStyle[*model.ListLevelFormat],
		},
		ListLevelThread: []FormatParser[*model.ListLevelFormat]{
			parseListLevelThread,
		},
		ListItem: []FormatParser[*model.ListItemFormat]{
			parseDirection[*model.ListItemFormat],
			parseTextAlign[*model.ListItemFormat],
			parseLineHeight[*model.ListItemFormat],
			parseMargin[*model.ListItemFormat],
			parseBackgroundColor[*model.ListItemFormat],
			parseListStyle[*model.ListItemFormat],
		},
		ListItemThread: []FormatParser[*model.ListItemFormat]{
			parseListItemThread,
		},
		Table: []FormatParser[*model.TableFormat]{
			parseID[*model.TableFormat],
			parseBorder[*model.TableFormat],
			parseBorderBox[*model.TableFormat],
			parseSpacing[*model.TableFormat],
			parseMargin[*model.TableFormat],
			parseBackgroundColor[*model.TableFormat],
			parseDisplay[*model.TableFormat],
			parseTableLayout[*model.TableFormat],
			parseSize[*model.TableFormat],
		},
		TableCell: []FormatParser[*model.TableCellFormat]{
			parseBorder[*model.TableCellFormat],
			parseBorderBox[*model.TableCellFormat],
			parseBackgroundColor[*model.TableCellFormat],
			parsePadding[*model.TableCellFormat],
			parseDirection[*model.TableCellFormat],
			parseTextAlign[*model.TableCellFormat],
			parseVerticalAlign[*model.TableCellFormat],
			parseWordBreak[*model.TableCellFormat],
			parseTextColor[*model.TableCellFormat],
			parseSize[*model.TableCellFormat],
		},
		Image: []FormatParser[*model.ImageFormat]{
			parseID[*model.ImageFormat],
			parseSize[*model.ImageFormat],
			parseMargin[*model.ImageFormat],
			parsePadding[*model.ImageFormat],
			parseBorder[*model.ImageFormat],
			parseBoxShadow[*model.ImageFormat],
			parseDisplay[*model.ImageFormat],
			parseFloat[*model.ImageFormat],
			parseVerticalAlign[*model.ImageFormat],
		},
		Divider: []FormatParser[*model.DividerFormat]{
			parseDisplay[*model.DividerFormat],
			parseSize[*model.DividerFormat],
			parseMargin[*model.DividerFormat],
			parsePadding[*model.DividerFormat],
			parseBorder[*model.DividerFormat],
		},
		Code: []FormatParser[*model.CodeFormat]{
			parseFontFamily[*model.CodeFormat],
			parseDisplay[*model.CodeFormat],
		},
		Quote: []FormatParser[*model.FormatContainerFormat]{
			parseBackgroundColor[*model.FormatContainerFormat],
			parseMargin[*model.FormatContainerFormat],
			parsePadding[*model.FormatContainerFormat],
			parseBorder[*model.FormatContainerFormat],
		},
		Root: []FormatParser[*model.BlockFormat]{
			parseDirection[*model.BlockFormat],
		},
	}
}

// segmentParsers lists segment parsers, background color of block elements
// belongs to the block.
func segmentParsers(withBackground bool) []FormatParser[*model.SegmentFormat] {
	parsers := []FormatParser[*model.SegmentFormat]{
		parseSuperOrSubScript[*model.SegmentFormat],
		parseStrike[*model.SegmentFormat],
		parseFontFamily[*model.SegmentFormat],
		parseFontSize[*model.SegmentFormat],
		parseUnderline[*model.SegmentFormat],
		parseItalic[*model.SegmentFormat],
		parseBold[*model.SegmentFormat],
		parseTextColor[*model.SegmentFormat],
		parseLineHeight[*model.SegmentFormat],
		parseLetterSpacing[*model.SegmentFormat],
		parseLang[*model.SegmentFormat],
	}
	if withBackground {
		parsers = append(parsers, parseBackgroundColor[*model.SegmentFormat])
	}
	return parsers
}

// parseFormat runs parsers of a category over element.
func parseFormat[T any](el *html.Node, parsers []FormatParser[T], format T, ctx *Context) {
	def := ctx.defaultStyle(el)
	for _, parse := range parsers {
		parse(format, el, ctx, def)
	}
}
