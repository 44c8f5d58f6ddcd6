package model

import "maps"

// Formats are plain structs built from small aspects. Zero value of any field
// means "unset", so aggregate formats are comparable with ==. Every aspect
// exposes As<Aspect>() accessor which is promoted through embedding and lets
// format parsers work with any aggregate containing the aspect.

type DirectionFormat struct {
	Direction string `json:"direction,omitempty"`
}

func (f *DirectionFormat) AsDirection() *DirectionFormat { return f }

type TextAlignFormat struct {
	TextAlign string `json:"textAlign,omitempty"`
}

func (f *TextAlignFormat) AsTextAlign() *TextAlignFormat { return f }

type MarginFormat struct {
	MarginTop    string `json:"marginTop,omitempty"`
	MarginRight  string `json:"marginRight,omitempty"`
	MarginBottom string `json:"marginBottom,omitempty"`
	MarginLeft   string `json:"marginLeft,omitempty"`
}

func (f *MarginFormat) AsMargin() *MarginFormat { return f }

type PaddingFormat struct {
	PaddingTop    string `json:"paddingTop,omitempty"`
	PaddingRight  string `json:"paddingRight,omitempty"`
	PaddingBottom string `json:"paddingBottom,omitempty"`
	PaddingLeft   string `json:"paddingLeft,omitempty"`
}

func (f *PaddingFormat) AsPadding() *PaddingFormat { return f }

type BorderFormat struct {
	BorderTop    string `json:"borderTop,omitempty"`
	BorderRight  string `json:"borderRight,omitempty"`
	BorderBottom string `json:"borderBottom,omitempty"`
	BorderLeft   string `json:"borderLeft,omitempty"`
	BorderRadius string `json:"borderRadius,omitempty"`
}

func (f *BorderFormat) AsBorder() *BorderFormat { return f }

type BackgroundColorFormat struct {
	BackgroundColor string `json:"backgroundColor,omitempty"`
}

func (f *BackgroundColorFormat) AsBackgroundColor() *BackgroundColorFormat { return f }

type TextColorFormat struct {
	TextColor string `json:"textColor,omitempty"`
}

func (f *TextColorFormat) AsTextColor() *TextColorFormat { return f }

type LineHeightFormat struct {
	LineHeight string `json:"lineHeight,omitempty"`
}

func (f *LineHeightFormat) AsLineHeight() *LineHeightFormat { return f }

type WhiteSpaceFormat struct {
	WhiteSpace string `json:"whiteSpace,omitempty"`
}

// PreservesWhiteSpace reports whether white space is rendered as is.
func (f WhiteSpaceFormat) PreservesWhiteSpace() bool {
	switch f.WhiteSpace {
	case "pre", "pre-wrap", "pre-line", "break-spaces":
		return true
	}
	return false
}

func (f *WhiteSpaceFormat) AsWhiteSpace() *WhiteSpaceFormat { return f }

type TextIndentFormat struct {
	TextIndent string `json:"textIndent,omitempty"`
}

func (f *TextIndentFormat) AsTextIndent() *TextIndentFormat { return f }

type DisplayFormat struct {
	Display string `json:"display,omitempty"`
}

func (f *DisplayFormat) AsDisplay() *DisplayFormat { return f }

type SizeFormat struct {
	Width     string `json:"width,omitempty"`
	Height    string `json:"height,omitempty"`
	MinWidth  string `json:"minWidth,omitempty"`
	MaxWidth  string `json:"maxWidth,omitempty"`
	MinHeight string `json:"minHeight,omitempty"`
	MaxHeight string `json:"maxHeight,omitempty"`
}

func (f *SizeFormat) AsSize() *SizeFormat { return f }

type FontFamilyFormat struct {
	FontFamily string `json:"fontFamily,omitempty"`
}

func (f *FontFamilyFormat) AsFontFamily() *FontFamilyFormat { return f }

type FontSizeFormat struct {
	FontSize string `json:"fontSize,omitempty"`
}

func (f *FontSizeFormat) AsFontSize() *FontSizeFormat { return f }

type BoldFormat struct {
	FontWeight string `json:"fontWeight,omitempty"`
}

func (f *BoldFormat) AsBold() *BoldFormat { return f }

type ItalicFormat struct {
	Italic bool `json:"italic,omitempty"`
}

func (f *ItalicFormat) AsItalic() *ItalicFormat { return f }

type UnderlineFormat struct {
	Underline bool `json:"underline,omitempty"`
}

func (f *UnderlineFormat) AsUnderline() *UnderlineFormat { return f }

type StrikeFormat struct {
	Strikethrough bool `json:"strikethrough,omitempty"`
}

func (f *StrikeFormat) AsStrike() *StrikeFormat { return f }

// SuperOrSubScriptFormat keeps nested sup/sub as a space separated sequence,
// e.g. "super sub" for <sup><sub>.
type SuperOrSubScriptFormat struct {
	SuperOrSubScriptSequence string `json:"superOrSubScriptSequence,omitempty"`
}

func (f *SuperOrSubScriptFormat) AsSuperOrSubScript() *SuperOrSubScriptFormat { return f }

type LetterSpacingFormat struct {
	LetterSpacing string `json:"letterSpacing,omitempty"`
}

func (f *LetterSpacingFormat) AsLetterSpacing() *LetterSpacingFormat { return f }

type LangFormat struct {
	Lang string `json:"lang,omitempty"`
}

func (f *LangFormat) AsLang() *LangFormat { return f }

type LinkFormat struct {
	Href             string `json:"href,omitempty"`
	Target           string `json:"target,omitempty"`
	AnchorTitle      string `json:"anchorTitle,omitempty"`
	Name             string `json:"name,omitempty"`
	RelationshipType string `json:"relationshipType,omitempty"`
	AnchorID         string `json:"anchorId,omitempty"`
	AnchorClass      string `json:"anchorClass,omitempty"`
}

func (f *LinkFormat) AsLink() *LinkFormat { return f }

type ListTypeFormat struct {
	ListType string `json:"listType,omitempty"`
}

func (f *ListTypeFormat) AsListType() *ListTypeFormat { return f }

type ListStyleFormat struct {
	ListStyleType     string `json:"listStyleType,omitempty"`
	ListStylePosition string `json:"listStylePosition,omitempty"`
}

func (f *ListStyleFormat) AsListStyle() *ListStyleFormat { return f }

// ListThreadFormat ties ordered lists split across the document into one
// numbering thread.
type ListThreadFormat struct {
	StartNumberOverride int    `json:"startNumberOverride,omitempty"`
	ThreadID            string `json:"threadId,omitempty"`
}

func (f *ListThreadFormat) AsListThread() *ListThreadFormat { return f }

type VerticalAlignFormat struct {
	VerticalAlign string `json:"verticalAlign,omitempty"`
}

func (f *VerticalAlignFormat) AsVerticalAlign() *VerticalAlignFormat { return f }

type WordBreakFormat struct {
	WordBreak string `json:"wordBreak,omitempty"`
}

func (f *WordBreakFormat) AsWordBreak() *WordBreakFormat { return f }

type FloatFormat struct {
	Float string `json:"float,omitempty"`
}

func (f *FloatFormat) AsFloat() *FloatFormat { return f }

type BoxShadowFormat struct {
	BoxShadow string `json:"boxShadow,omitempty"`
}

func (f *BoxShadowFormat) AsBoxShadow() *BoxShadowFormat { return f }

type BorderBoxFormat struct {
	UseBorderBox bool `json:"useBorderBox,omitempty"`
}

func (f *BorderBoxFormat) AsBorderBox() *BorderBoxFormat { return f }

type SpacingFormat struct {
	BorderCollapse bool `json:"borderCollapse,omitempty"`
}

func (f *SpacingFormat) AsSpacing() *SpacingFormat { return f }

type TableLayoutFormat struct {
	TableLayout string `json:"tableLayout,omitempty"`
}

func (f *TableLayoutFormat) AsTableLayout() *TableLayoutFormat { return f }

type IDFormat struct {
	ID string `json:"id,omitempty"`
}

func (f *IDFormat) AsID() *IDFormat { return f }

// Aggregates.

// SegmentFormat is the format of inline content.
type SegmentFormat struct {
	TextColorFormat
	BackgroundColorFormat
	LetterSpacingFormat
	FontSizeFormat
	FontFamilyFormat
	BoldFormat
	ItalicFormat
	UnderlineFormat
	StrikeFormat
	SuperOrSubScriptFormat
	LineHeightFormat
	LangFormat
}

// IsEmpty reports whether no property is set.
func (f SegmentFormat) IsEmpty() bool { return f == SegmentFormat{} }

type BlockFormat struct {
	BackgroundColorFormat
	DirectionFormat
	TextAlignFormat
	MarginFormat
	PaddingFormat
	LineHeightFormat
	WhiteSpaceFormat
	BorderFormat
	TextIndentFormat
}

func (f BlockFormat) IsEmpty() bool { return f == BlockFormat{} }

type FormatContainerFormat struct {
	BlockFormat
	SizeFormat
	DisplayFormat
}

type ListItemFormat struct {
	BlockFormat
	ListStyleFormat
}

type ListLevelFormat struct {
	ListTypeFormat
	ListThreadFormat
	ListStyleFormat
	MarginFormat
	PaddingFormat
	DirectionFormat
	TextAlignFormat
}

type TableFormat struct {
	IDFormat
	BorderFormat
	BorderBoxFormat
	SpacingFormat
	MarginFormat
	BackgroundColorFormat
	DisplayFormat
	TableLayoutFormat
	SizeFormat
}

type TableCellFormat struct {
	BlockFormat
	BorderBoxFormat
	VerticalAlignFormat
	WordBreakFormat
	TextColorFormat
	SizeFormat
}

type ImageFormat struct {
	SegmentFormat
	IDFormat
	SizeFormat
	MarginFormat
	PaddingFormat
	BorderFormat
	BoxShadowFormat
	DisplayFormat
	FloatFormat
	VerticalAlignFormat
}

type HyperLinkFormat struct {
	LinkFormat
	TextColorFormat
	BackgroundColorFormat
	UnderlineFormat
	DisplayFormat
}

type CodeFormat struct {
	FontFamilyFormat
	DisplayFormat
}

type DividerFormat struct {
	BlockFormat
	DisplayFormat
	SizeFormat
}

// DatasetFormat keeps data-* attributes of an element, keys without "data-"
// prefix.
type DatasetFormat map[string]string

func (d DatasetFormat) Clone() DatasetFormat {
	if d == nil {
		return nil
	}
	return maps.Clone(d)
}

// Holder interfaces are satisfied by any aggregate embedding the aspect.

type (
	DirectionHolder        interface{ AsDirection() *DirectionFormat }
	TextAlignHolder        interface{ AsTextAlign() *TextAlignFormat }
	MarginHolder           interface{ AsMargin() *MarginFormat }
	PaddingHolder          interface{ AsPadding() *PaddingFormat }
	BorderHolder           interface{ AsBorder() *BorderFormat }
	BackgroundColorHolder  interface{ AsBackgroundColor() *BackgroundColorFormat }
	TextColorHolder        interface{ AsTextColor() *TextColorFormat }
	LineHeightHolder       interface{ AsLineHeight() *LineHeightFormat }
	WhiteSpaceHolder       interface{ AsWhiteSpace() *WhiteSpaceFormat }
	TextIndentHolder       interface{ AsTextIndent() *TextIndentFormat }
	DisplayHolder          interface{ AsDisplay() *DisplayFormat }
	SizeHolder             interface{ AsSize() *SizeFormat }
	FontFamilyHolder       interface{ AsFontFamily() *FontFamilyFormat }
	FontSizeHolder         interface{ AsFontSize() *FontSizeFormat }
	BoldHolder             interface{ AsBold() *BoldFormat }
	ItalicHolder           interface{ AsItalic() *ItalicFormat }
	UnderlineHolder        interface{ AsUnderline() *UnderlineFormat }
	StrikeHolder           interface{ AsStrike() *StrikeFormat }
	SuperOrSubScriptHolder interface {
		AsSuperOrSubScript() *SuperOrSubScriptFormat
	}
	LetterSpacingHolder interface{ AsLetterSpacing() *LetterSpacingFormat }
	LangHolder          interface{ AsLang() *LangFormat }
	LinkHolder          interface{ AsLink() *LinkFormat }
	ListTypeHolder      interface{ AsListType() *ListTypeFormat }
	ListStyleHolder     interface{ AsListStyle() *ListStyleFormat }
	ListThreadHolder    interface{ AsListThread() *ListThreadFormat }
	VerticalAlignHolder interface{ AsVerticalAlign() *VerticalAlignFormat }
	WordBreakHolder     interface{ AsWordBreak() *WordBreakFormat }
	FloatHolder         interface{ AsFloat() *FloatFormat }
	BoxShadowHolder     interface{ AsBoxShadow() *BoxShadowFormat }
	BorderBoxHolder     interface{ AsBorderBox() *BorderBoxFormat }
	SpacingHolder       interface{ AsSpacing() *SpacingFormat }
	TableLayoutHolder   interface{ AsTableLayout() *TableLayoutFormat }
	IDHolder            interface{ AsID() *IDFormat }
)
