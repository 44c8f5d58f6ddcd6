package convert

import (
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/net/html"

	"cmodel/model"
)

// fontSizes maps legacy <font size> values 1..7 to pixels.
var fontSizes = [...]string{"10px", "13px", "16px", "18px", "24px", "32px", "48px"}

// linkProcessor starts link decorator for anchors with href, other anchors
// are plain inline elements.
func linkProcessor(group model.BlockGroup, el *html.Node, ctx *Context) {
	if !hasAttr(el, "href") {
		knownElementProcessor(group, el, ctx)
		return
	}
	StackFormat(ctx, StackOptions{Link: LinkDefault}, func() {
		parseFormat(el, ctx.FormatParsers.Link, &ctx.Link.Format, ctx)
		parseFormat(el, ctx.FormatParsers.Dataset, ctx.Link.Dataset, ctx)
		if len(ctx.Link.Dataset) == 0 {
			ctx.Link.Dataset = nil
		}
		knownElementProcessor(group, el, ctx)
	})
}

// codeProcessor starts code decorator, block formats of the element are not
// passed to its children.
func codeProcessor(group model.BlockGroup, el *html.Node, ctx *Context) {
	StackFormat(ctx, StackOptions{Code: CodeDefault, Paragraph: ShallowCopyInherit}, func() {
		parseFormat(el, ctx.FormatParsers.Code, &ctx.Code.Format, ctx)
		knownElementProcessor(group, el, ctx)
	})
}

// legacyFontSize parses leading integer of size attribute the way browsers
// do, "+1" and "-1" included.
func legacyFontSize(s string) (string, bool) {
	s = strings.TrimSpace(s)
	end := 0
	for end < len(s) && (unicode.IsDigit(rune(s[end])) || (end == 0 && (s[0] == '+' || s[0] == '-'))) {
		end++
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return "", false
	}
	return fontSizes[min(max(n, 1), len(fontSizes))-1], true
}

func fontProcessor(group model.BlockGroup, el *html.Node, ctx *Context) {
	StackFormat(ctx, StackOptions{Segment: ShallowClone}, func() {
		f := &ctx.SegmentFormat
		if face := attr(el, "face"); face != "" {
			f.FontFamily = face
		}
		if size, ok := legacyFontSize(attr(el, "size")); ok {
			f.FontSize = size
		}
		if color := attr(el, "color"); color != "" {
			f.TextColor = color
		}
		// inline style wins over attributes
		parseFormat(el, ctx.FormatParsers.Segment, f, ctx)
		ctx.Processors.Child(group, el, ctx)
	})
}

func imageProcessor(group model.BlockGroup, el *html.Node, ctx *Context) {
	StackFormat(ctx, StackOptions{Segment: ShallowClone}, func() {
		parseFormat(el, ctx.FormatParsers.Segment, &ctx.SegmentFormat, ctx)
		format := model.ImageFormat{SegmentFormat: ctx.SegmentFormat}
		parseFormat(el, ctx.FormatParsers.Image, &format, ctx)

		img := model.NewImage(attr(el, "src"), format)
		img.Alt, img.Title = attr(el, "alt"), attr(el, "title")
		img.Dataset = model.DatasetFormat{}
		parseFormat(el, ctx.FormatParsers.Dataset, img.Dataset, ctx)
		if len(img.Dataset) == 0 {
			img.Dataset = nil
		}
		img.IsSelected = ctx.IsInSelection
		if ctx.ImageSelection != nil && ctx.ImageSelection.Image == el {
			img.IsSelected = true
			img.IsSelectedAsImageSelection = true
		}
		addDecorators(img, ctx)
		addSegment(group, img, ctx)
	})
}

func brProcessor(group model.BlockGroup, _ *html.Node, ctx *Context) {
	br := model.NewBr(ctx.SegmentFormat)
	br.IsSelected = ctx.IsInSelection
	addDecorators(br, ctx)
	addSegment(group, br, ctx)
}
