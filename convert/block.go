package convert

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"cmodel/css"
	"cmodel/model"
)

var blockDisplays = map[string]bool{
	"block":      true,
	"list-item":  true,
	"table":      true,
	"table-cell": true,
	"flex":       true,
	"grid":       true,
}

// isBlockElement decides by display from inline style, then from default
// style of the tag.
func isBlockElement(el *html.Node, ctx *Context) bool {
	display := inlineValue(el, ctx, "display")
	if display == "" {
		display = ctx.defaultStyle(el).Raw("display")
	}
	return blockDisplays[display]
}

// decoratorTags never start a paragraph of their own.
var decoratorTags = map[atom.Atom]bool{
	atom.A:    true,
	atom.Code: true,
}

// knownElementProcessor handles elements whose semantics are fully
// described by their style.
func knownElementProcessor(group model.BlockGroup, el *html.Node, ctx *Context) {
	if !isBlockElement(el, ctx) {
		StackFormat(ctx, StackOptions{Segment: ShallowClone}, func() {
			parseFormat(el, ctx.FormatParsers.Segment, &ctx.SegmentFormat, ctx)
			ctx.Processors.Child(group, el, ctx)
		})
		return
	}
	if needsFormatContainer(ctx.styleOf(el)) {
		formatContainerProcessor(group, el, ctx)
		return
	}
	blockProcessor(group, el, ctx, nil)
	addImplicitParagraph(group, ctx)
}

// needsFormatContainer is true for styles which can not be carried by
// paragraph format alone (vertical spacing and borders apply to the box of
// all children).
func needsFormatContainer(style css.Style) bool {
	for _, d := range style {
		switch d.Property {
		case "margin-top", "margin-bottom", "padding-top", "padding-bottom":
			if v, ok := css.ParseDimension(d.Value.Raw); !ok || v.Value != 0 {
				return true
			}
		case "border-top", "border-right", "border-bottom", "border-left",
			"border-top-width", "border-right-width", "border-bottom-width", "border-left-width",
			"border-top-style", "border-right-style", "border-bottom-style", "border-left-style":
			return true
		}
	}
	return false
}

// blockProcessor converts block element into explicit paragraph which
// receives inline content of the element. When decorator is set segment
// formats of the element were already captured by it.
func blockProcessor(group model.BlockGroup, el *html.Node, ctx *Context, decorator *model.ParagraphDecorator) {
	StackFormat(ctx, StackOptions{Segment: ShallowCloneForBlock, Paragraph: ShallowClone, BlockDecorator: Empty}, func() {
		format := parseBlockFormat(el, ctx)
		zero := isZeroFontSize(el, ctx)
		if decorator == nil {
			fontSize := ctx.SegmentFormat.FontSize
			parseFormat(el, ctx.FormatParsers.SegmentOnBlock, &ctx.SegmentFormat, ctx)
			if zero {
				ctx.SegmentFormat.FontSize = fontSize
			}
		}

		var p *model.Paragraph
		if !decoratorTags[el.DataAtom] {
			p = model.NewParagraph(false, format, nil, decorator)
			p.ZeroFontSize = zero
			group.AddBlock(p)
		}
		ctx.BlockDecorator = decorator
		ctx.Processors.Child(group, el, ctx)
		if p != nil && ctx.AllowCacheElement {
			p.SetCachedElement(el)
		}
	})
}

// parseBlockFormat parses inheritable properties into context and returns
// format of the paragraph produced for element. Horizontal box properties
// are folded back into context, nested blocks accumulate indentation.
func parseBlockFormat(el *html.Node, ctx *Context) model.BlockFormat {
	parseFormat(el, ctx.FormatParsers.Block, &ctx.BlockFormat, ctx)
	container := model.FormatContainerFormat{BlockFormat: ctx.BlockFormat}
	parseFormat(el, ctx.FormatParsers.Container, &container, ctx)

	ctx.BlockFormat.MarginLeft = container.MarginLeft
	ctx.BlockFormat.MarginRight = container.MarginRight
	ctx.BlockFormat.PaddingLeft = container.PaddingLeft
	ctx.BlockFormat.PaddingRight = container.PaddingRight
	return container.BlockFormat
}

func isZeroFontSize(el *html.Node, ctx *Context) bool {
	v, ok := css.ParseDimension(inlineValue(el, ctx, "font-size"))
	return ok && v.Value == 0
}

// headingProcessor handles headings and <p>: the tag and its segment format
// are recorded in paragraph decorator instead of being pushed down to text.
func headingProcessor(group model.BlockGroup, el *html.Node, ctx *Context) {
	if needsFormatContainer(ctx.styleOf(el)) && el.DataAtom == atom.P {
		formatContainerProcessor(group, el, ctx)
		return
	}
	StackFormat(ctx, StackOptions{Segment: ShallowCloneForBlock}, func() {
		var format model.SegmentFormat
		format.FontSize = ctx.SegmentFormat.FontSize
		parseFormat(el, ctx.FormatParsers.SegmentOnBlock, &format, ctx)
		if format.FontSize == ctx.SegmentFormat.FontSize {
			format.FontSize = ""
		}
		blockProcessor(group, el, ctx, model.NewParagraphDecorator(el.Data, format))
	})
	addImplicitParagraph(group, ctx)
}

func formatContainerProcessor(group model.BlockGroup, el *html.Node, ctx *Context) {
	tag := "div"
	if ctx.defaultStyle(el).Raw("display") == "block" {
		tag = el.Data
	}
	formatContainer(group, el, ctx, tag)
}

// formatContainer wraps children of element into FormatContainer. Container
// holding nothing but one implicit paragraph collapses into a paragraph.
func formatContainer(group model.BlockGroup, el *html.Node, ctx *Context, tag string) {
	StackFormat(ctx, StackOptions{Segment: ShallowCloneForBlock, Paragraph: ShallowClone, BlockDecorator: Empty}, func() {
		parseFormat(el, ctx.FormatParsers.Block, &ctx.BlockFormat, ctx)
		format := model.FormatContainerFormat{BlockFormat: ctx.BlockFormat}
		parseFormat(el, ctx.FormatParsers.Container, &format, ctx)

		zero := isZeroFontSize(el, ctx)
		fontSize := ctx.SegmentFormat.FontSize
		parseFormat(el, ctx.FormatParsers.SegmentOnBlock, &ctx.SegmentFormat, ctx)
		if zero {
			ctx.SegmentFormat.FontSize = fontSize
		}

		// rendered by the container itself
		ctx.BlockFormat.MarginLeft, ctx.BlockFormat.MarginRight = "", ""
		ctx.BlockFormat.PaddingLeft, ctx.BlockFormat.PaddingRight = "", ""

		fc := model.NewFormatContainer(tag, format)
		fc.ZeroFontSize = zero
		ctx.Processors.Child(fc, el, ctx)

		if p := collapsible(fc); p != nil {
			np := model.NewParagraph(false, format.BlockFormat, p.SegmentFormat, p.Decorator)
			np.SetSegments(p.Segments()...)
			np.ZeroFontSize = zero
			group.AddBlock(np)
			return
		}
		if ctx.AllowCacheElement {
			fc.SetCachedElement(el)
		}
		group.AddBlock(fc)
	})
	addImplicitParagraph(group, ctx)
}

// collapsible returns sole implicit paragraph of container whose own format
// could be carried by a paragraph.
func collapsible(fc *model.FormatContainer) *model.Paragraph {
	blocks := fc.Blocks()
	if len(blocks) != 1 || fc.Format.SizeFormat != (model.SizeFormat{}) || fc.Format.Display != "" {
		return nil
	}
	if p, ok := blocks[0].(*model.Paragraph); ok && p.IsImplicit {
		return p
	}
	return nil
}

// isIndentation reports blockquote produced by browser indentation, it
// carries nothing but zero vertical margins.
func isIndentation(style css.Style) bool {
	if len(style) != 2 {
		return false
	}
	for _, name := range []string{"margin-top", "margin-bottom"} {
		if v, ok := style.Get(name); !ok || !v.IsNumeric() || v.Value != 0 {
			return false
		}
	}
	return true
}

// quoteProcessor creates Quote group. Indentation blockquote becomes plain
// container.
func quoteProcessor(group model.BlockGroup, el *html.Node, ctx *Context) {
	if isIndentation(ctx.styleOf(el)) {
		formatContainer(group, el, ctx, "div")
		return
	}

	StackFormat(ctx, StackOptions{Segment: ShallowCloneForBlock, Paragraph: ShallowClone, BlockDecorator: Empty}, func() {
		parseFormat(el, ctx.FormatParsers.Block, &ctx.BlockFormat, ctx)
		var format model.FormatContainerFormat
		parseFormat(el, ctx.FormatParsers.Quote, &format, ctx)
		parseFormat(el, ctx.FormatParsers.SegmentOnBlock, &ctx.SegmentFormat, ctx)

		ctx.BlockFormat.MarginLeft, ctx.BlockFormat.MarginRight = "", ""
		ctx.BlockFormat.PaddingLeft, ctx.BlockFormat.PaddingRight = "", ""

		q := model.NewQuote(format)
		ctx.Processors.Child(q, el, ctx)
		if ctx.AllowCacheElement {
			q.SetCachedElement(el)
		}
		group.AddBlock(q)
	})
	addImplicitParagraph(group, ctx)
}

func hrProcessor(group model.BlockGroup, el *html.Node, ctx *Context) {
	var format model.DividerFormat
	parseFormat(el, ctx.FormatParsers.Divider, &format, ctx)
	d := model.NewDivider(el.Data, format)
	d.IsSelected = ctx.IsInSelection
	if ctx.AllowCacheElement {
		d.SetCachedElement(el)
	}
	group.AddBlock(d)
}
