package convert

import (
	"encoding/json"

	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"cmodel/model"
)

// editingInfoKey is dataset key of list metadata written by editors.
const editingInfoKey = "editing-info"

// Valid ranges of list metadata style types.
const (
	minOrderedStyle   = 1
	maxOrderedStyle   = 19
	minUnorderedStyle = 1
	maxUnorderedStyle = 11
)

type listMetadata struct {
	OrderedStyleType        *int  `json:"orderedStyleType"`
	UnorderedStyleType      *int  `json:"unorderedStyleType"`
	ApplyListStyleFromLevel *bool `json:"applyListStyleFromLevel"`
}

func (m *listMetadata) valid() bool {
	inRange := func(v *int, lo, hi int) bool { return v == nil || (*v >= lo && *v <= hi) }
	return inRange(m.OrderedStyleType, minOrderedStyle, maxOrderedStyle) &&
		inRange(m.UnorderedStyleType, minUnorderedStyle, maxUnorderedStyle)
}

// validateListMetadata drops editing info which does not pass validation.
func validateListMetadata(dataset model.DatasetFormat, ctx *Context) {
	raw, ok := dataset[editingInfoKey]
	if !ok {
		return
	}
	var md listMetadata
	if err := json.Unmarshal([]byte(raw), &md); err != nil || !md.valid() {
		ctx.Log.Debug("Dropping invalid list metadata", zap.String("value", raw), zap.Error(err))
		delete(dataset, editingInfoKey)
	}
}

// listProcessor pushes list level for the duration of its children. Items
// of nested lists are added to the outermost group hosting the list.
func listProcessor(group model.BlockGroup, el *html.Node, ctx *Context) {
	var level model.ListLevel
	level.Format.ListType = "UL"
	if el.DataAtom == atom.Ol {
		level.Format.ListType = "OL"
	}
	level.Dataset = model.DatasetFormat{}
	parseFormat(el, ctx.FormatParsers.ListLevelThread, &level.Format, ctx)
	parseFormat(el, ctx.FormatParsers.ListLevel, &level.Format, ctx)
	parseFormat(el, ctx.FormatParsers.Dataset, level.Dataset, ctx)
	validateListMetadata(level.Dataset, ctx)
	if len(level.Dataset) == 0 {
		level.Dataset = nil
	}

	lf := &ctx.ListFormat
	parent, depth := lf.ListParent, len(lf.Levels)
	if lf.ListParent == nil {
		lf.ListParent = group
	}
	lf.Levels = append(lf.Levels, level)
	defer func() {
		lf.Levels = lf.Levels[:depth]
		lf.ListParent = parent
	}()

	StackFormat(ctx, StackOptions{Segment: ShallowCloneForBlock}, func() {
		parseFormat(el, ctx.FormatParsers.SegmentOnBlock, &ctx.SegmentFormat, ctx)
		ctx.Processors.Child(group, el, ctx)
	})
}

// listItemProcessor creates ListItem in current list parent. Item outside of
// a list is an arbitrary element.
func listItemProcessor(group model.BlockGroup, el *html.Node, ctx *Context) {
	lf := &ctx.ListFormat
	display := inlineValue(el, ctx, "display")
	if lf.ListParent == nil || len(lf.Levels) == 0 || (display != "" && display != "list-item") {
		ctx.Log.Debug("List item outside of list", zap.String("display", display))
		generalProcessor(group, el, ctx)
		return
	}

	var format model.ListItemFormat
	parseFormat(el, ctx.FormatParsers.ListItemThread, &format, ctx)
	parseFormat(el, ctx.FormatParsers.ListItem, &format, ctx)

	StackFormat(ctx, StackOptions{Segment: ShallowCloneForBlock, Paragraph: ShallowCopyInherit, BlockDecorator: Empty}, func() {
		parseFormat(el, ctx.FormatParsers.SegmentOnBlock, &ctx.SegmentFormat, ctx)

		li := model.NewListItem(lf.Levels, ctx.SegmentFormat)
		li.Format = format
		li.FormatHolder.IsSelected = ctx.IsInSelection
		lf.ListParent.AddBlock(li)
		// start override belongs to the first item only
		for i := range lf.Levels {
			lf.Levels[i].Format.StartNumberOverride = 0
		}

		ctx.Processors.Child(li, el, ctx)

		if blocks := li.Blocks(); len(blocks) == 1 {
			if p, ok := blocks[0].(*model.Paragraph); ok && p.IsImplicit {
				mergeBlockFormat(&li.Format.BlockFormat, p.Format)
				p.Format = model.BlockFormat{}
			}
		}
		if ctx.AllowCacheElement {
			li.SetCachedElement(el)
		}
	})
}

// mergeBlockFormat copies properties set in src over dst.
func mergeBlockFormat(dst *model.BlockFormat, src model.BlockFormat) {
	set := func(d *string, s string) {
		if s != "" {
			*d = s
		}
	}
	set(&dst.BackgroundColor, src.BackgroundColor)
	set(&dst.Direction, src.Direction)
	set(&dst.TextAlign, src.TextAlign)
	set(&dst.MarginTop, src.MarginTop)
	set(&dst.MarginRight, src.MarginRight)
	set(&dst.MarginBottom, src.MarginBottom)
	set(&dst.MarginLeft, src.MarginLeft)
	set(&dst.PaddingTop, src.PaddingTop)
	set(&dst.PaddingRight, src.PaddingRight)
	set(&dst.PaddingBottom, src.PaddingBottom)
	set(&dst.PaddingLeft, src.PaddingLeft)
	set(&dst.LineHeight, src.LineHeight)
	set(&dst.WhiteSpace, src.WhiteSpace)
	set(&dst.BorderTop, src.BorderTop)
	set(&dst.BorderRight, src.BorderRight)
	set(&dst.BorderBottom, src.BorderBottom)
	set(&dst.BorderLeft, src.BorderLeft)
	set(&dst.BorderRadius, src.BorderRadius)
	set(&dst.TextIndent, src.TextIndent)
}
