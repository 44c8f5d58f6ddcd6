package convert

import (
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"

	"cmodel/model"
)

// Convert builds content model of root. Conversion never fails: unknown
// markup degrades to general blocks and malformed values are ignored.
func Convert(root *html.Node, ctx *Context) *model.Document {
	doc := model.NewDocument(&ctx.DefaultFormat)
	if root == nil {
		return doc
	}
	rootProcessor(doc, root, ctx)
	removeEmptyParagraphs(doc)

	ctx.Log.Debug("Converted",
		zap.String("root", root.Data),
		zap.Int("blocks", len(doc.Blocks())),
		zap.Bool("selection", ctx.RegularSelection != nil || ctx.TableSelection != nil || ctx.ImageSelection != nil))
	return doc
}

// rootProcessor converts children of root. Root contributes its direction
// and zoom, its other formats belong to the host.
func rootProcessor(group model.BlockGroup, root *html.Node, ctx *Context) {
	if root.Type == html.ElementNode {
		parseFormat(root, ctx.FormatParsers.Root, &ctx.BlockFormat, ctx)
		if zoom, ok := parseZoom(inlineValue(root, ctx, "zoom")); ok {
			ctx.ZoomScale = zoom
		}
	}
	ctx.Processors.Child(group, root, ctx)
}

func parseZoom(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	if p, ok := strings.CutSuffix(s, "%"); ok {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil || v <= 0 {
			return 0, false
		}
		return v / 100, true
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// removeEmptyParagraphs drops paragraphs without segments left behind by
// wrapper elements, descending into all groups.
func removeEmptyParagraphs(group model.BlockGroup) {
	blocks := group.Blocks()
	kept := make([]model.Block, 0, len(blocks))
	changed := false
	for _, b := range blocks {
		switch v := b.(type) {
		case *model.Paragraph:
			if len(v.Segments()) == 0 {
				changed = true
				continue
			}
			for _, s := range v.Segments() {
				if g, ok := s.(*model.GeneralSegment); ok {
					removeEmptyParagraphs(g)
				}
			}
		case *model.Table:
			for _, row := range v.Rows() {
				for _, cell := range row.Cells() {
					if cell != nil && !cell.SpanLeft && !cell.SpanAbove {
						removeEmptyParagraphs(cell)
					}
				}
			}
		case model.BlockGroup:
			removeEmptyParagraphs(v)
		}
		kept = append(kept, b)
	}
	if changed {
		el := cachedOf(group)
		group.SetBlocks(kept...)
		restoreCache(group, el)
	}
}

type cacheHolder interface {
	CachedElement() *html.Node
	SetCachedElement(*html.Node)
}

// Cleanup must not invalidate elements cached during conversion.
func cachedOf(group model.BlockGroup) *html.Node {
	if c, ok := group.(cacheHolder); ok {
		return c.CachedElement()
	}
	return nil
}

func restoreCache(group model.BlockGroup, el *html.Node) {
	if c, ok := group.(cacheHolder); ok && el != nil {
		c.SetCachedElement(el)
	}
}
