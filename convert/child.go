package convert

import (
	"strings"

	"golang.org/x/net/html"

	"cmodel/model"
)

// childProcessor converts children of parent into group, placing selection
// markers between children when selection boundary is expressed as child
// index of parent.
func childProcessor(group model.BlockGroup, parent *html.Node, ctx *Context) {
	start, end := selectionOffsets(ctx, parent)
	index := 0
	for child := parent.FirstChild; child != nil; child = child.NextSibling {
		handleRegularSelection(index, start, end, group, ctx)
		processChildNode(group, child, ctx)
		index++
	}
	handleRegularSelection(index, start, end, group, ctx)
}

func processChildNode(group model.BlockGroup, child *html.Node, ctx *Context) {
	switch child.Type {
	case html.ElementNode:
		if strings.EqualFold(inlineValue(child, ctx, "display"), "none") {
			return
		}
		ctx.Processors.Element(group, child, ctx)
	case html.TextNode:
		ctx.Processors.Text(group, child, ctx)
	}
}

// selectionOffsets returns start and end offsets of regular selection within
// node, -1 when the boundary is elsewhere.
func selectionOffsets(ctx *Context, node *html.Node) (int, int) {
	start, end := -1, -1
	if sel := ctx.RegularSelection; sel != nil {
		if sel.StartContainer == node {
			start = sel.StartOffset
		}
		if sel.EndContainer == node {
			end = sel.EndOffset
		}
	}
	return start, end
}

func handleRegularSelection(index, start, end int, group model.BlockGroup, ctx *Context) {
	if index == start {
		ctx.IsInSelection = true
		addSelectionMarker(group, ctx)
	}
	if index == end {
		if !ctx.RegularSelection.IsCollapsed {
			addSelectionMarker(group, ctx)
		}
		ctx.IsInSelection = false
	}
}

// textProcessor splits text at selection boundaries (rune offsets) and adds
// resulting pieces.
func textProcessor(group model.BlockGroup, node *html.Node, ctx *Context) {
	txt := []rune(node.Data)
	start, end := selectionOffsets(ctx, node)
	if start >= 0 {
		start = min(start, len(txt))
		addTextSegment(group, string(txt[:start]), ctx)
		ctx.IsInSelection = true
		addSelectionMarker(group, ctx)
		txt = txt[start:]
		if end >= 0 {
			end -= start
		}
	}
	if end >= 0 {
		end = min(max(end, 0), len(txt))
		addTextSegment(group, string(txt[:end]), ctx)
		if !ctx.RegularSelection.IsCollapsed {
			addSelectionMarker(group, ctx)
		}
		ctx.IsInSelection = false
		txt = txt[end:]
	}
	addTextSegment(group, string(txt), ctx)
}

func addTextSegment(group model.BlockGroup, text string, ctx *Context) {
	if text == "" {
		return
	}
	p := lastParagraph(group)
	if !ctx.BlockFormat.PreservesWhiteSpace() {
		text = collapseWhiteSpace(text)
		if p == nil || atLineStart(p) {
			text = strings.TrimLeft(text, " ")
		}
		if text == "" {
			return
		}
	}

	if p != nil {
		if last, ok := p.LastSegment().(*model.Text); ok && canMerge(last, ctx) {
			last.Text += text
			p.Touch()
			return
		}
	}

	t := model.NewText(text, ctx.SegmentFormat, ctx.Link, ctx.Code)
	t.IsSelected = ctx.IsInSelection
	addSegment(group, t, ctx)
}

func canMerge(last *model.Text, ctx *Context) bool {
	return last.IsSelected == ctx.IsInSelection &&
		last.Format == ctx.SegmentFormat &&
		model.SameLink(last.Link, ctx.Link) &&
		model.SameCode(last.Code, ctx.Code)
}

func addSelectionMarker(group model.BlockGroup, ctx *Context) {
	marker := model.NewSelectionMarker(ctx.SegmentFormat)
	addDecorators(marker, ctx)
	addSegment(group, marker, ctx)
}

// addDecorators attaches copies of current link and code decorators.
func addDecorators(seg model.Segment, ctx *Context) {
	var (
		link *model.Link
		code *model.Code
	)
	if ctx.Link != nil {
		link = model.NewLink(ctx.Link.Format, ctx.Link.Dataset)
	}
	if ctx.Code != nil {
		code = model.NewCode(ctx.Code.Format)
	}
	seg.SetDecorators(link, code)
}

// addSegment appends segment to the last paragraph of group, creating
// implicit paragraph when group does not end with one.
func addSegment(group model.BlockGroup, seg model.Segment, ctx *Context) *model.Paragraph {
	p := lastParagraph(group)
	if p == nil {
		p = addImplicitParagraph(group, ctx)
	}
	if _, ok := seg.(*model.SelectionMarker); ok {
		if _, dup := p.LastSegment().(*model.SelectionMarker); dup {
			return p
		}
	}
	p.AddSegment(seg)
	return p
}

// addImplicitParagraph appends paragraph which will receive content following
// a block.
func addImplicitParagraph(group model.BlockGroup, ctx *Context) *model.Paragraph {
	p := model.NewParagraph(true, ctx.BlockFormat, nil, ctx.BlockDecorator)
	group.AddBlock(p)
	return p
}

func lastParagraph(group model.BlockGroup) *model.Paragraph {
	p, _ := model.LastBlock(group).(*model.Paragraph)
	return p
}

// atLineStart reports whether nothing visible precedes the end of paragraph
// on the current line.
func atLineStart(p *model.Paragraph) bool {
	segs := p.Segments()
	for i := len(segs) - 1; i >= 0; i-- {
		switch s := segs[i].(type) {
		case *model.SelectionMarker:
			continue
		case *model.Br:
			return true
		case *model.Text:
			return strings.HasSuffix(s.Text, " ")
		default:
			return false
		}
	}
	return true
}

// collapseWhiteSpace folds runs of document white space into single space.
// Non-breaking spaces are content and are kept.
func collapseWhiteSpace(s string) string {
	var (
		b     strings.Builder
		space bool
	)
	b.Grow(len(s))
	for _, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '\f':
			if !space {
				b.WriteByte(' ')
			}
			space = true
		default:
			b.WriteRune(r)
			space = false
		}
	}
	return b.String()
}
