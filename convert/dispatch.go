package convert

import (
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"cmodel/model"
)

// ElementProcessor converts a DOM node into content of group.
type ElementProcessor func(group model.BlockGroup, el *html.Node, ctx *Context)

// ElementProcessors is the dispatch table. Named slots stand for synthetic
// processors, Tags maps known tags to their processors.
type ElementProcessors struct {
	// Child iterates children of a node.
	Child ElementProcessor
	// Element dispatches single element.
	Element ElementProcessor
	// Text converts text node.
	Text ElementProcessor
	// Entity converts element marked as entity.
	Entity ElementProcessor
	// Fallback handles tags not present in Tags.
	Fallback ElementProcessor
	Tags     map[atom.Atom]ElementProcessor
}

// DefaultProcessors returns default dispatch table.
func DefaultProcessors() ElementProcessors {
	tags := map[atom.Atom]ElementProcessor{
		atom.A:          linkProcessor,
		atom.Blockquote: quoteProcessor,
		atom.Br:         brProcessor,
		atom.Code:       codeProcessor,
		atom.Font:       fontProcessor,
		atom.H1:         headingProcessor,
		atom.H2:         headingProcessor,
		atom.H3:         headingProcessor,
		atom.H4:         headingProcessor,
		atom.H5:         headingProcessor,
		atom.H6:         headingProcessor,
		atom.Hr:         hrProcessor,
		atom.Img:        imageProcessor,
		atom.Li:         listItemProcessor,
		atom.Ol:         listProcessor,
		atom.Ul:         listProcessor,
		atom.P:          headingProcessor,
		atom.Table:      tableProcessor,
	}
	for _, a := range []atom.Atom{
		atom.Abbr, atom.Address, atom.Article, atom.Aside, atom.B, atom.Big,
		atom.Center, atom.Cite, atom.Dd, atom.Del, atom.Dfn, atom.Div, atom.Dl,
		atom.Dt, atom.Em, atom.Fieldset, atom.Figcaption, atom.Figure,
		atom.Footer, atom.Form, atom.Header, atom.I, atom.Ins, atom.Kbd,
		atom.Label, atom.Main, atom.Mark, atom.Nav, atom.Pre, atom.Q, atom.S,
		atom.Samp, atom.Section, atom.Small, atom.Span, atom.Strike,
		atom.Strong, atom.Sub, atom.Sup, atom.Tt, atom.U, atom.Var,
	} {
		tags[a] = knownElementProcessor
	}
	for _, a := range []atom.Atom{
		atom.Base, atom.Head, atom.Link, atom.Meta, atom.Noscript,
		atom.Script, atom.Style, atom.Template, atom.Title,
	} {
		tags[a] = skipProcessor
	}

	return ElementProcessors{
		Child:    childProcessor,
		Element:  elementProcessor,
		Text:     textProcessor,
		Entity:   entityProcessor,
		Fallback: generalProcessor,
		Tags:     tags,
	}
}

// elementProcessor looks up entity processor first, then tag processor and
// falls back to generic one.
func elementProcessor(group model.BlockGroup, el *html.Node, ctx *Context) {
	if _, ok := entityInfo(el); ok {
		ctx.Processors.Entity(group, el, ctx)
		return
	}
	if el.DataAtom != 0 {
		if proc, ok := ctx.Processors.Tags[el.DataAtom]; ok {
			proc(group, el, ctx)
			return
		}
	}
	ctx.Log.Debug("Unknown element, converting as general", zap.String("tag", el.Data))
	ctx.Processors.Fallback(group, el, ctx)
}

func skipProcessor(model.BlockGroup, *html.Node, *Context) {}

// Entity markers are kept in class attribute.
const (
	entityClass         = "_Entity"
	entityTypePrefix    = "_EType_"
	entityIDPrefix      = "_EId_"
	entityReadonlyClass = "_EReadonly_1"
)

type entityMarkers struct {
	entityType string
	id         string
	readonly   bool
}

// entityInfo reports whether element carries committed entity markers.
func entityInfo(el *html.Node) (entityMarkers, bool) {
	var (
		info     entityMarkers
		isEntity bool
	)
	for _, c := range strings.Fields(attr(el, "class")) {
		switch {
		case c == entityClass:
			isEntity = true
		case c == entityReadonlyClass:
			info.readonly = true
		case strings.HasPrefix(c, entityTypePrefix):
			info.entityType = c[len(entityTypePrefix):]
		case strings.HasPrefix(c, entityIDPrefix):
			info.id = c[len(entityIDPrefix):]
		}
	}
	return info, isEntity && info.entityType != ""
}

func entityProcessor(group model.BlockGroup, el *html.Node, ctx *Context) {
	info, _ := entityInfo(el)
	if info.id == "" {
		info.id = info.entityType + "_" + ctx.NewID()
	}
	entity := model.NewEntity(el, info.readonly, ctx.SegmentFormat, info.id, info.entityType)
	if ctx.IsInSelection {
		entity.IsSelected = true
	}
	if isBlockElement(el, ctx) {
		group.AddBlock(entity)
		return
	}
	addSegment(group, entity, ctx)
}

// generalProcessor keeps element opaque, its content is still converted so
// it could be edited.
func generalProcessor(group model.BlockGroup, el *html.Node, ctx *Context) {
	selectedBefore := ctx.IsInSelection
	if isBlockElement(el, ctx) {
		block := model.NewGeneralBlock(el)
		group.AddBlock(block)
		StackFormat(ctx, StackOptions{Segment: Empty, Paragraph: Empty, BlockDecorator: Empty, Link: Empty, Code: Empty}, func() {
			ctx.Processors.Child(block, el, ctx)
		})
		if selectedBefore && ctx.IsInSelection {
			block.IsSelected = true
		}
		return
	}

	seg := model.NewGeneralSegment(el, ctx.SegmentFormat)
	addDecorators(seg, ctx)
	addSegment(group, seg, ctx)
	ctx.Processors.Child(seg, el, ctx)
	if selectedBefore && ctx.IsInSelection {
		seg.IsSelected = true
	}
}
