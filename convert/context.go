// Package convert builds content model from a DOM tree.
//
// Conversion is a recursive descent over the element tree driven by element
// processors (one per tag, plus a few synthetic slots) and composable format
// parsers. All processors share single Context which carries formats
// accumulated from ancestors, list nesting state and selection description.
package convert

import (
	"maps"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"cmodel/css"
	"cmodel/model"
)

// RegularSelection is a range selection, offsets are child indexes for
// element containers and rune offsets for text containers. Offsets are
// matched against node identity only.
type RegularSelection struct {
	StartContainer *html.Node
	StartOffset    int
	EndContainer   *html.Node
	EndOffset      int
	IsCollapsed    bool
}

// Coordinates of a table cell in the cell matrix.
type Coordinates struct {
	Row int
	Col int
}

// TableSelection selects a rectangle of cells of a table.
type TableSelection struct {
	Table     *html.Node
	FirstCell Coordinates
	LastCell  Coordinates
}

// ImageSelection selects single image (resize mode).
type ImageSelection struct {
	Image *html.Node
}

// ListFormat is transient list nesting state used while converting.
type ListFormat struct {
	// ListParent is the group which receives list items regardless of DOM
	// nesting through wrapper elements.
	ListParent model.BlockGroup
	// Levels are formats of currently open lists, outer first.
	Levels []model.ListLevel
	// ThreadItemCounts keep number of items seen per depth so numbering of
	// split lists could continue.
	ThreadItemCounts []int
	// ThreadIDs are numbering thread identifiers per depth.
	ThreadIDs []string
}

// Measurer provides layout information which is not available from markup
// alone.
type Measurer interface {
	// BoundingRect returns width and height of rendered element, ok is false
	// when element was not laid out.
	BoundingRect(el *html.Node) (width, height float64, ok bool)
}

// Context is created once per conversion and is exclusively owned by it.
type Context struct {
	// Formats accumulated from ancestors, saved and restored by StackFormat.
	BlockFormat    model.BlockFormat
	SegmentFormat  model.SegmentFormat
	BlockDecorator *model.ParagraphDecorator
	Link           *model.Link
	Code           *model.Code

	ListFormat ListFormat

	ZoomScale float64

	RegularSelection *RegularSelection
	TableSelection   *TableSelection
	ImageSelection   *ImageSelection
	// IsInSelection is toggled by child processing when it passes selection
	// start and end positions.
	IsInSelection bool

	DefaultFormat     model.SegmentFormat
	AllowCacheElement bool

	Processors    ElementProcessors
	FormatParsers FormatParsers
	DefaultStyles map[string]css.Style
	Measurer      Measurer
	CSS           *css.Parser

	// NewID generates list thread identifiers and ids for entities missing
	// one.
	NewID func() string

	Log *zap.Logger

	styles map[*html.Node]css.Style
}

// Option configures Context.
type Option func(*Context)

// WithLogger sets logger, conversion logger is named "convert".
func WithLogger(log *zap.Logger) Option {
	return func(ctx *Context) {
		if log != nil {
			ctx.Log = log.Named("convert")
		}
	}
}

// WithDefaultFormat sets default segment format of produced document.
func WithDefaultFormat(format model.SegmentFormat) Option {
	return func(ctx *Context) { ctx.DefaultFormat = format }
}

// WithZoomScale sets zoom scale used to convert measured sizes.
func WithZoomScale(scale float64) Option {
	return func(ctx *Context) {
		if scale > 0 {
			ctx.ZoomScale = scale
		}
	}
}

func WithRegularSelection(sel *RegularSelection) Option {
	return func(ctx *Context) { ctx.RegularSelection = sel }
}

func WithTableSelection(sel *TableSelection) Option {
	return func(ctx *Context) { ctx.TableSelection = sel }
}

func WithImageSelection(sel *ImageSelection) Option {
	return func(ctx *Context) { ctx.ImageSelection = sel }
}

// WithAllowCacheElement makes converter remember source elements of
// produced blocks.
func WithAllowCacheElement(allow bool) Option {
	return func(ctx *Context) { ctx.AllowCacheElement = allow }
}

// WithProcessorOverride replaces processor of a tag. Passing nil processor
// makes tag fall back to the generic one.
func WithProcessorOverride(tag atom.Atom, proc ElementProcessor) Option {
	return func(ctx *Context) {
		if proc == nil {
			delete(ctx.Processors.Tags, tag)
			return
		}
		ctx.Processors.Tags[tag] = proc
	}
}

// WithAdditionalFormatParsers lets caller append parsers to categories.
func WithAdditionalFormatParsers(extend func(*FormatParsers)) Option {
	return func(ctx *Context) {
		if extend != nil {
			extend(&ctx.FormatParsers)
		}
	}
}

// WithDefaultStyleOverride overrides default style of a tag.
func WithDefaultStyleOverride(tag string, style css.Style) Option {
	return func(ctx *Context) {
		ctx.DefaultStyles[tag] = style
	}
}

func WithMeasurer(m Measurer) Option {
	return func(ctx *Context) { ctx.Measurer = m }
}

// WithIDGenerator replaces uuid based identifier generator.
func WithIDGenerator(gen func() string) Option {
	return func(ctx *Context) {
		if gen != nil {
			ctx.NewID = gen
		}
	}
}

// NewContext creates conversion context with default processors, parsers
// and styles.
func NewContext(opts ...Option) *Context {
	ctx := &Context{
		ZoomScale:     1,
		Processors:    DefaultProcessors(),
		FormatParsers: DefaultFormatParsers(),
		DefaultStyles: make(map[string]css.Style, len(css.DefaultStyles)),
		NewID:         uuid.NewString,
		Log:           zap.NewNop(),
	}
	maps.Copy(ctx.DefaultStyles, css.DefaultStyles)
	for _, opt := range opts {
		opt(ctx)
	}
	ctx.CSS = css.NewParser(ctx.Log)
	return ctx
}

// defaultStyle returns default style of an element.
func (ctx *Context) defaultStyle(el *html.Node) css.Style {
	return ctx.DefaultStyles[el.Data]
}
