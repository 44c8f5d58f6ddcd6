package convert

import "cmodel/model"

//go:generate go tool go-enum --marshal --names --noprefix

// StackMode tells StackFormat what to do with a format slot for the duration
// of the callback.
//
//   - Keep leaves the slot as is.
//   - ShallowClone gives callback own copy of the slot.
//   - ShallowCloneForBlock copies segment format without background color
//     which belongs to the block element.
//   - ShallowCopyInherit keeps only CSS inherited block properties.
//   - Empty clears the slot.
//   - LinkDefault starts new link decorator.
//   - CodeDefault starts new code decorator with monospace font.
//
// ENUM(keep, shallowClone, shallowCloneForBlock, shallowCopyInherit, empty, linkDefault, codeDefault)
type StackMode int

// StackOptions selects treatment of each format slot.
type StackOptions struct {
	Segment        StackMode
	Paragraph      StackMode
	BlockDecorator StackMode
	Link           StackMode
	Code           StackMode
}

type savedFormats struct {
	segment        model.SegmentFormat
	paragraph      model.BlockFormat
	blockDecorator *model.ParagraphDecorator
	link           *model.Link
	code           *model.Code
}

// StackFormat runs fn with format slots prepared according to opts and
// restores all slots afterwards, including when fn panics.
func StackFormat(ctx *Context, opts StackOptions, fn func()) {
	saved := savedFormats{
		segment:        ctx.SegmentFormat,
		paragraph:      ctx.BlockFormat,
		blockDecorator: ctx.BlockDecorator,
		link:           ctx.Link,
		code:           ctx.Code,
	}
	defer func() {
		ctx.SegmentFormat = saved.segment
		ctx.BlockFormat = saved.paragraph
		ctx.BlockDecorator = saved.blockDecorator
		ctx.Link = saved.link
		ctx.Code = saved.code
	}()

	switch opts.Segment {
	case ShallowCloneForBlock:
		ctx.SegmentFormat.BackgroundColor = ""
	case Empty:
		ctx.SegmentFormat = model.SegmentFormat{}
	}

	switch opts.Paragraph {
	case ShallowCopyInherit:
		ctx.BlockFormat = inheritedBlockFormat(ctx.BlockFormat)
	case Empty:
		ctx.BlockFormat = model.BlockFormat{}
	}

	switch opts.BlockDecorator {
	case ShallowClone:
		if d := ctx.BlockDecorator; d != nil {
			ctx.BlockDecorator = model.NewParagraphDecorator(d.TagName, d.Format)
		}
	case Empty:
		ctx.BlockDecorator = nil
	}

	switch opts.Link {
	case ShallowClone:
		if l := ctx.Link; l != nil {
			ctx.Link = model.NewLink(l.Format, l.Dataset)
		}
	case LinkDefault:
		ctx.Link = model.NewLink(model.HyperLinkFormat{UnderlineFormat: model.UnderlineFormat{Underline: true}}, model.DatasetFormat{})
	case Empty:
		ctx.Link = nil
	}

	switch opts.Code {
	case ShallowClone:
		if c := ctx.Code; c != nil {
			ctx.Code = model.NewCode(c.Format)
		}
	case CodeDefault:
		ctx.Code = model.NewCode(model.CodeFormat{FontFamilyFormat: model.FontFamilyFormat{FontFamily: "monospace"}})
	case Empty:
		ctx.Code = nil
	}

	fn()
}

// inheritedBlockFormat keeps properties which CSS inherits from parent
// block.
func inheritedBlockFormat(f model.BlockFormat) model.BlockFormat {
	var out model.BlockFormat
	out.Direction = f.Direction
	out.TextAlign = f.TextAlign
	out.LineHeight = f.LineHeight
	out.WhiteSpace = f.WhiteSpace
	return out
}
