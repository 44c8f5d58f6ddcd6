// Package edit implements model level deletion: removing selected content,
// deleting single characters, words and neighbor blocks around a collapsed
// selection and merging paragraphs split by the deletion.
package edit

import (
	"go.uber.org/zap"

	"cmodel/model"
	"cmodel/selection"
)

//go:generate go tool go-enum --marshal --names --noprefix

// Direction of deletion. Selection deletes selected content only.
// ENUM(selection, forward, backward)
type Direction int

// EntityOperation tells entity owner why entity is being removed: Overwrite
// when entity itself is selected, RemoveFromStart when entity follows the
// caret (forward deletion), RemoveFromEnd when it precedes the caret
// (backward deletion).
// ENUM(overwrite, removeFromStart, removeFromEnd)
type EntityOperation int

// EntityCallback is invoked for every entity about to be removed. Returning
// true means removal was handled by the owner and entity stays in the model.
type EntityCallback func(entity *model.Entity, op EntityOperation) bool

// ResultKind is the outcome of deletion. NothingToDelete means caret is at
// the edge of document or table cell, deletion is still considered handled
// so host does not run its own.
// ENUM(notDeleted, singleChar, range, nothingToDelete)
type ResultKind int

// Context is shared by deletion steps.
type Context struct {
	InsertPoint *selection.InsertPoint
	Result      ResultKind

	// LastParagraph is merged into insert point paragraph when deletion
	// spans two paragraphs.
	LastParagraph    *model.Paragraph
	LastPath         []model.BlockGroup
	LastTableContext *selection.TableContext
	OnDeleteEntity   EntityCallback
	Log              *zap.Logger
}

// IsChanged reports whether any step handled deletion.
func (c *Context) IsChanged() bool {
	return c.Result != NotDeleted
}

func (c *Context) deleteEntity(e *model.Entity, op EntityOperation) bool {
	handled := c.OnDeleteEntity != nil && c.OnDeleteEntity(e, op)
	c.Log.Debug("Entity deletion",
		zap.String("id", e.ID),
		zap.String("type", e.EntityType),
		zap.Stringer("operation", op),
		zap.Bool("handled", handled))
	return handled
}

// Step is one stage of deletion pipeline. Steps run only while nothing has
// been deleted yet.
type Step func(ctx *Context)

// DeleteResult describes outcome of DeleteSelection.
type DeleteResult struct {
	InsertPoint *selection.InsertPoint
	Kind        ResultKind
	IsChanged   bool
	// AddUndoSnapshot is set when range of content was removed.
	AddUndoSnapshot bool
}

// DeleteSelection deletes selected content of document, then runs
// additional steps (direction specific deletion around collapsed
// selection) and finally merges paragraphs split by deletion.
func DeleteSelection(doc *model.Document, onDeleteEntity EntityCallback, log *zap.Logger, steps ...Step) *DeleteResult {
	if log == nil {
		log = zap.NewNop()
	}
	ctx := DeleteExpandedSelection(doc, onDeleteEntity, log.Named("edit"))
	for _, step := range steps {
		if step != nil && ctx.InsertPoint != nil && ctx.Result == NotDeleted {
			step(ctx)
		}
	}
	MergeAfterDelete(ctx)

	ctx.Log.Debug("Deleted",
		zap.Stringer("result", ctx.Result),
		zap.Bool("insertPoint", ctx.InsertPoint != nil))
	return &DeleteResult{
		InsertPoint:     ctx.InsertPoint,
		Kind:            ctx.Result,
		IsChanged:       ctx.IsChanged(),
		AddUndoSnapshot: ctx.Result == Range,
	}
}

// DeleteExpandedSelection removes every selected segment, block and table
// cell content. Insert point is placed where the first selected piece was.
// Document without selection produces context without insert point.
func DeleteExpandedSelection(doc *model.Document, onDeleteEntity EntityCallback, log *zap.Logger) *Context {
	if log == nil {
		log = zap.NewNop()
	}
	ctx := &Context{OnDeleteEntity: onDeleteEntity, Log: log}

	selection.IterateSelections(doc, func(path []model.BlockGroup, table *selection.TableContext, block model.Block, segments []model.Segment) bool {
		// default position of the caret, overwritten when selection is in
		// paragraph
		paragraph := model.NewParagraph(true, model.BlockFormat{}, nil, nil)
		markerFormat := doc.Format
		insertAt := 0

		switch p, isParagraph := block.(*model.Paragraph); {
		case isParagraph && len(segments) > 0:
			paragraph = p
			insertAt = p.IndexOfSegment(segments[0])
			markerFormat = *segments[0].SegmentFormat()
			ctx.LastParagraph, ctx.LastPath, ctx.LastTableContext = p, path, table

			for _, s := range segments {
				if DeleteSegment(p, s, ctx, Selection) && s.SegmentType() != model.SegmentTypeSelectionMarker {
					ctx.Result = Range
				}
			}
			// paragraph may be left empty, it has to keep its format
			p.SetNotImplicit()
		case block != nil:
			if DeleteBlock(path[0], block, paragraph, ctx, Selection) {
				ctx.Result = Range
			}
		case table != nil:
			cell := table.Table.Cell(table.RowIndex, table.ColIndex)
			path = append([]model.BlockGroup{cell}, path...)
			paragraph.AddSegment(model.NewBr(doc.Format))
			cell.SetBlocks(paragraph)
			table.Table.Touch()
			ctx.Result = Range
		}

		if ctx.InsertPoint == nil {
			marker := model.NewSelectionMarker(markerFormat)
			paragraph.InsertSegments(max(insertAt, 0), marker)
			ctx.InsertPoint = &selection.InsertPoint{Marker: marker, Paragraph: paragraph, Path: path, Table: table}
		}
		return false
	}, &selection.Options{
		ContentUnderSelectedTableCell:      selection.IgnoreForTableOrCell,
		ContentUnderSelectedGeneralElement: selection.GeneralElementOnly,
		IncludeListFormatHolder:            selection.Never,
	})
	return ctx
}

// MergeAfterDelete joins paragraph deletion ended in with insert point
// paragraph and drops the emptied one.
func MergeAfterDelete(ctx *Context) {
	ip, last := ctx.InsertPoint, ctx.LastParagraph
	if ctx.Result == NotDeleted || ip == nil || last == nil || last == ip.Paragraph || !sameCell(ctx.LastTableContext, ip.Table) {
		return
	}
	segments := last.Segments()
	last.SetSegments()
	for _, s := range segments {
		ip.Paragraph.AddSegment(s)
	}
	if len(ctx.LastPath) > 0 {
		parent := ctx.LastPath[0]
		if i := parent.IndexOfBlock(last); i >= 0 {
			parent.RemoveBlockAt(i)
		}
	}
	ctx.LastParagraph = nil
}

func sameCell(a, b *selection.TableContext) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Table == b.Table && a.RowIndex == b.RowIndex && a.ColIndex == b.ColIndex
}
