package selection

import "cmodel/model"

// InsertPoint is a resolved location where an edit takes effect.
type InsertPoint struct {
	Marker    *model.SelectionMarker
	Paragraph *model.Paragraph
	// Path goes from the group owning paragraph up to the root.
	Path  []model.BlockGroup
	Table *TableContext
}

// SegmentInParagraph is a selected segment with its owner. Paragraph is nil
// for list item format holders.
type SegmentInParagraph struct {
	Segment   model.Segment
	Paragraph *model.Paragraph
	Path      []model.BlockGroup
	Table     *TableContext
}

// GetSelectedSegmentsAndParagraphs returns selected segments in document
// order. When includeFormatHolder is set, format holders of fully selected
// list items are returned too.
func GetSelectedSegmentsAndParagraphs(group model.BlockGroup, includeFormatHolder bool) []SegmentInParagraph {
	opts := &Options{IncludeListFormatHolder: Never}
	if includeFormatHolder {
		opts.IncludeListFormatHolder = AllSegments
	}
	var result []SegmentInParagraph
	IterateSelections(group, func(path []model.BlockGroup, table *TableContext, block model.Block, segments []model.Segment) bool {
		p, _ := block.(*model.Paragraph)
		if p == nil && block != nil {
			return false
		}
		for _, s := range segments {
			result = append(result, SegmentInParagraph{Segment: s, Paragraph: p, Path: path, Table: table})
		}
		return false
	}, opts)
	return result
}

// GetSelectedSegments returns selected segments in document order.
func GetSelectedSegments(group model.BlockGroup, includeFormatHolder bool) []model.Segment {
	found := GetSelectedSegmentsAndParagraphs(group, includeFormatHolder)
	result := make([]model.Segment, 0, len(found))
	for _, s := range found {
		result = append(result, s.Segment)
	}
	return result
}

// GetSelectedParagraphs returns paragraphs having selected segments, each
// once, in document order.
func GetSelectedParagraphs(group model.BlockGroup) []*model.Paragraph {
	var result []*model.Paragraph
	for _, s := range GetSelectedSegmentsAndParagraphs(group, false) {
		if n := len(result); s.Paragraph != nil && (n == 0 || result[n-1] != s.Paragraph) {
			result = append(result, s.Paragraph)
		}
	}
	return result
}

// FindInsertPoint returns location of the first selection marker in
// document order or nil when there is none.
func FindInsertPoint(group model.BlockGroup) *InsertPoint {
	var ip *InsertPoint
	IterateSelections(group, func(path []model.BlockGroup, table *TableContext, block model.Block, segments []model.Segment) bool {
		p, ok := block.(*model.Paragraph)
		if !ok {
			return false
		}
		for _, s := range segments {
			if m, ok := s.(*model.SelectionMarker); ok {
				ip = &InsertPoint{Marker: m, Paragraph: p, Path: path, Table: table}
				return true
			}
		}
		return false
	}, &Options{IncludeListFormatHolder: Never})
	return ip
}

// HasSelection reports whether anything in group is selected.
func HasSelection(group model.BlockGroup) bool {
	return IterateSelections(group, func([]model.BlockGroup, *TableContext, model.Block, []model.Segment) bool {
		return true
	}, nil)
}

// IsCollapsed reports whether the only selected content is a single
// selection marker.
func IsCollapsed(group model.BlockGroup) bool {
	count, collapsed := 0, true
	IterateSelections(group, func(_ []model.BlockGroup, table *TableContext, block model.Block, segments []model.Segment) bool {
		if len(segments) == 0 {
			collapsed = false
			return true
		}
		for _, s := range segments {
			if _, ok := s.(*model.SelectionMarker); !ok {
				collapsed = false
				return true
			}
			count++
		}
		return count > 1
	}, &Options{IncludeListFormatHolder: Never})
	return collapsed && count == 1
}
