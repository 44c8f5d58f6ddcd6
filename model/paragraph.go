package model

import "slices"

// Block is a structural unit inside a block group.
type Block interface {
	BlockType() BlockType
}

// Paragraph owns ordered sequence of segments.
type Paragraph struct {
	Cache
	segments []Segment

	Format BlockFormat
	// SegmentFormat is a format shared by all segments when paragraph is
	// rendered (it is applied on the paragraph element itself).
	SegmentFormat *SegmentFormat
	Decorator     *ParagraphDecorator
	// IsImplicit is set for paragraphs synthesized to hold loose inline
	// content, and cleared once paragraph becomes real host of content.
	IsImplicit bool
	// ZeroFontSize is set when source element had explicit font-size:0.
	ZeroFontSize bool
}

func (*Paragraph) BlockType() BlockType { return BlockTypeParagraph }

func (p *Paragraph) Segments() []Segment {
	return p.segments
}

func (p *Paragraph) SetSegments(segments ...Segment) {
	p.segments = segments
	p.Touch()
}

func (p *Paragraph) AddSegment(s Segment) {
	p.segments = append(p.segments, s)
	p.Touch()
}

func (p *Paragraph) InsertSegments(i int, s ...Segment) {
	p.segments = slices.Insert(p.segments, i, s...)
	p.Touch()
}

func (p *Paragraph) RemoveSegmentAt(i int) {
	p.segments = slices.Delete(p.segments, i, i+1)
	p.Touch()
}

func (p *Paragraph) ReplaceSegmentAt(i int, s ...Segment) {
	p.segments = slices.Replace(p.segments, i, i+1, s...)
	p.Touch()
}

// RemoveSegment removes segment by identity, returns false if segment does
// not belong to paragraph.
func (p *Paragraph) RemoveSegment(s Segment) bool {
	i := p.IndexOfSegment(s)
	if i < 0 {
		return false
	}
	p.RemoveSegmentAt(i)
	return true
}

// IndexOfSegment returns index of segment by identity or -1.
func (p *Paragraph) IndexOfSegment(s Segment) int {
	for i, seg := range p.segments {
		if seg == s {
			return i
		}
	}
	return -1
}

// LastSegment returns last segment or nil.
func (p *Paragraph) LastSegment() Segment {
	if len(p.segments) == 0 {
		return nil
	}
	return p.segments[len(p.segments)-1]
}

// SetNotImplicit turns paragraph into explicit one.
func (p *Paragraph) SetNotImplicit() {
	if p.IsImplicit {
		p.IsImplicit = false
		p.Touch()
	}
}

// Divider is a horizontal rule or similar separator.
type Divider struct {
	Cache
	TagName    string
	Format     DividerFormat
	IsSelected bool
}

func (*Divider) BlockType() BlockType { return BlockTypeDivider }
