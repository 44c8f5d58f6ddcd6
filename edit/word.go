package edit

import (
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
	"go.uber.org/zap"

	"cmodel/model"
)

var (
	ForwardDeleteWord  = DeleteWordStep(Forward)
	BackwardDeleteWord = DeleteWordStep(Backward)
)

type charClass int

const (
	classSpace charClass = iota
	classPunct
	classText
)

func classify(cluster string) charClass {
	r, _ := utf8.DecodeRuneInString(cluster)
	switch {
	case unicode.IsSpace(r):
		return classSpace
	case unicode.IsPunct(r), r < utf8.RuneSelf && unicode.IsSymbol(r):
		return classPunct
	}
	return classText
}

type wordState int

const (
	wordStart wordState = iota
	wordPunct
	wordText
	wordSpace
	wordEnd
)

// wordCursor walks characters of a paragraph away from the caret. Text is
// visited by grapheme clusters, images look like punctuation, any other
// segment ends the walk.
type wordCursor struct {
	p       *model.Paragraph
	forward bool
	index   int
	// byte offset of the caret inside text at index, -1 when text was not
	// entered yet
	offset     int
	start, end int
	touched    []*model.Text
	deleted    int
}

func newWordCursor(p *model.Paragraph, marker model.Segment, forward bool) *wordCursor {
	c := &wordCursor{p: p, forward: forward, index: p.IndexOfSegment(marker), offset: -1}
	c.advance()
	return c
}

func (c *wordCursor) advance() {
	if c.forward {
		c.index++
	} else {
		c.index--
	}
	c.offset = -1
}

// Peek classifies character next to the cursor, false means there is
// nothing more to delete.
func (c *wordCursor) Peek() (charClass, bool) {
	for {
		segments := c.p.Segments()
		if c.index < 0 || c.index >= len(segments) {
			return 0, false
		}
		switch s := segments[c.index].(type) {
		case *model.SelectionMarker:
			c.advance()
		case *model.Image:
			return classPunct, true
		case *model.Text:
			if c.offset < 0 {
				c.offset = 0
				if !c.forward {
					c.offset = len(s.Text)
				}
			}
			if c.forward && c.offset < len(s.Text) {
				cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(s.Text[c.offset:], -1)
				c.start, c.end = c.offset, c.offset+len(cluster)
				return classify(cluster), true
			}
			if !c.forward && c.offset > 0 {
				c.start, c.end = lastClusterStart(s.Text[:c.offset]), c.offset
				return classify(s.Text[c.start:c.end]), true
			}
			c.advance()
		default:
			return 0, false
		}
	}
}

// Consume deletes character returned by the last Peek.
func (c *wordCursor) Consume() {
	switch s := c.p.Segments()[c.index].(type) {
	case *model.Image:
		c.p.RemoveSegmentAt(c.index)
		if c.forward {
			c.offset = -1
		} else {
			c.advance()
		}
	case *model.Text:
		s.Text = s.Text[:c.start] + s.Text[c.end:]
		c.p.Touch()
		if !c.forward {
			c.offset = c.start
		}
		if n := len(c.touched); n == 0 || c.touched[n-1] != s {
			c.touched = append(c.touched, s)
		}
	}
	c.deleted++
}

// cleanup removes texts emptied by deletion and keeps edge spaces visible.
func (c *wordCursor) cleanup() {
	preserve := c.p.Format.PreservesWhiteSpace()
	for _, t := range c.touched {
		i := c.p.IndexOfSegment(t)
		switch {
		case i < 0:
		case t.Text == "":
			removeSegmentAt(c.p, i, preserve)
		case !preserve:
			normalizeTextEdges(c.p, i)
		}
	}
}

func lastClusterStart(s string) int {
	last := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		last, _ = g.Positions()
	}
	return last
}

// DeleteWordStep deletes a word next to collapsed selection.
//
// Forward deletion removes the run of characters of the class found at the
// caret (text or punctuation) and the white space following it. White space
// at the caret is removed up to the next character.
//
// Backward deletion removes white space preceding the caret and then one
// run of text or punctuation before it.
func DeleteWordStep(dir Direction) Step {
	forward := dir == Forward
	return func(ctx *Context) {
		if dir == Selection || ctx.Result != NotDeleted {
			return
		}
		c := newWordCursor(ctx.InsertPoint.Paragraph, ctx.InsertPoint.Marker, forward)

		state := wordStart
		for state != wordEnd {
			class, ok := c.Peek()
			if !ok {
				break
			}
			state = nextWordState(state, class, forward)
			if state != wordEnd {
				c.Consume()
			}
		}
		c.cleanup()

		if c.deleted > 0 {
			ctx.Result = Range
			ctx.Log.Debug("Deleted word", zap.Stringer("direction", dir), zap.Int("characters", c.deleted))
		}
	}
}

// nextWordState returns state after character of given class is seen, the
// character is deleted unless state is wordEnd.
func nextWordState(state wordState, class charClass, forward bool) wordState {
	runState := func(class charClass) wordState {
		switch class {
		case classSpace:
			return wordSpace
		case classPunct:
			return wordPunct
		}
		return wordText
	}

	switch state {
	case wordStart:
		return runState(class)
	case wordPunct, wordText:
		switch {
		case runState(class) == state:
			return state
		case forward && class == classSpace:
			return wordSpace
		}
		return wordEnd
	case wordSpace:
		switch {
		case class == classSpace:
			return wordSpace
		case !forward:
			return runState(class)
		}
		return wordEnd
	}
	return wordEnd
}
