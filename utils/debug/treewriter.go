package debug

import (
	"fmt"
	"strconv"
	"strings"
)

// TreeWriter accumulates indented lines of a tree dump.
type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{
		w: &strings.Builder{},
	}
}

func (tw TreeWriter) String() string {
	return tw.w.String()
}

func (tw TreeWriter) indent(depth int) {
	for range depth {
		tw.w.WriteString("  ")
	}
}

func (tw TreeWriter) Line(depth int, format string, args ...any) {
	tw.indent(depth)
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// Node writes a line consisting of label followed by non empty attributes
// separated by spaces.
func (tw TreeWriter) Node(depth int, label string, attrs ...string) {
	tw.indent(depth)
	tw.w.WriteString(label)
	for _, a := range attrs {
		if a == "" {
			continue
		}
		tw.w.WriteByte(' ')
		tw.w.WriteString(a)
	}
	tw.w.WriteByte('\n')
}

// EncodeText quotes non empty text so whitespace and invisible characters
// are visible in dumps.
func EncodeText(raw string) string {
	if raw == "" {
		return raw
	}
	return strconv.Quote(raw)
}
