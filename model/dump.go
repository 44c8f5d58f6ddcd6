package model

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/maruel/natural"

	"cmodel/utils/debug"
)

// String returns a readable tree of the whole document. It is used for
// debugging and by "tree" output of the CLI.
func (doc *Document) String() string {
	if doc == nil {
		return "<nil Document>"
	}
	tw := debug.NewTreeWriter()
	tw.Node(0, "Document", props("format", doc.Format))
	dumpBlocks(tw, 1, doc.blocks)
	return tw.String()
}

// props renders set properties of a format as "label{key=value ...}", keys
// in natural order. Returns empty string when nothing is set.
func props(label string, format any) string {
	data, err := json.Marshal(format)
	if err != nil {
		return label + "{?}"
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil || len(m) == 0 {
		return ""
	}
	keys := slices.Collect(maps.Keys(m))
	sort.Sort(natural.StringSlice(keys))

	var sb strings.Builder
	sb.WriteString(label)
	sb.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%s=%v", k, m[k])
	}
	sb.WriteByte('}')
	return sb.String()
}

func dataset(d DatasetFormat) string {
	if len(d) == 0 {
		return ""
	}
	keys := slices.Collect(maps.Keys(d))
	sort.Sort(natural.StringSlice(keys))
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+strconv.Quote(d[k]))
	}
	return "dataset{" + strings.Join(parts, " ") + "}"
}

func flag(set bool, name string) string {
	if set {
		return name
	}
	return ""
}

func decorators(link *Link, code *Code) []string {
	var out []string
	if link != nil {
		out = append(out, props("link", link.Format), dataset(link.Dataset))
	}
	if code != nil {
		out = append(out, "code", props("codeFormat", code.Format))
	}
	return out
}

func dumpBlocks(tw *debug.TreeWriter, depth int, blocks []Block) {
	for _, b := range blocks {
		dumpBlock(tw, depth, b)
	}
}

func dumpBlock(tw *debug.TreeWriter, depth int, b Block) {
	switch v := b.(type) {
	case *Paragraph:
		attrs := []string{
			flag(v.IsImplicit, "implicit"),
			flag(v.ZeroFontSize, "zeroFontSize"),
			props("format", v.Format),
		}
		if v.SegmentFormat != nil {
			attrs = append(attrs, props("segmentFormat", *v.SegmentFormat))
		}
		if v.Decorator != nil {
			attrs = append(attrs, "decorator="+v.Decorator.TagName, props("decoratorFormat", v.Decorator.Format))
		}
		tw.Node(depth, "Paragraph", attrs...)
		for _, s := range v.segments {
			dumpSegment(tw, depth+1, s)
		}
	case *Table:
		widths := make([]string, 0, len(v.Widths))
		for _, w := range v.Widths {
			widths = append(widths, strconv.FormatFloat(w, 'f', -1, 64))
		}
		tw.Node(depth, "Table", fmt.Sprintf("%dx%d", len(v.rows), v.ColumnCount()),
			"widths=["+strings.Join(widths, ",")+"]", props("format", v.Format), dataset(v.Dataset))
		for i, r := range v.rows {
			tw.Node(depth+1, fmt.Sprintf("Row[%d]", i), "height="+strconv.FormatFloat(r.Height, 'f', -1, 64), props("format", r.Format))
			for j, c := range r.cells {
				if c == nil {
					tw.Node(depth+2, fmt.Sprintf("Cell[%d] <nil>", j))
					continue
				}
				tw.Node(depth+2, fmt.Sprintf("Cell[%d]", j),
					flag(c.IsHeader, "header"), flag(c.SpanLeft, "spanLeft"), flag(c.SpanAbove, "spanAbove"),
					flag(c.IsSelected, "selected"), props("format", c.Format), dataset(c.Dataset))
				dumpBlocks(tw, depth+3, c.blocks)
			}
		}
	case *Divider:
		tw.Node(depth, "Divider", v.TagName, flag(v.IsSelected, "selected"), props("format", v.Format))
	case *Entity:
		tw.Node(depth, "Entity", "type="+v.EntityType, "id="+v.ID, flag(v.IsReadonly, "readonly"),
			flag(v.IsSelected, "selected"), "wrapper="+elementTag(v.Wrapper))
	case *FormatContainer:
		tw.Node(depth, "FormatContainer", v.TagName, flag(v.ZeroFontSize, "zeroFontSize"), props("format", v.Format))
		dumpBlocks(tw, depth+1, v.blocks)
	case *Quote:
		tw.Node(depth, "Quote", props("format", v.Format))
		dumpBlocks(tw, depth+1, v.blocks)
	case *ListItem:
		levels := make([]string, 0, len(v.Levels))
		for _, l := range v.Levels {
			levels = append(levels, l.Format.ListType+props("", l.Format)+dataset(l.Dataset))
		}
		tw.Node(depth, "ListItem", "levels=["+strings.Join(levels, ", ")+"]", props("format", v.Format))
		if v.FormatHolder != nil {
			tw.Node(depth+1, "FormatHolder", flag(v.FormatHolder.IsSelected, "selected"), props("format", v.FormatHolder.Format))
		}
		dumpBlocks(tw, depth+1, v.blocks)
	case *General:
		tw.Node(depth, "General", "element="+elementTag(v.Element), flag(v.IsSelected, "selected"))
		dumpBlocks(tw, depth+1, v.blocks)
	default:
		tw.Line(depth, "%T", b)
	}
}

func dumpSegment(tw *debug.TreeWriter, depth int, s Segment) {
	link, code := s.Decorators()
	switch v := s.(type) {
	case *Text:
		tw.Node(depth, "Text "+debug.EncodeText(v.Text), append([]string{flag(v.IsSelected, "selected"), props("format", v.Format)}, decorators(link, code)...)...)
	case *Br:
		tw.Node(depth, "Br", append([]string{flag(v.IsSelected, "selected"), props("format", v.Format)}, decorators(link, code)...)...)
	case *SelectionMarker:
		tw.Node(depth, "SelectionMarker", props("format", v.Format))
	case *Image:
		tw.Node(depth, "Image "+strconv.Quote(v.Src), append([]string{
			flag(v.IsSelected, "selected"), flag(v.IsSelectedAsImageSelection, "imageSelection"),
			props("format", v.Format), dataset(v.Dataset),
		}, decorators(link, code)...)...)
	case *Entity:
		tw.Node(depth, "Entity", "type="+v.EntityType, "id="+v.ID, flag(v.IsReadonly, "readonly"),
			flag(v.IsSelected, "selected"), "wrapper="+elementTag(v.Wrapper))
	case *GeneralSegment:
		tw.Node(depth, "GeneralSegment", append([]string{"element=" + elementTag(v.Element), flag(v.IsSelected, "selected"), props("format", v.Format)}, decorators(link, code)...)...)
		dumpBlocks(tw, depth+1, v.blocks)
	default:
		tw.Line(depth, "%T", s)
	}
}
