package css

import "strings"

var sides = [...]string{"top", "right", "bottom", "left"}

var borderStyles = map[string]bool{
	"none": true, "hidden": true, "dotted": true, "dashed": true, "solid": true,
	"double": true, "groove": true, "ridge": true, "inset": true, "outset": true,
}

var borderWidths = map[string]bool{"thin": true, "medium": true, "thick": true}

var backgroundKeywords = map[string]bool{
	"none": true, "repeat": true, "no-repeat": true, "repeat-x": true, "repeat-y": true,
	"space": true, "round": true, "fixed": true, "scroll": true, "local": true,
	"center": true, "top": true, "bottom": true, "left": true, "right": true,
	"cover": true, "contain": true, "auto": true, "border-box": true,
	"padding-box": true, "content-box": true, "initial": true, "inherit": true, "unset": true,
}

// expand turns shorthand declaration into longhands. Non shorthand
// properties are returned as is.
func expand(name string, v Value) []Declaration {
	switch name {
	case "margin", "padding":
		return boxSides(name+"-%s", v.Raw)
	case "border":
		out := make([]Declaration, 0, 4)
		for _, side := range sides {
			out = append(out, Declaration{Property: "border-" + side, Value: v})
		}
		return out
	case "border-width", "border-style", "border-color":
		part := strings.TrimPrefix(name, "border-")
		return boxSides("border-%s-"+part, v.Raw)
	case "background":
		if c := backgroundColor(v.Raw); c != "" {
			return []Declaration{{Property: "background-color", Value: MakeValue(c)}}
		}
		return nil
	}
	return []Declaration{{Property: name, Value: v}}
}

// boxSides expands 1 to 4 values into top, right, bottom and left.
func boxSides(pattern, raw string) []Declaration {
	parts := SplitValues(raw)
	var vals [4]string
	switch len(parts) {
	case 1:
		vals = [4]string{parts[0], parts[0], parts[0], parts[0]}
	case 2:
		vals = [4]string{parts[0], parts[1], parts[0], parts[1]}
	case 3:
		vals = [4]string{parts[0], parts[1], parts[2], parts[1]}
	case 4:
		vals = [4]string{parts[0], parts[1], parts[2], parts[3]}
	default:
		return nil
	}
	out := make([]Declaration, 0, 4)
	for i, side := range sides {
		out = append(out, Declaration{Property: strings.Replace(pattern, "%s", side, 1), Value: MakeValue(vals[i])})
	}
	return out
}

// SplitValues splits space separated value list keeping function arguments
// together, "1px calc(2px + 3px)" gives two parts.
func SplitValues(raw string) []string {
	var (
		parts []string
		depth int
		start = -1
	)
	for i, r := range raw {
		switch {
		case r == '(':
			depth++
		case r == ')':
			depth = max(depth-1, 0)
		case (r == ' ' || r == '\t' || r == '\n') && depth == 0:
			if start >= 0 {
				parts = append(parts, raw[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		parts = append(parts, raw[start:])
	}
	return parts
}

// BorderParts splits border shorthand value into width, style and color.
func BorderParts(raw string) (width, style, color string) {
	for _, p := range SplitValues(raw) {
		lp := strings.ToLower(p)
		switch {
		case borderStyles[lp]:
			style = p
		case borderWidths[lp]:
			width = p
		default:
			if _, ok := ParseDimension(p); ok {
				width = p
			} else {
				color = p
			}
		}
	}
	return width, style, color
}

// JoinBorder is the reverse of BorderParts.
func JoinBorder(width, style, color string) string {
	parts := make([]string, 0, 3)
	for _, p := range []string{width, style, color} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// BorderSide returns shorthand value of one border side combining
// "border-<side>" with any later "border-<side>-width/style/color".
func (s Style) BorderSide(side string) string {
	width, style, color := BorderParts(s.Raw("border-" + side))
	if v := s.Raw("border-" + side + "-width"); v != "" {
		width = v
	}
	if v := s.Raw("border-" + side + "-style"); v != "" {
		style = v
	}
	if v := s.Raw("border-" + side + "-color"); v != "" {
		color = v
	}
	return JoinBorder(width, style, color)
}

func backgroundColor(raw string) string {
	for _, p := range SplitValues(raw) {
		lp := strings.ToLower(p)
		switch {
		case strings.HasPrefix(lp, "#"), strings.HasPrefix(lp, "rgb"), strings.HasPrefix(lp, "hsl"):
			return p
		case strings.HasPrefix(lp, "url("), strings.Contains(lp, "gradient("), strings.Contains(lp, "/"):
			continue
		case backgroundKeywords[lp]:
			continue
		}
		if _, ok := ParseDimension(p); ok {
			continue
		}
		return p
	}
	return ""
}
