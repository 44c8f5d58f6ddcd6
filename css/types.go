// Package css parses inline style attributes into ordered property lists
// and provides default styles of HTML elements.
package css

import (
	"strings"
	"unicode"
)

// Value represents a parsed CSS property value.
type Value struct {
	Raw     string  // Original CSS value string (e.g., "1.2em", "bold", "#ff0000")
	Value   float64 // Numeric value if applicable
	Unit    string  // Unit if applicable: "em", "px", "%", "pt", etc.
	Keyword string  // Keyword if applicable: "bold", "italic", "center", etc.
}

// IsNumeric returns true if the value has a numeric component.
// This includes explicit zero values like "0" or "0px".
func (v Value) IsNumeric() bool {
	if v.Unit != "" {
		return true
	}
	if v.Value != 0 && v.Keyword == "" {
		return true
	}
	if v.Raw != "" && v.Keyword == "" {
		firstChar := rune(v.Raw[0])
		if unicode.IsDigit(firstChar) || firstChar == '.' || firstChar == '-' || firstChar == '+' {
			return true
		}
	}
	return false
}

// IsKeyword returns true if the value is a keyword (no numeric component).
func (v Value) IsKeyword() bool {
	return v.Keyword != "" && v.Unit == ""
}

// Declaration is a single "property: value" pair.
type Declaration struct {
	Property string
	Value    Value
}

// Style is an ordered list of declarations with unique property names.
// Properties are lower case, shorthands are already expanded.
type Style []Declaration

func (s Style) index(name string) int {
	for i := range s {
		if s[i].Property == name {
			return i
		}
	}
	return -1
}

// Get returns value of a property.
func (s Style) Get(name string) (Value, bool) {
	if i := s.index(name); i >= 0 {
		return s[i].Value, true
	}
	return Value{}, false
}

// Raw returns raw value of a property or empty string.
func (s Style) Raw(name string) string {
	if i := s.index(name); i >= 0 {
		return s[i].Value.Raw
	}
	return ""
}

// Has reports whether property is present.
func (s Style) Has(name string) bool {
	return s.index(name) >= 0
}

// Set adds or replaces a property keeping position of the first
// occurrence. Shorthands are not expanded here, use Parser for that.
func (s *Style) Set(name string, v Value) {
	name = strings.ToLower(name)
	if i := s.index(name); i >= 0 {
		(*s)[i].Value = v
		return
	}
	*s = append(*s, Declaration{Property: name, Value: v})
}

// Delete removes property if present.
func (s *Style) Delete(name string) {
	if i := s.index(name); i >= 0 {
		*s = append((*s)[:i], (*s)[i+1:]...)
	}
}

// Clone returns independent copy of the style.
func (s Style) Clone() Style {
	if s == nil {
		return nil
	}
	out := make(Style, len(s))
	copy(out, s)
	return out
}

// Merge returns new style with properties of other applied on top of s.
func (s Style) Merge(other Style) Style {
	out := s.Clone()
	for _, d := range other {
		out.Set(d.Property, d.Value)
	}
	return out
}

// Properties returns property names in declaration order.
func (s Style) Properties() []string {
	names := make([]string, 0, len(s))
	for _, d := range s {
		names = append(names, d.Property)
	}
	return names
}

// String renders style back into inline form.
func (s Style) String() string {
	var b strings.Builder
	for i, d := range s {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(d.Property)
		b.WriteString(": ")
		b.WriteString(d.Value.Raw)
	}
	return b.String()
}
