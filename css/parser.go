package css

import (
	"io"
	"strconv"
	"strings"
	"unicode"

	parse "github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/css"
	"go.uber.org/zap"
)

// Parser parses inline style declarations.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a new CSS parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("css-parser")}
}

var defaultParser = NewParser(nil)

// ParseInline parses style attribute with default (silent) parser.
func ParseInline(style string) Style {
	return defaultParser.ParseInline(style)
}

// ParseInline parses content of a style attribute. Later declarations
// override earlier ones, shorthand properties are expanded into longhands.
func (p *Parser) ParseInline(style string) Style {
	var result Style
	if strings.TrimSpace(style) == "" {
		return result
	}

	parser := css.NewParser(parse.NewInputString(style), true)
	for {
		gt, _, data := parser.Next()

		switch gt {
		case css.ErrorGrammar:
			if err := parser.Err(); err != nil && err != io.EOF {
				p.log.Debug("CSS parse error", zap.String("style", style), zap.Error(err))
			}
			return result

		case css.DeclarationGrammar:
			name := strings.ToLower(string(data))
			values := stripImportant(parser.Values())
			if len(values) == 0 {
				continue
			}
			for _, d := range expand(name, p.parsePropertyValue(values)) {
				result.Set(d.Property, d.Value)
			}

		case css.CustomPropertyGrammar:
			continue

		default:
			p.log.Debug("Unexpected grammar in inline style", zap.Stringer("grammar", gt), zap.String("style", style))
		}
	}
}

// stripImportant drops trailing "!important" and whitespace.
func stripImportant(tokens []css.Token) []css.Token {
	tokens = trimWhitespace(tokens)
	n := len(tokens)
	if n >= 2 && tokens[n-2].TokenType == css.DelimToken && string(tokens[n-2].Data) == "!" &&
		tokens[n-1].TokenType == css.IdentToken && strings.EqualFold(string(tokens[n-1].Data), "important") {
		tokens = trimWhitespace(tokens[:n-2])
	}
	return tokens
}

func trimWhitespace(tokens []css.Token) []css.Token {
	for len(tokens) > 0 && tokens[0].TokenType == css.WhitespaceToken {
		tokens = tokens[1:]
	}
	for len(tokens) > 0 && tokens[len(tokens)-1].TokenType == css.WhitespaceToken {
		tokens = tokens[:len(tokens)-1]
	}
	return tokens
}

// parsePropertyValue converts CSS tokens to a Value.
func (p *Parser) parsePropertyValue(tokens []css.Token) Value {
	if len(tokens) == 0 {
		return Value{}
	}

	var rawParts []string
	for _, t := range tokens {
		if t.TokenType != css.WhitespaceToken {
			rawParts = append(rawParts, string(t.Data))
		} else if len(rawParts) > 0 {
			rawParts = append(rawParts, " ")
		}
	}
	return MakeValue(strings.TrimSpace(strings.Join(rawParts, "")))
}

// MakeValue classifies raw single or multi part value.
func MakeValue(raw string) Value {
	val := Value{Raw: raw}
	if raw == "" {
		return val
	}
	if strings.ContainsAny(raw, " (,") {
		val.Keyword = raw
		return val
	}
	if d, ok := ParseDimension(raw); ok {
		val.Value, val.Unit = d.Value, d.Unit
		return val
	}
	if raw[0] == '"' || raw[0] == '\'' {
		val.Keyword = unquote(raw)
		return val
	}
	if raw[0] == '#' {
		val.Keyword = raw
		return val
	}
	val.Keyword = strings.ToLower(raw)
	return val
}

// ParseDimension parses number with optional unit ("12px", "1.5", "50%").
// Trailing garbage after the unit letters makes it fail.
func ParseDimension(s string) (Value, bool) {
	s = strings.TrimSpace(s)
	num, unit := parseDimension(s)
	if num == "" {
		return Value{}, false
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Value{}, false
	}
	for _, r := range unit {
		if !unicode.IsLetter(r) && r != '%' {
			return Value{}, false
		}
	}
	return Value{Raw: s, Value: f, Unit: strings.ToLower(unit)}, true
}

// parseDimension splits numeric prefix from the unit.
func parseDimension(s string) (string, string) {
	numEnd := 0
	for i, r := range s {
		if unicode.IsDigit(r) || r == '.' || ((r == '-' || r == '+') && i == 0) {
			numEnd = i + 1
		} else {
			break
		}
	}
	return s[:numEnd], s[numEnd:]
}

// ToPx converts length to pixels. Relative units (em, rem, %) are resolved
// against base which is font size for em/rem and container size for %.
func ToPx(value string, base float64) (float64, bool) {
	d, ok := ParseDimension(value)
	if !ok {
		return 0, false
	}
	switch d.Unit {
	case "px", "":
		return d.Value, true
	case "pt":
		return d.Value * 4 / 3, true
	case "pc":
		return d.Value * 16, true
	case "in":
		return d.Value * 96, true
	case "cm":
		return d.Value * 96 / 2.54, true
	case "mm":
		return d.Value * 96 / 25.4, true
	case "em", "rem":
		return d.Value * base, true
	case "%":
		return d.Value * base / 100, true
	}
	return 0, false
}

// unquote removes surrounding quotes from a string.
func unquote(s string) string {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return s
	}
	if (s[0] == '"' && s[len(s)-1] == '"') ||
		(s[0] == '\'' && s[len(s)-1] == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}
