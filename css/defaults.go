package css

// Browser default styles of HTML elements which matter for conversion.
// Keys are lower case tag names.
var defaultStyleSources = map[string]string{
	"address":    "display: block",
	"article":    "display: block",
	"aside":      "display: block",
	"b":          "font-weight: bold",
	"blockquote": "display: block; margin-top: 1em; margin-bottom: 1em; margin-left: 40px; margin-right: 40px",
	"center":     "display: block; text-align: center",
	"code":       "font-family: monospace",
	"dd":         "display: block; margin-left: 40px",
	"del":        "text-decoration: line-through",
	"div":        "display: block",
	"dl":         "display: block; margin-top: 1em; margin-bottom: 1em",
	"dt":         "display: block",
	"em":         "font-style: italic",
	"fieldset":   "display: block",
	"figcaption": "display: block",
	"figure":     "display: block; margin: 1em 40px",
	"footer":     "display: block",
	"form":       "display: block",
	"h1":         "display: block; font-size: 2em; font-weight: bold; margin-top: 0.67em; margin-bottom: 0.67em",
	"h2":         "display: block; font-size: 1.5em; font-weight: bold; margin-top: 0.83em; margin-bottom: 0.83em",
	"h3":         "display: block; font-size: 1.17em; font-weight: bold; margin-top: 1em; margin-bottom: 1em",
	"h4":         "display: block; font-weight: bold; margin-top: 1.33em; margin-bottom: 1.33em",
	"h5":         "display: block; font-size: 0.83em; font-weight: bold; margin-top: 1.67em; margin-bottom: 1.67em",
	"h6":         "display: block; font-size: 0.67em; font-weight: bold; margin-top: 2.33em; margin-bottom: 2.33em",
	"header":     "display: block",
	"hr":         "display: block; margin-top: 0.5em; margin-bottom: 0.5em; border: 1px inset",
	"i":          "font-style: italic",
	"ins":        "text-decoration: underline",
	"li":         "display: list-item",
	"main":       "display: block",
	"mark":       "background-color: yellow; color: black",
	"nav":        "display: block",
	"ol":         "display: block; margin-top: 1em; margin-bottom: 1em; padding-left: 40px",
	"p":          "display: block; margin-top: 1em; margin-bottom: 1em",
	"pre":        "display: block; font-family: monospace; white-space: pre; margin-top: 1em; margin-bottom: 1em",
	"s":          "text-decoration: line-through",
	"section":    "display: block",
	"strike":     "text-decoration: line-through",
	"strong":     "font-weight: bold",
	"sub":        "vertical-align: sub; font-size: smaller",
	"sup":        "vertical-align: super; font-size: smaller",
	"table":      "display: table; box-sizing: border-box; border-spacing: 2px",
	"tbody":      "display: table-row-group",
	"td":         "display: table-cell",
	"tfoot":      "display: table-footer-group",
	"th":         "display: table-cell; font-weight: bold",
	"thead":      "display: table-header-group",
	"tr":         "display: table-row",
	"u":          "text-decoration: underline",
	"ul":         "display: block; margin-top: 1em; margin-bottom: 1em; padding-left: 40px",
}

// DefaultStyles maps lower case tag name to its default style. Returned
// styles are shared, callers must Clone before modifying.
var DefaultStyles = buildDefaultStyles(defaultStyleSources)

func buildDefaultStyles(src map[string]string) map[string]Style {
	out := make(map[string]Style, len(src))
	for tag, style := range src {
		out[tag] = defaultParser.ParseInline(style)
	}
	return out
}

// DefaultStyle returns default style of a tag or nil.
func DefaultStyle(tag string) Style {
	return DefaultStyles[tag]
}
