package convert

import (
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/net/html"
	"golang.org/x/text/language"

	"cmodel/css"
	"cmodel/model"
)

// Generic format parsers. Every parser reads inline style of the element
// first and falls back to the default style of its tag. Parsers are
// instantiated per aggregate format type in DefaultFormatParsers.

// knownFontSizes maps absolute size keywords to points.
var knownFontSizes = map[string]string{
	"xx-small":  "6.75pt",
	"x-small":   "7.5pt",
	"small":     "9.75pt",
	"medium":    "12pt",
	"large":     "13.5pt",
	"x-large":   "18pt",
	"xx-large":  "24pt",
	"xxx-large": "36pt",
}

func attr(el *html.Node, name string) string {
	for _, a := range el.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val
		}
	}
	return ""
}

func hasAttr(el *html.Node, name string) bool {
	for _, a := range el.Attr {
		if a.Namespace == "" && a.Key == name {
			return true
		}
	}
	return false
}

// styleOf returns parsed inline style of an element, parsing it once.
func (ctx *Context) styleOf(el *html.Node) css.Style {
	if s, ok := ctx.styles[el]; ok {
		return s
	}
	if ctx.styles == nil {
		ctx.styles = make(map[*html.Node]css.Style)
	}
	s := ctx.CSS.ParseInline(attr(el, "style"))
	ctx.styles[el] = s
	return s
}

// value returns inline value of the property or value from default style.
func value(el *html.Node, ctx *Context, def css.Style, prop string) string {
	if v := ctx.styleOf(el).Raw(prop); v != "" {
		return v
	}
	return def.Raw(prop)
}

func inlineValue(el *html.Node, ctx *Context, prop string) string {
	return ctx.styleOf(el).Raw(prop)
}

func parseDirection[T model.DirectionHolder](f T, el *html.Node, ctx *Context, def css.Style) {
	dir := value(el, ctx, def, "direction")
	if dir == "" {
		dir = strings.ToLower(attr(el, "dir"))
	}
	if dir == "rtl" || dir == "ltr" {
		f.AsDirection().Direction = dir
	}
}

type alignHolder interface {
	model.TextAlignHolder
	model.DirectionHolder
}

// parseTextAlign stores logical alignment (start/end) so it does not
// depend on direction later.
func parseTextAlign[T alignHolder](f T, el *html.Node, ctx *Context, def css.Style) {
	align := inlineValue(el, ctx, "text-align")
	if align == "" {
		align = attr(el, "align")
	}
	if align == "" {
		align = def.Raw("text-align")
	}
	if align = calcAlign(strings.ToLower(align), f.AsDirection().Direction); align != "" {
		f.AsTextAlign().TextAlign = align
	}
}

func calcAlign(align, dir string) string {
	rtl := dir == "rtl"
	switch align {
	case "center", "justify", "start", "end":
		return align
	case "left":
		if rtl {
			return "end"
		}
		return "start"
	case "right":
		if rtl {
			return "start"
		}
		return "end"
	case "initial":
		return "start"
	}
	return ""
}

func parseLineHeight[T model.LineHeightHolder](f T, el *html.Node, ctx *Context, def css.Style) {
	if v := value(el, ctx, def, "line-height"); v != "" && v != "inherit" {
		f.AsLineHeight().LineHeight = v
	}
}

func parseWhiteSpace[T model.WhiteSpaceHolder](f T, el *html.Node, ctx *Context, def css.Style) {
	if v := value(el, ctx, def, "white-space"); v != "" && v != "inherit" {
		f.AsWhiteSpace().WhiteSpace = v
	}
}

func parseTextIndent[T model.TextIndentHolder](f T, el *html.Node, ctx *Context, def css.Style) {
	if v := value(el, ctx, def, "text-indent"); v != "" {
		f.AsTextIndent().TextIndent = v
	}
}

func parseBackgroundColor[T model.BackgroundColorHolder](f T, el *html.Node, ctx *Context, def css.Style) {
	v := value(el, ctx, def, "background-color")
	if v == "" {
		v = attr(el, "bgcolor")
	}
	if v != "" && v != "inherit" {
		f.AsBackgroundColor().BackgroundColor = v
	}
}

func parseTextColor[T model.TextColorHolder](f T, el *html.Node, ctx *Context, def css.Style) {
	if v := value(el, ctx, def, "color"); v != "" && v != "inherit" {
		f.AsTextColor().TextColor = v
	}
}

func parseMargin[T model.MarginHolder](f T, el *html.Node, ctx *Context, def css.Style) {
	m := f.AsMargin()
	for prop, dst := range map[string]*string{
		"margin-top":    &m.MarginTop,
		"margin-right":  &m.MarginRight,
		"margin-bottom": &m.MarginBottom,
		"margin-left":   &m.MarginLeft,
	} {
		if v := value(el, ctx, def, prop); v != "" {
			*dst = v
		}
	}
}

func parsePadding[T model.PaddingHolder](f T, el *html.Node, ctx *Context, def css.Style) {
	p := f.AsPadding()
	for prop, dst := range map[string]*string{
		"padding-top":    &p.PaddingTop,
		"padding-right":  &p.PaddingRight,
		"padding-bottom": &p.PaddingBottom,
		"padding-left":   &p.PaddingLeft,
	} {
		if v := value(el, ctx, def, prop); v != "" {
			*dst = v
		}
	}
}

func parseBorder[T model.BorderHolder](f T, el *html.Node, ctx *Context, def css.Style) {
	b := f.AsBorder()
	style := ctx.styleOf(el)
	for side, dst := range map[string]*string{
		"top":    &b.BorderTop,
		"right":  &b.BorderRight,
		"bottom": &b.BorderBottom,
		"left":   &b.BorderLeft,
	} {
		v := style.BorderSide(side)
		if v == "" {
			v = def.BorderSide(side)
		}
		if v != "" {
			*dst = v
		}
	}
	if v := value(el, ctx, def, "border-radius"); v != "" {
		b.BorderRadius = v
	}
}

func parseDisplay[T model.DisplayHolder](f T, el *html.Node, ctx *Context, _ css.Style) {
	if v := inlineValue(el, ctx, "display"); v != "" {
		f.AsDisplay().Display = v
	}
}

// sizeAttr converts legacy width/height attribute into css length.
func sizeAttr(el *html.Node, name string) string {
	v := strings.TrimSpace(attr(el, name))
	if v == "" {
		return ""
	}
	if strings.HasSuffix(v, "%") {
		return v
	}
	if n, err := strconv.ParseFloat(v, 64); err == nil && n >= 0 {
		return strconv.FormatFloat(n, 'f', -1, 64) + "px"
	}
	return ""
}

func parseSize[T model.SizeHolder](f T, el *html.Node, ctx *Context, def css.Style) {
	s := f.AsSize()
	for prop, dst := range map[string]*string{
		"width":      &s.Width,
		"height":     &s.Height,
		"min-width":  &s.MinWidth,
		"max-width":  &s.MaxWidth,
		"min-height": &s.MinHeight,
		"max-height": &s.MaxHeight,
	} {
		if v := value(el, ctx, def, prop); v != "" {
			*dst = v
		}
	}
	if s.Width == "" {
		s.Width = sizeAttr(el, "width")
	}
	if s.Height == "" {
		s.Height = sizeAttr(el, "height")
	}
}

func parseFontFamily[T model.FontFamilyHolder](f T, el *html.Node, ctx *Context, def css.Style) {
	if v := value(el, ctx, def, "font-family"); v != "" && v != "inherit" {
		f.AsFontFamily().FontFamily = v
	}
}

func parseFontSize[T model.FontSizeHolder](f T, el *html.Node, ctx *Context, def css.Style) {
	v := value(el, ctx, def, "font-size")
	if v == "" {
		return
	}
	fs := f.AsFontSize()
	if n, ok := normalizeFontSize(strings.ToLower(v), fs.FontSize); ok {
		fs.FontSize = n
	}
}

// normalizeFontSize resolves keywords and relative sizes against inherited
// font size. ok is false when value cannot be resolved.
func normalizeFontSize(fontSize, inherited string) (string, bool) {
	if known, ok := knownFontSizes[fontSize]; ok {
		return known, true
	}
	switch fontSize {
	case "inherit", "revert", "unset", "initial":
		return "", false
	}
	relative := fontSize == "smaller" || fontSize == "larger" ||
		strings.HasSuffix(fontSize, "em") || strings.HasSuffix(fontSize, "%")
	if !relative {
		return fontSize, true
	}
	if inherited == "" {
		return "", false
	}
	base, ok := css.ToPx(inherited, 16)
	if !ok {
		return "", false
	}
	var px float64
	switch fontSize {
	case "smaller":
		px = math.Round(base*500/6) / 100
	case "larger":
		px = math.Round(base*600/5) / 100
	default:
		if px, ok = css.ToPx(fontSize, base); !ok {
			return "", false
		}
	}
	return strconv.FormatFloat(px, 'f', -1, 64) + "px", true
}

func parseBold[T model.BoldHolder](f T, el *html.Node, ctx *Context, def css.Style) {
	if v := value(el, ctx, def, "font-weight"); v != "" && v != "inherit" {
		f.AsBold().FontWeight = v
	}
}

func parseItalic[T model.ItalicHolder](f T, el *html.Node, ctx *Context, def css.Style) {
	switch value(el, ctx, def, "font-style") {
	case "italic", "oblique":
		f.AsItalic().Italic = true
	case "normal", "initial":
		f.AsItalic().Italic = false
	}
}

func textDecoration(el *html.Node, ctx *Context, def css.Style) string {
	if v := inlineValue(el, ctx, "text-decoration-line"); v != "" {
		return v
	}
	return value(el, ctx, def, "text-decoration")
}

func parseUnderline[T model.UnderlineHolder](f T, el *html.Node, ctx *Context, def css.Style) {
	d := textDecoration(el, ctx, def)
	switch {
	case strings.Contains(d, "underline"):
		f.AsUnderline().Underline = true
	case d == "none":
		f.AsUnderline().Underline = false
	}
}

func parseStrike[T model.StrikeHolder](f T, el *html.Node, ctx *Context, def css.Style) {
	d := textDecoration(el, ctx, def)
	switch {
	case strings.Contains(d, "line-through"):
		f.AsStrike().Strikethrough = true
	case d == "none":
		f.AsStrike().Strikethrough = false
	}
}

func parseSuperOrSubScript[T model.SuperOrSubScriptHolder](f T, el *html.Node, ctx *Context, def css.Style) {
	s := f.AsSuperOrSubScript()
	switch v := value(el, ctx, def, "vertical-align"); v {
	case "super", "sub":
		s.SuperOrSubScriptSequence = strings.TrimSpace(s.SuperOrSubScriptSequence + " " + v)
	case "baseline":
		s.SuperOrSubScriptSequence = ""
	}
}

func parseLetterSpacing[T model.LetterSpacingHolder](f T, el *html.Node, ctx *Context, def css.Style) {
	if v := value(el, ctx, def, "letter-spacing"); v != "" && v != "inherit" {
		f.AsLetterSpacing().LetterSpacing = v
	}
}

// parseLang canonicalizes lang attribute, values which are not valid BCP 47
// tags are ignored.
func parseLang[T model.LangHolder](f T, el *html.Node, ctx *Context, _ css.Style) {
	v := strings.TrimSpace(attr(el, "lang"))
	if v == "" {
		return
	}
	tag, err := language.Parse(v)
	if err != nil {
		ctx.Log.Debug("Ignoring invalid lang attribute", zap.String("lang", v), zap.Error(err))
		return
	}
	f.AsLang().Lang = tag.String()
}

func parseVerticalAlign[T model.VerticalAlignHolder](f T, el *html.Node, ctx *Context, def css.Style) {
	v := value(el, ctx, def, "vertical-align")
	if v == "" {
		v = attr(el, "valign")
	}
	switch strings.ToLower(v) {
	case "top", "middle", "bottom", "baseline", "text-top", "text-bottom":
		f.AsVerticalAlign().VerticalAlign = strings.ToLower(v)
	}
}

func parseWordBreak[T model.WordBreakHolder](f T, el *html.Node, ctx *Context, def css.Style) {
	if v := value(el, ctx, def, "word-break"); v != "" {
		f.AsWordBreak().WordBreak = v
	}
}

func parseFloat[T model.FloatHolder](f T, el *html.Node, ctx *Context, def css.Style) {
	if v := value(el, ctx, def, "float"); v != "" {
		f.AsFloat().Float = v
	}
}

func parseBoxShadow[T model.BoxShadowHolder](f T, el *html.Node, ctx *Context, def css.Style) {
	if v := value(el, ctx, def, "box-shadow"); v != "" {
		f.AsBoxShadow().BoxShadow = v
	}
}

func parseBorderBox[T model.BorderBoxHolder](f T, el *html.Node, ctx *Context, def css.Style) {
	if value(el, ctx, def, "box-sizing") == "border-box" {
		f.AsBorderBox().UseBorderBox = true
	}
}

func parseSpacing[T model.SpacingHolder](f T, el *html.Node, ctx *Context, def css.Style) {
	if value(el, ctx, def, "border-collapse") == "collapse" {
		f.AsSpacing().BorderCollapse = true
	}
}

func parseTableLayout[T model.TableLayoutHolder](f T, el *html.Node, ctx *Context, def css.Style) {
	if v := value(el, ctx, def, "table-layout"); v != "" {
		f.AsTableLayout().TableLayout = v
	}
}

func parseID[T model.IDHolder](f T, el *html.Node, _ *Context, _ css.Style) {
	if v := attr(el, "id"); v != "" {
		f.AsID().ID = v
	}
}

func parseLink[T model.LinkHolder](f T, el *html.Node, _ *Context, _ css.Style) {
	l := f.AsLink()
	l.Href = attr(el, "href")
	l.Target = attr(el, "target")
	l.AnchorTitle = attr(el, "title")
	l.Name = attr(el, "name")
	l.RelationshipType = attr(el, "rel")
	l.AnchorID = attr(el, "id")
	l.AnchorClass = attr(el, "class")
}

// listTypeAttr maps legacy ol/ul type attribute to list-style-type.
var listTypeAttr = map[string]string{
	"1":      "decimal",
	"a":      "lower-alpha",
	"A":      "upper-alpha",
	"i":      "lower-roman",
	"I":      "upper-roman",
	"disc":   "disc",
	"circle": "circle",
	"square": "square",
}

func parseListStyle[T model.ListStyleHolder](f T, el *html.Node, ctx *Context, def css.Style) {
	ls := f.AsListStyle()
	if v := value(el, ctx, def, "list-style-type"); v != "" {
		ls.ListStyleType = v
	} else if v, ok := listTypeAttr[attr(el, "type")]; ok {
		ls.ListStyleType = v
	}
	if v := value(el, ctx, def, "list-style-position"); v != "" {
		ls.ListStylePosition = v
	}
}

// parseDataset collects data-* attributes.
func parseDataset(d model.DatasetFormat, el *html.Node, _ *Context, _ css.Style) {
	for _, a := range el.Attr {
		if k, ok := strings.CutPrefix(a.Key, "data-"); ok && a.Namespace == "" && k != "" {
			d[k] = a.Val
		}
	}
}

// parseListLevelThread tracks numbering of ordered lists. A list which does
// not continue numbering of the previous list at the same depth gets start
// number override and a new thread.
func parseListLevelThread(f *model.ListLevelFormat, el *html.Node, ctx *Context, _ css.Style) {
	lf := &ctx.ListFormat
	depth := len(lf.Levels)
	for len(lf.ThreadItemCounts) <= depth {
		lf.ThreadItemCounts = append(lf.ThreadItemCounts, -1)
		lf.ThreadIDs = append(lf.ThreadIDs, "")
	}

	if f.ListType == "OL" {
		start := 1
		if v, err := strconv.Atoi(strings.TrimSpace(attr(el, "start"))); err == nil {
			start = v
		}
		if prev := lf.ThreadItemCounts[depth]; prev < 0 || start != prev+1 {
			if prev >= 0 || start != 1 {
				f.StartNumberOverride = start
			}
			lf.ThreadIDs[depth] = ctx.NewID()
		}
		f.ThreadID = lf.ThreadIDs[depth]
		lf.ThreadItemCounts[depth] = start - 1
	}

	// deeper levels restart
	lf.ThreadItemCounts = lf.ThreadItemCounts[:depth+1]
	lf.ThreadIDs = lf.ThreadIDs[:depth+1]
}

// parseListItemThread counts items of ordered lists, honoring value
// attribute of the item.
func parseListItemThread(_ *model.ListItemFormat, el *html.Node, ctx *Context, _ css.Style) {
	lf := &ctx.ListFormat
	depth := len(lf.Levels) - 1
	if depth < 0 || depth >= len(lf.ThreadItemCounts) || lf.Levels[depth].Format.ListType != "OL" {
		return
	}
	if v, err := strconv.Atoi(strings.TrimSpace(attr(el, "value"))); err == nil {
		if v != lf.ThreadItemCounts[depth]+1 {
			lf.Levels[depth].Format.StartNumberOverride = v
		}
		lf.ThreadItemCounts[depth] = v
		return
	}
	lf.ThreadItemCounts[depth]++
}
