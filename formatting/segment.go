package formatting

import (
	"strconv"
	"strings"

	"cmodel/model"
	"cmodel/selection"
)

// ApplyFunc changes format, on tells whether style is being turned on or off.
type ApplyFunc func(f *model.SegmentFormat, on bool)

// IsOnFunc reports whether segment inside paragraph already has the style.
type IsOnFunc func(f *model.SegmentFormat, p *model.Paragraph) bool

// SetSegmentFormat applies format change to every selected segment. When
// isOn is given and all selected segments already have the style it is
// turned off, otherwise it is turned on. Collapsed selection changes format
// of the caret only, so it becomes pending format for text typed next.
// List format holders are changed too when includeFormatHolder is set.
// Returns true if anything was selected.
func SetSegmentFormat(doc *model.Document, apply ApplyFunc, isOn IsOnFunc, includeFormatHolder bool) bool {
	selected := selection.GetSelectedSegmentsAndParagraphs(doc, includeFormatHolder)
	if len(selected) == 0 {
		return false
	}

	// carets follow content they surround, they decide only when nothing
	// else is selected
	decisive := make([]selection.SegmentInParagraph, 0, len(selected))
	for _, s := range selected {
		if s.Segment.SegmentType() != model.SegmentTypeSelectionMarker {
			decisive = append(decisive, s)
		}
	}
	if len(decisive) == 0 {
		decisive = selected
	}

	turningOn := true
	if isOn != nil {
		turningOn = false
		for _, s := range decisive {
			if !isOn(s.Segment.SegmentFormat(), s.Paragraph) {
				turningOn = true
				break
			}
		}
	}

	for _, s := range selected {
		apply(s.Segment.SegmentFormat(), turningOn)
		if s.Paragraph != nil {
			s.Paragraph.Touch()
		}
	}
	return true
}

func ToggleBold(doc *model.Document) bool {
	return SetSegmentFormat(doc, func(f *model.SegmentFormat, on bool) {
		if on {
			f.FontWeight = "bold"
		} else {
			f.FontWeight = "normal"
		}
	}, func(f *model.SegmentFormat, p *model.Paragraph) bool {
		return IsBold(effectiveWeight(f, p))
	}, false)
}

func ToggleItalic(doc *model.Document) bool {
	return SetSegmentFormat(doc, func(f *model.SegmentFormat, on bool) { f.Italic = on },
		func(f *model.SegmentFormat, _ *model.Paragraph) bool { return f.Italic }, false)
}

func ToggleUnderline(doc *model.Document) bool {
	return SetSegmentFormat(doc, func(f *model.SegmentFormat, on bool) { f.Underline = on },
		func(f *model.SegmentFormat, _ *model.Paragraph) bool { return f.Underline }, false)
}

func ToggleStrikethrough(doc *model.Document) bool {
	return SetSegmentFormat(doc, func(f *model.SegmentFormat, on bool) { f.Strikethrough = on },
		func(f *model.SegmentFormat, _ *model.Paragraph) bool { return f.Strikethrough }, false)
}

func ToggleSuperscript(doc *model.Document) bool {
	return toggleScript(doc, "super", "sub")
}

func ToggleSubscript(doc *model.Document) bool {
	return toggleScript(doc, "sub", "super")
}

// toggleScript changes innermost level of super/sub script sequence, the
// opposite script at that level is replaced.
func toggleScript(doc *model.Document, script, opposite string) bool {
	return SetSegmentFormat(doc, func(f *model.SegmentFormat, on bool) {
		seq := strings.Fields(f.SuperOrSubScriptSequence)
		last := ""
		if n := len(seq); n > 0 {
			last = seq[n-1]
		}
		switch {
		case on && last == opposite:
			seq[len(seq)-1] = script
		case on && last != script:
			seq = append(seq, script)
		case !on && last == script:
			seq = seq[:len(seq)-1]
		}
		f.SuperOrSubScriptSequence = strings.Join(seq, " ")
	}, func(f *model.SegmentFormat, _ *model.Paragraph) bool {
		return lastScript(f.SuperOrSubScriptSequence) == script
	}, false)
}

func SetFontSize(doc *model.Document, size string) bool {
	return SetSegmentFormat(doc, func(f *model.SegmentFormat, _ bool) { f.FontSize = size }, nil, true)
}

func SetFontName(doc *model.Document, name string) bool {
	return SetSegmentFormat(doc, func(f *model.SegmentFormat, _ bool) { f.FontFamily = name }, nil, true)
}

func SetTextColor(doc *model.Document, color string) bool {
	return SetSegmentFormat(doc, func(f *model.SegmentFormat, _ bool) { f.TextColor = color }, nil, true)
}

func SetBackgroundColor(doc *model.Document, color string) bool {
	return SetSegmentFormat(doc, func(f *model.SegmentFormat, _ bool) { f.BackgroundColor = color }, nil, false)
}

// IsBold interprets CSS font-weight value.
func IsBold(weight string) bool {
	switch weight {
	case "bold", "bolder":
		return true
	case "", "normal", "lighter":
		return false
	}
	n, err := strconv.Atoi(weight)
	return err == nil && n >= 600
}

// effectiveWeight takes heading default into account.
func effectiveWeight(f *model.SegmentFormat, p *model.Paragraph) string {
	if f.FontWeight != "" || p == nil || p.Decorator == nil {
		return f.FontWeight
	}
	return p.Decorator.Format.FontWeight
}

func lastScript(seq string) string {
	fields := strings.Fields(seq)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}

// merge copies properties set in src over dst.
func merge(dst *model.SegmentFormat, src model.SegmentFormat) {
	pick := func(d *string, s string) {
		if s != "" {
			*d = s
		}
	}
	pick(&dst.TextColor, src.TextColor)
	pick(&dst.BackgroundColor, src.BackgroundColor)
	pick(&dst.LetterSpacing, src.LetterSpacing)
	pick(&dst.FontSize, src.FontSize)
	pick(&dst.FontFamily, src.FontFamily)
	pick(&dst.FontWeight, src.FontWeight)
	pick(&dst.SuperOrSubScriptSequence, src.SuperOrSubScriptSequence)
	pick(&dst.LineHeight, src.LineHeight)
	pick(&dst.Lang, src.Lang)
	dst.Italic = dst.Italic || src.Italic
	dst.Underline = dst.Underline || src.Underline
	dst.Strikethrough = dst.Strikethrough || src.Strikethrough
}
