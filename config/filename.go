package config

import (
	"strings"
	"unicode"
)

// CleanFileName removes characters not allowed in file names on this
// platform along with control characters. Leading dots and surrounding
// white space are dropped, so names built from document titles stay
// visible and usable.
func CleanFileName(in string) string {
	out := strings.Map(func(sym rune) rune {
		if sym == 0 || unicode.IsControl(sym) || strings.ContainsRune(forbiddenChars, sym) {
			return -1
		}
		return sym
	}, in)
	out = strings.TrimLeft(strings.TrimSpace(out), ".")
	if len(out) == 0 {
		out = "_bad_file_name_"
	}
	return out
}
