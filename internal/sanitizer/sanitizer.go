// Package sanitizer neutralizes untrusted text before it is stored or relayed.
package sanitizer

import (
	"html"
	"strings"
	"unicode"
)

// Sanitize escapes markup-significant characters (<, >, &, ', ") and drops
// control characters except newlines and tabs.
// Already escaped entities are decoded first, so Sanitize(Sanitize(x)) == Sanitize(x).
func Sanitize(text string) string {
	return html.EscapeString(stripControls(html.UnescapeString(text)))
}

func stripControls(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '\n', '\r', '\t':
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}
