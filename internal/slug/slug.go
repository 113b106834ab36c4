// Package slug derives URL-safe identifiers from content titles.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Make normalizes a title into a slug: NFKC-normalized lowercase with every
// run of whitespace or hyphens collapsed to a single hyphen and all other
// non-letter, non-digit characters dropped. Letters from any script are kept,
// so Arabic titles stay readable.
func Make(title string) string {
	if title == "" {
		return ""
	}

	normalized := strings.ToLower(strings.TrimSpace(norm.NFKC.String(title)))

	var b strings.Builder
	b.Grow(len(normalized))
	pendingHyphen := false
	for _, r := range normalized {
		switch {
		case unicode.IsLetter(r) || unicode.IsNumber(r):
			if pendingHyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingHyphen = false
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-':
			pendingHyphen = true
		}
	}

	return b.String()
}
