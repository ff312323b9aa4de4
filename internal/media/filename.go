package media

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slug normalises a filename stem into a safe public identifier:
// diacritics stripped, lowercased, runs of non-alphanumerics collapsed
// into single dashes. Uploaded menus arrive with Portuguese filenames,
// so the accent stripping matters.
func Slug(stem string) string {
	if folded, _, err := transform.String(deaccent, stem); err == nil {
		stem = folded
	}
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(stem) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			dash = false
		default:
			if !dash && b.Len() > 0 {
				b.WriteByte('-')
				dash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
