package text

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Clean normalizes a string for use as token or cell text: Unicode is
// composed to NFC, zero-width and other format runes (category Cf) are
// removed, and whitespace is collapsed and trimmed.
func Clean(s string) string {
	t := transform.Chain(norm.NFC, runes.Remove(runes.In(unicode.Cf)))
	if out, _, err := transform.String(t, s); err == nil {
		s = out
	}
	return Collapse(s)
}

// Collapse replaces every run of whitespace with a single space and trims
// leading and trailing whitespace.
func Collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// JoinCells joins cell strings with single spaces, skipping empty cells.
func JoinCells(cells []string) string {
	var parts []string
	for _, c := range cells {
		if c != "" {
			parts = append(parts, c)
		}
	}
	return strings.Join(parts, " ")
}
