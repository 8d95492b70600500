package layout

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// HeaderConfig holds configuration for header classification
type HeaderConfig struct {
	// MinLength is the exclusive lower bound on text length; candidates
	// at or below it are never headers (default: 3)
	MinLength int

	// MaxLength is the inclusive upper bound on header text length
	// (default: 60)
	MaxLength int

	// UppercaseRatio is the exclusive lower bound on the ratio of
	// uppercase letters to all letters for header acceptance (default: 0.65)
	UppercaseRatio float64
}

// DefaultHeaderConfig returns sensible default configuration
func DefaultHeaderConfig() HeaderConfig {
	return HeaderConfig{
		MinLength:      3,
		MaxLength:      60,
		UppercaseRatio: 0.65,
	}
}

// HeaderClassifier is a heuristic predicate deciding whether a line of
// text looks like a section header. It is a pure, deterministic function
// of its input.
type HeaderClassifier struct {
	config HeaderConfig
}

// NewHeaderClassifier creates a classifier with default configuration
func NewHeaderClassifier() *HeaderClassifier {
	return &HeaderClassifier{config: DefaultHeaderConfig()}
}

// NewHeaderClassifierWithConfig creates a classifier with custom
// configuration
func NewHeaderClassifierWithConfig(config HeaderConfig) *HeaderClassifier {
	return &HeaderClassifier{config: config}
}

// IsHeader reports whether normalized line text looks like a section
// header: short enough, and either dominated by uppercase letters or
// carrying a colon label.
func (c *HeaderClassifier) IsHeader(s string) bool {
	length := utf8.RuneCountInString(s)
	if length <= c.config.MinLength {
		return false
	}
	if length > c.config.MaxLength {
		return false
	}
	return c.uppercaseRatio(s) > c.config.UppercaseRatio ||
		strings.ContainsRune(s, ':')
}

// uppercaseRatio returns the ratio of uppercase letters to all letters,
// 0 when the text contains no letters.
func (c *HeaderClassifier) uppercaseRatio(s string) float64 {
	letters := 0
	upper := 0
	for _, r := range s {
		if unicode.IsLetter(r) {
			letters++
			if unicode.IsUpper(r) {
				upper++
			}
		}
	}
	if letters == 0 {
		return 0
	}
	return float64(upper) / float64(letters)
}
