package strata

import (
	"fmt"
	"strings"

	"github.com/mweir/strata/model"
)

// WarningType identifies the category of a non-fatal processing issue.
type WarningType string

const (
	// WarningDroppedTokens indicates tokens were discarded during
	// normalization (non-finite positions or empty text after cleaning).
	WarningDroppedTokens WarningType = "dropped-tokens"

	// WarningCharacterLevel indicates the input looks like one token per
	// character rather than per word, which degrades column and table
	// detection.
	WarningCharacterLevel WarningType = "character-level"
)

// Warning describes a non-fatal issue encountered during reconstruction.
// Reconstruction succeeded but results may be imperfect.
type Warning struct {
	Type    WarningType
	Message string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s", w.Type, w.Message)
}

// FormatWarnings joins warnings into a single human-readable string.
//
// Example:
//
//	log.Println("Warnings:", strata.FormatWarnings(warnings))
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}

// inputWarnings inspects a page's raw and normalized tokens and reports
// input-quality issues.
func inputWarnings(raw, normalized []model.Token) []Warning {
	var warnings []Warning

	if dropped := len(raw) - len(normalized); dropped > 0 {
		warnings = append(warnings, Warning{
			Type:    WarningDroppedTokens,
			Message: fmt.Sprintf("%d of %d tokens dropped during normalization", dropped, len(raw)),
		})
	}

	if isCharacterLevel(normalized) {
		warnings = append(warnings, Warning{
			Type:    WarningCharacterLevel,
			Message: "most tokens are single characters; column and table detection may be unreliable",
		})
	}

	return warnings
}

// isCharacterLevel reports whether tokens appear to be character-level
// (one character per token). Returns true if more than 60% of tokens
// contain a single character; fewer than 10 tokens is not enough data.
func isCharacterLevel(tokens []model.Token) bool {
	if len(tokens) < 10 {
		return false
	}

	single := 0
	for _, tok := range tokens {
		if len(strings.TrimSpace(tok.Text)) <= 1 {
			single++
		}
	}

	return float64(single)/float64(len(tokens)) > 0.6
}
