package layout

import (
	"github.com/mweir/strata/model"
	"github.com/mweir/strata/text"
)

// NormalizeTokens validates and cleans raw tokens. Each token's text is
// whitespace-collapsed and trimmed; tokens whose text ends up empty, or
// whose coordinates are not finite, are dropped. The input slice is not
// modified.
func NormalizeTokens(tokens []model.Token) []model.Token {
	cleaned := make([]model.Token, 0, len(tokens))
	for _, tok := range tokens {
		if !tok.HasFinitePosition() {
			continue
		}
		tok.Text = text.Clean(tok.Text)
		if tok.Text == "" {
			continue
		}
		cleaned = append(cleaned, tok)
	}
	return cleaned
}
