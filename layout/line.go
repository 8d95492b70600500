package layout

import (
	"sort"

	"github.com/mweir/strata/model"
	"github.com/mweir/strata/text"
)

// Line represents a single reconstructed line of text on a page
type Line struct {
	// Y is the line's representative baseline: the Y of the token that
	// founded the line. It never changes as tokens are added.
	Y float64

	// Tokens are the line's tokens, sorted by ascending X
	Tokens []model.Token

	// Index is the line's position on the page (0-based, top to bottom)
	Index int
}

// Text returns the line's token texts joined with single spaces
func (l *Line) Text() string {
	parts := make([]string, len(l.Tokens))
	for i, tok := range l.Tokens {
		parts[i] = tok.Text
	}
	return text.JoinCells(parts)
}

// LineConfig holds configuration for line grouping
type LineConfig struct {
	// Tolerance is the maximum distance between a token's Y and a line's
	// representative Y for the token to join that line (default: 2.6)
	Tolerance float64
}

// DefaultLineConfig returns sensible default configuration
func DefaultLineConfig() LineConfig {
	return LineConfig{Tolerance: 2.6}
}

// LineGrouper clusters tokens into ordered lines by vertical proximity
type LineGrouper struct {
	config LineConfig
}

// NewLineGrouper creates a line grouper with default configuration
func NewLineGrouper() *LineGrouper {
	return &LineGrouper{config: DefaultLineConfig()}
}

// NewLineGrouperWithConfig creates a line grouper with custom configuration
func NewLineGrouperWithConfig(config LineConfig) *LineGrouper {
	return &LineGrouper{config: config}
}

// Group clusters tokens into lines and returns them top of page first.
//
// This is greedy, fixed-radius, single-pass clustering, not transitive
// single-linkage: tokens are processed in (Y descending, X ascending)
// order, each token joins the first line whose representative Y is within
// tolerance, and a line's representative Y is fixed when the line is
// created. Two lines whose centers drift close together are never merged.
func (g *LineGrouper) Group(tokens []model.Token) []Line {
	if len(tokens) == 0 {
		return nil
	}

	// Fix a deterministic processing order.
	sorted := make([]model.Token, len(tokens))
	copy(sorted, tokens)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Y != sorted[j].Y {
			return sorted[i].Y > sorted[j].Y
		}
		return sorted[i].X < sorted[j].X
	})

	var lines []Line
	for _, tok := range sorted {
		placed := false
		for i := range lines {
			if absFloat64(lines[i].Y-tok.Y) <= g.config.Tolerance {
				lines[i].Tokens = append(lines[i].Tokens, tok)
				placed = true
				break
			}
		}
		if !placed {
			lines = append(lines, Line{Y: tok.Y, Tokens: []model.Token{tok}})
		}
	}

	for i := range lines {
		toks := lines[i].Tokens
		sort.SliceStable(toks, func(a, b int) bool {
			return toks[a].X < toks[b].X
		})
	}

	// Larger Y is higher on the page, so descending Y is reading order.
	sort.SliceStable(lines, func(i, j int) bool {
		return lines[i].Y > lines[j].Y
	})
	for i := range lines {
		lines[i].Index = i
	}

	return lines
}

func absFloat64(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
