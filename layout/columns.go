package layout

import (
	"sort"
	"strings"

	"github.com/mweir/strata/model"
	"github.com/mweir/strata/text"
)

// ColumnConfig holds configuration for column splitting
type ColumnConfig struct {
	// GapMultiplier scales the median token gap to form the split
	// threshold (default: 2.2)
	GapMultiplier float64

	// MinGap is the floor for the split threshold, in position units
	// (default: 10). Lines with uniformly tight spacing never split.
	MinGap float64
}

// DefaultColumnConfig returns sensible default configuration
func DefaultColumnConfig() ColumnConfig {
	return ColumnConfig{
		GapMultiplier: 2.2,
		MinGap:        10.0,
	}
}

// ColumnSplitter splits one line's tokens into cells by horizontal gap
// analysis
type ColumnSplitter struct {
	config ColumnConfig
}

// NewColumnSplitter creates a column splitter with default configuration
func NewColumnSplitter() *ColumnSplitter {
	return &ColumnSplitter{config: DefaultColumnConfig()}
}

// NewColumnSplitterWithConfig creates a column splitter with custom
// configuration
func NewColumnSplitterWithConfig(config ColumnConfig) *ColumnSplitter {
	return &ColumnSplitter{config: config}
}

// Split divides a line's tokens (already sorted by ascending X) into
// normalized cell strings. A gap between adjacent tokens that exceeds the
// line's split threshold starts a new cell. The threshold is the median
// of the line's positive inter-token gaps scaled by GapMultiplier, but
// never below MinGap.
func (s *ColumnSplitter) Split(tokens []model.Token) []string {
	if len(tokens) == 0 {
		return nil
	}
	if len(tokens) == 1 {
		return []string{text.Collapse(tokens[0].Text)}
	}

	threshold := s.threshold(tokens)

	var cells []string
	var buffer []string
	for i, tok := range tokens {
		buffer = append(buffer, tok.Text)
		if i == len(tokens)-1 {
			break
		}
		gap := tokens[i+1].X - tok.Right()
		if gap > threshold {
			cells = append(cells, text.Collapse(strings.Join(buffer, " ")))
			buffer = buffer[:0]
		}
	}
	cells = append(cells, text.Collapse(strings.Join(buffer, " ")))

	return cells
}

// threshold computes the line's split threshold from the median of its
// positive inter-token gaps. Zero and negative gaps indicate overlap or
// kerning and are excluded from the median rather than counted as zero.
func (s *ColumnSplitter) threshold(tokens []model.Token) float64 {
	var gaps []float64
	for i := 0; i < len(tokens)-1; i++ {
		gap := tokens[i+1].X - tokens[i].Right()
		if gap > 0 {
			gaps = append(gaps, gap)
		}
	}

	threshold := median(gaps) * s.config.GapMultiplier
	if threshold < s.config.MinGap {
		threshold = s.config.MinGap
	}
	return threshold
}

// median returns the median of values, 0 for an empty slice
func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 0 {
		return (sorted[mid-1] + sorted[mid]) / 2
	}
	return sorted[mid]
}
