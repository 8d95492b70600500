package tables

// Config holds configuration for table detection
type Config struct {
	// MinRowCandidates is the minimum number of row candidates a window
	// must contain before detection is attempted (default: 4)
	MinRowCandidates int

	// MinColumns is the minimum winning column count for a table (default: 2)
	MinColumns int

	// MinAgreement is the minimum absolute number of rows that must share
	// the winning column count (default: 3)
	MinAgreement int

	// AgreementRatio is the minimum fraction of row candidates that must
	// share the winning column count (default: 0.6)
	AgreementRatio float64
}

// DefaultConfig returns sensible default configuration
func DefaultConfig() Config {
	return Config{
		MinRowCandidates: 4,
		MinColumns:       2,
		MinAgreement:     3,
		AgreementRatio:   0.6,
	}
}

// Detector decides whether a window of cell-split lines looks tabular
type Detector struct {
	config Config
}

// NewDetector creates a detector with default configuration
func NewDetector() *Detector {
	return &Detector{config: DefaultConfig()}
}

// NewDetectorWithConfig creates a detector with custom configuration
func NewDetectorWithConfig(config Config) *Detector {
	return &Detector{config: config}
}

// Detect reports whether the window of rows looks like a table.
// Each row is one line's cell array. Rows with fewer than two cells, or
// with no non-empty cell, do not count as row candidates.
func (d *Detector) Detect(rows [][]string) bool {
	candidates := 0
	counts := make(map[int]int)

	for _, row := range rows {
		if !isRowCandidate(row) {
			continue
		}
		candidates++
		counts[len(row)]++
	}

	if candidates < d.config.MinRowCandidates {
		return false
	}

	bestCount, bestFreq := mostCommonColumnCount(counts)
	if bestCount < d.config.MinColumns {
		return false
	}

	required := int(d.config.AgreementRatio * float64(candidates))
	if required < d.config.MinAgreement {
		required = d.config.MinAgreement
	}

	return bestFreq >= required
}

// isRowCandidate reports whether a cell array can count toward table
// detection: at least two cells, at least one of them non-empty.
func isRowCandidate(row []string) bool {
	if len(row) < 2 {
		return false
	}
	for _, cell := range row {
		if cell != "" {
			return true
		}
	}
	return false
}

// mostCommonColumnCount returns the most frequent column count and its
// frequency. Ties break to the lowest column count so the result never
// depends on map iteration order.
func mostCommonColumnCount(counts map[int]int) (bestCount, bestFreq int) {
	for count, freq := range counts {
		if freq > bestFreq || (freq == bestFreq && count < bestCount) {
			bestCount = count
			bestFreq = freq
		}
	}
	return bestCount, bestFreq
}

// MaxColumns returns the widest cell array length in the window
func MaxColumns(rows [][]string) int {
	max := 0
	for _, row := range rows {
		if len(row) > max {
			max = len(row)
		}
	}
	return max
}

// PadRows pads every row with empty cells to the given width.
// Rows already at or beyond the width are returned unchanged.
func PadRows(rows [][]string, width int) [][]string {
	padded := make([][]string, len(rows))
	for i, row := range rows {
		if len(row) >= width {
			padded[i] = row
			continue
		}
		p := make([]string, width)
		copy(p, row)
		padded[i] = p
	}
	return padded
}

// DropEmptyRows removes rows whose cells are all empty
func DropEmptyRows(rows [][]string) [][]string {
	kept := rows[:0:0]
	for _, row := range rows {
		empty := true
		for _, cell := range row {
			if cell != "" {
				empty = false
				break
			}
		}
		if !empty {
			kept = append(kept, row)
		}
	}
	return kept
}
