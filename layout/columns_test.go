package layout

import (
	"reflect"
	"testing"

	"github.com/mweir/strata/model"
)

func TestColumnSplitter_Empty(t *testing.T) {
	splitter := NewColumnSplitter()
	if cells := splitter.Split(nil); cells != nil {
		t.Errorf("Expected nil cells for empty input, got %v", cells)
	}
}

func TestColumnSplitter_SingleToken(t *testing.T) {
	splitter := NewColumnSplitter()
	cells := splitter.Split([]model.Token{makeToken("lonely", 10, 100)})

	if !reflect.DeepEqual(cells, []string{"lonely"}) {
		t.Errorf("Expected single cell, got %v", cells)
	}
}

func TestColumnSplitter_BreakAtWideGap(t *testing.T) {
	// Tokens at x = 0, 50, 200, width 10 each. Positive gaps are 40 and
	// 140, median 90. A multiplier of 1.5 puts the threshold at 135,
	// below 140: the line must split between the second and third token.
	config := ColumnConfig{GapMultiplier: 1.5, MinGap: 10}
	splitter := NewColumnSplitterWithConfig(config)

	tokens := []model.Token{
		makeToken("a", 0, 100),
		makeToken("b", 50, 100),
		makeToken("c", 200, 100),
	}

	cells := splitter.Split(tokens)
	if !reflect.DeepEqual(cells, []string{"a b", "c"}) {
		t.Errorf("Expected split between x=50 and x=200, got %v", cells)
	}
}

func TestColumnSplitter_SkewedGaps(t *testing.T) {
	splitter := NewColumnSplitter()

	// Three word-spaced tokens followed by one far token: the median gap
	// stays small, so the wide gap exceeds the default threshold.
	tokens := []model.Token{
		makeToken("net", 0, 100),
		makeToken("total", 13, 100),
		makeToken("revenue", 26, 100),
		makeToken("1,234", 200, 100),
	}

	cells := splitter.Split(tokens)
	if !reflect.DeepEqual(cells, []string{"net total revenue", "1,234"}) {
		t.Errorf("Expected two cells, got %v", cells)
	}
}

func TestColumnSplitter_UniformSpacingStaysSingleCell(t *testing.T) {
	splitter := NewColumnSplitter()

	// All gaps equal: no gap can exceed the median-scaled threshold.
	tokens := []model.Token{
		makeToken("one", 0, 100),
		makeToken("two", 100, 100),
		makeToken("three", 200, 100),
	}

	cells := splitter.Split(tokens)
	if len(cells) != 1 {
		t.Errorf("Expected uniformly spaced line to stay one cell, got %v", cells)
	}
}

func TestColumnSplitter_OverlappingTokens(t *testing.T) {
	splitter := NewColumnSplitter()

	// Overlapping and kerned tokens produce only non-positive gaps, so
	// the threshold falls back to the floor and nothing splits.
	tokens := []model.Token{
		makeToken("over", 0, 100),
		makeToken("lap", 8, 100),
		makeToken("ping", 15, 100),
	}

	cells := splitter.Split(tokens)
	if len(cells) != 1 {
		t.Errorf("Expected overlapping tokens to form one cell, got %v", cells)
	}
}

func TestColumnSplitter_GapFloor(t *testing.T) {
	// With tiny uniform gaps, the floor keeps the threshold above them.
	config := ColumnConfig{GapMultiplier: 2.2, MinGap: 10}
	splitter := NewColumnSplitterWithConfig(config)

	tokens := []model.Token{
		makeToken("a", 0, 100),
		makeToken("b", 12, 100),
		makeToken("c", 24, 100),
	}

	cells := splitter.Split(tokens)
	if len(cells) != 1 {
		t.Errorf("Expected tight line to stay one cell, got %v", cells)
	}
}

func TestColumnSplitter_NormalizesCellText(t *testing.T) {
	splitter := NewColumnSplitter()
	tokens := []model.Token{
		{Text: "spaced   out", X: 0, Y: 100, Width: 50},
	}

	cells := splitter.Split(tokens)
	if !reflect.DeepEqual(cells, []string{"spaced out"}) {
		t.Errorf("Expected collapsed cell text, got %v", cells)
	}
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"empty", nil, 0},
		{"single", []float64{5}, 5},
		{"odd", []float64{9, 1, 5}, 5},
		{"even", []float64{1, 3, 5, 9}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := median(tt.values); got != tt.want {
				t.Errorf("median(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}
