package layout

import (
	"github.com/mweir/strata/model"
)

// AnalyzerConfig holds configuration for the full reconstruction pipeline
type AnalyzerConfig struct {
	// Line configures line grouping
	Line LineConfig

	// Column configures column splitting
	Column ColumnConfig

	// Assembler configures block assembly, including the header
	// classifier and table detector it consults
	Assembler AssemblerConfig
}

// DefaultAnalyzerConfig returns sensible default configuration
func DefaultAnalyzerConfig() AnalyzerConfig {
	return AnalyzerConfig{
		Line:      DefaultLineConfig(),
		Column:    DefaultColumnConfig(),
		Assembler: DefaultAssemblerConfig(),
	}
}

// Analyzer orchestrates the token-to-blocks reconstruction pipeline:
// normalization, line grouping, column splitting, and block assembly.
// An Analyzer is stateless between calls and safe for concurrent use.
type Analyzer struct {
	config    AnalyzerConfig
	grouper   *LineGrouper
	splitter  *ColumnSplitter
	assembler *BlockAssembler
}

// NewAnalyzer creates an analyzer with default configuration
func NewAnalyzer() *Analyzer {
	return NewAnalyzerWithConfig(DefaultAnalyzerConfig())
}

// NewAnalyzerWithConfig creates an analyzer with custom configuration
func NewAnalyzerWithConfig(config AnalyzerConfig) *Analyzer {
	return &Analyzer{
		config:    config,
		grouper:   NewLineGrouperWithConfig(config.Line),
		splitter:  NewColumnSplitterWithConfig(config.Column),
		assembler: NewBlockAssemblerWithConfig(config.Assembler),
	}
}

// Config returns the configuration the analyzer was built with
func (a *Analyzer) Config() AnalyzerConfig {
	return a.config
}

// Analyze runs the full pipeline on one page's tokens and returns the
// reconstructed page. It is total: any token input, however degenerate,
// produces a valid (possibly empty) page.
func (a *Analyzer) Analyze(tokens []model.Token) *model.Page {
	page := model.NewPage()
	page.Blocks = a.assembler.Assemble(a.CellLines(tokens))
	return page
}

// Lines runs normalization and line grouping only
func (a *Analyzer) Lines(tokens []model.Token) []Line {
	return a.grouper.Group(NormalizeTokens(tokens))
}

// CellLines runs the pipeline up to column splitting, returning each
// line's cell array in reading order
func (a *Analyzer) CellLines(tokens []model.Token) []CellLine {
	lines := a.Lines(tokens)
	cellLines := make([]CellLine, len(lines))
	for i, line := range lines {
		cellLines[i] = CellLine{Cells: a.splitter.Split(line.Tokens)}
	}
	return cellLines
}
