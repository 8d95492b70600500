package layout

import (
	"strings"

	"github.com/mweir/strata/model"
	"github.com/mweir/strata/tables"
	"github.com/mweir/strata/text"
)

// CellLine is one line after column splitting: the line's cells in
// left-to-right order
type CellLine struct {
	Cells []string
}

// FullText returns the line's cells joined with single spaces, skipping
// empty cells
func (cl CellLine) FullText() string {
	return text.JoinCells(cl.Cells)
}

// AssemblerConfig holds configuration for block assembly
type AssemblerConfig struct {
	// WindowSize is the maximum lookahead window for table detection,
	// in lines (default: 25)
	WindowSize int

	// ParagraphCap is the maximum number of lines accumulated into one
	// paragraph (default: 8)
	ParagraphCap int

	// Header configures the header classifier
	Header HeaderConfig

	// Table configures the table detector
	Table tables.Config
}

// DefaultAssemblerConfig returns sensible default configuration
func DefaultAssemblerConfig() AssemblerConfig {
	return AssemblerConfig{
		WindowSize:   25,
		ParagraphCap: 8,
		Header:       DefaultHeaderConfig(),
		Table:        tables.DefaultConfig(),
	}
}

// BlockAssembler walks a page's cell-split lines and emits the ordered
// block sequence, consulting the header classifier and table detector.
// Content is only grouped, never reordered.
type BlockAssembler struct {
	config     AssemblerConfig
	classifier *HeaderClassifier
	detector   *tables.Detector
}

// NewBlockAssembler creates a block assembler with default configuration
func NewBlockAssembler() *BlockAssembler {
	return NewBlockAssemblerWithConfig(DefaultAssemblerConfig())
}

// NewBlockAssemblerWithConfig creates a block assembler with custom
// configuration
func NewBlockAssemblerWithConfig(config AssemblerConfig) *BlockAssembler {
	return &BlockAssembler{
		config:     config,
		classifier: NewHeaderClassifierWithConfig(config.Header),
		detector:   tables.NewDetectorWithConfig(config.Table),
	}
}

// Assemble converts ordered cell lines into the page's block sequence
func (a *BlockAssembler) Assemble(lines []CellLine) []model.Block {
	var blocks []model.Block

	cursor := 0
	for cursor < len(lines) {
		full := lines[cursor].FullText()
		if full == "" {
			cursor++
			continue
		}

		if a.classifier.IsHeader(full) {
			blocks = append(blocks, &model.Header{Text: full})
			cursor++
			continue
		}

		window := a.lookahead(lines, cursor)
		if a.detector.Detect(cellArrays(window)) {
			blocks = append(blocks, buildTable(window))
			// Consume the whole window, not just the surviving rows.
			cursor += len(window)
			continue
		}

		paragraph, consumed := a.accumulateParagraph(lines, cursor)
		if paragraph != nil {
			blocks = append(blocks, paragraph)
		}
		cursor += consumed
	}

	return blocks
}

// lookahead collects up to WindowSize consecutive lines starting at the
// cursor, truncating before the first header-like line past the start.
func (a *BlockAssembler) lookahead(lines []CellLine, start int) []CellLine {
	end := start + a.config.WindowSize
	if end > len(lines) {
		end = len(lines)
	}

	for i := start + 1; i < end; i++ {
		if a.classifier.IsHeader(lines[i].FullText()) {
			end = i
			break
		}
	}

	return lines[start:end]
}

// buildTable shapes a detected window into a table block. Every row is
// padded to the window's maximum cell count, rows left entirely empty are
// dropped, and the approximate row count records the window length before
// filtering.
func buildTable(window []CellLine) *model.Table {
	cells := cellArrays(window)
	padded := tables.PadRows(cells, tables.MaxColumns(cells))
	kept := tables.DropEmptyRows(padded)

	rows := make([]model.Row, len(kept))
	for i, r := range kept {
		rows[i] = model.Row(r)
	}

	return &model.Table{
		Rows:           rows,
		ApproxRowCount: len(window),
	}
}

// accumulateParagraph gathers consecutive body lines starting at the
// cursor into one paragraph. Blank lines are skipped; a header-like line
// or a table-shaped line (three or more cells) ends the paragraph without
// being consumed once at least one line has been accumulated. The cursor
// always advances by at least one line.
func (a *BlockAssembler) accumulateParagraph(lines []CellLine, start int) (model.Block, int) {
	var accumulated []string

	i := start
	for i < len(lines) && len(accumulated) < a.config.ParagraphCap {
		full := lines[i].FullText()
		if full == "" {
			i++
			continue
		}
		if len(accumulated) > 0 && a.classifier.IsHeader(full) {
			break
		}
		if len(accumulated) > 0 && len(lines[i].Cells) >= 3 {
			break
		}
		accumulated = append(accumulated, full)
		i++
	}

	if i == start {
		// Degenerate case: nothing was consumed. Take the current line
		// as a one-line paragraph so the cursor always moves.
		if full := lines[start].FullText(); full != "" {
			accumulated = append(accumulated, full)
		}
		i = start + 1
	}

	if len(accumulated) == 0 {
		return nil, i - start
	}

	paragraph := &model.Paragraph{
		Text: text.Collapse(strings.Join(accumulated, " ")),
	}
	return paragraph, i - start
}

// cellArrays extracts the raw cell slices from a window of lines
func cellArrays(window []CellLine) [][]string {
	cells := make([][]string, len(window))
	for i, line := range window {
		cells[i] = line.Cells
	}
	return cells
}
