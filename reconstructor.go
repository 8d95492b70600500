package strata

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mweir/strata/document"
	"github.com/mweir/strata/layout"
	"github.com/mweir/strata/model"
	"github.com/mweir/strata/render"
)

// Reconstructor provides a fluent interface for rebuilding document
// structure from positioned tokens. Each configuration method returns a
// new Reconstructor instance, making it safe for concurrent use and
// allowing method chaining.
type Reconstructor struct {
	// Source: one token collection per page, in page order
	pages [][]model.Token

	// Configuration
	options reconstructOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Reconstructor with a deep copy of
// options. This ensures immutability - each chain method returns a new
// instance.
func (r *Reconstructor) clone() *Reconstructor {
	return &Reconstructor{
		pages:   r.pages,
		options: r.options.clone(),
		err:     r.err,
	}
}

// ============================================================================
// Configuration Methods (return new Reconstructor instance)
// ============================================================================

// Tolerance sets the vertical radius, in page units, within which tokens
// are grouped onto the same line.
//
// Example:
//
//	page, _, err := strata.FromTokens(tokens).Tolerance(3.5).Page()
func (r *Reconstructor) Tolerance(tolerance float64) *Reconstructor {
	newRec := r.clone()
	newRec.options.analyzer.Line.Tolerance = tolerance
	return newRec
}

// GapMultiplier sets the factor applied to the median token gap when
// deciding where a line splits into columns.
//
// Example:
//
//	page, _, err := strata.FromTokens(tokens).GapMultiplier(1.8).Page()
func (r *Reconstructor) GapMultiplier(multiplier float64) *Reconstructor {
	newRec := r.clone()
	newRec.options.analyzer.Column.GapMultiplier = multiplier
	return newRec
}

// MinColumnGap sets the floor, in page units, below which a gap never
// splits a line into columns.
func (r *Reconstructor) MinColumnGap(gap float64) *Reconstructor {
	newRec := r.clone()
	newRec.options.analyzer.Column.MinGap = gap
	return newRec
}

// WindowSize sets how many lines the block assembler examines when
// probing for a table.
func (r *Reconstructor) WindowSize(size int) *Reconstructor {
	newRec := r.clone()
	newRec.options.analyzer.Assembler.WindowSize = size
	return newRec
}

// ParagraphCap sets the maximum number of lines merged into a single
// paragraph block.
func (r *Reconstructor) ParagraphCap(limit int) *Reconstructor {
	newRec := r.clone()
	newRec.options.analyzer.Assembler.ParagraphCap = limit
	return newRec
}

// Parallelism caps the number of pages analyzed concurrently by
// multi-page terminal operations. Zero or less means GOMAXPROCS.
func (r *Reconstructor) Parallelism(n int) *Reconstructor {
	newRec := r.clone()
	newRec.options.parallelism = n
	return newRec
}

// WithConfig replaces the full pipeline configuration. This is the
// escape hatch for settings without a dedicated chain method, such as
// header classification bounds or table detection thresholds.
//
// Example:
//
//	config := layout.DefaultAnalyzerConfig()
//	config.Assembler.Header.MaxLength = 80
//	page, _, err := strata.FromTokens(tokens).WithConfig(config).Page()
func (r *Reconstructor) WithConfig(config layout.AnalyzerConfig) *Reconstructor {
	newRec := r.clone()
	newRec.options.analyzer = config
	return newRec
}

// WithMarkdownOptions replaces the markdown rendering options used by
// the Markdown terminal operation.
func (r *Reconstructor) WithMarkdownOptions(opts render.MarkdownOptions) *Reconstructor {
	newRec := r.clone()
	newRec.options.markdown = opts
	return newRec
}

// PageCount returns the number of pages the reconstructor holds.
func (r *Reconstructor) PageCount() int {
	return len(r.pages)
}

// ============================================================================
// Terminal Operations (execute reconstruction and return results)
// ============================================================================

// Page reconstructs a single page of tokens into ordered blocks.
//
// Returns the reconstructed page, any warnings encountered during
// processing, and an error if reconstruction failed. Warnings indicate
// non-fatal issues (e.g., malformed tokens dropped) where reconstruction
// succeeded but results may be imperfect.
//
// Example:
//
//	page, warnings, err := strata.FromTokens(tokens).Page()
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", strata.FormatWarnings(warnings))
//	}
func (r *Reconstructor) Page() (*model.Page, []Warning, error) {
	raw, err := r.singlePage()
	if err != nil {
		return nil, nil, err
	}

	normalized := layout.NormalizeTokens(raw)
	warnings := inputWarnings(raw, normalized)

	analyzer := layout.NewAnalyzerWithConfig(r.options.analyzer)
	return analyzer.Analyze(normalized), warnings, nil
}

// Blocks reconstructs a single page and returns its blocks in reading
// order.
//
// Example:
//
//	blocks, warnings, err := strata.FromTokens(tokens).Blocks()
//	for _, block := range blocks {
//	    fmt.Println(block.Type())
//	}
func (r *Reconstructor) Blocks() ([]model.Block, []Warning, error) {
	page, warnings, err := r.Page()
	if err != nil {
		return nil, nil, err
	}
	return page.Blocks, warnings, nil
}

// Lines runs normalization and line grouping only, returning the grouped
// lines in reading order. Useful for inspecting how tokens cluster
// before block assembly.
//
// Example:
//
//	lines, err := strata.FromTokens(tokens).Lines()
//	for _, line := range lines {
//	    fmt.Println(line.Text())
//	}
func (r *Reconstructor) Lines() ([]layout.Line, error) {
	raw, err := r.singlePage()
	if err != nil {
		return nil, err
	}

	analyzer := layout.NewAnalyzerWithConfig(r.options.analyzer)
	return analyzer.Lines(raw), nil
}

// Document reconstructs every page and returns the assembled document.
// Pages are analyzed in parallel; the context cancels outstanding work.
//
// Example:
//
//	doc, warnings, err := strata.FromPages(pages).Document(ctx)
func (r *Reconstructor) Document(ctx context.Context) (*document.Document, []Warning, error) {
	if r.err != nil {
		return nil, nil, r.err
	}

	var warnings []Warning
	for _, raw := range r.pages {
		warnings = append(warnings, inputWarnings(raw, layout.NormalizeTokens(raw))...)
	}

	doc, err := document.ProcessWithConfig(ctx, r.pages, document.Config{
		Analyzer:    r.options.analyzer,
		Parallelism: r.options.parallelism,
	})
	if err != nil {
		return nil, warnings, err
	}
	return doc, warnings, nil
}

// Text reconstructs all pages and returns their flattened text. Table
// rows join cells with tabs, blocks are separated by blank lines, and
// pages by form feeds.
//
// Example:
//
//	text, warnings, err := strata.FromTokens(tokens).Text()
func (r *Reconstructor) Text() (string, []Warning, error) {
	doc, warnings, err := r.Document(context.Background())
	if err != nil {
		return "", warnings, err
	}
	return doc.Text(), warnings, nil
}

// Markdown reconstructs all pages and renders them as markdown, with
// pages separated by blank lines.
//
// Example:
//
//	md, warnings, err := strata.FromTokens(tokens).Markdown()
func (r *Reconstructor) Markdown() (string, []Warning, error) {
	doc, warnings, err := r.Document(context.Background())
	if err != nil {
		return "", warnings, err
	}

	parts := make([]string, len(doc.Pages))
	for i, page := range doc.Pages {
		parts[i] = render.MarkdownWithOptions(page, r.options.markdown)
	}
	return strings.Join(parts, "\n"), warnings, nil
}

// HTML reconstructs all pages and renders each as an HTML fragment, one
// <article> per page.
//
// Example:
//
//	fragment, warnings, err := strata.FromTokens(tokens).HTML()
func (r *Reconstructor) HTML() (string, []Warning, error) {
	doc, warnings, err := r.Document(context.Background())
	if err != nil {
		return "", warnings, err
	}

	parts := make([]string, len(doc.Pages))
	for i, page := range doc.Pages {
		fragment, err := render.HTML(page)
		if err != nil {
			return "", warnings, fmt.Errorf("page %d: %w", i+1, err)
		}
		parts[i] = fragment
	}
	return strings.Join(parts, "\n"), warnings, nil
}

// JSON reconstructs a single page and returns its wire representation:
// an object with a "blocks" array where each block carries a "type"
// discriminator.
//
// Example:
//
//	data, warnings, err := strata.FromTokens(tokens).JSON()
func (r *Reconstructor) JSON() ([]byte, []Warning, error) {
	page, warnings, err := r.Page()
	if err != nil {
		return nil, nil, err
	}

	data, err := json.Marshal(page)
	if err != nil {
		return nil, warnings, err
	}
	return data, warnings, nil
}

// singlePage returns the reconstructor's sole page of tokens, or an
// error when it holds zero or several pages.
func (r *Reconstructor) singlePage() ([]model.Token, error) {
	if r.err != nil {
		return nil, r.err
	}
	if len(r.pages) != 1 {
		return nil, fmt.Errorf("operation requires exactly one page, have %d", len(r.pages))
	}
	return r.pages[0], nil
}
