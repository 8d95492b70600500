package document

import (
	"context"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/mweir/strata/layout"
	"github.com/mweir/strata/model"
)

// Document is an ordered collection of reconstructed pages
type Document struct {
	Pages []*model.Page
}

// PageCount returns the number of pages in the document
func (d *Document) PageCount() int {
	if d == nil {
		return 0
	}
	return len(d.Pages)
}

// Text returns the document's text, pages separated by form feeds
func (d *Document) Text() string {
	if d == nil {
		return ""
	}
	parts := make([]string, len(d.Pages))
	for i, page := range d.Pages {
		parts[i] = page.Text()
	}
	return strings.Join(parts, "\f")
}

// Config holds configuration for document processing
type Config struct {
	// Analyzer configures the per-page reconstruction pipeline
	Analyzer layout.AnalyzerConfig

	// Parallelism caps the number of pages analyzed concurrently;
	// 0 or less means GOMAXPROCS
	Parallelism int
}

// DefaultConfig returns sensible default configuration
func DefaultConfig() Config {
	return Config{
		Analyzer:    layout.DefaultAnalyzerConfig(),
		Parallelism: 0,
	}
}

// Process reconstructs every page of a document with default
// configuration. pageTokens holds one token collection per page, in page
// order; the returned document preserves that order.
func Process(ctx context.Context, pageTokens [][]model.Token) (*Document, error) {
	return ProcessWithConfig(ctx, pageTokens, DefaultConfig())
}

// ProcessWithConfig reconstructs every page of a document in parallel.
// If the context is canceled, processing stops before further pages are
// analyzed and the context's error is returned.
func ProcessWithConfig(ctx context.Context, pageTokens [][]model.Token, config Config) (*Document, error) {
	analyzer := layout.NewAnalyzerWithConfig(config.Analyzer)

	limit := config.Parallelism
	if limit <= 0 {
		limit = runtime.GOMAXPROCS(0)
	}

	results := make([]*model.Page, len(pageTokens))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, tokens := range pageTokens {
		i, tokens := i, tokens
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = analyzer.Analyze(tokens)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Document{Pages: results}, nil
}
