package strata

import (
	"github.com/mweir/strata/layout"
	"github.com/mweir/strata/render"
)

// reconstructOptions holds configuration for reconstruction.
type reconstructOptions struct {
	// Pipeline configuration
	analyzer layout.AnalyzerConfig

	// Markdown rendering
	markdown render.MarkdownOptions

	// Page-level parallelism for multi-page terminal operations;
	// 0 means GOMAXPROCS
	parallelism int
}

// defaultOptions returns the default reconstruction options.
func defaultOptions() reconstructOptions {
	return reconstructOptions{
		analyzer:    layout.DefaultAnalyzerConfig(),
		markdown:    render.DefaultMarkdownOptions(),
		parallelism: 0,
	}
}

// clone creates a copy of reconstructOptions. All fields are value
// types, so a plain copy is a deep copy.
func (o reconstructOptions) clone() reconstructOptions {
	return o
}
