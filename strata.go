// Package strata rebuilds document structure - headers, paragraphs, and
// tables - from flat collections of positioned text tokens.
//
// Basic usage:
//
//	page, warnings, err := strata.FromTokens(tokens).Page()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", strata.FormatWarnings(warnings))
//	}
//
// With options:
//
//	md, _, err := strata.FromTokens(tokens).
//	    Tolerance(3.0).
//	    GapMultiplier(1.8).
//	    Markdown()
//
// For advanced use cases, the lower-level layout package is also
// available.
package strata

import (
	"github.com/mweir/strata/model"
)

// FromTokens returns a Reconstructor over a single page of tokens,
// ready for fluent configuration.
//
// Example:
//
//	page, warnings, err := strata.FromTokens(tokens).Page()
func FromTokens(tokens []model.Token) *Reconstructor {
	return &Reconstructor{
		pages:   [][]model.Token{tokens},
		options: defaultOptions(),
	}
}

// FromPages returns a Reconstructor over a multi-page document, one
// token collection per page in page order.
//
// Example:
//
//	doc, warnings, err := strata.FromPages(pages).Document(ctx)
func FromPages(pages [][]model.Token) *Reconstructor {
	return &Reconstructor{
		pages:   pages,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	lines := strata.Must(strata.FromTokens(tokens).Lines())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustResult is a helper that wraps a terminal operation returning
// (T, []Warning, error) and panics if the error is non-nil. It discards
// warnings and returns just the value. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	text := strata.MustResult(strata.FromTokens(tokens).Text())
func MustResult[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
