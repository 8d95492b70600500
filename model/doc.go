// Package model provides the data types shared across the reconstruction
// pipeline.
//
// This package defines the user-facing data structures for positioned input
// tokens and reconstructed output blocks. All analysis operations ultimately
// produce these types, making them the primary API for consuming results.
//
// # Tokens
//
// A [Token] is the minimal positioned text unit consumed by the pipeline:
// a text string plus baseline (x, y) coordinates and optional width/height.
// Larger y means higher on the page; reading order proceeds by descending y.
//
// # Blocks
//
// Reconstructed content is an exhaustive tagged variant implementing the
// [Block] interface. The concrete types are:
//
//   - [Header] - a section header line
//   - [Paragraph] - a run of body text
//   - [Table] - rows of cells with an approximate source row count
//
// Downstream consumers switch on [Block.Type] (or the concrete type) and
// must handle all three cases.
//
// # Pages
//
// A [Page] is the unit of output: an ordered sequence of blocks. Pages
// marshal to the wire shape used by the surrounding service layer:
//
//	{"type": "header", "text": "..."}
//	{"type": "paragraph", "text": "..."}
//	{"type": "table", "rows": [["..."]], "approx_row_count": 3}
package model
