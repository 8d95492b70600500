// Package text provides string cleaning for token and cell content.
//
// Token text arrives from external extraction sources (PDF decoders, OCR
// engines) and frequently carries irregular whitespace, zero-width format
// runes, and decomposed Unicode sequences. [Clean] applies NFC
// normalization, strips format runes, and collapses whitespace so that the
// rest of the pipeline can compare and join text without caring about the
// source's quirks.
package text
