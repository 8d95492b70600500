// Package layout reconstructs document structure from flat positioned
// tokens.
//
// Given only text and baseline (x, y) coordinates per token, the package
// recovers a plausible reading order and groups tokens into semantically
// typed blocks: headers, paragraphs, and tables.
//
// # Pipeline
//
// The [Analyzer] orchestrates the full pipeline:
//
//	analyzer := layout.NewAnalyzer()
//	page := analyzer.Analyze(tokens)
//
// Internally the stages run in order:
//
//   - NormalizeTokens - cleans token text, drops malformed tokens
//   - [LineGrouper] - clusters tokens into lines by vertical proximity
//   - [ColumnSplitter] - splits each line into cells by horizontal gaps
//   - [BlockAssembler] - walks the lines, consulting [HeaderClassifier]
//     and the tables package, and emits the final block sequence
//
// # Configuration
//
// Every heuristic threshold lives in an explicit config record so that
// behavior is tunable and reproducible in tests:
//
//	config := layout.DefaultAnalyzerConfig()
//	config.Line.Tolerance = 2.8
//	config.Column.GapMultiplier = 2.0
//	analyzer := layout.NewAnalyzerWithConfig(config)
//
// # Determinism
//
// The pipeline is a pure function of (tokens, config): identical input
// always yields an identical block sequence, any input yields some valid
// sequence, and no stage reorders content relative to the line order that
// produced it.
package layout
