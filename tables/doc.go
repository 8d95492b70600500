// Package tables provides heuristic table detection over windows of
// cell-split lines.
//
// The detector answers one question: does a window of consecutive lines,
// each already split into cells by horizontal gap analysis, look tabular?
// It works purely on cell counts — no ruling lines, borders, or font
// information are available at this stage.
//
// # Detection
//
//	detector := tables.NewDetector()
//	if detector.Detect(rows) {
//	    // the window is table-like
//	}
//
// A window is table-like when enough of its lines agree on a common column
// count. Lines with fewer than two cells or only empty cells are ignored
// as row candidates. The most common column count is chosen with a
// deterministic tie-break (the lowest count wins) so that detection never
// depends on map iteration order.
//
// # Row shaping
//
// [PadRows] and [DropEmptyRows] shape the winning window's rows into a
// uniform table: every row is padded with empty cells to the window's
// maximum width, and rows that remain entirely empty are removed.
package tables
