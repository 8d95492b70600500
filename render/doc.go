// Package render converts reconstructed pages into presentation formats.
//
// Two renderers are provided:
//
//   - [Markdown] - GitHub-style markdown with pipe tables
//   - [HTML] - an HTML fragment built and serialized with
//     golang.org/x/net/html
//
// Both renderers preserve block order exactly; they format, never
// restructure.
package render
