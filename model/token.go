package model

import "math"

// Token represents a positioned piece of text produced by an external
// extraction source (PDF decoder, OCR engine, etc.).
type Token struct {
	// Text is the token's raw text content
	Text string

	// X is the horizontal baseline coordinate (left edge)
	X float64

	// Y is the vertical baseline coordinate; larger Y is higher on the page
	Y float64

	// Width is the horizontal extent of the token (0 if unknown)
	Width float64

	// Height is the vertical extent of the token (0 if unknown)
	Height float64
}

// HasFinitePosition reports whether both coordinates are finite numbers.
// Tokens with NaN or infinite coordinates cannot be placed on a page and
// are dropped during normalization.
func (t Token) HasFinitePosition() bool {
	return !math.IsNaN(t.X) && !math.IsInf(t.X, 0) &&
		!math.IsNaN(t.Y) && !math.IsInf(t.Y, 0)
}

// Right returns the X coordinate of the token's right edge.
func (t Token) Right() float64 {
	return t.X + t.Width
}
