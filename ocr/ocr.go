//go:build ocr

// Package ocr turns scanned page images into positioned tokens.
//
// This package wraps the Tesseract OCR engine via gosseract. It requires
// Tesseract to be installed on the system. On macOS, install via:
//
//	brew install tesseract
//
// On Ubuntu/Debian:
//
//	apt-get install tesseract-ocr
//
// Tesseract reports word boxes in image coordinates, where y grows
// downward. The rest of this module works in page coordinates, where a
// larger y means higher on the page, so [Client.Tokens] flips the
// vertical axis using the image height.
package ocr

import (
	"bytes"
	"fmt"
	"image"
	"strings"

	_ "image/jpeg"
	_ "image/png"

	"github.com/otiai10/gosseract/v2"

	"github.com/mweir/strata/model"
)

// Config holds configuration for OCR token extraction
type Config struct {
	// Language selects the recognition language(s); multiple languages
	// can be "+" separated, e.g. "eng+fra"
	Language string

	// MinConfidence drops recognized words below this confidence,
	// on Tesseract's 0-100 scale
	MinConfidence float64
}

// DefaultConfig returns sensible default configuration
func DefaultConfig() Config {
	return Config{
		Language:      "eng",
		MinConfidence: 30,
	}
}

// Client wraps Tesseract for OCR operations.
type Client struct {
	client *gosseract.Client
	config Config
}

// New creates a new OCR client with default configuration.
// The client should be closed when no longer needed to release resources.
func New() (*Client, error) {
	return NewWithConfig(DefaultConfig())
}

// NewWithConfig creates a new OCR client with custom configuration
func NewWithConfig(config Config) (*Client, error) {
	client := gosseract.NewClient()
	if config.Language != "" {
		if err := client.SetLanguage(config.Language); err != nil {
			client.Close()
			return nil, fmt.Errorf("failed to set language: %w", err)
		}
	}
	return &Client{client: client, config: config}, nil
}

// Close releases OCR resources.
func (c *Client) Close() error {
	if c.client != nil {
		return c.client.Close()
	}
	return nil
}

// Tokens performs OCR on image data (PNG or JPEG) and returns one token
// per recognized word, positioned in page coordinates.
func (c *Client) Tokens(imageData []byte) ([]model.Token, error) {
	cfg, _, err := image.DecodeConfig(bytes.NewReader(imageData))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	boxes, err := c.client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	return TokensFromBoxes(boxes, cfg.Height, c.config.MinConfidence), nil
}

// Text performs OCR on image data and returns the recognized text with
// leading and trailing whitespace trimmed.
func (c *Client) Text(imageData []byte) (string, error) {
	if err := c.client.SetImageFromBytes(imageData); err != nil {
		return "", fmt.Errorf("failed to set image: %w", err)
	}

	text, err := c.client.Text()
	if err != nil {
		return "", fmt.Errorf("OCR failed: %w", err)
	}

	return strings.TrimSpace(text), nil
}

// SetPageSegMode sets the page segmentation mode.
// This affects how Tesseract analyzes the page layout.
// See gosseract.PageSegMode constants for available modes.
func (c *Client) SetPageSegMode(mode gosseract.PageSegMode) error {
	return c.client.SetPageSegMode(mode)
}

// TokensFromBoxes converts word bounding boxes into page-coordinate
// tokens. imageHeight is the source image height in pixels; boxes below
// minConfidence are dropped.
func TokensFromBoxes(boxes []gosseract.BoundingBox, imageHeight int, minConfidence float64) []model.Token {
	tokens := make([]model.Token, 0, len(boxes))
	for _, box := range boxes {
		if box.Confidence < minConfidence {
			continue
		}
		word := strings.TrimSpace(box.Word)
		if word == "" {
			continue
		}
		tokens = append(tokens, model.Token{
			Text:   word,
			X:      float64(box.Box.Min.X),
			Y:      float64(imageHeight - box.Box.Min.Y),
			Width:  float64(box.Box.Dx()),
			Height: float64(box.Box.Dy()),
		})
	}
	return tokens
}
