package model

import (
	"encoding/json"
	"strings"
)

// Page represents the reconstructed content of a single page
type Page struct {
	// Blocks is the ordered block sequence, top of page first
	Blocks []Block
}

// NewPage creates an empty page
func NewPage() *Page {
	return &Page{Blocks: make([]Block, 0)}
}

// AddBlock appends a block to the page
func (p *Page) AddBlock(b Block) {
	p.Blocks = append(p.Blocks, b)
}

// BlockCount returns the number of blocks on the page
func (p *Page) BlockCount() int {
	if p == nil {
		return 0
	}
	return len(p.Blocks)
}

// Headers returns all header blocks in page order
func (p *Page) Headers() []*Header {
	var result []*Header
	for _, b := range p.Blocks {
		if h, ok := b.(*Header); ok {
			result = append(result, h)
		}
	}
	return result
}

// Tables returns all table blocks in page order
func (p *Page) Tables() []*Table {
	var result []*Table
	for _, b := range p.Blocks {
		if t, ok := b.(*Table); ok {
			result = append(result, t)
		}
	}
	return result
}

// Text returns the page's text content in block order. Table rows are
// rendered one per line with cells separated by tabs.
func (p *Page) Text() string {
	if p == nil || len(p.Blocks) == 0 {
		return ""
	}

	var sb strings.Builder
	for i, b := range p.Blocks {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		switch v := b.(type) {
		case *Header:
			sb.WriteString(v.Text)
		case *Paragraph:
			sb.WriteString(v.Text)
		case *Table:
			for ri, row := range v.Rows {
				if ri > 0 {
					sb.WriteString("\n")
				}
				sb.WriteString(strings.Join(row, "\t"))
			}
		}
	}
	return sb.String()
}

// MarshalJSON serializes the page as {"blocks":[...]}
func (p *Page) MarshalJSON() ([]byte, error) {
	blocks := p.Blocks
	if blocks == nil {
		blocks = []Block{}
	}
	return json.Marshal(struct {
		Blocks []Block `json:"blocks"`
	}{blocks})
}

// UnmarshalJSON decodes a page, restoring concrete block types
func (p *Page) UnmarshalJSON(data []byte) error {
	var raw struct {
		Blocks []json.RawMessage `json:"blocks"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	p.Blocks = make([]Block, 0, len(raw.Blocks))
	for _, rb := range raw.Blocks {
		block, err := UnmarshalBlock(rb)
		if err != nil {
			return err
		}
		p.Blocks = append(p.Blocks, block)
	}
	return nil
}
