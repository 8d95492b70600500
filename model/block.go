package model

import (
	"encoding/json"
	"fmt"
)

// BlockType represents the type of a reconstructed block
type BlockType int

const (
	BlockTypeUnknown BlockType = iota
	BlockTypeHeader
	BlockTypeParagraph
	BlockTypeTable
)

func (bt BlockType) String() string {
	switch bt {
	case BlockTypeHeader:
		return "header"
	case BlockTypeParagraph:
		return "paragraph"
	case BlockTypeTable:
		return "table"
	default:
		return "unknown"
	}
}

// Block is the interface for all reconstructed page blocks.
// The concrete types are Header, Paragraph, and Table; consumers must
// handle all three cases.
type Block interface {
	Type() BlockType
}

// TextBlock is an interface for blocks carrying a single text string
type TextBlock interface {
	Block
	GetText() string
}

// Row is one table row: an ordered sequence of normalized cell strings
type Row []string

// Header represents a section header line
type Header struct {
	Text string
}

func (h *Header) Type() BlockType { return BlockTypeHeader }
func (h *Header) GetText() string { return h.Text }

// Paragraph represents a run of body text
type Paragraph struct {
	Text string
}

func (p *Paragraph) Type() BlockType { return BlockTypeParagraph }
func (p *Paragraph) GetText() string { return p.Text }

// Table represents a reconstructed table.
// Rows are padded to a uniform column count and contain no all-empty rows.
// ApproxRowCount is the number of source lines the table was built from,
// which may exceed len(Rows) when degenerate rows were filtered out.
type Table struct {
	Rows           []Row
	ApproxRowCount int
}

func (t *Table) Type() BlockType { return BlockTypeTable }

// ColumnCount returns the table's uniform column count (0 for no rows)
func (t *Table) ColumnCount() int {
	if len(t.Rows) == 0 {
		return 0
	}
	return len(t.Rows[0])
}

// blockJSON is the wire shape shared by all block variants.
type blockJSON struct {
	Type           string     `json:"type"`
	Text           string     `json:"text,omitempty"`
	Rows           [][]string `json:"rows,omitempty"`
	ApproxRowCount int        `json:"approx_row_count,omitempty"`
}

// MarshalJSON serializes the header as {"type":"header","text":...}
func (h *Header) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}{"header", h.Text})
}

// MarshalJSON serializes the paragraph as {"type":"paragraph","text":...}
func (p *Paragraph) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
		Text string `json:"text"`
	}{"paragraph", p.Text})
}

// MarshalJSON serializes the table as
// {"type":"table","rows":[...],"approx_row_count":N}
func (t *Table) MarshalJSON() ([]byte, error) {
	rows := make([][]string, len(t.Rows))
	for i, r := range t.Rows {
		rows[i] = []string(r)
	}
	return json.Marshal(struct {
		Type           string     `json:"type"`
		Rows           [][]string `json:"rows"`
		ApproxRowCount int        `json:"approx_row_count"`
	}{"table", rows, t.ApproxRowCount})
}

// UnmarshalBlock decodes one serialized block into its concrete type.
func UnmarshalBlock(data []byte) (Block, error) {
	var raw blockJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	switch raw.Type {
	case "header":
		return &Header{Text: raw.Text}, nil
	case "paragraph":
		return &Paragraph{Text: raw.Text}, nil
	case "table":
		rows := make([]Row, len(raw.Rows))
		for i, r := range raw.Rows {
			rows[i] = Row(r)
		}
		return &Table{Rows: rows, ApproxRowCount: raw.ApproxRowCount}, nil
	default:
		return nil, fmt.Errorf("unknown block type %q", raw.Type)
	}
}
