package strata_test

import (
	"context"
	"strings"
	"testing"

	"github.com/mweir/strata"
	"github.com/mweir/strata/model"
)

// invoiceTokens returns a small single-page invoice: a title, a short
// paragraph, a section header, and a four-row two-column item table.
func invoiceTokens() []model.Token {
	word := func(text string, x, y float64) model.Token {
		return model.Token{Text: text, X: x, Y: y, Width: 30, Height: 10}
	}

	tokens := []model.Token{
		word("INVOICE", 10, 800),

		word("Thank", 10, 780),
		word("you", 43, 780),
		word("for", 76, 780),
		word("your", 10, 765),
		word("recent", 43, 765),
		word("order.", 76, 765),

		word("ITEMS:", 10, 740),
	}

	rows := []struct {
		item  string
		price string
		y     float64
	}{
		{"Blue widget set", "1.50", 720},
		{"Red widget kit", "2.25", 705},
		{"Green widget box", "3.00", 690},
		{"Carrying case bag", "9.99", 675},
	}
	for _, row := range rows {
		parts := strings.Fields(row.item)
		x := 10.0
		for _, part := range parts {
			tokens = append(tokens, word(part, x, row.y))
			x += 33
		}
		tokens = append(tokens, word(row.price, 300, row.y))
	}

	return tokens
}

func TestReadmeExample_Page(t *testing.T) {
	page, warnings, err := strata.FromTokens(invoiceTokens()).Page()
	if err != nil {
		t.Fatalf("Page failed: %v", err)
	}
	if len(warnings) > 0 {
		t.Errorf("Unexpected warnings: %s", strata.FormatWarnings(warnings))
	}

	types := make([]model.BlockType, 0, page.BlockCount())
	for _, block := range page.Blocks {
		types = append(types, block.Type())
	}

	want := []model.BlockType{
		model.BlockTypeHeader,
		model.BlockTypeParagraph,
		model.BlockTypeHeader,
		model.BlockTypeTable,
	}
	if len(types) != len(want) {
		t.Fatalf("Expected %d blocks, got %d: %v", len(want), len(types), types)
	}
	for i := range want {
		if types[i] != want[i] {
			t.Errorf("Block %d: expected %s, got %s", i, want[i], types[i])
		}
	}

	headers := page.Headers()
	if headers[0].Text != "INVOICE" || headers[1].Text != "ITEMS:" {
		t.Errorf("Unexpected headers: %v", headers)
	}

	tables := page.Tables()
	if len(tables) != 1 {
		t.Fatalf("Expected 1 table, got %d", len(tables))
	}
	if got := tables[0].Rows[0]; got[0] != "Blue widget set" || got[1] != "1.50" {
		t.Errorf("Unexpected first row: %v", got)
	}
}

func TestReadmeExample_Text(t *testing.T) {
	text, _, err := strata.FromTokens(invoiceTokens()).Text()
	if err != nil {
		t.Fatalf("Text failed: %v", err)
	}

	if !strings.Contains(text, "Thank you for your recent order.") {
		t.Errorf("Expected joined paragraph text, got %q", text)
	}
	if !strings.Contains(text, "Red widget kit\t2.25") {
		t.Errorf("Expected tab-joined table row, got %q", text)
	}
}

func TestReadmeExample_Markdown(t *testing.T) {
	md, _, err := strata.FromTokens(invoiceTokens()).Markdown()
	if err != nil {
		t.Fatalf("Markdown failed: %v", err)
	}

	if !strings.Contains(md, "## INVOICE") {
		t.Error("Expected title rendered as a heading")
	}
	if !strings.Contains(md, "| Blue widget set | 1.50 |") {
		t.Errorf("Expected pipe table row, got %q", md)
	}
}

func TestReadmeExample_HTML(t *testing.T) {
	fragment, _, err := strata.FromTokens(invoiceTokens()).HTML()
	if err != nil {
		t.Fatalf("HTML failed: %v", err)
	}

	if !strings.Contains(fragment, "<h2>INVOICE</h2>") {
		t.Errorf("Expected h2 title, got %q", fragment)
	}
	if !strings.Contains(fragment, "<td>Carrying case bag</td>") {
		t.Errorf("Expected table cell, got %q", fragment)
	}
}

func TestReadmeExample_JSON(t *testing.T) {
	data, _, err := strata.FromTokens(invoiceTokens()).JSON()
	if err != nil {
		t.Fatalf("JSON failed: %v", err)
	}

	for _, want := range []string{
		`"type":"header"`,
		`"type":"paragraph"`,
		`"type":"table"`,
		`"text":"INVOICE"`,
	} {
		if !strings.Contains(string(data), want) {
			t.Errorf("Expected JSON to contain %s, got %s", want, data)
		}
	}
}

func TestReadmeExample_MultiPageDocument(t *testing.T) {
	doc, _, err := strata.FromPages([][]model.Token{
		invoiceTokens(),
		invoiceTokens(),
	}).Document(context.Background())
	if err != nil {
		t.Fatalf("Document failed: %v", err)
	}

	if doc.PageCount() != 2 {
		t.Fatalf("Expected 2 pages, got %d", doc.PageCount())
	}
	for i, page := range doc.Pages {
		if page.BlockCount() != 4 {
			t.Errorf("Page %d: expected 4 blocks, got %d", i, page.BlockCount())
		}
	}
}

func TestReadmeExample_TuningChain(t *testing.T) {
	lines, err := strata.FromTokens(invoiceTokens()).
		Tolerance(3.0).
		Lines()
	if err != nil {
		t.Fatalf("Lines failed: %v", err)
	}
	if len(lines) != 8 {
		t.Errorf("Expected 8 lines, got %d", len(lines))
	}
}
