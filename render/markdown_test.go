package render

import (
	"strings"
	"testing"

	"github.com/mweir/strata/model"
)

func samplePage() *model.Page {
	page := model.NewPage()
	page.AddBlock(&model.Header{Text: "RESULTS:"})
	page.AddBlock(&model.Paragraph{Text: "A short introduction."})
	page.AddBlock(&model.Table{
		Rows: []model.Row{
			{"region", "revenue"},
			{"north", "1,200"},
			{"south", "980"},
		},
		ApproxRowCount: 3,
	})
	return page
}

func TestMarkdown_EmptyPage(t *testing.T) {
	if got := Markdown(model.NewPage()); got != "" {
		t.Errorf("Expected empty output, got %q", got)
	}
	if got := Markdown(nil); got != "" {
		t.Errorf("Expected empty output for nil page, got %q", got)
	}
}

func TestMarkdown_Blocks(t *testing.T) {
	md := Markdown(samplePage())

	if !strings.Contains(md, "## RESULTS:") {
		t.Error("Expected header rendered with ##")
	}
	if !strings.Contains(md, "A short introduction.") {
		t.Error("Expected paragraph text")
	}
	if !strings.Contains(md, "| region | revenue |") {
		t.Error("Expected pipe table header row")
	}
	if !strings.Contains(md, "| --- | --- |") {
		t.Error("Expected table separator row")
	}
	if !strings.Contains(md, "| north | 1,200 |") {
		t.Error("Expected table body row")
	}
}

func TestMarkdown_BlockOrderPreserved(t *testing.T) {
	md := Markdown(samplePage())

	header := strings.Index(md, "RESULTS:")
	para := strings.Index(md, "A short introduction.")
	table := strings.Index(md, "| region |")

	if !(header < para && para < table) {
		t.Errorf("Blocks rendered out of order: %d, %d, %d", header, para, table)
	}
}

func TestMarkdown_EscapesPipes(t *testing.T) {
	page := model.NewPage()
	page.AddBlock(&model.Table{
		Rows: []model.Row{
			{"a|b", "c"},
			{"d", "e"},
		},
		ApproxRowCount: 2,
	})

	md := Markdown(page)
	if !strings.Contains(md, `a\|b`) {
		t.Errorf("Expected pipes escaped in cells, got %q", md)
	}
}

func TestMarkdownWithOptions_HeaderLevel(t *testing.T) {
	opts := DefaultMarkdownOptions()
	opts.HeaderLevel = 3

	page := model.NewPage()
	page.AddBlock(&model.Header{Text: "DEEP"})

	md := MarkdownWithOptions(page, opts)
	if !strings.HasPrefix(md, "### DEEP") {
		t.Errorf("Expected level-3 heading, got %q", md)
	}
}

func TestMarkdownWithOptions_NoHeaderRow(t *testing.T) {
	opts := DefaultMarkdownOptions()
	opts.FirstRowIsHeader = false

	md := MarkdownWithOptions(samplePage(), opts)
	if strings.Contains(md, "---") {
		t.Errorf("Expected no separator row, got %q", md)
	}
}
