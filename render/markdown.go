package render

import (
	"strings"

	"github.com/mweir/strata/model"
)

// MarkdownOptions holds configuration for markdown rendering
type MarkdownOptions struct {
	// HeaderLevel is the heading level used for header blocks (default: 2)
	HeaderLevel int

	// FirstRowIsHeader renders each table's first row as the markdown
	// header row (default: true)
	FirstRowIsHeader bool
}

// DefaultMarkdownOptions returns sensible default options
func DefaultMarkdownOptions() MarkdownOptions {
	return MarkdownOptions{
		HeaderLevel:      2,
		FirstRowIsHeader: true,
	}
}

// Markdown renders a page as markdown with default options
func Markdown(page *model.Page) string {
	return MarkdownWithOptions(page, DefaultMarkdownOptions())
}

// MarkdownWithOptions renders a page as markdown
func MarkdownWithOptions(page *model.Page, opts MarkdownOptions) string {
	if page == nil || len(page.Blocks) == 0 {
		return ""
	}

	level := opts.HeaderLevel
	if level < 1 || level > 6 {
		level = 2
	}

	var sb strings.Builder
	for i, block := range page.Blocks {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		switch v := block.(type) {
		case *model.Header:
			sb.WriteString(strings.Repeat("#", level))
			sb.WriteString(" ")
			sb.WriteString(v.Text)
		case *model.Paragraph:
			sb.WriteString(v.Text)
		case *model.Table:
			writeMarkdownTable(&sb, v, opts.FirstRowIsHeader)
		}
	}
	sb.WriteString("\n")

	return sb.String()
}

// writeMarkdownTable renders a table as a pipe table
func writeMarkdownTable(sb *strings.Builder, table *model.Table, firstRowIsHeader bool) {
	if len(table.Rows) == 0 {
		return
	}

	width := table.ColumnCount()

	writeMarkdownRow(sb, table.Rows[0])
	if firstRowIsHeader {
		sb.WriteString("\n")
		sb.WriteString("|")
		for i := 0; i < width; i++ {
			sb.WriteString(" --- |")
		}
	}

	for _, row := range table.Rows[1:] {
		sb.WriteString("\n")
		writeMarkdownRow(sb, row)
	}
}

// writeMarkdownRow renders one pipe-delimited row, escaping pipes in cells
func writeMarkdownRow(sb *strings.Builder, row model.Row) {
	sb.WriteString("|")
	for _, cell := range row {
		sb.WriteString(" ")
		sb.WriteString(strings.ReplaceAll(cell, "|", "\\|"))
		sb.WriteString(" |")
	}
}
