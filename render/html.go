package render

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/mweir/strata/model"
)

// HTML renders a page as an HTML fragment: headers become <h2>, paragraphs
// <p>, and tables <table> with plain <tr>/<td> rows. Text content is
// escaped during serialization.
func HTML(page *model.Page) (string, error) {
	root := element(atom.Article)

	if page != nil {
		for _, block := range page.Blocks {
			switch v := block.(type) {
			case *model.Header:
				h := element(atom.H2)
				h.AppendChild(textNode(v.Text))
				root.AppendChild(h)
			case *model.Paragraph:
				p := element(atom.P)
				p.AppendChild(textNode(v.Text))
				root.AppendChild(p)
			case *model.Table:
				root.AppendChild(tableNode(v))
			}
		}
	}

	var sb strings.Builder
	if err := html.Render(&sb, root); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// tableNode builds the node tree for one table block
func tableNode(table *model.Table) *html.Node {
	t := element(atom.Table)
	for _, row := range table.Rows {
		tr := element(atom.Tr)
		for _, cell := range row {
			td := element(atom.Td)
			td.AppendChild(textNode(cell))
			tr.AppendChild(td)
		}
		t.AppendChild(tr)
	}
	return t
}

func element(a atom.Atom) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
	}
}

func textNode(s string) *html.Node {
	return &html.Node{
		Type: html.TextNode,
		Data: s,
	}
}
