package assemble

import (
	"html"
	"strings"

	"sitepdf"
)

// renderTOC renders the table of contents as nested lists, one entry per
// navigation node, nested to match tree depth, each entry linking to its
// node's anchor id.
func renderTOC(tree []*sitepdf.NavNode) string {
	var b strings.Builder
	b.WriteString("<nav class=\"doc-toc\">\n<h1>Contents</h1>\n")
	writeTOCLevel(&b, tree)
	b.WriteString("</nav>\n")
	return b.String()
}

func writeTOCLevel(b *strings.Builder, nodes []*sitepdf.NavNode) {
	if len(nodes) == 0 {
		return
	}
	b.WriteString("<ul>\n")
	for _, n := range nodes {
		b.WriteString("<li><a href=\"#")
		b.WriteString(n.ID)
		b.WriteString("\">")
		b.WriteString(html.EscapeString(n.Title))
		b.WriteString("</a>\n")
		writeTOCLevel(b, n.Children)
		b.WriteString("</li>\n")
	}
	b.WriteString("</ul>\n")
}
