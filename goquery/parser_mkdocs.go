package goquery

import "sitepdf"

var _ sitepdf.TreeParser = (*MkDocsParser)(nil)

// MkDocsParser extracts the primary navigation tree from MkDocs sites,
// including the Material theme, which renders navigation as nested
// .md-nav lists.
type MkDocsParser struct {
	cfg Config
}

// NewMkDocsParser creates a new MkDocsParser.
func NewMkDocsParser(opts ...Option) *MkDocsParser {
	cfg := Config{
		Containers: []string{
			"nav.md-nav--primary",
			".md-sidebar--primary nav",
			".md-nav__list",
		},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &MkDocsParser{cfg: cfg}
}

// Name returns the parser's identifier.
func (p *MkDocsParser) Name() string {
	return "mkdocs"
}

// ParseTree parses the rendered HTML into a navigation tree.
func (p *MkDocsParser) ParseTree(html string, baseURL string) ([]*sitepdf.NavNode, error) {
	return ParseTreeWithConfig(html, baseURL, p.cfg)
}
