package goquery

import "sitepdf"

var _ sitepdf.TreeParser = (*DocusaurusParser)(nil)

// DocusaurusParser extracts the docs sidebar tree from Docusaurus sites.
// Validated against Docusaurus v2.x and v3.x, which render the sidebar as
// nested menu lists inside .theme-doc-sidebar-container.
type DocusaurusParser struct {
	cfg Config
}

// NewDocusaurusParser creates a new DocusaurusParser.
func NewDocusaurusParser(opts ...Option) *DocusaurusParser {
	cfg := Config{
		Containers: []string{
			".theme-doc-sidebar-menu",
			".theme-doc-sidebar-container nav",
			"nav.menu",
		},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &DocusaurusParser{cfg: cfg}
}

// Name returns the parser's identifier.
func (p *DocusaurusParser) Name() string {
	return "docusaurus"
}

// ParseTree parses the rendered HTML into a navigation tree.
func (p *DocusaurusParser) ParseTree(html string, baseURL string) ([]*sitepdf.NavNode, error) {
	return ParseTreeWithConfig(html, baseURL, p.cfg)
}
