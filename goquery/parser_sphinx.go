package goquery

import "sitepdf"

var _ sitepdf.TreeParser = (*SphinxParser)(nil)

// SphinxParser extracts the primary navigation tree from Sphinx sites,
// covering the Read the Docs and Furo themes.
type SphinxParser struct {
	cfg Config
}

// NewSphinxParser creates a new SphinxParser.
func NewSphinxParser(opts ...Option) *SphinxParser {
	cfg := Config{
		Containers: []string{
			".wy-menu-vertical",
			".sphinxsidebarwrapper",
			".sidebar-tree",
			"nav.bd-links",
		},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &SphinxParser{cfg: cfg}
}

// Name returns the parser's identifier.
func (p *SphinxParser) Name() string {
	return "sphinx"
}

// ParseTree parses the rendered HTML into a navigation tree.
func (p *SphinxParser) ParseTree(html string, baseURL string) ([]*sitepdf.NavNode, error) {
	return ParseTreeWithConfig(html, baseURL, p.cfg)
}
