package goquery

import "sitepdf"

var _ sitepdf.TreeParser = (*VitePressParser)(nil)

// VitePressParser extracts the primary navigation tree from VitePress sites.
// VitePress renders the sidebar as grouped sections, each with its own list.
type VitePressParser struct {
	cfg Config
}

// NewVitePressParser creates a new VitePressParser.
func NewVitePressParser(opts ...Option) *VitePressParser {
	cfg := Config{
		Containers: []string{
			".VPSidebar nav",
			".VPSidebarNav",
			"aside.VPSidebar",
		},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &VitePressParser{cfg: cfg}
}

// Name returns the parser's identifier.
func (p *VitePressParser) Name() string {
	return "vitepress"
}

// ParseTree parses the rendered HTML into a navigation tree.
func (p *VitePressParser) ParseTree(html string, baseURL string) ([]*sitepdf.NavNode, error) {
	return ParseTreeWithConfig(html, baseURL, p.cfg)
}
