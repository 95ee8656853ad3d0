package goquery

import "sitepdf"

var _ sitepdf.TreeParser = (*GenericParser)(nil)

// GenericParser extracts a navigation tree using generic structural
// selectors. It is the fallback when no framework-specific parser applies.
type GenericParser struct {
	cfg Config
}

// NewGenericParser creates a new GenericParser.
func NewGenericParser(opts ...Option) *GenericParser {
	cfg := Config{
		Containers: []string{
			"aside nav",
			".sidebar nav",
			".sidebar",
			"aside",
			"nav",
		},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &GenericParser{cfg: cfg}
}

// Name returns the parser's identifier.
func (p *GenericParser) Name() string {
	return "generic"
}

// ParseTree parses the rendered HTML into a navigation tree.
func (p *GenericParser) ParseTree(html string, baseURL string) ([]*sitepdf.NavNode, error) {
	return ParseTreeWithConfig(html, baseURL, p.cfg)
}
