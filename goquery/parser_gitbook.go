package goquery

import "sitepdf"

var _ sitepdf.TreeParser = (*GitBookParser)(nil)

// GitBookParser extracts the space sidebar tree from GitBook sites.
type GitBookParser struct {
	cfg Config
}

// NewGitBookParser creates a new GitBookParser.
func NewGitBookParser(opts ...Option) *GitBookParser {
	cfg := Config{
		Containers: []string{
			"[data-testid='space.sidebar']",
			"aside nav",
			"aside",
		},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &GitBookParser{cfg: cfg}
}

// Name returns the parser's identifier.
func (p *GitBookParser) Name() string {
	return "gitbook"
}

// ParseTree parses the rendered HTML into a navigation tree.
func (p *GitBookParser) ParseTree(html string, baseURL string) ([]*sitepdf.NavNode, error) {
	return ParseTreeWithConfig(html, baseURL, p.cfg)
}
