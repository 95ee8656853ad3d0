package mock

import "sitepdf"

var _ sitepdf.TreeParser = (*TreeParser)(nil)

// TreeParser is a mock implementation of sitepdf.TreeParser.
type TreeParser struct {
	ParseTreeFn func(html string, baseURL string) ([]*sitepdf.NavNode, error)
}

func (p *TreeParser) ParseTree(html string, baseURL string) ([]*sitepdf.NavNode, error) {
	return p.ParseTreeFn(html, baseURL)
}

var _ sitepdf.FrameworkDetector = (*FrameworkDetector)(nil)

// FrameworkDetector is a mock implementation of sitepdf.FrameworkDetector.
type FrameworkDetector struct {
	DetectFn func(html string) sitepdf.Framework
}

func (d *FrameworkDetector) Detect(html string) sitepdf.Framework {
	return d.DetectFn(html)
}

var _ sitepdf.TreeParserRegistry = (*TreeParserRegistry)(nil)

// TreeParserRegistry is a mock implementation of sitepdf.TreeParserRegistry.
type TreeParserRegistry struct {
	GetFn        func(framework sitepdf.Framework) sitepdf.TreeParser
	GetForHTMLFn func(html string) sitepdf.TreeParser
	RegisterFn   func(framework sitepdf.Framework, parser sitepdf.TreeParser)
	ListFn       func() []sitepdf.Framework
}

func (r *TreeParserRegistry) Get(framework sitepdf.Framework) sitepdf.TreeParser {
	return r.GetFn(framework)
}

func (r *TreeParserRegistry) GetForHTML(html string) sitepdf.TreeParser {
	return r.GetForHTMLFn(html)
}

func (r *TreeParserRegistry) Register(framework sitepdf.Framework, parser sitepdf.TreeParser) {
	r.RegisterFn(framework, parser)
}

func (r *TreeParserRegistry) List() []sitepdf.Framework {
	return r.ListFn()
}
