package goquery

import "sitepdf"

var _ sitepdf.TreeParserRegistry = (*Registry)(nil)

// Registry manages framework-specific navigation parsers and auto-detects
// frameworks from HTML content. It uses a FrameworkDetector to identify
// the documentation framework and returns the matching parser, falling
// back to a generic parser when the framework is unknown or no specific
// parser is registered.
type Registry struct {
	detector sitepdf.FrameworkDetector
	fallback sitepdf.TreeParser
	parsers  map[sitepdf.Framework]sitepdf.TreeParser
}

// NewRegistry creates a new Registry with the given detector and fallback
// parser.
func NewRegistry(detector sitepdf.FrameworkDetector, fallback sitepdf.TreeParser) *Registry {
	return &Registry{
		detector: detector,
		fallback: fallback,
		parsers:  make(map[sitepdf.Framework]sitepdf.TreeParser),
	}
}

// Get returns the parser for a specific framework.
// Returns nil if no parser is registered for the framework.
func (r *Registry) Get(framework sitepdf.Framework) sitepdf.TreeParser {
	return r.parsers[framework]
}

// GetForHTML detects the framework from HTML and returns the appropriate
// parser, falling back to the fallback parser when the framework is
// unknown or unregistered.
func (r *Registry) GetForHTML(html string) sitepdf.TreeParser {
	framework := r.detector.Detect(html)
	if parser, ok := r.parsers[framework]; ok {
		return parser
	}
	return r.fallback
}

// Register adds a parser for a framework.
// If a parser is already registered for the framework, it is replaced.
func (r *Registry) Register(framework sitepdf.Framework, parser sitepdf.TreeParser) {
	r.parsers[framework] = parser
}

// List returns all registered frameworks.
func (r *Registry) List() []sitepdf.Framework {
	frameworks := make([]sitepdf.Framework, 0, len(r.parsers))
	for f := range r.parsers {
		frameworks = append(frameworks, f)
	}
	return frameworks
}
