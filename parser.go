package sitepdf

// Framework identifies a documentation site generator.
type Framework string

// Known documentation frameworks.
const (
	FrameworkUnknown    Framework = ""
	FrameworkDocusaurus Framework = "docusaurus"
	FrameworkMkDocs     Framework = "mkdocs"
	FrameworkGitBook    Framework = "gitbook"
	FrameworkVitePress  Framework = "vitepress"
	FrameworkSphinx     Framework = "sphinx"
)

// TreeParser extracts a navigation tree from a fully rendered page.
// Implementations assign a fresh anchor id to every node at parse time.
type TreeParser interface {
	// ParseTree parses the rendered HTML and returns the root-level
	// ordered sequence of navigation nodes. Hrefs are resolved against
	// baseURL to produce each node's URL; the original href is kept as
	// the node's Path. Entries without a discoverable link are skipped,
	// not treated as fatal.
	ParseTree(html string, baseURL string) ([]*NavNode, error)
}

// FrameworkDetector identifies documentation frameworks from HTML content.
type FrameworkDetector interface {
	// Detect analyzes HTML and returns the identified framework.
	// Returns FrameworkUnknown if the framework cannot be determined.
	Detect(html string) Framework
}

// TreeParserRegistry manages framework-specific navigation parsers and
// auto-detects frameworks from HTML content.
type TreeParserRegistry interface {
	// Get returns the parser for a specific framework, or nil if none is
	// registered.
	Get(framework Framework) TreeParser

	// GetForHTML detects the framework from HTML and returns the
	// appropriate parser, falling back to a generic parser when the
	// framework is unknown or unregistered.
	GetForHTML(html string) TreeParser

	// Register adds a parser for a framework, replacing any existing one.
	Register(framework Framework, parser TreeParser)

	// List returns all registered frameworks.
	List() []Framework
}
