package goquery

import (
	"strings"

	"sitepdf"

	"github.com/PuerkitoBio/goquery"
)

var _ sitepdf.FrameworkDetector = (*Detector)(nil)

// Detector identifies documentation frameworks from rendered HTML. It
// checks for framework-specific CSS classes, data attributes, and meta
// tags that are unique to each documentation generator.
type Detector struct{}

// NewDetector creates a new Detector.
func NewDetector() *Detector {
	return &Detector{}
}

// Detect analyzes HTML and returns the identified framework.
// Returns FrameworkUnknown if the framework cannot be determined.
func (d *Detector) Detect(html string) sitepdf.Framework {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return sitepdf.FrameworkUnknown
	}

	// Meta generator tags are the most reliable marker when present.
	if framework := d.detectFromMetaGenerator(doc); framework != sitepdf.FrameworkUnknown {
		return framework
	}

	// Docusaurus: the skip-to-content fallback id is highly specific.
	if d.hasSelector(doc, "#__docusaurus_skipToContent_fallback") ||
		d.hasSelector(doc, ".theme-doc-sidebar-container") {
		return sitepdf.FrameworkDocusaurus
	}

	// MkDocs Material: data-md-* attributes are unique to it.
	if d.hasSelector(doc, "[data-md-color-scheme]") ||
		d.hasSelector(doc, "[data-md-component]") ||
		d.hasSelector(doc, ".md-nav--primary") {
		return sitepdf.FrameworkMkDocs
	}

	// Sphinx, including the ReadTheDocs theme.
	if d.hasSelector(doc, ".toctree-wrapper") ||
		d.hasSelector(doc, ".wy-nav-side") ||
		d.hasSelector(doc, ".sphinxsidebar") {
		return sitepdf.FrameworkSphinx
	}

	// VitePress.
	if d.hasSelector(doc, "#VPContent") || d.hasSelector(doc, ".VPDoc") {
		return sitepdf.FrameworkVitePress
	}

	// GitBook.
	if d.hasSelector(doc, "[data-testid='space.sidebar']") ||
		d.hasSelector(doc, "[data-testid='page.desktopTableOfContents']") {
		return sitepdf.FrameworkGitBook
	}

	return sitepdf.FrameworkUnknown
}

// detectFromMetaGenerator checks the meta generator tag for framework
// identification.
func (d *Detector) detectFromMetaGenerator(doc *goquery.Document) sitepdf.Framework {
	generator := ""
	doc.Find("meta[name='generator']").Each(func(_ int, s *goquery.Selection) {
		if content, exists := s.Attr("content"); exists {
			generator = strings.ToLower(content)
		}
	})

	switch {
	case generator == "":
		return sitepdf.FrameworkUnknown
	case strings.Contains(generator, "docusaurus"):
		return sitepdf.FrameworkDocusaurus
	case strings.Contains(generator, "mkdocs"):
		return sitepdf.FrameworkMkDocs
	case strings.Contains(generator, "sphinx"):
		return sitepdf.FrameworkSphinx
	case strings.Contains(generator, "vitepress"):
		return sitepdf.FrameworkVitePress
	case strings.Contains(generator, "gitbook"):
		return sitepdf.FrameworkGitBook
	}

	return sitepdf.FrameworkUnknown
}

// hasSelector checks if the document contains at least one element
// matching the selector.
func (d *Detector) hasSelector(doc *goquery.Document, selector string) bool {
	return doc.Find(selector).Length() > 0
}
