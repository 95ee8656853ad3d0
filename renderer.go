package sitepdf

import "context"

// Page is an isolated browser page. Each harvesting task acquires one page
// for its own exclusive use and must release it with Close, even on
// failure, so that peak resource usage stays bounded by the worker count
// rather than the page count.
type Page interface {
	// Navigate loads the URL and waits for the page to finish loading.
	// The context controls timeout and cancellation.
	Navigate(ctx context.Context, url string) error

	// WaitElement blocks until an element matching the CSS selector
	// exists in the rendered DOM, or the context expires.
	WaitElement(ctx context.Context, selector string) error

	// Eval runs a JavaScript function expression in the page and returns
	// its result as a string. Non-string results are stringified; a
	// missing result yields "".
	Eval(ctx context.Context, js string, args ...any) (string, error)

	// Close releases the page. Close is safe to call multiple times.
	Close() error
}

// PDFOptions configures the final print.
type PDFOptions struct {
	// MarginMm is applied to all four page edges, in millimeters.
	MarginMm float64

	// Format is the paper format name, e.g. "A4" or "Letter".
	// Defaults to A4.
	Format string

	// HeaderTemplate and FooterTemplate are print header/footer HTML in
	// the browser's template dialect. Both empty disables them.
	HeaderTemplate string
	FooterTemplate string
}

// Renderer is the external page-rendering collaborator. It is the only
// contact surface between the pipeline and the browser, which keeps the
// pipeline testable with a double that simulates pages.
type Renderer interface {
	// NewPage creates an isolated page so that concurrent harvests do not
	// interfere with each other's DOM or script state.
	NewPage(ctx context.Context) (Page, error)

	// RenderPDF loads the document markup into a fresh page and prints it.
	RenderPDF(ctx context.Context, html string, opts PDFOptions) ([]byte, error)

	// Close releases browser resources. Must be called when the Renderer
	// is no longer needed.
	Close() error
}

// Resource is a retrieved binary resource, such as a cover image.
type Resource struct {
	Data     []byte
	MimeType string
}

// ResourceFetcher retrieves auxiliary resources by reference. A reference
// may be an absolute URL, a file:// URL, or a local filesystem path.
type ResourceFetcher interface {
	FetchResource(ctx context.Context, ref string) (*Resource, error)
}

// LinkRewriter rewrites internal references in the merged document.
type LinkRewriter interface {
	// Rewrite replaces the href of every anchor element whose target
	// exactly matches a key in anchors with an intra-document reference
	// to the corresponding id. Matching is exact string equality on the
	// original path value; no trailing-slash or case normalization is
	// performed, so near-miss internal links are left untouched. This is
	// a deliberate precision/simplicity trade-off.
	Rewrite(html string, anchors map[string]string) (string, error)
}

// PageLimiter provides rate limiting for page navigation, keyed by domain.
type PageLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled before the wait
	// completes.
	Wait(ctx context.Context, domain string) error
}
