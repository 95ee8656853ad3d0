package rod

import (
	"context"
	"sync"

	"github.com/go-rod/rod"

	"sitepdf"
)

// Ensure Page implements sitepdf.Page at compile time.
var _ sitepdf.Page = (*Page)(nil)

// Page wraps a browser page. A Page is bound to the browser that created it
// and must be closed by the caller; Close is safe to call multiple times.
type Page struct {
	page    *rod.Page
	release func()
	once    sync.Once
}

// Navigate loads the URL and waits for the page load event.
func (p *Page) Navigate(ctx context.Context, url string) error {
	page := p.page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return err
	}

	return page.WaitLoad()
}

// WaitElement blocks until an element matching the selector is attached to
// the DOM or the context is cancelled.
func (p *Page) WaitElement(ctx context.Context, selector string) error {
	_, err := p.page.Context(ctx).Element(selector)
	return err
}

// Eval runs the JavaScript function in the page and returns its result as a
// string.
func (p *Page) Eval(ctx context.Context, js string, args ...any) (string, error) {
	obj, err := p.page.Context(ctx).Eval(js, args...)
	if err != nil {
		return "", err
	}
	return obj.Value.Str(), nil
}

// Close destroys the page and releases it back to the renderer's accounting.
func (p *Page) Close() error {
	var err error
	p.once.Do(func() {
		err = p.page.Close()
		if p.release != nil {
			p.release()
		}
	})
	return err
}
