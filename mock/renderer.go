// Package mock provides function-field test doubles for the sitepdf
// domain interfaces.
package mock

import (
	"context"

	"sitepdf"
)

var _ sitepdf.Renderer = (*Renderer)(nil)

// Renderer is a mock implementation of sitepdf.Renderer.
type Renderer struct {
	NewPageFn   func(ctx context.Context) (sitepdf.Page, error)
	RenderPDFFn func(ctx context.Context, html string, opts sitepdf.PDFOptions) ([]byte, error)
	CloseFn     func() error
}

func (r *Renderer) NewPage(ctx context.Context) (sitepdf.Page, error) {
	return r.NewPageFn(ctx)
}

func (r *Renderer) RenderPDF(ctx context.Context, html string, opts sitepdf.PDFOptions) ([]byte, error) {
	return r.RenderPDFFn(ctx, html, opts)
}

func (r *Renderer) Close() error {
	if r.CloseFn == nil {
		return nil
	}
	return r.CloseFn()
}

var _ sitepdf.Page = (*Page)(nil)

// Page is a mock implementation of sitepdf.Page.
type Page struct {
	NavigateFn    func(ctx context.Context, url string) error
	WaitElementFn func(ctx context.Context, selector string) error
	EvalFn        func(ctx context.Context, js string, args ...any) (string, error)
	CloseFn       func() error
}

func (p *Page) Navigate(ctx context.Context, url string) error {
	return p.NavigateFn(ctx, url)
}

func (p *Page) WaitElement(ctx context.Context, selector string) error {
	if p.WaitElementFn == nil {
		return nil
	}
	return p.WaitElementFn(ctx, selector)
}

func (p *Page) Eval(ctx context.Context, js string, args ...any) (string, error) {
	return p.EvalFn(ctx, js, args...)
}

func (p *Page) Close() error {
	if p.CloseFn == nil {
		return nil
	}
	return p.CloseFn()
}
