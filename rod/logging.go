package rod

import (
	"context"
	"log/slog"
	"time"

	"sitepdf"
)

// Ensure LoggingRenderer implements sitepdf.Renderer.
var _ sitepdf.Renderer = (*LoggingRenderer)(nil)

// LoggingRenderer wraps a Renderer with debug logging.
type LoggingRenderer struct {
	next   sitepdf.Renderer
	logger *slog.Logger
}

// NewLoggingRenderer creates a new LoggingRenderer.
func NewLoggingRenderer(next sitepdf.Renderer, logger *slog.Logger) *LoggingRenderer {
	return &LoggingRenderer{next: next, logger: logger}
}

// NewPage delegates to the wrapped renderer and wraps the resulting page
// with logging.
func (r *LoggingRenderer) NewPage(ctx context.Context) (sitepdf.Page, error) {
	page, err := r.next.NewPage(ctx)
	if err != nil {
		r.logger.Debug("new page", "err", err)
		return nil, err
	}
	return &loggingPage{next: page, logger: r.logger}, nil
}

// RenderPDF logs the document and output sizes and delegates to the wrapped
// renderer.
func (r *LoggingRenderer) RenderPDF(ctx context.Context, html string, opts sitepdf.PDFOptions) (pdf []byte, err error) {
	defer func(begin time.Time) {
		r.logger.Info("render pdf",
			"html_bytes", len(html),
			"pdf_bytes", len(pdf),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.RenderPDF(ctx, html, opts)
}

// Close delegates to the wrapped renderer.
func (r *LoggingRenderer) Close() error {
	return r.next.Close()
}

// loggingPage wraps a Page with debug logging.
type loggingPage struct {
	next   sitepdf.Page
	logger *slog.Logger
}

func (p *loggingPage) Navigate(ctx context.Context, url string) (err error) {
	defer func(begin time.Time) {
		p.logger.Debug("navigate",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Navigate(ctx, url)
}

func (p *loggingPage) WaitElement(ctx context.Context, selector string) (err error) {
	defer func(begin time.Time) {
		p.logger.Debug("wait element",
			"selector", selector,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.WaitElement(ctx, selector)
}

func (p *loggingPage) Eval(ctx context.Context, js string, args ...any) (result string, err error) {
	defer func(begin time.Time) {
		p.logger.Debug("eval",
			"result_bytes", len(result),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Eval(ctx, js, args...)
}

func (p *loggingPage) Close() error {
	return p.next.Close()
}
