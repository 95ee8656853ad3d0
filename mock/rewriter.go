package mock

import (
	"context"

	"sitepdf"
)

var _ sitepdf.LinkRewriter = (*LinkRewriter)(nil)

// LinkRewriter is a mock implementation of sitepdf.LinkRewriter.
type LinkRewriter struct {
	RewriteFn func(html string, anchors map[string]string) (string, error)
}

func (r *LinkRewriter) Rewrite(html string, anchors map[string]string) (string, error) {
	return r.RewriteFn(html, anchors)
}

var _ sitepdf.ResourceFetcher = (*ResourceFetcher)(nil)

// ResourceFetcher is a mock implementation of sitepdf.ResourceFetcher.
type ResourceFetcher struct {
	FetchResourceFn func(ctx context.Context, ref string) (*sitepdf.Resource, error)
}

func (f *ResourceFetcher) FetchResource(ctx context.Context, ref string) (*sitepdf.Resource, error) {
	return f.FetchResourceFn(ctx, ref)
}

var _ sitepdf.PageLimiter = (*PageLimiter)(nil)

// PageLimiter is a mock implementation of sitepdf.PageLimiter.
type PageLimiter struct {
	WaitFn func(ctx context.Context, domain string) error
}

func (l *PageLimiter) Wait(ctx context.Context, domain string) error {
	return l.WaitFn(ctx, domain)
}
