// Package http provides an HTTP-based implementation of
// sitepdf.ResourceFetcher for retrieving auxiliary resources such as cover
// images.
package http

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"sitepdf"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 10 * time.Second

// Ensure ResourceFetcher implements sitepdf.ResourceFetcher at compile time.
var _ sitepdf.ResourceFetcher = (*ResourceFetcher)(nil)

// ResourceFetcher retrieves binary resources by reference. A reference may
// be an http(s) URL, a file:// URL, or a local filesystem path.
type ResourceFetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a ResourceFetcher.
type Option func(*ResourceFetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *ResourceFetcher) {
		f.timeout = d
	}
}

// NewResourceFetcher creates a new ResourceFetcher.
func NewResourceFetcher(opts ...Option) *ResourceFetcher {
	f := &ResourceFetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// FetchResource retrieves the resource identified by ref.
func (f *ResourceFetcher) FetchResource(ctx context.Context, ref string) (*sitepdf.Resource, error) {
	switch {
	case strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://"):
		return f.fetchHTTP(ctx, ref)
	case strings.HasPrefix(ref, "file://"):
		u, err := url.Parse(ref)
		if err != nil {
			return nil, sitepdf.Errorf(sitepdf.EINVALID, "invalid file URL %q: %v", ref, err)
		}
		return fetchFile(u.Path)
	default:
		return fetchFile(ref)
	}
}

// fetchHTTP retrieves the resource over HTTP. The MIME type comes from the
// Content-Type response header when present, otherwise from the URL's file
// extension.
func (f *ResourceFetcher) fetchHTTP(ctx context.Context, ref string) (*sitepdf.Resource, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ref, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, sitepdf.Errorf(sitepdf.ENOTFOUND, "resource not found: %s", ref)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d for %s", resp.StatusCode, ref)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	mimeType := resp.Header.Get("Content-Type")
	if i := strings.Index(mimeType, ";"); i >= 0 {
		mimeType = strings.TrimSpace(mimeType[:i])
	}
	if mimeType == "" {
		mimeType = typeByExtension(ref)
	}

	return &sitepdf.Resource{Data: data, MimeType: mimeType}, nil
}

// fetchFile reads the resource from the local filesystem.
func fetchFile(path string) (*sitepdf.Resource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, sitepdf.Errorf(sitepdf.ENOTFOUND, "resource not found: %s", path)
		}
		return nil, err
	}

	return &sitepdf.Resource{Data: data, MimeType: typeByExtension(path)}, nil
}

// typeByExtension guesses a MIME type from the file extension, defaulting to
// application/octet-stream.
func typeByExtension(ref string) string {
	if t := mime.TypeByExtension(filepath.Ext(ref)); t != "" {
		if i := strings.Index(t, ";"); i >= 0 {
			t = strings.TrimSpace(t[:i])
		}
		return t
	}
	return "application/octet-stream"
}
