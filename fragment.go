package sitepdf

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// PageFragment is the result of harvesting one leaf page. Identity fields
// are value copies of the source node. A fragment is written exactly once
// into its reserved output slot and never mutated afterwards.
type PageFragment struct {
	ID    string
	Title string
	URL   string
	Path  string

	// Content is the extracted markup, or empty if harvesting failed.
	Content string

	// ContentHash is an xxhash of Content, for diagnostics.
	ContentHash string

	// Err records why harvesting failed. The fragment is still
	// well-formed when Err is non-nil; failures never propagate past the
	// harvester boundary as errors.
	Err error
}

// NewFragment returns an empty fragment carrying the leaf's identity.
func NewFragment(leaf *NavNode) *PageFragment {
	return &PageFragment{
		ID:    leaf.ID,
		Title: leaf.Title,
		URL:   leaf.URL,
		Path:  leaf.Path,
	}
}

// SetContent stores the extracted markup and its hash.
func (f *PageFragment) SetContent(content string) {
	f.Content = content
	f.ContentHash = HashContent(content)
}

// HashContent computes a hash of extracted content using xxhash.
func HashContent(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
