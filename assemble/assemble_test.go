package assemble_test

import (
	"context"
	"strings"
	"testing"

	"sitepdf"
	"sitepdf/assemble"
	gq "sitepdf/goquery"
	"sitepdf/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// passthroughRewriter returns the document unchanged.
func passthroughRewriter() *mock.LinkRewriter {
	return &mock.LinkRewriter{
		RewriteFn: func(html string, _ map[string]string) (string, error) {
			return html, nil
		},
	}
}

func TestAssembler_BuildDocument_FragmentOrder(t *testing.T) {
	t.Parallel()

	tree := []*sitepdf.NavNode{
		{ID: "a", Title: "One", Path: "/one", URL: "https://x/one"},
		{ID: "b", Title: "Two", Path: "/two", URL: "https://x/two"},
	}
	fragments := []*sitepdf.PageFragment{
		{ID: "a", Content: `<article id="a">first</article>`},
		{ID: "b", Content: `<article id="b">second</article>`},
	}

	a := &assemble.Assembler{Rewriter: passthroughRewriter()}

	doc, err := a.BuildDocument(context.Background(), tree, fragments, "")

	require.NoError(t, err)
	first := strings.Index(doc, `id="a"`)
	second := strings.Index(doc, `id="b"`)
	require.Positive(t, first)
	require.Positive(t, second)
	assert.Less(t, first, second, "fragments must appear in harvest order")
}

func TestAssembler_BuildDocument_TOCNesting(t *testing.T) {
	t.Parallel()

	tree := []*sitepdf.NavNode{
		{
			ID: "cat", Title: "Guides & Tips",
			Children: []*sitepdf.NavNode{
				{ID: "leaf", Title: "Setup", Path: "/setup", URL: "https://x/setup"},
			},
		},
	}

	a := &assemble.Assembler{Rewriter: passthroughRewriter()}

	doc, err := a.BuildDocument(context.Background(), tree, nil, "")

	require.NoError(t, err)
	assert.Contains(t, doc, `<a href="#cat">Guides &amp; Tips</a>`)
	assert.Contains(t, doc, `<a href="#leaf">Setup</a>`)

	// The leaf entry is nested inside the category entry.
	cat := strings.Index(doc, `href="#cat"`)
	leaf := strings.Index(doc, `href="#leaf"`)
	closing := strings.Index(doc, "</nav>")
	assert.Less(t, cat, leaf)
	assert.Less(t, leaf, closing)
	assert.Equal(t, 2, strings.Count(doc[:closing], "<ul>"), "two nesting levels")
}

func TestAssembler_BuildDocument_Cover(t *testing.T) {
	t.Parallel()

	t.Run("includes cover when resource resolves", func(t *testing.T) {
		t.Parallel()

		a := &assemble.Assembler{
			Rewriter: passthroughRewriter(),
			Resources: &mock.ResourceFetcher{
				FetchResourceFn: func(_ context.Context, ref string) (*sitepdf.Resource, error) {
					assert.Equal(t, "https://x/cover.png", ref)
					return &sitepdf.Resource{Data: []byte("png-bytes"), MimeType: "image/png"}, nil
				},
			},
		}

		doc, err := a.BuildDocument(context.Background(), nil, nil, "https://x/cover.png")

		require.NoError(t, err)
		assert.Contains(t, doc, `class="doc-cover"`)
		assert.Contains(t, doc, "data:image/png;base64,")
	})

	t.Run("degrades softly when the cover is unresolvable", func(t *testing.T) {
		t.Parallel()

		a := &assemble.Assembler{
			Rewriter: passthroughRewriter(),
			Resources: &mock.ResourceFetcher{
				FetchResourceFn: func(_ context.Context, _ string) (*sitepdf.Resource, error) {
					return nil, sitepdf.Errorf(sitepdf.ENOTFOUND, "no such file")
				},
			},
		}

		doc, err := a.BuildDocument(context.Background(), nil, nil, "/missing.png")

		require.NoError(t, err, "an unresolvable cover must not fail the run")
		assert.NotContains(t, doc, "doc-cover")
	})

	t.Run("no cover requested", func(t *testing.T) {
		t.Parallel()

		a := &assemble.Assembler{Rewriter: passthroughRewriter()}

		doc, err := a.BuildDocument(context.Background(), nil, nil, "")

		require.NoError(t, err)
		assert.NotContains(t, doc, "doc-cover")
	})
}

// TestAssembler_EndToEnd covers the full flatten/harvest/rewrite contract:
// the tree flattens to [a, c], and an internal reference to c's original
// path is rewritten to its anchor.
func TestAssembler_EndToEnd(t *testing.T) {
	t.Parallel()

	tree := []*sitepdf.NavNode{
		{ID: "a", Title: "Intro", Path: "/docs/intro", URL: "https://x/docs/intro"},
		{
			ID: "b", Title: "Guides", URL: "#",
			Children: []*sitepdf.NavNode{
				{ID: "c", Title: "Setup", Path: "/docs/setup", URL: "https://x/docs/setup"},
			},
		},
	}

	leaves := sitepdf.Leaves(tree)
	require.Len(t, leaves, 2)
	assert.Equal(t, "a", leaves[0].ID)
	assert.Equal(t, "c", leaves[1].ID)

	fragments := []*sitepdf.PageFragment{
		{ID: "a", Content: `<article id="a">see <a href="/docs/setup">setup</a></article>`},
		{ID: "c", Content: `<article id="c">setup instructions</article>`},
	}

	a := &assemble.Assembler{Rewriter: gq.NewRewriter()}

	doc, err := a.BuildDocument(context.Background(), tree, fragments, "")

	require.NoError(t, err)
	assert.Contains(t, doc, `<a href="#c">setup</a>`)
	assert.NotContains(t, doc, `href="/docs/setup"`)
}

func TestAssembler_Render_Delegates(t *testing.T) {
	t.Parallel()

	var gotHTML string
	var gotOpts sitepdf.PDFOptions
	a := &assemble.Assembler{
		Rewriter: passthroughRewriter(),
		Renderer: &mock.Renderer{
			RenderPDFFn: func(_ context.Context, html string, opts sitepdf.PDFOptions) ([]byte, error) {
				gotHTML = html
				gotOpts = opts
				return []byte("%PDF-1.7"), nil
			},
		},
	}

	out, err := a.Render(context.Background(), "<html></html>", sitepdf.PDFOptions{MarginMm: 10})

	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.7"), out)
	assert.Equal(t, "<html></html>", gotHTML)
	assert.Equal(t, 10.0, gotOpts.MarginMm)
}
