package goquery_test

import (
	"testing"

	"sitepdf"
	gq "sitepdf/goquery"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const docusaurusSidebar = `<!DOCTYPE html>
<html>
<body>
<div class="theme-doc-sidebar-container">
  <nav class="menu">
    <ul class="theme-doc-sidebar-menu">
      <li><a href="/docs/intro">Introduction</a></li>
      <li class="theme-doc-sidebar-item-category">
        <div><a href="#">Guides</a></div>
        <ul>
          <li><a href="/docs/setup">Setup</a></li>
          <li><a href="/docs/deploy">Deploy</a></li>
        </ul>
      </li>
      <li><span>Decorative entry</span></li>
      <li><a href="https://example.com/docs/ref">Reference</a></li>
    </ul>
  </nav>
</div>
</body>
</html>`

func TestDocusaurusParser_ParseTree(t *testing.T) {
	t.Parallel()

	parser := gq.NewDocusaurusParser()

	tree, err := parser.ParseTree(docusaurusSidebar, "https://example.com/docs/intro")

	require.NoError(t, err)
	require.Len(t, tree, 3, "entry without a link is skipped")

	assert.Equal(t, "Introduction", tree[0].Title)
	assert.Equal(t, "/docs/intro", tree[0].Path)
	assert.Equal(t, "https://example.com/docs/intro", tree[0].URL)
	assert.Empty(t, tree[0].Children)

	guides := tree[1]
	assert.Equal(t, "Guides", guides.Title)
	assert.Equal(t, "#", guides.Path)
	assert.Equal(t, "#", guides.URL, "fragment-only hrefs are kept as written")
	require.Len(t, guides.Children, 2)
	assert.Equal(t, "Setup", guides.Children[0].Title)
	assert.Equal(t, "https://example.com/docs/setup", guides.Children[0].URL)
	assert.Equal(t, "Deploy", guides.Children[1].Title)

	assert.Equal(t, "Reference", tree[2].Title)
	assert.Equal(t, "https://example.com/docs/ref", tree[2].URL)
}

func TestParseTree_AssignsUniqueIDs(t *testing.T) {
	t.Parallel()

	parser := gq.NewDocusaurusParser()

	tree, err := parser.ParseTree(docusaurusSidebar, "https://example.com/docs")
	require.NoError(t, err)

	seen := make(map[string]bool)
	sitepdf.Walk(tree, func(n *sitepdf.NavNode, _ int) {
		assert.NotEmpty(t, n.ID)
		assert.False(t, seen[n.ID], "id %q assigned twice", n.ID)
		seen[n.ID] = true
	})
}

func TestParseTree_NoNavigationList(t *testing.T) {
	t.Parallel()

	parser := gq.NewDocusaurusParser()

	_, err := parser.ParseTree("<html><body><p>nothing here</p></body></html>", "https://example.com")

	require.Error(t, err)
	assert.Equal(t, sitepdf.ENOTFOUND, sitepdf.ErrorCode(err))
}

func TestParseTree_InvalidBaseURL(t *testing.T) {
	t.Parallel()

	parser := gq.NewGenericParser()

	_, err := parser.ParseTree(docusaurusSidebar, "://bad")

	require.Error(t, err)
	assert.Equal(t, sitepdf.EINVALID, sitepdf.ErrorCode(err))
}

func TestGenericParser_NestedCategories(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<aside>
  <nav>
    <ul>
      <li>
        <a href="/a">A</a>
        <ul>
          <li>
            <a href="/a/b">B</a>
            <ul><li><a href="/a/b/c">C</a></li></ul>
          </li>
        </ul>
      </li>
    </ul>
  </nav>
</aside>
</body></html>`

	tree, err := gq.NewGenericParser().ParseTree(html, "https://x")
	require.NoError(t, err)

	require.Len(t, tree, 1)
	a := tree[0]
	assert.Equal(t, "A", a.Title)
	require.Len(t, a.Children, 1)
	b := a.Children[0]
	assert.Equal(t, "B", b.Title)
	require.Len(t, b.Children, 1)
	assert.Equal(t, "C", b.Children[0].Title)
	assert.Equal(t, "https://x/a/b/c", b.Children[0].URL)
}

func TestMkDocsParser_ParseTree(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<nav class="md-nav--primary">
  <ul class="md-nav__list">
    <li class="md-nav__item"><a class="md-nav__link" href="getting-started/">Getting started</a></li>
    <li class="md-nav__item md-nav__item--nested">
      <a class="md-nav__link" href="#">User guide</a>
      <ul class="md-nav__list">
        <li class="md-nav__item"><a class="md-nav__link" href="guide/install/">Install</a></li>
      </ul>
    </li>
  </ul>
</nav>
</body></html>`

	tree, err := gq.NewMkDocsParser().ParseTree(html, "https://docs.example.com/")
	require.NoError(t, err)

	require.Len(t, tree, 2)
	assert.Equal(t, "Getting started", tree[0].Title)
	assert.Equal(t, "https://docs.example.com/getting-started/", tree[0].URL)
	require.Len(t, tree[1].Children, 1)
	assert.Equal(t, "Install", tree[1].Children[0].Title)
}
