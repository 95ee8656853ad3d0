//go:build integration

package rod_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sitepdf"
	"sitepdf/rod"
)

func TestRenderer_RecyclesBrowserAfterBudget(t *testing.T) {
	t.Parallel()

	renderer, err := rod.NewRenderer(rod.WithPageBudget(2))
	require.NoError(t, err)
	defer renderer.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	// Spend the budget.
	for i := 0; i < 2; i++ {
		page, err := renderer.NewPage(ctx)
		require.NoError(t, err)
		require.NoError(t, page.Close())
	}

	oldPID := renderer.LauncherPID()
	require.NotZero(t, oldPID)

	// The next page acquisition should trigger a recycle.
	page, err := renderer.NewPage(ctx)
	require.NoError(t, err)
	defer page.Close()

	assert.NotEqual(t, oldPID, renderer.LauncherPID())
}

func TestRenderer_DoesNotRecycleWithOpenPages(t *testing.T) {
	t.Parallel()

	renderer, err := rod.NewRenderer(rod.WithPageBudget(1))
	require.NoError(t, err)
	defer renderer.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	first, err := renderer.NewPage(ctx)
	require.NoError(t, err)
	defer first.Close()

	oldPID := renderer.LauncherPID()

	// Budget is spent but a page is still open; the browser must survive.
	second, err := renderer.NewPage(ctx)
	require.NoError(t, err)
	defer second.Close()

	assert.Equal(t, oldPID, renderer.LauncherPID())
}

func TestRenderer_RenderPDF(t *testing.T) {
	t.Parallel()

	renderer, err := rod.NewRenderer()
	require.NoError(t, err)
	defer renderer.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	pdf, err := renderer.RenderPDF(ctx, "<html><body><h1>Hello</h1></body></html>", sitepdf.PDFOptions{
		MarginMm: 10,
		Format:   "A4",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(pdf), "%PDF-"))
}

func TestPage_EvalReturnsString(t *testing.T) {
	t.Parallel()

	renderer, err := rod.NewRenderer()
	require.NoError(t, err)
	defer renderer.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	page, err := renderer.NewPage(ctx)
	require.NoError(t, err)
	defer page.Close()

	result, err := page.Eval(ctx, `(a, b) => a + b`, "foo", "bar")
	require.NoError(t, err)
	assert.Equal(t, "foobar", result)
}
