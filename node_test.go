package sitepdf_test

import (
	"testing"

	"sitepdf"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNavNode_IsLeafPage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		node *sitepdf.NavNode
		want bool
	}{
		{
			name: "fetchable leaf",
			node: &sitepdf.NavNode{URL: "https://x/docs/intro"},
			want: true,
		},
		{
			name: "node with children is never a leaf",
			node: &sitepdf.NavNode{
				URL:      "https://x/docs/guides",
				Children: []*sitepdf.NavNode{{URL: "https://x/docs/setup"}},
			},
			want: false,
		},
		{
			name: "empty URL",
			node: &sitepdf.NavNode{Title: "Category"},
			want: false,
		},
		{
			name: "bare hash placeholder",
			node: &sitepdf.NavNode{URL: "#"},
			want: false,
		},
		{
			name: "trailing fragment marker",
			node: &sitepdf.NavNode{URL: "https://x/docs/guides/#"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.node.IsLeafPage())
		})
	}
}

func TestLeaves_DocumentOrder(t *testing.T) {
	t.Parallel()

	tree := []*sitepdf.NavNode{
		{ID: "a", Title: "Intro", Path: "/docs/intro", URL: "https://x/docs/intro"},
		{
			ID: "b", Title: "Guides", URL: "#",
			Children: []*sitepdf.NavNode{
				{ID: "c", Title: "Setup", Path: "/docs/setup", URL: "https://x/docs/setup"},
				{
					ID: "d", Title: "Advanced", URL: "https://x/docs/advanced/#",
					Children: []*sitepdf.NavNode{
						{ID: "e", Title: "Tuning", Path: "/docs/tuning", URL: "https://x/docs/tuning"},
					},
				},
				{ID: "f", Title: "Placeholder", URL: "#"},
			},
		},
		{ID: "g", Title: "Reference", Path: "/docs/ref", URL: "https://x/docs/ref"},
	}

	leaves := sitepdf.Leaves(tree)

	ids := make([]string, 0, len(leaves))
	for _, leaf := range leaves {
		ids = append(ids, leaf.ID)
	}
	assert.Equal(t, []string{"a", "c", "e", "g"}, ids)
}

func TestLeaves_CategoryWithOwnPageExcluded(t *testing.T) {
	t.Parallel()

	// A category node that carries its own href is still a category:
	// only its children are emitted.
	tree := []*sitepdf.NavNode{
		{
			ID: "cat", Title: "Guides", Path: "/docs/guides", URL: "https://x/docs/guides",
			Children: []*sitepdf.NavNode{
				{ID: "leaf", Title: "Setup", Path: "/docs/setup", URL: "https://x/docs/setup"},
			},
		},
	}

	leaves := sitepdf.Leaves(tree)

	require.Len(t, leaves, 1)
	assert.Equal(t, "leaf", leaves[0].ID)
}

func TestWalk_ReportsDepth(t *testing.T) {
	t.Parallel()

	tree := []*sitepdf.NavNode{
		{ID: "a", Children: []*sitepdf.NavNode{
			{ID: "b", Children: []*sitepdf.NavNode{{ID: "c"}}},
		}},
	}

	depths := make(map[string]int)
	sitepdf.Walk(tree, func(n *sitepdf.NavNode, depth int) {
		depths[n.ID] = depth
	})

	assert.Equal(t, map[string]int{"a": 0, "b": 1, "c": 2}, depths)
}

func TestCountNodes(t *testing.T) {
	t.Parallel()

	tree := []*sitepdf.NavNode{
		{ID: "a"},
		{ID: "b", Children: []*sitepdf.NavNode{{ID: "c"}, {ID: "d"}}},
	}

	assert.Equal(t, 4, sitepdf.CountNodes(tree))
}

func TestAnchorMap(t *testing.T) {
	t.Parallel()

	leaves := []*sitepdf.NavNode{
		{ID: "a", Path: "/docs/intro", URL: "https://x/docs/intro"},
		{ID: "b", Path: "", URL: "https://x/docs/other"},
		{ID: "c", Path: "/docs/setup", URL: "https://x/docs/setup"},
	}

	anchors := sitepdf.AnchorMap(leaves)

	assert.Equal(t, map[string]string{
		"/docs/intro": "a",
		"/docs/setup": "c",
	}, anchors)
}
