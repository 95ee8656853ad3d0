package sitepdf

import "strings"

// NavNode represents one entry in a site's navigation hierarchy.
//
// A node is exclusively owned by its parent; the tree is a strict forest
// with no shared ownership and no cycles. Once a tree has been published
// to the harvesting pipeline it is read-only.
type NavNode struct {
	// ID is an opaque, globally unique anchor identifier generated once
	// at discovery time. It is stable for the duration of a run but not
	// across runs.
	ID string

	// Title is the display label shown in the navigation and the table
	// of contents.
	Title string

	// Path is the original in-site reference (the href as written in the
	// sidebar). It is the rewrite key for internal links and may be empty
	// for pure category nodes.
	Path string

	// URL is the fully resolved absolute address used to retrieve
	// content. "#"-only or fragment-only values mark a node as
	// non-fetchable.
	URL string

	// Children holds the ordered child nodes. Order is significant: it
	// defines document order.
	Children []*NavNode
}

// IsLeafPage reports whether the node is a fetchable leaf: it has no
// children, a non-empty URL that is not a bare "#" and does not end in a
// "/#" fragment marker.
func (n *NavNode) IsLeafPage() bool {
	if len(n.Children) > 0 {
		return false
	}
	if n.URL == "" || n.URL == "#" {
		return false
	}
	return !strings.HasSuffix(n.URL, "/#")
}

// Walk visits every node in the tree in pre-order depth-first order,
// calling fn with the node and its depth (roots are depth 0).
func Walk(tree []*NavNode, fn func(n *NavNode, depth int)) {
	var visit func(nodes []*NavNode, depth int)
	visit = func(nodes []*NavNode, depth int) {
		for _, n := range nodes {
			fn(n, depth)
			visit(n.Children, depth+1)
		}
	}
	visit(tree, 0)
}

// Leaves linearizes the navigation tree into the ordered list of leaf
// pages to harvest, in pre-order depth-first order.
//
// Nodes with children are descended into but never themselves emitted:
// categories are not independently fetchable, so a category node that also
// carries its own content page is intentionally excluded. This determines
// that category landing pages do not appear in the merged document.
func Leaves(tree []*NavNode) []*NavNode {
	var leaves []*NavNode
	Walk(tree, func(n *NavNode, _ int) {
		if n.IsLeafPage() {
			leaves = append(leaves, n)
		}
	})
	return leaves
}

// CountNodes returns the total number of nodes in the tree.
func CountNodes(tree []*NavNode) int {
	count := 0
	Walk(tree, func(*NavNode, int) { count++ })
	return count
}

// AnchorMap builds the path→anchor-id map used by the link rewriter. It
// contains one entry per leaf page with a non-empty path, built from the
// original path regardless of whether the page's harvest later succeeds.
func AnchorMap(leaves []*NavNode) map[string]string {
	anchors := make(map[string]string, len(leaves))
	for _, leaf := range leaves {
		if leaf.Path == "" {
			continue
		}
		anchors[leaf.Path] = leaf.ID
	}
	return anchors
}
