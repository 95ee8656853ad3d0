// Package sitepdf converts a tree-structured documentation site into a
// single, internally-navigable PDF. It discovers the site's navigation
// hierarchy from the rendered entry page, harvests every leaf page's
// primary content concurrently, rewrites internal cross-references into
// intra-document anchors, and prints the assembled document with a
// headless browser.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., rod/,
// goquery/, http/) or their concern (harvest/, assemble/).
package sitepdf
