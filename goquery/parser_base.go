// Package goquery provides CSS-selector based implementations of
// navigation-tree parsing, framework detection, and link rewriting.
package goquery

import (
	"log/slog"
	"net/url"
	"strings"

	"sitepdf"

	"github.com/PuerkitoBio/goquery"
)

// Config controls how a navigation tree is located and parsed.
type Config struct {
	// Containers are CSS selectors tried in order to locate the
	// navigation root. The first one that matches an element holding a
	// list is used.
	Containers []string

	// Logger, if set, receives a debug entry for every skipped
	// navigation entry.
	Logger *slog.Logger
}

// Option configures a parser.
type Option func(*Config)

// WithLogger sets the logger used to report skipped navigation entries.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = logger
	}
}

// ParseTreeWithConfig parses the rendered HTML into a navigation tree
// using the given configuration. Parsing is a pure walk over the parsed
// document: a list item with a nested sub-list is a category, a list item
// with a direct link and no sub-list is a leaf candidate, and an item with
// neither is skipped.
func ParseTreeWithConfig(rendered string, baseURL string, cfg Config) ([]*sitepdf.NavNode, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, sitepdf.Errorf(sitepdf.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rendered))
	if err != nil {
		return nil, sitepdf.Errorf(sitepdf.EINVALID, "failed to parse HTML: %v", err)
	}

	list := findNavList(doc, cfg.Containers)
	if list == nil {
		return nil, sitepdf.Errorf(sitepdf.ENOTFOUND, "no navigation list found for %q", baseURL)
	}

	return parseList(base, list, cfg.Logger), nil
}

// findNavList locates the top-level navigation list, trying each container
// selector in order.
func findNavList(doc *goquery.Document, containers []string) *goquery.Selection {
	for _, selector := range containers {
		container := doc.Find(selector).First()
		if container.Length() == 0 {
			continue
		}
		if name := goquery.NodeName(container); name == "ul" || name == "ol" {
			return container
		}
		if list := container.Find("ul, ol").First(); list.Length() > 0 {
			return list
		}
	}
	return nil
}

// parseList converts a ul/ol element into an ordered sequence of nodes.
func parseList(base *url.URL, list *goquery.Selection, logger *slog.Logger) []*sitepdf.NavNode {
	var nodes []*sitepdf.NavNode
	list.ChildrenFiltered("li").Each(func(_ int, item *goquery.Selection) {
		if node := parseItem(base, item, logger); node != nil {
			nodes = append(nodes, node)
		}
	})
	return nodes
}

// parseItem converts one list item into a node, descending into its nested
// sub-list. It returns nil for entries with no discoverable link and no
// sub-list; such entries are skipped, not treated as fatal.
func parseItem(base *url.URL, item *goquery.Selection, logger *slog.Logger) *sitepdf.NavNode {
	sublist := childList(item)
	link := directLink(item, sublist)

	if link == nil && sublist == nil {
		if logger != nil {
			logger.Debug("skipping navigation entry without link",
				"text", strings.TrimSpace(item.Text()),
			)
		}
		return nil
	}

	var href string
	var title string
	if link != nil {
		href, _ = link.Attr("href")
		title = strings.TrimSpace(link.Text())
	}
	if title == "" {
		// Category labels live in the first non-list child.
		title = strings.TrimSpace(item.Children().Not("ul, ol").First().Text())
	}
	if title == "" {
		title = href
	}
	if title == "" {
		if logger != nil {
			logger.Debug("skipping navigation entry without title")
		}
		return nil
	}

	node := &sitepdf.NavNode{
		ID:    sitepdf.NewAnchorID(),
		Title: title,
		Path:  href,
		URL:   resolveHref(base, href),
	}
	if sublist != nil {
		node.Children = parseList(base, sublist, logger)
	}
	return node
}

// childList returns the item's nested list, if any. Some generators wrap
// nested lists in an intermediate div.
func childList(item *goquery.Selection) *goquery.Selection {
	sub := item.ChildrenFiltered("ul, ol")
	if sub.Length() == 0 {
		sub = item.ChildrenFiltered("div").ChildrenFiltered("ul, ol")
	}
	if sub.Length() == 0 {
		return nil
	}
	return sub.First()
}

// directLink returns the item's own link: the first anchor that does not
// belong to the nested sub-list.
func directLink(item *goquery.Selection, sublist *goquery.Selection) *goquery.Selection {
	var link *goquery.Selection
	item.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
		if sublist != nil && isDescendant(a, sublist) {
			return true // keep scanning
		}
		link = a
		return false
	})
	return link
}

// isDescendant reports whether sel's first node sits inside root's first node.
func isDescendant(sel *goquery.Selection, root *goquery.Selection) bool {
	rootNode := root.Get(0)
	for n := sel.Get(0); n != nil; n = n.Parent {
		if n == rootNode {
			return true
		}
	}
	return false
}

// resolveHref resolves href against the base URL. Fragment-only hrefs are
// kept as written since they mark non-fetchable placeholder entries.
func resolveHref(base *url.URL, href string) string {
	if href == "" || strings.HasPrefix(href, "#") {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
