package goquery

import (
	"strings"

	"sitepdf"

	"github.com/PuerkitoBio/goquery"
)

var _ sitepdf.LinkRewriter = (*Rewriter)(nil)

// Rewriter rewrites internal hrefs in the merged document into
// intra-document anchor references.
type Rewriter struct{}

// NewRewriter creates a new Rewriter.
func NewRewriter() *Rewriter {
	return &Rewriter{}
}

// Rewrite replaces every anchor href that exactly equals a key in anchors
// with "#<id>". Matching is exact string equality on the original path; no
// trailing-slash or case normalization is performed, so near-miss internal
// links stay untouched. The pass is idempotent: already-rewritten hrefs
// start with "#" and no longer match any original path.
func (r *Rewriter) Rewrite(html string, anchors map[string]string) (string, error) {
	if len(anchors) == 0 {
		return html, nil
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", sitepdf.Errorf(sitepdf.EINVALID, "failed to parse document: %v", err)
	}

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if id, ok := anchors[href]; ok {
			sel.SetAttr("href", "#"+id)
		}
	})

	out, err := doc.Html()
	if err != nil {
		return "", sitepdf.Errorf(sitepdf.EINTERNAL, "failed to serialize document: %v", err)
	}
	return out, nil
}
