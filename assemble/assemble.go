// Package assemble builds the merged document from the harvested
// fragments and hands it to the renderer for final output.
package assemble

import (
	"context"
	"encoding/base64"
	"html/template"
	"log/slog"
	"strings"

	"sitepdf"
)

// Assembler concatenates cover, table of contents, and content fragments
// into one document, rewrites internal links, and drives the final render.
type Assembler struct {
	Rewriter sitepdf.LinkRewriter
	Renderer sitepdf.Renderer

	// Resources retrieves the cover image. Only needed when a cover
	// reference is supplied.
	Resources sitepdf.ResourceFetcher

	// Logger receives assembly diagnostics. Defaults to a discard logger.
	Logger *slog.Logger
}

// documentTmpl is the merged document shell. TOC and Body are
// pre-rendered markup; fragment content comes straight from the harvested
// pages and is inserted verbatim.
var documentTmpl = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
{{.CSS}}
</style>
</head>
<body>
{{if .CoverSrc}}<div class="doc-cover"><img src="{{.CoverSrc}}" alt="cover"></div>
{{end}}{{.TOC}}
{{.Body}}
</body>
</html>
`))

// baseCSS keeps the merged document printable: images stay within the
// page, long code lines wrap, and the cover and TOC get their own pages.
const baseCSS = `img { max-width: 100%; }
pre { white-space: pre-wrap; word-wrap: break-word; }
.doc-cover { page-break-after: always; text-align: center; }
.doc-toc { page-break-after: always; }
.doc-toc ul { list-style: none; }
`

type documentData struct {
	CSS      template.CSS
	CoverSrc template.URL
	TOC      template.HTML
	Body     template.HTML
}

// BuildDocument assembles the merged document: optional cover, table of
// contents rendered from the full navigation tree, then every fragment's
// content in harvest output order, followed by the link-rewriting pass.
//
// An unresolvable cover reference degrades softly: the document is built
// without a cover and a warning is logged.
func (a *Assembler) BuildDocument(ctx context.Context, tree []*sitepdf.NavNode, fragments []*sitepdf.PageFragment, coverRef string) (string, error) {
	var body strings.Builder
	for _, frag := range fragments {
		body.WriteString(frag.Content)
		body.WriteString("\n")
	}

	data := documentData{
		CSS:      template.CSS(baseCSS),
		CoverSrc: template.URL(a.coverSrc(ctx, coverRef)),
		TOC:      template.HTML(renderTOC(tree)),
		Body:     template.HTML(body.String()),
	}

	var doc strings.Builder
	if err := documentTmpl.Execute(&doc, data); err != nil {
		return "", sitepdf.Errorf(sitepdf.EINTERNAL, "assembling document: %v", err)
	}

	anchors := sitepdf.AnchorMap(sitepdf.Leaves(tree))
	rewritten, err := a.Rewriter.Rewrite(doc.String(), anchors)
	if err != nil {
		return "", err
	}

	a.logger().Info("document assembled",
		"fragments", len(fragments),
		"anchors", len(anchors),
		"bytes", len(rewritten),
	)
	return rewritten, nil
}

// Render prints the assembled document through the external renderer.
func (a *Assembler) Render(ctx context.Context, doc string, opts sitepdf.PDFOptions) ([]byte, error) {
	return a.Renderer.RenderPDF(ctx, doc, opts)
}

// coverSrc retrieves the cover image and returns it as a data URI, or ""
// when no cover was requested or the reference cannot be resolved.
func (a *Assembler) coverSrc(ctx context.Context, coverRef string) string {
	if coverRef == "" {
		return ""
	}
	if a.Resources == nil {
		a.logger().Warn("no resource fetcher configured, continuing without cover")
		return ""
	}

	res, err := a.Resources.FetchResource(ctx, coverRef)
	if err != nil {
		a.logger().Warn("cover image unavailable, continuing without cover",
			"cover", coverRef,
			"err", err,
		)
		return ""
	}

	return "data:" + res.MimeType + ";base64," + base64.StdEncoding.EncodeToString(res.Data)
}

func (a *Assembler) logger() *slog.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return slog.New(slog.DiscardHandler)
}
