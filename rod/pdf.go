package rod

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-rod/rod/lib/proto"

	"sitepdf"
)

const mmPerInch = 25.4

// paperSizes maps format names to {width, height} in inches.
var paperSizes = map[string][2]float64{
	"a4":     {210 / mmPerInch, 297 / mmPerInch},
	"letter": {8.5, 11},
	"legal":  {8.5, 14},
}

// RenderPDF loads the document markup into a fresh page and prints it via
// the DevTools printToPDF command. The page counts against the recycling
// budget like any harvesting page.
func (r *Renderer) RenderPDF(ctx context.Context, html string, opts sitepdf.PDFOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	browser := r.acquireBrowser()
	defer r.releasePage()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return nil, fmt.Errorf("creating print page: %w", err)
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.SetDocumentContent(html); err != nil {
		return nil, fmt.Errorf("loading document: %w", err)
	}

	// Embedded images decode asynchronously after the content is set, so
	// wait for the DOM to settle before printing.
	if err := page.WaitStable(500 * time.Millisecond); err != nil {
		return nil, fmt.Errorf("waiting for document: %w", err)
	}

	stream, err := page.PDF(printRequest(opts))
	if err != nil {
		return nil, fmt.Errorf("printing document: %w", err)
	}

	pdf, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("reading pdf stream: %w", err)
	}

	return pdf, nil
}

// printRequest translates PDFOptions into a DevTools printToPDF request.
// Margins and paper dimensions are expressed in inches on the wire.
func printRequest(opts sitepdf.PDFOptions) *proto.PagePrintToPDF {
	size, ok := paperSizes[strings.ToLower(opts.Format)]
	if !ok {
		size = paperSizes["a4"]
	}
	width, height := size[0], size[1]
	margin := opts.MarginMm / mmPerInch

	req := &proto.PagePrintToPDF{
		PrintBackground: true,
		PaperWidth:      &width,
		PaperHeight:     &height,
		MarginTop:       &margin,
		MarginBottom:    &margin,
		MarginLeft:      &margin,
		MarginRight:     &margin,
	}

	if opts.HeaderTemplate != "" || opts.FooterTemplate != "" {
		req.DisplayHeaderFooter = true
		req.HeaderTemplate = opts.HeaderTemplate
		req.FooterTemplate = opts.FooterTemplate
	}

	return req
}
