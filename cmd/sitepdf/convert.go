package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/briandowns/spinner"
	charmlog "github.com/charmbracelet/log"

	"sitepdf"
	"sitepdf/assemble"
	"sitepdf/fs"
	"sitepdf/goquery"
	"sitepdf/harvest"
	sitepdfhttp "sitepdf/http"
	"sitepdf/rod"
	sitepdfslog "sitepdf/slog"
)

// convert runs the full pipeline: extract the navigation tree, harvest every
// leaf page concurrently, assemble the merged document, and print it to the
// output path. Individual page failures degrade the output instead of
// aborting the run.
func (m *Main) convert(ctx context.Context, cli *CLI, stdout, stderr io.Writer) error {
	logger := newLogger(stderr, cli.Verbose)

	pdfPath, err := resolvePDFPath(cli.PDFPath)
	if err != nil {
		return err
	}

	renderer, err := m.NewRenderer()
	if err != nil {
		fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
		return fmt.Errorf("failed to start browser: %w", err)
	}
	defer renderer.Close()

	parsers := newParserRegistry(logger)
	if cli.Verbose {
		renderer = rod.NewLoggingRenderer(renderer, logger)
		parsers = sitepdfslog.NewLoggingRegistry(parsers, goquery.NewDetector(), logger)
	}

	harvester := &harvest.Harvester{
		Renderer:        renderer,
		Parsers:         parsers,
		Logger:          logger,
		Concurrency:     cli.PageConcurrency,
		ContentSelector: cli.ContentSelector,
		NavigateTimeout: cli.NavTimeout,
	}
	if cli.RateLimit > 0 {
		harvester.Limiter = harvest.NewDomainLimiter(cli.RateLimit)
	}

	spin := newSpinner(stderr)
	spin.Suffix = " extracting navigation tree"
	spin.Start()

	tree, err := harvester.ExtractTree(ctx, cli.DocsURL)
	if err != nil {
		spin.Stop()
		fmt.Fprintf(stderr, "error: %s\n", sitepdf.ErrorMessage(err))
		return err
	}

	leaves := sitepdf.Leaves(tree)
	if len(leaves) == 0 {
		spin.Stop()
		return fmt.Errorf("no pages found in the navigation tree at %s", cli.DocsURL)
	}

	var mu sync.Mutex
	fragments := harvester.HarvestAll(ctx, leaves, func(event harvest.ProgressEvent) {
		mu.Lock()
		defer mu.Unlock()
		switch event.Type {
		case harvest.ProgressStarted:
			spin.Suffix = fmt.Sprintf(" harvesting 0/%d pages", event.Total)
		case harvest.ProgressCompleted, harvest.ProgressFailed:
			spin.Suffix = fmt.Sprintf(" harvesting %d/%d pages", event.Completed, event.Total)
		}
	})

	failed := 0
	for _, frag := range fragments {
		if frag.Err != nil {
			failed++
		}
	}
	if failed == len(fragments) {
		spin.Stop()
		return fmt.Errorf("all %d pages failed to harvest", failed)
	}

	spin.Suffix = " assembling document"

	assembler := &assemble.Assembler{
		Rewriter:  goquery.NewRewriter(),
		Renderer:  renderer,
		Resources: sitepdfhttp.NewResourceFetcher(),
		Logger:    logger,
	}

	doc, err := assembler.BuildDocument(ctx, tree, fragments, cli.PDFCoverImage)
	if err != nil {
		spin.Stop()
		fmt.Fprintf(stderr, "error: %s\n", sitepdf.ErrorMessage(err))
		return err
	}

	spin.Suffix = " printing PDF"

	pdf, err := assembler.Render(ctx, doc, sitepdf.PDFOptions{
		MarginMm: cli.PDFMarginMm,
		Format:   "A4",
	})
	if err != nil {
		spin.Stop()
		fmt.Fprintf(stderr, "error: %s\n", sitepdf.ErrorMessage(err))
		return err
	}

	spin.Stop()

	if err := fs.NewWriter().WriteFile(pdfPath, pdf); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Wrote %s (%d pages harvested", pdfPath, len(fragments)-failed)
	if failed > 0 {
		fmt.Fprintf(stdout, ", %d failed", failed)
	}
	fmt.Fprintln(stdout, ")")

	return nil
}

// newLogger builds the application logger writing human-readable records to w.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := charmlog.WarnLevel
	if verbose {
		level = charmlog.DebugLevel
	}
	handler := charmlog.NewWithOptions(w, charmlog.Options{
		Level:           level,
		ReportTimestamp: true,
	})
	return slog.New(handler)
}

// newParserRegistry wires framework detection with all known navigation
// parsers, falling back to the generic parser for unrecognized sites.
func newParserRegistry(logger *slog.Logger) sitepdf.TreeParserRegistry {
	registry := goquery.NewRegistry(goquery.NewDetector(), goquery.NewGenericParser(goquery.WithLogger(logger)))
	registry.Register(sitepdf.FrameworkDocusaurus, goquery.NewDocusaurusParser(goquery.WithLogger(logger)))
	registry.Register(sitepdf.FrameworkMkDocs, goquery.NewMkDocsParser(goquery.WithLogger(logger)))
	registry.Register(sitepdf.FrameworkGitBook, goquery.NewGitBookParser(goquery.WithLogger(logger)))
	registry.Register(sitepdf.FrameworkSphinx, goquery.NewSphinxParser(goquery.WithLogger(logger)))
	registry.Register(sitepdf.FrameworkVitePress, goquery.NewVitePressParser(goquery.WithLogger(logger)))
	return registry
}

func newSpinner(w io.Writer) *spinner.Spinner {
	return spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(w))
}
