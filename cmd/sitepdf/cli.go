package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	DocsURL         string        `name:"docs-url" required:"" help:"Entry URL of the documentation site"`
	PDFPath         string        `name:"pdf-path" required:"" help:"Output PDF path (.pdf is appended if missing)"`
	PDFCoverImage   string        `name:"pdf-cover-image" help:"Cover image URL or file path"`
	PDFMarginMm     float64       `name:"pdf-margin-mm" default:"10" help:"Page margin in millimeters"`
	PageConcurrency int           `name:"page-concurrency" help:"Concurrent page harvest limit (default: 2x CPU count)"`
	ContentSelector string        `name:"content-selector" help:"CSS selector for the primary content region (default: article, main)"`
	NavTimeout      time.Duration `name:"nav-timeout" default:"30s" help:"Per-page navigation timeout"`
	RateLimit       float64       `name:"rate-limit" default:"0" help:"Max page navigations per second per domain (0 disables)"`
	Verbose         bool          `short:"v" help:"Enable debug logging"`
}

// resolvePDFPath normalizes the output path: the .pdf extension is appended
// when missing, relative paths are resolved against the working directory,
// and the parent directory is created if it does not exist.
func resolvePDFPath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("output path is empty")
	}

	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		path += ".pdf"
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving output path %q: %w", path, err)
	}

	if err := os.MkdirAll(filepath.Dir(abs), 0755); err != nil {
		return "", fmt.Errorf("creating output directory %q: %w", filepath.Dir(abs), err)
	}

	return abs, nil
}
