// Package slog provides logging decorators for navigation parsing.
package slog

import (
	"log/slog"
	"time"

	"sitepdf"
)

// Ensure LoggingRegistry implements sitepdf.TreeParserRegistry.
var _ sitepdf.TreeParserRegistry = (*LoggingRegistry)(nil)

// LoggingRegistry wraps a TreeParserRegistry with debug logging for
// framework detection.
type LoggingRegistry struct {
	next     sitepdf.TreeParserRegistry
	detector sitepdf.FrameworkDetector
	logger   *slog.Logger
}

// NewLoggingRegistry creates a new LoggingRegistry.
func NewLoggingRegistry(next sitepdf.TreeParserRegistry, detector sitepdf.FrameworkDetector, logger *slog.Logger) *LoggingRegistry {
	return &LoggingRegistry{next: next, detector: detector, logger: logger}
}

// Get delegates to the wrapped registry.
func (r *LoggingRegistry) Get(framework sitepdf.Framework) sitepdf.TreeParser {
	return r.next.Get(framework)
}

// GetForHTML detects the framework, logs it, and returns the appropriate parser.
func (r *LoggingRegistry) GetForHTML(html string) sitepdf.TreeParser {
	begin := time.Now()
	framework := r.detector.Detect(html)
	frameworkName := string(framework)
	if framework == sitepdf.FrameworkUnknown {
		frameworkName = "(unknown)"
	}
	r.logger.Info("framework detection",
		"framework", frameworkName,
		"duration", time.Since(begin),
	)
	return r.next.GetForHTML(html)
}

// Register delegates to the wrapped registry.
func (r *LoggingRegistry) Register(framework sitepdf.Framework, parser sitepdf.TreeParser) {
	r.next.Register(framework, parser)
}

// List delegates to the wrapped registry.
func (r *LoggingRegistry) List() []sitepdf.Framework {
	return r.next.List()
}
