// Package harvest provides the concurrent harvesting pipeline: extraction
// of the navigation tree from the rendered entry page, and a bounded
// worker pool that fetches every leaf page's content while preserving
// document order in the output.
package harvest

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"runtime"
	"sync/atomic"
	"time"

	"sitepdf"

	"golang.org/x/sync/errgroup"
)

// Default timeouts and selectors.
const (
	// DefaultNavigateTimeout bounds navigation plus load of one page.
	DefaultNavigateTimeout = 30 * time.Second

	// DefaultElementTimeout bounds the wait for the primary content
	// region to appear in the rendered DOM.
	DefaultElementTimeout = 15 * time.Second

	// DefaultContentSelector locates the primary content region.
	DefaultContentSelector = "article, main"

	// maxExpandRounds bounds the sidebar expansion loop: each round
	// clicks every collapsed category, and newly revealed categories are
	// handled by the next round.
	maxExpandRounds = 10

	// expandSettleDelay gives the page time to apply the DOM mutation a
	// simulated click triggers before the next expansion round.
	expandSettleDelay = 150 * time.Millisecond
)

// DefaultConcurrency returns the default worker count, derived from the
// available CPU parallelism. Harvest workers spend most of their time
// suspended on page I/O, so the bound is deliberately above the CPU count.
func DefaultConcurrency() int {
	return runtime.NumCPU() * 2
}

// Harvester extracts the navigation tree and harvests leaf-page content.
type Harvester struct {
	Renderer sitepdf.Renderer
	Parsers  sitepdf.TreeParserRegistry

	// Limiter, if set, is consulted before every page navigation.
	Limiter sitepdf.PageLimiter

	// Logger receives per-page diagnostics. Defaults to a discard logger.
	Logger *slog.Logger

	// Concurrency is the worker bound W. Defaults to DefaultConcurrency.
	Concurrency int

	// ContentSelector locates the primary content region on each page.
	// Defaults to DefaultContentSelector.
	ContentSelector string

	NavigateTimeout time.Duration
	ElementTimeout  time.Duration

	// RetryDelays configures navigation retry backoff. Defaults to
	// DefaultRetryDelays.
	RetryDelays []time.Duration
}

// ProgressType indicates the type of progress event.
type ProgressType int

// Progress event types.
const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressEvent reports progress during the harvesting run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Title     string
	URL       string
	Error     error
}

// ProgressFunc is a callback for reporting harvest progress.
type ProgressFunc func(event ProgressEvent)

// ExtractTree renders the entry page, expands every collapsed navigation
// group so no node hides behind closed UI state, and parses the sidebar
// into a navigation tree. The transient UI-state changes on the entry page
// are not reverted.
func (h *Harvester) ExtractTree(ctx context.Context, entryURL string) ([]*sitepdf.NavNode, error) {
	if err := h.wait(ctx, entryURL); err != nil {
		return nil, err
	}

	page, err := h.Renderer.NewPage(ctx)
	if err != nil {
		return nil, fmt.Errorf("opening entry page: %w", err)
	}
	defer page.Close()

	navCtx, cancel := context.WithTimeout(ctx, h.navigateTimeout())
	defer cancel()
	if err := NavigateWithRetryDelays(navCtx, page, entryURL, h.retryDelays(), h.logger()); err != nil {
		return nil, fmt.Errorf("loading entry page %s: %w", entryURL, err)
	}

	h.expandNavigation(ctx, page)

	rendered, err := page.Eval(ctx, documentHTMLJS)
	if err != nil {
		return nil, fmt.Errorf("reading rendered entry page: %w", err)
	}

	parser := h.Parsers.GetForHTML(rendered)
	tree, err := parser.ParseTree(rendered, entryURL)
	if err != nil {
		return nil, err
	}

	h.logger().Info("navigation tree extracted",
		"url", entryURL,
		"nodes", sitepdf.CountNodes(tree),
		"leaves", len(sitepdf.Leaves(tree)),
	)
	return tree, nil
}

// expandNavigation clicks collapsed sidebar categories in rounds until a
// round clicks nothing or the round budget is spent. Expansion is
// best-effort: an evaluation error ends the loop without failing the run.
func (h *Harvester) expandNavigation(ctx context.Context, page sitepdf.Page) {
	for round := 0; round < maxExpandRounds; round++ {
		clicked, err := page.Eval(ctx, expandCollapsedNavJS)
		if err != nil {
			h.logger().Warn("sidebar expansion failed", "round", round, "err", err)
			return
		}
		if clicked == "0" || clicked == "" {
			return
		}
		select {
		case <-ctx.Done():
			return
		case <-time.After(expandSettleDelay):
		}
	}
}

// HarvestAll drives bounded-concurrency harvesting over the leaf sequence.
//
// The returned slice has exactly one fragment per leaf, at the leaf's
// index: results[i] corresponds to leaves[i] regardless of completion
// order. Each worker owns its claimed index exclusively, so slot writes
// need no further synchronization. HarvestAll returns only after every
// worker has finished (a full barrier), and the pool as a whole never
// fails because a single page failed: failed pages yield empty-content
// fragments with the error recorded.
func (h *Harvester) HarvestAll(ctx context.Context, leaves []*sitepdf.NavNode, progress ProgressFunc) []*sitepdf.PageFragment {
	results := make([]*sitepdf.PageFragment, len(leaves))
	total := len(leaves)

	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	var completed atomic.Int64
	var g errgroup.Group
	g.SetLimit(h.concurrency())

	for i, leaf := range leaves {
		g.Go(func() error {
			frag := h.harvestPage(ctx, leaf)
			results[i] = frag

			if progress != nil {
				event := ProgressEvent{
					Type:      ProgressCompleted,
					Completed: int(completed.Add(1)),
					Total:     total,
					Title:     leaf.Title,
					URL:       leaf.URL,
				}
				if frag.Err != nil {
					event.Type = ProgressFailed
					event.Error = frag.Err
				}
				progress(event)
			}
			return nil
		})
	}

	// Workers never return errors; Wait is purely the completion barrier.
	_ = g.Wait()

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}
	return results
}

// harvestPage retrieves and extracts one leaf page. Every failure is
// isolated to this page: the returned fragment is always well-formed, with
// the error recorded and the content left empty on failure.
func (h *Harvester) harvestPage(ctx context.Context, leaf *sitepdf.NavNode) *sitepdf.PageFragment {
	frag := sitepdf.NewFragment(leaf)

	fail := func(err error) *sitepdf.PageFragment {
		frag.Err = err
		h.logger().Warn("page harvest failed",
			"title", leaf.Title,
			"url", leaf.URL,
			"err", err,
		)
		return frag
	}

	if err := h.wait(ctx, leaf.URL); err != nil {
		return fail(err)
	}

	// One isolated page per task, released unconditionally, so peak
	// browser usage stays at O(workers) rather than O(pages).
	page, err := h.Renderer.NewPage(ctx)
	if err != nil {
		return fail(sitepdf.Errorf(sitepdf.EUNAVAILABLE, "acquiring page: %v", err))
	}
	defer page.Close()

	navCtx, cancel := context.WithTimeout(ctx, h.navigateTimeout())
	defer cancel()
	if err := NavigateWithRetryDelays(navCtx, page, leaf.URL, h.retryDelays(), h.logger()); err != nil {
		return fail(fmt.Errorf("navigate: %w", err))
	}

	waitCtx, cancelWait := context.WithTimeout(ctx, h.elementTimeout())
	defer cancelWait()
	if err := page.WaitElement(waitCtx, h.contentSelector()); err != nil {
		return fail(sitepdf.Errorf(sitepdf.ETIMEOUT, "content selector %q not found: %v", h.contentSelector(), err))
	}

	if _, err := page.Eval(ctx, expandDisclosuresJS); err != nil {
		return fail(fmt.Errorf("expanding disclosures: %w", err))
	}
	if _, err := page.Eval(ctx, stripLazyLoadJS); err != nil {
		return fail(fmt.Errorf("stripping lazy-load attributes: %w", err))
	}

	if _, err := page.Eval(ctx, stampAnchorJS, h.contentSelector(), leaf.ID); err != nil {
		return fail(fmt.Errorf("stamping anchor id: %w", err))
	}

	content, err := page.Eval(ctx, extractContentJS, h.contentSelector())
	if err != nil {
		return fail(fmt.Errorf("extracting content: %w", err))
	}
	if content == "" {
		return fail(sitepdf.Errorf(sitepdf.ENOTFOUND, "no content extracted for %q", leaf.URL))
	}

	frag.SetContent(content)
	h.logger().Debug("page harvested",
		"title", leaf.Title,
		"url", leaf.URL,
		"bytes", len(content),
		"hash", frag.ContentHash,
	)
	return frag
}

// wait applies the optional per-domain rate limit before a navigation.
func (h *Harvester) wait(ctx context.Context, rawURL string) error {
	if h.Limiter == nil {
		return nil
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return sitepdf.Errorf(sitepdf.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	return h.Limiter.Wait(ctx, u.Host)
}

func (h *Harvester) concurrency() int {
	if h.Concurrency > 0 {
		return h.Concurrency
	}
	return DefaultConcurrency()
}

func (h *Harvester) contentSelector() string {
	if h.ContentSelector != "" {
		return h.ContentSelector
	}
	return DefaultContentSelector
}

func (h *Harvester) navigateTimeout() time.Duration {
	if h.NavigateTimeout > 0 {
		return h.NavigateTimeout
	}
	return DefaultNavigateTimeout
}

func (h *Harvester) elementTimeout() time.Duration {
	if h.ElementTimeout > 0 {
		return h.ElementTimeout
	}
	return DefaultElementTimeout
}

func (h *Harvester) retryDelays() []time.Duration {
	if h.RetryDelays != nil {
		return h.RetryDelays
	}
	return DefaultRetryDelays()
}

func (h *Harvester) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.New(slog.DiscardHandler)
}
