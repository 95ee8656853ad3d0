package rod

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"sitepdf"
)

// DefaultPageBudget is the default number of pages opened before the browser
// is recycled.
const DefaultPageBudget = 75

// Ensure Renderer implements sitepdf.Renderer at compile time.
var _ sitepdf.Renderer = (*Renderer)(nil)

// Renderer drives a headless Chrome browser over the DevTools protocol.
// Chrome accumulates memory over long runs and the baseline never returns to
// initial levels even with proper page cleanup, so the browser process is
// recycled once the page budget is spent. Recycling only happens while no
// pages are open, so in-flight work never loses its browser.
//
// Renderer is safe for concurrent use by multiple goroutines.
type Renderer struct {
	mu         sync.Mutex
	browser    *rod.Browser
	launcher   *launcher.Launcher
	openPages  int
	pagesSpent int64
	budget     int64
	closed     atomic.Bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithPageBudget sets the number of pages opened before the browser is
// recycled. Defaults to 75 if not specified.
func WithPageBudget(n int64) Option {
	return func(r *Renderer) {
		r.budget = n
	}
}

// NewRenderer launches a headless Chrome browser. Close must be called when
// the Renderer is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{budget: DefaultPageBudget}
	for _, opt := range opts {
		opt(r)
	}

	if err := r.launchBrowser(); err != nil {
		return nil, err
	}

	return r, nil
}

// NewPage creates an isolated browser page. The caller owns the page and must
// call Close on it when done.
func (r *Renderer) NewPage(ctx context.Context) (sitepdf.Page, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	browser := r.acquireBrowser()

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		r.releasePage()
		return nil, fmt.Errorf("creating page: %w", err)
	}

	return &Page{page: page, release: r.releasePage}, nil
}

// Close releases browser resources. Close is safe to call multiple times.
func (r *Renderer) Close() error {
	if !r.closed.CompareAndSwap(false, true) {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	return r.closeBrowser()
}

// acquireBrowser returns the current browser, recycling it first when the
// page budget is spent and no pages are open, and records the new page
// against the budget.
func (r *Renderer) acquireBrowser() *rod.Browser {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.pagesSpent >= r.budget && r.openPages == 0 {
		r.recycleBrowser()
	}

	r.openPages++
	r.pagesSpent++
	return r.browser
}

// releasePage records that a page opened via acquireBrowser is gone.
func (r *Renderer) releasePage() {
	r.mu.Lock()
	r.openPages--
	r.mu.Unlock()
}

// launchBrowser starts a new browser instance with stability flags.
func (r *Renderer) launchBrowser() error {
	lnchr := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Set("disable-hang-monitor").
		Leakless(true).
		Headless(true)

	u, err := lnchr.Launch()
	if err != nil {
		return fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		lnchr.Kill()
		return fmt.Errorf("connecting to browser: %w", err)
	}

	r.browser = browser
	r.launcher = lnchr
	return nil
}

// closeBrowser shuts down the current browser and launcher.
// Must be called with mu held.
func (r *Renderer) closeBrowser() error {
	var err error
	if r.browser != nil {
		err = r.browser.Close()
		r.browser = nil
	}
	if r.launcher != nil {
		r.launcher.Kill()
		r.launcher = nil
	}
	return err
}

// recycleBrowser starts a fresh browser and closes the old one.
// If launching the new browser fails, the old browser is kept.
// Must be called with mu held.
func (r *Renderer) recycleBrowser() {
	oldBrowser := r.browser
	oldLauncher := r.launcher
	r.browser = nil
	r.launcher = nil

	if err := r.launchBrowser(); err != nil {
		r.browser = oldBrowser
		r.launcher = oldLauncher
		return
	}

	if oldBrowser != nil {
		_ = oldBrowser.Close()
	}
	if oldLauncher != nil {
		oldLauncher.Kill()
	}
	r.pagesSpent = 0
}

// LauncherPID returns the process ID of the browser launcher.
// This method exists for testing purposes to verify proper cleanup.
func (r *Renderer) LauncherPID() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.launcher == nil {
		return 0
	}
	return r.launcher.PID()
}
