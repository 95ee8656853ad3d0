package harvest

import (
	"context"
	"log/slog"
	"time"

	"sitepdf"
)

// DefaultRetryDelays returns the backoff delays for navigation retries:
// 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// NavigateWithRetry attempts a page navigation with exponential backoff.
// It retries up to 3 times (4 total attempts) with delays of 1s, 2s, 4s.
func NavigateWithRetry(ctx context.Context, page sitepdf.Page, url string, logger *slog.Logger) error {
	return NavigateWithRetryDelays(ctx, page, url, DefaultRetryDelays(), logger)
}

// NavigateWithRetryDelays is like NavigateWithRetry but allows
// configurable delays. This is useful for testing without waiting for
// real delays.
func NavigateWithRetryDelays(ctx context.Context, page sitepdf.Page, url string, delays []time.Duration, logger *slog.Logger) error {
	maxAttempts := len(delays) + 1 // 1 initial + N retries

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		err := page.Navigate(ctx, url)
		if err == nil {
			return nil
		}
		lastErr = err

		// Don't retry after the last attempt.
		if attempt >= maxAttempts-1 {
			break
		}

		if logger != nil {
			logger.Debug("retrying navigation",
				"url", url,
				"attempt", attempt+2,
				"err", err,
			)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return lastErr
}
