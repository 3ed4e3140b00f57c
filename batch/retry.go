package batch

import (
	"context"
	"time"

	"github.com/fwojciec/orgscrape"
)

// FetchFunc fetches the HTML served at url.
type FetchFunc func(ctx context.Context, url string) (string, error)

// RetryFunc is told about each retry before its delay starts. attempt
// counts from 1, so the first retry is attempt 2.
type RetryFunc func(url string, attempt int, err error)

// DefaultRetryDelays returns the pauses before each retry: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}
}

// FetchWithRetryDelays calls fetch once, then once more after each delay
// while it keeps failing. EINVALID errors are final. When every attempt
// fails the last error is returned; when ctx ends first, ctx.Err() is.
func FetchWithRetryDelays(ctx context.Context, url string, fetch FetchFunc, onRetry RetryFunc, delays []time.Duration) (string, error) {
	html, err := fetch(ctx, url)
	for i, delay := range delays {
		if err == nil || orgscrape.ErrorCode(err) == orgscrape.EINVALID {
			break
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		if onRetry != nil {
			onRetry(url, i+2, err)
		}
		if err := sleep(ctx, delay); err != nil {
			return "", err
		}
		html, err = fetch(ctx, url)
	}
	if err != nil {
		return "", err
	}
	return html, nil
}

func sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
