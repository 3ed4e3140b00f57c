package batch_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/fwojciec/orgscrape/batch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// waitTwice returns how long the second of two back-to-back waits took.
func waitTwice(t *testing.T, l *batch.DomainLimiter, first, second string) time.Duration {
	t.Helper()
	require.NoError(t, l.Wait(context.Background(), first))
	start := time.Now()
	require.NoError(t, l.Wait(context.Background(), second))
	return time.Since(start)
}

func TestDomainLimiter_Wait(t *testing.T) {
	t.Parallel()

	t.Run("first request to a host is immediate", func(t *testing.T) {
		t.Parallel()

		start := time.Now()
		err := batch.NewDomainLimiter(10).Wait(context.Background(), "pichaeats.com")

		require.NoError(t, err)
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("spaces requests to the same host", func(t *testing.T) {
		t.Parallel()

		elapsed := waitTwice(t, batch.NewDomainLimiter(10), "pichaeats.com", "pichaeats.com")

		assert.GreaterOrEqual(t, elapsed, 80*time.Millisecond)
	})

	t.Run("treats www and case variants as one host", func(t *testing.T) {
		t.Parallel()

		elapsed := waitTwice(t, batch.NewDomainLimiter(10), "www.PichaEats.com", "pichaeats.com")

		assert.GreaterOrEqual(t, elapsed, 80*time.Millisecond)
	})

	t.Run("does not delay other hosts", func(t *testing.T) {
		t.Parallel()

		elapsed := waitTwice(t, batch.NewDomainLimiter(10), "pichaeats.com", "wildasia.org")

		assert.Less(t, elapsed, 50*time.Millisecond)
	})

	t.Run("never waits when disabled", func(t *testing.T) {
		t.Parallel()

		l := batch.NewDomainLimiter(0)
		start := time.Now()
		for range 20 {
			require.NoError(t, l.Wait(context.Background(), "pichaeats.com"))
		}

		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("returns the context error when cancelled while waiting", func(t *testing.T) {
		t.Parallel()

		l := batch.NewDomainLimiter(1)
		require.NoError(t, l.Wait(context.Background(), "pichaeats.com"))

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		assert.Error(t, l.Wait(ctx, "pichaeats.com"))
	})

	t.Run("is safe for concurrent use", func(t *testing.T) {
		t.Parallel()

		l := batch.NewDomainLimiter(200)
		hosts := []string{"a.my", "b.my", "c.my"}

		var wg sync.WaitGroup
		errs := make(chan error, 3*len(hosts))
		for range 3 {
			for _, h := range hosts {
				wg.Add(1)
				go func() {
					defer wg.Done()
					errs <- l.Wait(context.Background(), h)
				}()
			}
		}
		wg.Wait()
		close(errs)

		for err := range errs {
			assert.NoError(t, err)
		}
	})
}
