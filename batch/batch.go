// Package batch provides scrape orchestration for lists of organization pages.
// It coordinates fetching, extraction and storage of one record per page.
package batch

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fwojciec/orgscrape"
	"github.com/fwojciec/orgscrape/bloom"
	"golang.org/x/sync/errgroup"
)

// Defaults applied when Runner fields are zero.
const (
	DefaultConcurrency = 5
	DefaultBatchSize   = 10
	DefaultBatchDelay  = time.Second
)

// Dedupe filter sizing.
const (
	filterMinURLs           = 1000
	filterFalsePositiveRate = 0.0001
)

// Runner scrapes a list of source pages and saves the extracted records.
type Runner struct {
	Fetcher     orgscrape.Fetcher
	Extractor   orgscrape.Extractor
	Sink        orgscrape.RecordSink
	RateLimiter orgscrape.DomainLimiter
	Concurrency int
	RetryDelays []time.Duration
	BatchSize   int
	BatchDelay  time.Duration // negative disables the pause between batches

	// OnRetry, if set, is called before each fetch retry.
	OnRetry RetryFunc
}

// Result holds the outcome of a run.
type Result struct {
	Records    []*orgscrape.Record
	Saved      int
	Skipped    int
	Failed     int
	Duplicates int
}

// ProgressEvent reports progress during a run.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	URL       string
	Name      string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressSkipped
	ProgressFailed
	ProgressSaved
	ProgressFinished
)

// ProgressFunc is a callback for reporting run progress.
type ProgressFunc func(event ProgressEvent)

// pageResult holds the outcome of processing a single URL.
type pageResult struct {
	position int
	url      string
	record   *orgscrape.Record
	skipped  error
	err      error
}

// Run scrapes urls and saves one record per page through Sink.
// Duplicate URLs are scraped once. A page that cannot be fetched, parsed or
// named is counted and reported but never stops the run; a Sink error does.
// Records are saved in input order.
func (r *Runner) Run(ctx context.Context, urls []string, progress ProgressFunc) (*Result, error) {
	if progress == nil {
		progress = func(ProgressEvent) {}
	}

	var result Result
	urls = r.dedupe(urls, &result)
	total := len(urls)

	progress(ProgressEvent{Type: ProgressStarted, Total: total})

	results := r.scrape(ctx, urls, progress)
	if err := ctx.Err(); err != nil {
		return &result, err
	}

	for _, res := range results {
		switch {
		case res.err != nil:
			result.Failed++
		case res.skipped != nil:
			result.Skipped++
		default:
			result.Records = append(result.Records, res.record)
		}
	}

	if err := r.save(ctx, result.Records, &result, progress); err != nil {
		return &result, err
	}

	progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})

	return &result, nil
}

// dedupe drops blank and repeated URLs, keeping first occurrences in order.
func (r *Runner) dedupe(urls []string, result *Result) []string {
	n := uint(len(urls))
	if n < filterMinURLs {
		n = filterMinURLs
	}
	seen := bloom.NewFilter(n, filterFalsePositiveRate)

	out := make([]string, 0, len(urls))
	for _, u := range urls {
		u = strings.TrimSpace(u)
		if u == "" {
			continue
		}
		if seen.TestAndAdd(u) {
			result.Duplicates++
			continue
		}
		out = append(out, u)
	}
	return out
}

// scrape processes urls concurrently and returns results in input order.
func (r *Runner) scrape(ctx context.Context, urls []string, progress ProgressFunc) []pageResult {
	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	resultCh := make(chan pageResult, len(urls))
	var completed atomic.Int64
	total := len(urls)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, u := range urls {
			g.Go(func() error {
				resultCh <- r.processURL(gctx, i, u)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]pageResult, len(urls))
	for res := range resultCh {
		results[res.position] = res
		done := int(completed.Add(1))

		event := ProgressEvent{Completed: done, Total: total, URL: res.url}
		switch {
		case res.err != nil:
			event.Type = ProgressFailed
			event.Error = res.err
		case res.skipped != nil:
			event.Type = ProgressSkipped
			event.Error = res.skipped
		default:
			event.Type = ProgressCompleted
			event.Name = res.record.Name
		}
		progress(event)
	}

	return results
}

// processURL fetches and extracts a single page.
func (r *Runner) processURL(ctx context.Context, position int, rawURL string) pageResult {
	result := pageResult{position: position, url: rawURL}

	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		result.err = orgscrape.Errorf(orgscrape.EINVALID, "invalid url %q", rawURL)
		return result
	}

	if r.RateLimiter != nil {
		if err := r.RateLimiter.Wait(ctx, u.Hostname()); err != nil {
			result.err = err
			return result
		}
	}

	delays := r.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	html, err := FetchWithRetryDelays(ctx, rawURL, r.Fetcher.Fetch, r.OnRetry, delays)
	if err != nil {
		result.err = err
		return result
	}

	record, err := r.Extractor.Extract(rawURL, html)
	if err != nil {
		result.err = err
		return result
	}
	if err := record.Validate(); err != nil {
		result.skipped = err
		return result
	}

	result.record = record
	return result
}

// save writes records through Sink in batches, pausing between batches.
func (r *Runner) save(ctx context.Context, records []*orgscrape.Record, result *Result, progress ProgressFunc) error {
	size := r.BatchSize
	if size <= 0 {
		size = DefaultBatchSize
	}
	delay := r.BatchDelay
	if delay == 0 {
		delay = DefaultBatchDelay
	}

	for start := 0; start < len(records); start += size {
		if start > 0 && delay > 0 {
			if err := sleep(ctx, delay); err != nil {
				return err
			}
		}

		end := min(start+size, len(records))
		if err := r.Sink.SaveRecords(ctx, records[start:end]); err != nil {
			return fmt.Errorf("saving batch %d: %w", start/size+1, err)
		}
		result.Saved += end - start

		progress(ProgressEvent{Type: ProgressSaved, Completed: result.Saved, Total: len(records)})
	}

	return nil
}
