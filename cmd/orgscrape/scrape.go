package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/orgscrape"
	"github.com/fwojciec/orgscrape/batch"
	"github.com/fwojciec/orgscrape/fs"
)

// Run executes the scrape command.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	urls := append([]string(nil), c.URLs...)
	if c.File != "" {
		fromFile, err := c.readFile()
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", orgscrape.ErrorMessage(err))
			return err
		}
		urls = append(urls, fromFile...)
	}
	if len(urls) == 0 {
		err := orgscrape.Errorf(orgscrape.EINVALID, "no URLs given; pass URLs as arguments or with --file")
		fmt.Fprintf(deps.Stderr, "error: %s\n", orgscrape.ErrorMessage(err))
		return err
	}

	sink := &teeSink{sinks: []orgscrape.RecordSink{deps.Records}}
	var out *fs.RecordWriter
	if c.Out != "" {
		out = fs.NewRecordWriter(c.Out)
		sink.sinks = append(sink.sinks, out)
	}
	deps.Runner.Sink = sink

	progress := func(event batch.ProgressEvent) {
		switch event.Type {
		case batch.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Scraping %d URLs\n", event.Total)
		case batch.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] ok   %s (%s)\n", event.Completed, event.Total, event.URL, event.Name)
		case batch.ProgressSkipped:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] skip %s: %s\n", event.Completed, event.Total, event.URL, orgscrape.ErrorMessage(event.Error))
		case batch.ProgressFailed:
			fmt.Fprintf(deps.Stderr, "  [%d/%d] fail %s: %v\n", event.Completed, event.Total, event.URL, event.Error)
		case batch.ProgressSaved:
			fmt.Fprintf(deps.Stdout, "  saved %d/%d records\n", event.Completed, event.Total)
		}
	}

	result, err := deps.Runner.Run(deps.Ctx, urls, progress)
	if err != nil {
		if out != nil {
			_ = out.Abort()
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", orgscrape.ErrorMessage(err))
		return err
	}
	if out != nil {
		if err := out.Commit(); err != nil {
			fmt.Fprintf(deps.Stderr, "error writing %s: %v\n", c.Out, err)
			return err
		}
	}

	fmt.Fprintf(deps.Stdout, "Saved %d records (%d skipped, %d failed, %d duplicates)\n",
		result.Saved, result.Skipped, result.Failed, result.Duplicates)
	if out != nil {
		fmt.Fprintf(deps.Stdout, "Wrote %s\n", c.Out)
	}
	return nil
}

func (c *ScrapeCmd) readFile() ([]string, error) {
	if c.File == "-" {
		return readURLs(os.Stdin)
	}
	f, err := os.Open(c.File)
	if err != nil {
		return nil, orgscrape.Errorf(orgscrape.EINVALID, "cannot open URL file %q", c.File)
	}
	defer f.Close()
	return readURLs(f)
}

// readURLs reads one URL per line. Blank lines and lines starting with '#'
// are ignored.
func readURLs(r io.Reader) ([]string, error) {
	var urls []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading URL list: %w", err)
	}
	return urls, nil
}

// teeSink saves each batch to every sink in order.
type teeSink struct {
	sinks []orgscrape.RecordSink
}

func (t *teeSink) SaveRecords(ctx context.Context, records []*orgscrape.Record) error {
	for _, s := range t.sinks {
		if err := s.SaveRecords(ctx, records); err != nil {
			return err
		}
	}
	return nil
}
