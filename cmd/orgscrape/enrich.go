package main

import (
	"fmt"

	"github.com/fwojciec/orgscrape"
)

// Run executes the enrich command.
func (c *EnrichCmd) Run(deps *Dependencies) error {
	filter := orgscrape.RecordFilter{Limit: c.Limit}
	if c.Sector != "" {
		filter.Sector = &c.Sector
	}

	records, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", orgscrape.ErrorMessage(err))
		return err
	}

	var updated int
	for _, r := range records {
		if err := deps.Ctx.Err(); err != nil {
			return err
		}

		items, err := deps.News.SearchNews(deps.Ctx, r.Name, c.Max)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", r.Name, err)
			continue
		}
		news := orgscrape.FormatNews(items)
		if news == "" {
			continue
		}

		if _, err := deps.Records.UpdateRecord(deps.Ctx, r.SourceURL, orgscrape.RecordUpdate{News: &news}); err != nil {
			fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", r.Name, orgscrape.ErrorMessage(err))
			continue
		}
		updated++
		fmt.Fprintf(deps.Stdout, "  %s: %d news items\n", r.Name, len(items))
	}

	fmt.Fprintf(deps.Stdout, "Updated %d of %d organizations\n", updated, len(records))
	return nil
}
