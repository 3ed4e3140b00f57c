package main

import (
	"fmt"

	"github.com/fwojciec/orgscrape"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	if c.Counts {
		counts, err := deps.Records.CountBySector(deps.Ctx)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", orgscrape.ErrorMessage(err))
			return err
		}
		if len(counts) == 0 {
			fmt.Fprintln(deps.Stdout, "No organizations found")
			return nil
		}
		for _, sc := range counts {
			fmt.Fprintf(deps.Stdout, "%5d  %s\n", sc.Count, sc.Sector)
		}
		return nil
	}

	filter := orgscrape.RecordFilter{Limit: c.Limit, Offset: c.Offset}
	if c.Sector != "" {
		filter.Sector = &c.Sector
	}
	if c.Name != "" {
		filter.Name = &c.Name
	}

	records, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", orgscrape.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No organizations found")
		return nil
	}

	for _, r := range records {
		fmt.Fprintf(deps.Stdout, "%s  [%s]  %s\n", r.Name, r.Sector, r.SourceURL)
	}
	return nil
}
