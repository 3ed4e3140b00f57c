package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/orgscrape"
)

// Run executes the report command.
func (c *ReportCmd) Run(deps *Dependencies) error {
	records, err := deps.Records.FindRecords(deps.Ctx, orgscrape.RecordFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", orgscrape.ErrorMessage(err))
		return err
	}
	records = orgscrape.Search(records, c.Focus)

	report := ""
	if deps.Summarizer != nil && len(records) > 0 {
		report, err = deps.Summarizer.Summarize(deps.Ctx, records, c.Focus)
		if err != nil {
			deps.Logger.Warn("AI report failed, using basic report", "err", err)
			report = ""
		}
	}
	if report == "" {
		report = orgscrape.BasicSummary(records, c.Focus)
	}

	fmt.Fprint(deps.Stdout, report)
	if !strings.HasSuffix(report, "\n") {
		fmt.Fprintln(deps.Stdout)
	}
	return nil
}
