package main

import (
	"fmt"

	"github.com/fwojciec/orgscrape"
	"github.com/fwojciec/orgscrape/fs"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	var filter orgscrape.RecordFilter
	if c.Sector != "" {
		filter.Sector = &c.Sector
	}

	records, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", orgscrape.ErrorMessage(err))
		return err
	}

	if c.Path == "-" {
		return fs.EncodeRecords(deps.Stdout, records)
	}

	w := fs.NewRecordWriter(c.Path)
	if err := w.SaveRecords(deps.Ctx, records); err != nil {
		_ = w.Abort()
		fmt.Fprintf(deps.Stderr, "error: %s\n", orgscrape.ErrorMessage(err))
		return err
	}
	if err := w.Commit(); err != nil {
		fmt.Fprintf(deps.Stderr, "error writing %s: %v\n", c.Path, err)
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported %d organizations to %s\n", len(records), c.Path)
	return nil
}
