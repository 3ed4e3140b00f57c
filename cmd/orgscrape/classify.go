package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fwojciec/orgscrape"
)

// Run executes the classify command.
func (c *ClassifyCmd) Run(deps *Dependencies) error {
	html, err := os.ReadFile(c.Path)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: cannot read %s: %v\n", c.Path, err)
		return err
	}

	record, err := deps.Extractor.Extract(c.URL, string(html))
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", orgscrape.ErrorMessage(err))
		return err
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(record)
}
