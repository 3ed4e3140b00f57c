package main

import (
	orgyaml "github.com/fwojciec/orgscrape/yaml"
)

// Run executes the taxonomy command.
func (c *TaxonomyCmd) Run(deps *Dependencies) error {
	return orgyaml.EncodeTaxonomy(deps.Stdout, deps.Taxonomy)
}
