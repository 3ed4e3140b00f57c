package mock

import "github.com/fwojciec/orgscrape"

var _ orgscrape.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of orgscrape.Extractor.
type Extractor struct {
	ExtractFn func(sourceURL, html string) (*orgscrape.Record, error)
}

func (e *Extractor) Extract(sourceURL, html string) (*orgscrape.Record, error) {
	return e.ExtractFn(sourceURL, html)
}
