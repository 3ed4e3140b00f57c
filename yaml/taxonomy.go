// Package yaml loads and writes sector taxonomies as YAML files.
package yaml

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/fwojciec/orgscrape"
	"gopkg.in/yaml.v3"
)

// LoadTaxonomy loads a taxonomy from a YAML file.
//
// The file lists sectors in priority order:
//
//	fallback: Other
//	sectors:
//	  - name: Environment
//	    keywords: [environment, green]
//
// Keywords are lowercased. A missing fallback defaults to orgscrape.FallbackSector.
func LoadTaxonomy(path string) (orgscrape.Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return orgscrape.Taxonomy{}, err
	}
	return DecodeTaxonomy(bytes.NewReader(data))
}

// DecodeTaxonomy reads a taxonomy in the LoadTaxonomy format from r.
// Unknown fields are rejected.
func DecodeTaxonomy(r io.Reader) (orgscrape.Taxonomy, error) {
	var tax orgscrape.Taxonomy

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&tax); err != nil {
		if errors.Is(err, io.EOF) {
			return orgscrape.Taxonomy{}, orgscrape.Errorf(orgscrape.EINVALID, "taxonomy file is empty")
		}
		return orgscrape.Taxonomy{}, orgscrape.Errorf(orgscrape.EINVALID, "invalid taxonomy: %v", err)
	}

	if strings.TrimSpace(tax.Fallback) == "" {
		tax.Fallback = orgscrape.FallbackSector
	}
	for i := range tax.Sectors {
		tax.Sectors[i].Name = strings.TrimSpace(tax.Sectors[i].Name)
		for j, kw := range tax.Sectors[i].Keywords {
			tax.Sectors[i].Keywords[j] = strings.ToLower(strings.TrimSpace(kw))
		}
	}

	if err := tax.Validate(); err != nil {
		return orgscrape.Taxonomy{}, err
	}
	return tax, nil
}

// EncodeTaxonomy writes tax to w in the LoadTaxonomy format.
func EncodeTaxonomy(w io.Writer, tax orgscrape.Taxonomy) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(tax); err != nil {
		return err
	}
	return enc.Close()
}
