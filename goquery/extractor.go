package goquery

import (
	"time"

	"github.com/fwojciec/orgscrape"
)

// Ensure Extractor implements orgscrape.Extractor at compile time.
var _ orgscrape.Extractor = (*Extractor)(nil)

// Extractor assembles records from pages. It holds no per-page state and
// is safe for concurrent use.
type Extractor struct {
	taxonomy     orgscrape.Taxonomy
	emails       *orgscrape.EmailMatcher
	phones       *orgscrape.PhoneMatcher
	title        *orgscrape.TitleSuffix
	hostSuffixes []string
	now          func() time.Time
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithTaxonomy sets the taxonomy used for sector classification.
// Defaults to orgscrape.DefaultTaxonomy().
func WithTaxonomy(t orgscrape.Taxonomy) Option {
	return func(e *Extractor) {
		e.taxonomy = t
	}
}

// WithEmailBlocklist replaces the substrings that disqualify an address.
func WithEmailBlocklist(blocklist []string) Option {
	return func(e *Extractor) {
		e.emails = orgscrape.NewEmailMatcher(blocklist)
	}
}

// WithHostSuffixes sets the suffixes stripped when a name is derived from
// the URL. Defaults to orgscrape.DefaultHostSuffixes.
func WithHostSuffixes(suffixes []string) Option {
	return func(e *Extractor) {
		e.hostSuffixes = suffixes
	}
}

// WithNow sets the clock used to stamp records.
func WithNow(now func() time.Time) Option {
	return func(e *Extractor) {
		e.now = now
	}
}

// NewExtractor creates a new Extractor.
func NewExtractor(opts ...Option) *Extractor {
	e := &Extractor{
		taxonomy:     orgscrape.DefaultTaxonomy(),
		emails:       orgscrape.NewEmailMatcher(orgscrape.DefaultEmailBlocklist),
		phones:       orgscrape.NewPhoneMatcher(),
		title:        orgscrape.NewTitleSuffix(),
		hostSuffixes: orgscrape.DefaultHostSuffixes,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract parses html and assembles the record for sourceURL.
func (e *Extractor) Extract(sourceURL, html string) (*orgscrape.Record, error) {
	doc, err := Parse(html)
	if err != nil {
		return nil, err
	}
	return e.Assemble(sourceURL, doc), nil
}

// Assemble runs every field extractor against doc and composes the record.
func (e *Extractor) Assemble(sourceURL string, doc *Document) *orgscrape.Record {
	description := ExtractDescription(doc)
	contact := ExtractContact(doc, e.emails, e.phones)
	now := e.now().UTC()

	return &orgscrape.Record{
		Name:           ExtractName(doc, sourceURL, e.title, e.hostSuffixes),
		Email:          contact.Email,
		SourceURL:      sourceURL,
		Sector:         e.taxonomy.Classify(doc.FullText(), description),
		Description:    description,
		ContactSummary: contact.Summary,
		Status:         orgscrape.StatusAssumed,
		News:           ExtractNews(doc),
		Programs:       ExtractPrograms(doc),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
