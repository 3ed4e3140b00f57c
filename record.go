package orgscrape

import (
	"context"
	"time"
)

// StatusAssumed is the social enterprise status given to every extracted
// record. Source lists are curated, so the status is not derived from content.
const StatusAssumed = "Yes"

// Field length limits, counted in runes.
const (
	MaxDescriptionLen = 500
	MaxContactLen     = 300
	MaxSignalLen      = 200
)

// DescriptionPlaceholder is stored when a page yields no description.
const DescriptionPlaceholder = "Description not available from automated scraping"

// Record represents one organization extracted from one page.
// The JSON shape is the directory export format.
type Record struct {
	Name           string    `json:"company_name"`
	Email          string    `json:"email"`
	SourceURL      string    `json:"website_url"`
	Sector         string    `json:"sector"`
	Description    string    `json:"description"`
	ContactSummary string    `json:"contact_info"`
	Status         string    `json:"social_enterprise_status"`
	News           string    `json:"related_news_updates"`
	Programs       string    `json:"program_participation"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Validate returns an error if the record should not be emitted.
func (r *Record) Validate() error {
	if r.Name == "" {
		return Errorf(EINVALID, "record name required")
	}
	if r.SourceURL == "" {
		return Errorf(EINVALID, "record source URL required")
	}
	return nil
}

// Extractor turns the served HTML of one page into a Record.
type Extractor interface {
	// Extract parses html and assembles a record for sourceURL.
	// Returns EPARSE if the markup cannot be parsed. The returned record
	// is not validated; callers discard records failing Validate.
	Extract(sourceURL, html string) (*Record, error)
}

// RecordSink persists batches of records.
type RecordSink interface {
	SaveRecords(ctx context.Context, records []*Record) error
}

// RecordService represents a service for managing stored records.
type RecordService interface {
	RecordSink

	// FindRecordByURL retrieves a record by its website URL.
	// Returns ENOTFOUND if the record does not exist.
	FindRecordByURL(ctx context.Context, url string) (*Record, error)

	// FindRecords retrieves records matching the filter, newest first.
	FindRecords(ctx context.Context, filter RecordFilter) ([]*Record, error)

	// UpdateRecord applies upd to the record stored under url.
	// Returns ENOTFOUND if the record does not exist.
	UpdateRecord(ctx context.Context, url string, upd RecordUpdate) (*Record, error)

	// CountBySector returns the number of stored records per sector,
	// largest first, ties by sector name.
	CountBySector(ctx context.Context) ([]SectorCount, error)
}

// RecordFilter represents a filter for FindRecords.
type RecordFilter struct {
	Sector *string `json:"sector"`
	Name   *string `json:"name"` // substring, case-insensitive

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RecordUpdate represents a set of fields to update on a record.
type RecordUpdate struct {
	News     *string `json:"news"`
	Programs *string `json:"programs"`
}
