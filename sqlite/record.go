package sqlite

import (
	"context"
	"database/sql"
	"encoding/hex"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/orgscrape"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ orgscrape.RecordService = (*RecordService)(nil)

// RecordService implements orgscrape.RecordService using SQLite.
// Records are keyed by website URL; saving a known URL updates it in place.
type RecordService struct {
	db *DB
}

// NewRecordService creates a new RecordService.
func NewRecordService(db *DB) *RecordService {
	return &RecordService{db: db}
}

const recordColumns = `website_url, company_name, email, sector, description, contact_info,
	social_enterprise_status, related_news_updates, program_participation, created_at, updated_at`

// hashRecord computes xxHash over the content fields of r and returns a hex string.
// Timestamps are excluded so re-extracting an unchanged page hashes the same.
func hashRecord(r *orgscrape.Record) string {
	d := xxhash.New()
	for _, field := range []string{
		r.Name, r.Email, r.Sector, r.Description, r.ContactSummary,
		r.Status, r.News, r.Programs,
	} {
		_, _ = d.WriteString(field)
		_, _ = d.Write([]byte{0})
	}
	return hex.EncodeToString(d.Sum(nil))
}

// SaveRecords upserts records in a single transaction.
// New URLs are inserted; known URLs keep their created_at and only get a
// fresh updated_at when their content changed. The stored timestamps are
// written back to each record.
func (s *RecordService) SaveRecords(ctx context.Context, records []*orgscrape.Record) error {
	for _, r := range records {
		if err := r.Validate(); err != nil {
			return err
		}
	}

	tx, err := s.db.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	now := time.Now().UTC().Truncate(time.Second)
	stamps := make([]timestamps, len(records))
	for i, r := range records {
		if stamps[i], err = s.saveRecord(ctx, tx, r, now); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}
	for i, r := range records {
		r.CreatedAt, r.UpdatedAt = stamps[i].created, stamps[i].updated
	}
	return nil
}

// timestamps are the stored created_at and updated_at of one record.
type timestamps struct {
	created, updated time.Time
}

// saveRecord upserts r within tx and returns the timestamps stored for it.
// r is not modified.
func (s *RecordService) saveRecord(ctx context.Context, tx *sql.Tx, r *orgscrape.Record, now time.Time) (timestamps, error) {
	hash := hashRecord(r)

	var storedHash, createdAt, updatedAt string
	err := tx.QueryRowContext(ctx, `
		SELECT content_hash, created_at, updated_at FROM companies WHERE website_url = ?
	`, r.SourceURL).Scan(&storedHash, &createdAt, &updatedAt)

	if err == sql.ErrNoRows {
		ts := timestamps{created: r.CreatedAt, updated: r.UpdatedAt}
		if ts.created.IsZero() {
			ts.created = now
		}
		if ts.updated.IsZero() {
			ts.updated = ts.created
		}
		ts.created = ts.created.UTC().Truncate(time.Second)
		ts.updated = ts.updated.UTC().Truncate(time.Second)

		_, err := tx.ExecContext(ctx, `
			INSERT INTO companies (id, `+recordColumns+`, content_hash)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		`, uuid.New().String(), r.SourceURL, r.Name, r.Email, r.Sector, r.Description,
			r.ContactSummary, r.Status, r.News, r.Programs,
			encodeTime(ts.created), encodeTime(ts.updated), hash)
		return ts, err
	}
	if err != nil {
		return timestamps{}, err
	}

	var ts timestamps
	if ts.created, err = decodeTime(createdAt, "created_at"); err != nil {
		return timestamps{}, err
	}
	if storedHash == hash {
		ts.updated, err = decodeTime(updatedAt, "updated_at")
		return ts, err
	}

	ts.updated = now
	_, err = tx.ExecContext(ctx, `
		UPDATE companies
		SET company_name = ?, email = ?, sector = ?, description = ?, contact_info = ?,
			social_enterprise_status = ?, related_news_updates = ?, program_participation = ?,
			content_hash = ?, updated_at = ?
		WHERE website_url = ?
	`, r.Name, r.Email, r.Sector, r.Description, r.ContactSummary, r.Status, r.News, r.Programs,
		hash, encodeTime(ts.updated), r.SourceURL)
	return ts, err
}

// scanner is implemented by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(row scanner) (*orgscrape.Record, error) {
	var r orgscrape.Record
	var createdAt, updatedAt string

	if err := row.Scan(&r.SourceURL, &r.Name, &r.Email, &r.Sector, &r.Description,
		&r.ContactSummary, &r.Status, &r.News, &r.Programs, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	var err error
	if r.CreatedAt, err = decodeTime(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if r.UpdatedAt, err = decodeTime(updatedAt, "updated_at"); err != nil {
		return nil, err
	}
	return &r, nil
}

// FindRecordByURL retrieves a record by its website URL.
func (s *RecordService) FindRecordByURL(ctx context.Context, url string) (*orgscrape.Record, error) {
	r, err := scanRecord(s.db.QueryRowContext(ctx,
		"SELECT "+recordColumns+" FROM companies WHERE website_url = ?", url))
	if err == sql.ErrNoRows {
		return nil, orgscrape.Errorf(orgscrape.ENOTFOUND, "record not found")
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// FindRecords retrieves records matching the filter, newest first.
func (s *RecordService) FindRecords(ctx context.Context, filter orgscrape.RecordFilter) ([]*orgscrape.Record, error) {
	q := newSelect(recordColumns, "companies")
	if filter.Sector != nil {
		q.where("sector = ?", *filter.Sector)
	}
	if filter.Name != nil {
		// LIKE is case-insensitive for ASCII in SQLite.
		q.where(`company_name LIKE ? ESCAPE '\'`, containsPattern(*filter.Name))
	}
	q.orderBy("created_at DESC, company_name ASC")
	q.paginate(filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, q.String(), q.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*orgscrape.Record
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}

	return records, rows.Err()
}

// UpdateRecord applies upd to the record stored under url.
func (s *RecordService) UpdateRecord(ctx context.Context, url string, upd orgscrape.RecordUpdate) (*orgscrape.Record, error) {
	r, err := s.FindRecordByURL(ctx, url)
	if err != nil {
		return nil, err
	}

	if upd.News != nil {
		r.News = orgscrape.Truncate(*upd.News, orgscrape.MaxSignalLen)
	}
	if upd.Programs != nil {
		r.Programs = orgscrape.Truncate(*upd.Programs, orgscrape.MaxSignalLen)
	}
	r.UpdatedAt = time.Now().UTC().Truncate(time.Second)

	_, err = s.db.ExecContext(ctx, `
		UPDATE companies
		SET related_news_updates = ?, program_participation = ?, content_hash = ?, updated_at = ?
		WHERE website_url = ?
	`, r.News, r.Programs, hashRecord(r), encodeTime(r.UpdatedAt), url)
	if err != nil {
		return nil, err
	}

	return r, nil
}

// CountBySector returns the number of stored records per sector, largest first.
func (s *RecordService) CountBySector(ctx context.Context) ([]orgscrape.SectorCount, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT sector, COUNT(*) FROM companies
		GROUP BY sector
		ORDER BY COUNT(*) DESC, sector ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []orgscrape.SectorCount
	for rows.Next() {
		var sc orgscrape.SectorCount
		if err := rows.Scan(&sc.Sector, &sc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, sc)
	}

	return counts, rows.Err()
}
