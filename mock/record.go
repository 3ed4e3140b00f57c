package mock

import (
	"context"

	"github.com/fwojciec/orgscrape"
)

var _ orgscrape.RecordSink = (*RecordSink)(nil)

// RecordSink is a mock implementation of orgscrape.RecordSink.
type RecordSink struct {
	SaveRecordsFn func(ctx context.Context, records []*orgscrape.Record) error
}

func (s *RecordSink) SaveRecords(ctx context.Context, records []*orgscrape.Record) error {
	return s.SaveRecordsFn(ctx, records)
}

var _ orgscrape.RecordService = (*RecordService)(nil)

// RecordService is a mock implementation of orgscrape.RecordService.
type RecordService struct {
	SaveRecordsFn     func(ctx context.Context, records []*orgscrape.Record) error
	FindRecordByURLFn func(ctx context.Context, url string) (*orgscrape.Record, error)
	FindRecordsFn     func(ctx context.Context, filter orgscrape.RecordFilter) ([]*orgscrape.Record, error)
	UpdateRecordFn    func(ctx context.Context, url string, upd orgscrape.RecordUpdate) (*orgscrape.Record, error)
	CountBySectorFn   func(ctx context.Context) ([]orgscrape.SectorCount, error)
}

func (s *RecordService) SaveRecords(ctx context.Context, records []*orgscrape.Record) error {
	return s.SaveRecordsFn(ctx, records)
}

func (s *RecordService) FindRecordByURL(ctx context.Context, url string) (*orgscrape.Record, error) {
	return s.FindRecordByURLFn(ctx, url)
}

func (s *RecordService) FindRecords(ctx context.Context, filter orgscrape.RecordFilter) ([]*orgscrape.Record, error) {
	return s.FindRecordsFn(ctx, filter)
}

func (s *RecordService) UpdateRecord(ctx context.Context, url string, upd orgscrape.RecordUpdate) (*orgscrape.Record, error) {
	return s.UpdateRecordFn(ctx, url, upd)
}

func (s *RecordService) CountBySector(ctx context.Context) ([]orgscrape.SectorCount, error) {
	return s.CountBySectorFn(ctx)
}
