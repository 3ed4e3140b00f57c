package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/orgscrape"
)

// Ensure LoggingRecordService implements orgscrape.RecordService.
var _ orgscrape.RecordService = (*LoggingRecordService)(nil)

// LoggingRecordService wraps a RecordService with logging of writes.
type LoggingRecordService struct {
	next   orgscrape.RecordService
	logger *slog.Logger
}

// NewLoggingRecordService creates a new LoggingRecordService.
func NewLoggingRecordService(next orgscrape.RecordService, logger *slog.Logger) *LoggingRecordService {
	return &LoggingRecordService{next: next, logger: logger}
}

// SaveRecords delegates to the wrapped service and logs the batch size.
func (s *LoggingRecordService) SaveRecords(ctx context.Context, records []*orgscrape.Record) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("save records",
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SaveRecords(ctx, records)
}

// FindRecordByURL delegates to the wrapped service.
func (s *LoggingRecordService) FindRecordByURL(ctx context.Context, url string) (*orgscrape.Record, error) {
	return s.next.FindRecordByURL(ctx, url)
}

// FindRecords delegates to the wrapped service and logs the result count.
func (s *LoggingRecordService) FindRecords(ctx context.Context, filter orgscrape.RecordFilter) (records []*orgscrape.Record, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find records",
			"count", len(records),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindRecords(ctx, filter)
}

// UpdateRecord delegates to the wrapped service and logs the update.
func (s *LoggingRecordService) UpdateRecord(ctx context.Context, url string, upd orgscrape.RecordUpdate) (record *orgscrape.Record, err error) {
	defer func(begin time.Time) {
		s.logger.Info("update record",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.UpdateRecord(ctx, url, upd)
}

// CountBySector delegates to the wrapped service.
func (s *LoggingRecordService) CountBySector(ctx context.Context) ([]orgscrape.SectorCount, error) {
	return s.next.CountBySector(ctx)
}
