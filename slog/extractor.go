package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/orgscrape"
)

// Ensure LoggingExtractor implements orgscrape.Extractor.
var _ orgscrape.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging.
type LoggingExtractor struct {
	next   orgscrape.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next orgscrape.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the resulting name and sector.
func (e *LoggingExtractor) Extract(sourceURL, html string) (record *orgscrape.Record, err error) {
	defer func(begin time.Time) {
		var name, sector string
		if record != nil {
			name, sector = record.Name, record.Sector
		}
		e.logger.Debug("extract",
			"url", sourceURL,
			"name", name,
			"sector", sector,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.Extract(sourceURL, html)
}
