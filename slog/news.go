package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/orgscrape"
)

// Ensure LoggingNewsService implements orgscrape.NewsService.
var _ orgscrape.NewsService = (*LoggingNewsService)(nil)

// LoggingNewsService wraps a NewsService with debug logging.
type LoggingNewsService struct {
	next   orgscrape.NewsService
	logger *slog.Logger
}

// NewLoggingNewsService creates a new LoggingNewsService.
func NewLoggingNewsService(next orgscrape.NewsService, logger *slog.Logger) *LoggingNewsService {
	return &LoggingNewsService{next: next, logger: logger}
}

// SearchNews delegates to the wrapped service and logs the item count.
func (s *LoggingNewsService) SearchNews(ctx context.Context, name string, limit int) (items []orgscrape.NewsItem, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("news search",
			"name", name,
			"count", len(items),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.SearchNews(ctx, name, limit)
}
