package mock

import (
	"context"

	"github.com/fwojciec/orgscrape"
)

var _ orgscrape.NewsService = (*NewsService)(nil)

// NewsService is a mock implementation of orgscrape.NewsService.
type NewsService struct {
	SearchNewsFn func(ctx context.Context, name string, limit int) ([]orgscrape.NewsItem, error)
}

func (s *NewsService) SearchNews(ctx context.Context, name string, limit int) ([]orgscrape.NewsItem, error) {
	return s.SearchNewsFn(ctx, name, limit)
}

var _ orgscrape.Summarizer = (*Summarizer)(nil)

// Summarizer is a mock implementation of orgscrape.Summarizer.
type Summarizer struct {
	SummarizeFn func(ctx context.Context, records []*orgscrape.Record, focus string) (string, error)
}

func (s *Summarizer) Summarize(ctx context.Context, records []*orgscrape.Record, focus string) (string, error) {
	return s.SummarizeFn(ctx, records, focus)
}
