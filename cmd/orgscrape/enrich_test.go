package main_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/fwojciec/orgscrape"
	main "github.com/fwojciec/orgscrape/cmd/orgscrape"
	"github.com/fwojciec/orgscrape/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrichCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("stores formatted news for each organization", func(t *testing.T) {
		t.Parallel()

		updates := map[string]string{}
		records := &mock.RecordService{
			FindRecordsFn: func(_ context.Context, _ orgscrape.RecordFilter) ([]*orgscrape.Record, error) {
				return []*orgscrape.Record{
					{Name: "Picha Eats", SourceURL: "https://www.pichaeats.com/"},
					{Name: "Quiet Org", SourceURL: "https://quiet.my"},
				}, nil
			},
			UpdateRecordFn: func(_ context.Context, url string, upd orgscrape.RecordUpdate) (*orgscrape.Record, error) {
				require.NotNil(t, upd.News)
				assert.Nil(t, upd.Programs)
				updates[url] = *upd.News
				return &orgscrape.Record{}, nil
			},
		}

		var gotLimit int
		news := &mock.NewsService{
			SearchNewsFn: func(_ context.Context, name string, limit int) ([]orgscrape.NewsItem, error) {
				gotLimit = limit
				if name == "Quiet Org" {
					return []orgscrape.NewsItem{}, nil
				}
				return []orgscrape.NewsItem{{Title: "Picha Eats wins award", Source: "The Star"}}, nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Records: records,
			News:    news,
		}

		err := (&main.EnrichCmd{Max: 3}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, 3, gotLimit)
		require.Len(t, updates, 1)
		assert.Equal(t, orgscrape.FormatNews([]orgscrape.NewsItem{{Title: "Picha Eats wins award", Source: "The Star"}}), updates["https://www.pichaeats.com/"])
		assert.Contains(t, stdout.String(), "Updated 1 of 2 organizations")
	})

	t.Run("continues past news errors", func(t *testing.T) {
		t.Parallel()

		var updated []string
		records := &mock.RecordService{
			FindRecordsFn: func(_ context.Context, _ orgscrape.RecordFilter) ([]*orgscrape.Record, error) {
				return []*orgscrape.Record{
					{Name: "Broken", SourceURL: "https://broken.my"},
					{Name: "Working", SourceURL: "https://working.my"},
				}, nil
			},
			UpdateRecordFn: func(_ context.Context, url string, _ orgscrape.RecordUpdate) (*orgscrape.Record, error) {
				updated = append(updated, url)
				return &orgscrape.Record{}, nil
			},
		}
		news := &mock.NewsService{
			SearchNewsFn: func(_ context.Context, name string, _ int) ([]orgscrape.NewsItem, error) {
				if name == "Broken" {
					return nil, errors.New("HTTP 503")
				}
				return []orgscrape.NewsItem{{Title: "Working expands"}}, nil
			},
		}

		stdout := &bytes.Buffer{}
		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  stderr,
			Records: records,
			News:    news,
		}

		err := (&main.EnrichCmd{Max: 3}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, []string{"https://working.my"}, updated)
		assert.Contains(t, stderr.String(), "skip Broken: HTTP 503")
		assert.Contains(t, stdout.String(), "Updated 1 of 2 organizations")
	})

	t.Run("stops when the context is cancelled", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		records := &mock.RecordService{
			FindRecordsFn: func(_ context.Context, _ orgscrape.RecordFilter) ([]*orgscrape.Record, error) {
				return []*orgscrape.Record{{Name: "Any", SourceURL: "https://any.my"}}, nil
			},
		}
		deps := &main.Dependencies{
			Ctx:     ctx,
			Stdout:  &bytes.Buffer{},
			Stderr:  &bytes.Buffer{},
			Records: records,
			News:    &mock.NewsService{},
		}

		err := (&main.EnrichCmd{Max: 3}).Run(deps)

		require.ErrorIs(t, err, context.Canceled)
	})
}
