package goquery_test

import (
	"strings"
	"testing"

	"github.com/fwojciec/orgscrape"
	"github.com/fwojciec/orgscrape/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractNews(t *testing.T) {
	t.Parallel()

	t.Run("joins the first three matches in document order", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.Parse(`<div class="news">One</div><div class="news">Two</div>
<div class="news">Three</div><div class="news">Four</div>`)
		require.NoError(t, err)

		assert.Equal(t, "One Two Three", goquery.ExtractNews(doc))
	})

	t.Run("uses the first selector that matches", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.Parse(`<div class="awards">Award winner 2024</div><div class="latest">Latest post</div>`)
		require.NoError(t, err)

		assert.Equal(t, "Latest post", goquery.ExtractNews(doc))
	})

	t.Run("returns empty without a match", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.Parse(`<p>Plain page</p>`)
		require.NoError(t, err)

		assert.Empty(t, goquery.ExtractNews(doc))
	})

	t.Run("never exceeds 200 runes", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.Parse(`<div class="news-item">` + strings.Repeat("headline ", 50) + `</div>`)
		require.NoError(t, err)

		assert.LessOrEqual(t, orgscrape.RuneLen(goquery.ExtractNews(doc)), 200)
	})
}

func TestExtractPrograms(t *testing.T) {
	t.Parallel()

	t.Run("matches class substrings", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.Parse(`<ul><li class="program-card">Refugee chef training</li>
<li class="program-card">Catering for events</li></ul>`)
		require.NoError(t, err)

		assert.Equal(t, "Refugee chef training Catering for events", goquery.ExtractPrograms(doc))
	})

	t.Run("returns empty without a match", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.Parse(`<p>Plain page</p>`)
		require.NoError(t, err)

		assert.Empty(t, goquery.ExtractPrograms(doc))
	})
}
