package orgscrape_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/orgscrape"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountSectors(t *testing.T) {
	t.Parallel()

	records := []*orgscrape.Record{
		{Sector: "Food"},
		{Sector: "Environment"},
		{Sector: "Food"},
		{Sector: "Arts"},
	}

	assert.Equal(t, []orgscrape.SectorCount{
		{Sector: "Food", Count: 2},
		{Sector: "Arts", Count: 1},
		{Sector: "Environment", Count: 1},
	}, orgscrape.CountSectors(records))
}

func TestBasicSummary(t *testing.T) {
	t.Parallel()

	t.Run("reports sector distribution and organizations", func(t *testing.T) {
		t.Parallel()

		records := []*orgscrape.Record{
			{Name: "Picha Eats", Sector: "Food", Description: "Refugee chefs"},
			{Name: "Wild Asia", Sector: "Environment", Description: "Sustainable sourcing"},
		}

		out := orgscrape.BasicSummary(records, "food")

		assert.Contains(t, out, `Search term: "food"`)
		assert.Contains(t, out, "Total organizations: 2")
		assert.Contains(t, out, "- Food: 1")
		assert.Contains(t, out, "- Picha Eats (Food): Refugee chefs")
	})

	t.Run("lists at most ten organizations", func(t *testing.T) {
		t.Parallel()

		var records []*orgscrape.Record
		for i := 0; i < 12; i++ {
			records = append(records, &orgscrape.Record{Name: fmt.Sprintf("Org %d", i), Sector: "Arts"})
		}

		out := orgscrape.BasicSummary(records, "")

		assert.Contains(t, out, "Org 9 (Arts)")
		assert.NotContains(t, out, "Org 10 (Arts)")
		assert.Contains(t, out, "and 2 more")
	})

	t.Run("handles no records", func(t *testing.T) {
		t.Parallel()

		out := orgscrape.BasicSummary(nil, "")

		assert.Contains(t, out, "Total organizations: 0")
		assert.NotContains(t, out, "## Sectors")
	})
}

func TestSearch(t *testing.T) {
	t.Parallel()

	records := []*orgscrape.Record{
		{Name: "Picha Eats", Sector: "Food", Description: "Refugee chefs"},
		{Name: "Wild Asia", Sector: "Environment", Description: "Sustainable sourcing"},
		{Name: "Biji-biji", Sector: "Environment", Description: "Upcycled FOOD packaging"},
	}

	t.Run("matches name, sector and description ignoring case", func(t *testing.T) {
		t.Parallel()

		got := orgscrape.Search(records, "food")

		require.Len(t, got, 2)
		assert.Equal(t, "Picha Eats", got[0].Name)
		assert.Equal(t, "Biji-biji", got[1].Name)
	})

	t.Run("returns every record for an empty term", func(t *testing.T) {
		t.Parallel()

		assert.Len(t, orgscrape.Search(records, " "), 3)
	})

	t.Run("returns nothing when no record matches", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, orgscrape.Search(records, "fintech"))
	})
}
