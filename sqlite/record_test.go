package sqlite_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/fwojciec/orgscrape"
	"github.com/fwojciec/orgscrape/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var past = time.Date(2020, 1, 2, 3, 4, 5, 0, time.UTC)

func newRecord(name, url, sector string) *orgscrape.Record {
	return &orgscrape.Record{
		Name:        name,
		SourceURL:   url,
		Sector:      sector,
		Description: name + " description",
		Status:      orgscrape.StatusAssumed,
		CreatedAt:   past,
		UpdatedAt:   past,
	}
}

func TestRecordService_SaveRecords(t *testing.T) {
	t.Parallel()

	t.Run("inserts new records", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRecordService(setupTestDB(t))
		ctx := context.Background()

		r := newRecord("Picha Eats", "https://pichaeats.com/", "Food")
		r.Email = "hello@pichaeats.com"
		r.ContactSummary = "Email: hello@pichaeats.com"
		r.Programs = "Catering"
		require.NoError(t, svc.SaveRecords(ctx, []*orgscrape.Record{r}))

		got, err := svc.FindRecordByURL(ctx, "https://pichaeats.com/")
		require.NoError(t, err)
		assert.Equal(t, r, got)
	})

	t.Run("stamps records without timestamps", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRecordService(setupTestDB(t))
		r := &orgscrape.Record{Name: "Wild Asia", SourceURL: "https://www.wildasia.org/"}

		require.NoError(t, svc.SaveRecords(context.Background(), []*orgscrape.Record{r}))

		assert.False(t, r.CreatedAt.IsZero())
		assert.Equal(t, r.CreatedAt, r.UpdatedAt)
	})

	t.Run("keeps timestamps when content is unchanged", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRecordService(setupTestDB(t))
		ctx := context.Background()
		require.NoError(t, svc.SaveRecords(ctx, []*orgscrape.Record{newRecord("Wild Asia", "https://www.wildasia.org/", "Environment")}))

		again := newRecord("Wild Asia", "https://www.wildasia.org/", "Environment")
		again.CreatedAt = time.Now()
		again.UpdatedAt = time.Now()
		require.NoError(t, svc.SaveRecords(ctx, []*orgscrape.Record{again}))

		assert.Equal(t, past, again.CreatedAt)
		assert.Equal(t, past, again.UpdatedAt)

		got, err := svc.FindRecordByURL(ctx, "https://www.wildasia.org/")
		require.NoError(t, err)
		assert.Equal(t, past, got.UpdatedAt)
	})

	t.Run("updates changed content and keeps created_at", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRecordService(setupTestDB(t))
		ctx := context.Background()
		require.NoError(t, svc.SaveRecords(ctx, []*orgscrape.Record{newRecord("Wild Asia", "https://www.wildasia.org/", "Environment")}))

		changed := newRecord("Wild Asia", "https://www.wildasia.org/", "Environment")
		changed.Description = "Sustainable sourcing in Asia"
		require.NoError(t, svc.SaveRecords(ctx, []*orgscrape.Record{changed}))

		got, err := svc.FindRecordByURL(ctx, "https://www.wildasia.org/")
		require.NoError(t, err)
		assert.Equal(t, "Sustainable sourcing in Asia", got.Description)
		assert.Equal(t, past, got.CreatedAt)
		assert.True(t, got.UpdatedAt.After(past))

		all, err := svc.FindRecords(ctx, orgscrape.RecordFilter{})
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})

	t.Run("rejects invalid records without saving any", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRecordService(setupTestDB(t))
		ctx := context.Background()

		err := svc.SaveRecords(ctx, []*orgscrape.Record{
			newRecord("Wild Asia", "https://www.wildasia.org/", "Environment"),
			{SourceURL: "https://unnamed.example/"},
		})
		require.Error(t, err)
		assert.Equal(t, orgscrape.EINVALID, orgscrape.ErrorCode(err))

		all, err := svc.FindRecords(ctx, orgscrape.RecordFilter{})
		require.NoError(t, err)
		assert.Empty(t, all)
	})

	t.Run("leaves timestamps untouched when the batch rolls back", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewRecordService(db)
		ctx := context.Background()

		_, err := db.ExecContext(ctx, `
			CREATE TRIGGER reject_broken BEFORE INSERT ON companies
			WHEN NEW.website_url = 'https://broken.example/'
			BEGIN SELECT RAISE(ABORT, 'rejected'); END
		`)
		require.NoError(t, err)

		first := &orgscrape.Record{Name: "Wild Asia", SourceURL: "https://www.wildasia.org/"}
		second := &orgscrape.Record{Name: "Broken Org", SourceURL: "https://broken.example/"}

		err = svc.SaveRecords(ctx, []*orgscrape.Record{first, second})

		require.Error(t, err)
		assert.True(t, first.CreatedAt.IsZero())
		assert.True(t, first.UpdatedAt.IsZero())
		_, err = svc.FindRecordByURL(ctx, "https://www.wildasia.org/")
		assert.Equal(t, orgscrape.ENOTFOUND, orgscrape.ErrorCode(err))
	})
}

func TestRecordService_FindRecordByURL(t *testing.T) {
	t.Parallel()

	t.Run("returns not found for unknown url", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRecordService(setupTestDB(t))

		_, err := svc.FindRecordByURL(context.Background(), "https://missing.example/")
		require.Error(t, err)
		assert.Equal(t, orgscrape.ENOTFOUND, orgscrape.ErrorCode(err))
	})
}

func TestRecordService_FindRecords(t *testing.T) {
	t.Parallel()

	seed := func(t *testing.T) *sqlite.RecordService {
		t.Helper()
		svc := sqlite.NewRecordService(setupTestDB(t))
		var records []*orgscrape.Record
		for i, sector := range []string{"Food", "Environment", "Food", "Arts"} {
			r := newRecord(fmt.Sprintf("Org %d", i), fmt.Sprintf("https://org%d.example/", i), sector)
			r.CreatedAt = past.Add(time.Duration(i) * time.Hour)
			records = append(records, r)
		}
		require.NoError(t, svc.SaveRecords(context.Background(), records))
		return svc
	}

	names := func(records []*orgscrape.Record) []string {
		out := make([]string, len(records))
		for i, r := range records {
			out[i] = r.Name
		}
		return out
	}

	t.Run("returns newest first", func(t *testing.T) {
		t.Parallel()

		got, err := seed(t).FindRecords(context.Background(), orgscrape.RecordFilter{})
		require.NoError(t, err)
		assert.Equal(t, []string{"Org 3", "Org 2", "Org 1", "Org 0"}, names(got))
	})

	t.Run("filters by sector", func(t *testing.T) {
		t.Parallel()

		sector := "Food"
		got, err := seed(t).FindRecords(context.Background(), orgscrape.RecordFilter{Sector: &sector})
		require.NoError(t, err)
		assert.Equal(t, []string{"Org 2", "Org 0"}, names(got))
	})

	t.Run("filters by name substring ignoring case", func(t *testing.T) {
		t.Parallel()

		name := "org 1"
		got, err := seed(t).FindRecords(context.Background(), orgscrape.RecordFilter{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, []string{"Org 1"}, names(got))
	})

	t.Run("treats wildcard characters literally", func(t *testing.T) {
		t.Parallel()

		name := "%"
		got, err := seed(t).FindRecords(context.Background(), orgscrape.RecordFilter{Name: &name})
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("paginates", func(t *testing.T) {
		t.Parallel()

		svc := seed(t)
		ctx := context.Background()

		got, err := svc.FindRecords(ctx, orgscrape.RecordFilter{Limit: 2, Offset: 1})
		require.NoError(t, err)
		assert.Equal(t, []string{"Org 2", "Org 1"}, names(got))

		got, err = svc.FindRecords(ctx, orgscrape.RecordFilter{Offset: 3})
		require.NoError(t, err)
		assert.Equal(t, []string{"Org 0"}, names(got))
	})
}

func TestRecordService_UpdateRecord(t *testing.T) {
	t.Parallel()

	t.Run("replaces news and refreshes updated_at", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRecordService(setupTestDB(t))
		ctx := context.Background()
		require.NoError(t, svc.SaveRecords(ctx, []*orgscrape.Record{newRecord("Wild Asia", "https://www.wildasia.org/", "Environment")}))

		news := "Wild Asia wins award (The Star)"
		updated, err := svc.UpdateRecord(ctx, "https://www.wildasia.org/", orgscrape.RecordUpdate{News: &news})
		require.NoError(t, err)
		assert.Equal(t, news, updated.News)
		assert.True(t, updated.UpdatedAt.After(past))

		got, err := svc.FindRecordByURL(ctx, "https://www.wildasia.org/")
		require.NoError(t, err)
		assert.Equal(t, updated, got)
	})

	t.Run("returns not found for unknown url", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRecordService(setupTestDB(t))
		news := "x"

		_, err := svc.UpdateRecord(context.Background(), "https://missing.example/", orgscrape.RecordUpdate{News: &news})
		require.Error(t, err)
		assert.Equal(t, orgscrape.ENOTFOUND, orgscrape.ErrorCode(err))
	})
}

func TestRecordService_CountBySector(t *testing.T) {
	t.Parallel()

	svc := sqlite.NewRecordService(setupTestDB(t))
	ctx := context.Background()
	require.NoError(t, svc.SaveRecords(ctx, []*orgscrape.Record{
		newRecord("A", "https://a.example/", "Food"),
		newRecord("B", "https://b.example/", "Arts"),
		newRecord("C", "https://c.example/", "Food"),
		newRecord("D", "https://d.example/", "Environment"),
	}))

	counts, err := svc.CountBySector(ctx)
	require.NoError(t, err)
	assert.Equal(t, []orgscrape.SectorCount{
		{Sector: "Food", Count: 2},
		{Sector: "Arts", Count: 1},
		{Sector: "Environment", Count: 1},
	}, counts)
}
