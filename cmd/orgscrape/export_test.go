package main_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/orgscrape"
	main "github.com/fwojciec/orgscrape/cmd/orgscrape"
	"github.com/fwojciec/orgscrape/fs"
	"github.com/fwojciec/orgscrape/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportCmd_Run(t *testing.T) {
	t.Parallel()

	stored := []*orgscrape.Record{
		{Name: "Picha Eats", Sector: "Food", SourceURL: "https://www.pichaeats.com/"},
		{Name: "Biji-biji", Sector: "Environment", SourceURL: "https://biji-biji.com"},
	}

	t.Run("writes records to a JSON file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "export.json")
		records := &mock.RecordService{
			FindRecordsFn: func(_ context.Context, _ orgscrape.RecordFilter) ([]*orgscrape.Record, error) {
				return stored, nil
			},
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Records: records,
		}

		err := (&main.ExportCmd{Path: path}).Run(deps)

		require.NoError(t, err)
		f, err := os.Open(path)
		require.NoError(t, err)
		defer f.Close()
		got, err := fs.DecodeRecords(f)
		require.NoError(t, err)
		assert.Equal(t, stored, got)
		assert.Contains(t, stdout.String(), "Exported 2 organizations")
	})

	t.Run("writes to stdout for a dash", func(t *testing.T) {
		t.Parallel()

		var got orgscrape.RecordFilter
		records := &mock.RecordService{
			FindRecordsFn: func(_ context.Context, filter orgscrape.RecordFilter) ([]*orgscrape.Record, error) {
				got = filter
				return stored[:1], nil
			},
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Records: records,
		}

		err := (&main.ExportCmd{Path: "-", Sector: "Food"}).Run(deps)

		require.NoError(t, err)
		require.NotNil(t, got.Sector)
		assert.Equal(t, "Food", *got.Sector)
		decoded, err := fs.DecodeRecords(stdout)
		require.NoError(t, err)
		assert.Equal(t, stored[:1], decoded)
	})

	t.Run("writes an empty array when the directory is empty", func(t *testing.T) {
		t.Parallel()

		records := &mock.RecordService{
			FindRecordsFn: func(_ context.Context, _ orgscrape.RecordFilter) ([]*orgscrape.Record, error) {
				return nil, nil
			},
		}
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Records: records,
		}

		err := (&main.ExportCmd{Path: "-"}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "[]\n", stdout.String())
	})
}
