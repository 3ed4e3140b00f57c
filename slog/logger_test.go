package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/orgscrape"
	orgslog "github.com/fwojciec/orgscrape/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"", slog.LevelInfo},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
	}
	for _, tt := range tests {
		got, err := orgslog.ParseLevel(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, got, tt.name)
	}

	_, err := orgslog.ParseLevel("verbose")
	assert.Equal(t, orgscrape.EINVALID, orgscrape.ErrorCode(err))
}

func TestNewLogger(t *testing.T) {
	t.Parallel()

	t.Run("drops records below the level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger, err := orgslog.NewLogger(&buf, "warn")
		require.NoError(t, err)

		logger.Info("hidden")
		logger.Warn("shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "msg=shown")
	})

	t.Run("returns error for an unknown level", func(t *testing.T) {
		t.Parallel()

		_, err := orgslog.NewLogger(&bytes.Buffer{}, "loud")

		require.Error(t, err)
		assert.Equal(t, orgscrape.EINVALID, orgscrape.ErrorCode(err))
	})
}
