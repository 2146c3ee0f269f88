package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvsearch/internal/logging"
)

func TestNew_TextLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(logging.Options{Level: "warn", Output: &buf})
	require.NoError(t, err)

	log.Info("hidden")
	log.Warn("shown", "error", errors.New("boom"))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "err=boom")
}

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := logging.New(logging.Options{Level: "DEBUG", JSON: true, Output: &buf})
	require.NoError(t, err)

	log.Debug("expanded", "state", "1,2")

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "expanded", rec["msg"])
	assert.Equal(t, "1,2", rec["state"])
}

func TestParseLevel(t *testing.T) {
	for in, want := range map[string]slog.Level{
		"":        slog.LevelInfo,
		"debug":   slog.LevelDebug,
		"Warning": slog.LevelWarn,
		"error":   slog.LevelError,
	} {
		got, err := logging.ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := logging.New(logging.Options{Level: "loud"})
	assert.Error(t, err)
}

func TestNewNop(t *testing.T) {
	assert.False(t, logging.NewNop().Enabled(context.Background(), slog.LevelError))
}
