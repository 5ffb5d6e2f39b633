package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"storyhub/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"":      slog.LevelInfo,
		"debug": slog.LevelDebug,
		"INFO":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
	}

	for input, want := range tests {
		got, err := parseLogLevel(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := parseLogLevel("verbose")
	assert.Error(t, err)
}

func TestNewLogger_JSONWithService(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "storyhub"
	cfg.Env.Log.Level = "warn"

	var buf bytes.Buffer
	logger, err := newLogger(&buf, cfg)
	require.NoError(t, err)

	logger.Info("dropped")
	logger.Warn("kept", slog.String("blog_id", "b1"))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "kept", line["msg"])
	assert.Equal(t, "storyhub", line["service"])
	assert.Equal(t, "b1", line["blog_id"])
}
