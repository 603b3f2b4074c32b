package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edvin/camal/internal/config"
)

func TestNewLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, &config.Config{ServiceName: "camal-console", LogLevel: "info"})

	logger.Info().Msg("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "camal-console", line["service"])
	assert.Equal(t, "hello", line["message"])
	assert.Contains(t, line, "time")
}

func TestNewLogger_Level(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, &config.Config{LogLevel: "warn"})

	logger.Info().Msg("dropped")
	assert.Empty(t, buf.String())

	logger.Warn().Msg("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestNewLogger_InvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, &config.Config{LogLevel: "loud"})

	logger.Debug().Msg("dropped")
	logger.Info().Msg("kept")
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), "kept")
}
