package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jan-server/services/image-api/internal/config"
)

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&config.Config{ServiceName: "image-api", LogLevel: "warn", LogFormat: "json"}, &buf)

	log.Info().Msg("dropped")
	log.Warn().Str("model", "dall-e-3").Msg("kept")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "image-api", entry["service"])
	assert.Equal(t, "dall-e-3", entry["model"])
	assert.Equal(t, "warn", entry["level"])
}

func TestNewWithWriter_InvalidLevelFallsBackToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&config.Config{LogLevel: "loud", LogFormat: "json"}, &buf)

	log.Debug().Msg("hidden")
	log.Info().Msg("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestGetLogger_ReturnsInstalledLogger(t *testing.T) {
	var buf bytes.Buffer
	NewWithWriter(&config.Config{ServiceName: "svc", LogLevel: "info", LogFormat: "json"}, &buf)

	l := GetLogger()
	l.Info().Msg("via global")

	assert.Contains(t, buf.String(), "via global")
	assert.Contains(t, buf.String(), `"service":"svc"`)
}
