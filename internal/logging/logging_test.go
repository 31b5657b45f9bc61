package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerWithPath_JSONToWriter(t *testing.T) {
	var buf bytes.Buffer
	result := NewLoggerWithPath(Config{Level: "debug", Format: FormatJSON}, &buf)
	t.Cleanup(func() { _ = result.Close() })

	assert.False(t, result.UsingFile)
	logger := ComponentLogger(result.Logger, "greenops")
	logger.Debug().Str("operation", "aggregate").Msg("aggregated")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "greenops", entry["component"])
	assert.Equal(t, "aggregate", entry["operation"])
}

func TestNewLoggerWithPath_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "ecomood.log")

	result := NewLoggerWithPath(Config{Format: FormatJSON, Output: OutputFile, File: path}, nil)
	require.True(t, result.UsingFile)
	assert.Equal(t, path, result.FilePath)

	result.Logger.Info().Msg("hello")
	require.NoError(t, result.Close())
	require.NoError(t, result.Close(), "closing twice is harmless")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"hello"`)
}

func TestNewLoggerWithPath_FileFallback(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	var buf bytes.Buffer
	result := NewLoggerWithPath(Config{Output: OutputFile, File: filepath.Join(blocker, "x.log")}, &buf)

	assert.False(t, result.UsingFile)
	assert.True(t, result.FallbackUsed)
	assert.NotEmpty(t, result.FallbackReason)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zerolog.ErrorLevel, ParseLevel(" error "))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel(""))
	assert.Equal(t, zerolog.InfoLevel, ParseLevel("chatty"))
}

func TestTraceID(t *testing.T) {
	ctx := context.Background()
	assert.Empty(t, TraceIDFromContext(ctx))

	generated := GetOrGenerateTraceID(ctx)
	assert.Len(t, generated, 26, "ULID string length")

	ctx = ContextWithTraceID(ctx, generated)
	assert.Equal(t, generated, GetOrGenerateTraceID(ctx))
}

func TestTraceHook_AddsTraceID(t *testing.T) {
	var buf bytes.Buffer
	result := NewLoggerWithPath(Config{Format: FormatJSON}, &buf)

	ctx := ContextWithTraceID(context.Background(), "01HZTRACE")
	ctx = result.Logger.WithContext(ctx)

	FromContext(ctx).Info().Ctx(ctx).Msg("traced")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "01HZTRACE", entry["trace_id"])
}

func TestFromContext_NoLogger(t *testing.T) {
	logger := FromContext(context.Background())
	require.NotNil(t, logger)
	logger.Info().Msg("dropped") // must not panic
}
