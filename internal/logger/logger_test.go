package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func decodeSingle(t *testing.T, buf *bytes.Buffer) logEntry {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	return entry
}

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(buf, "info", FormatJSON)
	require.NoError(t, err)

	log.WithFields(map[string]any{"page": 2, "component": "catalog"}).Info("page fetched")

	entry := decodeSingle(t, buf)
	require.Equal(t, "page fetched", entry["message"])
	require.Equal(t, float64(2), entry["page"])
	require.Equal(t, "catalog", entry["component"])
	require.Equal(t, "info", entry["level"])
	require.Contains(t, entry, "time")
}

func TestLoggerFormattedHelpers(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(buf, "debug", FormatJSON)
	require.NoError(t, err)

	log.With("correlation_id", "abc123").Debugf("fetching ids %d..%d", 11, 20)

	entry := decodeSingle(t, buf)
	require.Equal(t, "fetching ids 11..20", entry["message"])
	require.Equal(t, "abc123", entry["correlation_id"])
	require.Equal(t, "debug", entry["level"])
}

func TestLoggerEmptyLevelMeansInfo(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(buf, "", FormatJSON)
	require.NoError(t, err)

	log.Debugf("hidden %d", 1)
	log.Debug("hidden")
	require.Empty(t, strings.TrimSpace(buf.String()))

	log.Infof("fetched %d entries", 10)
	require.Equal(t, "fetched 10 entries", decodeSingle(t, buf)["message"])
}

func TestLoggerDisabledLevelIsSilent(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(buf, "disabled", FormatJSON)
	require.NoError(t, err)

	log.Error(errors.New("boom"), "failed")
	require.Empty(t, buf.String())
}

func TestLoggerErrorIncludesCause(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(buf, "debug", FormatJSON)
	require.NoError(t, err)

	log.With("page", 1).Error(errors.New("boom"), "failed")

	entry := decodeSingle(t, buf)
	require.Equal(t, "failed", entry["message"])
	require.Equal(t, "boom", entry["error"])
	require.Equal(t, "error", entry["level"])
}

func TestLoggerConsoleFormat(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(buf, "warn", FormatConsole)
	require.NoError(t, err)

	log.With("page", 3).Warn("retrying page")

	out := buf.String()
	require.Contains(t, out, "WRN")
	require.Contains(t, out, "retrying page")
	require.Contains(t, out, "page=3")
	require.NotContains(t, out, "\x1b[", "console output carries no colour codes")
	require.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestNewRejectsBadInput(t *testing.T) {
	t.Parallel()

	_, err := New(&bytes.Buffer{}, "chatty", FormatJSON)
	require.Error(t, err)

	_, err = New(nil, "info", FormatJSON)
	require.Error(t, err)
}

func TestNilAndNopLoggersAreSafe(t *testing.T) {
	t.Parallel()

	var nilLogger *Logger
	require.NotPanics(t, func() {
		nilLogger.Info("ignored")
		nilLogger.Debugf("ignored %d", 1)
		nilLogger.Error(errors.New("ignored"), "ignored")
		require.Nil(t, nilLogger.With("k", "v"))
		require.Nil(t, nilLogger.WithFields(map[string]any{"k": "v"}))
	})

	require.NotPanics(t, func() {
		Nop().WithFields(map[string]any{"k": "v"}).Warn("discarded")
	})
}
