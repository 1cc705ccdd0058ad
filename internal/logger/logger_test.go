package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tphakala/vowelnet/internal/logger"
)

// decodeLines parses JSON log lines from a buffer
func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var records []map[string]any
	for line := range strings.SplitSeq(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		records = append(records, rec)
	}
	return records
}

func TestSlogLoggerLevels(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.NewSlogLogger(buf, logger.LogLevelInfo, time.UTC)

	log.Debug("hidden")
	log.Info("shown", logger.Int("count", 3))
	log.Log(logger.LogLevelTrace, "hidden too")
	log.Error("failure", logger.Error(io.EOF))

	records := decodeLines(t, buf)
	require.Len(t, records, 2)
	assert.Equal(t, "shown", records[0]["msg"])
	assert.InDelta(t, 3, records[0]["count"], 0)
	assert.Equal(t, "EOF", records[1]["error"])
}

func TestTraceLevelThroughLog(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.NewSlogLogger(buf, logger.LogLevelTrace, time.UTC)

	log.Log(logger.LogLevelTrace, "formant frame", logger.Float64("f1", 700))

	records := decodeLines(t, buf)
	require.Len(t, records, 1)
	assert.Equal(t, "formant frame", records[0]["msg"])
	assert.Equal(t, "TRACE", records[0]["level"])
}

func TestModuleScopingAndFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	base := logger.NewSlogLogger(buf, logger.LogLevelDebug, nil)

	log := base.Module("realtime").Module("collect").With(logger.String("vowel", "A"))
	log.Debug("sample", logger.Float64("f1", 712.34567))

	records := decodeLines(t, buf)
	require.Len(t, records, 1)
	assert.Equal(t, "realtime.collect", records[0]["module"])
	assert.Equal(t, "A", records[0]["vowel"])
	assert.InDelta(t, 712.346, records[0]["f1"], 1e-9)
}

func TestWithContextTraceID(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log := logger.NewSlogLogger(buf, logger.LogLevelInfo, nil)

	ctx := logger.WithTraceID(context.Background(), "session-1")
	log.WithContext(ctx).Info("started", logger.Duration("interval", 100*time.Millisecond))
	log.WithContext(context.Background()).Info("no trace")

	records := decodeLines(t, buf)
	require.Len(t, records, 2)
	assert.Equal(t, "session-1", records[0]["trace_id"])
	assert.Equal(t, "100ms", records[0]["interval"])
	assert.NotContains(t, records[1], "trace_id")
}

func TestCentralLoggerFileOutput(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "logs", "vowelnet.log")

	central, err := logger.NewCentralLogger(&logger.LoggingConfig{
		DefaultLevel: "debug",
		Console:      &logger.ConsoleOutput{Enabled: false},
		FileOutput:   &logger.FileOutput{Enabled: true, Path: path},
		ModuleLevels: map[string]string{"dataset": "warn"},
	})
	require.NoError(t, err)

	central.Module("classifier").Debug("fitted", logger.Int("examples", 12))
	central.Module("dataset").Info("suppressed")
	require.NoError(t, central.Flush())
	require.NoError(t, central.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"module":"classifier"`)
	assert.NotContains(t, string(data), "suppressed")
}

func TestCentralLoggerRejectsBadInput(t *testing.T) {
	t.Parallel()

	_, err := logger.NewCentralLogger(nil)
	require.Error(t, err)

	_, err = logger.NewCentralLogger(&logger.LoggingConfig{Timezone: "Not/AZone"})
	require.Error(t, err)
}
