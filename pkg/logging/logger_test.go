package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntries(t *testing.T, buf *bytes.Buffer) []LogEntry {
	t.Helper()
	var entries []LogEntry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry LogEntry
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestJSONLogger_WritesOneObjectPerLine(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, InfoLevel)

	logger.Info("sweep started", Nodes(20), Degree(4))
	logger.Warn("graph disconnected", Beta(0.4))

	entries := decodeEntries(t, &buf)
	require.Len(t, entries, 2)

	assert.Equal(t, "INFO", entries[0].Level)
	assert.Equal(t, "sweep started", entries[0].Message)
	assert.EqualValues(t, 20, entries[0].Fields["nodes"])
	assert.EqualValues(t, 4, entries[0].Fields["degree"])

	assert.Equal(t, "WARN", entries[1].Level)
	assert.EqualValues(t, 0.4, entries[1].Fields["beta"])
}

func TestJSONLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, WarnLevel)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Warn("shown")
	logger.Error("shown")

	entries := decodeEntries(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "WARN", entries[0].Level)
	assert.Equal(t, "ERROR", entries[1].Level)

	logger.SetLevel(DebugLevel)
	logger.Debug("now visible")
	assert.Len(t, decodeEntries(t, &buf), 3)
}

func TestJSONLogger_WithAccumulatesFields(t *testing.T) {
	var buf bytes.Buffer
	base := NewJSONLogger(&buf, InfoLevel)

	child := base.With(Component("sweep"), RunID("abc"))
	grandchild := child.With(Trial(3))
	grandchild.Info("trial done", Beta(0.2))

	entries := decodeEntries(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "sweep", entries[0].Fields["component"])
	assert.Equal(t, "abc", entries[0].Fields["run_id"])
	assert.EqualValues(t, 3, entries[0].Fields["trial"])
	assert.EqualValues(t, 0.2, entries[0].Fields["beta"])

	// The parent is unaffected by the child's fields
	base.Info("plain")
	entries = decodeEntries(t, &buf)
	assert.Nil(t, entries[1].Fields)
}

func TestJSONLogger_CallSiteFieldOverridesPreset(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, InfoLevel).With(Beta(0))

	logger.Info("rewired", Beta(1))

	entries := decodeEntries(t, &buf)
	require.Len(t, entries, 1)
	assert.EqualValues(t, 1, entries[0].Fields["beta"])
}

func TestFieldConstructors(t *testing.T) {
	assert.Equal(t, Field{Key: "component", Value: "render"}, Component("render"))
	assert.Equal(t, Field{Key: "seed", Value: uint64(42)}, Seed(42))
	assert.Equal(t, Field{Key: "elapsed", Value: "1s"}, Elapsed(time.Second))
	assert.Equal(t, Field{Key: "error", Value: "boom"}, Error(errors.New("boom")))
	assert.Equal(t, Field{Key: "error", Value: nil}, Error(nil))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DebugLevel, ParseLevel("debug"))
	assert.Equal(t, WarnLevel, ParseLevel("WARNING"))
	assert.Equal(t, ErrorLevel, ParseLevel("error"))
	assert.Equal(t, InfoLevel, ParseLevel("garbage"))
}

func TestTimedStage(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONLogger(&buf, InfoLevel)

	stage := StartStage(logger, "render graph", Artifact("graph_beta_0.png"))
	stage.End()

	failing := StartStage(logger, "render curves")
	failing.EndError(errors.New("no data"))

	entries := decodeEntries(t, &buf)
	require.Len(t, entries, 2)

	assert.Equal(t, "INFO", entries[0].Level)
	assert.Equal(t, "render graph", entries[0].Message)
	assert.Equal(t, "graph_beta_0.png", entries[0].Fields["artifact"])
	assert.NotEmpty(t, entries[0].Fields["elapsed"])

	assert.Equal(t, "ERROR", entries[1].Level)
	assert.Equal(t, "no data", entries[1].Fields["error"])
}

func TestNopLogger(t *testing.T) {
	logger := NewNopLogger()
	logger.Info("discarded")
	assert.Equal(t, logger, logger.With(Component("x")))
}
