package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &rec))
		out = append(out, rec)
	}
	return out
}

func TestLoggerWritesStructuredRecords(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, Options{Level: "debug", Service: "motor"})

	log.With("run_id", "abc").With("reminder_id", 7).Error("send failed", errors.New("boom"))
	log.Debug("debug line")

	recs := decodeLines(t, &buf)
	require.Len(t, recs, 2)
	assert.Equal(t, "error", recs[0]["level"])
	assert.Equal(t, "send failed", recs[0]["message"])
	assert.Equal(t, "boom", recs[0]["error"])
	assert.Equal(t, "abc", recs[0]["run_id"])
	assert.EqualValues(t, 7, recs[0]["reminder_id"])
	assert.Equal(t, "motor", recs[0]["service"])
	assert.Equal(t, "debug", recs[1]["level"])
}

func TestLoggerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, Options{Level: "warn"})

	log.Info("hidden")
	log.Debug("hidden")
	log.Warn("shown")

	recs := decodeLines(t, &buf)
	require.Len(t, recs, 1)
	assert.Equal(t, "shown", recs[0]["message"])
}

func TestLoggerUnknownLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, Options{Level: "chatty"})

	log.Debug("hidden")
	log.Info("shown")

	recs := decodeLines(t, &buf)
	require.Len(t, recs, 1)
}

func TestNopLoggerDoesNotPanic(t *testing.T) {
	log := NewNop()
	log.With("k", "v").Error("x", nil)
	log.Warn("x")
}
