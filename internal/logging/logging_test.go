package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"INFO", slog.LevelInfo, false},
		{" warn ", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"loud", slog.LevelInfo, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func TestNew_RespectsLevelAndFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, slog.LevelWarn, FormatJSON)

	log.Info("hidden")
	log.Warn("shown", "field", "num_options")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"field":"num_options"`)

	buf.Reset()
	New(&buf, slog.LevelInfo, FormatText).Info("plain", "k", 1)
	assert.True(t, strings.Contains(buf.String(), "msg=plain"))
}

func TestOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quiz.log")
	log, closeFn, err := Open(path, slog.LevelInfo)
	require.NoError(t, err)

	log.Info("session started", "session_id", "abc")
	require.NoError(t, closeFn())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"session_id":"abc"`)
}

func TestOpen_EmptyPathDiscards(t *testing.T) {
	log, closeFn, err := Open("", slog.LevelDebug)
	require.NoError(t, err)
	log.Info("nowhere")
	assert.NoError(t, closeFn())
}
