package logger

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()

	assert.Equal(t, Config{
		Level:      "info",
		Format:     "console",
		Output:     "stdout",
		TimeFormat: defaultTimeFormat,
	}, cfg)

	kept := Config{Level: "debug", Format: "json", Output: "stderr", TimeFormat: "15:04"}.withDefaults()
	assert.Equal(t, "debug", kept.Level)
	assert.Equal(t, "15:04", kept.TimeFormat)
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{name: "zero config"},
		{name: "json to stderr", cfg: Config{Format: "json", Output: "stderr"}},
		{name: "console to file", cfg: Config{Output: filepath.Join(t.TempDir(), "crm.log")}},
		{name: "unknown level", cfg: Config{Level: "chatty"}, wantErr: "log level"},
		{name: "unknown format", cfg: Config{Format: "xml"}, wantErr: "log format"},
		{
			name:    "unwritable output file",
			cfg:     Config{Output: filepath.Join(t.TempDir(), "missing", "dir", "crm.log")},
			wantErr: "open log output",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.cfg)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Nil(t, l)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, l)
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"DEBUG":   zapcore.DebugLevel,
		" info ":  zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"Warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"fatal":   zapcore.FatalLevel,
	}
	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ParseLevel(name)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := ParseLevel("loud")
		assert.Error(t, err)
	})
}

func readEntries(t *testing.T, path string) []map[string]any {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var entries []map[string]any
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var e map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &e))
		entries = append(entries, e)
	}
	require.NoError(t, sc.Err())
	return entries
}

func TestNew_JSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crm.log")

	l, err := New(Config{Level: "info", Format: "json", Output: path})
	require.NoError(t, err)

	l.Debug("hidden")
	l.Named("introspect").Info("catalog loaded", zap.Int("relations", 23))
	require.NoError(t, l.Sync())

	entries := readEntries(t, path)
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "catalog loaded", e["msg"])
	assert.Equal(t, "info", e["level"])
	assert.Equal(t, "introspect", e["logger"])
	assert.Equal(t, float64(23), e["relations"])
	assert.Contains(t, e, "time")
	assert.Contains(t, e, "caller")
}

func TestNew_ConsoleFileHasNoColor(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crm.log")

	l, err := New(Config{Format: "console", Output: path})
	require.NoError(t, err)
	l.Warn("renewals overdue")
	require.NoError(t, l.Sync())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "WARN")
	assert.False(t, strings.Contains(string(content), "\x1b["))
}

func TestSync(t *testing.T) {
	assert.NoError(t, Sync(zap.NewNop()))

	l, err := New(Config{Output: "stderr"})
	require.NoError(t, err)
	assert.NoError(t, Sync(l))
}
