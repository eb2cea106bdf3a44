package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "patrol.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	rc, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, runtime.GOMAXPROCS(0), rc.Search.Workers)
	assert.Equal(t, "info", rc.Log.Level)
	assert.Equal(t, "text", rc.Log.Format)
	assert.Empty(t, rc.Trace.Path)
	assert.Equal(t, GenConfig{Rows: 10, Cols: 10, Density: 0.1}, rc.Gen)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
search:
  workers: 1
log:
  level: debug
  format: json
trace:
  path: out/trace.json
gen:
  rows: 30
  density: 0.25
  seed: 99
`)
	rc, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, rc.Search.Workers)
	assert.Equal(t, LogConfig{Level: "debug", Format: "json"}, rc.Log)
	assert.Equal(t, "out/trace.json", rc.Trace.Path)
	assert.Equal(t, GenConfig{Rows: 30, Cols: 10, Density: 0.25, Seed: 99}, rc.Gen)
}

func TestLoadInvalid(t *testing.T) {
	testCases := []struct {
		name string
		body string
	}{
		{"negative workers", "search:\n  workers: -2\n"},
		{"bad format", "log:\n  format: xml\n"},
		{"density too high", "gen:\n  density: 1.5\n"},
		{"negative rows", "gen:\n  rows: -1\n"},
		{"not yaml", "search: [\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.body))
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
