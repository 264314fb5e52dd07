package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	cfgDir := filepath.Join(dir, "clockwise")
	require.NoError(t, os.MkdirAll(cfgDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(cfgDir, "config.yaml"), []byte(content), 0644))
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg := Load()

	assert.True(t, cfg.Notifications)
	assert.Equal(t, DefaultTickSeconds, cfg.TickSeconds)
	assert.Empty(t, cfg.DatabasePath)
}

func TestLoad_CorruptFileFallsBackToDefaults(t *testing.T) {
	writeConfig(t, "notifications: [not, a, bool")

	cfg := Load()

	assert.True(t, cfg.Notifications)
	assert.Equal(t, DefaultTickSeconds, cfg.TickSeconds)
}

func TestLoad_ReadsValues(t *testing.T) {
	writeConfig(t, "notifications: false\ntick_seconds: 15\ndatabase_path: /tmp/cw.db\n")

	cfg := Load()

	assert.False(t, cfg.Notifications)
	assert.Equal(t, 15, cfg.TickSeconds)
	assert.Equal(t, "/tmp/cw.db", cfg.DatabasePath)
}

func TestLoad_ClampsTickSeconds(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"tick_seconds: 1", MinTickSeconds},
		{"tick_seconds: 600", MaxTickSeconds},
		{"tick_seconds: 45", 45},
	}

	for _, tc := range cases {
		writeConfig(t, tc.raw)
		assert.Equal(t, tc.want, Load().TickSeconds, tc.raw)
	}
}
