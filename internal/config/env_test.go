package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{"AGENDA_OUTPUT_FILE", "AGENDA_LOCALE", "LOG_FILE_PATH", "LOG_LEVEL"}

// clearEnv unsets the config keys and restores them when the test ends.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadEnvConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadEnvConfigFrom(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, Defaults(), cfg)
	assert.Equal(t, "day.xlsx", cfg.OUTPUT_FILE_PATH)
	assert.Equal(t, "en", cfg.AGENDA_LOCALE)
}

func TestLoadEnvConfigFromFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), ".env")
	content := "AGENDA_OUTPUT_FILE=out/agenda.xlsx\nAGENDA_LOCALE=tr\nLOG_LEVEL=DEBUG\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadEnvConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "out/agenda.xlsx", cfg.OUTPUT_FILE_PATH)
	assert.Equal(t, "tr", cfg.AGENDA_LOCALE)
	assert.Equal(t, "debug", cfg.LOG_LEVEL)
	assert.Equal(t, "", cfg.LOG_FILE_PATH)
}

func TestLoadEnvConfigProcessEnvWins(t *testing.T) {
	clearEnv(t)
	t.Setenv("AGENDA_LOCALE", "en")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("AGENDA_LOCALE=tr\n"), 0o644))

	cfg, err := LoadEnvConfigFrom(path)
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.AGENDA_LOCALE)
}

func TestLoadEnvConfigRejectsEmptyOutput(t *testing.T) {
	clearEnv(t)
	t.Setenv("AGENDA_OUTPUT_FILE", " ")

	_, err := LoadEnvConfigFrom()
	assert.Error(t, err)
}
