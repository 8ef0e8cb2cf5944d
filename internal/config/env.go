package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

const DefaultEnvFile = ".env"

// EnvConfig holds the settings read from the environment.
type EnvConfig struct {
	OUTPUT_FILE_PATH string
	AGENDA_LOCALE    string
	LOG_FILE_PATH    string
	LOG_LEVEL        string
}

// DefaultEnvConfig is filled by LoadEnvConfig.
var DefaultEnvConfig = Defaults()

// Defaults returns the configuration used when nothing is set.
func Defaults() EnvConfig {
	return EnvConfig{
		OUTPUT_FILE_PATH: "day.xlsx",
		AGENDA_LOCALE:    "en",
		LOG_FILE_PATH:    "",
		LOG_LEVEL:        "info",
	}
}

// LoadEnvConfig loads DefaultEnvFile if present and reads the environment into DefaultEnvConfig.
func LoadEnvConfig() error {
	cfg, err := LoadEnvConfigFrom(DefaultEnvFile)
	if err != nil {
		return err
	}
	DefaultEnvConfig = cfg
	return nil
}

// LoadEnvConfigFrom loads the given dotenv files, skipping missing ones, and
// returns the resulting configuration. Variables already set in the process
// environment win over the files.
func LoadEnvConfigFrom(files ...string) (EnvConfig, error) {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return EnvConfig{}, fmt.Errorf("load %s: %w", file, err)
		}
	}

	cfg := Defaults()
	cfg.OUTPUT_FILE_PATH = getEnv("AGENDA_OUTPUT_FILE", cfg.OUTPUT_FILE_PATH)
	cfg.AGENDA_LOCALE = getEnv("AGENDA_LOCALE", cfg.AGENDA_LOCALE)
	cfg.LOG_FILE_PATH = getEnv("LOG_FILE_PATH", cfg.LOG_FILE_PATH)
	cfg.LOG_LEVEL = strings.ToLower(getEnv("LOG_LEVEL", cfg.LOG_LEVEL))

	if cfg.OUTPUT_FILE_PATH == "" {
		return EnvConfig{}, fmt.Errorf("AGENDA_OUTPUT_FILE must not be empty")
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return strings.TrimSpace(v)
	}
	return fallback
}
