// Package config loads render-service settings from the environment.
package config

import (
	"os"
	"strconv"
)

// Config holds the service settings. Zero-config startup works: every
// field has a development default.
type Config struct {
	Port          string
	Environment   string
	ReadTimeout   int // seconds
	WriteTimeout  int // seconds
	ArchiveDBPath string
	ThemeFile     string // optional extra theme presets, YAML
}

// Load reads settings from environment variables.
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		Environment:   getEnv("ENV", "development"),
		ReadTimeout:   getEnvAsInt("READ_TIMEOUT", 15),
		WriteTimeout:  getEnvAsInt("WRITE_TIMEOUT", 30),
		ArchiveDBPath: getEnv("ARCHIVE_DB_PATH", "data/orthograph.db"),
		ThemeFile:     getEnv("THEME_FILE", ""),
	}
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}
