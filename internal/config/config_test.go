package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if cfg.Environment != "development" {
		t.Errorf("Environment = %q, want development", cfg.Environment)
	}
	if cfg.ReadTimeout != 15 {
		t.Errorf("ReadTimeout = %d, want 15", cfg.ReadTimeout)
	}
	if cfg.WriteTimeout != 30 {
		t.Errorf("WriteTimeout = %d, want 30", cfg.WriteTimeout)
	}
	if cfg.ArchiveDBPath != "data/orthograph.db" {
		t.Errorf("ArchiveDBPath = %q, want data/orthograph.db", cfg.ArchiveDBPath)
	}
	if cfg.ThemeFile != "" {
		t.Errorf("ThemeFile = %q, want empty", cfg.ThemeFile)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9191")
	t.Setenv("ENV", "production")
	t.Setenv("READ_TIMEOUT", "5")
	t.Setenv("ARCHIVE_DB_PATH", "/tmp/arch.db")
	t.Setenv("THEME_FILE", "themes.yaml")

	cfg := Load()

	if cfg.Port != "9191" {
		t.Errorf("Port = %q, want 9191", cfg.Port)
	}
	if cfg.Environment != "production" {
		t.Errorf("Environment = %q, want production", cfg.Environment)
	}
	if cfg.ReadTimeout != 5 {
		t.Errorf("ReadTimeout = %d, want 5", cfg.ReadTimeout)
	}
	if cfg.ArchiveDBPath != "/tmp/arch.db" {
		t.Errorf("ArchiveDBPath = %q, want /tmp/arch.db", cfg.ArchiveDBPath)
	}
	if cfg.ThemeFile != "themes.yaml" {
		t.Errorf("ThemeFile = %q, want themes.yaml", cfg.ThemeFile)
	}
}

func TestLoadBadIntFallsBack(t *testing.T) {
	t.Setenv("WRITE_TIMEOUT", "not-a-number")

	cfg := Load()
	if cfg.WriteTimeout != 30 {
		t.Errorf("WriteTimeout = %d, want default 30", cfg.WriteTimeout)
	}
}
