package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_PATH", "SEED_PATH", "LOG_LEVEL", "LOG_FORMAT", "TIMEZONE", "REMINDER_CRON"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "missing.env"))
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.Port != 8080 || cfg.DBPath != ":memory:" || cfg.LogLevel != "info" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.ReminderCron != "0 8 * * *" {
		t.Errorf("ReminderCron = %q", cfg.ReminderCron)
	}
	if cfg.Location == nil || cfg.Location.String() != "UTC" {
		t.Errorf("Location = %v, want UTC", cfg.Location)
	}
	if cfg.Addr() != ":8080" {
		t.Errorf("Addr = %q", cfg.Addr())
	}
}

func TestLoadEnvFile(t *testing.T) {
	for _, key := range []string{"PORT", "DB_PATH", "LOG_LEVEL", "REMINDER_CRON"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Setenv("LOG_LEVEL", "debug") // environment wins over the file

	path := filepath.Join(t.TempDir(), ".env")
	data := "PORT=9090\nDB_PATH=/tmp/journal.db\nLOG_LEVEL=error\nREMINDER_CRON=\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cfg.Port != 9090 || cfg.DBPath != "/tmp/journal.db" {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}
	if cfg.ReminderCron != "" {
		t.Errorf("ReminderCron = %q, want disabled", cfg.ReminderCron)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"PORT":       "70000",
		"LOG_LEVEL":  "verbose",
		"LOG_FORMAT": "xml",
		"TIMEZONE":   "Mars/Olympus",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			t.Setenv(key, value)
			if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.env")); err == nil {
				t.Errorf("expected error for %s=%s", key, value)
			}
		})
	}
}
