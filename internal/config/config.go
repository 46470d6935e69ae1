// Package config loads server settings from the environment, optionally
// seeded from a .env file in the working directory.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Config holds every runtime setting.
type Config struct {
	Port      int    `validate:"min=1,max=65535"`
	DBPath    string `validate:"required"`
	SeedPath  string
	LogLevel  string `validate:"oneof=debug info warn error"`
	LogFormat string `validate:"oneof=text json"`
	Timezone  string `validate:"required"`
	// ReminderCron is a five-field cron spec; empty disables the reminder job.
	ReminderCron string

	Location *time.Location `validate:"-"`
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// Load reads .env (if present) and then the environment.
// Variables already set in the environment take precedence over .env.
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile is like Load with an explicit dotenv path.
func LoadFile(envFile string) (*Config, error) {
	if err := godotenv.Load(envFile); err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read %s: %w", envFile, err)
		}
		slog.Debug("No env file, using process environment", "path", envFile)
	}

	port, err := strconv.Atoi(getEnv("PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT: %w", err)
	}

	cfg := &Config{
		Port:         port,
		DBPath:       getEnv("DB_PATH", ":memory:"),
		SeedPath:     os.Getenv("SEED_PATH"),
		LogLevel:     getEnv("LOG_LEVEL", "info"),
		LogFormat:    getEnv("LOG_FORMAT", "text"),
		Timezone:     getEnv("TIMEZONE", "UTC"),
		ReminderCron: getEnv("REMINDER_CRON", "0 8 * * *"),
	}
	if v, ok := os.LookupEnv("REMINDER_CRON"); ok && v == "" {
		cfg.ReminderCron = ""
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}
	cfg.Location = loc

	return cfg, nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
