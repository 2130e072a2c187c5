package config

import (
	"fmt"
	"os"
	"strconv"
)

// loadFromEnv overrides config from TODO_* environment variables.
func loadFromEnv(cfg *Config) error {
	if v := os.Getenv("TODO_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv("TODO_DATE_FORMAT"); v != "" {
		cfg.DateFormat = v
	}
	if v := os.Getenv("TODO_TODAY_LABEL"); v != "" {
		cfg.TodayLabel = v
	}
	if v := os.Getenv("TODO_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("TODO_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("TODO_CONFIRM_DELETE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("TODO_CONFIRM_DELETE: %w", err)
		}
		cfg.ConfirmDelete = b
	}
	return nil
}
