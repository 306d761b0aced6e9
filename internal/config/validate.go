package config

import (
	"errors"
	"fmt"
	"time"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateIngest(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateIngest() error {
	if c.Ingest.Workers < 0 {
		return errors.New("ingest.workers must not be negative")
	}
	switch c.Ingest.MissingPreviewPolicy {
	case "skip", "keep":
	default:
		return fmt.Errorf("ingest.missing_preview_policy must be skip or keep, got %q", c.Ingest.MissingPreviewPolicy)
	}
	for _, field := range []struct {
		name  string
		value string
	}{
		{"ingest.captured_after", c.Ingest.CapturedAfter},
		{"ingest.captured_until", c.Ingest.CapturedUntil},
	} {
		if field.value == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", field.value); err != nil {
			return fmt.Errorf("%s must be YYYY-MM-DD, got %q", field.name, field.value)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}
	return nil
}

// CaptureWindow parses the configured capture-date bounds. The zero time is
// returned for an unset bound.
func (c *Config) CaptureWindow() (after, until time.Time, err error) {
	if c.Ingest.CapturedAfter != "" {
		if after, err = time.Parse("2006-01-02", c.Ingest.CapturedAfter); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("ingest.captured_after: %w", err)
		}
	}
	if c.Ingest.CapturedUntil != "" {
		if until, err = time.Parse("2006-01-02", c.Ingest.CapturedUntil); err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("ingest.captured_until: %w", err)
		}
		// An until-bound covers the whole named day.
		until = until.Add(24*time.Hour - time.Nanosecond)
	}
	return after, until, nil
}
