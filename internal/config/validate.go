package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}

	switch c.Log.Format {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	if c.RateLimit.Enabled && (c.RateLimit.RPS <= 0 || c.RateLimit.Burst <= 0) {
		return fmt.Errorf("rate_limit: rps and burst must be > 0 when enabled")
	}

	if c.Notification.Concurrency <= 0 {
		return fmt.Errorf("notification.concurrency must be > 0 (got %d)", c.Notification.Concurrency)
	}

	if c.Storage.Scheme != "http" && c.Storage.Scheme != "https" {
		return fmt.Errorf("storage.scheme must be http or https (got %q)", c.Storage.Scheme)
	}

	if err := c.Application.validate(); err != nil {
		return fmt.Errorf("application: %w", err)
	}

	return nil
}

func (a *ApplicationConfig) validate() error {
	raw := strings.TrimSpace(a.LastApplicationRaw)
	if raw == "" {
		a.LastApplicationDate = time.Time{}
		return nil
	}

	d, err := ParseDeadline(raw)
	if err != nil {
		return fmt.Errorf("last_application_date: %w", err)
	}
	a.LastApplicationDate = d

	return nil
}

// ParseDeadline accepts either a calendar date ("2025-08-01", meaning the end
// of that day in UTC) or an RFC 3339 timestamp.
func ParseDeadline(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	d, err := time.Parse(time.DateOnly, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: want YYYY-MM-DD or RFC 3339", raw)
	}
	return d.Add(24*time.Hour - time.Nanosecond), nil
}
