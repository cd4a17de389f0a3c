package api

import (
	"fmt"
	"net/url"
)

// Config holds the connection settings for the scheduling service.
type Config struct {
	BaseURL string `json:"base_url"`
	// TimeoutSeconds bounds regular requests. Generation calls are exempt:
	// the service signals completion only through the response, however
	// long the solver runs.
	TimeoutSeconds int `json:"timeout_seconds"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = "http://localhost:8000"
	}
	if c.TimeoutSeconds <= 0 {
		c.TimeoutSeconds = 15
	}
}

// Validate checks mandatory fields.
func (c Config) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil {
		return fmt.Errorf("invalid base_url: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("base_url must be absolute: %s", c.BaseURL)
	}
	return nil
}
