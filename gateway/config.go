package gateway

import (
	"net/url"
	"time"
)

// Config holds the settings for the HTTP gateway.
type Config struct {
	// BaseURL is the API root every collection path is resolved against,
	// e.g. "https://catalog.example.com/api". Required.
	BaseURL string

	// Timeout bounds each request round trip. Must be greater than 0.
	Timeout time.Duration

	// UserAgent is sent with every request.
	UserAgent string

	// RequestsPerSecond throttles outbound calls. Zero disables
	// throttling.
	RequestsPerSecond float64

	// Burst is the token bucket size when throttling is enabled.
	// Must be at least 1 in that case.
	Burst int
}

// DefaultConfig returns a Config populated with sensible defaults.
// BaseURL must still be supplied by the caller.
func DefaultConfig() Config {
	return Config{
		Timeout:   30 * time.Second,
		UserAgent: "go-catalog-client/1.0",
	}
}

// Validate checks whether the configuration values are valid.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return &ConfigError{Field: "BaseURL", Message: "must not be empty"}
	}
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return &ConfigError{Field: "BaseURL", Message: "must be an absolute URL"}
	}
	if c.Timeout <= 0 {
		return &ConfigError{Field: "Timeout", Message: "must be greater than 0"}
	}
	if c.RequestsPerSecond < 0 {
		return &ConfigError{Field: "RequestsPerSecond", Message: "must be non-negative"}
	}
	if c.RequestsPerSecond > 0 && c.Burst < 1 {
		return &ConfigError{Field: "Burst", Message: "must be at least 1 when throttling is enabled"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "config error in field " + e.Field + ": " + e.Message
}
