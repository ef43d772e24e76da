package config

import "fmt"

// Validate checks AppConfig fields and applies sensible defaults.
// Returns collected warnings and any fatal error.
// Modifies receiver in place to apply defaults and clamps.
func (c *AppConfig) Validate() (warnings []string, err error) {
	// UserAgent
	if c.UserAgent == "" {
		c.UserAgent = DefaultUserAgent
	}

	// FetchTimeout
	if c.FetchTimeout <= 0 {
		c.FetchTimeout = DefaultFetchTimeout
	}

	// MaxPages: clamp into the supported range
	if c.MaxPages == 0 {
		c.MaxPages = DefaultMaxPages
	}
	if c.MaxPages < MinMaxPages {
		warnings = append(warnings, fmt.Sprintf(
			"max_pages (%d) below minimum, clamping to %d", c.MaxPages, MinMaxPages))
		c.MaxPages = MinMaxPages
	}
	if c.MaxPages > MaxMaxPages {
		warnings = append(warnings, fmt.Sprintf(
			"max_pages (%d) above maximum, clamping to %d", c.MaxPages, MaxMaxPages))
		c.MaxPages = MaxMaxPages
	}

	// RequestDelay: clamp into [0, MaxRequestDelay]
	if c.RequestDelay < 0 {
		warnings = append(warnings, "request_delay cannot be negative, setting to 0")
		c.RequestDelay = 0
	}
	if c.RequestDelay > MaxRequestDelay {
		warnings = append(warnings, fmt.Sprintf(
			"request_delay (%v) above maximum, clamping to %v", c.RequestDelay, MaxRequestDelay))
		c.RequestDelay = MaxRequestDelay
	}

	// MaxBodySizeBytes
	if c.MaxBodySizeBytes <= 0 {
		c.MaxBodySizeBytes = DefaultMaxBodySizeBytes
	}

	// HTTPClientSettings: zero values are handled by the client constructor,
	// only the overall timeout needs to track the fetch timeout.
	if c.HTTPClientSettings.Timeout <= 0 {
		c.HTTPClientSettings.Timeout = c.FetchTimeout
	}

	return warnings, nil
}
