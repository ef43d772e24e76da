package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Crawl limits. MaxPages is clamped to [MinMaxPages, MaxMaxPages] and
// RequestDelay to [0, MaxRequestDelay] during validation.
const (
	MinMaxPages     = 10
	MaxMaxPages     = 500
	MaxRequestDelay = 2000 * time.Millisecond

	DefaultMaxPages     = 100
	DefaultRequestDelay = 500 * time.Millisecond
	DefaultFetchTimeout = 10 * time.Second

	// DefaultUserAgent identifies the crawler to origin servers.
	DefaultUserAgent = "Mozilla/5.0 (compatible; CrawlerSEO/1.0; +https://crawler.charles-migaud.fr)"

	// DefaultMaxBodySizeBytes caps how much of a response body is read.
	// Kept above the oversized-page audit threshold (15 MB) so that check
	// still sees the true size.
	DefaultMaxBodySizeBytes = 32 << 20
)

// AppConfig holds the global application configuration
type AppConfig struct {
	UserAgent          string           `yaml:"user_agent,omitempty"`
	FetchTimeout       time.Duration    `yaml:"fetch_timeout,omitempty"`
	MaxPages           int              `yaml:"max_pages,omitempty"`
	RequestDelay       time.Duration    `yaml:"request_delay,omitempty"`
	MaxBodySizeBytes   int64            `yaml:"max_body_size_bytes,omitempty"`
	HTTPClientSettings HTTPClientConfig `yaml:"http_client_settings,omitempty"`
}

// HTTPClientConfig holds settings for the shared HTTP client
type HTTPClientConfig struct {
	Timeout               time.Duration `yaml:"timeout,omitempty"`                 // Overall request timeout
	MaxIdleConns          int           `yaml:"max_idle_conns,omitempty"`          // Max total idle connections
	MaxIdleConnsPerHost   int           `yaml:"max_idle_conns_per_host,omitempty"` // Max idle connections per host
	IdleConnTimeout       time.Duration `yaml:"idle_conn_timeout,omitempty"`       // Timeout for idle connections
	TLSHandshakeTimeout   time.Duration `yaml:"tls_handshake_timeout,omitempty"`   // Timeout for TLS handshake
	ExpectContinueTimeout time.Duration `yaml:"expect_continue_timeout,omitempty"` // Timeout for 100-continue
	ForceAttemptHTTP2     *bool         `yaml:"force_attempt_http2,omitempty"`     // Explicitly enable/disable HTTP/2 attempt (use pointer for tri-state: nil=default, true=force, false=disable)
	DialerTimeout         time.Duration `yaml:"dialer_timeout,omitempty"`          // Connection dial timeout
	DialerKeepAlive       time.Duration `yaml:"dialer_keep_alive,omitempty"`       // TCP keep-alive interval
}

// Load reads and parses a YAML config file
func Load(path string) (AppConfig, error) {
	var cfg AppConfig
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading config file '%s': %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config file '%s': %w", path, err)
	}
	return cfg, nil
}
