// Package config provides centralized configuration management for the site.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
//
// Content that describes the wedding itself (names, date, venue, time zone)
// lives in a YAML site profile instead; see Site.
package config

import (
	"strconv"
	"time"
)

// Config holds all application configuration.
// All settings can be configured via environment variables.
type Config struct {
	Server   ServerConfig
	Sources  SourcesConfig
	Fetch    FetchConfig
	Session  SessionConfig
	Rate     RateLimitConfig
	Security SecurityConfig
	Logging  LoggingConfig
	Site     SiteConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	Port int `env:"SERVER_PORT" envAlt:"PORT" default:"8080"`

	// ReadTimeout is the maximum duration for reading the request (default: 15s)
	ReadTimeout time.Duration `env:"SERVER_READ_TIMEOUT" default:"15s"`

	// WriteTimeout is the maximum duration for writing the response (default: 30s)
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" default:"30s"`

	// IdleTimeout is the keep-alive timeout (default: 60s)
	IdleTimeout time.Duration `env:"SERVER_IDLE_TIMEOUT" default:"60s"`

	// ShutdownTimeout is the maximum duration to wait for graceful shutdown (default: 30s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" default:"30s"`

	// RequestTimeout is the middleware timeout for requests (default: 30s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" default:"30s"`
}

// SourcesConfig says where the three data files live.
//
// A location that is an absolute http(s) URL is fetched as-is. Otherwise it
// is resolved against BaseURL when set, and read from Dir when not.
type SourcesConfig struct {
	// Dir is the local directory holding the data files (default: data)
	Dir string `env:"SOURCE_DIR" default:"data"`

	// BaseURL is the prefix for relative locations, e.g. a static host
	BaseURL string `env:"SOURCE_BASE_URL"`

	Itinerary string `env:"SOURCE_ITINERARY" default:"wedding_week_itinerary.csv"`
	Explore   string `env:"SOURCE_EXPLORE" default:"wedding_week_explore.csv"`
	Contacts  string `env:"SOURCE_CONTACTS" default:"wedding_week_contacts.csv"`
}

// FetchConfig holds data retrieval settings.
type FetchConfig struct {
	// Timeout bounds a single fetch (default: 10s)
	Timeout time.Duration `env:"FETCH_TIMEOUT" default:"10s"`

	// MaxBytes caps the size of one data file (default: 5MB)
	MaxBytes int64 `env:"FETCH_MAX_BYTES" default:"5242880"`

	// CacheBust appends a cb=<unix millis> query parameter to HTTP fetches (default: true)
	CacheBust bool `env:"FETCH_CACHE_BUST" default:"true"`

	// MaxConcurrent bounds simultaneous fetches across all sessions (default: 4)
	MaxConcurrent int `env:"FETCH_MAX_CONCURRENT" default:"4"`

	// MaxWait is how long a fetch waits for a free slot (default: 5s)
	MaxWait time.Duration `env:"FETCH_MAX_WAIT" default:"5s"`
}

// SessionConfig holds per-visitor state settings.
type SessionConfig struct {
	// CookieName names the cookie carrying the session id (default: ww_session)
	CookieName string `env:"SESSION_COOKIE_NAME" default:"ww_session"`

	// IdleTimeout evicts sessions not seen for this long (default: 2h)
	IdleTimeout time.Duration `env:"SESSION_IDLE_TIMEOUT" default:"2h"`

	// SweepInterval is how often idle sessions are evicted (default: 5m)
	SweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL" default:"5m"`

	// SecureCookie sets the Secure attribute on the session cookie (default: false)
	SecureCookie bool `env:"SESSION_SECURE_COOKIE" default:"false"`
}

// RateLimitConfig holds rate limiting settings per time window.
type RateLimitConfig struct {
	// Enabled controls whether rate limiting is active (default: true)
	Enabled bool `env:"RATE_LIMIT_ENABLED" default:"true"`

	// RequestsPerMinute is the default rate limit per IP (default: 120)
	RequestsPerMinute int `env:"RATE_LIMIT_REQUESTS_PER_MINUTE" default:"120"`

	// DownloadLimit is requests per minute for calendar file downloads (default: 30)
	DownloadLimit int `env:"RATE_LIMIT_DOWNLOAD" default:"30"`
}

// SecurityConfig holds security-related settings.
type SecurityConfig struct {
	// TrustedProxies is a comma-separated list of trusted proxy CIDRs
	TrustedProxies []string `env:"TRUSTED_PROXIES"`

	// EnableCSP enables Content-Security-Policy headers (default: true)
	EnableCSP bool `env:"SECURITY_ENABLE_CSP" default:"true"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// SiteConfig points at the YAML site profile.
type SiteConfig struct {
	// File is the profile path; a missing file means built-in defaults (default: site.yaml)
	File string `env:"SITE_FILE" default:"site.yaml"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}
