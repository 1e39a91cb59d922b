package config

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server ServerConfig
	Fetch  FetchConfig
	Sites  SitesConfig
	Log    LogConfig
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Host string // default: "0.0.0.0"
	Port int    // default: 8000
	Mode string // "debug", "release", "test"; default: "release"
}

// FetchConfig controls how upstream main pages are retrieved.
type FetchConfig struct {
	// Timeout bounds a single page fetch, connect to last body byte.
	Timeout time.Duration // default: 10s

	// UserAgent is sent with every upstream request.
	UserAgent string

	// TLSFingerprint dials HTTPS with a Chrome ClientHello instead of Go's.
	TLSFingerprint bool // default: true

	// MaxBodyBytes caps how much of a response body is read.
	MaxBodyBytes int64 // default: 10 MB
}

// SitesConfig holds the two upstream main pages.
type SitesConfig struct {
	EnglishURL string
	PolishURL  string
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string // default: "info"
	Format string // "json" or "text"; default: "json"
}

const (
	DefaultEnglishURL = "https://en.uncyclopedia.co/wiki/Main_Page"
	DefaultPolishURL  = "https://nonsa.pl/wiki/Strona_g%C5%82%C3%B3wna"

	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/131.0.0.0 Safari/537.36"
)

// Load reads configuration from environment variables with sane defaults.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host: envOr("UNCYCLO_HOST", "0.0.0.0"),
			Port: envIntOr("UNCYCLO_PORT", 8000),
			Mode: envOr("UNCYCLO_MODE", "release"),
		},
		Fetch: FetchConfig{
			Timeout:        envDurationOr("UNCYCLO_FETCH_TIMEOUT", 10*time.Second),
			UserAgent:      envOr("UNCYCLO_USER_AGENT", defaultUserAgent),
			TLSFingerprint: envBoolOr("UNCYCLO_TLS_FINGERPRINT", true),
			MaxBodyBytes:   int64(envIntOr("UNCYCLO_MAX_BODY_BYTES", 10<<20)),
		},
		Sites: SitesConfig{
			EnglishURL: envOr("UNCYCLO_EN_URL", DefaultEnglishURL),
			PolishURL:  envOr("UNCYCLO_PL_URL", DefaultPolishURL),
		},
		Log: LogConfig{
			Level:  envOr("UNCYCLO_LOG_LEVEL", "info"),
			Format: envOr("UNCYCLO_LOG_FORMAT", "json"),
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func envBoolOr(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDurationOr(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
