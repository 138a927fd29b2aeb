package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Fetch     FetchConfig
	Search    SearchConfig
	Debug     DebugConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
	Cache     CacheConfig
	Log       LogConfig
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Host string // default: "0.0.0.0"
	Port int    // default: 8080
	Mode string // "debug", "release", "test"; default: "release"
}

// FetchConfig controls the page fetcher.
type FetchConfig struct {
	// Timeout is the deadline for the single outbound GET.
	Timeout time.Duration // default: 20s

	// Proxy is an optional proxy URL for the outbound request.
	Proxy string

	// MaxBodyBytes caps how much of the response body is read.
	MaxBodyBytes int64 // default: 10 MB
}

// SearchConfig controls the search-URL template parameters.
type SearchConfig struct {
	Currency string // query currency code; default: "GBP"
	Country  string // gl parameter; default: "uk"
	Language string // hl parameter; default: "en"
}

// DebugConfig controls the fetched-page debug dump.
type DebugConfig struct {
	// DumpPages enables writing oversized fetched pages to DumpPath.
	DumpPages bool // default: false

	// DumpPath is the well-known path the page markup is written to.
	DumpPath string // default: <tmp>/farescan_page_dump.html

	// DumpMinBytes is the minimum page size worth dumping.
	DumpMinBytes int // default: 1000
}

// AuthConfig controls API key authentication.
type AuthConfig struct {
	// Enabled toggles API key authentication.
	Enabled bool // default: false

	// APIKeys is the list of valid API keys.
	APIKeys []string
}

// RateLimitConfig controls per-key rate limiting.
type RateLimitConfig struct {
	// RequestsPerSecond is the sustained rate per API key.
	RequestsPerSecond float64 // default: 5

	// Burst is the maximum burst size per API key.
	Burst int // default: 10
}

// CacheConfig controls the search result cache.
type CacheConfig struct {
	// MaxEntries is the maximum number of cached results.
	MaxEntries int // default: 500
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string // default: "info"
	Format string // "json" or "text"; default: "json"
}

// Load reads configuration from environment variables with sane defaults.
func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Host: envOr("FARESCAN_HOST", "0.0.0.0"),
			Port: envIntOr("FARESCAN_PORT", 8080),
			Mode: envOr("FARESCAN_MODE", "release"),
		},
		Fetch: FetchConfig{
			Timeout:      envDurationOr("FARESCAN_FETCH_TIMEOUT", 20*time.Second),
			Proxy:        os.Getenv("FARESCAN_PROXY"),
			MaxBodyBytes: int64(envIntOr("FARESCAN_MAX_BODY_BYTES", 10*1024*1024)),
		},
		Search: SearchConfig{
			Currency: envOr("FARESCAN_CURRENCY", "GBP"),
			Country:  envOr("FARESCAN_COUNTRY", "uk"),
			Language: envOr("FARESCAN_LANGUAGE", "en"),
		},
		Debug: DebugConfig{
			DumpPages:    envBoolOr("FARESCAN_DUMP_PAGES", false),
			DumpPath:     envOr("FARESCAN_DUMP_PATH", filepath.Join(os.TempDir(), "farescan_page_dump.html")),
			DumpMinBytes: envIntOr("FARESCAN_DUMP_MIN_BYTES", 1000),
		},
		Auth: AuthConfig{
			Enabled: envBoolOr("FARESCAN_AUTH_ENABLED", false),
			APIKeys: envSliceOr("FARESCAN_API_KEYS", nil),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: envFloatOr("FARESCAN_RATE_RPS", 5.0),
			Burst:             envIntOr("FARESCAN_RATE_BURST", 10),
		},
		Cache: CacheConfig{
			MaxEntries: envIntOr("FARESCAN_CACHE_MAX_ENTRIES", 500),
		},
		Log: LogConfig{
			Level:  envOr("FARESCAN_LOG_LEVEL", "info"),
			Format: envOr("FARESCAN_LOG_FORMAT", "json"),
		},
	}
}

// --- helper functions ---

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

func envFloatOr(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
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

func envSliceOr(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		return result
	}
	return fallback
}
