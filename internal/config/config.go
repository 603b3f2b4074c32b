package config

import (
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/edvin/camal/internal/query"
)

type Config struct {
	ServiceName string
	APIURL      string
	// APITimeout bounds each call to the camal API.
	APITimeout     time.Duration
	HTTPListenAddr string
	// MetricsListenAddr, when set, also serves /metrics on its own port.
	MetricsListenAddr string
	LogLevel          string
	CORSOrigins       []string
	CookieSecure      bool
	StaleTime         time.Duration
	QueryRetry        int
	QueryRetryDelay   time.Duration
	QueryMaxEntries   int64

	// SessionIdleTimeout drops a session's cache after this long unused.
	SessionIdleTimeout time.Duration
	// WarmCatalogs prefetches the lookup lists right after login.
	WarmCatalogs bool
	// MaxSessions caps the open sessions; zero disables the cap.
	MaxSessions int
}

// fileConfig is the optional YAML overlay read from CONSOLE_CONFIG_FILE.
// Environment variables win over values from the file.
type fileConfig struct {
	APIURL       string   `yaml:"api_url"`
	Port         string   `yaml:"port"`
	LogLevel     string   `yaml:"log_level"`
	CORSOrigins  []string `yaml:"cors_origins"`
	CookieSecure *bool    `yaml:"cookie_secure"`
	Query        struct {
		StaleTime  string `yaml:"stale_time"`
		Retry      *int   `yaml:"retry"`
		RetryDelay string `yaml:"retry_delay"`
		MaxEntries int64  `yaml:"max_entries"`
	} `yaml:"query"`
}

func defaults() *Config {
	return &Config{
		ServiceName:     "camal-console",
		HTTPListenAddr:  ":3000",
		LogLevel:        "info",
		CORSOrigins:     []string{"http://localhost:3000"},
		StaleTime:       query.DefaultStaleTime,
		QueryRetry:      query.DefaultRetry,
		QueryRetryDelay: query.DefaultRetryDelay,
		QueryMaxEntries: query.DefaultMaxEntries,

		APITimeout: 30 * time.Second,

		SessionIdleTimeout: 12 * time.Hour,
		WarmCatalogs:       true,
		MaxSessions:        1000,
	}
}

func Load() (*Config, error) {
	cfg := defaults()

	if path := os.Getenv("CONSOLE_CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.APIURL = getEnv("CAMAL_API_URL", cfg.APIURL)
	cfg.LogLevel = getEnv("LOG_LEVEL", cfg.LogLevel)
	if port := os.Getenv("PORT"); port != "" {
		cfg.HTTPListenAddr = ":" + port
	}
	cfg.HTTPListenAddr = getEnv("HTTP_LISTEN_ADDR", cfg.HTTPListenAddr)
	cfg.MetricsListenAddr = getEnv("METRICS_LISTEN_ADDR", cfg.MetricsListenAddr)

	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.CORSOrigins = splitList(origins)
	}
	if v := os.Getenv("COOKIE_SECURE"); v != "" {
		cfg.CookieSecure = v == "true"
	}

	var err error
	if cfg.StaleTime, err = getDuration("QUERY_STALE_TIME", cfg.StaleTime); err != nil {
		return nil, err
	}
	if cfg.QueryRetryDelay, err = getDuration("QUERY_RETRY_DELAY", cfg.QueryRetryDelay); err != nil {
		return nil, err
	}
	if cfg.APITimeout, err = getDuration("CAMAL_API_TIMEOUT", cfg.APITimeout); err != nil {
		return nil, err
	}
	if cfg.SessionIdleTimeout, err = getDuration("SESSION_IDLE_TIMEOUT", cfg.SessionIdleTimeout); err != nil {
		return nil, err
	}
	if v := os.Getenv("WARM_CATALOGS"); v != "" {
		cfg.WarmCatalogs = v == "true"
	}
	if v := os.Getenv("QUERY_RETRY"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse QUERY_RETRY %q: %w", v, err)
		}
		cfg.QueryRetry = n
	}
	if v := os.Getenv("MAX_SESSIONS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("parse MAX_SESSIONS %q: %w", v, err)
		}
		cfg.MaxSessions = n
	}
	if v := os.Getenv("QUERY_CACHE_MAX_ENTRIES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse QUERY_CACHE_MAX_ENTRIES %q: %w", v, err)
		}
		cfg.QueryMaxEntries = n
	}

	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}

	if fc.APIURL != "" {
		c.APIURL = fc.APIURL
	}
	if fc.Port != "" {
		c.HTTPListenAddr = ":" + fc.Port
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	if len(fc.CORSOrigins) > 0 {
		c.CORSOrigins = fc.CORSOrigins
	}
	if fc.CookieSecure != nil {
		c.CookieSecure = *fc.CookieSecure
	}
	if fc.Query.StaleTime != "" {
		d, err := time.ParseDuration(fc.Query.StaleTime)
		if err != nil {
			return fmt.Errorf("parse query.stale_time: %w", err)
		}
		c.StaleTime = d
	}
	if fc.Query.RetryDelay != "" {
		d, err := time.ParseDuration(fc.Query.RetryDelay)
		if err != nil {
			return fmt.Errorf("parse query.retry_delay: %w", err)
		}
		c.QueryRetryDelay = d
	}
	if fc.Query.Retry != nil {
		c.QueryRetry = *fc.Query.Retry
	}
	if fc.Query.MaxEntries > 0 {
		c.QueryMaxEntries = fc.Query.MaxEntries
	}
	return nil
}

func (c *Config) Validate() error {
	if c.APIURL == "" {
		return fmt.Errorf("missing required config: CAMAL_API_URL")
	}
	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("CAMAL_API_URL must be an absolute URL, got %q", c.APIURL)
	}
	if c.QueryRetry < 0 {
		return fmt.Errorf("QUERY_RETRY must not be negative")
	}
	if c.APITimeout <= 0 {
		return fmt.Errorf("CAMAL_API_TIMEOUT must be positive")
	}
	if c.MaxSessions < 0 {
		return fmt.Errorf("MAX_SESSIONS must not be negative")
	}
	if c.SessionIdleTimeout <= 0 {
		return fmt.Errorf("SESSION_IDLE_TIMEOUT must be positive")
	}
	return nil
}

// HTTPClient returns the client used for camal API calls.
func (c *Config) HTTPClient() *http.Client {
	return &http.Client{Timeout: c.APITimeout}
}

// QueryConfig returns the cache settings every session's query client uses.
func (c *Config) QueryConfig() query.Config {
	return query.Config{
		StaleTime:  c.StaleTime,
		Retry:      c.QueryRetry,
		RetryDelay: c.QueryRetryDelay,
		MaxEntries: c.QueryMaxEntries,
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("parse %s %q: %w", key, v, err)
	}
	return d, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
