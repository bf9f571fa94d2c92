package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gabrielcoffee/mba-fullstack-frontend/internal/backend"
)

const (
	DefaultAddr           = ":8080"
	DefaultBackendTimeout = 30 * time.Second
	DefaultSessionSecret  = "storefront-dev-secret-change-me"
	DefaultSessionStore   = "cookie"
	DefaultTooltipDelay   = 7 * time.Second
	DefaultRedirectDelay  = 2 * time.Second
	DefaultMaxUploadMB    = 10
)

type Config struct {
	Addr           string
	BackendBaseURL string
	BackendTimeout time.Duration
	SessionSecret  string
	SessionStore   string // cookie | db
	DBDSN          string
	CookieSecure   bool
	TooltipDelay   time.Duration
	RedirectDelay  time.Duration
	MaxUploadMB    int64
	LogLevel       slog.Level
}

// Load reads the process environment.
func Load() (Config, error) {
	return FromLookup(os.LookupEnv)
}

// FromLookup builds a Config from any env-like lookup function. Every
// invalid value is reported, not only the first.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	get := func(k, def string) string {
		if v, ok := lookup(k); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}

	var errs []error
	duration := func(k string, def time.Duration) time.Duration {
		raw := get(k, "")
		if raw == "" {
			return def
		}
		d, err := time.ParseDuration(raw)
		if err != nil || d < 0 {
			errs = append(errs, fmt.Errorf("%s: invalid duration %q", k, raw))
			return def
		}
		return d
	}

	cfg := Config{
		Addr:           get("APP_ADDR", DefaultAddr),
		BackendBaseURL: strings.TrimRight(get("BACKEND_BASE_URL", backend.DefaultBaseURL), "/"),
		BackendTimeout: duration("BACKEND_TIMEOUT", DefaultBackendTimeout),
		SessionSecret:  get("SESSION_SECRET", DefaultSessionSecret),
		SessionStore:   strings.ToLower(get("SESSION_STORE", DefaultSessionStore)),
		DBDSN:          get("DB_DSN", ""),
		TooltipDelay:   duration("TOOLTIP_DELAY", DefaultTooltipDelay),
		RedirectDelay:  duration("REDIRECT_DELAY", DefaultRedirectDelay),
		MaxUploadMB:    DefaultMaxUploadMB,
		LogLevel:       slog.LevelInfo,
	}

	if raw := get("COOKIE_SECURE", ""); raw != "" {
		b, err := strconv.ParseBool(raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("COOKIE_SECURE: invalid bool %q", raw))
		}
		cfg.CookieSecure = b
	}

	if raw := get("MAX_UPLOAD_MB", ""); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 {
			errs = append(errs, fmt.Errorf("MAX_UPLOAD_MB: invalid size %q", raw))
		} else {
			cfg.MaxUploadMB = n
		}
	}

	if raw := get("LOG_LEVEL", ""); raw != "" {
		if err := cfg.LogLevel.UnmarshalText([]byte(raw)); err != nil {
			errs = append(errs, fmt.Errorf("LOG_LEVEL: invalid level %q", raw))
		}
	}

	switch cfg.SessionStore {
	case "cookie":
	case "db":
		if cfg.DBDSN == "" {
			errs = append(errs, errors.New("DB_DSN is required when SESSION_STORE=db"))
		}
	default:
		errs = append(errs, fmt.Errorf("SESSION_STORE: unknown store %q (want cookie or db)", cfg.SessionStore))
	}

	if !strings.HasPrefix(cfg.BackendBaseURL, "http://") && !strings.HasPrefix(cfg.BackendBaseURL, "https://") {
		errs = append(errs, fmt.Errorf("BACKEND_BASE_URL: must be an http(s) URL, got %q", cfg.BackendBaseURL))
	}

	return cfg, errors.Join(errs...)
}

// MaxUploadBytes is the request body limit for the creation form.
func (c Config) MaxUploadBytes() int64 {
	return c.MaxUploadMB << 20
}

// UsesDefaultSecret reports whether SESSION_SECRET was left unset.
func (c Config) UsesDefaultSecret() bool {
	return c.SessionSecret == DefaultSessionSecret
}
