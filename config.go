package portfolio

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// SiteConfig holds all configuration for a portfolio site.
type SiteConfig struct {
	Name        string `koanf:"name"`        // Site name (default: profile name)
	URL         string `koanf:"url"`         // Canonical URL (default "http://localhost:3000")
	Description string `koanf:"description"` // Meta description

	Addr      string `koanf:"addr"`       // Listen address (default ":3000")
	StaticDir string `koanf:"static_dir"` // Images, resume and other assets (default "public")
	LogLevel  string `koanf:"log_level"`  // debug, info, warn or error (default "info")

	SessionSecret  string        `koanf:"session_secret"`   // Required: cookie signing secret
	CookieSecure   bool          `koanf:"cookie_secure"`    // Set true for HTTPS
	SessionIdleTTL time.Duration `koanf:"session_idle_ttl"` // Drop idle lightbox sessions (default 30m)

	ThumbnailWidth    int           `koanf:"thumbnail_width"`     // Max card image width (default 640)
	ThumbnailCacheTTL time.Duration `koanf:"thumbnail_cache_ttl"` // default 1h

	LightboxRateLimit int `koanf:"lightbox_rate_limit"` // Lightbox posts per IP per minute (default 60)
}

func (c *SiteConfig) setDefaults() {
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	c.URL = strings.TrimSuffix(c.URL, "/")
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if c.SessionIdleTTL == 0 {
		c.SessionIdleTTL = 30 * time.Minute
	}
	if c.ThumbnailWidth == 0 {
		c.ThumbnailWidth = 640
	}
	if c.ThumbnailCacheTTL == 0 {
		c.ThumbnailCacheTTL = time.Hour
	}
	if c.LightboxRateLimit == 0 {
		c.LightboxRateLimit = 60
	}
}

// Validate checks the fields that have no usable default.
func (c *SiteConfig) Validate() error {
	if c.SessionSecret == "" {
		return fmt.Errorf("portfolio: session_secret is required")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("portfolio: invalid log_level %q: must be one of debug, info, warn, error", c.LogLevel)
	}
	if c.ThumbnailWidth < 0 {
		return fmt.Errorf("portfolio: thumbnail_width must be non-negative")
	}
	if c.LightboxRateLimit < 0 {
		return fmt.Errorf("portfolio: lightbox_rate_limit must be non-negative")
	}
	return nil
}

// LoadConfig reads configuration from an optional YAML file and overlays
// PORTFOLIO_* environment variables (PORTFOLIO_SESSION_SECRET -> session_secret).
// A missing file is not an error.
func LoadConfig(path string) (SiteConfig, error) {
	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return SiteConfig{}, fmt.Errorf("portfolio: reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return SiteConfig{}, fmt.Errorf("portfolio: accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("PORTFOLIO_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "PORTFOLIO_"))
	}), nil); err != nil {
		return SiteConfig{}, fmt.Errorf("portfolio: loading env overrides: %w", err)
	}

	var cfg SiteConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("portfolio: decoding config: %w", err)
	}
	cfg.setDefaults()
	return cfg, nil
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
// The callback receives the App before the server starts.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithStaticDir overrides the directory for images, the resume and other assets.
func WithStaticDir(dir string) Option {
	return func(a *App) {
		a.Config.StaticDir = dir
	}
}

// WithContent replaces the built-in profile and projects.
func WithContent(content Content) Option {
	return func(a *App) {
		a.content = content
	}
}
