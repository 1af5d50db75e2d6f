// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Prefix is prepended to every variable name.
const Prefix = "COVERA_WEB_"

// Config holds all application configuration
type Config struct {
	Env      string `env:"ENV" envDefault:"development"`
	Host     string `env:"HOST" envDefault:"0.0.0.0"`
	Port     string `env:"PORT"`
	SiteURL  string `env:"SITE_URL" envDefault:"https://covera.app"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// ContentDir overrides the embedded blog posts when set.
	ContentDir string `env:"CONTENT_DIR"`
	// PublicDir overrides the embedded static assets when set.
	PublicDir string `env:"PUBLIC_DIR"`

	SessionSigningKey string `env:"SESSION_SIGNING_KEY"`
	GA4ID             string `env:"GA4_ID"`
	// FixAlternate makes the mobile alternate link follow the current route.
	FixAlternate bool `env:"FIX_ALTERNATE" envDefault:"false"`

	BlogCacheTTL    time.Duration `env:"BLOG_CACHE_TTL" envDefault:"5m"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	Supabase SupabaseConfig `envPrefix:"SUPABASE_"`
}

// SupabaseConfig points at the edge function that delivers form submissions.
type SupabaseConfig struct {
	ProjectID    string        `env:"PROJECT_ID"`
	AnonKey      string        `env:"ANON_KEY"`
	FunctionName string        `env:"FUNCTION" envDefault:"send-email"`
	BaseURL      string        `env:"URL"`
	Timeout      time.Duration `env:"TIMEOUT" envDefault:"10s"`
}

// Enabled reports whether submissions go to a real project.
func (s SupabaseConfig) Enabled() bool {
	return s.BaseURL != "" || (s.ProjectID != "" && s.AnonKey != "")
}

// Load reads envFile when it exists, then parses the process environment.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", envFile, err)
		}
	}
	return parse(nil)
}

func parse(environ map[string]string) (*Config, error) {
	cfg := &Config{}
	opts := env.Options{Prefix: Prefix, Environment: environ}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.Port == "" {
		cfg.Port = lookup(environ, "PORT")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	cfg.SiteURL = strings.TrimRight(cfg.SiteURL, "/")
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func lookup(environ map[string]string, key string) string {
	if environ != nil {
		return environ[key]
	}
	return os.Getenv(key)
}

// Validate rejects settings that are unsafe to serve with.
func (c *Config) Validate() error {
	if !strings.HasPrefix(c.SiteURL, "http://") && !strings.HasPrefix(c.SiteURL, "https://") {
		return fmt.Errorf("config: %sSITE_URL must be absolute, got %q", Prefix, c.SiteURL)
	}
	if c.IsProduction() && c.SessionSigningKey == "" {
		return fmt.Errorf("config: %sSESSION_SIGNING_KEY is required in production", Prefix)
	}
	sb := c.Supabase
	if sb.BaseURL == "" && (sb.ProjectID == "") != (sb.AnonKey == "") {
		return fmt.Errorf("config: %sSUPABASE_PROJECT_ID and %sSUPABASE_ANON_KEY must be set together", Prefix, Prefix)
	}
	// fake submissions are for local development only
	if c.IsProduction() && !sb.Enabled() {
		return fmt.Errorf("config: supabase is required in production; set %sSUPABASE_PROJECT_ID and %sSUPABASE_ANON_KEY", Prefix, Prefix)
	}
	return nil
}

// IsProduction reports whether Env names a production deployment.
func (c *Config) IsProduction() bool {
	switch strings.ToLower(c.Env) {
	case "prod", "production":
		return true
	}
	return false
}

// Addr is the listen address.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}
