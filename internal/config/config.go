package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/caarlos0/env/v9"
	"go.uber.org/zap/zapcore"
)

// Config holds all configuration for the panel binaries.
type Config struct {
	Server  ServerConfig
	Lookup  LookupConfig
	Log     LogConfig
	Display DisplayConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Host string `env:"APP_HOST"`
	Port int    `env:"APP_PORT" envDefault:"4000"`
}

// LookupConfig holds the public IP lookup settings.
type LookupConfig struct {
	URL string `env:"PUBLIC_IP_URL" envDefault:"https://api.ipify.org?format=json"`
	// Zero leaves the HTTP client without a timeout.
	Timeout time.Duration `env:"PUBLIC_IP_TIMEOUT" envDefault:"0s"`
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"console"`
	Path   string `env:"LOG_PATH"`
}

// DisplayConfig holds presentation settings shared by the web and terminal views.
type DisplayConfig struct {
	DateTimeLayout string `env:"DATETIME_LAYOUT" envDefault:"3:04 01/02/2006"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}

	if err := env.Parse(&cfg.Server); err != nil {
		return nil, fmt.Errorf("parsing server config: %w", err)
	}
	if err := env.Parse(&cfg.Lookup); err != nil {
		return nil, fmt.Errorf("parsing lookup config: %w", err)
	}
	if err := env.Parse(&cfg.Log); err != nil {
		return nil, fmt.Errorf("parsing log config: %w", err)
	}
	if err := env.Parse(&cfg.Display); err != nil {
		return nil, fmt.Errorf("parsing display config: %w", err)
	}

	return cfg, nil
}

// Addr returns the listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("APP_PORT must be between 1 and 65535, got %d", c.Server.Port)
	}

	u, err := url.Parse(c.Lookup.URL)
	if err != nil {
		return fmt.Errorf("PUBLIC_IP_URL is not a valid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("PUBLIC_IP_URL must use http or https, got %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("PUBLIC_IP_URL must include a host")
	}
	if c.Lookup.Timeout < 0 {
		return fmt.Errorf("PUBLIC_IP_TIMEOUT must not be negative")
	}

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be console or json, got %q", c.Log.Format)
	}

	return nil
}
