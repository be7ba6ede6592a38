package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anchorpoint-it.com/infopanel/internal/network"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 4000, cfg.Server.Port)
	assert.Equal(t, ":4000", cfg.Server.Addr())
	assert.Equal(t, network.DefaultPublicIPURL, cfg.Lookup.URL)
	assert.Zero(t, cfg.Lookup.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.Empty(t, cfg.Log.Path)
	assert.Equal(t, "3:04 01/02/2006", cfg.Display.DateTimeLayout)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_HOST", "127.0.0.1")
	t.Setenv("APP_PORT", "8081")
	t.Setenv("PUBLIC_IP_URL", "http://localhost:9000/ip")
	t.Setenv("PUBLIC_IP_TIMEOUT", "3s")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("LOG_PATH", "/tmp/panel.log")
	t.Setenv("DATETIME_LAYOUT", "2006-01-02 15:04")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8081", cfg.Server.Addr())
	assert.Equal(t, "http://localhost:9000/ip", cfg.Lookup.URL)
	assert.Equal(t, 3*time.Second, cfg.Lookup.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.Equal(t, "/tmp/panel.log", cfg.Log.Path)
	assert.Equal(t, "2006-01-02 15:04", cfg.Display.DateTimeLayout)
	assert.NoError(t, cfg.Validate())
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("APP_PORT", "not-a-port")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing server config")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		cfg, err := Load()
		require.NoError(t, err)
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "APP_PORT"},
		{"port too high", func(c *Config) { c.Server.Port = 70000 }, "APP_PORT"},
		{"ftp url", func(c *Config) { c.Lookup.URL = "ftp://example.com" }, "http or https"},
		{"no host", func(c *Config) { c.Lookup.URL = "https:///path" }, "host"},
		{"bad url", func(c *Config) { c.Lookup.URL = "http://[::1" }, "not a valid URL"},
		{"negative timeout", func(c *Config) { c.Lookup.Timeout = -time.Second }, "PUBLIC_IP_TIMEOUT"},
		{"bad level", func(c *Config) { c.Log.Level = "loud" }, "LOG_LEVEL"},
		{"bad format", func(c *Config) { c.Log.Format = "xml" }, "LOG_FORMAT"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
