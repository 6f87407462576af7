// internal/config/validate_test.go
package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	cfg := &Config{
		TMDB: TMDBConfig{APIKey: "key"},
		Auth: AuthConfig{Secret: "0123456789abcdef"},
	}
	cfg.applyDefaults()
	return cfg
}

func TestValidate_Valid(t *testing.T) {
	assert.Empty(t, validConfig().Validate())
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"port", func(c *Config) { c.Server.Port = 70000 }, "server.port"},
		{"log level", func(c *Config) { c.Server.LogLevel = "verbose" }, "server.log_level"},
		{"static dir", func(c *Config) { c.Server.StaticDir = "/nonexistent/dist" }, "server.static_dir"},
		{"trusted proxy", func(c *Config) { c.Server.TrustedProxies = []string{"not-an-ip"} }, "server.trusted_proxies"},
		{"api key", func(c *Config) { c.TMDB.APIKey = "" }, "tmdb.api_key: required"},
		{"negative ttl", func(c *Config) { c.Cache.TTL.Duration = -1 }, "cache.ttl"},
		{"negative requests", func(c *Config) { c.RateLimit.Requests = -5 }, "rate_limit.requests"},
		{"negative window", func(c *Config) { c.RateLimit.Window.Duration = -1 }, "rate_limit.window"},
		{"secret missing", func(c *Config) { c.Auth.Secret = "" }, "auth.secret: required"},
		{"secret short", func(c *Config) { c.Auth.Secret = "short" }, "at least 16 characters"},
		{"janitor", func(c *Config) { c.Janitor.Interval.Duration = -1 }, "janitor.interval"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)
			errs := cfg.Validate()
			if assert.Len(t, errs, 1) {
				assert.Contains(t, errs[0], tt.want)
			}
		})
	}
}

func TestValidate_TrustedProxies(t *testing.T) {
	cfg := validConfig()
	cfg.Server.TrustedProxies = []string{"10.0.0.0/8", "127.0.0.1", "::1"}
	assert.Empty(t, cfg.Validate())
}

func TestValidate_StaticDir(t *testing.T) {
	cfg := validConfig()
	cfg.Server.StaticDir = t.TempDir()
	assert.Empty(t, cfg.Validate())
}

func TestValidate_Multiple(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()
	errs := cfg.Validate()
	joined := strings.Join(errs, "\n")
	assert.Contains(t, joined, "tmdb.api_key")
	assert.Contains(t, joined, "auth.secret")
}
