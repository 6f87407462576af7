// internal/config/validate.go
package config

import (
	"fmt"
	"net/netip"
	"os"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	// Server validation
	if c.Server.Port != 0 && (c.Server.Port < 1 || c.Server.Port > 65535) {
		errs = append(errs, fmt.Sprintf("server.port: must be between 1 and 65535, got %d", c.Server.Port))
	}
	if !validLogLevels[c.Server.LogLevel] {
		errs = append(errs, fmt.Sprintf("server.log_level: must be one of debug, info, warn, error; got %q", c.Server.LogLevel))
	}
	if c.Server.StaticDir != "" {
		if info, err := os.Stat(c.Server.StaticDir); err != nil || !info.IsDir() {
			errs = append(errs, fmt.Sprintf("server.static_dir: %q is not a directory", c.Server.StaticDir))
		}
	}
	for _, p := range c.Server.TrustedProxies {
		if _, err := netip.ParsePrefix(p); err == nil {
			continue
		}
		if _, err := netip.ParseAddr(p); err != nil {
			errs = append(errs, fmt.Sprintf("server.trusted_proxies: %q is not an IP or CIDR", p))
		}
	}

	// TMDB validation
	if c.TMDB.APIKey == "" {
		errs = append(errs, "tmdb.api_key: required")
	}
	if c.TMDB.Timeout.Duration < 0 {
		errs = append(errs, "tmdb.timeout: must be positive")
	}

	// Cache validation
	if c.Cache.TTL.Duration < 0 {
		errs = append(errs, "cache.ttl: must be positive")
	}
	if c.Cache.GenresTTL.Duration < 0 {
		errs = append(errs, "cache.genres_ttl: must be positive")
	}

	// Rate limit validation
	if c.RateLimit.Requests < 0 {
		errs = append(errs, fmt.Sprintf("rate_limit.requests: must be at least 1, got %d", c.RateLimit.Requests))
	}
	if c.RateLimit.Window.Duration < 0 {
		errs = append(errs, "rate_limit.window: must be positive")
	}

	// Auth validation
	if c.Auth.Secret == "" {
		errs = append(errs, "auth.secret: required")
	} else if len(c.Auth.Secret) < 16 {
		errs = append(errs, "auth.secret: must be at least 16 characters")
	}

	if c.Janitor.Interval.Duration < 0 {
		errs = append(errs, "janitor.interval: must be positive")
	}

	return errs
}
