// internal/config/load_test.go
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(cfgPath, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return cfgPath
}

const minimalConfig = `
[tmdb]
api_key = "tmdb-key"

[auth]
secret = "0123456789abcdef"
`

func TestLoad_Valid(t *testing.T) {
	cfgPath := writeConfig(t, minimalConfig+`
[server]
port = 8080
`)

	cfg, err := Load(cfgPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected port 8080, got %d", cfg.Server.Port)
	}
	if cfg.TMDB.APIKey != "tmdb-key" {
		t.Errorf("expected api key tmdb-key, got %q", cfg.TMDB.APIKey)
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Server.Port != 8484 {
		t.Errorf("expected default port 8484, got %d", cfg.Server.Port)
	}
	if cfg.Cache.TTL.Duration != time.Hour {
		t.Errorf("expected cache ttl 1h, got %v", cfg.Cache.TTL)
	}
	if cfg.Cache.GenresTTL.Duration != 24*time.Hour {
		t.Errorf("expected genres ttl 24h, got %v", cfg.Cache.GenresTTL)
	}
	if cfg.RateLimit.Requests != 100 || cfg.RateLimit.Window.Duration != time.Hour {
		t.Errorf("expected 100 requests per hour, got %d per %v", cfg.RateLimit.Requests, cfg.RateLimit.Window)
	}
	if !cfg.RateLimit.PerRouteLimits() {
		t.Error("expected per-route limits by default")
	}
	if cfg.Auth.Database != ":memory:" {
		t.Errorf("expected in-memory database, got %q", cfg.Auth.Database)
	}
	if cfg.TMDB.Timeout.Duration != 10*time.Second {
		t.Errorf("expected tmdb timeout 10s, got %v", cfg.TMDB.Timeout)
	}
}

func TestLoad_Durations(t *testing.T) {
	cfg, err := Load(writeConfig(t, minimalConfig+`
[cache]
ttl = "90s"

[rate_limit]
window = "15m"
per_route = false
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Cache.TTL.Duration != 90*time.Second {
		t.Errorf("expected 90s, got %v", cfg.Cache.TTL)
	}
	if cfg.RateLimit.Window.Duration != 15*time.Minute {
		t.Errorf("expected 15m, got %v", cfg.RateLimit.Window)
	}
	if cfg.RateLimit.PerRouteLimits() {
		t.Error("expected shared limits when per_route = false")
	}
}

func TestLoad_BadDuration(t *testing.T) {
	_, err := Load(writeConfig(t, minimalConfig+`
[cache]
ttl = "forever"
`))
	if err == nil {
		t.Fatal("expected parse error for bad duration")
	}
	if !strings.Contains(err.Error(), "parsing config") {
		t.Errorf("expected parsing error, got %v", err)
	}
}

func TestLoad_MissingEnvVar(t *testing.T) {
	os.Unsetenv("MARQUEE_TEST_MISSING_KEY")
	cfgPath := writeConfig(t, `
[tmdb]
api_key = "${MARQUEE_TEST_MISSING_KEY}"

[auth]
secret = "0123456789abcdef"
`)

	_, err := Load(cfgPath)
	if err == nil {
		t.Fatal("expected error for missing env var")
	}
	if !strings.Contains(err.Error(), "MARQUEE_TEST_MISSING_KEY") {
		t.Errorf("expected MARQUEE_TEST_MISSING_KEY in error, got %v", err)
	}
}

func TestLoad_EnvVarResolved(t *testing.T) {
	t.Setenv("MARQUEE_TEST_TMDB_KEY", "from-env")
	cfg, err := Load(writeConfig(t, `
[tmdb]
api_key = "${MARQUEE_TEST_TMDB_KEY}"

[auth]
secret = "0123456789abcdef"
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.TMDB.APIKey != "from-env" {
		t.Errorf("expected from-env, got %q", cfg.TMDB.APIKey)
	}
}

func TestLoad_ValidationError(t *testing.T) {
	cfgPath := writeConfig(t, `
[server]
port = 70000
`)

	_, err := Load(cfgPath)
	if err == nil {
		t.Fatal("expected validation error")
	}

	var cfgErr *ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("expected *ConfigError, got %T", err)
	}
	if len(cfgErr.Errors) != 3 {
		t.Errorf("expected 3 validation errors, got %v", cfgErr.Errors)
	}
	if cfgErr.Path != cfgPath {
		t.Errorf("expected path %s, got %s", cfgPath, cfgErr.Path)
	}
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load("/nonexistent/config.toml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "reading config") {
		t.Errorf("expected reading error, got %v", err)
	}
}

func TestLoadWithoutValidation(t *testing.T) {
	os.Unsetenv("MARQUEE_TEST_MISSING_SECRET")
	cfg, err := LoadWithoutValidation(writeConfig(t, `
[server]
port = 70000

[auth]
secret = "${MARQUEE_TEST_MISSING_SECRET}"
`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Server.Port != 70000 {
		t.Errorf("expected raw port 70000, got %d", cfg.Server.Port)
	}
	if cfg.Auth.Secret != "${MARQUEE_TEST_MISSING_SECRET}" {
		t.Errorf("expected unresolved reference, got %q", cfg.Auth.Secret)
	}
}
