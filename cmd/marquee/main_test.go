package main

import (
	"bytes"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vmunix/marquee/internal/config"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"DEBUG", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		if got := parseLogLevel(tt.in); got != tt.want {
			t.Errorf("parseLogLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

// runCLI executes the root command with args and returns its output.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	configPath, forceInit = "", false
	t.Cleanup(func() { configPath, forceInit = "", false })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	out, err := runCLI(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "marquee dev\n", out)
}

func TestConfigInitAndCheck(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "tmdb-key")
	t.Setenv("MARQUEE_AUTH_SECRET", "0123456789abcdef")
	path := filepath.Join(t.TempDir(), "config.toml")

	out, err := runCLI(t, "config", "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	_, err = runCLI(t, "config", "init", path)
	assert.ErrorContains(t, err, "already exists")

	_, err = runCLI(t, "config", "init", "--force", path)
	assert.NoError(t, err)

	out, err = runCLI(t, "config", "check", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Rate limit: 100 per 1h0m0s, per route")
	assert.Contains(t, out, "Configuration valid!")
}

func TestConfigCheck_Invalid(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "")
	t.Setenv("MARQUEE_AUTH_SECRET", "")
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, config.WriteDefault(path, false))

	out, err := runCLI(t, "config", "check", "--config", path)
	require.Error(t, err)
	assert.Contains(t, out, "Problems in "+path)
	assert.Contains(t, out, "Missing environment variables:")
	assert.Contains(t, out, "TMDB_API_KEY")
	assert.Contains(t, out, "MARQUEE_AUTH_SECRET")
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[tmdb]
api_key = "tmdb-key"
base_url = "http://127.0.0.1:1"

[auth]
secret = "0123456789abcdef"

[server]
trusted_proxies = ["10.0.0.0/8"]
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	cfg, err := config.Load(path)
	require.NoError(t, err)
	return cfg
}

func TestBuildApp(t *testing.T) {
	a, err := buildApp(testConfig(t), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() { _ = a.Close() })

	w := httptest.NewRecorder()
	a.handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	a.handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "marquee_cache_entries")

	w = httptest.NewRecorder()
	a.handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/movies/trending", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code, "unreachable upstream")
	assert.Equal(t, 0, a.cache.Len())
	assert.Equal(t, 1, a.limiter.Clients())
}

func TestBuildApp_BadProxy(t *testing.T) {
	cfg := testConfig(t)
	cfg.Server.TrustedProxies = []string{"nope"}

	_, err := buildApp(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	assert.ErrorContains(t, err, "trusted proxies")
}
