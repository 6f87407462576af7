package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	require.NoError(t, WriteDefault(path, false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[rate_limit]")
	assert.Contains(t, string(data), "${TMDB_API_KEY:?")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestWriteDefault_Loads(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "tmdb-key")
	t.Setenv("MARQUEE_AUTH_SECRET", "0123456789abcdef")
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, WriteDefault(path, false))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "tmdb-key", cfg.TMDB.APIKey)
	assert.Equal(t, 8484, cfg.Server.Port)
	assert.Equal(t, 24*time.Hour, cfg.Cache.GenresTTL.Duration)
	assert.True(t, cfg.RateLimit.PerRouteLimits())
}

func TestWriteDefault_MissingSecrets(t *testing.T) {
	t.Setenv("TMDB_API_KEY", "")
	t.Setenv("MARQUEE_AUTH_SECRET", "")
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, WriteDefault(path, false))

	_, err := Load(path)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, []string{"TMDB_API_KEY", "MARQUEE_AUTH_SECRET"}, cfgErr.MissingNames())
}

func TestWriteDefault_Exists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("# mine\n"), 0644))

	err := WriteDefault(path, false)
	require.ErrorIs(t, err, ErrExists)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# mine\n", string(data))

	require.NoError(t, WriteDefault(path, true))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[tmdb]")

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")
}

func TestConfig_Write_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := validConfig()
	cfg.Server.Port = 9090
	cfg.Cache.TTL.Duration = 5 * time.Minute

	require.NoError(t, cfg.Write(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 9090, loaded.Server.Port)
	assert.Equal(t, 5*time.Minute, loaded.Cache.TTL.Duration)
	assert.Equal(t, cfg.Auth.Secret, loaded.Auth.Secret)
}
