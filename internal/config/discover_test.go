package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")

	path := DefaultPath()
	assert.Contains(t, path, ".config/marquee/config.toml")
}

func TestDefaultPath_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")

	path := DefaultPath()
	assert.Equal(t, "/custom/config/marquee/config.toml", path)
}

func TestDiscover_MARQUEE_CONFIG(t *testing.T) {
	tmp := t.TempDir()
	cfgPath := filepath.Join(tmp, "custom.toml")
	err := os.WriteFile(cfgPath, []byte("[server]"), 0644)
	require.NoError(t, err, "failed to create test config")

	t.Setenv("MARQUEE_CONFIG", cfgPath)

	path, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, cfgPath, path)
}

func TestDiscover_MARQUEE_CONFIG_NotFound(t *testing.T) {
	t.Setenv("MARQUEE_CONFIG", "/nonexistent/config.toml")

	_, err := Discover()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "MARQUEE_CONFIG")
}

func TestDiscover_CurrentDir(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "config.toml"), []byte("[server]"), 0644))

	t.Setenv("MARQUEE_CONFIG", "")
	t.Chdir(tmp)

	path, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, "./config.toml", path)
}

func TestDiscover_XDG(t *testing.T) {
	tmp := t.TempDir()
	xdg := filepath.Join(tmp, "xdg")
	require.NoError(t, os.MkdirAll(filepath.Join(xdg, "marquee"), 0755))
	cfgPath := filepath.Join(xdg, "marquee", "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[server]"), 0644))

	t.Setenv("MARQUEE_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", xdg)
	t.Chdir(t.TempDir())

	path, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, cfgPath, path)
}

func TestDiscover_NotFound(t *testing.T) {
	t.Setenv("MARQUEE_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	if _, err := os.Stat("/etc/marquee/config.toml"); err == nil {
		t.Skip("system config present")
	}

	_, err := Discover()
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "./config.toml")
}

func TestInitPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")

	t.Setenv("MARQUEE_CONFIG", "")
	assert.Equal(t, "/custom/config/marquee/config.toml", InitPath())

	t.Setenv("MARQUEE_CONFIG", "/srv/marquee.toml")
	assert.Equal(t, "/srv/marquee.toml", InitPath())
}
