// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

// Config is the root configuration structure.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	TMDB      TMDBConfig      `toml:"tmdb"`
	Cache     CacheConfig     `toml:"cache"`
	RateLimit RateLimitConfig `toml:"rate_limit"`
	Auth      AuthConfig      `toml:"auth"`
	Janitor   JanitorConfig   `toml:"janitor"`
}

type ServerConfig struct {
	Host           string   `toml:"host"`
	Port           int      `toml:"port"`
	LogLevel       string   `toml:"log_level"`
	StaticDir      string   `toml:"static_dir"`
	CORSOrigins    []string `toml:"cors_origins"`
	TrustedProxies []string `toml:"trusted_proxies"`
}

type TMDBConfig struct {
	APIKey  string   `toml:"api_key"`
	BaseURL string   `toml:"base_url"`
	Timeout Duration `toml:"timeout"`
}

type CacheConfig struct {
	TTL       Duration `toml:"ttl"`
	GenresTTL Duration `toml:"genres_ttl"`
}

type RateLimitConfig struct {
	Requests int      `toml:"requests"`
	Window   Duration `toml:"window"`
	// PerRoute gives every endpoint its own window per client.
	PerRoute *bool `toml:"per_route"`
}

type AuthConfig struct {
	Secret   string   `toml:"secret"`
	TokenTTL Duration `toml:"token_ttl"`
	Database string   `toml:"database"`
}

type JanitorConfig struct {
	Interval Duration `toml:"interval"`
}

// Duration is a time.Duration written as a Go duration string ("90s", "1h").
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// PerRouteLimits reports whether rate limit windows are kept per endpoint.
func (c RateLimitConfig) PerRouteLimits() bool {
	return c.PerRoute == nil || *c.PerRoute
}

// Load reads, parses, defaults, and validates the configuration file.
// Unresolved environment variables and validation failures are returned
// together as a *ConfigError.
func Load(path string) (*Config, error) {
	cfg, missing, err := load(path)
	if err != nil {
		return nil, err
	}

	cfgErr := &ConfigError{Path: path, Missing: missing, Errors: cfg.Validate()}
	if cfgErr.HasErrors() {
		return nil, cfgErr
	}
	return cfg, nil
}

// LoadWithoutValidation reads and parses the file and applies defaults, but
// skips validation and tolerates unresolved environment variables.
func LoadWithoutValidation(path string) (*Config, error) {
	cfg, _, err := load(path)
	return cfg, err
}

func load(path string) (*Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading config: %w", err)
	}

	content, missing := substituteEnvVars(string(data))

	var cfg Config
	if _, err := toml.Decode(content, &cfg); err != nil {
		return nil, nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, missing, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8484
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = "info"
	}
	if len(c.Server.CORSOrigins) == 0 {
		c.Server.CORSOrigins = []string{"*"}
	}
	if c.TMDB.BaseURL == "" {
		c.TMDB.BaseURL = "https://api.themoviedb.org"
	}
	if c.TMDB.Timeout.Duration == 0 {
		c.TMDB.Timeout.Duration = 10 * time.Second
	}
	if c.Cache.TTL.Duration == 0 {
		c.Cache.TTL.Duration = time.Hour
	}
	if c.Cache.GenresTTL.Duration == 0 {
		c.Cache.GenresTTL.Duration = 24 * time.Hour
	}
	if c.RateLimit.Requests == 0 {
		c.RateLimit.Requests = 100
	}
	if c.RateLimit.Window.Duration == 0 {
		c.RateLimit.Window.Duration = time.Hour
	}
	if c.Auth.TokenTTL.Duration == 0 {
		c.Auth.TokenTTL.Duration = 24 * time.Hour
	}
	if c.Auth.Database == "" {
		c.Auth.Database = ":memory:"
	}
	if c.Janitor.Interval.Duration == 0 {
		c.Janitor.Interval.Duration = time.Minute
	}
}

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?:(:-|:\?)([^}]*))?\}`)

// substituteEnvVars expands environment references in content. It returns
// the names of variables that were unset (or empty for :?) and had no default;
// those references are left unchanged. Comment lines are copied as is.
func substituteEnvVars(content string) (string, []string) {
	var missing []string
	expand := func(match string) string {
		m := envVarPattern.FindStringSubmatch(match)
		name, op, arg := m[1], m[2], m[3]
		value, ok := os.LookupEnv(name)

		switch op {
		case ":-":
			if !ok || value == "" {
				return arg
			}
			return value
		case ":?":
			if !ok || value == "" {
				missing = append(missing, name+" ("+strings.TrimSpace(arg)+")")
				return match
			}
			return value
		}

		if !ok {
			missing = append(missing, name)
			return match
		}
		return value
	}

	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "#") {
			continue
		}
		lines[i] = envVarPattern.ReplaceAllStringFunc(line, expand)
	}
	return strings.Join(lines, "\n"), missing
}
