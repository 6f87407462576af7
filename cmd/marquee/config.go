package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vmunix/marquee/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management",
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write an example configuration file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runConfigInit,
}

var configCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate configuration file",
	Long:  "Validates config.toml syntax, required fields, and environment variable substitution without starting the server.",
	Args:  cobra.NoArgs,
	RunE:  runConfigCheck,
}

var forceInit bool

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd, configCheckCmd)
	configInitCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing file")
}

// resolveConfigPath returns --config when given, otherwise the discovered path.
func resolveConfigPath() (string, error) {
	if configPath != "" {
		return configPath, nil
	}
	return config.Discover()
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := config.InitPath()
	if len(args) > 0 {
		path = args[0]
	}

	if err := config.WriteDefault(path, forceInit); err != nil {
		if errors.Is(err, config.ErrExists) {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		return fmt.Errorf("write config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	fmt.Fprintln(cmd.OutOrStdout(), "Set TMDB_API_KEY and MARQUEE_AUTH_SECRET, then run 'marquee serve'.")
	return nil
}

func runConfigCheck(cmd *cobra.Command, _ []string) error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Validating %s...\n\n", path)

	cfg, err := config.Load(path)
	if err != nil {
		var configErr *config.ConfigError
		if errors.As(err, &configErr) {
			printConfigErrors(out, configErr)
			return fmt.Errorf("configuration invalid")
		}
		return fmt.Errorf("failed to load config: %w", err)
	}

	printConfigSummary(out, cfg)
	fmt.Fprintln(out, "\nConfiguration valid!")
	return nil
}

func printConfigErrors(w io.Writer, e *config.ConfigError) {
	fmt.Fprintf(w, "Problems in %s:\n\n", e.Path)

	if len(e.Missing) > 0 {
		fmt.Fprintln(w, "Missing environment variables:")
		for _, m := range e.Missing {
			fmt.Fprintf(w, "  - %s\n", m)
		}
		fmt.Fprintln(w)
	}

	if len(e.Errors) > 0 {
		fmt.Fprintln(w, "Validation errors:")
		for _, err := range e.Errors {
			fmt.Fprintf(w, "  - %s\n", err)
		}
		fmt.Fprintln(w)
	}
}

func printConfigSummary(w io.Writer, cfg *config.Config) {
	fmt.Fprintln(w, "Configuration Summary:")
	fmt.Fprintf(w, "  Server:     %s:%d (log: %s)\n", cfg.Server.Host, cfg.Server.Port, cfg.Server.LogLevel)
	fmt.Fprintf(w, "  TMDB:       %s (timeout %s)\n", cfg.TMDB.BaseURL, cfg.TMDB.Timeout)
	fmt.Fprintf(w, "  Cache:      %s (genres %s)\n", cfg.Cache.TTL, cfg.Cache.GenresTTL)

	scope := "per route"
	if !cfg.RateLimit.PerRouteLimits() {
		scope = "shared"
	}
	fmt.Fprintf(w, "  Rate limit: %d per %s, %s\n", cfg.RateLimit.Requests, cfg.RateLimit.Window, scope)
	fmt.Fprintf(w, "  Accounts:   %s\n", cfg.Auth.Database)
	fmt.Fprintf(w, "  CORS:       %s\n", strings.Join(cfg.Server.CORSOrigins, ", "))
	if cfg.Server.StaticDir != "" {
		fmt.Fprintf(w, "  Frontend:   %s\n", cfg.Server.StaticDir)
	}
}
