package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var configPath string

var rootCmd = &cobra.Command{
	Use:   "marquee",
	Short: "Movie discovery relay for TMDB",
	Long: `marquee - movie discovery relay for TMDB

Serves search, discovery, details and recommendations backed by
The Movie Database, with response caching, per-client rate limits
and simple accounts.`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default: discovered)")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("marquee {{.Version}}\n")
}
