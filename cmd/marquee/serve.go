package main

import (
	"database/sql"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vmunix/marquee/internal/api"
	"github.com/vmunix/marquee/internal/auth"
	"github.com/vmunix/marquee/internal/cache"
	"github.com/vmunix/marquee/internal/config"
	"github.com/vmunix/marquee/internal/metrics"
	"github.com/vmunix/marquee/internal/ratelimit"
	"github.com/vmunix/marquee/internal/server"
	"github.com/vmunix/marquee/internal/tmdb"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newLogger(w io.Writer, level string) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: parseLogLevel(level),
	}))
}

// app is the wired server.
type app struct {
	handler http.Handler
	cache   *cache.Cache
	limiter *ratelimit.Limiter
	db      *sql.DB
}

func (a *app) Close() error {
	return a.db.Close()
}

func buildApp(cfg *config.Config, logger *slog.Logger) (*app, error) {
	m := metrics.New("marquee")

	movies := tmdb.NewClient(cfg.TMDB.APIKey,
		tmdb.WithBaseURL(cfg.TMDB.BaseURL),
		tmdb.WithTimeout(cfg.TMDB.Timeout.Duration),
		tmdb.WithObserver(m),
	)

	db, err := auth.OpenDB(cfg.Auth.Database)
	if err != nil {
		return nil, fmt.Errorf("accounts db: %w", err)
	}
	accounts := auth.NewService(auth.NewStore(db), cfg.Auth.Secret,
		auth.WithTokenTTL(cfg.Auth.TokenTTL.Duration),
	)

	responses := cache.New(cache.NewMemoryStore(),
		cache.WithMetrics(m.Cache()),
		cache.WithLogger(logger.With("component", "cache")),
	)
	limiter := ratelimit.New(ratelimit.NewMemoryStore(),
		ratelimit.WithMetrics(m.RateLimit()),
	)

	proxies, err := api.ParseTrustedProxies(cfg.Server.TrustedProxies)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	srv, err := api.New(api.ServerDeps{
		Movies:         movies,
		Accounts:       accounts,
		Cache:          responses,
		Limiter:        limiter,
		Observer:       m,
		MetricsHandler: m.Handler(),
		Logger:         logger.With("component", "api"),
	}, api.Config{
		CacheTTL:       cfg.Cache.TTL.Duration,
		GenresTTL:      cfg.Cache.GenresTTL.Duration,
		RateLimit:      cfg.RateLimit.Requests,
		RateWindow:     cfg.RateLimit.Window.Duration,
		PerRoute:       cfg.RateLimit.PerRouteLimits(),
		StaticDir:      cfg.Server.StaticDir,
		CORSOrigins:    cfg.Server.CORSOrigins,
		TrustedProxies: proxies,
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &app{handler: srv.Handler(), cache: responses, limiter: limiter, db: db}, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	logger := newLogger(os.Stdout, cfg.Server.LogLevel)
	slog.SetDefault(logger)
	logger.Info("starting marquee", "version", version, "config", path)

	a, err := buildApp(cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	runner := server.NewRunner(a.handler, a.cache, a.limiter, server.Config{
		Addr:            net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		JanitorInterval: cfg.Janitor.Interval.Duration,
	}, logger.With("component", "server"))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runner.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	logger.Info("server stopped")
	return nil
}
