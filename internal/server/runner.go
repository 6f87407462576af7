// Package server runs the HTTP listener and background maintenance.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	defaultJanitorInterval = time.Minute
	defaultShutdownTimeout = 30 * time.Second
)

// Config for the server runner.
type Config struct {
	Addr            string
	JanitorInterval time.Duration
	ShutdownTimeout time.Duration
}

// Pruner drops expired cache entries.
type Pruner interface {
	Prune() int
}

// Sweeper drops idle rate limit windows.
type Sweeper interface {
	Sweep() int
}

// Runner manages the HTTP server and the janitor.
type Runner struct {
	handler http.Handler
	cache   Pruner
	limiter Sweeper
	config  Config
	logger  *slog.Logger
}

// NewRunner creates a new runner.
func NewRunner(handler http.Handler, cache Pruner, limiter Sweeper, cfg Config, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.JanitorInterval <= 0 {
		cfg.JanitorInterval = defaultJanitorInterval
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}
	return &Runner{
		handler: handler,
		cache:   cache,
		limiter: limiter,
		config:  cfg,
		logger:  logger,
	}
}

// Run listens on the configured address and serves until ctx is canceled.
func (r *Runner) Run(ctx context.Context) error {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", r.config.Addr)
	if err != nil {
		return err
	}
	return r.Serve(ctx, ln)
}

// Serve serves on ln until ctx is canceled, then shuts down gracefully.
// A clean shutdown returns nil.
func (r *Runner) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           r.handler,
		ReadHeaderTimeout: 10 * time.Second,
		ErrorLog:          slog.NewLogLogger(r.logger.Handler(), slog.LevelWarn),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		r.logger.Info("server started", "addr", ln.Addr().String())
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		r.logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), r.config.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		r.janitor(gctx)
		return nil
	})

	return g.Wait()
}

// janitor periodically prunes expired cache entries and idle rate windows
// until ctx ends.
func (r *Runner) janitor(ctx context.Context) {
	log := r.logger.With("component", "janitor")
	ticker := time.NewTicker(r.config.JanitorInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.sweep(log)
		}
	}
}

func (r *Runner) sweep(log *slog.Logger) {
	var pruned, swept int
	if r.cache != nil {
		pruned = r.cache.Prune()
	}
	if r.limiter != nil {
		swept = r.limiter.Sweep()
	}
	if pruned > 0 || swept > 0 {
		log.Debug("sweep", "cache_pruned", pruned, "idle_clients", swept)
	}
}
