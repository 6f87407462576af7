// Package api implements the marquee HTTP API.
package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/netip"
	"time"

	"github.com/rs/cors"

	"github.com/vmunix/marquee/internal/ratelimit"
)

// Config holds API server configuration.
type Config struct {
	CacheTTL  time.Duration
	GenresTTL time.Duration

	RateLimit  int
	RateWindow time.Duration
	// PerRoute keeps a separate window per route for each client.
	PerRoute bool

	StaticDir      string
	CORSOrigins    []string
	TrustedProxies []netip.Prefix
}

// DefaultConfig returns the stock limits: one hour caching (a day for
// genres) and 100 requests per client per hour on each route.
func DefaultConfig() Config {
	return Config{
		CacheTTL:    time.Hour,
		GenresTTL:   24 * time.Hour,
		RateLimit:   100,
		RateWindow:  time.Hour,
		PerRoute:    true,
		CORSOrigins: []string{"*"},
	}
}

// Server is the marquee API server.
type Server struct {
	deps   ServerDeps
	cfg    Config
	log    *slog.Logger
	static http.Handler
}

// New creates a new API server with validated dependencies.
func New(deps ServerDeps, cfg Config) (*Server, error) {
	if err := deps.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingDependency, err)
	}
	if err := ratelimit.Validate(cfg.RateLimit, cfg.RateWindow); err != nil {
		return nil, err
	}
	if cfg.CacheTTL <= 0 || cfg.GenresTTL <= 0 {
		return nil, fmt.Errorf("invalid cache ttl %v (genres %v)", cfg.CacheTTL, cfg.GenresTTL)
	}

	log := deps.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	s := &Server{deps: deps, cfg: cfg, log: log}
	if cfg.StaticDir != "" {
		s.static = newStaticHandler(cfg.StaticDir)
	}
	return s, nil
}

// RegisterRoutes registers API routes on the given mux.
func (s *Server) RegisterRoutes(mux *http.ServeMux) {
	ttl := s.cfg.CacheTTL

	// Movies
	mux.HandleFunc("GET /api/movies/search", s.movieRoute("search", ttl, s.searchMovies))
	mux.HandleFunc("GET /api/movies/genres", s.movieRoute("genres", s.cfg.GenresTTL, s.genres))
	mux.HandleFunc("GET /api/movies/discover/{genre}", s.movieRoute("discover", ttl, s.discoverByGenre))
	mux.HandleFunc("GET /api/movies/trending", s.movieRoute("trending", ttl, s.trending))
	mux.HandleFunc("GET /api/movies/suggestions", s.movieRoute("suggestions", ttl, s.suggestions))
	mux.HandleFunc("GET /api/movies/{id}", s.movieRoute("details", ttl, s.movieDetails))
	// recommendations and cast share one pattern; {id}/{sub} would otherwise
	// overlap discover/{genre} ambiguously.
	mux.HandleFunc("GET /api/movies/{id}/{sub}", s.movieRoute("related", ttl, s.movieRelated))

	// Accounts
	mux.HandleFunc("POST /api/register", s.serve(s.register, http.StatusCreated))
	mux.HandleFunc("POST /api/login", s.serve(s.login, http.StatusOK))
	mux.HandleFunc("GET /api/me", s.serve(s.me, http.StatusOK))

	// System
	mux.HandleFunc("GET /healthz", s.healthz)
	if s.deps.MetricsHandler != nil {
		mux.Handle("GET /metrics", s.deps.MetricsHandler)
	}

	mux.HandleFunc("/", s.fallback)
}

// Handler returns the complete HTTP handler: routes wrapped with CORS,
// panic recovery and request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	s.RegisterRoutes(mux)

	c := cors.New(cors.Options{
		AllowedOrigins: s.cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		ExposedHeaders: []string{"Retry-After"},
	})

	return s.logRequests(c.Handler(s.recoverPanics(mux)))
}

func (s *Server) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// fallback serves the frontend when configured and a JSON 404 otherwise.
func (s *Server) fallback(w http.ResponseWriter, r *http.Request) {
	if s.static != nil && (r.Method == http.MethodGet || r.Method == http.MethodHead) {
		s.static.ServeHTTP(w, r)
		return
	}
	writeError(w, http.StatusNotFound, CodeNotFound, "Not found")
}
