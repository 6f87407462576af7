package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/vmunix/marquee/internal/auth"
	"github.com/vmunix/marquee/internal/cache"
	"github.com/vmunix/marquee/internal/ratelimit"
	"github.com/vmunix/marquee/internal/tmdb"
)

//go:generate mockgen -destination=mocks/mock_deps.go -package=mocks github.com/vmunix/marquee/internal/api MovieSource,Accounts

// ErrMissingDependency is returned when a required dependency is nil.
var ErrMissingDependency = errors.New("missing required dependency")

// MovieSource fetches movie data from the upstream catalogue.
type MovieSource interface {
	SearchMovies(ctx context.Context, query string, page int) (tmdb.Object, error)
	SearchTitles(ctx context.Context, query string) (*tmdb.SearchPage, error)
	DiscoverMovies(ctx context.Context, genres string, page int) (tmdb.Object, error)
	Genres(ctx context.Context) (tmdb.Object, error)
	Movie(ctx context.Context, tmdbID int64) (tmdb.Object, error)
	Credits(ctx context.Context, tmdbID int64) (*tmdb.Credits, error)
	Recommendations(ctx context.Context, tmdbID int64, page int) (tmdb.Object, error)
	Trending(ctx context.Context, window string) (tmdb.Object, error)
}

// Accounts registers users and issues bearer tokens.
type Accounts interface {
	Register(ctx context.Context, email, password, name string) (*auth.User, error)
	Login(ctx context.Context, email, password string) (string, *auth.User, error)
	Verify(token string) (*auth.Claims, error)
}

// ResponseCache is a read-through cache of handler results.
type ResponseCache interface {
	GetOrCompute(ctx context.Context, key string, ttl time.Duration, compute cache.ComputeFunc) (any, error)
}

// RateLimiter decides whether a client may make another request.
type RateLimiter interface {
	Allow(clientID string, limit int, window time.Duration) ratelimit.Decision
}

// RequestObserver records served HTTP requests.
type RequestObserver interface {
	ObserveHTTP(method, route string, status int, elapsed time.Duration)
}

// ServerDeps contains all dependencies for the API server.
// Required dependencies must be non-nil; optional dependencies may be nil.
type ServerDeps struct {
	// Required dependencies
	Movies   MovieSource
	Accounts Accounts
	Cache    ResponseCache
	Limiter  RateLimiter

	// Optional dependencies (nil if not configured)
	Observer       RequestObserver
	MetricsHandler http.Handler
	Logger         *slog.Logger
}

// Validate checks that all required dependencies are provided.
func (d ServerDeps) Validate() error {
	if d.Movies == nil {
		return errors.New("movie source is required")
	}
	if d.Accounts == nil {
		return errors.New("accounts service is required")
	}
	if d.Cache == nil {
		return errors.New("response cache is required")
	}
	if d.Limiter == nil {
		return errors.New("rate limiter is required")
	}
	return nil
}
