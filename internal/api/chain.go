package api

import (
	"context"
	"net/http"
	"time"

	"github.com/vmunix/marquee/internal/cache"
	"github.com/vmunix/marquee/internal/ratelimit"
)

// Handler produces the JSON body for a request.
type Handler func(r *http.Request) (any, error)

// Stage wraps a Handler with extra behaviour.
type Stage func(Handler) Handler

// Chain wraps h in stages. The first stage runs outermost.
func Chain(h Handler, stages ...Stage) Handler {
	for i := len(stages) - 1; i >= 0; i-- {
		h = stages[i](h)
	}
	return h
}

// movieRoute builds a rate limited, cached endpoint.
func (s *Server) movieRoute(scope string, ttl time.Duration, h Handler) http.HandlerFunc {
	return s.serve(Chain(h, s.rateLimit(scope), s.cached(ttl)), http.StatusOK)
}

// rateLimit rejects the request once the client has used its quota.
// Nothing behind it runs for a rejected request.
func (s *Server) rateLimit(scope string) Stage {
	return func(next Handler) Handler {
		return func(r *http.Request) (any, error) {
			id := clientIP(r, s.cfg.TrustedProxies)
			if s.cfg.PerRoute {
				id = scope + "|" + id
			}

			d := s.deps.Limiter.Allow(id, s.cfg.RateLimit, s.cfg.RateWindow)
			if !d.Allowed {
				s.log.Debug("rate limited", "client", id, "retry_after", d.RetryAfter)
				return nil, &Error{
					Status:     http.StatusTooManyRequests,
					Code:       CodeRateLimited,
					Message:    "Rate limit exceeded",
					RetryAfter: d.RetryAfter,
					Err:        ratelimit.ErrRateLimited,
				}
			}
			return next(r)
		}
	}
}

// cached serves a stored result for the request's path and query, or runs
// next and stores what it returns. Errors are never stored.
func (s *Server) cached(ttl time.Duration) Stage {
	return func(next Handler) Handler {
		return func(r *http.Request) (any, error) {
			return s.deps.Cache.GetOrCompute(r.Context(), cache.RequestKey(r), ttl, func(ctx context.Context) (any, error) {
				return next(r.WithContext(ctx))
			})
		}
	}
}

// serve adapts a Handler to net/http, encoding its result with status.
func (s *Server) serve(h Handler, status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := h(r)
		if err != nil {
			s.writeErr(w, r, err)
			return
		}
		writeJSON(w, status, body)
	}
}
