package api

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/vmunix/marquee/internal/auth"
	"github.com/vmunix/marquee/internal/cache"
	"github.com/vmunix/marquee/internal/ratelimit"
)

// Error codes carried in the "code" field of error responses.
const (
	CodeInvalidInput  = "INVALID_INPUT"
	CodeUserExists    = "USER_EXISTS"
	CodeUnauthorized  = "UNAUTHORIZED"
	CodeNotFound      = "NOT_FOUND"
	CodeRateLimited   = "RATE_LIMITED"
	CodeUpstreamError = "UPSTREAM_ERROR"
	CodeInternal      = "INTERNAL_ERROR"
)

// Error is an error with an HTTP status and client-facing message.
type Error struct {
	Status  int
	Code    string
	Message string
	// RetryAfter is sent as the Retry-After header when positive.
	RetryAfter time.Duration
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func invalidInput(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Code: CodeInvalidInput, Message: msg}
}

// toError maps err to its HTTP form. Anything unrecognised came from the
// upstream fetch and is reported as a 500 with its message.
func toError(err error) *Error {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr
	}
	var panicErr *cache.PanicError
	if errors.As(err, &panicErr) {
		return &Error{Status: http.StatusInternalServerError, Code: CodeInternal, Message: "Internal server error", Err: err}
	}

	switch {
	case errors.Is(err, ratelimit.ErrRateLimited):
		return &Error{Status: http.StatusTooManyRequests, Code: CodeRateLimited, Message: "Rate limit exceeded", Err: err}
	case errors.Is(err, auth.ErrUserExists):
		return &Error{Status: http.StatusBadRequest, Code: CodeUserExists, Message: "User already exists", Err: err}
	case errors.Is(err, auth.ErrMissingField):
		return &Error{Status: http.StatusBadRequest, Code: CodeInvalidInput, Message: "Email and password are required", Err: err}
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &Error{Status: http.StatusUnauthorized, Code: CodeUnauthorized, Message: "Invalid credentials", Err: err}
	case errors.Is(err, auth.ErrInvalidToken):
		return &Error{Status: http.StatusUnauthorized, Code: CodeUnauthorized, Message: "Invalid or expired token", Err: err}
	case errors.Is(err, context.Canceled):
		return &Error{Status: http.StatusInternalServerError, Code: CodeInternal, Message: "Request canceled", Err: err}
	}
	return &Error{Status: http.StatusInternalServerError, Code: CodeUpstreamError, Message: err.Error(), Err: err}
}

func (s *Server) writeErr(w http.ResponseWriter, r *http.Request, err error) {
	e := toError(err)
	var panicErr *cache.PanicError
	switch {
	case errors.As(err, &panicErr):
		s.log.Error("panic recovered", "method", r.Method, "path", r.URL.Path, "panic", panicErr.Value, "stack", string(panicErr.Stack))
	case e.Status >= http.StatusInternalServerError:
		s.log.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	if e.RetryAfter > 0 {
		w.Header().Set("Retry-After", strconv.Itoa(int(math.Ceil(e.RetryAfter.Seconds()))))
	}
	writeError(w, e.Status, e.Code, e.Message)
}

// Error response
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, code int, errCode, message string) {
	writeJSON(w, code, errorResponse{Error: message, Code: errCode})
}

func writeJSON(w http.ResponseWriter, code int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(data)
}
