package server

import (
	"net/http"
	"time"

	"github.com/kindling-dev/kindling/internal/logging"
)

// Middleware wraps an HTTP handler with additional behavior.
type Middleware func(http.Handler) http.Handler

// Chain composes middlewares in the onion model: the last middleware
// added becomes the outermost wrapper, so requests flow through
// middlewares in reverse order of addition.
type Chain struct {
	middlewares []Middleware
}

// NewChain creates an empty middleware chain.
func NewChain() *Chain {
	return &Chain{middlewares: make([]Middleware, 0, 4)}
}

// Add appends a middleware to the chain.
func (c *Chain) Add(middleware Middleware) {
	c.middlewares = append(c.middlewares, middleware)
}

// Apply wraps handler with every middleware in the chain.
func (c *Chain) Apply(handler http.Handler) http.Handler {
	wrapped := handler
	for _, middleware := range c.middlewares {
		wrapped = middleware(wrapped)
	}
	return wrapped
}

// statusRecorder captures the response status for logging.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// LoggingMiddleware logs one structured line per request with method,
// path, status and duration. The request itself passes through
// untouched.
func LoggingMiddleware(logger logging.Logger) Middleware {
	requestLogger := logger.WithComponent("http")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(recorder, r)

			requestLogger.Info(r.Context(), "request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", recorder.status,
				"duration_ms", time.Since(start).Milliseconds(),
				"remote", r.RemoteAddr,
			)
		})
	}
}
