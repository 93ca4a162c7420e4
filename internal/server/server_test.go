package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kindling-dev/kindling/internal/config"
	"github.com/kindling-dev/kindling/internal/logging"
)

func newTestServer(t *testing.T) (*Server, *bytes.Buffer) {
	t.Helper()

	logBuf := &bytes.Buffer{}
	logger := logging.NewLogger(&logging.LoggerConfig{
		Level:  logging.LevelInfo,
		Format: "json",
		Output: logBuf,
	})

	cfg := &config.Config{
		Name:    "my-api",
		Version: "0.1.0",
		Server: config.ServerConfig{
			Port:       3000,
			Host:       "localhost",
			Middleware: []string{"logger"},
		},
	}

	srv, err := New(cfg, logger)
	require.NoError(t, err)
	return srv, logBuf
}

func TestHandleIndex(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, "Welcome to the my-api API", payload["message"])
	assert.Equal(t, "my-api", payload["name"])
	assert.Equal(t, "0.1.0", payload["version"])
}

func TestHandleHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestUnknownRouteIs404(t *testing.T) {
	srv, _ := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLoggingMiddleware(t *testing.T) {
	srv, logBuf := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(logBuf.Bytes(), &entry))
	assert.Equal(t, "request", entry["msg"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/api/health", entry["path"])
	assert.Equal(t, float64(http.StatusOK), entry["status"])
}

func TestLoggingMiddleware_RecordsErrorStatus(t *testing.T) {
	srv, logBuf := newTestServer(t)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)

	line := strings.TrimSpace(logBuf.String())
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(line), &entry))
	assert.Equal(t, float64(http.StatusNotFound), entry["status"])
}

func TestChainOrder(t *testing.T) {
	var order []string

	tag := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	chain := NewChain()
	chain.Add(tag("inner"))
	chain.Add(tag("outer"))

	handler := chain.Apply(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		order = append(order, "handler")
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, []string{"outer", "inner", "handler"}, order)
}

func TestNew_NilConfig(t *testing.T) {
	_, err := New(nil, nil)
	assert.Error(t, err)
}
