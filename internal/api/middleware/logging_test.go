package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

func serveLogged(t *testing.T, h echo.HandlerFunc) map[string]any {
	t.Helper()

	var buf bytes.Buffer
	e := echo.New()
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: func() string { return "req-1" },
	}))
	e.Use(RequestLogger(zerolog.New(&buf)))
	e.GET("/", h)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/?q=1", nil))

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("expected one JSON log line, got %q: %v", buf.String(), err)
	}
	return entry
}

func TestRequestLogger_SignedInRequest(t *testing.T) {
	entry := serveLogged(t, func(c echo.Context) error {
		c.Set(UsernameKey, "alice")
		return c.String(http.StatusOK, "ok")
	})

	if entry["level"] != "info" || entry["message"] != "request" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if entry["method"] != "GET" || entry["uri"] != "/?q=1" {
		t.Fatalf("unexpected method/uri: %+v", entry)
	}
	if entry["status"] != float64(http.StatusOK) {
		t.Fatalf("unexpected status: %v", entry["status"])
	}
	if _, ok := entry["latency"]; !ok {
		t.Fatalf("missing latency: %+v", entry)
	}
	if entry["request_id"] != "req-1" {
		t.Fatalf("unexpected request id: %v", entry["request_id"])
	}
	if entry["username"] != "alice" {
		t.Fatalf("unexpected username: %v", entry["username"])
	}
}

func TestRequestLogger_AnonymousRequest(t *testing.T) {
	entry := serveLogged(t, func(c echo.Context) error {
		return c.NoContent(http.StatusNoContent)
	})

	if _, ok := entry["username"]; ok {
		t.Fatalf("anonymous request logged a username: %+v", entry)
	}
	if entry["status"] != float64(http.StatusNoContent) {
		t.Fatalf("unexpected status: %v", entry["status"])
	}
}

func TestRequestLogger_ErrorRequest(t *testing.T) {
	entry := serveLogged(t, func(c echo.Context) error {
		return errors.New("boom")
	})

	if entry["level"] != "error" {
		t.Fatalf("expected error level, got %v", entry["level"])
	}
	if entry["error"] != "boom" {
		t.Fatalf("unexpected error field: %v", entry["error"])
	}
	if entry["status"] != float64(http.StatusInternalServerError) {
		t.Fatalf("unexpected status: %v", entry["status"])
	}
}
