package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Abhilekh0724/hoops-stats-service/internal/metrics"
	"github.com/Abhilekh0724/hoops-stats-service/internal/testutil"
)

func TestLoggingMiddlewareGeneratesRequestID(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	var seen string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})

	handler := LoggingMiddleware(logger, metrics.NewRecorder(), next)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/players", nil))

	if seen == "" {
		t.Fatal("expected request ID in context")
	}
	if got := rec.Header().Get("X-Request-ID"); got != seen {
		t.Fatalf("header request ID = %q, context = %q", got, seen)
	}
	if !strings.Contains(buf.String(), "request complete") {
		t.Fatalf("expected completion log, got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "418") {
		t.Fatalf("expected captured status in log, got %q", buf.String())
	}
}

func TestLoggingMiddlewareKeepsCallerRequestID(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	handler := LoggingMiddleware(logger, nil, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "caller-abc-123")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-ID"); got != "caller-abc-123" {
		t.Fatalf("expected caller request ID preserved, got %q", got)
	}
}

func TestSanitizeRequestIDRejectsControlCharacters(t *testing.T) {
	if got := sanitizeRequestID("bad\nid"); got == "bad\nid" {
		t.Fatal("expected control characters to force a new ID")
	}
	if got := sanitizeRequestID(strings.Repeat("a", 200)); len(got) > maxRequestIDLength {
		t.Fatalf("expected generated ID for oversized input, got %q", got)
	}
	if got := sanitizeRequestID("ok-id"); got != "ok-id" {
		t.Fatalf("expected clean ID preserved, got %q", got)
	}
}

func TestNormalizePath(t *testing.T) {
	cases := map[string]string{
		"/api/player/Alice%20Example": "/api/player/:name",
		"/api/team/BOS":               "/api/team/:id",
		"/api/players":                "/api/players",
		"/api/players/search":         "/api/players/search",
		"/health":                     "/health",
	}
	for in, want := range cases {
		if got := normalizePath(in); got != want {
			t.Fatalf("normalizePath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestCORSMiddleware(t *testing.T) {
	handler := CORSMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/teams", nil))
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard origin, got %q", got)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/api/teams", nil))
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected preflight 204, got %d", rec.Code)
	}
}
