package web

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/meganhq/megan-web/internal/services/web/routepath"
)

func newTestServerHandler(t *testing.T) http.Handler {
	t.Helper()
	handler, store, err := NewHandler(Config{
		AppName:       "Megan",
		DBPath:        filepath.Join(t.TempDir(), "sessions.db"),
		SessionSecret: "test-secret",
		Logger:        log.New(io.Discard, "", 0),
	})
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return handler
}

func get(t *testing.T, handler http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestNewHandlerRequiresSessionSecret(t *testing.T) {
	t.Parallel()
	_, _, err := NewHandler(Config{
		DBPath: filepath.Join(t.TempDir(), "sessions.db"),
		Logger: log.New(io.Discard, "", 0),
	})
	if err == nil {
		t.Fatal("NewHandler() error = nil, want session secret error")
	}
}

func TestServerServesLanding(t *testing.T) {
	t.Parallel()
	handler := newTestServerHandler(t)

	rec := get(t, handler, routepath.Root)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "Megan") {
		t.Fatalf("landing missing app name:\n%s", rec.Body.String())
	}
}

func TestServerMountsAuthRoutes(t *testing.T) {
	t.Parallel()
	handler := newTestServerHandler(t)

	for _, path := range []string{
		routepath.Auth,
		routepath.ConfirmEmail,
		routepath.ForgotPassword,
	} {
		rec := get(t, handler, path)
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s status = %d, want %d", path, rec.Code, http.StatusOK)
		}
	}
}

func TestServerGatesAccountRoutes(t *testing.T) {
	t.Parallel()
	handler := newTestServerHandler(t)

	rec := get(t, handler, routepath.Account)

	if rec.Code != http.StatusFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusFound)
	}
	if got := rec.Header().Get("Location"); got != routepath.Auth {
		t.Fatalf("Location = %q, want %q", got, routepath.Auth)
	}
}

func TestServerServesStaticAssets(t *testing.T) {
	t.Parallel()
	handler := newTestServerHandler(t)

	rec := get(t, handler, "/static/site.css")

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), "--accent") {
		t.Fatalf("stylesheet content missing")
	}
}

func TestServerHealthEndpoint(t *testing.T) {
	t.Parallel()
	handler := newTestServerHandler(t)

	rec := get(t, handler, routepath.Health)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if !strings.Contains(rec.Body.String(), `"status":"ok"`) {
		t.Fatalf("health body = %q", rec.Body.String())
	}
}

func TestServerRendersNotFound(t *testing.T) {
	t.Parallel()
	handler := newTestServerHandler(t)

	rec := get(t, handler, "/definitely-not-a-page")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}
