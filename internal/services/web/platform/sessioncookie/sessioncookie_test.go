package sessioncookie

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWriteReadRoundTrip(t *testing.T) {
	t.Parallel()

	secret := []byte("test-secret")
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if err := Write(rec, req, "session-123", secret); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("len(cookies) = %d, want 1", len(cookies))
	}
	if cookies[0].Name != Name {
		t.Fatalf("cookie name = %q, want %q", cookies[0].Name, Name)
	}
	if !cookies[0].HttpOnly {
		t.Fatal("cookie HttpOnly = false, want true")
	}

	read := httptest.NewRequest(http.MethodGet, "/", nil)
	read.AddCookie(cookies[0])
	sessionID, ok := Read(read, secret)
	if !ok {
		t.Fatal("Read() ok = false, want true")
	}
	if sessionID != "session-123" {
		t.Fatalf("Read() = %q, want %q", sessionID, "session-123")
	}
}

func TestReadRejectsWrongSecret(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if err := Write(rec, req, "session-123", []byte("secret-a")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	read := httptest.NewRequest(http.MethodGet, "/", nil)
	read.AddCookie(rec.Result().Cookies()[0])
	if _, ok := Read(read, []byte("secret-b")); ok {
		t.Fatal("Read() ok = true for wrong secret, want false")
	}
}

func TestReadRejectsTamperedValue(t *testing.T) {
	t.Parallel()

	read := httptest.NewRequest(http.MethodGet, "/", nil)
	read.AddCookie(&http.Cookie{Name: Name, Value: "not-a-token"})
	if _, ok := Read(read, []byte("secret")); ok {
		t.Fatal("Read() ok = true for garbage value, want false")
	}
}

func TestWriteRejectsEmptySessionID(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if err := Write(rec, req, "  ", []byte("secret")); err == nil {
		t.Fatal("Write() error = nil for empty session id, want error")
	}
}

func TestClearExpiresCookie(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	Clear(rec, req)

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("len(cookies) = %d, want 1", len(cookies))
	}
	if cookies[0].MaxAge != -1 {
		t.Fatalf("cookie MaxAge = %d, want -1", cookies[0].MaxAge)
	}
}
