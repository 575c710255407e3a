package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	apperrors "github.com/meganhq/megan-web/internal/services/web/platform/errors"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	client, err := NewClient(server.URL, server.Client())
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func kindOf(t *testing.T, err error) apperrors.Kind {
	t.Helper()
	var appErr apperrors.Error
	if !errors.As(err, &appErr) {
		t.Fatalf("error %v is not a typed application error", err)
	}
	return appErr.Kind
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	t.Parallel()

	if _, err := NewClient("   ", nil); err == nil {
		t.Fatalf("expected error")
	}
}

func TestLoginReturnsAccessToken(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/auth/login" {
			t.Errorf("request = %s %s, want POST /auth/login", r.Method, r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body["email"] != "ada@example.com" {
			t.Errorf("email = %q, want %q", body["email"], "ada@example.com")
		}
		_ = json.NewEncoder(w).Encode(map[string]string{"access_token": "token-abc"})
	}))

	token, err := client.Login(context.Background(), "ada@example.com", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if token != "token-abc" {
		t.Fatalf("token = %q, want %q", token, "token-abc")
	}
}

func TestLoginRejectsMissingToken(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{})
	}))

	_, err := client.Login(context.Background(), "ada@example.com", "secret")
	if err == nil {
		t.Fatalf("expected error")
	}
	if key := apperrors.LocalizationKey(err); key != "error.no_access_token" {
		t.Fatalf("localization key = %q, want %q", key, "error.no_access_token")
	}
}

func TestLoginMapsStatusCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		status   int
		wantKind apperrors.Kind
		wantKey  string
	}{
		{name: "invalid credentials", status: http.StatusUnauthorized, wantKind: apperrors.KindUnauthorized, wantKey: "error.invalid_credentials"},
		{name: "blocked account", status: http.StatusForbidden, wantKind: apperrors.KindForbidden, wantKey: "error.account_blocked"},
		{name: "rate limited", status: http.StatusTooManyRequests, wantKind: apperrors.KindRateLimited, wantKey: "error.too_many_attempts"},
		{name: "server failure", status: http.StatusInternalServerError, wantKind: apperrors.KindUnknown, wantKey: "error.unexpected"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_ = json.NewEncoder(w).Encode(map[string]string{"detail": "nope"})
			}))

			_, err := client.Login(context.Background(), "ada@example.com", "secret")
			if err == nil {
				t.Fatalf("expected error")
			}
			if kind := kindOf(t, err); kind != tc.wantKind {
				t.Fatalf("kind = %q, want %q", kind, tc.wantKind)
			}
			if key := apperrors.LocalizationKey(err); key != tc.wantKey {
				t.Fatalf("localization key = %q, want %q", key, tc.wantKey)
			}
		})
	}
}

func TestMeSendsBearerToken(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/me" {
			t.Errorf("path = %q, want /me", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer token-abc" {
			t.Errorf("authorization = %q, want %q", got, "Bearer token-abc")
		}
		_ = json.NewEncoder(w).Encode(User{ID: "user-1", Name: "Ada", Email: "ada@example.com"})
	}))

	user, err := client.Me(context.Background(), "token-abc")
	if err != nil {
		t.Fatalf("me: %v", err)
	}
	if user.ID != "user-1" || user.Email != "ada@example.com" {
		t.Fatalf("user = %+v", user)
	}
}

func TestRegisterMapsEmailExists(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Email уже используется"})
	}))

	err := client.Register(context.Background(), "Ada", "ada@example.com", "secret")
	if err == nil {
		t.Fatalf("expected error")
	}
	if key := apperrors.LocalizationKey(err); key != "error.email_exists" {
		t.Fatalf("localization key = %q, want %q", key, "error.email_exists")
	}
}

func TestConfirmEmailSendsToken(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/auth/confirm" {
			t.Errorf("request = %s %s, want GET /auth/confirm", r.Method, r.URL.Path)
		}
		if got := r.URL.Query().Get("token"); got != "tok en" {
			t.Errorf("token = %q, want %q", got, "tok en")
		}
	}))

	if err := client.ConfirmEmail(context.Background(), "tok en"); err != nil {
		t.Fatalf("confirm email: %v", err)
	}
}

func TestConfirmEmailTreatsRepeatAsCompleted(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		detail string
	}{
		{name: "english already confirmed", detail: "account already confirmed"},
		{name: "english already exists", detail: "confirmation already exists"},
		{name: "russian already confirmed", detail: "аккаунт уже подтвержден"},
		{name: "russian already exists", detail: "запись уже существует"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
				_ = json.NewEncoder(w).Encode(map[string]string{"message": tc.detail})
			}))

			err := client.ConfirmEmail(context.Background(), "token-1")
			if !errors.Is(err, ErrAlreadyCompleted) {
				t.Fatalf("err = %v, want ErrAlreadyCompleted", err)
			}
		})
	}
}

func TestResetPasswordSendsTokenAndPassword(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/user/change-password" {
			t.Errorf("request = %s %s, want POST /user/change-password", r.Method, r.URL.Path)
		}
		var body map[string]string
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if body["token"] != "token-1" || body["new_password"] != "new-secret" {
			t.Errorf("body = %v", body)
		}
	}))

	if err := client.ResetPassword(context.Background(), "token-1", "new-secret"); err != nil {
		t.Fatalf("reset password: %v", err)
	}
}

func TestDeleteUserTargetsUserPath(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/user/delete/user-1" {
			t.Errorf("request = %s %s, want DELETE /user/delete/user-1", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer token-abc" {
			t.Errorf("authorization = %q, want %q", got, "Bearer token-abc")
		}
	}))

	if err := client.DeleteUser(context.Background(), "token-abc", "user-1"); err != nil {
		t.Fatalf("delete user: %v", err)
	}
}

func TestDeleteUserRequiresUserID(t *testing.T) {
	t.Parallel()

	client, err := NewClient("http://localhost:1", nil)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if err := client.DeleteUser(context.Background(), "token-abc", ""); err == nil {
		t.Fatalf("expected error")
	}
}

func TestTransportFailureIsUnreachable(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client, err := NewClient(server.URL, nil)
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	if err := client.ResendConfirmation(context.Background(), "ada@example.com"); !errors.Is(err, ErrUnreachable) {
		t.Fatalf("err = %v, want ErrUnreachable", err)
	}
}

func TestUnavailableGatewayFailsTyped(t *testing.T) {
	t.Parallel()

	var g AccountGateway = Unavailable{}
	if _, err := g.Login(context.Background(), "a@b.com", "x"); kindOf(t, err) != apperrors.KindUnavailable {
		t.Fatalf("kind = %q, want %q", kindOf(t, err), apperrors.KindUnavailable)
	}
	if err := g.DeleteUser(context.Background(), "t", "u"); kindOf(t, err) != apperrors.KindUnavailable {
		t.Fatalf("kind = %q, want %q", kindOf(t, err), apperrors.KindUnavailable)
	}
}
