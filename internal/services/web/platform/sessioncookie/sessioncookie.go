// Package sessioncookie centralizes the signed web session cookie.
package sessioncookie

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Name is the canonical web session cookie name.
const Name = "megan_session"

// MaxAge bounds how long a session cookie stays valid.
const MaxAge = 30 * 24 * time.Hour

type claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// Read verifies the session cookie signature and returns the session id.
func Read(r *http.Request, secret []byte) (string, bool) {
	if r == nil || len(secret) == 0 {
		return "", false
	}
	cookie, err := r.Cookie(Name)
	if err != nil || cookie == nil {
		return "", false
	}
	raw := strings.TrimSpace(cookie.Value)
	if raw == "" {
		return "", false
	}
	parsed := claims{}
	token, err := jwt.ParseWithClaims(raw, &parsed, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil || !token.Valid {
		return "", false
	}
	sessionID := strings.TrimSpace(parsed.SessionID)
	if sessionID == "" {
		return "", false
	}
	return sessionID, true
}

// Write signs and sets the session cookie for the current request context.
func Write(w http.ResponseWriter, r *http.Request, sessionID string, secret []byte) error {
	if w == nil {
		return nil
	}
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" || len(secret) == 0 {
		return fmt.Errorf("sessioncookie: missing session id or secret")
	}
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(MaxAge)),
		},
	})
	signed, err := token.SignedString(secret)
	if err != nil {
		return fmt.Errorf("sessioncookie: sign: %w", err)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(MaxAge / time.Second),
		HttpOnly: true,
		Secure:   isHTTPS(r),
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

// Clear expires the session cookie for the current request context.
func Clear(w http.ResponseWriter, r *http.Request) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     Name,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   isHTTPS(r),
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})
}

func isHTTPS(r *http.Request) bool {
	if r == nil {
		return false
	}
	if r.TLS != nil {
		return true
	}
	proto := strings.TrimSpace(r.Header.Get("X-Forwarded-Proto"))
	return strings.EqualFold(proto, "https")
}
