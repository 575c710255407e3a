// Package session resolves and persists browser sessions for the web service.
package session

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/meganhq/megan-web/internal/services/web/platform/sessioncookie"
	"github.com/meganhq/megan-web/internal/services/web/storage"
)

// Manager ties the signed session cookie to the session store.
type Manager struct {
	store  storage.Store
	secret []byte
}

// NewManager builds a session manager over the provided store.
func NewManager(store storage.Store, secret []byte) (*Manager, error) {
	if store == nil {
		return nil, fmt.Errorf("session store is required")
	}
	if len(secret) == 0 {
		return nil, fmt.Errorf("session secret is required")
	}
	return &Manager{store: store, secret: secret}, nil
}

// Current loads the session referenced by the request cookie, when one
// exists. A cookie pointing at a deleted row yields no session.
func (m *Manager) Current(r *http.Request) (storage.Session, bool) {
	if m == nil {
		return storage.Session{}, false
	}
	sessionID, ok := sessioncookie.Read(r, m.secret)
	if !ok {
		return storage.Session{}, false
	}
	session, found, err := m.store.GetSession(r.Context(), sessionID)
	if err != nil || !found {
		return storage.Session{}, false
	}
	return session, true
}

// Ensure returns the request session, minting an anonymous one and setting
// the cookie when the visitor has none yet.
func (m *Manager) Ensure(w http.ResponseWriter, r *http.Request) (storage.Session, error) {
	if m == nil {
		return storage.Session{}, fmt.Errorf("session manager is not configured")
	}
	if session, ok := m.Current(r); ok {
		return session, nil
	}

	session := storage.Session{
		ID:        uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}
	if err := m.store.PutSession(r.Context(), session); err != nil {
		return storage.Session{}, fmt.Errorf("create session: %w", err)
	}
	if err := sessioncookie.Write(w, r, session.ID, m.secret); err != nil {
		return storage.Session{}, err
	}
	return session, nil
}

// Save persists changes to an existing session.
func (m *Manager) Save(ctx context.Context, session storage.Session) error {
	if m == nil {
		return fmt.Errorf("session manager is not configured")
	}
	return m.store.PutSession(ctx, session)
}

// SignOut deletes the session row and expires the cookie.
func (m *Manager) SignOut(w http.ResponseWriter, r *http.Request) error {
	if m == nil {
		return fmt.Errorf("session manager is not configured")
	}
	if sessionID, ok := sessioncookie.Read(r, m.secret); ok {
		if err := m.store.DeleteSession(r.Context(), sessionID); err != nil {
			return fmt.Errorf("delete session: %w", err)
		}
	}
	sessioncookie.Clear(w, r)
	return nil
}
