package storage

import (
	"context"
	"time"
)

// Session stores one browser session and the account it is signed into.
//
// A session row exists before sign-in: anonymous visitors get one as soon
// as a flow needs to remember state for them. Token is empty until the
// account service authenticates the session.
type Session struct {
	ID         string
	Token      string
	UserID     string
	UserName   string
	UserEmail  string
	UserAvatar string
	Locale     string
	CreatedAt  time.Time
}

// SignedIn reports whether the session carries an account token.
func (s Session) SignedIn() bool {
	return s.Token != ""
}

// Store is the contract for web session persistence.
type Store interface {
	Close() error
	GetSession(ctx context.Context, id string) (Session, bool, error)
	PutSession(ctx context.Context, session Session) error
	DeleteSession(ctx context.Context, id string) error
	GetCooldown(ctx context.Context, sessionID, flow string) (time.Time, bool, error)
	PutCooldown(ctx context.Context, sessionID, flow string, readyAt time.Time) error
	ClearCooldown(ctx context.Context, sessionID, flow string) error
	ConsumeToken(ctx context.Context, flow, token string) (bool, error)
	ReleaseToken(ctx context.Context, flow, token string) error
}
