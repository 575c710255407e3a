package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	sqlitemigrate "github.com/meganhq/megan-web/internal/platform/storage/sqlitemigrate"
	webstorage "github.com/meganhq/megan-web/internal/services/web/storage"
	"github.com/meganhq/megan-web/internal/services/web/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store provides SQLite-backed persistence for web session data.
type Store struct {
	sqlDB *sql.DB
}

// Open opens and migrates a web session SQLite store.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}

	store := &Store{sqlDB: sqlDB}
	if err := store.runMigrations(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close releases the underlying SQLite connection.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// GetSession loads one session row by id.
func (s *Store) GetSession(ctx context.Context, id string) (webstorage.Session, bool, error) {
	if s == nil || s.sqlDB == nil {
		return webstorage.Session{}, false, fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return webstorage.Session{}, false, fmt.Errorf("session id is required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT id, token, user_id, user_name, user_email, user_avatar, locale, created_at
		 FROM sessions
		 WHERE id = ?`,
		id,
	)

	var session webstorage.Session
	var createdAt int64
	if err := row.Scan(
		&session.ID,
		&session.Token,
		&session.UserID,
		&session.UserName,
		&session.UserEmail,
		&session.UserAvatar,
		&session.Locale,
		&createdAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return webstorage.Session{}, false, nil
		}
		return webstorage.Session{}, false, fmt.Errorf("get session: %w", err)
	}
	session.CreatedAt = unixMillisToTime(createdAt)
	return session, true, nil
}

// PutSession upserts one session row by id.
func (s *Store) PutSession(ctx context.Context, session webstorage.Session) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	session.ID = strings.TrimSpace(session.ID)
	if session.ID == "" {
		return fmt.Errorf("session id is required")
	}
	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now().UTC()
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO sessions (id, token, user_id, user_name, user_email, user_avatar, locale, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   token = excluded.token,
		   user_id = excluded.user_id,
		   user_name = excluded.user_name,
		   user_email = excluded.user_email,
		   user_avatar = excluded.user_avatar,
		   locale = excluded.locale`,
		session.ID,
		session.Token,
		session.UserID,
		session.UserName,
		session.UserEmail,
		session.UserAvatar,
		session.Locale,
		timeToUnixMillis(session.CreatedAt),
	)
	if err != nil {
		return fmt.Errorf("put session: %w", err)
	}
	return nil
}

// DeleteSession removes one session row and its cooldowns.
func (s *Store) DeleteSession(ctx context.Context, id string) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return fmt.Errorf("session id is required")
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM flow_cooldowns WHERE session_id = ?`, id); err != nil {
		return fmt.Errorf("delete session cooldowns: %w", err)
	}
	if _, err := s.sqlDB.ExecContext(ctx, `DELETE FROM sessions WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// GetCooldown loads the resend deadline for one session flow.
func (s *Store) GetCooldown(ctx context.Context, sessionID, flow string) (time.Time, bool, error) {
	if s == nil || s.sqlDB == nil {
		return time.Time{}, false, fmt.Errorf("storage is not configured")
	}
	sessionID = strings.TrimSpace(sessionID)
	flow = strings.TrimSpace(flow)
	if sessionID == "" || flow == "" {
		return time.Time{}, false, fmt.Errorf("session id and flow are required")
	}

	row := s.sqlDB.QueryRowContext(
		ctx,
		`SELECT ready_at FROM flow_cooldowns WHERE session_id = ? AND flow = ?`,
		sessionID,
		flow,
	)
	var readyAt int64
	if err := row.Scan(&readyAt); err != nil {
		if err == sql.ErrNoRows {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, fmt.Errorf("get cooldown: %w", err)
	}
	return unixMillisToTime(readyAt), true, nil
}

// PutCooldown upserts the resend deadline for one session flow.
func (s *Store) PutCooldown(ctx context.Context, sessionID, flow string, readyAt time.Time) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	sessionID = strings.TrimSpace(sessionID)
	flow = strings.TrimSpace(flow)
	if sessionID == "" || flow == "" {
		return fmt.Errorf("session id and flow are required")
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO flow_cooldowns (session_id, flow, ready_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(session_id, flow) DO UPDATE SET
		   ready_at = excluded.ready_at`,
		sessionID,
		flow,
		timeToUnixMillis(readyAt),
	)
	if err != nil {
		return fmt.Errorf("put cooldown: %w", err)
	}
	return nil
}

// ClearCooldown removes the resend deadline for one session flow.
func (s *Store) ClearCooldown(ctx context.Context, sessionID, flow string) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	sessionID = strings.TrimSpace(sessionID)
	flow = strings.TrimSpace(flow)
	if sessionID == "" || flow == "" {
		return fmt.Errorf("session id and flow are required")
	}
	if _, err := s.sqlDB.ExecContext(
		ctx,
		`DELETE FROM flow_cooldowns WHERE session_id = ? AND flow = ?`,
		sessionID,
		flow,
	); err != nil {
		return fmt.Errorf("clear cooldown: %w", err)
	}
	return nil
}

// ConsumeToken records one email token use. It reports true on the first
// use and false on every repeat, so link handlers stay idempotent.
func (s *Store) ConsumeToken(ctx context.Context, flow, token string) (bool, error) {
	if s == nil || s.sqlDB == nil {
		return false, fmt.Errorf("storage is not configured")
	}
	flow = strings.TrimSpace(flow)
	token = strings.TrimSpace(token)
	if flow == "" || token == "" {
		return false, fmt.Errorf("flow and token are required")
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT OR IGNORE INTO consumed_tokens (flow, token, consumed_at) VALUES (?, ?, ?)`,
		flow,
		token,
		time.Now().UTC().UnixMilli(),
	)
	if err != nil {
		return false, fmt.Errorf("consume token: %w", err)
	}
	inserted, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("consume token rows: %w", err)
	}
	return inserted > 0, nil
}

// ReleaseToken forgets one recorded token use so the link can be tried
// again, after the action behind it failed to go through.
func (s *Store) ReleaseToken(ctx context.Context, flow, token string) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	flow = strings.TrimSpace(flow)
	token = strings.TrimSpace(token)
	if flow == "" || token == "" {
		return fmt.Errorf("flow and token are required")
	}

	if _, err := s.sqlDB.ExecContext(
		ctx,
		`DELETE FROM consumed_tokens WHERE flow = ? AND token = ?`,
		flow,
		token,
	); err != nil {
		return fmt.Errorf("release token: %w", err)
	}
	return nil
}

// runMigrations applies embedded SQL migrations in filename order.
func (s *Store) runMigrations() error {
	return sqlitemigrate.Apply(s.sqlDB, migrations.FS)
}

func timeToUnixMillis(value time.Time) int64 {
	if value.IsZero() {
		return 0
	}
	return value.UTC().UnixMilli()
}

func unixMillisToTime(value int64) time.Time {
	if value <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(value).UTC()
}

var _ webstorage.Store = (*Store)(nil)
