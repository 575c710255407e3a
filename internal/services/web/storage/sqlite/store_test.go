package sqlite

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	webstorage "github.com/meganhq/megan-web/internal/services/web/storage"
	_ "modernc.org/sqlite"
)

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("")
	if err == nil {
		t.Fatalf("expected error")
	}
}

func TestOpenRunsMigrations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "web-sessions.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
	})

	sqlDB, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	defer func() {
		_ = sqlDB.Close()
	}()

	assertTableExists(t, sqlDB, "sessions")
	assertTableExists(t, sqlDB, "flow_cooldowns")
	assertTableExists(t, sqlDB, "consumed_tokens")
}

func TestSessionRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	session := webstorage.Session{
		ID:        "sess-1",
		Token:     "token-abc",
		UserID:    "user-1",
		UserName:  "Ada Lovelace",
		UserEmail: "ada@example.com",
		Locale:    "en",
	}
	if err := store.PutSession(ctx, session); err != nil {
		t.Fatalf("put session: %v", err)
	}

	got, found, err := store.GetSession(ctx, "sess-1")
	if err != nil {
		t.Fatalf("get session: %v", err)
	}
	if !found {
		t.Fatalf("session not found")
	}
	if got.Token != "token-abc" {
		t.Fatalf("Token = %q, want %q", got.Token, "token-abc")
	}
	if got.UserEmail != "ada@example.com" {
		t.Fatalf("UserEmail = %q, want %q", got.UserEmail, "ada@example.com")
	}
	if !got.SignedIn() {
		t.Fatalf("SignedIn() = false, want true")
	}
	if got.CreatedAt.IsZero() {
		t.Fatalf("CreatedAt is zero")
	}
}

func TestPutSessionUpdatesExistingRow(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.PutSession(ctx, webstorage.Session{ID: "sess-1"}); err != nil {
		t.Fatalf("put session: %v", err)
	}
	if err := store.PutSession(ctx, webstorage.Session{ID: "sess-1", Token: "token-new", UserEmail: "ada@example.com"}); err != nil {
		t.Fatalf("update session: %v", err)
	}

	got, found, err := store.GetSession(ctx, "sess-1")
	if err != nil || !found {
		t.Fatalf("get session: found=%v err=%v", found, err)
	}
	if got.Token != "token-new" {
		t.Fatalf("Token = %q, want %q", got.Token, "token-new")
	}
}

func TestDeleteSessionRemovesCooldowns(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.PutSession(ctx, webstorage.Session{ID: "sess-1"}); err != nil {
		t.Fatalf("put session: %v", err)
	}
	if err := store.PutCooldown(ctx, "sess-1", "confirm-email", time.Now().Add(90*time.Second)); err != nil {
		t.Fatalf("put cooldown: %v", err)
	}
	if err := store.DeleteSession(ctx, "sess-1"); err != nil {
		t.Fatalf("delete session: %v", err)
	}

	if _, found, err := store.GetSession(ctx, "sess-1"); err != nil || found {
		t.Fatalf("session still present: found=%v err=%v", found, err)
	}
	if _, found, err := store.GetCooldown(ctx, "sess-1", "confirm-email"); err != nil || found {
		t.Fatalf("cooldown still present: found=%v err=%v", found, err)
	}
}

func TestCooldownRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	readyAt := time.Now().Add(60 * time.Second).UTC().Truncate(time.Millisecond)
	if err := store.PutCooldown(ctx, "sess-1", "forgot-password", readyAt); err != nil {
		t.Fatalf("put cooldown: %v", err)
	}

	got, found, err := store.GetCooldown(ctx, "sess-1", "forgot-password")
	if err != nil {
		t.Fatalf("get cooldown: %v", err)
	}
	if !found {
		t.Fatalf("cooldown not found")
	}
	if !got.Equal(readyAt) {
		t.Fatalf("ready at = %v, want %v", got, readyAt)
	}

	if err := store.ClearCooldown(ctx, "sess-1", "forgot-password"); err != nil {
		t.Fatalf("clear cooldown: %v", err)
	}
	if _, found, err := store.GetCooldown(ctx, "sess-1", "forgot-password"); err != nil || found {
		t.Fatalf("cooldown still present: found=%v err=%v", found, err)
	}
}

func TestConsumeTokenReportsFirstUseOnly(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	first, err := store.ConsumeToken(ctx, "confirm-email", "token-1")
	if err != nil {
		t.Fatalf("consume token: %v", err)
	}
	if !first {
		t.Fatalf("first use = false, want true")
	}

	second, err := store.ConsumeToken(ctx, "confirm-email", "token-1")
	if err != nil {
		t.Fatalf("consume token again: %v", err)
	}
	if second {
		t.Fatalf("second use = true, want false")
	}

	otherFlow, err := store.ConsumeToken(ctx, "change-password", "token-1")
	if err != nil {
		t.Fatalf("consume token other flow: %v", err)
	}
	if !otherFlow {
		t.Fatalf("other flow use = false, want true")
	}
}

func TestReleaseTokenMakesTokenUsableAgain(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if _, err := store.ConsumeToken(ctx, "confirm-email", "token-2"); err != nil {
		t.Fatalf("consume token: %v", err)
	}
	if err := store.ReleaseToken(ctx, "confirm-email", "token-2"); err != nil {
		t.Fatalf("release token: %v", err)
	}

	again, err := store.ConsumeToken(ctx, "confirm-email", "token-2")
	if err != nil {
		t.Fatalf("consume token after release: %v", err)
	}
	if !again {
		t.Fatalf("use after release = false, want true")
	}

	if err := store.ReleaseToken(ctx, "confirm-email", ""); err == nil {
		t.Fatal("release with empty token did not error")
	}
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "web-sessions.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
	})
	return store
}

func assertTableExists(t *testing.T, sqlDB *sql.DB, name string) {
	t.Helper()
	var found string
	row := sqlDB.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, name)
	if err := row.Scan(&found); err != nil {
		t.Fatalf("table %s missing: %v", name, err)
	}
}
