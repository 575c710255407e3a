package flow

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

type memoryCooldowns struct {
	deadlines map[string]time.Time
}

func newMemoryCooldowns() *memoryCooldowns {
	return &memoryCooldowns{deadlines: make(map[string]time.Time)}
}

func (m *memoryCooldowns) key(sessionID, flow string) string {
	return sessionID + "/" + flow
}

func (m *memoryCooldowns) GetCooldown(_ context.Context, sessionID, flow string) (time.Time, bool, error) {
	readyAt, ok := m.deadlines[m.key(sessionID, flow)]
	return readyAt, ok, nil
}

func (m *memoryCooldowns) PutCooldown(_ context.Context, sessionID, flow string, readyAt time.Time) error {
	m.deadlines[m.key(sessionID, flow)] = readyAt
	return nil
}

func (m *memoryCooldowns) ClearCooldown(_ context.Context, sessionID, flow string) error {
	delete(m.deadlines, m.key(sessionID, flow))
	return nil
}

func newTestController(t *testing.T, store CooldownStore, now time.Time) *Controller {
	t.Helper()
	controller, err := NewController(ConfirmEmail, ConfirmEmailCooldown, store)
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}
	controller.now = func() time.Time { return now }
	return controller
}

func TestNewControllerValidatesArguments(t *testing.T) {
	t.Parallel()

	store := newMemoryCooldowns()
	if _, err := NewController("", time.Minute, store); err == nil {
		t.Fatalf("expected error for empty name")
	}
	if _, err := NewController(ConfirmEmail, 0, store); err == nil {
		t.Fatalf("expected error for zero cooldown")
	}
	if _, err := NewController(ConfirmEmail, time.Minute, nil); err == nil {
		t.Fatalf("expected error for nil store")
	}
}

func TestCooldownRemainingClampsAtZero(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name string
		c    Cooldown
		want int
	}{
		{name: "zero value", c: Cooldown{}, want: 0},
		{name: "past deadline", c: Cooldown{ReadyAt: now.Add(-time.Second)}, want: 0},
		{name: "exact deadline", c: Cooldown{ReadyAt: now}, want: 0},
		{name: "whole seconds", c: Cooldown{ReadyAt: now.Add(90 * time.Second)}, want: 90},
		{name: "partial second rounds up", c: Cooldown{ReadyAt: now.Add(1500 * time.Millisecond)}, want: 2},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.c.Remaining(now); got != tc.want {
				t.Fatalf("Remaining() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestDispatchArmsCooldownBeforeSend(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	store := newMemoryCooldowns()
	controller := newTestController(t, store, now)

	var remainingDuringSend int
	err := controller.Dispatch(context.Background(), "sess-1", func(ctx context.Context) error {
		var err error
		remainingDuringSend, err = controller.Remaining(ctx, "sess-1")
		return err
	})
	if err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	if remainingDuringSend != 90 {
		t.Fatalf("remaining during send = %d, want 90", remainingDuringSend)
	}
}

func TestDispatchKeepsCooldownOnSuccess(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	controller := newTestController(t, newMemoryCooldowns(), now)

	if err := controller.Dispatch(context.Background(), "sess-1", func(context.Context) error { return nil }); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	remaining, err := controller.Remaining(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("remaining: %v", err)
	}
	if remaining != 90 {
		t.Fatalf("remaining = %d, want 90", remaining)
	}
}

func TestDispatchResetsCooldownOnFailure(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	controller := newTestController(t, newMemoryCooldowns(), now)

	sendErr := fmt.Errorf("upstream rejected")
	err := controller.Dispatch(context.Background(), "sess-1", func(context.Context) error { return sendErr })
	if !errors.Is(err, sendErr) {
		t.Fatalf("dispatch err = %v, want %v", err, sendErr)
	}

	remaining, err := controller.Remaining(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("remaining: %v", err)
	}
	if remaining != 0 {
		t.Fatalf("remaining = %d, want 0 after failure", remaining)
	}
}

func TestDispatchRejectsDuringCooldown(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	controller := newTestController(t, newMemoryCooldowns(), now)

	if err := controller.Dispatch(context.Background(), "sess-1", func(context.Context) error { return nil }); err != nil {
		t.Fatalf("dispatch: %v", err)
	}

	called := false
	err := controller.Dispatch(context.Background(), "sess-1", func(context.Context) error {
		called = true
		return nil
	})
	var cooldownErr CooldownError
	if !errors.As(err, &cooldownErr) {
		t.Fatalf("err = %v, want CooldownError", err)
	}
	if cooldownErr.Remaining != 90 {
		t.Fatalf("remaining = %d, want 90", cooldownErr.Remaining)
	}
	if called {
		t.Fatalf("send ran during active cooldown")
	}
}

func TestDispatchAllowsOtherSessions(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	controller := newTestController(t, newMemoryCooldowns(), now)

	if err := controller.Dispatch(context.Background(), "sess-1", func(context.Context) error { return nil }); err != nil {
		t.Fatalf("dispatch session 1: %v", err)
	}
	if err := controller.Dispatch(context.Background(), "sess-2", func(context.Context) error { return nil }); err != nil {
		t.Fatalf("dispatch session 2: %v", err)
	}
}

func TestDispatchAllowsAfterDeadline(t *testing.T) {
	t.Parallel()

	store := newMemoryCooldowns()
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	controller := newTestController(t, store, start)

	if err := controller.Dispatch(context.Background(), "sess-1", func(context.Context) error { return nil }); err != nil {
		t.Fatalf("dispatch: %v", err)
	}

	controller.now = func() time.Time { return start.Add(91 * time.Second) }
	if err := controller.Dispatch(context.Background(), "sess-1", func(context.Context) error { return nil }); err != nil {
		t.Fatalf("dispatch after deadline: %v", err)
	}
}
