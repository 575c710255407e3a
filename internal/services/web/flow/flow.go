// Package flow models the email-driven account flows: one-shot requests
// guarded by a per-session resend cooldown.
package flow

import (
	"context"
	"fmt"
	"time"
)

// State is the render state of one flow on a page.
type State string

const (
	StateIdle    State = "idle"
	StatePending State = "pending"
	StateSuccess State = "success"
	StateError   State = "error"
)

// Canonical flow names used as cooldown and consumed-token keys.
const (
	ConfirmEmail   = "confirm-email"
	ForgotPassword = "forgot-password"
	ChangePassword = "change-password"
)

// Resend cooldowns per flow.
const (
	ConfirmEmailCooldown   = 90 * time.Second
	ForgotPasswordCooldown = 60 * time.Second
	ChangePasswordCooldown = 60 * time.Second
)

// Cooldown is a resend deadline. The zero value is ready immediately.
type Cooldown struct {
	ReadyAt time.Time
}

// Remaining returns whole seconds until the deadline, clamped at zero.
// A partial second still counts as one so the rendered countdown never
// shows 0 while the deadline is in the future.
func (c Cooldown) Remaining(now time.Time) int {
	if c.ReadyAt.IsZero() || !now.Before(c.ReadyAt) {
		return 0
	}
	remaining := c.ReadyAt.Sub(now)
	seconds := int(remaining / time.Second)
	if remaining%time.Second > 0 {
		seconds++
	}
	return seconds
}

// CooldownError reports a dispatch attempted before the resend deadline.
type CooldownError struct {
	Remaining int
}

func (e CooldownError) Error() string {
	return fmt.Sprintf("cooldown active for %ds", e.Remaining)
}

// CooldownStore persists resend deadlines per session and flow.
type CooldownStore interface {
	GetCooldown(ctx context.Context, sessionID, flow string) (time.Time, bool, error)
	PutCooldown(ctx context.Context, sessionID, flow string, readyAt time.Time) error
	ClearCooldown(ctx context.Context, sessionID, flow string) error
}

// Controller guards one flow's send action with a resend cooldown. One
// controller instance serves every session; state lives in the store.
type Controller struct {
	name     string
	cooldown time.Duration
	store    CooldownStore
	now      func() time.Time
}

// NewController builds a flow controller.
func NewController(name string, cooldown time.Duration, store CooldownStore) (*Controller, error) {
	if name == "" {
		return nil, fmt.Errorf("flow name is required")
	}
	if cooldown <= 0 {
		return nil, fmt.Errorf("flow cooldown must be positive")
	}
	if store == nil {
		return nil, fmt.Errorf("cooldown store is required")
	}
	return &Controller{name: name, cooldown: cooldown, store: store, now: time.Now}, nil
}

// Name returns the canonical flow name.
func (c *Controller) Name() string {
	if c == nil {
		return ""
	}
	return c.name
}

// Remaining returns the whole seconds left on the session's cooldown.
func (c *Controller) Remaining(ctx context.Context, sessionID string) (int, error) {
	if c == nil {
		return 0, fmt.Errorf("flow controller is not configured")
	}
	readyAt, found, err := c.store.GetCooldown(ctx, sessionID, c.name)
	if err != nil {
		return 0, fmt.Errorf("load cooldown: %w", err)
	}
	if !found {
		return 0, nil
	}
	return Cooldown{ReadyAt: readyAt}.Remaining(c.now()), nil
}

// Dispatch runs send under the cooldown contract: the deadline is armed
// before send runs, so a slow response cannot be double-submitted, and it
// is cleared again when send fails, so the user can retry right away.
func (c *Controller) Dispatch(ctx context.Context, sessionID string, send func(ctx context.Context) error) error {
	if c == nil {
		return fmt.Errorf("flow controller is not configured")
	}
	if send == nil {
		return fmt.Errorf("send action is required")
	}

	remaining, err := c.Remaining(ctx, sessionID)
	if err != nil {
		return err
	}
	if remaining > 0 {
		return CooldownError{Remaining: remaining}
	}

	readyAt := c.now().Add(c.cooldown)
	if err := c.store.PutCooldown(ctx, sessionID, c.name, readyAt); err != nil {
		return fmt.Errorf("arm cooldown: %w", err)
	}

	if err := send(ctx); err != nil {
		if clearErr := c.store.ClearCooldown(ctx, sessionID, c.name); clearErr != nil {
			return fmt.Errorf("reset cooldown after %w: %v", err, clearErr)
		}
		return err
	}
	return nil
}
