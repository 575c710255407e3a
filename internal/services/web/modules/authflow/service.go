package authflow

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/meganhq/megan-web/internal/services/web/flow"
	"github.com/meganhq/megan-web/internal/services/web/gateway"
	module "github.com/meganhq/megan-web/internal/services/web/module"
	apperrors "github.com/meganhq/megan-web/internal/services/web/platform/errors"
	"github.com/meganhq/megan-web/internal/services/web/storage"
)

// service orchestrates the account flows over the gateway, the session
// manager, and the per-flow cooldown controllers.
type service struct {
	accounts    gateway.AccountGateway
	store       storage.Store
	confirmFlow *flow.Controller
	forgotFlow  *flow.Controller
	changeFlow  *flow.Controller
}

func newService(deps module.Dependencies) (service, error) {
	if deps.Accounts == nil {
		return service{}, fmt.Errorf("account gateway is required")
	}
	if deps.Store == nil {
		return service{}, fmt.Errorf("session store is required")
	}
	confirmFlow, err := flow.NewController(flow.ConfirmEmail, flow.ConfirmEmailCooldown, deps.Store)
	if err != nil {
		return service{}, err
	}
	forgotFlow, err := flow.NewController(flow.ForgotPassword, flow.ForgotPasswordCooldown, deps.Store)
	if err != nil {
		return service{}, err
	}
	changeFlow, err := flow.NewController(flow.ChangePassword, flow.ChangePasswordCooldown, deps.Store)
	if err != nil {
		return service{}, err
	}
	return service{
		accounts:    deps.Accounts,
		store:       deps.Store,
		confirmFlow: confirmFlow,
		forgotFlow:  forgotFlow,
		changeFlow:  changeFlow,
	}, nil
}

// signIn authenticates the session and fills it with the account profile.
func (s service) signIn(ctx context.Context, session storage.Session, email, password string) (storage.Session, error) {
	token, err := s.accounts.Login(ctx, email, password)
	if err != nil {
		return session, err
	}
	user, err := s.accounts.Me(ctx, token)
	if err != nil {
		return session, err
	}
	session.Token = token
	session.UserID = user.ID
	session.UserName = user.Name
	session.UserEmail = user.Email
	session.UserAvatar = user.Avatar
	return session, nil
}

// register creates the account and arms the confirm-email resend cooldown,
// since registration itself sends the first confirmation email.
func (s service) register(ctx context.Context, sessionID, name, email, password string) error {
	return s.confirmFlow.Dispatch(ctx, sessionID, func(ctx context.Context) error {
		return s.accounts.Register(ctx, name, email, password)
	})
}

// resendConfirmation re-sends the confirmation email under the cooldown.
func (s service) resendConfirmation(ctx context.Context, sessionID, email string) error {
	return s.confirmFlow.Dispatch(ctx, sessionID, func(ctx context.Context) error {
		return s.accounts.ResendConfirmation(ctx, email)
	})
}

// confirmRemaining reports the confirm-email resend cooldown in seconds.
func (s service) confirmRemaining(ctx context.Context, sessionID string) int {
	remaining, err := s.confirmFlow.Remaining(ctx, sessionID)
	if err != nil {
		return 0
	}
	return remaining
}

// confirmEmail consumes the token once and finalizes registration. Repeat
// visits with the same token, and upstream "already confirmed" rejections,
// both count as success.
func (s service) confirmEmail(ctx context.Context, token string) error {
	firstUse, err := s.store.ConsumeToken(ctx, flow.ConfirmEmail, token)
	if err != nil {
		return err
	}
	if !firstUse {
		return nil
	}
	err = s.accounts.ConfirmEmail(ctx, token)
	if errors.Is(err, gateway.ErrAlreadyCompleted) {
		return nil
	}
	if err != nil {
		// The confirmation never happened, so the token stays usable.
		if releaseErr := s.store.ReleaseToken(ctx, flow.ConfirmEmail, token); releaseErr != nil {
			return fmt.Errorf("release confirm token: %w", releaseErr)
		}
	}
	return err
}

// requestPasswordReset emails a change link under the forgot-password cooldown.
func (s service) requestPasswordReset(ctx context.Context, sessionID, email string) error {
	return s.forgotFlow.Dispatch(ctx, sessionID, func(ctx context.Context) error {
		return s.accounts.ForgotPassword(ctx, email)
	})
}

// forgotRemaining reports the forgot-password resend cooldown in seconds.
func (s service) forgotRemaining(ctx context.Context, sessionID string) int {
	remaining, err := s.forgotFlow.Remaining(ctx, sessionID)
	if err != nil {
		return 0
	}
	return remaining
}

// resetPassword consumes the token once and sets the new password.
func (s service) resetPassword(ctx context.Context, token, newPassword string) error {
	firstUse, err := s.store.ConsumeToken(ctx, flow.ChangePassword, token)
	if err != nil {
		return err
	}
	if !firstUse {
		return nil
	}
	err = s.accounts.ResetPassword(ctx, token, newPassword)
	if errors.Is(err, gateway.ErrAlreadyCompleted) {
		return nil
	}
	if err != nil {
		if releaseErr := s.store.ReleaseToken(ctx, flow.ChangePassword, token); releaseErr != nil {
			return fmt.Errorf("release change token: %w", releaseErr)
		}
	}
	return err
}

// resendPasswordChange re-sends the change link under the cooldown.
func (s service) resendPasswordChange(ctx context.Context, sessionID, email string) error {
	return s.changeFlow.Dispatch(ctx, sessionID, func(ctx context.Context) error {
		return s.accounts.ResendPasswordChange(ctx, email)
	})
}

// changeRemaining reports the change-password resend cooldown in seconds.
func (s service) changeRemaining(ctx context.Context, sessionID string) int {
	remaining, err := s.changeFlow.Remaining(ctx, sessionID)
	if err != nil {
		return 0
	}
	return remaining
}

// errorKey maps a flow failure to the localization key its banner renders.
func errorKey(err error) string {
	if err == nil {
		return ""
	}
	var cooldownErr flow.CooldownError
	if errors.As(err, &cooldownErr) {
		return "error.too_many_attempts"
	}
	if key := apperrors.LocalizationKey(err); key != "" {
		return key
	}
	return "error.unexpected"
}

func normalizeEmail(value string) string {
	return strings.ToLower(strings.TrimSpace(value))
}

func emailQuery(value string) string {
	return url.QueryEscape(value)
}
