// Package gateway is the REST client for the Megan account service.
package gateway

import (
	"context"

	apperrors "github.com/meganhq/megan-web/internal/services/web/platform/errors"
)

// User is the account profile returned by the account service.
type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Avatar string `json:"avatar"`
}

// ErrUnreachable reports a transport-level failure reaching the account
// service, as opposed to a rejection the service itself returned.
var ErrUnreachable = apperrors.EK(apperrors.KindUnavailable, "error.unable_to_connect", "account service is unreachable")

// ErrAlreadyCompleted reports that an email action was already finished
// upstream (account already confirmed, password already changed). Callers
// treat it as success.
var ErrAlreadyCompleted = apperrors.EK(apperrors.KindInvalidInput, "toast.already_confirmed", "action already completed")

// AccountGateway is the contract for every account service call the web
// frontend makes.
type AccountGateway interface {
	// Login exchanges credentials for an access token.
	Login(ctx context.Context, email, password string) (string, error)
	// Me loads the signed-in user's profile.
	Me(ctx context.Context, accessToken string) (User, error)
	// Register creates an unconfirmed account and sends the confirmation email.
	Register(ctx context.Context, name, email, password string) error
	// ConfirmEmail finalizes registration with an email token.
	ConfirmEmail(ctx context.Context, token string) error
	// ResendConfirmation re-sends the confirmation email.
	ResendConfirmation(ctx context.Context, email string) error
	// ForgotPassword sends a password change link to an email address.
	ForgotPassword(ctx context.Context, email string) error
	// ResetPassword sets a new password using an email token.
	ResetPassword(ctx context.Context, token, newPassword string) error
	// ResendPasswordChange re-sends a password change link.
	ResendPasswordChange(ctx context.Context, email string) error
	// RequestPasswordChange emails a change link to the signed-in user.
	RequestPasswordChange(ctx context.Context, accessToken string) error
	// ChangePassword sets a new password for the signed-in user.
	ChangePassword(ctx context.Context, accessToken, currentPassword, newPassword string) error
	// DeleteUser permanently deletes the signed-in user's account.
	DeleteUser(ctx context.Context, accessToken, userID string) error
}
