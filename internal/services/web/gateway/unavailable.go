package gateway

import (
	"context"

	apperrors "github.com/meganhq/megan-web/internal/services/web/platform/errors"
)

// Unavailable is the degraded-mode gateway used when no account service
// address is configured. Every call fails with a typed unavailable error.
type Unavailable struct{}

func errNotConfigured() error {
	return apperrors.EK(apperrors.KindUnavailable, "error.unable_to_connect", "account service is not configured")
}

func (Unavailable) Login(context.Context, string, string) (string, error) {
	return "", errNotConfigured()
}

func (Unavailable) Me(context.Context, string) (User, error) {
	return User{}, errNotConfigured()
}

func (Unavailable) Register(context.Context, string, string, string) error {
	return errNotConfigured()
}

func (Unavailable) ConfirmEmail(context.Context, string) error {
	return errNotConfigured()
}

func (Unavailable) ResendConfirmation(context.Context, string) error {
	return errNotConfigured()
}

func (Unavailable) ForgotPassword(context.Context, string) error {
	return errNotConfigured()
}

func (Unavailable) ResetPassword(context.Context, string, string) error {
	return errNotConfigured()
}

func (Unavailable) ResendPasswordChange(context.Context, string) error {
	return errNotConfigured()
}

func (Unavailable) RequestPasswordChange(context.Context, string) error {
	return errNotConfigured()
}

func (Unavailable) ChangePassword(context.Context, string, string, string) error {
	return errNotConfigured()
}

func (Unavailable) DeleteUser(context.Context, string, string) error {
	return errNotConfigured()
}

var _ AccountGateway = Unavailable{}
