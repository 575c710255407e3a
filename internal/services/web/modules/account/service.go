package account

import (
	"context"
	"errors"
	"fmt"

	"github.com/meganhq/megan-web/internal/services/web/flow"
	"github.com/meganhq/megan-web/internal/services/web/gateway"
	module "github.com/meganhq/megan-web/internal/services/web/module"
	apperrors "github.com/meganhq/megan-web/internal/services/web/platform/errors"
	"github.com/meganhq/megan-web/internal/services/web/storage"
)

// service orchestrates account page actions over the gateway.
type service struct {
	accounts   gateway.AccountGateway
	changeFlow *flow.Controller
}

func newService(deps module.Dependencies) (service, error) {
	if deps.Accounts == nil {
		return service{}, fmt.Errorf("account gateway is required")
	}
	if deps.Store == nil {
		return service{}, fmt.Errorf("session store is required")
	}
	changeFlow, err := flow.NewController(flow.ChangePassword, flow.ChangePasswordCooldown, deps.Store)
	if err != nil {
		return service{}, err
	}
	return service{accounts: deps.Accounts, changeFlow: changeFlow}, nil
}

// changePassword sets a new password for the signed-in session.
func (s service) changePassword(ctx context.Context, session storage.Session, current, next string) error {
	return s.accounts.ChangePassword(ctx, session.Token, current, next)
}

// requestPasswordLink emails a change-password link to the signed-in user,
// under the shared change-password cooldown.
func (s service) requestPasswordLink(ctx context.Context, session storage.Session) error {
	return s.changeFlow.Dispatch(ctx, session.ID, func(ctx context.Context) error {
		return s.accounts.RequestPasswordChange(ctx, session.Token)
	})
}

// deleteAccount permanently deletes the signed-in user's account.
func (s service) deleteAccount(ctx context.Context, session storage.Session) error {
	return s.accounts.DeleteUser(ctx, session.Token, session.UserID)
}

// referralLink builds the user's referral URL.
func referralLink(email string) string {
	if email == "" {
		return ""
	}
	return "https://Megan.com/ref/" + email
}

// errorKey maps an action failure to the localization key its banner renders.
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
