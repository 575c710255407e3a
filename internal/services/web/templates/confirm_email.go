package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/meganhq/megan-web/internal/services/web/flow"
	"github.com/meganhq/megan-web/internal/services/web/routepath"
)

// ConfirmEmailMode selects which confirm-email panel renders.
type ConfirmEmailMode string

const (
	// ConfirmEmailCheck is the post-registration "check your inbox" panel.
	ConfirmEmailCheck ConfirmEmailMode = "check"
	// ConfirmEmailSuccess is the confirmed panel with the sign-in redirect.
	ConfirmEmailSuccess ConfirmEmailMode = "success"
	// ConfirmEmailError is the failed-confirmation panel.
	ConfirmEmailError ConfirmEmailMode = "error"
)

// ConfirmEmailData carries state for the confirm-email page.
type ConfirmEmailData struct {
	Mode      ConfirmEmailMode
	Email     string
	ErrorKey  string
	Remaining int
}

// ConfirmEmailPage renders the email confirmation page.
func ConfirmEmailPage(page PageContext, data ConfirmEmailData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		switch data.Mode {
		case ConfirmEmailSuccess:
			_, err := fmt.Fprintf(w,
				`<section class="flow-card flow-success" data-flow-state="%s"><h1>%s</h1><p>%s</p><a class="button button-primary" href="%s">%s</a></section>`,
				flow.StateSuccess,
				esc(T(page.Loc, "confirm.success_title")),
				esc(T(page.Loc, "confirm.success_body")),
				routepath.Auth, esc(T(page.Loc, "confirm.go_to_login")),
			)
			return err
		case ConfirmEmailError:
			errorKey := data.ErrorKey
			if errorKey == "" {
				errorKey = "error.confirm_failed"
			}
			if _, err := fmt.Fprintf(w,
				`<section class="flow-card flow-error" data-flow-state="%s"><h1>%s</h1><div class="banner banner-error" role="alert">%s</div>`,
				flow.StateError,
				esc(T(page.Loc, "confirm.error_title")),
				esc(T(page.Loc, errorKey)),
			); err != nil {
				return err
			}
			if data.Email != "" {
				if err := countdown(page, routepath.ConfirmResend, data.Email, data.Remaining).Render(ctx, w); err != nil {
					return err
				}
			}
			_, err := fmt.Fprintf(w,
				`<a href="%s">%s</a></section>`,
				routepath.Auth, esc(T(page.Loc, "confirm.back_to_login")),
			)
			return err
		default:
			email := data.Email
			if email == "" {
				email = T(page.Loc, "confirm.your_email")
			}
			if _, err := fmt.Fprintf(w,
				`<section class="flow-card" data-flow-state="%s"><h1>%s</h1><p>%s</p>`,
				flow.StateIdle,
				esc(T(page.Loc, "confirm.check_title")),
				esc(T(page.Loc, "confirm.check_body", email)),
			); err != nil {
				return err
			}
			if data.Email != "" {
				if err := countdown(page, routepath.ConfirmResend, data.Email, data.Remaining).Render(ctx, w); err != nil {
					return err
				}
			}
			_, err := fmt.Fprintf(w,
				`<a href="%s">%s</a></section>`,
				routepath.Auth, esc(T(page.Loc, "confirm.back_to_login")),
			)
			return err
		}
	})
	return Layout(page, T(page.Loc, "title.confirm_email"), body)
}
