package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/meganhq/megan-web/internal/services/web/flow"
	"github.com/meganhq/megan-web/internal/services/web/routepath"
)

// ConfirmPasswordMode selects which change-password panel renders.
type ConfirmPasswordMode string

const (
	// ConfirmPasswordForm shows the new-password form for a valid token.
	ConfirmPasswordForm ConfirmPasswordMode = "form"
	// ConfirmPasswordSent is the "link emailed" waiting panel.
	ConfirmPasswordSent ConfirmPasswordMode = "sent"
	// ConfirmPasswordSuccess is the changed panel with the sign-in redirect.
	ConfirmPasswordSuccess ConfirmPasswordMode = "success"
	// ConfirmPasswordError is the failed-change panel.
	ConfirmPasswordError ConfirmPasswordMode = "error"
)

// ConfirmPasswordData carries state for the change-password page.
type ConfirmPasswordData struct {
	Mode      ConfirmPasswordMode
	Token     string
	Email     string
	ErrorKey  string
	Remaining int
}

// ConfirmPasswordPage renders the email-token password change page.
func ConfirmPasswordPage(page PageContext, data ConfirmPasswordData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		switch data.Mode {
		case ConfirmPasswordSuccess:
			_, err := fmt.Fprintf(w,
				`<section class="flow-card flow-success" data-flow-state="%s"><h1>%s</h1><p>%s</p><a class="button button-primary" href="%s">%s</a></section>`,
				flow.StateSuccess,
				esc(T(page.Loc, "reset.success_title")),
				esc(T(page.Loc, "reset.success_body")),
				routepath.Auth, esc(T(page.Loc, "confirm.go_to_login")),
			)
			return err
		case ConfirmPasswordSent:
			email := data.Email
			if email == "" {
				email = T(page.Loc, "confirm.your_email")
			}
			if _, err := fmt.Fprintf(w,
				`<section class="flow-card" data-flow-state="%s"><h1>%s</h1><p>%s</p>`,
				flow.StatePending,
				esc(T(page.Loc, "reset.title")),
				esc(T(page.Loc, "reset.sent_body", email)),
			); err != nil {
				return err
			}
			if data.Email != "" {
				if err := countdown(page, routepath.ConfirmPasswordResend, data.Email, data.Remaining).Render(ctx, w); err != nil {
					return err
				}
			}
			_, err := fmt.Fprintf(w, `<a href="%s">%s</a></section>`, routepath.Auth, esc(T(page.Loc, "confirm.back_to_login")))
			return err
		case ConfirmPasswordError:
			errorKey := data.ErrorKey
			if errorKey == "" {
				errorKey = "error.change_password_failed"
			}
			_, err := fmt.Fprintf(w,
				`<section class="flow-card flow-error" data-flow-state="%s"><h1>%s</h1><div class="banner banner-error" role="alert">%s</div><a href="%s">%s</a> <a href="%s">%s</a></section>`,
				flow.StateError,
				esc(T(page.Loc, "reset.error_title")),
				esc(T(page.Loc, errorKey)),
				routepath.ForgotPassword, esc(T(page.Loc, "confirm.request_new_link")),
				routepath.Auth, esc(T(page.Loc, "confirm.back_to_login")),
			)
			return err
		default:
			if _, err := fmt.Fprintf(w,
				`<section class="flow-card" data-flow-state="%s"><h1>%s</h1><p>%s</p>`,
				flow.StateIdle,
				esc(T(page.Loc, "reset.title")),
				esc(T(page.Loc, "reset.body")),
			); err != nil {
				return err
			}
			if data.ErrorKey != "" {
				if _, err := fmt.Fprintf(w,
					`<div class="banner banner-error" role="alert">%s</div>`,
					esc(T(page.Loc, data.ErrorKey)),
				); err != nil {
					return err
				}
			}
			_, err := fmt.Fprintf(w,
				`<form method="post" action="%s" class="flow-form">`+
					`<input type="hidden" name="token" value="%s">`+
					`<label>%s<input type="password" name="new_password" required></label>`+
					`<label>%s<input type="password" name="confirm_password" required></label>`+
					`<button type="submit" class="button button-primary">%s</button></form></section>`,
				routepath.ConfirmPasswordSubmit,
				esc(data.Token),
				esc(T(page.Loc, "reset.new_password")),
				esc(T(page.Loc, "reset.repeat_password")),
				esc(T(page.Loc, "reset.submit")),
			)
			return err
		}
	})
	return Layout(page, T(page.Loc, "title.confirm_password"), body)
}
