package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/meganhq/megan-web/internal/services/web/flow"
	"github.com/meganhq/megan-web/internal/services/web/routepath"
)

// ForgotPasswordData carries state for the password recovery page.
type ForgotPasswordData struct {
	Sent      bool
	Email     string
	ErrorKey  string
	Remaining int
}

// ForgotPasswordPage renders the password recovery request page.
func ForgotPasswordPage(page PageContext, data ForgotPasswordData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if data.Sent {
			if _, err := fmt.Fprintf(w,
				`<section class="flow-card flow-success" data-flow-state="%s"><h1>%s</h1><p>%s</p>`,
				flow.StateSuccess,
				esc(T(page.Loc, "forgot.sent_title")),
				esc(T(page.Loc, "forgot.sent_body")),
			); err != nil {
				return err
			}
			if err := countdown(page, routepath.ForgotPassword, data.Email, data.Remaining).Render(ctx, w); err != nil {
				return err
			}
			_, err := fmt.Fprintf(w, `<a href="%s">%s</a></section>`, routepath.Auth, esc(T(page.Loc, "confirm.back_to_login")))
			return err
		}

		if _, err := fmt.Fprintf(w,
			`<section class="flow-card" data-flow-state="%s"><h1>%s</h1><p>%s</p>`,
			flow.StateIdle,
			esc(T(page.Loc, "forgot.title")),
			esc(T(page.Loc, "forgot.body")),
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
				`<label>%s<input type="email" name="email" value="%s" placeholder="%s" required></label>`+
				`<button type="submit" class="button button-primary">%s</button></form>`+
				`<a href="%s">%s</a></section>`,
			routepath.ForgotPassword,
			esc(T(page.Loc, "forgot.your_email")), esc(data.Email), esc(T(page.Loc, "auth.enter_email")),
			esc(T(page.Loc, "forgot.send_link")),
			routepath.Auth, esc(T(page.Loc, "confirm.back_to_login")),
		)
		return err
	})
	return Layout(page, T(page.Loc, "title.forgot_password"), body)
}
