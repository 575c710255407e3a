package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/meganhq/megan-web/internal/services/web/routepath"
)

// AuthTab selects which auth panel is active.
type AuthTab string

const (
	AuthTabLogin    AuthTab = "login"
	AuthTabRegister AuthTab = "register"
)

// AuthData carries prefill values and banner state for the auth page.
type AuthData struct {
	ActiveTab AuthTab
	// ErrorKey localizes the error banner; empty means no banner.
	ErrorKey string
	Email    string
	Name     string
}

// AuthPage renders the combined sign-in / sign-up page.
func AuthPage(page PageContext, data AuthData) templ.Component {
	if data.ActiveTab == "" {
		data.ActiveTab = AuthTabLogin
	}
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<section class="auth-card"><h1>%s</h1><p class="auth-subtitle">%s</p>`,
			esc(T(page.Loc, "auth.welcome")), esc(T(page.Loc, "auth.subtitle")),
		); err != nil {
			return err
		}
		if err := authTabs(page, data.ActiveTab).Render(ctx, w); err != nil {
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
		if data.ActiveTab == AuthTabRegister {
			if err := registerForm(page, data).Render(ctx, w); err != nil {
				return err
			}
		} else {
			if err := loginForm(page, data).Render(ctx, w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</section>`)
		return err
	})
	return Layout(page, T(page.Loc, "title.auth"), body)
}

func authTabs(page PageContext, active AuthTab) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		loginClass, registerClass := "auth-tab", "auth-tab"
		if active == AuthTabRegister {
			registerClass += " auth-tab-active"
		} else {
			loginClass += " auth-tab-active"
		}
		_, err := fmt.Fprintf(w,
			`<nav class="auth-tabs"><a class="%s" href="%s">%s</a><a class="%s" href="%s?tab=register">%s</a></nav>`,
			loginClass, routepath.Auth, esc(T(page.Loc, "auth.sign_in")),
			registerClass, routepath.Auth, esc(T(page.Loc, "auth.sign_up")),
		)
		return err
	})
}

func loginForm(page PageContext, data AuthData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<form method="post" action="%s" class="auth-form">`+
				`<label>%s<input type="email" name="email" value="%s" placeholder="%s" required></label>`+
				`<label>%s<input type="password" name="password" placeholder="%s" required></label>`+
				`<div class="auth-form-row"><label class="auth-remember"><input type="checkbox" name="remember">%s</label>`+
				`<a href="%s">%s</a></div>`+
				`<button type="submit" class="button button-primary">%s</button></form>`,
			routepath.AuthLogin,
			esc(T(page.Loc, "auth.email")), esc(data.Email), esc(T(page.Loc, "auth.enter_email")),
			esc(T(page.Loc, "auth.password")), esc(T(page.Loc, "auth.enter_password")),
			esc(T(page.Loc, "auth.remember_me")),
			routepath.ForgotPassword, esc(T(page.Loc, "auth.forgot_password")),
			esc(T(page.Loc, "auth.sign_in")),
		)
		return err
	})
}

func registerForm(page PageContext, data AuthData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<form method="post" action="%s" class="auth-form">`+
				`<label>%s<input type="text" name="name" value="%s" placeholder="%s" required></label>`+
				`<label>%s<input type="email" name="email" value="%s" placeholder="%s" required></label>`+
				`<label>%s<input type="password" name="password" placeholder="%s" required></label>`+
				`<label>%s<input type="password" name="confirm_password" placeholder="%s" required></label>`+
				`<p class="auth-terms">%s <a href="%s">%s</a> %s <a href="%s">%s</a></p>`+
				`<button type="submit" class="button button-primary">%s</button></form>`,
			routepath.AuthRegister,
			esc(T(page.Loc, "auth.full_name")), esc(data.Name), esc(T(page.Loc, "auth.enter_full_name")),
			esc(T(page.Loc, "auth.email")), esc(data.Email), esc(T(page.Loc, "auth.enter_email")),
			esc(T(page.Loc, "auth.password")), esc(T(page.Loc, "auth.create_password")),
			esc(T(page.Loc, "auth.confirm_password")), esc(T(page.Loc, "auth.confirm_your_password")),
			esc(T(page.Loc, "auth.agree_prefix")),
			routepath.Terms, esc(T(page.Loc, "nav.terms")),
			esc(T(page.Loc, "auth.agree_and")),
			routepath.Privacy, esc(T(page.Loc, "nav.privacy")),
			esc(T(page.Loc, "auth.create_account")),
		)
		return err
	})
}
