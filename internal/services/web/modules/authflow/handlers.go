package authflow

import (
	"net/http"

	"github.com/a-h/templ"

	module "github.com/meganhq/megan-web/internal/services/web/module"
	flashnotice "github.com/meganhq/megan-web/internal/services/web/platform/flash"
	"github.com/meganhq/megan-web/internal/services/web/routepath"
	"github.com/meganhq/megan-web/internal/services/web/templates"
)

const redirectSeconds = 3

type handlers struct {
	svc  service
	deps module.Dependencies
}

func newHandlers(svc service, deps module.Dependencies) handlers {
	return handlers{svc: svc, deps: deps}
}

func (h handlers) writePage(w http.ResponseWriter, r *http.Request, statusCode int, build func(page templates.PageContext) templ.Component) {
	if err := h.deps.Renderer.WritePage(w, r, statusCode, build); err != nil && h.deps.Logger != nil {
		h.deps.Logger.Printf("render %s: %v", r.URL.Path, err)
	}
}

// handleAuthPage renders sign-in / sign-up. Signed-in visitors go home.
func (h handlers) handleAuthPage(w http.ResponseWriter, r *http.Request) {
	if session, ok := h.deps.Sessions.Current(r); ok && session.SignedIn() {
		http.Redirect(w, r, routepath.Root, http.StatusFound)
		return
	}
	tab := templates.AuthTabLogin
	if r.URL.Query().Get(routepath.TabParam) == string(templates.AuthTabRegister) {
		tab = templates.AuthTabRegister
	}
	h.writePage(w, r, http.StatusOK, func(page templates.PageContext) templ.Component {
		return templates.AuthPage(page, templates.AuthData{ActiveTab: tab})
	})
}

func (h handlers) handleLogin(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, routepath.Auth, http.StatusFound)
		return
	}
	email := normalizeEmail(r.PostFormValue("email"))
	password := r.PostFormValue("password")

	session, err := h.deps.Sessions.Ensure(w, r)
	if err != nil {
		h.renderAuthError(w, r, templates.AuthTabLogin, "error.unexpected", email, "")
		return
	}

	signedIn, err := h.svc.signIn(r.Context(), session, email, password)
	if err != nil {
		h.renderAuthError(w, r, templates.AuthTabLogin, errorKey(err), email, "")
		return
	}
	if err := h.deps.Sessions.Save(r.Context(), signedIn); err != nil {
		h.renderAuthError(w, r, templates.AuthTabLogin, "error.failed_to_login", email, "")
		return
	}

	flashnotice.Write(w, flashnotice.NoticeSuccess("toast.logged_in"))
	http.Redirect(w, r, routepath.Root, http.StatusFound)
}

// handleRegister validates the password confirmation locally before any
// account service call is made.
func (h handlers) handleRegister(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, routepath.Auth, http.StatusFound)
		return
	}
	name := r.PostFormValue("name")
	email := normalizeEmail(r.PostFormValue("email"))
	password := r.PostFormValue("password")
	confirm := r.PostFormValue("confirm_password")

	if password != confirm {
		h.renderAuthError(w, r, templates.AuthTabRegister, "error.passwords_mismatch", email, name)
		return
	}

	session, err := h.deps.Sessions.Ensure(w, r)
	if err != nil {
		h.renderAuthError(w, r, templates.AuthTabRegister, "error.unexpected", email, name)
		return
	}
	if err := h.svc.register(r.Context(), session.ID, name, email, password); err != nil {
		h.renderAuthError(w, r, templates.AuthTabRegister, errorKey(err), email, name)
		return
	}

	flashnotice.Write(w, flashnotice.NoticeSuccess("toast.confirmation_sent"))
	http.Redirect(w, r, routepath.ConfirmEmailSent(email), http.StatusFound)
}

func (h handlers) renderAuthError(w http.ResponseWriter, r *http.Request, tab templates.AuthTab, key, email, name string) {
	h.writePage(w, r, http.StatusOK, func(page templates.PageContext) templ.Component {
		return templates.AuthPage(page, templates.AuthData{
			ActiveTab: tab,
			ErrorKey:  key,
			Email:     email,
			Name:      name,
		})
	})
}

func (h handlers) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.Sessions.SignOut(w, r); err != nil && h.deps.Logger != nil {
		h.deps.Logger.Printf("sign out: %v", err)
	}
	flashnotice.Write(w, flashnotice.NoticeSuccess("toast.logged_out"))
	http.Redirect(w, r, routepath.Root, http.StatusFound)
}

// handleConfirmEmail serves three sub-views: token confirmation, the
// "check your inbox" panel for a known email, and a generic panel.
func (h handlers) handleConfirmEmail(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	token := query.Get(routepath.TokenParam)
	email := normalizeEmail(query.Get(routepath.EmailParam))

	if token != "" {
		if err := h.svc.confirmEmail(r.Context(), token); err != nil {
			key := errorKey(err)
			remaining := 0
			if email != "" {
				if session, sessErr := h.deps.Sessions.Ensure(w, r); sessErr == nil {
					remaining = h.svc.confirmRemaining(r.Context(), session.ID)
				}
			}
			h.writePage(w, r, http.StatusOK, func(page templates.PageContext) templ.Component {
				return templates.ConfirmEmailPage(page, templates.ConfirmEmailData{
					Mode:      templates.ConfirmEmailError,
					Email:     email,
					ErrorKey:  key,
					Remaining: remaining,
				})
			})
			return
		}
		h.writePage(w, r, http.StatusOK, func(page templates.PageContext) templ.Component {
			page.RedirectTo = routepath.Auth
			page.RedirectSeconds = redirectSeconds
			return templates.ConfirmEmailPage(page, templates.ConfirmEmailData{Mode: templates.ConfirmEmailSuccess})
		})
		return
	}

	remaining := 0
	if email != "" {
		if session, err := h.deps.Sessions.Ensure(w, r); err == nil {
			remaining = h.svc.confirmRemaining(r.Context(), session.ID)
		}
	}
	h.writePage(w, r, http.StatusOK, func(page templates.PageContext) templ.Component {
		return templates.ConfirmEmailPage(page, templates.ConfirmEmailData{
			Mode:      templates.ConfirmEmailCheck,
			Email:     email,
			Remaining: remaining,
		})
	})
}

func (h handlers) handleConfirmResend(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, routepath.ConfirmEmail, http.StatusFound)
		return
	}
	email := normalizeEmail(r.PostFormValue("email"))
	if email == "" {
		http.Redirect(w, r, routepath.ConfirmEmail, http.StatusFound)
		return
	}

	session, err := h.deps.Sessions.Ensure(w, r)
	if err == nil {
		err = h.svc.resendConfirmation(r.Context(), session.ID, email)
	}
	if err != nil {
		remaining := 0
		if session.ID != "" {
			remaining = h.svc.confirmRemaining(r.Context(), session.ID)
		}
		h.writePage(w, r, http.StatusOK, func(page templates.PageContext) templ.Component {
			return templates.ConfirmEmailPage(page, templates.ConfirmEmailData{
				Mode:      templates.ConfirmEmailError,
				Email:     email,
				ErrorKey:  errorKey(err),
				Remaining: remaining,
			})
		})
		return
	}

	flashnotice.Write(w, flashnotice.NoticeSuccess("toast.resend_success"))
	http.Redirect(w, r, routepath.ConfirmEmailSent(email), http.StatusFound)
}

// handleConfirmPassword serves the email-token password change page.
func (h handlers) handleConfirmPassword(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	token := query.Get(routepath.TokenParam)
	email := normalizeEmail(query.Get(routepath.EmailParam))

	if token != "" {
		h.writePage(w, r, http.StatusOK, func(page templates.PageContext) templ.Component {
			return templates.ConfirmPasswordPage(page, templates.ConfirmPasswordData{
				Mode:  templates.ConfirmPasswordForm,
				Token: token,
			})
		})
		return
	}
	if email != "" {
		remaining := 0
		if session, err := h.deps.Sessions.Ensure(w, r); err == nil {
			remaining = h.svc.changeRemaining(r.Context(), session.ID)
		}
		h.writePage(w, r, http.StatusOK, func(page templates.PageContext) templ.Component {
			return templates.ConfirmPasswordPage(page, templates.ConfirmPasswordData{
				Mode:      templates.ConfirmPasswordSent,
				Email:     email,
				Remaining: remaining,
			})
		})
		return
	}
	h.writePage(w, r, http.StatusOK, func(page templates.PageContext) templ.Component {
		return templates.ConfirmPasswordPage(page, templates.ConfirmPasswordData{
			Mode:     templates.ConfirmPasswordError,
			ErrorKey: "error.link_invalid",
		})
	})
}

func (h handlers) handleConfirmPasswordSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, routepath.ConfirmPassword, http.StatusFound)
		return
	}
	token := r.PostFormValue("token")
	newPassword := r.PostFormValue("new_password")
	confirm := r.PostFormValue("confirm_password")

	if token == "" {
		http.Redirect(w, r, routepath.ConfirmPassword, http.StatusFound)
		return
	}
	if newPassword != confirm {
		h.writePage(w, r, http.StatusOK, func(page templates.PageContext) templ.Component {
			return templates.ConfirmPasswordPage(page, templates.ConfirmPasswordData{
				Mode:     templates.ConfirmPasswordForm,
				Token:    token,
				ErrorKey: "error.passwords_mismatch",
			})
		})
		return
	}

	if err := h.svc.resetPassword(r.Context(), token, newPassword); err != nil {
		h.writePage(w, r, http.StatusOK, func(page templates.PageContext) templ.Component {
			return templates.ConfirmPasswordPage(page, templates.ConfirmPasswordData{
				Mode:     templates.ConfirmPasswordError,
				ErrorKey: errorKey(err),
			})
		})
		return
	}

	h.writePage(w, r, http.StatusOK, func(page templates.PageContext) templ.Component {
		page.RedirectTo = routepath.Auth
		page.RedirectSeconds = redirectSeconds
		return templates.ConfirmPasswordPage(page, templates.ConfirmPasswordData{Mode: templates.ConfirmPasswordSuccess})
	})
}

func (h handlers) handleConfirmPasswordResend(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, routepath.ConfirmPassword, http.StatusFound)
		return
	}
	email := normalizeEmail(r.PostFormValue("email"))
	if email == "" {
		http.Redirect(w, r, routepath.ConfirmPassword, http.StatusFound)
		return
	}

	session, err := h.deps.Sessions.Ensure(w, r)
	if err == nil {
		err = h.svc.resendPasswordChange(r.Context(), session.ID, email)
	}
	if err != nil {
		h.writePage(w, r, http.StatusOK, func(page templates.PageContext) templ.Component {
			return templates.ConfirmPasswordPage(page, templates.ConfirmPasswordData{
				Mode:     templates.ConfirmPasswordError,
				ErrorKey: errorKey(err),
			})
		})
		return
	}

	flashnotice.Write(w, flashnotice.NoticeSuccess("toast.reset_resent"))
	http.Redirect(w, r, routepath.ConfirmPasswordSent(email), http.StatusFound)
}

func (h handlers) handleForgotPasswordPage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	email := normalizeEmail(query.Get(routepath.EmailParam))
	if query.Get("sent") == "1" && email != "" {
		remaining := 0
		if session, err := h.deps.Sessions.Ensure(w, r); err == nil {
			remaining = h.svc.forgotRemaining(r.Context(), session.ID)
		}
		h.writePage(w, r, http.StatusOK, func(page templates.PageContext) templ.Component {
			return templates.ForgotPasswordPage(page, templates.ForgotPasswordData{
				Sent:      true,
				Email:     email,
				Remaining: remaining,
			})
		})
		return
	}
	h.writePage(w, r, http.StatusOK, func(page templates.PageContext) templ.Component {
		return templates.ForgotPasswordPage(page, templates.ForgotPasswordData{Email: email})
	})
}

func (h handlers) handleForgotPasswordSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, routepath.ForgotPassword, http.StatusFound)
		return
	}
	email := normalizeEmail(r.PostFormValue("email"))
	if email == "" {
		http.Redirect(w, r, routepath.ForgotPassword, http.StatusFound)
		return
	}

	session, err := h.deps.Sessions.Ensure(w, r)
	if err == nil {
		err = h.svc.requestPasswordReset(r.Context(), session.ID, email)
	}
	if err != nil {
		h.writePage(w, r, http.StatusOK, func(page templates.PageContext) templ.Component {
			return templates.ForgotPasswordPage(page, templates.ForgotPasswordData{
				Email:    email,
				ErrorKey: errorKey(err),
			})
		})
		return
	}

	flashnotice.Write(w, flashnotice.NoticeSuccess("toast.reset_sent"))
	http.Redirect(w, r, routepath.ForgotPassword+"?sent=1&"+routepath.EmailParam+"="+emailQuery(email), http.StatusFound)
}
