package account

import (
	"net/http"

	"github.com/a-h/templ"

	module "github.com/meganhq/megan-web/internal/services/web/module"
	flashnotice "github.com/meganhq/megan-web/internal/services/web/platform/flash"
	"github.com/meganhq/megan-web/internal/services/web/routepath"
	"github.com/meganhq/megan-web/internal/services/web/storage"
	"github.com/meganhq/megan-web/internal/services/web/templates"
)

type handlers struct {
	svc  service
	deps module.Dependencies
}

func newHandlers(svc service, deps module.Dependencies) handlers {
	return handlers{svc: svc, deps: deps}
}

// requireSession gates every account route behind a signed-in session.
func (h handlers) requireSession(next func(http.ResponseWriter, *http.Request, storage.Session)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := h.deps.Sessions.Current(r)
		if !ok || !session.SignedIn() {
			flashnotice.Write(w, flashnotice.NoticeError("error.not_signed_in"))
			http.Redirect(w, r, routepath.Auth, http.StatusFound)
			return
		}
		next(w, r, session)
	}
}

func (h handlers) writePage(w http.ResponseWriter, r *http.Request, statusCode int, build func(page templates.PageContext) templ.Component) {
	if err := h.deps.Renderer.WritePage(w, r, statusCode, build); err != nil && h.deps.Logger != nil {
		h.deps.Logger.Printf("render %s: %v", r.URL.Path, err)
	}
}

func (h handlers) handleAccountPage(w http.ResponseWriter, r *http.Request, session storage.Session) {
	tab := templates.AccountTab(r.URL.Query().Get(routepath.TabParam))
	h.renderAccount(w, r, session, tab, "")
}

// handleChangePassword updates the password in place. The confirmation is
// checked locally before the account service sees the request.
func (h handlers) handleChangePassword(w http.ResponseWriter, r *http.Request, session storage.Session) {
	if err := r.ParseForm(); err != nil {
		http.Redirect(w, r, routepath.Account, http.StatusFound)
		return
	}
	current := r.PostFormValue("current_password")
	next := r.PostFormValue("new_password")
	confirm := r.PostFormValue("confirm_password")

	if next != confirm {
		h.renderAccount(w, r, session, templates.AccountTabAccount, "error.passwords_mismatch")
		return
	}
	if err := h.svc.changePassword(r.Context(), session, current, next); err != nil {
		h.renderAccount(w, r, session, templates.AccountTabAccount, errorKey(err))
		return
	}

	flashnotice.Write(w, flashnotice.NoticeSuccess("toast.password_updated"))
	http.Redirect(w, r, routepath.Account, http.StatusFound)
}

// handlePasswordLink emails a change-password link instead of changing the
// password inline.
func (h handlers) handlePasswordLink(w http.ResponseWriter, r *http.Request, session storage.Session) {
	if err := h.svc.requestPasswordLink(r.Context(), session); err != nil {
		h.renderAccount(w, r, session, templates.AccountTabAccount, errorKey(err))
		return
	}

	flashnotice.Write(w, flashnotice.NoticeSuccess("toast.change_link_sent"))
	http.Redirect(w, r, routepath.ConfirmPasswordSent(session.UserEmail), http.StatusFound)
}

// handleDeleteAccount deletes the account upstream, then ends the local
// session and returns the visitor to the sign-in page.
func (h handlers) handleDeleteAccount(w http.ResponseWriter, r *http.Request, session storage.Session) {
	if err := h.svc.deleteAccount(r.Context(), session); err != nil {
		h.renderAccount(w, r, session, templates.AccountTabAccount, errorKey(err))
		return
	}
	if err := h.deps.Sessions.SignOut(w, r); err != nil && h.deps.Logger != nil {
		h.deps.Logger.Printf("sign out: %v", err)
	}

	flashnotice.Write(w, flashnotice.NoticeSuccess("toast.account_deleted"))
	http.Redirect(w, r, routepath.Auth, http.StatusFound)
}

func (h handlers) renderAccount(w http.ResponseWriter, r *http.Request, session storage.Session, tab templates.AccountTab, passwordErrorKey string) {
	h.writePage(w, r, http.StatusOK, func(page templates.PageContext) templ.Component {
		return templates.AccountPage(page, templates.AccountData{
			Tab:              tab,
			PasswordErrorKey: passwordErrorKey,
			ReferralLink:     referralLink(session.UserEmail),
		})
	})
}
