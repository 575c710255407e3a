// Package routepath stores canonical HTTP paths for web modules.
package routepath

import "net/url"

const (
	Root                  = "/"
	About                 = "/about"
	Contact               = "/contact"
	Terms                 = "/terms"
	Privacy               = "/privacy"
	Tutorial              = "/tutorial"
	TestI18n              = "/test-i18n"
	Health                = "/up"
	Auth                  = "/auth"
	AuthLogin             = "/auth/login"
	AuthRegister          = "/auth/register"
	Logout                = "/logout"
	ConfirmEmail          = "/confirm-email"
	ConfirmResend         = "/confirm-email/resend"
	ConfirmPassword       = "/confirm-password"
	ConfirmPasswordSubmit = "/confirm-password/submit"
	ConfirmPasswordResend = "/confirm-password/resend"
	ForgotPassword        = "/forgot-password"
	Account               = "/account"
	AccountPassword       = "/account/password"
	AccountPasswordLink   = "/account/password/link"
	AccountDelete         = "/account/delete"

	// TokenParam and EmailParam are the query parameters confirmation pages
	// read to pick their sub-view.
	TokenParam = "token"
	EmailParam = "email"
	// TabParam selects the account page tab.
	TabParam = "tab"
)

// ConfirmEmailSent returns the confirm-email route in "link was sent" mode.
func ConfirmEmailSent(email string) string {
	return ConfirmEmail + "?" + EmailParam + "=" + url.QueryEscape(email)
}

// ConfirmPasswordSent returns the confirm-password route in "link was sent" mode.
func ConfirmPasswordSent(email string) string {
	return ConfirmPassword + "?" + EmailParam + "=" + url.QueryEscape(email)
}

// AccountTab returns the account route with a tab selected.
func AccountTab(tab string) string {
	return Account + "?" + TabParam + "=" + url.QueryEscape(tab)
}
