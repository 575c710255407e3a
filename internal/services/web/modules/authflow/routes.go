package authflow

import (
	"net/http"

	"github.com/meganhq/megan-web/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	mux.HandleFunc(http.MethodGet+" "+routepath.Auth, h.handleAuthPage)
	mux.HandleFunc(http.MethodPost+" "+routepath.AuthLogin, h.handleLogin)
	mux.HandleFunc(http.MethodPost+" "+routepath.AuthRegister, h.handleRegister)
	mux.HandleFunc(http.MethodPost+" "+routepath.Logout, h.handleLogout)
	mux.HandleFunc(http.MethodGet+" "+routepath.ConfirmEmail, h.handleConfirmEmail)
	mux.HandleFunc(http.MethodPost+" "+routepath.ConfirmResend, h.handleConfirmResend)
	mux.HandleFunc(http.MethodGet+" "+routepath.ConfirmPassword, h.handleConfirmPassword)
	mux.HandleFunc(http.MethodPost+" "+routepath.ConfirmPasswordSubmit, h.handleConfirmPasswordSubmit)
	mux.HandleFunc(http.MethodPost+" "+routepath.ConfirmPasswordResend, h.handleConfirmPasswordResend)
	mux.HandleFunc(http.MethodGet+" "+routepath.ForgotPassword, h.handleForgotPasswordPage)
	mux.HandleFunc(http.MethodPost+" "+routepath.ForgotPassword, h.handleForgotPasswordSubmit)
}
