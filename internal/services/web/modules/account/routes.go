package account

import (
	"net/http"

	"github.com/meganhq/megan-web/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	mux.HandleFunc(http.MethodGet+" "+routepath.Account, h.requireSession(h.handleAccountPage))
	mux.HandleFunc(http.MethodPost+" "+routepath.AccountPassword, h.requireSession(h.handleChangePassword))
	mux.HandleFunc(http.MethodPost+" "+routepath.AccountPasswordLink, h.requireSession(h.handlePasswordLink))
	mux.HandleFunc(http.MethodPost+" "+routepath.AccountDelete, h.requireSession(h.handleDeleteAccount))
}
