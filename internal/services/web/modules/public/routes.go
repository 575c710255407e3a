package public

import (
	"net/http"

	"github.com/meganhq/megan-web/internal/services/web/routepath"
)

func registerRoutes(mux *http.ServeMux, h handlers) {
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleLanding)
	mux.HandleFunc(http.MethodGet+" "+routepath.About, h.handleAbout)
	mux.HandleFunc(http.MethodGet+" "+routepath.Contact, h.handleContact)
	mux.HandleFunc(http.MethodGet+" "+routepath.Terms, h.handleTerms)
	mux.HandleFunc(http.MethodGet+" "+routepath.Privacy, h.handlePrivacy)
	mux.HandleFunc(http.MethodGet+" "+routepath.Tutorial, h.handleTutorial)
	mux.HandleFunc(http.MethodGet+" "+routepath.TestI18n, h.handleTestI18n)
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, h.handleHealth)
	mux.HandleFunc(routepath.Root, h.handleNotFound)
}
