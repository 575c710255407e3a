package public

import (
	"net/http"

	"github.com/a-h/templ"

	module "github.com/meganhq/megan-web/internal/services/web/module"
	"github.com/meganhq/megan-web/internal/services/web/platform/httpx"
	"github.com/meganhq/megan-web/internal/services/web/templates"
)

type handlers struct {
	deps module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps}
}

func (h handlers) writePage(w http.ResponseWriter, r *http.Request, statusCode int, build func(page templates.PageContext) templ.Component) {
	if err := h.deps.Renderer.WritePage(w, r, statusCode, build); err != nil && h.deps.Logger != nil {
		h.deps.Logger.Printf("render %s: %v", r.URL.Path, err)
	}
}

func (h handlers) handleLanding(w http.ResponseWriter, r *http.Request) {
	h.writePage(w, r, http.StatusOK, func(page templates.PageContext) templ.Component {
		return templates.LandingPage(page)
	})
}

func (h handlers) handleAbout(w http.ResponseWriter, r *http.Request) {
	h.writePage(w, r, http.StatusOK, func(page templates.PageContext) templ.Component {
		return templates.AboutPage(page)
	})
}

func (h handlers) handleContact(w http.ResponseWriter, r *http.Request) {
	h.writePage(w, r, http.StatusOK, func(page templates.PageContext) templ.Component {
		return templates.ContactPage(page)
	})
}

func (h handlers) handleTerms(w http.ResponseWriter, r *http.Request) {
	h.writePage(w, r, http.StatusOK, func(page templates.PageContext) templ.Component {
		return templates.TermsPage(page)
	})
}

func (h handlers) handlePrivacy(w http.ResponseWriter, r *http.Request) {
	h.writePage(w, r, http.StatusOK, func(page templates.PageContext) templ.Component {
		return templates.PrivacyPage(page)
	})
}

func (h handlers) handleTutorial(w http.ResponseWriter, r *http.Request) {
	h.writePage(w, r, http.StatusOK, func(page templates.PageContext) templ.Component {
		return templates.TutorialPage(page)
	})
}

func (h handlers) handleTestI18n(w http.ResponseWriter, r *http.Request) {
	h.writePage(w, r, http.StatusOK, func(page templates.PageContext) templ.Component {
		return templates.TestI18nPage(page)
	})
}

func (h handlers) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = httpx.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	h.writePage(w, r, http.StatusNotFound, func(page templates.PageContext) templ.Component {
		return templates.ErrorPage(page, http.StatusNotFound)
	})
}
