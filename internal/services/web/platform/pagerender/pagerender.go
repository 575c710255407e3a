// Package pagerender centralizes full-page rendering behavior.
package pagerender

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/a-h/templ"

	flashnotice "github.com/meganhq/megan-web/internal/services/web/platform/flash"
	webi18n "github.com/meganhq/megan-web/internal/services/web/platform/i18n"
	"github.com/meganhq/megan-web/internal/services/web/platform/httpx"
	"github.com/meganhq/megan-web/internal/services/web/storage"
	webtemplates "github.com/meganhq/megan-web/internal/services/web/templates"
)

// SessionResolver resolves the current session from a request.
// This decouples platform rendering from the session manager type.
type SessionResolver interface {
	Current(r *http.Request) (storage.Session, bool)
}

// Renderer writes full pages with shared chrome state resolved once.
type Renderer struct {
	AppName  string
	Sessions SessionResolver
}

// Context resolves the shared page context for one request: language,
// localizer, signed-in viewer, and any pending flash toast.
func (rd Renderer) Context(w http.ResponseWriter, r *http.Request) webtemplates.PageContext {
	loc, lang := webi18n.ResolveLocalizer(w, r)
	page := webtemplates.PageContext{
		Lang:        lang,
		Loc:         loc,
		CurrentPath: r.URL.Path,
		AppName:     rd.AppName,
	}
	if rd.Sessions != nil {
		if session, ok := rd.Sessions.Current(r); ok && session.SignedIn() {
			page.SignedIn = true
			page.UserName = session.UserName
			page.UserEmail = session.UserEmail
			page.UserAvatar = session.UserAvatar
		}
	}
	if notice, ok := flashnotice.ReadAndClear(w, r); ok {
		message := strings.TrimSpace(loc.Sprintf(notice.Key))
		if message == "" {
			message = notice.Key
		}
		page.Toast = &webtemplates.Toast{Kind: string(notice.Kind), Message: message}
	}
	return page
}

// WritePage renders a component built from the resolved page context.
func (rd Renderer) WritePage(w http.ResponseWriter, r *http.Request, statusCode int, build func(page webtemplates.PageContext) templ.Component) error {
	if w == nil {
		return nil
	}
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	page := rd.Context(w, r)
	component := build(page)

	var buf bytes.Buffer
	if err := component.Render(httpx.RequestContext(r), &buf); err != nil {
		return err
	}
	return httpx.WriteHTML(w, statusCode, buf.String())
}
