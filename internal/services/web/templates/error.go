package templates

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"

	"github.com/meganhq/megan-web/internal/services/web/routepath"
)

// ErrorPage renders the not-found and server-error pages.
func ErrorPage(page PageContext, statusCode int) templ.Component {
	messageKey := "error.page.server"
	if statusCode == http.StatusNotFound {
		messageKey = "error.page.not_found"
	}
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<section class="flow-card flow-error"><h1>%d</h1><p>%s</p><a class="button" href="%s">%s</a></section>`,
			statusCode,
			esc(T(page.Loc, messageKey)),
			routepath.Root, esc(T(page.Loc, "error.page.back_home")),
		)
		return err
	})
	title := T(page.Loc, "title.not_found")
	if statusCode != http.StatusNotFound {
		title = page.AppName
	}
	return Layout(page, title, body)
}

