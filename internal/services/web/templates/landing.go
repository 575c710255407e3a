package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/meganhq/megan-web/internal/services/web/routepath"
)

// LandingPage renders the marketing front page.
func LandingPage(page PageContext) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<section class="hero"><h1>%s</h1><p>%s</p><div class="hero-actions"><a class="button button-primary" href="%s">%s</a><a class="button" href="%s">%s</a></div></section>`,
			esc(page.AppName),
			esc(T(page.Loc, "landing.tagline")),
			routepath.Auth, esc(T(page.Loc, "landing.hero_cta")),
			routepath.Tutorial, esc(T(page.Loc, "landing.hero_secondary")),
		); err != nil {
			return err
		}
		features := []struct {
			title string
			body  string
		}{
			{title: "landing.feature.voice_title", body: "landing.feature.voice_body"},
			{title: "landing.feature.dictation_title", body: "landing.feature.dictation_body"},
			{title: "landing.feature.privacy_title", body: "landing.feature.privacy_body"},
		}
		if _, err := io.WriteString(w, `<section class="features">`); err != nil {
			return err
		}
		for _, feature := range features {
			if _, err := fmt.Fprintf(w,
				`<article class="feature"><h2>%s</h2><p>%s</p></article>`,
				esc(T(page.Loc, feature.title)), esc(T(page.Loc, feature.body)),
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</section>`)
		return err
	})
	return Layout(page, T(page.Loc, "title.landing"), body)
}
