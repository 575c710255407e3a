package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
)

func proseBody(page PageContext, headingKey string, bodyKeys ...string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<article class="prose"><h1>%s</h1>`, esc(T(page.Loc, headingKey))); err != nil {
			return err
		}
		for _, key := range bodyKeys {
			if _, err := fmt.Fprintf(w, `<p>%s</p>`, esc(T(page.Loc, key))); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</article>`)
		return err
	})
}

// AboutPage renders the about page.
func AboutPage(page PageContext) templ.Component {
	return Layout(page, T(page.Loc, "title.about"), proseBody(page, "about.heading", "about.body"))
}

// ContactPage renders the contact page.
func ContactPage(page PageContext) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := proseBody(page, "contact.heading", "contact.body").Render(ctx, w); err != nil {
			return err
		}
		_, err := fmt.Fprintf(w,
			`<p class="contact-email">%s: <a href="mailto:hello@megan.com">hello@megan.com</a></p>`,
			esc(T(page.Loc, "contact.email_label")),
		)
		return err
	})
	return Layout(page, T(page.Loc, "title.contact"), body)
}

// TermsPage renders the terms of service page.
func TermsPage(page PageContext) templ.Component {
	return Layout(page, T(page.Loc, "title.terms"), proseBody(page, "terms.heading", "terms.body"))
}

// PrivacyPage renders the privacy policy page.
func PrivacyPage(page PageContext) templ.Component {
	return Layout(page, T(page.Loc, "title.privacy"), proseBody(page, "privacy.heading", "privacy.body"))
}

// TutorialPage renders the getting-started walkthrough.
func TutorialPage(page PageContext) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<article class="prose"><h1>%s</h1><ol class="tutorial-steps">`, esc(T(page.Loc, "tutorial.heading"))); err != nil {
			return err
		}
		steps := []string{
			"tutorial.step_install",
			"tutorial.step_activate",
			"tutorial.step_commands",
			"tutorial.step_dictate",
		}
		for _, step := range steps {
			if _, err := fmt.Fprintf(w, `<li>%s</li>`, esc(T(page.Loc, step))); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</ol></article>`)
		return err
	})
	return Layout(page, T(page.Loc, "title.tutorial"), body)
}

// TestI18nPage renders the locale diagnostics page.
func TestI18nPage(page PageContext) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<article class="prose"><h1>%s</h1><p>%s</p></article>`,
			esc(T(page.Loc, "testi18n.heading")),
			esc(T(page.Loc, "testi18n.current", page.Lang)),
		)
		return err
	})
	return Layout(page, T(page.Loc, "title.test_i18n"), body)
}
