package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/meganhq/megan-web/internal/services/web/routepath"
)

func esc(value string) string {
	return templ.EscapeString(value)
}

// Layout wraps a page body in the shared site chrome: head, nav, toast
// area, and footer.
func Layout(page PageContext, title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<!DOCTYPE html><html lang="%s"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`,
			esc(page.Lang),
		); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<title>%s</title>`, esc(title)); err != nil {
			return err
		}
		if page.RedirectTo != "" {
			if _, err := fmt.Fprintf(w, `<meta http-equiv="refresh" content="%d;url=%s">`, page.RedirectSeconds, esc(page.RedirectTo)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w,
			`<meta name="description" content="%s"><link rel="icon" href="/static/icon.svg"><link rel="stylesheet" href="/static/site.css"></head><body>`,
			esc(T(page.Loc, "meta.description")),
		); err != nil {
			return err
		}
		if err := siteNav(page).Render(ctx, w); err != nil {
			return err
		}
		if err := toastBanner(page).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<main class="site-main">`); err != nil {
			return err
		}
		if body != nil {
			if err := body.Render(ctx, w); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</main>`); err != nil {
			return err
		}
		if err := siteFooter(page).Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</body></html>`)
		return err
	})
}

func siteNav(page PageContext) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<header class="site-nav"><a class="site-nav-brand" href="%s">%s</a><nav class="site-nav-links">`,
			routepath.Root, esc(page.AppName),
		); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w,
			`<a href="%s">%s</a><a href="%s">%s</a><a href="%s">%s</a>`,
			routepath.About, esc(T(page.Loc, "nav.about")),
			routepath.Tutorial, esc(T(page.Loc, "nav.tutorial")),
			routepath.Contact, esc(T(page.Loc, "nav.contact")),
		); err != nil {
			return err
		}
		if page.SignedIn {
			if _, err := fmt.Fprintf(w,
				`<a class="site-nav-cta" href="%s">%s</a><form method="post" action="%s" class="site-nav-logout"><button type="submit">%s</button></form>`,
				routepath.Account, esc(T(page.Loc, "nav.my_account")),
				routepath.Logout, esc(T(page.Loc, "nav.logout")),
			); err != nil {
				return err
			}
		} else {
			if _, err := fmt.Fprintf(w,
				`<a class="site-nav-cta" href="%s">%s</a>`,
				routepath.Auth, esc(T(page.Loc, "nav.get_started")),
			); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w,
			`<span class="site-nav-lang"><a href="?%s=en">%s</a> | <a href="?%s=ru">%s</a></span></nav></header>`,
			"lang", esc(T(page.Loc, "nav.lang_en")),
			"lang", esc(T(page.Loc, "nav.lang_ru")),
		)
		return err
	})
}

func toastBanner(page PageContext) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if page.Toast == nil {
			return nil
		}
		_, err := fmt.Fprintf(w,
			`<div class="toast toast-%s" role="status">%s</div>`,
			esc(page.Toast.Kind), esc(page.Toast.Message),
		)
		return err
	})
}

func siteFooter(page PageContext) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<footer class="site-footer"><a href="%s">%s</a><a href="%s">%s</a></footer>`,
			routepath.Terms, esc(T(page.Loc, "nav.terms")),
			routepath.Privacy, esc(T(page.Loc, "nav.privacy")),
		)
		return err
	})
}

// countdown renders the resend button either armed or ticking down.
// The inline script keeps the visible count moving between page loads;
// the server-side deadline stays authoritative.
func countdown(page PageContext, formAction, email string, remaining int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<form method="post" action="%s" class="resend-form">`, esc(formAction)); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, `<input type="hidden" name="email" value="%s">`, esc(email)); err != nil {
			return err
		}
		if remaining > 0 {
			if _, err := fmt.Fprintf(w,
				`<button type="submit" disabled data-remaining="%d" class="resend-button">%s</button>`,
				remaining, esc(T(page.Loc, "confirm.resend_in", remaining)),
			); err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w,
				`<script>(function(){var b=document.currentScript.previousElementSibling;var n=parseInt(b.dataset.remaining,10);var label=b.textContent;var t=setInterval(function(){n--;if(n<=0){clearInterval(t);b.disabled=false;b.textContent=%q;return}b.textContent=label.replace(/\d+/,n)},1000)})();</script>`,
				T(page.Loc, "confirm.resend"),
			); err != nil {
				return err
			}
		} else {
			if _, err := fmt.Fprintf(w,
				`<button type="submit" class="resend-button">%s</button>`,
				esc(T(page.Loc, "confirm.resend")),
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</form>`)
		return err
	})
}
