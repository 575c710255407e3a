package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/meganhq/megan-web/internal/services/web/routepath"
)

// AccountTab selects the visible account page panel.
type AccountTab string

const (
	AccountTabAccount  AccountTab = "account"
	AccountTabPro      AccountTab = "pro"
	AccountTabReferral AccountTab = "referral"
)

// AccountData carries state for the account management page.
type AccountData struct {
	Tab AccountTab
	// PasswordErrorKey localizes the change-password banner; empty means none.
	PasswordErrorKey string
	ReferralLink     string
}

// AccountPage renders the signed-in account management page.
func AccountPage(page PageContext, data AccountData) templ.Component {
	if data.Tab == "" {
		data.Tab = AccountTabAccount
	}
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := accountHeader(page).Render(ctx, w); err != nil {
			return err
		}
		if err := accountTabs(page, data.Tab).Render(ctx, w); err != nil {
			return err
		}
		switch data.Tab {
		case AccountTabPro:
			return comingSoonPanel(page, "account.pro_title", "account.pro_note").Render(ctx, w)
		case AccountTabReferral:
			return referralPanel(page, data).Render(ctx, w)
		default:
			return accountPanel(page, data).Render(ctx, w)
		}
	})
	return Layout(page, T(page.Loc, "title.account"), body)
}

func accountHeader(page PageContext) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		name := page.UserName
		if name == "" {
			name = T(page.Loc, "account.user")
		}
		if _, err := fmt.Fprintf(w, `<section class="account-header">`); err != nil {
			return err
		}
		if page.UserAvatar != "" {
			if _, err := fmt.Fprintf(w, `<img class="account-avatar" src="%s" alt="">`, esc(page.UserAvatar)); err != nil {
				return err
			}
		}
		_, err := fmt.Fprintf(w,
			`<div><h1>%s</h1><p>%s</p><span class="account-badge">%s</span></div></section>`,
			esc(name), esc(page.UserEmail), esc(T(page.Loc, "account.active")),
		)
		return err
	})
}

func accountTabs(page PageContext, active AccountTab) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		tabs := []struct {
			tab AccountTab
			key string
		}{
			{tab: AccountTabAccount, key: "account.tab_account"},
			{tab: AccountTabPro, key: "account.tab_pro"},
			{tab: AccountTabReferral, key: "account.tab_referral"},
		}
		if _, err := io.WriteString(w, `<nav class="account-tabs">`); err != nil {
			return err
		}
		for _, entry := range tabs {
			class := "account-tab"
			if entry.tab == active {
				class += " account-tab-active"
			}
			if _, err := fmt.Fprintf(w,
				`<a class="%s" href="%s">%s</a>`,
				class, routepath.AccountTab(string(entry.tab)), esc(T(page.Loc, entry.key)),
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</nav>`)
		return err
	})
}

func accountPanel(page PageContext, data AccountData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<section class="account-panel"><h2>%s</h2><p>%s</p>`,
			esc(T(page.Loc, "account.profile_settings")),
			esc(T(page.Loc, "account.manage_info")),
		); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w,
			`<h3>%s</h3><p>%s</p>`,
			esc(T(page.Loc, "account.change_password")),
			esc(T(page.Loc, "account.update_password_hint")),
		); err != nil {
			return err
		}
		if data.PasswordErrorKey != "" {
			if _, err := fmt.Fprintf(w,
				`<div class="banner banner-error" role="alert">%s</div>`,
				esc(T(page.Loc, data.PasswordErrorKey)),
			); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w,
			`<form method="post" action="%s" class="flow-form">`+
				`<label>%s<input type="password" name="current_password" required></label>`+
				`<label>%s<input type="password" name="new_password" required></label>`+
				`<label>%s<input type="password" name="confirm_password" required></label>`+
				`<button type="submit" class="button button-primary">%s</button></form>`,
			routepath.AccountPassword,
			esc(T(page.Loc, "account.current_password")),
			esc(T(page.Loc, "account.new_password")),
			esc(T(page.Loc, "account.confirm_new_password")),
			esc(T(page.Loc, "account.update_password")),
		); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w,
			`<form method="post" action="%s" class="account-link-form"><button type="submit" class="button">%s</button></form>`,
			routepath.AccountPasswordLink,
			esc(T(page.Loc, "account.send_change_link")),
		); err != nil {
			return err
		}

		_, err := fmt.Fprintf(w,
			`<section class="danger-zone"><h3>%s</h3><p>%s</p>`+
				`<form method="post" action="%s"><button type="submit" class="button button-danger">%s</button></form></section></section>`,
			esc(T(page.Loc, "account.danger_zone")),
			esc(T(page.Loc, "account.delete_warning")),
			routepath.AccountDelete,
			esc(T(page.Loc, "account.delete_account")),
		)
		return err
	})
}

func comingSoonPanel(page PageContext, titleKey, noteKey string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w,
			`<section class="account-panel account-coming-soon"><h2>%s</h2><span class="account-badge">%s</span><p>%s</p></section>`,
			esc(T(page.Loc, titleKey)),
			esc(T(page.Loc, "account.coming_soon")),
			esc(T(page.Loc, noteKey)),
		)
		return err
	})
}

func referralPanel(page PageContext, data AccountData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w,
			`<section class="account-panel account-coming-soon"><h2>%s</h2><span class="account-badge">%s</span><p>%s</p>`,
			esc(T(page.Loc, "account.referral_title")),
			esc(T(page.Loc, "account.coming_soon")),
			esc(T(page.Loc, "account.referral_note")),
		); err != nil {
			return err
		}
		if data.ReferralLink != "" {
			if _, err := fmt.Fprintf(w,
				`<label class="referral-link">%s<input type="text" value="%s" readonly></label>`,
				esc(T(page.Loc, "account.referral_link")),
				esc(data.ReferralLink),
			); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, `</section>`)
		return err
	})
}
