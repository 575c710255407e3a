// Package templates renders every web page as a templ component.
package templates

// Toast is a one-time notice rendered at the top of the next page.
type Toast struct {
	Kind    string
	Message string
}

// PageContext provides shared layout context for pages.
type PageContext struct {
	Lang        string
	Loc         Localizer
	CurrentPath string
	AppName     string
	SignedIn    bool
	UserName    string
	UserEmail   string
	UserAvatar  string
	Toast       *Toast
	// RedirectTo triggers a delayed meta refresh when non-empty.
	RedirectTo      string
	RedirectSeconds int
}
