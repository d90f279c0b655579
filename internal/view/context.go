// Package view maps session state and backend data to the view-models the
// HTML templates execute. Nothing in this package performs I/O.
package view

import (
	"golang.org/x/text/message"

	"pongadmin/internal/parser"
	"pongadmin/internal/session"
)

// Localizer provides translated strings for templates.
type Localizer interface {
	Sprintf(key message.Reference, args ...any) string
}

// T returns a translated string or the key if no localizer is available.
func T(loc Localizer, key message.Reference, args ...any) string {
	if loc == nil {
		if keyString, ok := key.(string); ok {
			return keyString
		}
		return ""
	}
	return loc.Sprintf(key, args...)
}

// PageContext provides shared layout context for dashboard pages.
type PageContext struct {
	Lang        string
	Loc         Localizer
	Title       string
	AdminName   string
	CurrentPage session.Page
	Nav         []NavItem
	Notice      string
	Alert       string
}

type NavItem struct {
	Label  string
	Href   string
	Active bool
}

var navLabels = map[session.Page]string{
	session.PageDashboard: "nav.dashboard",
	session.PageUsers:     "nav.users",
	session.PagePosts:     "nav.posts",
	session.PageGames:     "nav.games",
}

// NewPageContext builds the layout for page with exactly one highlighted
// navigation entry.
func NewPageContext(loc Localizer, lang string, page session.Page, admin parser.User) PageContext {
	name := admin.DisplayName()
	if name == "" {
		name = T(loc, "admin.default_name")
	}
	nav := make([]NavItem, 0, len(session.Pages))
	for _, p := range session.Pages {
		nav = append(nav, NavItem{
			Label:  T(loc, navLabels[p]),
			Href:   p.Path(),
			Active: p == page,
		})
	}
	return PageContext{
		Lang:        lang,
		Loc:         loc,
		Title:       T(loc, "app.title"),
		AdminName:   name,
		CurrentPage: page,
		Nav:         nav,
	}
}

// WithFlash sets the notice and alert shown above the page content. Unknown
// keys are ignored.
func (pc PageContext) WithFlash(noticeKey, alertKey string) PageContext {
	pc.Notice = Notice(pc.Loc, noticeKey)
	pc.Alert = Alert(pc.Loc, alertKey)
	return pc
}

// LoginContext is the layout of the login page, which has no navigation.
func LoginContext(loc Localizer, lang string) PageContext {
	return PageContext{
		Lang:  lang,
		Loc:   loc,
		Title: T(loc, "app.title"),
	}
}
