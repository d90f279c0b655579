package session

// Page is one of the dashboard's top level views.
type Page string

const (
	PageDashboard Page = "dashboard"
	PageUsers     Page = "users"
	PageGames     Page = "games"
	PagePosts     Page = "posts"
)

// Pages lists the views in navigation order.
var Pages = []Page{PageDashboard, PageUsers, PageGames, PagePosts}

func ParsePage(name string) (Page, bool) {
	for _, p := range Pages {
		if string(p) == name {
			return p, true
		}
	}
	return "", false
}

// Path is the URL the view is served under.
func (p Page) Path() string {
	if p == PageDashboard {
		return "/"
	}
	return "/" + string(p)
}
