package view

import (
	"net/url"
	"strconv"

	"pongadmin/internal/pagination"
)

type PaginationView struct {
	Prev  PageLink
	Next  PageLink
	Links []PageLink
}

type PageLink struct {
	Label    string
	Href     string
	Active   bool
	Disabled bool
}

// Pagination builds the links of w. Every href targets base and keeps the
// active filters in params.
func Pagination(loc Localizer, w pagination.Window, base string, params url.Values) PaginationView {
	href := func(page int) string {
		values := url.Values{}
		for k, v := range params {
			if len(v) > 0 && v[0] != "" {
				values.Set(k, v[0])
			}
		}
		values.Set("page", strconv.Itoa(page))
		return base + "?" + values.Encode()
	}
	view := PaginationView{
		Prev: PageLink{Label: T(loc, "pagination.prev"), Href: href(w.Prev()), Disabled: !w.HasPrev()},
		Next: PageLink{Label: T(loc, "pagination.next"), Href: href(w.Next()), Disabled: !w.HasNext()},
	}
	for _, p := range w.Pages() {
		view.Links = append(view.Links, PageLink{
			Label:  strconv.Itoa(p),
			Href:   href(p),
			Active: p == w.Current,
		})
	}
	return view
}
