package server

import (
	"embed"
	"fmt"
	"html/template"

	"pongadmin/internal/view"
)

//go:embed templates/*.html
var templateFS embed.FS

// PAGES are the page templates; each is parsed on top of the shared layout.
var PAGES = []string{"login", "dashboard", "collection", "user", "post", "confirm"}

var templateFuncs = template.FuncMap{
	"t": func(loc view.Localizer, key string, args ...any) string {
		return view.T(loc, key, args...)
	},
}

func loadTemplates() (map[string]*template.Template, error) {
	base, err := template.New("base").Funcs(templateFuncs).ParseFS(templateFS, "templates/layout.html", "templates/partials.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	pages := make(map[string]*template.Template, len(PAGES))
	for _, page := range PAGES {
		clone, err := base.Clone()
		if err != nil {
			return nil, err
		}
		if _, err := clone.ParseFS(templateFS, "templates/"+page+".html"); err != nil {
			return nil, fmt.Errorf("parse %s template: %w", page, err)
		}
		pages[page] = clone
	}
	return pages, nil
}
