// internal/features/shared/shared.go

// Package shared holds the layout partials and the navigation model common to
// every page on the site.
package shared

import (
	"embed"

	"github.com/bsari/folio/internal/templates"
)

//go:embed templates/*.gohtml
var tmplFS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "shared",
		FS:       tmplFS,
		Patterns: []string{"templates/*.gohtml"},
	})
}

// Page is one navigation entry.
type Page struct {
	Slug  string
	Title string
}

// Nav returns the site navigation in display order.
func Nav() []Page {
	return []Page{
		{Slug: "home", Title: "Home"},
		{Slug: "about", Title: "About"},
		{Slug: "research", Title: "Research"},
		{Slug: "projects", Title: "Projects"},
		{Slug: "publications", Title: "Publications"},
		{Slug: "contact", Title: "Contact"},
		{Slug: "codes", Title: "Codes"},
	}
}

// BaseData carries the fields the layout partials need. Feature view models
// embed it so the fields promote into template scope.
type BaseData struct {
	Title  string
	Active string
	Nav    []Page
}

// Base builds the common layout data for a page.
func Base(title, active string) BaseData {
	return BaseData{Title: title, Active: active, Nav: Nav()}
}
