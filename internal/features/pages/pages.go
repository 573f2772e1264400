// internal/features/pages/pages.go

// Package pages serves the static informational pages: home, about, research,
// projects, and publications.
package pages

import (
	"embed"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/bsari/folio/internal/features/shared"
	"github.com/bsari/folio/internal/templates"
)

//go:embed templates/*.gohtml
var tmplFS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "pages",
		FS:       tmplFS,
		Patterns: []string{"templates/*.gohtml"},
	})
}

// Handler renders the informational pages.
type Handler struct {
	Logger *zap.Logger
}

// Mount wires the page routes onto r. Both "/" and "/home" serve the home
// page.
func (h *Handler) Mount(r chi.Router) {
	r.Get("/", h.page("home", "Home"))
	r.Get("/home", h.page("home", "Home"))
	r.Get("/about", h.page("about", "About"))
	r.Get("/research", h.page("research", "Research"))
	r.Get("/projects", h.page("projects", "Projects"))
	r.Get("/publications", h.page("publications", "Publications"))
}

type viewData struct {
	shared.BaseData
}

func (h *Handler) page(slug, title string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		templates.Render(w, r, slug, viewData{BaseData: shared.Base(title, slug)})
	}
}
