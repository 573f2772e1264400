// internal/features/pages/pages_test.go
package pages

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/bsari/folio/internal/templates"
)

var bootOnce sync.Once

func newRouter(t *testing.T) chi.Router {
	t.Helper()
	bootOnce.Do(func() {
		engine := templates.New()
		if err := engine.Boot(zap.NewNop()); err != nil {
			t.Fatalf("template boot failed: %v", err)
		}
		templates.UseEngine(engine, zap.NewNop())
	})

	r := chi.NewRouter()
	(&Handler{Logger: zap.NewNop()}).Mount(r)
	return r
}

func TestStaticPages(t *testing.T) {
	tests := []struct {
		path  string
		title string
	}{
		{"/", "Home"},
		{"/home", "Home"},
		{"/about", "About"},
		{"/research", "Research"},
		{"/projects", "Projects"},
		{"/publications", "Publications"},
	}

	r := newRouter(t)
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))

			if w.Code != http.StatusOK {
				t.Fatalf("GET %s = %d, want 200", tt.path, w.Code)
			}
			if ct := w.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
				t.Errorf("Content-Type = %q", ct)
			}
			if !strings.Contains(w.Body.String(), "<title>"+tt.title+"</title>") {
				t.Errorf("GET %s missing title %q", tt.path, tt.title)
			}
		})
	}
}

func TestUnknownPage(t *testing.T) {
	w := httptest.NewRecorder()
	newRouter(t).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
}
