// internal/features/codes/codes_test.go
package codes

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/bsari/folio/internal/templates"
)

var bootOnce sync.Once

func newRouter(t *testing.T, dir string) chi.Router {
	t.Helper()
	bootOnce.Do(func() {
		engine := templates.New()
		if err := engine.Boot(zap.NewNop()); err != nil {
			t.Fatalf("template boot failed: %v", err)
		}
		templates.UseEngine(engine, zap.NewNop())
	})

	r := chi.NewRouter()
	(&Handler{Logger: zap.NewNop(), Dir: dir}).Mount(r)
	return r
}

func get(r chi.Router, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestListShowsFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"alpha.py", "beta.c"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("code"), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "subdir"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, ".hidden"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	w := get(newRouter(t, dir), "/codes")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	for _, name := range []string{"alpha.py", "beta.c"} {
		if !strings.Contains(body, name) {
			t.Errorf("listing missing %q", name)
		}
	}
	if strings.Contains(body, "subdir") {
		t.Error("listing includes a directory")
	}
	if strings.Contains(body, ".hidden") {
		t.Error("listing includes a hidden file")
	}
}

func TestListMissingDirIsEmpty(t *testing.T) {
	w := get(newRouter(t, filepath.Join(t.TempDir(), "nope")), "/codes")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "No code snippets yet.") {
		t.Error("empty listing message missing")
	}
}

func TestViewShowsFileContents(t *testing.T) {
	dir := t.TempDir()
	const src = "print('hello')"
	if err := os.WriteFile(filepath.Join(dir, "hello.py"), []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	w := get(newRouter(t, dir), "/codes/hello.py")

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	// html/template escapes the quotes; check for the escaped form.
	if !strings.Contains(w.Body.String(), "print(&#39;hello&#39;)") {
		t.Errorf("body missing file contents:\n%s", w.Body.String())
	}
}

func TestViewMissingFile(t *testing.T) {
	w := get(newRouter(t, t.TempDir()), "/codes/absent.py")

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if !strings.Contains(w.Body.String(), "File not found") {
		t.Errorf("body = %q", w.Body.String())
	}
}

func TestSafeName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"plain", "main.go", true},
		{"empty", "", false},
		{"dotfile", ".env", false},
		{"parent traversal", "..", false},
		{"embedded traversal", "a..b", false},
		{"forward slash", "a/b", false},
		{"backslash", `a\b`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := safeName(tt.in); got != tt.want {
				t.Errorf("safeName(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
