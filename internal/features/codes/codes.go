// internal/features/codes/codes.go

// Package codes lists and displays the source-code snippet files under a
// configured directory.
package codes

import (
	"embed"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/bsari/folio/internal/features/shared"
	"github.com/bsari/folio/internal/templates"
)

//go:embed templates/*.gohtml
var tmplFS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "codes",
		FS:       tmplFS,
		Patterns: []string{"templates/*.gohtml"},
	})
}

// Handler serves the snippet listing and viewer.
type Handler struct {
	Logger *zap.Logger
	Dir    string // directory holding the snippet files
}

// Mount wires the codes routes onto r at /codes.
func (h *Handler) Mount(r chi.Router) {
	r.Get("/codes", h.list)
	r.Get("/codes/{filename}", h.view)
}

type listData struct {
	shared.BaseData
	Files []string
}

type viewData struct {
	shared.BaseData
	Filename string
	Code     string
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	var files []string
	entries, err := os.ReadDir(h.Dir)
	if err != nil {
		// A missing directory just means there is nothing to list yet.
		if !errors.Is(err, fs.ErrNotExist) && h.Logger != nil {
			h.Logger.Warn("cannot read codes directory",
				zap.String("dir", h.Dir), zap.Error(err))
		}
	} else {
		for _, e := range entries {
			if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
				continue
			}
			files = append(files, e.Name())
		}
	}

	templates.Render(w, r, "codes", listData{
		BaseData: shared.Base("Codes", "codes"),
		Files:    files,
	})
}

func (h *Handler) view(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "filename")
	if !safeName(name) {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	b, err := os.ReadFile(filepath.Join(h.Dir, name))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) && h.Logger != nil {
			h.Logger.Warn("cannot read code file",
				zap.String("file", name), zap.Error(err))
		}
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}

	templates.Render(w, r, "codes_view", viewData{
		BaseData: shared.Base(name, "codes"),
		Filename: name,
		Code:     string(b),
	})
}

// safeName rejects anything that could escape the snippet directory.
func safeName(name string) bool {
	if name == "" || strings.HasPrefix(name, ".") {
		return false
	}
	if strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return false
	}
	return name == filepath.Base(name)
}
