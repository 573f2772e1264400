// internal/templates/engine.go
package templates

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path/filepath"
	"regexp"
	"sort"
	"sync"

	"go.uber.org/zap"
)

// Engine compiles and holds templates from all registered Sets.
// The "shared" set holds layout partials (head, nav, footer); every other
// set's files are page files, each compiled into its own clone of the shared
// base and indexed by the template names the file defines. That keeps one
// page's blocks from shadowing another's.
type Engine struct {
	mu     sync.RWMutex
	funcs  template.FuncMap
	base   *template.Template            // compiled from "shared"
	byName map[string]*template.Template // templateName -> compiled clone containing it
	Logger *zap.Logger
}

// New creates a new Engine.
func New() *Engine {
	return &Engine{
		funcs:  Funcs(),
		byName: map[string]*template.Template{},
	}
}

// Boot compiles all registered template Sets into the Engine.
// It must be called before Render, typically at startup.
func (e *Engine) Boot(logger *zap.Logger) error {
	e.Logger = logger

	sets := All()
	if len(sets) == 0 {
		if e.Logger != nil {
			e.Logger.Warn("no template sets registered")
		}
		return nil
	}

	var shared *Set
	var others []Set
	for i := range sets {
		s := sets[i]
		if s.Name == "shared" {
			shared = &s
		} else {
			others = append(others, s)
		}
	}
	if shared == nil {
		return fmt.Errorf("shared templates not registered")
	}

	base := template.New("root").Funcs(e.funcs)
	if err := parseInto(base, shared.FS, shared.Patterns); err != nil {
		return fmt.Errorf("parse shared: %w", err)
	}
	e.base = base

	for _, s := range others {
		if err := e.compileSet(s); err != nil {
			return fmt.Errorf("compile set %q: %w", s.Name, err)
		}
	}
	return nil
}

// compileSet clones the shared base per page file and indexes the names the
// file defines to that clone.
func (e *Engine) compileSet(s Set) error {
	files, err := globAll(s.FS, s.Patterns)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		if e.Logger != nil {
			e.Logger.Warn("no templates matched", zap.String("set", s.Name))
		}
		return nil
	}
	sort.Strings(files)

	for _, path := range files {
		src, err := fs.ReadFile(s.FS, path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}

		clone, err := e.base.Clone()
		if err != nil {
			return fmt.Errorf("clone base: %w", err)
		}
		if _, err := clone.Funcs(e.funcs).Parse(string(src)); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}

		e.mu.Lock()
		for name := range extractDefineNames(string(src)) {
			e.byName[name] = clone
		}
		e.mu.Unlock()

		if e.Logger != nil {
			e.Logger.Info("template page compiled",
				zap.String("set", s.Name),
				zap.String("page", filepath.Base(path)))
		}
	}
	return nil
}

var reDefineName = regexp.MustCompile(`{{\s*define\s+"([^"]+)"`)

func extractDefineNames(src string) map[string]struct{} {
	out := make(map[string]struct{})
	for _, g := range reDefineName.FindAllStringSubmatch(src, -1) {
		if len(g) >= 2 {
			out[g[1]] = struct{}{}
		}
	}
	return out
}

// parseInto reads & parses all files matching patterns into t.
func parseInto(t *template.Template, filesystem fs.FS, patterns []string) error {
	files, err := globAll(filesystem, patterns)
	if err != nil {
		return err
	}
	sort.Strings(files)
	for _, path := range files {
		b, err := fs.ReadFile(filesystem, path)
		if err != nil {
			return err
		}
		if _, err = t.Parse(string(b)); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
	}
	return nil
}

func globAll(filesystem fs.FS, patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	var out []string
	for _, pat := range patterns {
		matches, err := fs.Glob(filesystem, pat)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			out = append(out, m)
		}
	}
	return out, nil
}

// Render executes a top-level template by name. The page is rendered into a
// buffer first so a mid-render failure never leaves a half-written response.
func (e *Engine) Render(w io.Writer, name string, data any) error {
	e.mu.RLock()
	t, ok := e.byName[name]
	e.mu.RUnlock()
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, name, data); err != nil {
		return err
	}
	_, _ = w.Write(buf.Bytes())
	return nil
}
