// internal/fileserver/fileserver.go

// Package fileserver serves static assets from a directory, preferring
// pre-compressed variants (.br, .gz) when the client accepts them.
package fileserver

import (
	"mime"
	"net/http"
	"path"
	"path/filepath"
	"strings"
)

// Handler serves files under rootDir for requests beneath urlPrefix.
// For GET/HEAD requests it checks Accept-Encoding and looks for a
// pre-compressed sibling (file.br, then file.gz) before falling back to
// the plain file.
//
//	r.Handle("/static/*", fileserver.Handler("/static", "static"))
func Handler(urlPrefix, rootDir string) http.Handler {
	root := http.Dir(rootDir)
	fs := http.FileServer(root)

	return http.StripPrefix(urlPrefix, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			fs.ServeHTTP(w, r)
			return
		}

		// Canonicalize and strip the leading slash for http.Dir.Open.
		req := strings.TrimPrefix(path.Clean("/"+r.URL.Path), "/")

		candidates := []struct {
			ext      string
			encoding string
		}{
			{".br", "br"},
			{".gz", "gzip"},
		}

		for _, cand := range candidates {
			if !acceptsEncoding(r, cand.encoding) {
				continue
			}

			f, err := root.Open(req + cand.ext)
			if err != nil {
				continue
			}

			fi, err := f.Stat()
			if err != nil || fi.IsDir() {
				_ = f.Close()
				continue
			}

			w.Header().Set("Content-Encoding", cand.encoding)
			w.Header().Set("Vary", "Accept-Encoding")
			w.Header().Set("Content-Type", mimeTypeByOriginal(req))

			http.ServeContent(w, r, req, fi.ModTime(), f)
			_ = f.Close()
			return
		}

		fs.ServeHTTP(w, r)
	}))
}

func acceptsEncoding(r *http.Request, encoding string) bool {
	for _, part := range strings.Split(r.Header.Get("Accept-Encoding"), ",") {
		enc := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		if strings.EqualFold(enc, encoding) {
			return true
		}
	}
	return false
}

// mimeTypeByOriginal returns the MIME type for the original filename
// (without the .gz/.br suffix).
func mimeTypeByOriginal(name string) string {
	base := name
	for strings.HasSuffix(base, ".br") || strings.HasSuffix(base, ".gz") {
		base = strings.TrimSuffix(strings.TrimSuffix(base, ".br"), ".gz")
	}
	ext := strings.ToLower(filepath.Ext(base))

	if mt := mime.TypeByExtension(ext); mt != "" {
		return mt
	}

	switch ext {
	case ".wasm":
		return "application/wasm"
	case ".js", ".mjs":
		return "application/javascript"
	case ".json":
		return "application/json"
	default:
		return "application/octet-stream"
	}
}
