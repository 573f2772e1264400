// internal/middleware/notfound.go
package middleware

import (
	"net/http"

	"go.uber.org/zap"
)

// NotFoundHandler returns a handler that logs a 404 and returns a plain
// text body. It is designed to be passed directly to chi.Router.NotFound(..).
func NotFoundHandler(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if logger != nil {
			logger.Info("not_found",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("remote_ip", r.RemoteAddr),
			)
		}
		http.Error(w, "404 page not found", http.StatusNotFound)
	}
}

// MethodNotAllowedHandler returns a handler that logs a 405 and returns a
// plain text body. It is designed to be passed directly to
// chi.Router.MethodNotAllowed(..).
func MethodNotAllowedHandler(logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if logger != nil {
			logger.Info("method_not_allowed",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.String("remote_ip", r.RemoteAddr),
			)
		}
		http.Error(w, "405 method not allowed", http.StatusMethodNotAllowed)
	}
}
