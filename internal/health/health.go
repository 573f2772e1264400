// internal/health/health.go
package health

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/bsari/folio/internal/httputil"
)

// Check is a single health probe. It returns nil when the dependency is
// healthy. The ctx is derived from the incoming request context.
type Check func(ctx context.Context) error

// Response is the JSON body returned by the health handler.
type Response struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Handler runs the provided checks on each request. With no checks it is
// a plain liveness probe returning {"status":"ok"}. Any failing check
// turns the response into a 503 with per-check detail.
func Handler(checks map[string]Check, logger *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(checks) == 0 {
			httputil.WriteJSON(w, http.StatusOK, Response{Status: "ok"})
			return
		}

		ctx := r.Context()
		results := make(map[string]string, len(checks))
		anyErr := false

		for name, check := range checks {
			if check == nil {
				results[name] = "ok"
				continue
			}
			if err := check(ctx); err != nil {
				anyErr = true
				results[name] = "error: " + err.Error()
				if logger != nil {
					logger.Warn("health check failed",
						zap.String("check", name),
						zap.Error(err),
					)
				}
			} else {
				results[name] = "ok"
			}
		}

		status := http.StatusOK
		resp := Response{Status: "ok", Checks: results}
		if anyErr {
			status = http.StatusServiceUnavailable
			resp.Status = "error"
		}
		httputil.WriteJSON(w, status, resp)
	})
}

// MountAt attaches the health handler at the given path, e.g. "/healthz".
func MountAt(r chi.Router, path string, checks map[string]Check, logger *zap.Logger) {
	r.Method(http.MethodGet, path, Handler(checks, logger))
}
