// internal/router/router.go
package router

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/bsari/folio/internal/config"
	"github.com/bsari/folio/internal/logging"
	"github.com/bsari/folio/internal/metrics"
	"github.com/bsari/folio/internal/middleware"
)

// New creates a chi.Router pre-wired with the site's standard middleware stack:
// - RequestID
// - RealIP
// - Recoverer (panic → 500)
// - body size limit (MaxRequestBodyBytes)
// - metrics HTTP middleware
// - request logging
// - optional compression
// - NotFound / MethodNotAllowed handlers
// Routes are mounted by the bootstrap package.
func New(coreCfg *config.CoreConfig, logger *zap.Logger) chi.Router {
	r := chi.NewRouter()

	// Request context & safety
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(logging.Recoverer(logger))

	// Body size limit (if configured)
	r.Use(middleware.LimitBodySize(coreCfg.MaxRequestBodyBytes))

	// Metrics
	r.Use(metrics.HTTPMetrics)

	// Access logging
	r.Use(logging.RequestLogger(logger))

	if coreCfg.EnableCompression {
		r.Use(chimw.Compress(5))
	}

	r.NotFound(middleware.NotFoundHandler(logger))
	r.MethodNotAllowed(middleware.MethodNotAllowedHandler(logger))

	return r
}
