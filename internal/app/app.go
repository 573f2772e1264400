// internal/app/app.go
package app

import (
	"context"
	"net/http"
	"os"

	"go.uber.org/zap"

	"github.com/bsari/folio/internal/config"
	"github.com/bsari/folio/internal/logging"
	"github.com/bsari/folio/internal/metrics"
	"github.com/bsari/folio/internal/server"
)

// Hooks defines the integration points the site must provide for the
// runner to start it.
type Hooks[C any] struct {
	// Name is used only for logging/diagnostics.
	Name string

	// LoadConfig returns the core config plus the site-specific config.
	LoadConfig func(logger *zap.Logger) (*config.CoreConfig, C, error)

	// BuildHandler constructs the final http.Handler: router, middleware,
	// and feature routes.
	BuildHandler func(core *config.CoreConfig, siteCfg C, logger *zap.Logger) (http.Handler, error)
}

// Run executes the standard startup sequence:
//
//  1. Bootstrap logger
//  2. Load core + site config (Hooks.LoadConfig)
//  3. Build final logger based on core config
//  4. Register default metrics
//  5. Wire shutdown signals to a context
//  6. Build the HTTP handler (Hooks.BuildHandler)
//  7. Start the HTTP(S) server and block until shutdown
func Run[C any](ctx context.Context, hooks Hooks[C]) error {
	// 1) Bootstrap logger for early startup
	bootstrap := logging.BootstrapLogger()
	defer bootstrap.Sync()
	bootstrap.Info("bootstrap logger initialized", zap.String("app", hooks.Name))

	// 2) Load config (core + site-specific)
	coreCfg, siteCfg, err := hooks.LoadConfig(bootstrap)
	if err != nil {
		bootstrap.Error("config load failed", zap.Error(err))
		// For a runner, exiting here is correct.
		os.Exit(1)
	}
	bootstrap.Info("config loaded",
		zap.String("env", coreCfg.Env),
		zap.String("log_level", coreCfg.LogLevel),
	)

	// 3) Build final logger
	logger := logging.MustBuildLogger(coreCfg.LogLevel, coreCfg.Env)
	defer logger.Sync()
	logger.Info("logger initialized", zap.String("app", hooks.Name))

	// 4) Register default metrics (Go, process, HTTP histograms)
	metrics.RegisterDefault(logger)

	// 5) Wire shutdown signals → context
	ctx, cancel := server.WithShutdownSignals(ctx, logger)
	defer cancel()

	// 6) Build HTTP handler (router + middleware + routes)
	handler, err := hooks.BuildHandler(coreCfg, siteCfg, logger)
	if err != nil {
		logger.Error("handler build failed", zap.Error(err))
		os.Exit(1)
	}

	// 7) Start HTTP server
	if err := server.ListenAndServeWithContext(ctx, coreCfg, handler, logger); err != nil {
		logger.Error("server exited with error", zap.Error(err))
		return err
	}
	logger.Info("server stopped")
	return nil
}
