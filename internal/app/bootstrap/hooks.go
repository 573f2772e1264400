// internal/app/bootstrap/hooks.go

// Package bootstrap wires the site's configuration, templates, and feature
// handlers into the app runner.
package bootstrap

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/bsari/folio/internal/app"
	"github.com/bsari/folio/internal/config"
	"github.com/bsari/folio/internal/features/codes"
	"github.com/bsari/folio/internal/features/contact"
	"github.com/bsari/folio/internal/features/pages"
	"github.com/bsari/folio/internal/fileserver"
	"github.com/bsari/folio/internal/health"
	"github.com/bsari/folio/internal/httputil"
	"github.com/bsari/folio/internal/mailer"
	"github.com/bsari/folio/internal/metrics"
	"github.com/bsari/folio/internal/router"
	"github.com/bsari/folio/internal/templates"
)

// envPrefix namespaces the site's environment variables (FOLIO_*).
const envPrefix = "FOLIO"

// Hooks returns the runner hooks for the site.
func Hooks() app.Hooks[SiteConfig] {
	return app.Hooks[SiteConfig]{
		Name:         "folio",
		LoadConfig:   loadConfig,
		BuildHandler: buildHandler,
	}
}

func loadConfig(logger *zap.Logger) (*config.CoreConfig, SiteConfig, error) {
	coreCfg, vals, err := config.Load(logger, envPrefix, appKeys())
	if err != nil {
		return nil, SiteConfig{}, err
	}
	siteCfg, err := siteConfigFromValues(vals)
	if err != nil {
		return nil, SiteConfig{}, err
	}
	return coreCfg, siteCfg, nil
}

func buildHandler(core *config.CoreConfig, siteCfg SiteConfig, logger *zap.Logger) (http.Handler, error) {
	engine := templates.New()
	if err := engine.Boot(logger); err != nil {
		return nil, err
	}
	templates.UseEngine(engine, logger)
	httputil.SetJSONLogger(logger)

	r := router.New(core, logger)

	secret := []byte(siteCfg.SecretKey)

	(&pages.Handler{Logger: logger}).Mount(r)
	(&codes.Handler{Logger: logger, Dir: siteCfg.CodesDir}).Mount(r)
	(&contact.Handler{
		Logger: logger,
		Secret: secret,
		Dispatcher: mailer.NewSender(mailer.Config{
			Host:     siteCfg.SMTPHost,
			Port:     siteCfg.SMTPPort,
			Username: siteCfg.SenderEmail,
			Password: siteCfg.SMTPPassword,
			Timeout:  siteCfg.MailTimeout,
		}),
		SenderName:  siteCfg.SenderName,
		Sender:      siteCfg.SenderEmail,
		Receiver:    siteCfg.ReceiverEmail,
		CaptchaTTL:  siteCfg.CaptchaTTL,
		MailTimeout: siteCfg.MailTimeout,
	}).Mount(r)

	r.Handle("/static/*", fileserver.Handler("/static", siteCfg.StaticDir))
	health.MountAt(r, "/healthz", nil, logger)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	return r, nil
}
