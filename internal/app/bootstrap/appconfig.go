// internal/app/bootstrap/appconfig.go
package bootstrap

import (
	"fmt"
	"strings"
	"time"

	"github.com/bsari/folio/internal/config"
)

// SiteConfig holds the site-specific configuration.
type SiteConfig struct {
	SMTPHost      string
	SMTPPort      int
	SenderEmail   string
	SenderName    string
	SMTPPassword  string
	ReceiverEmail string
	SecretKey     string
	StaticDir     string
	CodesDir      string
	MailTimeout   time.Duration
	CaptchaTTL    time.Duration
}

// appKeys declares the site's configuration keys. Secrets (smtp_password,
// secret_key) have no defaults on purpose: they come from the environment
// (FOLIO_SMTP_PASSWORD, FOLIO_SECRET_KEY) or a config file, never the binary.
func appKeys() []config.AppKey {
	return []config.AppKey{
		{Name: "smtp_host", Default: "smtp.gmail.com", Desc: "SMTP server hostname"},
		{Name: "smtp_port", Default: 465, Desc: "SMTP server port (465 = implicit SSL)"},
		{Name: "sender_email", Default: "", Desc: "From address for outbound mail"},
		{Name: "sender_name", Default: "", Desc: "display name on outbound mail"},
		{Name: "smtp_password", Default: "", Desc: "SMTP account password"},
		{Name: "receiver_email", Default: "", Desc: "destination for contact messages"},
		{Name: "secret_key", Default: "", Desc: "key signing captcha tokens and flash cookies"},
		{Name: "static_dir", Default: "static", Desc: "static asset directory"},
		{Name: "codes_dir", Default: "static/codes", Desc: "code snippet directory"},
		{Name: "mail_timeout", Default: "10s", Desc: "per-send SMTP timeout"},
		{Name: "captcha_ttl", Default: "10m", Desc: "captcha challenge lifetime"},
	}
}

func siteConfigFromValues(vals config.AppConfigValues) (SiteConfig, error) {
	cfg := SiteConfig{
		SMTPHost:      vals.String("smtp_host"),
		SMTPPort:      vals.Int("smtp_port"),
		SenderEmail:   vals.String("sender_email"),
		SenderName:    vals.String("sender_name"),
		SMTPPassword:  vals.String("smtp_password"),
		ReceiverEmail: vals.String("receiver_email"),
		SecretKey:     vals.String("secret_key"),
		StaticDir:     vals.String("static_dir"),
		CodesDir:      vals.String("codes_dir"),
		MailTimeout:   vals.Duration("mail_timeout", 10*time.Second),
		CaptchaTTL:    vals.Duration("captcha_ttl", 10*time.Minute),
	}

	var missing []string
	if cfg.SenderEmail == "" {
		missing = append(missing, "sender_email")
	}
	if cfg.SMTPPassword == "" {
		missing = append(missing, "smtp_password")
	}
	if cfg.ReceiverEmail == "" {
		missing = append(missing, "receiver_email")
	}
	if cfg.SecretKey == "" {
		missing = append(missing, "secret_key")
	}
	if len(missing) > 0 {
		return cfg, fmt.Errorf("missing required config: %s", strings.Join(missing, ", "))
	}
	return cfg, nil
}
