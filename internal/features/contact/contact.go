// internal/features/contact/contact.go

// Package contact implements the contact form: an arithmetic captcha
// challenge, field validation, and dispatch of the message by email.
package contact

import (
	"embed"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/bsari/folio/internal/captcha"
	"github.com/bsari/folio/internal/features/shared"
	"github.com/bsari/folio/internal/flash"
	"github.com/bsari/folio/internal/httputil"
	"github.com/bsari/folio/internal/mailer"
	"github.com/bsari/folio/internal/templates"
)

//go:embed templates/*.gohtml
var tmplFS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "contact",
		FS:       tmplFS,
		Patterns: []string{"templates/*.gohtml"},
	})
}

// Handler serves the contact page and processes submissions.
type Handler struct {
	Logger      *zap.Logger
	Secret      []byte // signs captcha tokens and flash cookies
	Dispatcher  mailer.Dispatcher
	SenderName  string
	Sender      string // From address on outbound mail
	Receiver    string // destination address
	CaptchaTTL  time.Duration
	MailTimeout time.Duration
}

// Mount wires the contact routes onto r.
func (h *Handler) Mount(r chi.Router) {
	r.Get("/contact", h.show)
	r.Post("/contact", h.submitForm)
	r.Post("/contact-ajax", h.submitAJAX)
}

type viewData struct {
	shared.BaseData
	Notice   *flash.Notice
	Question string
	Token    string
}

func (h *Handler) show(w http.ResponseWriter, r *http.Request) {
	var notice *flash.Notice
	if n, ok := flash.Pop(w, r, h.Secret); ok {
		notice = &n
	}

	ch := captcha.Issue(h.Secret, h.CaptchaTTL)
	templates.Render(w, r, "contact", viewData{
		BaseData: shared.Base("Contact", "contact"),
		Notice:   notice,
		Question: ch.Question,
		Token:    ch.Token,
	})
}

func (h *Handler) submitForm(w http.ResponseWriter, r *http.Request) {
	res := h.submit(r)

	n := flash.Notice{Severity: flash.Error, Message: res.Message}
	if res.OK {
		n.Severity = flash.Success
	}
	flash.Set(w, h.Secret, n)
	http.Redirect(w, r, "/contact", http.StatusSeeOther)
}

func (h *Handler) submitAJAX(w http.ResponseWriter, r *http.Request) {
	res := h.submit(r)

	status := "error"
	if res.OK {
		status = "success"
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]string{
		"status":  status,
		"message": res.Message,
	})
}
