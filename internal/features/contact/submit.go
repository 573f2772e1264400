// internal/features/contact/submit.go

package contact

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/bsari/folio/internal/captcha"
	"github.com/bsari/folio/internal/mailer"
	"github.com/bsari/folio/internal/validate"
)

// Validation failures surfaced to the visitor.
var (
	ErrEmptyMessage    = errors.New("empty message")
	ErrInvalidEmail    = errors.New("invalid email address")
	ErrCaptchaMismatch = errors.New("captcha mismatch")
)

// MailError wraps a failure from the mail dispatcher. The cause is
// logged; the visitor only ever sees a generic message.
type MailError struct {
	Cause error
}

func (e *MailError) Error() string { return "mail dispatch failed: " + e.Cause.Error() }
func (e *MailError) Unwrap() error { return e.Cause }

// result is the outcome of one submission, independent of response mode.
type result struct {
	OK      bool
	Message string
}

// submit validates the posted form and, if it passes, dispatches the
// message. Checks run in a fixed order and the first failure wins.
func (h *Handler) submit(r *http.Request) result {
	name := strings.TrimSpace(r.FormValue("name"))
	email := strings.TrimSpace(r.FormValue("email"))
	message := r.FormValue("message")
	answer := r.FormValue("captcha")
	token := r.FormValue("captcha_answer")

	if err := h.process(r.Context(), name, email, message, answer, token); err != nil {
		return result{OK: false, Message: userMessage(err)}
	}
	return result{OK: true, Message: "Message sent successfully!"}
}

func (h *Handler) process(ctx context.Context, name, email, message, answer, token string) error {
	if strings.TrimSpace(message) == "" {
		return ErrEmptyMessage
	}
	if !validate.EmailValid(email) {
		return ErrInvalidEmail
	}
	if !captcha.Verify(h.Secret, answer, token, time.Now()) {
		return ErrCaptchaMismatch
	}

	ctx, cancel := context.WithTimeout(ctx, h.MailTimeout)
	defer cancel()

	msg := mailer.Outbound{
		FromName: h.SenderName,
		From:     h.Sender,
		ReplyTo:  email,
		To:       h.Receiver,
		Subject:  "Contact Form Message",
		Body:     fmt.Sprintf("Name: %s\nEmail: %s\nMessage:\n%s", name, email, message),
	}
	if err := h.Dispatcher.Send(ctx, msg); err != nil {
		if h.Logger != nil {
			h.Logger.Error("contact mail dispatch failed",
				zap.String("visitor_email", email), zap.Error(err))
		}
		return &MailError{Cause: err}
	}

	if h.Logger != nil {
		h.Logger.Info("contact message sent", zap.String("visitor_email", email))
	}
	return nil
}

// userMessage maps a submission error to the text shown to the visitor.
func userMessage(err error) string {
	switch {
	case errors.Is(err, ErrEmptyMessage):
		return "Message cannot be empty."
	case errors.Is(err, ErrInvalidEmail):
		return "Invalid email address."
	case errors.Is(err, ErrCaptchaMismatch):
		return "Captcha answer is incorrect."
	default:
		return "Unable to send your message right now."
	}
}
