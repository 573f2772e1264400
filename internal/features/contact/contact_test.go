// internal/features/contact/contact_test.go
package contact

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/bsari/folio/internal/captcha"
	"github.com/bsari/folio/internal/flash"
	"github.com/bsari/folio/internal/mailer"
	"github.com/bsari/folio/internal/templates"
)

var secret = []byte("test-secret")

// stubDispatcher records every message it is asked to send.
type stubDispatcher struct {
	sent []mailer.Outbound
	err  error
}

func (s *stubDispatcher) Send(_ context.Context, msg mailer.Outbound) error {
	s.sent = append(s.sent, msg)
	return s.err
}

func newHandler(stub *stubDispatcher) *Handler {
	return &Handler{
		Logger:      zap.NewNop(),
		Secret:      secret,
		Dispatcher:  stub,
		SenderName:  "Site",
		Sender:      "site@example.com",
		Receiver:    "owner@example.com",
		CaptchaTTL:  time.Minute,
		MailTimeout: time.Second,
	}
}

// validForm builds a form with a freshly issued captcha answered correctly.
func validForm() url.Values {
	ch := captcha.Issue(secret, time.Minute)
	return url.Values{
		"name":           {"Ada Lovelace"},
		"email":          {"ada@example.com"},
		"message":        {"Hello there."},
		"captcha":        {strconv.Itoa(ch.A + ch.B)},
		"captcha_answer": {ch.Token},
	}
}

func postForm(h http.HandlerFunc, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	h(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not JSON: %v\n%s", err, w.Body.String())
	}
	return body
}

func TestSubmitAJAXSuccess(t *testing.T) {
	stub := &stubDispatcher{}
	h := newHandler(stub)

	w := postForm(h.submitAJAX, "/contact-ajax", validForm())

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeJSON(t, w)
	if body["status"] != "success" || body["message"] != "Message sent successfully!" {
		t.Errorf("body = %v", body)
	}

	if len(stub.sent) != 1 {
		t.Fatalf("dispatcher called %d times, want 1", len(stub.sent))
	}
	msg := stub.sent[0]
	if msg.Subject != "Contact Form Message" {
		t.Errorf("Subject = %q", msg.Subject)
	}
	if msg.From != "site@example.com" || msg.To != "owner@example.com" {
		t.Errorf("From/To = %q/%q", msg.From, msg.To)
	}
	if msg.ReplyTo != "ada@example.com" {
		t.Errorf("ReplyTo = %q", msg.ReplyTo)
	}
	want := "Name: Ada Lovelace\nEmail: ada@example.com\nMessage:\nHello there."
	if msg.Body != want {
		t.Errorf("Body = %q, want %q", msg.Body, want)
	}
}

func TestSubmitAJAXValidationOrder(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(f url.Values)
		message string
	}{
		{
			"empty message",
			func(f url.Values) { f.Set("message", "   \n\t ") },
			"Message cannot be empty.",
		},
		{
			"invalid email",
			func(f url.Values) { f.Set("email", "not-an-email") },
			"Invalid email address.",
		},
		{
			"captcha mismatch",
			func(f url.Values) { f.Set("captcha", "999") },
			"Captcha answer is incorrect.",
		},
		{
			"empty message wins over bad email",
			func(f url.Values) {
				f.Set("message", "")
				f.Set("email", "bad")
			},
			"Message cannot be empty.",
		},
		{
			"bad email wins over bad captcha",
			func(f url.Values) {
				f.Set("email", "bad")
				f.Set("captcha", "999")
			},
			"Invalid email address.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubDispatcher{}
			h := newHandler(stub)

			form := validForm()
			tt.mutate(form)
			w := postForm(h.submitAJAX, "/contact-ajax", form)

			if w.Code != http.StatusOK {
				t.Fatalf("status = %d, want 200", w.Code)
			}
			body := decodeJSON(t, w)
			if body["status"] != "error" {
				t.Errorf("status = %q, want error", body["status"])
			}
			if body["message"] != tt.message {
				t.Errorf("message = %q, want %q", body["message"], tt.message)
			}
			if len(stub.sent) != 0 {
				t.Errorf("dispatcher called %d times, want 0", len(stub.sent))
			}
		})
	}
}

func TestSubmitAJAXDispatchFailure(t *testing.T) {
	stub := &stubDispatcher{err: errors.New("smtp: connection refused")}
	h := newHandler(stub)

	w := postForm(h.submitAJAX, "/contact-ajax", validForm())

	// Mail failures stay HTTP 200 with a generic message; the cause is
	// logged, never shown.
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := decodeJSON(t, w)
	if body["status"] != "error" {
		t.Errorf("status = %q, want error", body["status"])
	}
	if body["message"] != "Unable to send your message right now." {
		t.Errorf("message = %q", body["message"])
	}
	if strings.Contains(w.Body.String(), "connection refused") {
		t.Error("response leaked the dispatch error cause")
	}
}

func TestSubmitFormRedirectsWithFlash(t *testing.T) {
	tests := []struct {
		name     string
		form     url.Values
		severity flash.Severity
		message  string
	}{
		{"success", validForm(), flash.Success, "Message sent successfully!"},
		{
			"invalid email",
			func() url.Values {
				f := validForm()
				f.Set("email", "bad")
				return f
			}(),
			flash.Error,
			"Invalid email address.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubDispatcher{}
			h := newHandler(stub)

			w := postForm(h.submitForm, "/contact", tt.form)

			if w.Code != http.StatusSeeOther {
				t.Fatalf("status = %d, want 303", w.Code)
			}
			if loc := w.Header().Get("Location"); loc != "/contact" {
				t.Errorf("Location = %q, want /contact", loc)
			}

			// Pop the flash the way the follow-up GET would.
			req := httptest.NewRequest(http.MethodGet, "/contact", nil)
			for _, c := range w.Result().Cookies() {
				if c.Name == flash.CookieName {
					req.AddCookie(c)
				}
			}
			n, ok := flash.Pop(httptest.NewRecorder(), req, secret)
			if !ok {
				t.Fatal("no flash notice set")
			}
			if n.Severity != tt.severity || n.Message != tt.message {
				t.Errorf("notice = %+v", n)
			}
		})
	}
}

func TestSubmitFormDispatchFailureNever5xx(t *testing.T) {
	stub := &stubDispatcher{err: errors.New("smtp timeout")}
	h := newHandler(stub)

	w := postForm(h.submitForm, "/contact", validForm())

	if w.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/contact", nil)
	for _, c := range w.Result().Cookies() {
		if c.Name == flash.CookieName {
			req.AddCookie(c)
		}
	}
	n, ok := flash.Pop(httptest.NewRecorder(), req, secret)
	if !ok {
		t.Fatal("no flash notice set")
	}
	if n.Severity != flash.Error || n.Message != "Unable to send your message right now." {
		t.Errorf("notice = %+v", n)
	}
}

func TestShowRendersForm(t *testing.T) {
	engine := templates.New()
	if err := engine.Boot(zap.NewNop()); err != nil {
		t.Fatalf("template boot failed: %v", err)
	}
	templates.UseEngine(engine, zap.NewNop())

	h := newHandler(&stubDispatcher{})
	w := httptest.NewRecorder()
	h.show(w, httptest.NewRequest(http.MethodGet, "/contact", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{
		`name="name"`, `name="email"`, `name="message"`,
		`name="captcha"`, `name="captcha_answer"`,
		"= ?",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("form missing %s", want)
		}
	}
}

func TestUserMessageUnknownError(t *testing.T) {
	if got := userMessage(&MailError{Cause: errors.New("x")}); got != "Unable to send your message right now." {
		t.Errorf("userMessage = %q", got)
	}
}
