// internal/flash/flash_test.go
package flash

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

var secret = []byte("test-secret")

// carry copies the notice cookie from a response onto a fresh request,
// the way a browser would across the redirect.
func carry(t *testing.T, from *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/contact", nil)
	for _, c := range from.Result().Cookies() {
		if c.Name == CookieName && c.MaxAge >= 0 {
			req.AddCookie(c)
		}
	}
	return req
}

func TestSetPopRoundTrip(t *testing.T) {
	w := httptest.NewRecorder()
	Set(w, secret, Notice{Severity: Success, Message: "Message sent successfully!"})

	w2 := httptest.NewRecorder()
	n, ok := Pop(w2, carry(t, w), secret)
	if !ok {
		t.Fatal("Pop returned ok=false for a freshly set notice")
	}
	if n.Severity != Success || n.Message != "Message sent successfully!" {
		t.Errorf("Pop returned %+v", n)
	}
}

func TestPopClearsCookie(t *testing.T) {
	w := httptest.NewRecorder()
	Set(w, secret, Notice{Severity: Error, Message: "Invalid email address."})

	w2 := httptest.NewRecorder()
	if _, ok := Pop(w2, carry(t, w), secret); !ok {
		t.Fatal("first Pop failed")
	}

	cleared := false
	for _, c := range w2.Result().Cookies() {
		if c.Name == CookieName && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("Pop did not clear the notice cookie")
	}
}

func TestPopNoCookie(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/contact", nil)

	if _, ok := Pop(w, r, secret); ok {
		t.Error("Pop returned ok=true with no cookie present")
	}
}

func TestPopRejectsTamperedCookie(t *testing.T) {
	w := httptest.NewRecorder()
	Set(w, secret, Notice{Severity: Success, Message: "ok"})

	req := carry(t, w)
	c, err := req.Cookie(CookieName)
	if err != nil {
		t.Fatal(err)
	}

	tampered := httptest.NewRequest(http.MethodGet, "/contact", nil)
	tampered.AddCookie(&http.Cookie{
		Name:  CookieName,
		Value: "x" + strings.TrimPrefix(c.Value, string(c.Value[0])),
	})

	w2 := httptest.NewRecorder()
	if _, ok := Pop(w2, tampered, secret); ok {
		t.Error("Pop accepted a tampered cookie")
	}
}

func TestPopRejectsWrongSecret(t *testing.T) {
	w := httptest.NewRecorder()
	Set(w, secret, Notice{Severity: Success, Message: "ok"})

	w2 := httptest.NewRecorder()
	if _, ok := Pop(w2, carry(t, w), []byte("other-secret")); ok {
		t.Error("Pop accepted a cookie signed with a different secret")
	}
}
