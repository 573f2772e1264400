// internal/flash/flash.go

// Package flash implements one-time notices carried across a redirect in a
// signed cookie. A notice is set before redirecting and popped (read and
// cleared) when the target page renders. Cookies whose signature does not
// verify are dropped silently.
package flash

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strings"
)

// CookieName is the cookie used to carry the pending notice.
const CookieName = "folio_notice"

// Severity classifies a notice for presentation.
type Severity string

const (
	Error   Severity = "error"
	Success Severity = "success"
)

// Notice is a short-lived user-facing message attached to a redirect.
type Notice struct {
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Set stores a notice in a signed cookie on the response.
func Set(w http.ResponseWriter, secret []byte, n Notice) {
	payload, err := json.Marshal(n)
	if err != nil {
		return
	}
	enc := base64.RawURLEncoding.EncodeToString(payload)
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    enc + "." + hex.EncodeToString(sign(secret, enc)),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Pop returns the pending notice, if any, and clears the cookie. The second
// return is false when no cookie is present or its signature does not verify.
func Pop(w http.ResponseWriter, r *http.Request, secret []byte) (Notice, bool) {
	c, err := r.Cookie(CookieName)
	if err != nil || c.Value == "" {
		return Notice{}, false
	}

	// Clear regardless of validity; the notice is one-time.
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	enc, sig, ok := strings.Cut(c.Value, ".")
	if !ok {
		return Notice{}, false
	}
	mac, err := hex.DecodeString(sig)
	if err != nil || !hmac.Equal(mac, sign(secret, enc)) {
		return Notice{}, false
	}
	payload, err := base64.RawURLEncoding.DecodeString(enc)
	if err != nil {
		return Notice{}, false
	}

	var n Notice
	if err := json.Unmarshal(payload, &n); err != nil {
		return Notice{}, false
	}
	return n, true
}

func sign(secret []byte, payload string) []byte {
	h := hmac.New(sha256.New, secret)
	h.Write([]byte(payload))
	return h.Sum(nil)
}
