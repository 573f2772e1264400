// internal/captcha/captcha.go

// Package captcha issues and verifies small arithmetic challenges for the
// contact form. A challenge is a two-operand addition with operands drawn
// uniformly from [1,10]; it is a bot-deterrence heuristic, not a security
// control, so a non-cryptographic random source is fine.
//
// The server keeps no session state. Instead of echoing the expected answer
// to the client in the clear, the expected sum travels inside a signed,
// time-limited token (HMAC-SHA256 over the sum and an expiry) that the client
// returns on submission. A tampered, expired, or malformed token verifies the
// same as a wrong answer.
package captcha

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"time"
)

// Challenge is one issued addition question.
type Challenge struct {
	A, B     int
	Question string // e.g. "3 + 7 = ?"
	Token    string // signed carrier for the expected sum
}

// Issue draws two operands from [1,10] and returns the challenge with a token
// that expires after ttl. Successive challenges are independent.
func Issue(secret []byte, ttl time.Duration) Challenge {
	a := rand.Intn(10) + 1
	b := rand.Intn(10) + 1
	expiry := time.Now().Add(ttl).Unix()
	return Challenge{
		A:        a,
		B:        b,
		Question: fmt.Sprintf("%d + %d = ?", a, b),
		Token:    signToken(secret, a+b, expiry),
	}
}

// Verify reports whether answer matches the expected sum carried by token.
// It returns false for any malformed, tampered, or expired token; callers
// need not distinguish those cases from a plain wrong answer.
func Verify(secret []byte, answer, token string, now time.Time) bool {
	payload, sig, ok := strings.Cut(token, ".")
	if !ok {
		return false
	}
	mac, err := hex.DecodeString(sig)
	if err != nil {
		return false
	}
	if !hmac.Equal(mac, sign(secret, payload)) {
		return false
	}

	raw, err := base64.RawURLEncoding.DecodeString(payload)
	if err != nil {
		return false
	}
	sumStr, expStr, ok := strings.Cut(string(raw), "|")
	if !ok {
		return false
	}
	exp, err := strconv.ParseInt(expStr, 10, 64)
	if err != nil || now.Unix() > exp {
		return false
	}

	return strings.TrimSpace(answer) == sumStr
}

func signToken(secret []byte, sum int, expiry int64) string {
	payload := base64.RawURLEncoding.EncodeToString(
		[]byte(strconv.Itoa(sum) + "|" + strconv.FormatInt(expiry, 10)))
	return payload + "." + hex.EncodeToString(sign(secret, payload))
}

func sign(secret []byte, payload string) []byte {
	h := hmac.New(sha256.New, secret)
	h.Write([]byte(payload))
	return h.Sum(nil)
}
