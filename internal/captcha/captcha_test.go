// internal/captcha/captcha_test.go
package captcha

import (
	"fmt"
	"strconv"
	"strings"
	"testing"
	"time"
)

var secret = []byte("test-secret")

func TestIssueOperandRange(t *testing.T) {
	for i := 0; i < 200; i++ {
		ch := Issue(secret, time.Minute)
		if ch.A < 1 || ch.A > 10 {
			t.Fatalf("operand A = %d, want 1..10", ch.A)
		}
		if ch.B < 1 || ch.B > 10 {
			t.Fatalf("operand B = %d, want 1..10", ch.B)
		}
		if want := fmt.Sprintf("%d + %d = ?", ch.A, ch.B); ch.Question != want {
			t.Fatalf("Question = %q, want %q", ch.Question, want)
		}
	}
}

func TestVerifyCorrectAnswer(t *testing.T) {
	ch := Issue(secret, time.Minute)
	sum := strconv.Itoa(ch.A + ch.B)

	if !Verify(secret, sum, ch.Token, time.Now()) {
		t.Errorf("Verify rejected correct answer %q", sum)
	}
	if !Verify(secret, "  "+sum+" ", ch.Token, time.Now()) {
		t.Errorf("Verify rejected correct answer with surrounding whitespace")
	}
}

func TestVerifyWrongAnswer(t *testing.T) {
	ch := Issue(secret, time.Minute)
	wrong := strconv.Itoa(ch.A + ch.B + 1)

	if Verify(secret, wrong, ch.Token, time.Now()) {
		t.Errorf("Verify accepted wrong answer %q", wrong)
	}
	if Verify(secret, "", ch.Token, time.Now()) {
		t.Error("Verify accepted empty answer")
	}
	if Verify(secret, "not a number", ch.Token, time.Now()) {
		t.Error("Verify accepted non-numeric answer")
	}
}

func TestVerifyRejectsBadTokens(t *testing.T) {
	ch := Issue(secret, time.Minute)
	sum := strconv.Itoa(ch.A + ch.B)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"no separator", strings.ReplaceAll(ch.Token, ".", "")},
		{"garbage", "AAAA.BBBB"},
		{"flipped payload byte", "x" + ch.Token[1:]},
		{"truncated signature", ch.Token[:len(ch.Token)-2]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if Verify(secret, sum, tt.token, time.Now()) {
				t.Errorf("Verify accepted token %q", tt.token)
			}
		})
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	ch := Issue(secret, time.Minute)
	sum := strconv.Itoa(ch.A + ch.B)

	if Verify([]byte("other-secret"), sum, ch.Token, time.Now()) {
		t.Error("Verify accepted token signed with a different secret")
	}
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	ch := Issue(secret, time.Minute)
	sum := strconv.Itoa(ch.A + ch.B)

	later := time.Now().Add(2 * time.Minute)
	if Verify(secret, sum, ch.Token, later) {
		t.Error("Verify accepted expired token")
	}
}

func TestSuccessiveChallengesIndependent(t *testing.T) {
	first := Issue(secret, time.Minute)
	second := Issue(secret, time.Minute)

	// A stale answer must not satisfy a fresh challenge unless the sums
	// happen to coincide.
	if first.A+first.B != second.A+second.B {
		stale := strconv.Itoa(first.A + first.B)
		if Verify(secret, stale, second.Token, time.Now()) {
			t.Error("Verify accepted previous challenge's answer for a new token")
		}
	}
}
