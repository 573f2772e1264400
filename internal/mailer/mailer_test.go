// internal/mailer/mailer_test.go
package mailer

import (
	"context"
	"testing"
	"time"
)

func TestNewSenderDefaults(t *testing.T) {
	s := NewSender(Config{Host: "smtp.example.com"})

	if s.cfg.Port != 465 {
		t.Errorf("Port = %d, want 465", s.cfg.Port)
	}
	if !s.cfg.UseSSL {
		t.Error("port 465 should imply implicit SSL")
	}
	if s.cfg.Timeout != 10*time.Second {
		t.Errorf("Timeout = %v, want 10s", s.cfg.Timeout)
	}
}

func TestNewSenderExplicitPort(t *testing.T) {
	s := NewSender(Config{Host: "smtp.example.com", Port: 587})

	if s.cfg.Port != 587 {
		t.Errorf("Port = %d, want 587", s.cfg.Port)
	}
	if s.cfg.UseSSL {
		t.Error("port 587 should not imply implicit SSL")
	}
}

func TestSendRejectsIncompleteMessage(t *testing.T) {
	s := NewSender(Config{Host: "smtp.example.com"})

	tests := []struct {
		name string
		msg  Outbound
	}{
		{"no recipient", Outbound{From: "a@example.com", Body: "hi"}},
		{"empty body", Outbound{From: "a@example.com", To: "b@example.com"}},
		{"bad from address", Outbound{From: "not-an-address", To: "b@example.com", Body: "hi"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := s.Send(context.Background(), tt.msg); err == nil {
				t.Error("Send accepted an incomplete message")
			}
		})
	}
}
