// internal/validate/email_test.go
package validate

import "testing"

func TestEmailValid(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  bool
	}{
		{"simple", "user@example.com", true},
		{"dots and dashes", "first.last-x@mail.example.org", true},
		{"underscore local", "user_name@example.io", true},
		{"numeric domain label", "user@123.example.com", true},
		{"empty", "", false},
		{"missing at", "userexample.com", false},
		{"missing domain dot", "user@localhost", false},
		{"missing tld", "user@example.", false},
		{"plus sign not allowed", "user+tag@example.com", false},
		{"embedded space", "us er@example.com", false},
		{"trailing space", "user@example.com ", false},
		{"two at signs", "user@@example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := EmailValid(tt.email); got != tt.want {
				t.Errorf("EmailValid(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}
