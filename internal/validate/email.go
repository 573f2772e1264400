// internal/validate/email.go
package validate

import "regexp"

// emailPattern is a light structural check, not an RFC validator: one "@",
// at least one dot in the domain, no whitespace. No network or DNS
// verification is performed.
var emailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)

// EmailValid reports whether s looks like a deliverable email address.
// The empty string is invalid.
//
// Limitation: local-only addresses (e.g., "user@localhost") are rejected
// because they lack a dot in the domain portion. Internet-routable addresses
// are expected here.
func EmailValid(s string) bool {
	if s == "" {
		return false
	}
	return emailPattern.MatchString(s)
}
