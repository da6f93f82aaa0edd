// Package inputval provides input validation helpers shared by handlers.
package inputval

import (
	"regexp"
	"strings"

	"github.com/sovramarkets/sovrasite/internal/domain/models"
)

// emailRegex requires local@domain.tld with a TLD of at least two
// characters. Single-label domains (user@localhost) are rejected; leads
// must be reachable from the public internet.
var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]{2,}$`)

// IsValidEmail reports whether the given string is an acceptable lead email.
func IsValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	return emailRegex.MatchString(email)
}

// IsValidRole reports whether the label is one of the role options offered
// on the contact form. Empty is valid; the field is optional. Matching is
// case-insensitive and whitespace-tolerant.
func IsValidRole(role string) bool {
	role = strings.TrimSpace(role)
	if role == "" {
		return true
	}
	for _, label := range models.RoleLabels {
		if strings.EqualFold(role, label) {
			return true
		}
	}
	return false
}

// AllowedRolesList returns the role options in display order.
func AllowedRolesList() []string {
	out := make([]string, len(models.RoleLabels))
	copy(out, models.RoleLabels)
	return out
}

// MeetsMinLength reports whether s has at least n characters after trimming.
// Counted in runes so multibyte names are not penalized.
func MeetsMinLength(s string, n int) bool {
	return len([]rune(strings.TrimSpace(s))) >= n
}
