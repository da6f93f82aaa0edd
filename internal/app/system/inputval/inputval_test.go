package inputval

import "testing"

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		// Valid emails
		{"user@example.com", true},
		{"user.name@example.com", true},
		{"user+tag@example.com", true},
		{"user@subdomain.example.com", true},
		{"user123@example.co.uk", true},
		{"a@b.co", true},

		// Invalid emails - empty/whitespace
		{"", false},
		{"   ", false},

		// Invalid emails - missing parts
		{"user", false},
		{"user@", false},
		{"@example.com", false},
		{"invalid-email", false},

		// Invalid emails - no dotted TLD (rejected here, unlike RFC 5322)
		{"user@localhost", false},
		{"admin@mailserver", false},

		// Invalid emails - TLD too short
		{"user@example.c", false},

		// Invalid emails - whitespace inside
		{"user @example.com", false},
		{"user@ example.com", false},
		{"user@exam ple.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			got := IsValidEmail(tt.email)
			if got != tt.want {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestIsValidRole(t *testing.T) {
	tests := []struct {
		role string
		want bool
	}{
		// Empty is valid - the field is optional
		{"", true},
		{"   ", true},

		// Valid labels
		{"Institutional Investor", true},
		{"Government / Debt Office", true},
		{"Bank / Primary Dealer", true},
		{"Advisor / Consultant", true},
		{"Press", true},
		{"Other", true},

		// Case insensitive and whitespace tolerant
		{"press", true},
		{"  OTHER  ", true},
		{"institutional investor", true},

		// Not on the list
		{"Astronaut", false},
		{"Investor", false},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			got := IsValidRole(tt.role)
			if got != tt.want {
				t.Errorf("IsValidRole(%q) = %v, want %v", tt.role, got, tt.want)
			}
		})
	}
}

func TestAllowedRolesList(t *testing.T) {
	list := AllowedRolesList()

	if len(list) != 6 {
		t.Errorf("AllowedRolesList() has %d items, want 6", len(list))
	}

	// Mutating the returned slice must not affect later calls.
	list[0] = "tampered"
	if AllowedRolesList()[0] == "tampered" {
		t.Error("AllowedRolesList() should return a copy")
	}
}

func TestMeetsMinLength(t *testing.T) {
	tests := []struct {
		name string
		s    string
		n    int
		want bool
	}{
		{"empty", "", 2, false},
		{"whitespace only", "   ", 2, false},
		{"exact", "ab", 2, true},
		{"padded", "  ab  ", 2, true},
		{"one short", "a", 2, false},
		{"multibyte counted as runes", "Ål", 2, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MeetsMinLength(tt.s, tt.n); got != tt.want {
				t.Errorf("MeetsMinLength(%q, %d) = %v, want %v", tt.s, tt.n, got, tt.want)
			}
		})
	}
}
