// internal/app/system/leadform/validate.go
package leadform

import (
	"fmt"
	"strings"

	"github.com/sovramarkets/sovrasite/internal/app/system/inputval"
)

// Validate is a pure function of the current field values. It returns a
// failure code per failing field; an empty map means the draft is valid.
// The field rules themselves live in inputval.
//
// Rules:
//   - name: required, trimmed length >= 2
//   - email: required, must satisfy inputval.IsValidEmail
//   - organization: optional, but trimmed length >= 2 when present
//   - message: required, trimmed length >= 10
//   - role: never fails
func Validate(d Draft) map[Field]Code {
	errs := make(map[Field]Code)

	switch {
	case strings.TrimSpace(d.Name) == "":
		errs[FieldName] = CodeRequired
	case !inputval.MeetsMinLength(d.Name, minLengths[FieldName]):
		errs[FieldName] = CodeTooShort
	}

	switch {
	case strings.TrimSpace(d.Email) == "":
		errs[FieldEmail] = CodeRequired
	case !inputval.IsValidEmail(d.Email):
		errs[FieldEmail] = CodeInvalidFormat
	}

	if strings.TrimSpace(d.Organization) != "" &&
		!inputval.MeetsMinLength(d.Organization, minLengths[FieldOrganization]) {
		errs[FieldOrganization] = CodeTooShort
	}

	switch {
	case strings.TrimSpace(d.Message) == "":
		errs[FieldMessage] = CodeRequired
	case !inputval.MeetsMinLength(d.Message, minLengths[FieldMessage]):
		errs[FieldMessage] = CodeTooShort
	}

	return errs
}

// Valid reports whether the draft currently passes all field rules.
func Valid(d Draft) bool {
	return len(Validate(d)) == 0
}

// fieldLabels are used when composing inline error text.
var fieldLabels = map[Field]string{
	FieldName:         "Name",
	FieldEmail:        "Email",
	FieldOrganization: "Organization",
	FieldRole:         "Role",
	FieldMessage:      "Message",
}

// minLengths for the TooShort message text.
var minLengths = map[Field]int{
	FieldName:         2,
	FieldOrganization: 2,
	FieldMessage:      10,
}

// Message renders user-facing inline text for a field failure.
func Message(f Field, c Code) string {
	label := fieldLabels[f]
	switch c {
	case CodeRequired:
		return label + " is required."
	case CodeTooShort:
		if n, ok := minLengths[f]; ok {
			return fmt.Sprintf("%s must be at least %d characters.", label, n)
		}
		return label + " is too short."
	case CodeInvalidFormat:
		return "Please enter a valid email address."
	}
	return label + " is invalid."
}

// Trimmed returns a copy of the draft with every field except role trimmed,
// matching the payload the relay sends downstream.
func Trimmed(d Draft) Draft {
	return Draft{
		Name:         strings.TrimSpace(d.Name),
		Email:        strings.TrimSpace(d.Email),
		Organization: strings.TrimSpace(d.Organization),
		Role:         d.Role,
		Message:      strings.TrimSpace(d.Message),
	}
}
