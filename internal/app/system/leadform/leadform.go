// Package leadform implements the contact form's draft, validation, and
// submission state machine. It is framework-free: the contact feature drives
// a Controller per request, and tests drive it directly.
//
// The lifecycle mirrors the form the visitor sees: fields start empty, are
// mutated on input, show inline errors only once touched, and are cleared
// only after a confirmed successful submission.
package leadform

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Field identifies one of the five form fields.
type Field string

const (
	FieldName         Field = "name"
	FieldEmail        Field = "email"
	FieldOrganization Field = "organization"
	FieldRole         Field = "role"
	FieldMessage      Field = "message"
)

// Fields lists all form fields in display order.
var Fields = []Field{FieldName, FieldEmail, FieldOrganization, FieldRole, FieldMessage}

// Code classifies a per-field validation failure.
type Code string

const (
	CodeRequired      Code = "required"
	CodeTooShort      Code = "too_short"
	CodeInvalidFormat Code = "invalid_format"
)

// Status is the submission state of the form.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
)

// Draft holds the in-memory, unsaved field values.
type Draft struct {
	Name         string
	Email        string
	Organization string
	Role         string
	Message      string
}

// Sender delivers a validated draft to the downstream form endpoint.
// Implementations return nil on acceptance, ErrNotConfigured when no
// endpoint is configured, *ServerError when the endpoint rejected the
// submission with a usable message, and any other error for transport
// failures.
type Sender interface {
	Send(ctx context.Context, d Draft) error
}

// ErrNotConfigured is returned by a Sender when no endpoint URL has been
// configured. No network call is made in that case.
var ErrNotConfigured = errors.New("form endpoint not configured")

// ServerError carries the first message from a structured error response
// body returned by the form endpoint.
type ServerError struct {
	Message string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("form endpoint rejected submission: %s", e.Message)
}

// DefaultCooldown is the minimum elapsed time between submission attempts.
const DefaultCooldown = 3 * time.Second

// Banner text for submission-level failures. Field-level validation errors
// never use these; they render inline.
const (
	msgNotConfigured = "The contact form is not available right now. Please email us directly."
	msgNetwork       = "We could not send your message. Please check your connection and try again."
	msgServerDefault = "Something went wrong on our side. Please try again in a moment."
)

// cooldownMessage states the remaining wait, rounded up to whole seconds.
func cooldownMessage(remaining time.Duration) string {
	secs := int((remaining + time.Second - 1) / time.Second)
	if secs < 1 {
		secs = 1
	}
	if secs == 1 {
		return "Please wait 1 second before sending another message."
	}
	return fmt.Sprintf("Please wait %d seconds before sending another message.", secs)
}
