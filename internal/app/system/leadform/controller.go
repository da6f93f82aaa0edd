// internal/app/system/leadform/controller.go
package leadform

import (
	"context"
	"errors"
	"time"
)

// Controller owns the form's transient state: the draft, the touched set,
// the submission status, the banner message, and the cooldown timestamp.
//
// A Controller is not safe for concurrent use. The HTTP layer builds one
// per request and restores the cooldown timestamp from the visitor session;
// inputs are disabled client-side while a submission is in flight, so only
// one goroutine ever drives an instance.
type Controller struct {
	draft       Draft
	touched     map[Field]bool
	status      Status
	banner      string
	lastAttempt time.Time
	cooldown    time.Duration
	sender      Sender
	now         func() time.Time
}

// Option configures a Controller.
type Option func(*Controller)

// WithCooldown overrides the minimum time between submission attempts.
func WithCooldown(d time.Duration) Option {
	return func(c *Controller) { c.cooldown = d }
}

// WithClock injects a clock, for tests.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithLastAttempt seeds the cooldown timestamp, typically restored from the
// visitor session so a page reload does not reset the window.
func WithLastAttempt(t time.Time) Option {
	return func(c *Controller) { c.lastAttempt = t }
}

// NewController creates an idle controller with an empty draft.
func NewController(sender Sender, opts ...Option) *Controller {
	c := &Controller{
		touched:  make(map[Field]bool),
		status:   StatusIdle,
		cooldown: DefaultCooldown,
		sender:   sender,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Draft returns the current field values.
func (c *Controller) Draft() Draft { return c.draft }

// SetDraft replaces all field values at once, e.g. from a parsed form body.
func (c *Controller) SetDraft(d Draft) { c.draft = d }

// Input mutates a single field value.
func (c *Controller) Input(f Field, v string) {
	switch f {
	case FieldName:
		c.draft.Name = v
	case FieldEmail:
		c.draft.Email = v
	case FieldOrganization:
		c.draft.Organization = v
	case FieldRole:
		c.draft.Role = v
	case FieldMessage:
		c.draft.Message = v
	}
}

// Touch marks a field as interacted-with, making its validation error
// eligible for display.
func (c *Controller) Touch(f Field) { c.touched[f] = true }

// Touched reports whether a field's error may be displayed.
func (c *Controller) Touched(f Field) bool { return c.touched[f] }

// Status returns the current submission state.
func (c *Controller) Status() Status { return c.status }

// Banner returns the current submission-level error message, empty unless
// the status is error.
func (c *Controller) Banner() string { return c.banner }

// LastAttempt returns the cooldown timestamp, for persisting to the session.
func (c *Controller) LastAttempt() time.Time { return c.lastAttempt }

// Errors returns every current field failure regardless of touched state.
func (c *Controller) Errors() map[Field]Code { return Validate(c.draft) }

// VisibleErrors returns only the failures for touched fields. Validity is
// recomputed on every call; display is gated here, not in Validate.
func (c *Controller) VisibleErrors() map[Field]Code {
	all := Validate(c.draft)
	visible := make(map[Field]Code, len(all))
	for f, code := range all {
		if c.touched[f] {
			visible[f] = code
		}
	}
	return visible
}

// Valid reports whether the whole draft passes validation.
func (c *Controller) Valid() bool { return len(Validate(c.draft)) == 0 }

// Submit runs one submission attempt.
//
// Every field is marked touched first, so a failing field becomes visible.
// If validation fails the controller stays idle and no call is made. If the
// cooldown window has not elapsed since the last attempt the controller
// moves to error with a remaining-wait message and no call is made.
// Otherwise the cooldown timestamp is recorded at attempt start, the sender
// is invoked exactly once, and the controller lands in success (draft and
// touched set cleared) or error (draft preserved).
func (c *Controller) Submit(ctx context.Context) Status {
	for _, f := range Fields {
		c.touched[f] = true
	}

	if !c.Valid() {
		c.status = StatusIdle
		c.banner = ""
		return c.status
	}

	now := c.now()
	if !c.lastAttempt.IsZero() {
		if elapsed := now.Sub(c.lastAttempt); elapsed < c.cooldown {
			c.status = StatusError
			c.banner = cooldownMessage(c.cooldown - elapsed)
			return c.status
		}
	}

	c.lastAttempt = now
	c.status = StatusSubmitting
	c.banner = ""

	err := c.sender.Send(ctx, Trimmed(c.draft))
	if err == nil {
		c.draft = Draft{}
		c.touched = make(map[Field]bool)
		c.status = StatusSuccess
		return c.status
	}

	c.status = StatusError
	c.banner = submitErrorMessage(err)
	return c.status
}

// SendAnother returns the form to an empty idle state after a success.
func (c *Controller) SendAnother() {
	if c.status != StatusSuccess {
		return
	}
	c.draft = Draft{}
	c.touched = make(map[Field]bool)
	c.banner = ""
	c.status = StatusIdle
}

// submitErrorMessage maps a sender failure to banner text.
func submitErrorMessage(err error) string {
	var se *ServerError
	switch {
	case errors.Is(err, ErrNotConfigured):
		return msgNotConfigured
	case errors.As(err, &se):
		if se.Message != "" {
			return se.Message
		}
		return msgServerDefault
	default:
		return msgNetwork
	}
}
