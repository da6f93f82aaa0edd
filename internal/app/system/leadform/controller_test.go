package leadform

import (
	"context"
	"errors"
	"testing"
	"time"
)

// fakeSender records calls and returns a scripted result.
type fakeSender struct {
	calls  int
	err    error
	seen   []Draft
	status Status // controller status observed during Send
	ctrl   *Controller
}

func (f *fakeSender) Send(_ context.Context, d Draft) error {
	f.calls++
	f.seen = append(f.seen, d)
	if f.ctrl != nil {
		f.status = f.ctrl.Status()
	}
	return f.err
}

func newTestController(s Sender, opts ...Option) *Controller {
	base := []Option{WithClock(func() time.Time {
		return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	})}
	return NewController(s, append(base, opts...)...)
}

func TestSubmit_InvalidStaysIdle(t *testing.T) {
	sender := &fakeSender{}
	c := newTestController(sender)
	c.SetDraft(Draft{Name: "A", Email: "nope", Message: "short"})

	if got := c.Submit(context.Background()); got != StatusIdle {
		t.Errorf("status = %s, want idle", got)
	}
	if sender.calls != 0 {
		t.Errorf("sender called %d times, want 0", sender.calls)
	}

	// Submit marks every field touched, so all failures become visible.
	visible := c.VisibleErrors()
	if visible[FieldName] != CodeTooShort {
		t.Errorf("name error = %q, want too_short", visible[FieldName])
	}
	if visible[FieldEmail] != CodeInvalidFormat {
		t.Errorf("email error = %q, want invalid_format", visible[FieldEmail])
	}
	if visible[FieldMessage] != CodeTooShort {
		t.Errorf("message error = %q, want too_short", visible[FieldMessage])
	}
}

func TestVisibleErrors_GatedByTouched(t *testing.T) {
	c := newTestController(&fakeSender{})
	c.Input(FieldEmail, "invalid-email")

	if len(c.VisibleErrors()) != 0 {
		t.Error("untouched fields should not display errors")
	}
	if len(c.Errors()) == 0 {
		t.Error("validation itself should still report failures")
	}

	c.Touch(FieldEmail)
	if c.VisibleErrors()[FieldEmail] != CodeInvalidFormat {
		t.Error("touched email should display its error")
	}
}

func TestSubmit_SuccessClearsDraft(t *testing.T) {
	sender := &fakeSender{}
	c := newTestController(sender)
	sender.ctrl = c
	c.SetDraft(validDraft())

	if got := c.Submit(context.Background()); got != StatusSuccess {
		t.Fatalf("status = %s, want success", got)
	}
	if sender.calls != 1 {
		t.Errorf("sender called %d times, want 1", sender.calls)
	}
	if sender.status != StatusSubmitting {
		t.Errorf("status during send = %s, want submitting", sender.status)
	}
	if c.Draft() != (Draft{}) {
		t.Errorf("draft should be cleared on success, got %+v", c.Draft())
	}
	if c.Touched(FieldName) {
		t.Error("touched set should be cleared on success")
	}
}

func TestSubmit_SendsTrimmedValues(t *testing.T) {
	sender := &fakeSender{}
	c := newTestController(sender)
	c.SetDraft(Draft{
		Name:    "  Ada  ",
		Email:   " ada@example.com ",
		Role:    " Press ",
		Message: "  A long enough message.  ",
	})

	c.Submit(context.Background())

	if len(sender.seen) != 1 {
		t.Fatalf("expected one sent draft, got %d", len(sender.seen))
	}
	sent := sender.seen[0]
	if sent.Name != "Ada" || sent.Email != "ada@example.com" || sent.Message != "A long enough message." {
		t.Errorf("sent draft not trimmed: %+v", sent)
	}
	if sent.Role != " Press " {
		t.Errorf("role should be sent unmodified, got %q", sent.Role)
	}
}

func TestSubmit_CooldownBlocksSecondAttempt(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	sender := &fakeSender{}
	c := NewController(sender, WithClock(func() time.Time { return now }))
	c.SetDraft(validDraft())

	if got := c.Submit(context.Background()); got != StatusSuccess {
		t.Fatalf("first submit = %s, want success", got)
	}

	// Second click one second later, still inside the 3s window.
	now = now.Add(1 * time.Second)
	c.SetDraft(validDraft())
	if got := c.Submit(context.Background()); got != StatusError {
		t.Fatalf("second submit = %s, want error", got)
	}
	if sender.calls != 1 {
		t.Errorf("sender called %d times, want exactly 1", sender.calls)
	}
	if c.Banner() != "Please wait 2 seconds before sending another message." {
		t.Errorf("banner = %q", c.Banner())
	}
	// Draft is preserved for the retry.
	if c.Draft() == (Draft{}) {
		t.Error("draft should be preserved on cooldown error")
	}

	// After the window elapses the resubmit goes through.
	now = now.Add(3 * time.Second)
	if got := c.Submit(context.Background()); got != StatusSuccess {
		t.Errorf("post-cooldown submit = %s, want success", got)
	}
	if sender.calls != 2 {
		t.Errorf("sender called %d times, want 2", sender.calls)
	}
}

func TestSubmit_CooldownTimestampSetAtAttemptStart(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	sender := &fakeSender{err: errors.New("dial tcp: connection refused")}
	c := NewController(sender, WithClock(func() time.Time { return now }))
	c.SetDraft(validDraft())

	c.Submit(context.Background())

	// The attempt failed, but the timestamp was recorded at attempt start.
	if !c.LastAttempt().Equal(now) {
		t.Errorf("lastAttempt = %v, want %v", c.LastAttempt(), now)
	}
}

func TestSubmit_ServerErrorMessageShown(t *testing.T) {
	sender := &fakeSender{err: &ServerError{Message: "Server error"}}
	c := newTestController(sender)
	c.SetDraft(validDraft())

	if got := c.Submit(context.Background()); got != StatusError {
		t.Fatalf("status = %s, want error", got)
	}
	if c.Banner() != "Server error" {
		t.Errorf("banner = %q, want server message", c.Banner())
	}
	if c.Draft().Email != "ada@example.com" {
		t.Error("field values should be intact after a rejected response")
	}
}

func TestSubmit_ServerErrorWithoutMessageFallsBack(t *testing.T) {
	sender := &fakeSender{err: &ServerError{}}
	c := newTestController(sender)
	c.SetDraft(validDraft())

	c.Submit(context.Background())
	if c.Banner() != msgServerDefault {
		t.Errorf("banner = %q, want generic server message", c.Banner())
	}
}

func TestSubmit_NetworkErrorGenericMessage(t *testing.T) {
	sender := &fakeSender{err: errors.New("dial tcp: i/o timeout")}
	c := newTestController(sender)
	c.SetDraft(validDraft())

	if got := c.Submit(context.Background()); got != StatusError {
		t.Fatalf("status = %s, want error", got)
	}
	if c.Banner() != msgNetwork {
		t.Errorf("banner = %q, want network message", c.Banner())
	}
}

func TestSubmit_NotConfigured(t *testing.T) {
	sender := &fakeSender{err: ErrNotConfigured}
	c := newTestController(sender)
	c.SetDraft(validDraft())

	if got := c.Submit(context.Background()); got != StatusError {
		t.Fatalf("status = %s, want error", got)
	}
	if c.Banner() != msgNotConfigured {
		t.Errorf("banner = %q, want configuration message", c.Banner())
	}
}

func TestSendAnother(t *testing.T) {
	sender := &fakeSender{}
	c := newTestController(sender)
	c.SetDraft(validDraft())
	c.Submit(context.Background())

	if c.Status() != StatusSuccess {
		t.Fatalf("precondition failed: status = %s", c.Status())
	}

	c.SendAnother()
	if c.Status() != StatusIdle {
		t.Errorf("status = %s, want idle", c.Status())
	}
	if c.Draft() != (Draft{}) {
		t.Error("draft should be empty after send-another")
	}
}

func TestSendAnother_OnlyFromSuccess(t *testing.T) {
	c := newTestController(&fakeSender{})
	c.Input(FieldName, "Ada")

	c.SendAnother()
	if c.Status() != StatusIdle {
		t.Errorf("status = %s, want idle", c.Status())
	}
	if c.Draft().Name != "Ada" {
		t.Error("send-another outside success should not clear the draft")
	}
}

func TestRestoredCooldown_AcrossControllers(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	first := NewController(&fakeSender{}, WithClock(func() time.Time { return now }))
	first.SetDraft(validDraft())
	first.Submit(context.Background())

	// A new controller for the next request, seeded from the session.
	sender := &fakeSender{}
	second := NewController(sender,
		WithClock(func() time.Time { return now.Add(500 * time.Millisecond) }),
		WithLastAttempt(first.LastAttempt()))
	second.SetDraft(validDraft())

	if got := second.Submit(context.Background()); got != StatusError {
		t.Errorf("status = %s, want error (cooldown carried over)", got)
	}
	if sender.calls != 0 {
		t.Errorf("sender called %d times, want 0", sender.calls)
	}
}
