// Package session manages the anonymous visitor session for the contact
// form: the cooldown timestamp and the one-shot form outcome carried across
// the POST/redirect/GET cycle. There are no accounts; the session never
// identifies anyone.
package session

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
	"github.com/gorilla/sessions"
	"go.uber.org/zap"
)

const (
	lastAttemptKey = "last_attempt_ms"
	formStateKey   = "form_state"

	// maxAge keeps the cookie short-lived; it only needs to outlive one
	// form conversation.
	maxAge = 12 * 60 * 60
)

// FormState is the flash payload written after a submit and read back on
// the next page render.
type FormState struct {
	Status    string            `json:"status"`
	Banner    string            `json:"banner,omitempty"`
	Name      string            `json:"name,omitempty"`
	Email     string            `json:"email,omitempty"`
	Org       string            `json:"org,omitempty"`
	Role      string            `json:"role,omitempty"`
	Message   string            `json:"message,omitempty"`
	Errors    map[string]string `json:"errors,omitempty"` // field -> code
	Reference string            `json:"reference,omitempty"`
}

// Manager wraps a cookie store for visitor state.
type Manager struct {
	store *sessions.CookieStore
	name  string
	log   *zap.Logger
}

// NewManager creates the visitor session manager. An empty key is allowed
// in dev: a random key is generated, which invalidates sessions on restart.
func NewManager(key, name, domain string, secure bool, logger *zap.Logger) (*Manager, error) {
	if name == "" {
		return nil, fmt.Errorf("session name must not be empty")
	}

	keyBytes := []byte(key)
	if key == "" {
		keyBytes = securecookie.GenerateRandomKey(32)
		if keyBytes == nil {
			return nil, fmt.Errorf("generate random session key failed")
		}
		logger.Warn("no session key configured, using a random key (sessions reset on restart)")
	}

	store := sessions.NewCookieStore(keyBytes)
	store.Options = &sessions.Options{
		Path:     "/",
		Domain:   domain,
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{store: store, name: name, log: logger}, nil
}

// LastAttempt returns the visitor's last submission-attempt timestamp, or
// the zero time when none is recorded.
func (m *Manager) LastAttempt(r *http.Request) time.Time {
	sess, err := m.store.Get(r, m.name)
	if err != nil {
		// A stale or tampered cookie just means no usable state.
		return time.Time{}
	}
	ms, ok := sess.Values[lastAttemptKey].(int64)
	if !ok || ms <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(ms)
}

// SetLastAttempt records the cooldown timestamp.
func (m *Manager) SetLastAttempt(w http.ResponseWriter, r *http.Request, t time.Time) error {
	sess, _ := m.store.Get(r, m.name)
	sess.Values[lastAttemptKey] = t.UnixMilli()
	return sess.Save(r, w)
}

// SaveSubmitOutcome stores the flash outcome and the cooldown timestamp in
// one write, so a submit response carries a single Set-Cookie header. A zero
// lastAttempt leaves the recorded timestamp untouched.
func (m *Manager) SaveSubmitOutcome(w http.ResponseWriter, r *http.Request, lastAttempt time.Time, st *FormState) error {
	raw, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("encode form state: %w", err)
	}
	sess, _ := m.store.Get(r, m.name)
	if !lastAttempt.IsZero() {
		sess.Values[lastAttemptKey] = lastAttempt.UnixMilli()
	}
	sess.Values[formStateKey] = string(raw)
	return sess.Save(r, w)
}

// PopFormState reads and clears the flash outcome. The bool reports whether
// one was present.
func (m *Manager) PopFormState(w http.ResponseWriter, r *http.Request) (*FormState, bool) {
	sess, err := m.store.Get(r, m.name)
	if err != nil {
		return nil, false
	}
	raw, ok := sess.Values[formStateKey].(string)
	if !ok || raw == "" {
		return nil, false
	}

	delete(sess.Values, formStateKey)
	if err := sess.Save(r, w); err != nil {
		m.log.Warn("clearing form state failed", zap.Error(err))
	}

	var st FormState
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		m.log.Warn("decoding form state failed", zap.Error(err))
		return nil, false
	}
	return &st, true
}
