// internal/app/features/contact/submit.go
package contact

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/sovramarkets/sovrasite/internal/app/system/htmlsanitize"
	"github.com/sovramarkets/sovrasite/internal/app/system/inputval"
	"github.com/sovramarkets/sovrasite/internal/app/system/leadform"
	"github.com/sovramarkets/sovrasite/internal/app/system/mailer"
	"github.com/sovramarkets/sovrasite/internal/app/system/ratelimit"
	"github.com/sovramarkets/sovrasite/internal/app/system/session"
	"github.com/sovramarkets/sovrasite/internal/app/system/timeouts"
	"github.com/sovramarkets/sovrasite/internal/app/system/viewdata"
	"github.com/sovramarkets/sovrasite/internal/domain/models"
	"go.uber.org/zap"
)

// recordingSender wraps the relay so each accepted attempt also persists
// the lead and, on success, notifies the team. It records what happened so
// the HTTP layer can map outcomes to responses.
type recordingSender struct {
	h         *Handler
	remoteIP  string
	called    bool
	sendErr   error
	reference string
}

func (s *recordingSender) Send(ctx context.Context, d leadform.Draft) error {
	s.called = true
	s.reference = uuid.NewString()

	// Store first, forward second: a lead that fails to forward is still
	// recoverable from the database.
	lead := models.Lead{
		Reference:    s.reference,
		Name:         htmlsanitize.ScrubLine(d.Name),
		Email:        htmlsanitize.ScrubLine(d.Email),
		Organization: htmlsanitize.ScrubLine(d.Organization),
		Role:         htmlsanitize.ScrubLine(d.Role),
		Message:      htmlsanitize.Scrub(d.Message),
		RemoteIP:     s.remoteIP,
	}

	stored := false
	var storedLead models.Lead
	if s.h.Leads != nil {
		dbCtx, cancel := context.WithTimeout(ctx, timeouts.Short())
		created, err := s.h.Leads.Insert(dbCtx, lead)
		cancel()
		if err != nil {
			s.h.Log.Error("storing lead failed", zap.Error(err), zap.String("reference", s.reference))
		} else {
			stored = true
			storedLead = created
		}
	}

	if err := s.h.Relay.Send(ctx, d); err != nil {
		s.sendErr = err
		s.notify(lead, false)
		return err
	}

	if stored {
		dbCtx, cancel := context.WithTimeout(context.Background(), timeouts.Short())
		if err := s.h.Leads.MarkForwarded(dbCtx, storedLead.ID); err != nil {
			s.h.Log.Warn("marking lead forwarded failed", zap.Error(err), zap.String("reference", s.reference))
		}
		cancel()
	}

	s.notify(lead, true)
	return nil
}

// notify emails the team about the new lead. Best-effort: failures are
// logged and never affect the visitor's outcome.
func (s *recordingSender) notify(lead models.Lead, forwarded bool) {
	if s.h.Mail == nil || s.h.NotifyTo == "" {
		return
	}

	email := mailer.BuildLeadNotification(mailer.LeadNotificationData{
		SiteName:     viewdata.SiteName(),
		Reference:    lead.Reference,
		Name:         lead.Name,
		Email:        lead.Email,
		Organization: lead.Organization,
		Role:         lead.Role,
		Message:      lead.Message,
		Forwarded:    forwarded,
	})
	email.To = s.h.NotifyTo

	if err := s.h.Mail.Send(email); err != nil {
		s.h.Log.Warn("lead notification email failed", zap.Error(err), zap.String("reference", lead.Reference))
	}
}

// draftFromForm builds a Draft from the posted form values.
func draftFromForm(r *http.Request) leadform.Draft {
	return leadform.Draft{
		Name:         r.FormValue("name"),
		Email:        r.FormValue("email"),
		Organization: r.FormValue("organization"),
		Role:         normalizeRole(r.FormValue("role")),
		Message:      r.FormValue("message"),
	}
}

// normalizeRole drops values the form's role select never offered, so only
// known labels reach the relay, the store, and the notification mail.
func normalizeRole(role string) string {
	if !inputval.IsValidRole(role) {
		return ""
	}
	return role
}

// runSubmission executes one submission attempt. The caller persists the
// cooldown timestamp alongside its outcome so each response saves the
// session exactly once. Shared by the browser and JSON paths.
func (h *Handler) runSubmission(r *http.Request, draft leadform.Draft) (*leadform.Controller, *recordingSender) {
	sender := &recordingSender{h: h, remoteIP: ratelimit.ClientIP(r)}

	ctrl := leadform.NewController(sender,
		leadform.WithCooldown(h.Cooldown),
		leadform.WithLastAttempt(h.Sessions.LastAttempt(r)))
	ctrl.SetDraft(draft)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Relay())
	defer cancel()
	ctrl.Submit(ctx)

	return ctrl, sender
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /contact – browser form submit (PRG)                                   |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse contact form failed", err, "Invalid form data.", "/contact")
		return
	}
	draft := draftFromForm(r)

	if ok, reason := h.Limiter.Check(r); !ok {
		h.saveOutcome(w, r, time.Time{}, &session.FormState{
			Status: string(leadform.StatusError),
			Banner: reason,
		}, draft)
		http.Redirect(w, r, "/contact", http.StatusSeeOther)
		return
	}

	ctrl, sender := h.runSubmission(r, draft)

	switch ctrl.Status() {
	case leadform.StatusSuccess:
		h.Log.Info("contact submission accepted",
			zap.String("reference", sender.reference),
			zap.String("ip", sender.remoteIP))
		h.saveOutcome(w, r, ctrl.LastAttempt(), &session.FormState{
			Status:    string(leadform.StatusSuccess),
			Reference: sender.reference,
		}, leadform.Draft{})
		http.Redirect(w, r, "/contact/thanks", http.StatusSeeOther)

	case leadform.StatusError:
		h.saveOutcome(w, r, ctrl.LastAttempt(), &session.FormState{
			Status: string(leadform.StatusError),
			Banner: ctrl.Banner(),
		}, draft)
		http.Redirect(w, r, "/contact", http.StatusSeeOther)

	default: // validation failed, stays idle
		errs := make(map[string]string)
		for field, code := range ctrl.VisibleErrors() {
			errs[string(field)] = string(code)
		}
		h.saveOutcome(w, r, ctrl.LastAttempt(), &session.FormState{
			Status: string(leadform.StatusIdle),
			Errors: errs,
		}, draft)
		http.Redirect(w, r, "/contact", http.StatusSeeOther)
	}
}

// saveOutcome writes the flash state and the cooldown timestamp in a single
// session save, echoing the draft for correction.
func (h *Handler) saveOutcome(w http.ResponseWriter, r *http.Request, lastAttempt time.Time, st *session.FormState, draft leadform.Draft) {
	st.Name = draft.Name
	st.Email = draft.Email
	st.Org = draft.Organization
	st.Role = draft.Role
	st.Message = draft.Message
	if err := h.Sessions.SaveSubmitOutcome(w, r, lastAttempt, st); err != nil {
		h.Log.Warn("saving form state failed", zap.Error(err))
	}
}
