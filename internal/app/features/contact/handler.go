// internal/app/features/contact/handler.go
package contact

import (
	"net/http"
	"time"

	"github.com/dalemusser/waffle/pantry/templates"
	uierrors "github.com/sovramarkets/sovrasite/internal/app/features/errors"
	leadstore "github.com/sovramarkets/sovrasite/internal/app/store/leads"
	"github.com/sovramarkets/sovrasite/internal/app/system/inputval"
	"github.com/sovramarkets/sovrasite/internal/app/system/leadform"
	"github.com/sovramarkets/sovrasite/internal/app/system/mailer"
	"github.com/sovramarkets/sovrasite/internal/app/system/ratelimit"
	"github.com/sovramarkets/sovrasite/internal/app/system/session"
	"github.com/sovramarkets/sovrasite/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// Handler owns the contact form: the page, the browser submit path, and the
// JSON submit path.
type Handler struct {
	Leads    *leadstore.Store
	Sessions *session.Manager
	Relay    leadform.Sender
	Mail     *mailer.Sender
	NotifyTo string
	Limiter  *ratelimit.SubmitLimiter
	Cooldown time.Duration
	ErrLog   *uierrors.ErrorLogger
	Log      *zap.Logger
}

// NewHandler creates the contact Handler. Mail may be nil (notifications
// disabled); Leads may be nil in tests that don't exercise persistence.
func NewHandler(leads *leadstore.Store, sessions *session.Manager, relay leadform.Sender, mail *mailer.Sender, notifyTo string, limiter *ratelimit.SubmitLimiter, cooldown time.Duration, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	if cooldown <= 0 {
		cooldown = leadform.DefaultCooldown
	}
	return &Handler{
		Leads:    leads,
		Sessions: sessions,
		Relay:    relay,
		Mail:     mail,
		NotifyTo: notifyTo,
		Limiter:  limiter,
		Cooldown: cooldown,
		ErrLog:   errLog,
		Log:      logger,
	}
}

// formData is the view model for the contact page.
type formData struct {
	viewdata.BaseVM
	Name         string
	Email        string
	Organization string
	Role         string
	Message      string
	Roles        []string
	Errors       map[string]string // field -> inline message
	Banner       string
}

// thanksData is the view model for the success panel.
type thanksData struct {
	viewdata.BaseVM
	Reference string
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /contact – the form                                                     |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeForm(w http.ResponseWriter, r *http.Request) {
	data := formData{
		BaseVM: viewdata.NewFormBaseVM(r, "Contact Sovra"),
		Roles:  inputval.AllowedRolesList(),
	}

	// Restore the outcome of a just-submitted form across the redirect.
	if st, ok := h.Sessions.PopFormState(w, r); ok {
		data.Name = st.Name
		data.Email = st.Email
		data.Organization = st.Org
		data.Role = st.Role
		data.Message = st.Message
		data.Banner = st.Banner
		if len(st.Errors) > 0 {
			data.Errors = make(map[string]string, len(st.Errors))
			for field, code := range st.Errors {
				data.Errors[field] = leadform.Message(leadform.Field(field), leadform.Code(code))
			}
		}
	}

	templates.Render(w, r, "contact", data)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /contact/thanks – success panel                                         |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeThanks(w http.ResponseWriter, r *http.Request) {
	st, ok := h.Sessions.PopFormState(w, r)
	if !ok || st.Status != string(leadform.StatusSuccess) {
		// Direct hit without a submission: back to the form.
		http.Redirect(w, r, "/contact", http.StatusSeeOther)
		return
	}

	data := thanksData{
		BaseVM:    viewdata.NewBaseVM(r, "Message sent"),
		Reference: st.Reference,
	}
	templates.Render(w, r, "contact_thanks", data)
}
