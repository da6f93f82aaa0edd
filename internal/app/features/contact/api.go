// internal/app/features/contact/api.go
package contact

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sovramarkets/sovrasite/internal/app/system/leadform"
	"go.uber.org/zap"
)

type apiRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Organization string `json:"organization"`
	Role         string `json:"role"`
	Message      string `json:"message"`
}

// apiError mirrors the error body shape of the downstream form processor:
// a message, plus field and code when the error is tied to one input.
type apiError struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	Code    string `json:"code,omitempty"`
}

type apiSuccess struct {
	Status    string `json:"status"`
	Reference string `json:"reference"`
}

type apiFailure struct {
	Errors []apiError `json:"errors"`
}

const maxAPIBody = 64 << 10

/*─────────────────────────────────────────────────────────────────────────────*
| POST /api/contact – JSON submit                                             |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) HandleAPISubmit(w http.ResponseWriter, r *http.Request) {
	var req apiRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxAPIBody))
	if err := dec.Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, apiFailure{
			Errors: []apiError{{Message: "Invalid JSON body."}},
		})
		return
	}

	if ok, reason := h.Limiter.Check(r); !ok {
		writeJSON(w, http.StatusTooManyRequests, apiFailure{
			Errors: []apiError{{Message: reason}},
		})
		return
	}

	draft := leadform.Draft{
		Name:         req.Name,
		Email:        req.Email,
		Organization: req.Organization,
		Role:         normalizeRole(req.Role),
		Message:      req.Message,
	}

	ctrl, sender := h.runSubmission(r, draft)

	// The JSON path has no flash state; the cooldown timestamp is the only
	// session write.
	if !ctrl.LastAttempt().IsZero() {
		if err := h.Sessions.SetLastAttempt(w, r, ctrl.LastAttempt()); err != nil {
			h.Log.Warn("saving cooldown timestamp failed", zap.Error(err))
		}
	}

	switch ctrl.Status() {
	case leadform.StatusSuccess:
		h.Log.Info("api contact submission accepted",
			zap.String("reference", sender.reference),
			zap.String("ip", sender.remoteIP))
		writeJSON(w, http.StatusOK, apiSuccess{
			Status:    "ok",
			Reference: sender.reference,
		})

	case leadform.StatusError:
		status := http.StatusBadGateway
		if !sender.called {
			// Rejected before any upstream call: cooldown still active.
			status = http.StatusTooManyRequests
		} else if errors.Is(sender.sendErr, leadform.ErrNotConfigured) {
			status = http.StatusInternalServerError
		}
		writeJSON(w, status, apiFailure{
			Errors: []apiError{{Message: ctrl.Banner()}},
		})

	default: // validation failed
		fieldErrs := ctrl.Errors()
		out := make([]apiError, 0, len(fieldErrs))
		for _, field := range leadform.Fields {
			code, ok := fieldErrs[field]
			if !ok {
				continue
			}
			out = append(out, apiError{
				Message: leadform.Message(field, code),
				Field:   string(field),
				Code:    string(code),
			})
		}
		writeJSON(w, http.StatusUnprocessableEntity, apiFailure{Errors: out})
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
