// internal/app/features/errors/errlogger.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/sovramarkets/sovrasite/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// ErrorLogger logs handler failures and renders a friendly page in one
// step, so handlers stay short.
type ErrorLogger struct {
	log *zap.Logger
}

// NewErrorLogger creates an ErrorLogger backed by the app logger.
func NewErrorLogger(logger *zap.Logger) *ErrorLogger {
	return &ErrorLogger{log: logger}
}

// LogBadRequest logs a malformed-input failure and renders an error page
// with the given user-facing message.
func (e *ErrorLogger) LogBadRequest(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.log.Warn(logMsg, zap.Error(err), zap.String("path", r.URL.Path))
	e.render(w, r, http.StatusBadRequest, userMsg, backURL)
}

// LogServerError logs an internal failure and renders an error page with
// the given user-facing message.
func (e *ErrorLogger) LogServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, userMsg, backURL string) {
	e.log.Error(logMsg, zap.Error(err), zap.String("path", r.URL.Path))
	e.render(w, r, http.StatusInternalServerError, userMsg, backURL)
}

func (e *ErrorLogger) render(w http.ResponseWriter, r *http.Request, status int, userMsg, backURL string) {
	if backURL == "" {
		backURL = "/"
	}
	w.WriteHeader(status)
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Something went wrong"),
		Message: userMsg,
		BackURL: backURL,
	}
	templates.Render(w, r, "error_page", data)
}
