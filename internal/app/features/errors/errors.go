// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/sovramarkets/sovrasite/internal/app/system/viewdata"
)

// pageData is the view model for error pages.
type pageData struct {
	viewdata.BaseVM
	Message string
	BackURL string
}

// Handler renders friendly error pages. No DB needed.
type Handler struct{}

// NewHandler constructs an errors Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// NotFound renders a friendly 404 page.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Page not found"),
		Message: "The page you were looking for does not exist.",
		BackURL: "/",
	}
	templates.Render(w, r, "error_page", data)
}

// ServerError renders a friendly 500 page.
func (h *Handler) ServerError(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusInternalServerError)
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Something went wrong"),
		Message: "An unexpected error occurred. Please try again.",
		BackURL: "/",
	}
	templates.Render(w, r, "error_page", data)
}
