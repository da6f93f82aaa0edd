// internal/app/features/platform/handler.go
package platform

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/sovramarkets/sovrasite/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// Handler serves the product overview page.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

func (h *Handler) ServePlatform(w http.ResponseWriter, r *http.Request) {
	data := struct {
		viewdata.BaseVM
	}{
		BaseVM: viewdata.NewBaseVM(r, "Platform"),
	}

	templates.Render(w, r, "platform", data)
}
