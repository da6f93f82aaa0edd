// internal/app/features/about/handler.go
package about

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/sovramarkets/sovrasite/internal/app/system/viewdata"
	"go.uber.org/zap"
)

type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

func (h *Handler) ServeAbout(w http.ResponseWriter, r *http.Request) {
	data := struct {
		viewdata.BaseVM
	}{
		BaseVM: viewdata.NewBaseVM(r, "About Sovra"),
	}

	templates.Render(w, r, "about", data)
}
