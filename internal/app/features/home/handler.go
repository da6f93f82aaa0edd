// internal/app/features/home/handler.go
package home

import (
	"net/http"

	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/sovramarkets/sovrasite/internal/app/system/viewdata"
	"go.uber.org/zap"
)

// Handler serves the landing page.
type Handler struct {
	Log *zap.Logger
}

func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{Log: logger}
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET / – landing                                                             |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) ServeRoot(w http.ResponseWriter, r *http.Request) {
	data := struct {
		viewdata.BaseVM
	}{
		BaseVM: viewdata.NewBaseVM(r, "Tokenized Sovereign Debt"),
	}

	templates.Render(w, r, "home", data)
}
