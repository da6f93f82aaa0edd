package contact

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeForm)
	r.Post("/", h.HandleSubmit)
	r.Get("/thanks", h.ServeThanks)
	return r
}

// APIRoutes exposes the JSON endpoint, mounted separately under /api.
func APIRoutes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.HandleAPISubmit)
	return r
}
