package result

import "github.com/go-chi/chi/v5"

func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.Submit)
	r.Get("/history", h.History)
	return r
}
