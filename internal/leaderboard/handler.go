package leaderboard

import (
	"net/http"

	"quizmaster/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	rows, err := h.service.Top(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to fetch leaderboard")
		config.Error(w, http.StatusInternalServerError, "Failed to fetch leaderboard")
		return
	}

	config.JSON(w, http.StatusOK, rows)
}
