package question

import (
	"net/http"
	"strconv"

	"quizmaster/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	category := r.URL.Query().Get("category")
	difficulty := r.URL.Query().Get("difficulty")

	limit := DefaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			config.Error(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	questions, err := h.service.List(r.Context(), category, difficulty, limit)
	if err != nil {
		log.WithError(err).Error("Failed to list questions")
		config.Error(w, http.StatusInternalServerError, "Failed to fetch questions")
		return
	}

	config.JSON(w, http.StatusOK, questions)
}

func (h *Handler) Categories(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	categories, err := h.service.Categories(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list categories")
		config.Error(w, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}

	config.JSON(w, http.StatusOK, categories)
}
