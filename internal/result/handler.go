package result

import (
	"encoding/json"
	"errors"
	"net/http"

	"quizmaster/internal/auth"
	"quizmaster/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto SubmitResultDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body for result submission")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.service.Submit(r.Context(), claims.UserID, dto)
	if err != nil {
		if errors.Is(err, ErrMissingFields) {
			config.Error(w, http.StatusBadRequest, "Missing required fields")
			return
		}
		log.WithError(err).Error("Failed to save result")
		config.Error(w, http.StatusInternalServerError, "Failed to save result")
		return
	}

	config.JSON(w, http.StatusOK, SubmitResultResponse{
		Success: true,
		ID:      res.ID,
		Message: "Result saved successfully",
	})
}

func (h *Handler) History(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	results, err := h.service.History(r.Context(), claims.UserID)
	if err != nil {
		log.WithError(err).Error("Failed to fetch quiz history")
		config.Error(w, http.StatusInternalServerError, "Failed to fetch quiz history")
		return
	}

	config.JSON(w, http.StatusOK, results)
}
