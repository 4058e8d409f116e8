package user

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

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto RegisterDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body for registration")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.service.Register(r.Context(), dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			config.Error(w, http.StatusBadRequest, "All fields are required")
		case errors.Is(err, ErrUserExists):
			config.Error(w, http.StatusBadRequest, "User already exists")
		default:
			log.WithError(err).Error("Failed to register user")
			config.Error(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	config.JSON(w, http.StatusCreated, resp)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto LoginDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body for login")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.service.Login(r.Context(), dto)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			config.Error(w, http.StatusBadRequest, "Email and password are required")
		case errors.Is(err, ErrInvalidCredentials):
			config.Error(w, http.StatusBadRequest, "Invalid credentials")
		default:
			log.WithError(err).Error("Failed to log user in")
			config.Error(w, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	config.JSON(w, http.StatusOK, resp)
}

func (h *Handler) GetProfile(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	profile, err := h.service.Profile(r.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			config.Error(w, http.StatusNotFound, "user not found")
			return
		}
		log.WithError(err).Error("Failed to fetch profile")
		config.Error(w, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}

	config.JSON(w, http.StatusOK, profile)
}

func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		config.Error(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var dto UpdateProfileDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body for profile update")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.service.UpdateProfile(r.Context(), claims.UserID, dto); err != nil {
		if errors.Is(err, ErrMissingFields) {
			config.Error(w, http.StatusBadRequest, "no fields to update")
			return
		}
		log.WithError(err).Error("Failed to update profile")
		config.Error(w, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	config.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Profile updated successfully",
	})
}
