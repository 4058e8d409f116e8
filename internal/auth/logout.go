package auth

import (
	"net/http"

	"quizmaster/internal/config"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

// Logout is stateless: tokens live client-side in the Authorization header,
// so the server has nothing to invalidate and simply acknowledges.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	config.JSON(w, http.StatusOK, map[string]string{
		"message": "logout successful",
	})
}
