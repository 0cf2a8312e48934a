package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Shameem-Akbar/Yoga-Journey-Server/internal/auth"
)

type TokenHandler struct {
	manager *auth.Manager
}

func NewTokenHandler(manager *auth.Manager) *TokenHandler {
	return &TokenHandler{manager: manager}
}

// IssueToken signs a bearer token for the posted user payload.
func (h *TokenHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if payload.Email == "" {
		respondError(w, http.StatusBadRequest, "Email is required")
		return
	}

	token, err := h.manager.GenerateJWT(payload.Email)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to sign token")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"token": token})
}
