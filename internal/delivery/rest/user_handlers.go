package rest

import (
	"encoding/json"
	"net/http"
	"strconv"

	"channelboard/internal/domain"

	"github.com/go-chi/chi/v5"
)

type registerUserRequest struct {
	Username string `json:"username" validate:"required"`
}

// RegisterUser handles POST /users
func (h *Handlers) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req registerUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, "username is required")
		return
	}

	user, err := h.userUseCase.RegisterUser(r.Context(), req.Username)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"userId":  user.ID,
		"message": "User created successfully.",
	})
}

// GetUser handles GET /users/{id}
func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondDomainError(w, domain.ErrInvalidUserID)
		return
	}

	user, err := h.userUseCase.GetUser(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, user)
}

// ListUsers handles GET /users
func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userUseCase.ListUsers(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, users)
}

// GetUserSubscriptions handles GET /users/{id}/subscriptions
func (h *Handlers) GetUserSubscriptions(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondDomainError(w, domain.ErrInvalidUserID)
		return
	}

	subscriptions, err := h.subscriptionUseCase.GetUserSubscriptions(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, subscriptions)
}
