package rest

import (
	"encoding/json"
	"net/http"
	"strconv"

	"channelboard/internal/domain"

	"github.com/go-chi/chi/v5"
)

type createChannelRequest struct {
	Name    string `json:"name" validate:"required"`
	OwnerID int64  `json:"ownerId" validate:"required,gt=0"`
}

type subscribeRequest struct {
	UserID int64 `json:"userId" validate:"required,gt=0"`
}

// CreateChannel handles POST /channels
func (h *Handlers) CreateChannel(w http.ResponseWriter, r *http.Request) {
	var req createChannelRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, "name and ownerId are required")
		return
	}

	channel, err := h.channelUseCase.CreateChannel(r.Context(), req.Name, req.OwnerID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"channelId": channel.ID,
		"message":   "Channel created successfully.",
	})
}

// GetChannel handles GET /channels/{id}
func (h *Handlers) GetChannel(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondDomainError(w, domain.ErrInvalidChannelID)
		return
	}

	channel, err := h.channelUseCase.GetChannel(r.Context(), id)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, channel)
}

// ListChannels handles GET /channels
func (h *Handlers) ListChannels(w http.ResponseWriter, r *http.Request) {
	channels, err := h.channelUseCase.ListChannels(r.Context())
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, channels)
}

// Subscribe handles POST /channels/{id}/subscribe
func (h *Handlers) Subscribe(w http.ResponseWriter, r *http.Request) {
	channelID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondDomainError(w, domain.ErrInvalidChannelID)
		return
	}

	var req subscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, "userId is required")
		return
	}

	subscription, err := h.subscriptionUseCase.Subscribe(r.Context(), req.UserID, channelID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"subscriptionId": subscription.ID,
	})
}

// Unsubscribe handles POST /channels/{id}/unsubscribe
func (h *Handlers) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	channelID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondDomainError(w, domain.ErrInvalidChannelID)
		return
	}

	var req subscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.validate.Struct(req); err != nil {
		respondError(w, http.StatusBadRequest, "userId is required")
		return
	}

	if err := h.subscriptionUseCase.Unsubscribe(r.Context(), req.UserID, channelID); err != nil {
		respondDomainError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GetChannelSubscribers handles GET /channels/{id}/subscribers
func (h *Handlers) GetChannelSubscribers(w http.ResponseWriter, r *http.Request) {
	channelID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondDomainError(w, domain.ErrInvalidChannelID)
		return
	}

	subscribers, err := h.subscriptionUseCase.GetChannelSubscribers(r.Context(), channelID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"userIds": subscribers,
	})
}
