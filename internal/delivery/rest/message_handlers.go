package rest

import (
	"encoding/json"
	"net/http"
	"strconv"

	"channelboard/internal/domain"

	"github.com/go-chi/chi/v5"
)

type postMessageRequest struct {
	Message   string `json:"message"`
	UserID    int64  `json:"userId"`
	ChannelID int64  `json:"channelId"`
}

// PostMessage handles POST /message
func (h *Handlers) PostMessage(w http.ResponseWriter, r *http.Request) {
	var req postMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	message, err := h.messageUseCase.PostMessage(r.Context(), req.Message, req.UserID, req.ChannelID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]interface{}{
		"messageId": message.ID,
		"message":   "Message inserted successfully.",
	})
}

// ListMessages handles GET /channels/{id}/messages
func (h *Handlers) ListMessages(w http.ResponseWriter, r *http.Request) {
	channelID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		respondDomainError(w, domain.ErrInvalidChannelID)
		return
	}

	messages, err := h.messageUseCase.ListMessages(r.Context(), channelID)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, messages)
}
