package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"channelboard/internal/domain"
)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}

// respondDomainError maps a domain sentinel to its HTTP status
func respondDomainError(w http.ResponseWriter, err error) {
	respondError(w, statusFromError(err), err.Error())
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidUsername),
		errors.Is(err, domain.ErrInvalidChannelName),
		errors.Is(err, domain.ErrInvalidUserID),
		errors.Is(err, domain.ErrInvalidChannelID):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrChannelNotFound),
		errors.Is(err, domain.ErrSubscriptionNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrUsernameTaken),
		errors.Is(err, domain.ErrChannelNameTaken),
		errors.Is(err, domain.ErrSubscriptionExists):
		return http.StatusConflict
	case errors.Is(err, domain.ErrPostForbidden):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
