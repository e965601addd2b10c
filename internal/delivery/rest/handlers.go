package rest

import (
	"net/http"

	"channelboard/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	userUseCase         domain.UserUseCase
	channelUseCase      domain.ChannelUseCase
	subscriptionUseCase domain.SubscriptionUseCase
	messageUseCase      domain.MessageUseCase
	validate            *validator.Validate
	logger              zerolog.Logger
}

// NewHandlers creates a new Handlers instance
func NewHandlers(
	userUseCase domain.UserUseCase,
	channelUseCase domain.ChannelUseCase,
	subscriptionUseCase domain.SubscriptionUseCase,
	messageUseCase domain.MessageUseCase,
	logger zerolog.Logger,
) *Handlers {
	return &Handlers{
		userUseCase:         userUseCase,
		channelUseCase:      channelUseCase,
		subscriptionUseCase: subscriptionUseCase,
		messageUseCase:      messageUseCase,
		validate:            validator.New(),
		logger:              logger,
	}
}

// HealthCheck reports service liveness
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
