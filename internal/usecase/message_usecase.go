package usecase

import (
	"context"

	"channelboard/internal/domain"

	"github.com/rs/zerolog"
)

// messageUseCase implements domain.MessageUseCase
type messageUseCase struct {
	repo     domain.MessageRepository
	userRepo domain.UserRepository
	permRepo domain.PermissionRepository
	producer domain.EventProducer
	logger   zerolog.Logger
}

// NewMessageUseCase creates a new message use case
func NewMessageUseCase(
	repo domain.MessageRepository,
	userRepo domain.UserRepository,
	permRepo domain.PermissionRepository,
	producer domain.EventProducer,
	logger zerolog.Logger,
) domain.MessageUseCase {
	return &messageUseCase{
		repo:     repo,
		userRepo: userRepo,
		permRepo: permRepo,
		producer: producer,
		logger:   logger,
	}
}

// PostMessage appends a message. Checks run in order, each a distinct
// failure: user exists, channel exists, user may post. The last two are a
// single permission query so no unsubscribe can race between them.
func (u *messageUseCase) PostMessage(ctx context.Context, text string, userID, channelID int64) (*domain.Message, error) {
	userExists, err := u.userRepo.Exists(ctx, userID)
	if err != nil {
		u.logger.Error().Err(err).
			Int64("user_id", userID).
			Msg("failed to check user existence")
		return nil, err
	}

	if !userExists {
		return nil, domain.ErrUserNotFound
	}

	allowed, err := u.permRepo.CanPost(ctx, userID, channelID)
	if err != nil {
		if err != domain.ErrChannelNotFound {
			u.logger.Error().Err(err).
				Int64("user_id", userID).
				Int64("channel_id", channelID).
				Msg("failed to check posting permission")
		}
		return nil, err
	}

	if !allowed {
		return nil, domain.ErrPostForbidden
	}

	message := &domain.Message{
		Text:      text,
		UserID:    userID,
		ChannelID: channelID,
	}

	if err := u.repo.Create(ctx, message); err != nil {
		u.logger.Error().Err(err).
			Int64("user_id", userID).
			Int64("channel_id", channelID).
			Msg("failed to insert message")
		return nil, err
	}

	if err := u.producer.NotifyMessage(ctx, message); err != nil {
		u.logger.Error().Err(err).
			Int64("message_id", message.ID).
			Int64("channel_id", channelID).
			Msg("failed to publish message posted event")
		// Don't return error here, message is already persisted
	}

	u.logger.Info().
		Int64("message_id", message.ID).
		Int64("user_id", userID).
		Int64("channel_id", channelID).
		Msg("message posted successfully")

	return message, nil
}

// ListMessages retrieves all messages of a channel. A channel with no
// messages and an unknown channel both yield an empty list.
func (u *messageUseCase) ListMessages(ctx context.Context, channelID int64) ([]domain.Message, error) {
	if channelID <= 0 {
		return nil, domain.ErrInvalidChannelID
	}

	messages, err := u.repo.GetByChannelID(ctx, channelID)
	if err != nil {
		u.logger.Error().Err(err).
			Int64("channel_id", channelID).
			Msg("failed to list messages")
		return nil, err
	}

	if messages == nil {
		messages = []domain.Message{}
	}

	return messages, nil
}

// CanPost reports posting eligibility for a user in a channel
func (u *messageUseCase) CanPost(ctx context.Context, userID, channelID int64) (bool, error) {
	if userID <= 0 {
		return false, domain.ErrInvalidUserID
	}

	if channelID <= 0 {
		return false, domain.ErrInvalidChannelID
	}

	return u.permRepo.CanPost(ctx, userID, channelID)
}
