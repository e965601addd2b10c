package usecase

import (
	"context"
	"strings"

	"channelboard/internal/domain"

	"github.com/rs/zerolog"
)

// channelUseCase implements domain.ChannelUseCase
type channelUseCase struct {
	repo     domain.ChannelRepository
	userRepo domain.UserRepository
	logger   zerolog.Logger
}

// NewChannelUseCase creates a new channel use case
func NewChannelUseCase(
	repo domain.ChannelRepository,
	userRepo domain.UserRepository,
	logger zerolog.Logger,
) domain.ChannelUseCase {
	return &channelUseCase{
		repo:     repo,
		userRepo: userRepo,
		logger:   logger,
	}
}

// CreateChannel creates a new channel owned by an existing user. Ownership
// is permanent; there is no transfer operation.
func (u *channelUseCase) CreateChannel(ctx context.Context, name string, ownerID int64) (*domain.Channel, error) {
	if strings.TrimSpace(name) == "" {
		return nil, domain.ErrInvalidChannelName
	}

	if ownerID <= 0 {
		return nil, domain.ErrInvalidUserID
	}

	exists, err := u.userRepo.Exists(ctx, ownerID)
	if err != nil {
		u.logger.Error().Err(err).
			Int64("owner_id", ownerID).
			Msg("failed to check owner existence")
		return nil, err
	}

	if !exists {
		return nil, domain.ErrUserNotFound
	}

	channel := &domain.Channel{
		Name:    name,
		OwnerID: ownerID,
	}

	if err := u.repo.Create(ctx, channel); err != nil {
		u.logger.Error().Err(err).
			Str("name", name).
			Int64("owner_id", ownerID).
			Msg("failed to create channel")
		return nil, err
	}

	u.logger.Info().
		Int64("channel_id", channel.ID).
		Str("name", name).
		Int64("owner_id", ownerID).
		Msg("channel created successfully")

	return channel, nil
}

// GetChannel retrieves a channel by ID
func (u *channelUseCase) GetChannel(ctx context.Context, id int64) (*domain.Channel, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidChannelID
	}

	channel, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return channel, nil
}

// ListChannels retrieves all channels
func (u *channelUseCase) ListChannels(ctx context.Context) ([]domain.Channel, error) {
	channels, err := u.repo.List(ctx)
	if err != nil {
		u.logger.Error().Err(err).Msg("failed to list channels")
		return nil, err
	}

	if channels == nil {
		channels = []domain.Channel{}
	}

	return channels, nil
}
