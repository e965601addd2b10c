package usecase

import (
	"context"

	"channelboard/internal/domain"
	"channelboard/internal/domain/events"

	"github.com/rs/zerolog"
	"github.com/samber/lo"
)

// subscriptionUseCase implements domain.SubscriptionUseCase
type subscriptionUseCase struct {
	repo        domain.SubscriptionRepository
	userRepo    domain.UserRepository
	channelRepo domain.ChannelRepository
	producer    domain.EventProducer
	logger      zerolog.Logger
}

// NewSubscriptionUseCase creates a new subscription use case
func NewSubscriptionUseCase(
	repo domain.SubscriptionRepository,
	userRepo domain.UserRepository,
	channelRepo domain.ChannelRepository,
	producer domain.EventProducer,
	logger zerolog.Logger,
) domain.SubscriptionUseCase {
	return &subscriptionUseCase{
		repo:        repo,
		userRepo:    userRepo,
		channelRepo: channelRepo,
		producer:    producer,
		logger:      logger,
	}
}

// Subscribe creates a new subscription. The composite unique constraint on
// the pair rejects duplicates atomically; owners subscribing to their own
// channel are allowed, authorization treats owner and subscriber the same.
func (u *subscriptionUseCase) Subscribe(ctx context.Context, userID, channelID int64) (*domain.Subscription, error) {
	if userID <= 0 {
		return nil, domain.ErrInvalidUserID
	}

	if channelID <= 0 {
		return nil, domain.ErrInvalidChannelID
	}

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

	channelExists, err := u.channelRepo.Exists(ctx, channelID)
	if err != nil {
		u.logger.Error().Err(err).
			Int64("channel_id", channelID).
			Msg("failed to check channel existence")
		return nil, err
	}

	if !channelExists {
		return nil, domain.ErrChannelNotFound
	}

	subscription := &domain.Subscription{
		UserID:    userID,
		ChannelID: channelID,
	}

	if err := u.repo.Create(ctx, subscription); err != nil {
		u.logger.Error().Err(err).
			Int64("user_id", userID).
			Int64("channel_id", channelID).
			Msg("failed to create subscription")
		return nil, err
	}

	if err := u.producer.NotifySubscription(ctx, events.SubscriptionCreated, subscription); err != nil {
		u.logger.Error().Err(err).
			Int64("user_id", userID).
			Int64("channel_id", channelID).
			Msg("failed to publish subscription created event")
		// Don't return error here, subscription is already created
	}

	u.logger.Info().
		Int64("subscription_id", subscription.ID).
		Int64("user_id", userID).
		Int64("channel_id", channelID).
		Msg("subscription created successfully")

	return subscription, nil
}

// Unsubscribe deletes a subscription. A missing pair is a reported
// failure, never a silent success.
func (u *subscriptionUseCase) Unsubscribe(ctx context.Context, userID, channelID int64) error {
	if userID <= 0 {
		return domain.ErrInvalidUserID
	}

	if channelID <= 0 {
		return domain.ErrInvalidChannelID
	}

	if err := u.repo.Delete(ctx, userID, channelID); err != nil {
		if err != domain.ErrSubscriptionNotFound {
			u.logger.Error().Err(err).
				Int64("user_id", userID).
				Int64("channel_id", channelID).
				Msg("failed to delete subscription")
		}
		return err
	}

	subscription := &domain.Subscription{
		UserID:    userID,
		ChannelID: channelID,
	}

	if err := u.producer.NotifySubscription(ctx, events.SubscriptionDeleted, subscription); err != nil {
		u.logger.Error().Err(err).
			Int64("user_id", userID).
			Int64("channel_id", channelID).
			Msg("failed to publish subscription deleted event")
	}

	u.logger.Info().
		Int64("user_id", userID).
		Int64("channel_id", channelID).
		Msg("subscription deleted successfully")

	return nil
}

// IsSubscribed checks if a user holds an active subscription
func (u *subscriptionUseCase) IsSubscribed(ctx context.Context, userID, channelID int64) (bool, error) {
	if userID <= 0 {
		return false, domain.ErrInvalidUserID
	}

	if channelID <= 0 {
		return false, domain.ErrInvalidChannelID
	}

	return u.repo.Exists(ctx, userID, channelID)
}

// GetUserSubscriptions retrieves all subscriptions for a user
func (u *subscriptionUseCase) GetUserSubscriptions(ctx context.Context, userID int64) ([]domain.Subscription, error) {
	if userID <= 0 {
		return nil, domain.ErrInvalidUserID
	}

	subscriptions, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		u.logger.Error().Err(err).
			Int64("user_id", userID).
			Msg("failed to get user subscriptions")
		return nil, err
	}

	if subscriptions == nil {
		subscriptions = []domain.Subscription{}
	}

	return subscriptions, nil
}

// GetChannelSubscribers retrieves all users subscribed to a channel
func (u *subscriptionUseCase) GetChannelSubscribers(ctx context.Context, channelID int64) ([]int64, error) {
	if channelID <= 0 {
		return nil, domain.ErrInvalidChannelID
	}

	subscriptions, err := u.repo.GetByChannelID(ctx, channelID)
	if err != nil {
		u.logger.Error().Err(err).
			Int64("channel_id", channelID).
			Msg("failed to get channel subscribers")
		return nil, err
	}

	return lo.Map(subscriptions, func(sub domain.Subscription, _ int) int64 {
		return sub.UserID
	}), nil
}
