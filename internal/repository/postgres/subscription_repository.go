package postgres

import (
	"context"
	"errors"

	"channelboard/internal/domain"

	"gorm.io/gorm"
)

// subscriptionRepository implements domain.SubscriptionRepository
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository creates a new subscription repository
func NewSubscriptionRepository(db *gorm.DB) domain.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// Create persists a new subscription. The composite unique index on
// (user_id, channel_id) makes the duplicate check and the insert a single
// atomic write.
func (r *subscriptionRepository) Create(ctx context.Context, subscription *domain.Subscription) error {
	result := r.db.WithContext(ctx).Create(subscription)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrSubscriptionExists
		}
		return domain.ErrDatabaseOperation
	}
	return nil
}

// Delete deletes a subscription. Deleting a pair that does not exist is a
// reported failure, not a no-op.
func (r *subscriptionRepository) Delete(ctx context.Context, userID, channelID int64) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND channel_id = ?", userID, channelID).
		Delete(&domain.Subscription{})

	if result.Error != nil {
		return domain.ErrDatabaseOperation
	}

	if result.RowsAffected == 0 {
		return domain.ErrSubscriptionNotFound
	}

	return nil
}

// Exists checks if subscription exists
func (r *subscriptionRepository) Exists(ctx context.Context, userID, channelID int64) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&domain.Subscription{}).
		Where("user_id = ? AND channel_id = ?", userID, channelID).
		Count(&count)

	if result.Error != nil {
		return false, domain.ErrDatabaseOperation
	}

	return count > 0, nil
}

// GetByUserID retrieves all subscriptions for a user
func (r *subscriptionRepository) GetByUserID(ctx context.Context, userID int64) ([]domain.Subscription, error) {
	var subscriptions []domain.Subscription
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&subscriptions)

	if result.Error != nil {
		return nil, domain.ErrDatabaseOperation
	}

	return subscriptions, nil
}

// GetByChannelID retrieves all subscriptions for a channel
func (r *subscriptionRepository) GetByChannelID(ctx context.Context, channelID int64) ([]domain.Subscription, error) {
	var subscriptions []domain.Subscription
	result := r.db.WithContext(ctx).
		Where("channel_id = ?", channelID).
		Order("id ASC").
		Find(&subscriptions)

	if result.Error != nil {
		return nil, domain.ErrDatabaseOperation
	}

	return subscriptions, nil
}
