package postgres

import (
	"context"
	"errors"

	"channelboard/internal/domain"

	"gorm.io/gorm"
)

// channelRepository implements domain.ChannelRepository
type channelRepository struct {
	db *gorm.DB
}

// NewChannelRepository creates a new channel repository
func NewChannelRepository(db *gorm.DB) domain.ChannelRepository {
	return &channelRepository{
		db: db,
	}
}

// Create persists a new channel; the unique index on name rejects duplicates
func (r *channelRepository) Create(ctx context.Context, channel *domain.Channel) error {
	result := r.db.WithContext(ctx).Create(channel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrChannelNameTaken
		}
		return domain.ErrDatabaseOperation
	}
	return nil
}

// GetByID retrieves a channel by ID
func (r *channelRepository) GetByID(ctx context.Context, id int64) (*domain.Channel, error) {
	var channel domain.Channel
	result := r.db.WithContext(ctx).First(&channel, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrChannelNotFound
		}
		return nil, domain.ErrDatabaseOperation
	}

	return &channel, nil
}

// List retrieves all channels in insertion order
func (r *channelRepository) List(ctx context.Context) ([]domain.Channel, error) {
	var channels []domain.Channel
	result := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&channels)

	if result.Error != nil {
		return nil, domain.ErrDatabaseOperation
	}

	return channels, nil
}

// Exists checks if a channel exists
func (r *channelRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&domain.Channel{}).
		Where("id = ?", id).
		Count(&count)

	if result.Error != nil {
		return false, domain.ErrDatabaseOperation
	}

	return count > 0, nil
}
