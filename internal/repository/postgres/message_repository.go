package postgres

import (
	"context"

	"channelboard/internal/domain"

	"gorm.io/gorm"
)

// messageRepository implements domain.MessageRepository
type messageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new message repository
func NewMessageRepository(db *gorm.DB) domain.MessageRepository {
	return &messageRepository{
		db: db,
	}
}

// Create appends a message record. CreatedAt is filled at insertion time,
// never taken from the caller.
func (r *messageRepository) Create(ctx context.Context, message *domain.Message) error {
	result := r.db.WithContext(ctx).Create(message)
	if result.Error != nil {
		return domain.ErrDatabaseOperation
	}
	return nil
}

// GetByChannelID retrieves all messages of a channel in insertion order.
// An unknown channel yields an empty slice, same as a channel with no
// messages; callers wanting to tell the two apart look the channel up first.
func (r *messageRepository) GetByChannelID(ctx context.Context, channelID int64) ([]domain.Message, error) {
	var messages []domain.Message
	result := r.db.WithContext(ctx).
		Where("channel_id = ?", channelID).
		Order("id ASC").
		Find(&messages)

	if result.Error != nil {
		return nil, domain.ErrDatabaseOperation
	}

	return messages, nil
}
