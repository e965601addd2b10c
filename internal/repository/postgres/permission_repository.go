package postgres

import (
	"context"

	"channelboard/internal/domain"

	"gorm.io/gorm"
)

// permissionRepository implements domain.PermissionRepository
type permissionRepository struct {
	db *gorm.DB
}

// NewPermissionRepository creates a new permission repository
func NewPermissionRepository(db *gorm.DB) domain.PermissionRepository {
	return &permissionRepository{
		db: db,
	}
}

// canPostRow carries the result of the combined existence and permission query
type canPostRow struct {
	ChannelExists bool
	CanPost       bool
}

// CanPost reports whether the user owns the channel or holds an active
// subscription. Channel existence and the owner-or-subscriber union are
// resolved in one statement, so a concurrent unsubscribe cannot slip in
// between an ownership check and a membership check.
func (r *permissionRepository) CanPost(ctx context.Context, userID, channelID int64) (bool, error) {
	var row canPostRow
	result := r.db.WithContext(ctx).Raw(`
		SELECT
			EXISTS (
				SELECT 1 FROM channels WHERE id = ?
			) AS channel_exists,
			EXISTS (
				SELECT 1 FROM channels
				WHERE id = ? AND owner_id = ?
				UNION
				SELECT 1 FROM subscriptions
				WHERE channel_id = ? AND user_id = ?
			) AS can_post`,
		channelID,
		channelID, userID,
		channelID, userID,
	).Scan(&row)

	if result.Error != nil {
		return false, domain.ErrDatabaseOperation
	}

	if !row.ChannelExists {
		return false, domain.ErrChannelNotFound
	}

	return row.CanPost, nil
}
