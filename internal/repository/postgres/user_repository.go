package postgres

import (
	"context"
	"errors"

	"channelboard/internal/domain"

	"gorm.io/gorm"
)

// userRepository implements domain.UserRepository
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &userRepository{
		db: db,
	}
}

// Create persists a new user. The unique index on username turns a
// would-be duplicate into a single failed write, no pre-check involved.
func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	result := r.db.WithContext(ctx).Create(user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return domain.ErrUsernameTaken
		}
		return domain.ErrDatabaseOperation
	}
	return nil
}

// GetByID retrieves a user by ID
func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	result := r.db.WithContext(ctx).First(&user, id)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, domain.ErrDatabaseOperation
	}

	return &user, nil
}

// List retrieves all users in insertion order
func (r *userRepository) List(ctx context.Context) ([]domain.User, error) {
	var users []domain.User
	result := r.db.WithContext(ctx).
		Order("id ASC").
		Find(&users)

	if result.Error != nil {
		return nil, domain.ErrDatabaseOperation
	}

	return users, nil
}

// Exists checks if a user exists
func (r *userRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&domain.User{}).
		Where("id = ?", id).
		Count(&count)

	if result.Error != nil {
		return false, domain.ErrDatabaseOperation
	}

	return count > 0, nil
}
