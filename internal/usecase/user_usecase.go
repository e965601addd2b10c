package usecase

import (
	"context"
	"strings"

	"channelboard/internal/domain"

	"github.com/rs/zerolog"
)

// userUseCase implements domain.UserUseCase
type userUseCase struct {
	repo   domain.UserRepository
	logger zerolog.Logger
}

// NewUserUseCase creates a new user use case
func NewUserUseCase(repo domain.UserRepository, logger zerolog.Logger) domain.UserUseCase {
	return &userUseCase{
		repo:   repo,
		logger: logger,
	}
}

// RegisterUser registers a new user. Username uniqueness is enforced by the
// store's constraint, not by a check-then-insert.
func (u *userUseCase) RegisterUser(ctx context.Context, username string) (*domain.User, error) {
	if strings.TrimSpace(username) == "" {
		return nil, domain.ErrInvalidUsername
	}

	user := &domain.User{
		Username: username,
	}

	if err := u.repo.Create(ctx, user); err != nil {
		u.logger.Error().Err(err).
			Str("username", username).
			Msg("failed to create user")
		return nil, err
	}

	u.logger.Info().
		Int64("user_id", user.ID).
		Str("username", username).
		Msg("user registered successfully")

	return user, nil
}

// GetUser retrieves a user by ID
func (u *userUseCase) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	if id <= 0 {
		return nil, domain.ErrInvalidUserID
	}

	user, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return user, nil
}

// ListUsers retrieves all users
func (u *userUseCase) ListUsers(ctx context.Context) ([]domain.User, error) {
	users, err := u.repo.List(ctx)
	if err != nil {
		u.logger.Error().Err(err).Msg("failed to list users")
		return nil, err
	}

	if users == nil {
		users = []domain.User{}
	}

	return users, nil
}
