package domain

import "errors"

var (
	// ErrInvalidUsername is returned when username is empty or missing
	ErrInvalidUsername = errors.New("invalid username")

	// ErrInvalidChannelName is returned when channel name is empty or missing
	ErrInvalidChannelName = errors.New("invalid channel name")

	// ErrInvalidUserID is returned when user ID is invalid
	ErrInvalidUserID = errors.New("invalid user ID")

	// ErrInvalidChannelID is returned when channel ID is invalid
	ErrInvalidChannelID = errors.New("invalid channel ID")

	// ErrUserNotFound is returned when user is not found
	ErrUserNotFound = errors.New("user not found")

	// ErrChannelNotFound is returned when channel is not found
	ErrChannelNotFound = errors.New("channel not found")

	// ErrSubscriptionNotFound is returned when subscription is not found
	ErrSubscriptionNotFound = errors.New("subscription not found")

	// ErrUsernameTaken is returned when username is already registered
	ErrUsernameTaken = errors.New("username already taken")

	// ErrChannelNameTaken is returned when channel name is already in use
	ErrChannelNameTaken = errors.New("channel name already taken")

	// ErrSubscriptionExists is returned when the user is already subscribed to the channel
	ErrSubscriptionExists = errors.New("subscription already exists")

	// ErrPostForbidden is returned when the user is neither owner nor subscriber of the channel
	ErrPostForbidden = errors.New("user is not allowed to post in this channel")

	// ErrDatabaseOperation is returned when database operation fails
	ErrDatabaseOperation = errors.New("database operation failed")
)
