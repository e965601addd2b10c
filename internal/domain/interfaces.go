package domain

import "context"

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create persists a new user; duplicate username fails with ErrUsernameTaken
	Create(ctx context.Context, user *User) error

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id int64) (*User, error)

	// List retrieves all users in insertion order
	List(ctx context.Context) ([]User, error)

	// Exists checks if a user exists
	Exists(ctx context.Context, id int64) (bool, error)
}

// ChannelRepository defines the interface for channel data access
type ChannelRepository interface {
	// Create persists a new channel; duplicate name fails with ErrChannelNameTaken
	Create(ctx context.Context, channel *Channel) error

	// GetByID retrieves a channel by ID
	GetByID(ctx context.Context, id int64) (*Channel, error)

	// List retrieves all channels in insertion order
	List(ctx context.Context) ([]Channel, error)

	// Exists checks if a channel exists
	Exists(ctx context.Context, id int64) (bool, error)
}

// SubscriptionRepository defines the interface for subscription data access
type SubscriptionRepository interface {
	// Create persists a new subscription; duplicate pair fails with ErrSubscriptionExists
	Create(ctx context.Context, subscription *Subscription) error

	// Delete removes a subscription; missing pair fails with ErrSubscriptionNotFound
	Delete(ctx context.Context, userID, channelID int64) error

	// Exists checks if subscription exists
	Exists(ctx context.Context, userID, channelID int64) (bool, error)

	// GetByUserID retrieves all subscriptions for a user
	GetByUserID(ctx context.Context, userID int64) ([]Subscription, error)

	// GetByChannelID retrieves all subscriptions for a channel
	GetByChannelID(ctx context.Context, channelID int64) ([]Subscription, error)
}

// MessageRepository defines the interface for message data access
type MessageRepository interface {
	// Create appends a message record, assigning the server timestamp
	Create(ctx context.Context, message *Message) error

	// GetByChannelID retrieves all messages of a channel in insertion order
	GetByChannelID(ctx context.Context, channelID int64) ([]Message, error)
}

// PermissionRepository decides posting eligibility against a consistent view
// of ownership and membership.
type PermissionRepository interface {
	// CanPost reports whether the user owns the channel or holds an active
	// subscription. Fails with ErrChannelNotFound when the channel is missing,
	// so callers can tell "channel missing" from "not permitted".
	CanPost(ctx context.Context, userID, channelID int64) (bool, error)
}

// UserUseCase defines the business logic interface for user operations
type UserUseCase interface {
	// RegisterUser registers a new user
	RegisterUser(ctx context.Context, username string) (*User, error)

	// GetUser retrieves a user by ID
	GetUser(ctx context.Context, id int64) (*User, error)

	// ListUsers retrieves all users
	ListUsers(ctx context.Context) ([]User, error)
}

// ChannelUseCase defines the business logic interface for channel operations
type ChannelUseCase interface {
	// CreateChannel creates a new channel owned by an existing user
	CreateChannel(ctx context.Context, name string, ownerID int64) (*Channel, error)

	// GetChannel retrieves a channel by ID
	GetChannel(ctx context.Context, id int64) (*Channel, error)

	// ListChannels retrieves all channels
	ListChannels(ctx context.Context) ([]Channel, error)
}

// SubscriptionUseCase defines the business logic interface for subscription operations
type SubscriptionUseCase interface {
	// Subscribe creates a new subscription
	Subscribe(ctx context.Context, userID, channelID int64) (*Subscription, error)

	// Unsubscribe deletes a subscription; missing pair is a reported failure
	Unsubscribe(ctx context.Context, userID, channelID int64) error

	// IsSubscribed checks if a user holds an active subscription
	IsSubscribed(ctx context.Context, userID, channelID int64) (bool, error)

	// GetUserSubscriptions retrieves all subscriptions for a user
	GetUserSubscriptions(ctx context.Context, userID int64) ([]Subscription, error)

	// GetChannelSubscribers retrieves all users subscribed to a channel
	GetChannelSubscribers(ctx context.Context, channelID int64) ([]int64, error)
}

// MessageUseCase defines the business logic interface for message operations
type MessageUseCase interface {
	// PostMessage appends a message after the user, channel and permission checks
	PostMessage(ctx context.Context, text string, userID, channelID int64) (*Message, error)

	// ListMessages retrieves all messages of a channel
	ListMessages(ctx context.Context, channelID int64) ([]Message, error)

	// CanPost reports posting eligibility for a user in a channel
	CanPost(ctx context.Context, userID, channelID int64) (bool, error)
}

// EventProducer defines interface for publishing domain events
type EventProducer interface {
	// NotifySubscription publishes a subscription lifecycle event
	NotifySubscription(ctx context.Context, eventType string, subscription *Subscription) error

	// NotifyMessage publishes a message posted event
	NotifyMessage(ctx context.Context, message *Message) error

	// Close closes the producer
	Close() error
}
