package domain

import (
	"time"
)

// User represents a registered user
type User struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"not null;uniqueIndex" json:"username"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

// Channel represents a message channel with a single owner
type Channel struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;uniqueIndex" json:"name"`
	OwnerID   int64     `gorm:"not null;index" json:"ownerId"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// TableName returns the table name for Channel
func (Channel) TableName() string {
	return "channels"
}

// Subscription represents an active membership of a user in a channel
type Subscription struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	UserID    int64     `gorm:"not null;index:idx_user_channel,unique" json:"userId"`
	ChannelID int64     `gorm:"not null;index:idx_user_channel,unique;index:idx_channel" json:"channelId"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// TableName returns the table name for Subscription
func (Subscription) TableName() string {
	return "subscriptions"
}

// Message is an immutable record of a post into a channel.
// CreatedAt is assigned by the server at insertion time, never by the caller.
type Message struct {
	ID        int64     `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"column:message_text;not null" json:"text"`
	UserID    int64     `gorm:"not null;index" json:"userId"`
	ChannelID int64     `gorm:"not null;index" json:"channelId"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// TableName returns the table name for Message
func (Message) TableName() string {
	return "messages"
}
