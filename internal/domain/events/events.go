package events

import "time"

const (
	SubscriptionCreated = "subscription.created"
	SubscriptionDeleted = "subscription.deleted"
	MessagePosted       = "message.posted"
)

type SubscriptionEvent struct {
	Type      string `json:"type"`
	UserID    int64  `json:"user_id"`
	ChannelID int64  `json:"channel_id"`
}

type MessageEvent struct {
	Type      string    `json:"type"`
	MessageID int64     `json:"message_id"`
	UserID    int64     `json:"user_id"`
	ChannelID int64     `json:"channel_id"`
	PostedAt  time.Time `json:"posted_at"`
}
