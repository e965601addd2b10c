package kafka

import (
	"context"
	"strconv"

	"channelboard/config"
	"channelboard/internal/domain"
	"channelboard/internal/domain/events"
)

// ProducerAdapter implements domain.EventProducer on top of the Kafka producer
type ProducerAdapter struct {
	producer          *Producer
	subscriptionTopic string
	messageTopic      string
}

func NewProducerAdapter(producer *Producer, cfg *config.KafkaConfig) *ProducerAdapter {
	return &ProducerAdapter{
		producer:          producer,
		subscriptionTopic: cfg.SubscriptionTopic,
		messageTopic:      cfg.MessageTopic,
	}
}

func (a *ProducerAdapter) NotifySubscription(
	ctx context.Context,
	eventType string,
	subscription *domain.Subscription,
) error {
	event := &events.SubscriptionEvent{
		Type:      eventType,
		UserID:    subscription.UserID,
		ChannelID: subscription.ChannelID,
	}

	// Key by channel so events for one channel stay ordered
	key := strconv.FormatInt(subscription.ChannelID, 10)

	return a.producer.SendToTopic(ctx, a.subscriptionTopic, key, event)
}

func (a *ProducerAdapter) NotifyMessage(ctx context.Context, message *domain.Message) error {
	event := &events.MessageEvent{
		Type:      events.MessagePosted,
		MessageID: message.ID,
		UserID:    message.UserID,
		ChannelID: message.ChannelID,
		PostedAt:  message.CreatedAt,
	}

	key := strconv.FormatInt(message.ChannelID, 10)

	return a.producer.SendToTopic(ctx, a.messageTopic, key, event)
}

func (a *ProducerAdapter) Close() error {
	return a.producer.Close()
}
