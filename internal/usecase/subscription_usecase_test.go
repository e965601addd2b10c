package usecase

import (
	"context"
	"testing"

	"channelboard/internal/domain"
	"channelboard/internal/domain/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// seedChannel registers an owner and a member plus one channel owned by the owner
func seedChannel(t *testing.T, e *env) (owner, member *domain.User, channel *domain.Channel) {
	t.Helper()
	ctx := context.Background()

	owner, err := e.users.RegisterUser(ctx, "alice")
	require.NoError(t, err)
	member, err = e.users.RegisterUser(ctx, "bob")
	require.NoError(t, err)
	channel, err = e.channels.CreateChannel(ctx, "general", owner.ID)
	require.NoError(t, err)
	return owner, member, channel
}

func TestSubscribe(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	_, member, channel := seedChannel(t, e)

	subscription, err := e.subscriptions.Subscribe(ctx, member.ID, channel.ID)

	require.NoError(t, err)
	assert.Equal(t, int64(1), subscription.ID)
	assert.Equal(t, member.ID, subscription.UserID)
	assert.Equal(t, channel.ID, subscription.ChannelID)
	assert.Equal(t, []string{events.SubscriptionCreated}, e.producer.events)
}

func TestSubscribe_InvalidInput(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	_, err := e.subscriptions.Subscribe(ctx, 0, 1)
	assert.ErrorIs(t, err, domain.ErrInvalidUserID)

	_, err = e.subscriptions.Subscribe(ctx, 1, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidChannelID)
}

func TestSubscribe_DuplicatePair(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	_, member, channel := seedChannel(t, e)

	_, err := e.subscriptions.Subscribe(ctx, member.ID, channel.ID)
	require.NoError(t, err)

	_, err = e.subscriptions.Subscribe(ctx, member.ID, channel.ID)
	assert.ErrorIs(t, err, domain.ErrSubscriptionExists)
}

func TestSubscribe_OwnerSelfSubscribe(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	owner, _, channel := seedChannel(t, e)

	// Redundant for authorization but allowed
	_, err := e.subscriptions.Subscribe(ctx, owner.ID, channel.ID)
	require.NoError(t, err)

	_, err = e.subscriptions.Subscribe(ctx, owner.ID, channel.ID)
	assert.ErrorIs(t, err, domain.ErrSubscriptionExists)
}

func TestSubscribe_MissingReferences(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	_, member, channel := seedChannel(t, e)

	_, err := e.subscriptions.Subscribe(ctx, 42, channel.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = e.subscriptions.Subscribe(ctx, member.ID, 42)
	assert.ErrorIs(t, err, domain.ErrChannelNotFound)
}

func TestSubscribe_ProducerFailureDoesNotFailSubscribe(t *testing.T) {
	e := newEnvWithProducer(&fakeProducer{fail: true})
	ctx := context.Background()
	_, member, channel := seedChannel(t, e)

	subscription, err := e.subscriptions.Subscribe(ctx, member.ID, channel.ID)

	require.NoError(t, err)
	assert.NotZero(t, subscription.ID)
}

func TestUnsubscribe(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	_, member, channel := seedChannel(t, e)

	_, err := e.subscriptions.Subscribe(ctx, member.ID, channel.ID)
	require.NoError(t, err)

	err = e.subscriptions.Unsubscribe(ctx, member.ID, channel.ID)
	require.NoError(t, err)

	subscribed, err := e.subscriptions.IsSubscribed(ctx, member.ID, channel.ID)
	require.NoError(t, err)
	assert.False(t, subscribed)

	assert.Equal(t, []string{events.SubscriptionCreated, events.SubscriptionDeleted}, e.producer.events)
}

func TestUnsubscribe_NotFound(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	_, member, channel := seedChannel(t, e)

	// Never subscribed: a reported failure, not a silent success
	err := e.subscriptions.Unsubscribe(ctx, member.ID, channel.ID)
	assert.ErrorIs(t, err, domain.ErrSubscriptionNotFound)
}

func TestUnsubscribe_NotIdempotent(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	_, member, channel := seedChannel(t, e)

	_, err := e.subscriptions.Subscribe(ctx, member.ID, channel.ID)
	require.NoError(t, err)

	require.NoError(t, e.subscriptions.Unsubscribe(ctx, member.ID, channel.ID))

	err = e.subscriptions.Unsubscribe(ctx, member.ID, channel.ID)
	assert.ErrorIs(t, err, domain.ErrSubscriptionNotFound)
}

func TestGetChannelSubscribers(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	_, member, channel := seedChannel(t, e)

	carol, err := e.users.RegisterUser(ctx, "carol")
	require.NoError(t, err)

	_, err = e.subscriptions.Subscribe(ctx, member.ID, channel.ID)
	require.NoError(t, err)
	_, err = e.subscriptions.Subscribe(ctx, carol.ID, channel.ID)
	require.NoError(t, err)

	subscribers, err := e.subscriptions.GetChannelSubscribers(ctx, channel.ID)
	require.NoError(t, err)
	assert.Equal(t, []int64{member.ID, carol.ID}, subscribers)
}

func TestGetUserSubscriptions(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	owner, member, channel := seedChannel(t, e)

	other, err := e.channels.CreateChannel(ctx, "random", owner.ID)
	require.NoError(t, err)

	_, err = e.subscriptions.Subscribe(ctx, member.ID, channel.ID)
	require.NoError(t, err)
	_, err = e.subscriptions.Subscribe(ctx, member.ID, other.ID)
	require.NoError(t, err)

	subscriptions, err := e.subscriptions.GetUserSubscriptions(ctx, member.ID)
	require.NoError(t, err)
	require.Len(t, subscriptions, 2)
	assert.Equal(t, channel.ID, subscriptions[0].ChannelID)
	assert.Equal(t, other.ID, subscriptions[1].ChannelID)
}
