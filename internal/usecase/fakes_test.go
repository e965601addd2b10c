package usecase

import (
	"context"
	"sync"
	"time"

	"channelboard/internal/domain"

	"github.com/rs/zerolog"
)

func nopLogger() zerolog.Logger {
	return zerolog.Nop()
}

// memStore is an in-memory stand-in for the Postgres store. It enforces the
// same uniqueness constraints the schema does, so the usecases see the same
// sentinel errors they would in production.
type memStore struct {
	mu sync.Mutex

	users       map[int64]domain.User
	usersByName map[string]int64
	nextUserID  int64

	channels       map[int64]domain.Channel
	channelsByName map[string]int64
	nextChannelID  int64

	subs       map[int64]domain.Subscription
	subByPair  map[[2]int64]int64
	nextSubID  int64

	messages      []domain.Message
	nextMessageID int64
}

func newMemStore() *memStore {
	return &memStore{
		users:          make(map[int64]domain.User),
		usersByName:    make(map[string]int64),
		channels:       make(map[int64]domain.Channel),
		channelsByName: make(map[string]int64),
		subs:           make(map[int64]domain.Subscription),
		subByPair:      make(map[[2]int64]int64),
	}
}

type fakeUserRepo struct{ s *memStore }

func (r *fakeUserRepo) Create(_ context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, taken := r.s.usersByName[user.Username]; taken {
		return domain.ErrUsernameTaken
	}

	r.s.nextUserID++
	user.ID = r.s.nextUserID
	user.CreatedAt = time.Now()
	r.s.users[user.ID] = *user
	r.s.usersByName[user.Username] = user.ID
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	user, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]domain.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	users := make([]domain.User, 0, len(r.s.users))
	for id := int64(1); id <= r.s.nextUserID; id++ {
		if user, ok := r.s.users[id]; ok {
			users = append(users, user)
		}
	}
	return users, nil
}

func (r *fakeUserRepo) Exists(_ context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	_, ok := r.s.users[id]
	return ok, nil
}

type fakeChannelRepo struct{ s *memStore }

func (r *fakeChannelRepo) Create(_ context.Context, channel *domain.Channel) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, taken := r.s.channelsByName[channel.Name]; taken {
		return domain.ErrChannelNameTaken
	}

	r.s.nextChannelID++
	channel.ID = r.s.nextChannelID
	channel.CreatedAt = time.Now()
	r.s.channels[channel.ID] = *channel
	r.s.channelsByName[channel.Name] = channel.ID
	return nil
}

func (r *fakeChannelRepo) GetByID(_ context.Context, id int64) (*domain.Channel, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	channel, ok := r.s.channels[id]
	if !ok {
		return nil, domain.ErrChannelNotFound
	}
	return &channel, nil
}

func (r *fakeChannelRepo) List(_ context.Context) ([]domain.Channel, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	channels := make([]domain.Channel, 0, len(r.s.channels))
	for id := int64(1); id <= r.s.nextChannelID; id++ {
		if channel, ok := r.s.channels[id]; ok {
			channels = append(channels, channel)
		}
	}
	return channels, nil
}

func (r *fakeChannelRepo) Exists(_ context.Context, id int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	_, ok := r.s.channels[id]
	return ok, nil
}

type fakeSubscriptionRepo struct{ s *memStore }

func (r *fakeSubscriptionRepo) Create(_ context.Context, subscription *domain.Subscription) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	pair := [2]int64{subscription.UserID, subscription.ChannelID}
	if _, taken := r.s.subByPair[pair]; taken {
		return domain.ErrSubscriptionExists
	}

	r.s.nextSubID++
	subscription.ID = r.s.nextSubID
	subscription.CreatedAt = time.Now()
	r.s.subs[subscription.ID] = *subscription
	r.s.subByPair[pair] = subscription.ID
	return nil
}

func (r *fakeSubscriptionRepo) Delete(_ context.Context, userID, channelID int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	pair := [2]int64{userID, channelID}
	id, ok := r.s.subByPair[pair]
	if !ok {
		return domain.ErrSubscriptionNotFound
	}

	delete(r.s.subByPair, pair)
	delete(r.s.subs, id)
	return nil
}

func (r *fakeSubscriptionRepo) Exists(_ context.Context, userID, channelID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	_, ok := r.s.subByPair[[2]int64{userID, channelID}]
	return ok, nil
}

func (r *fakeSubscriptionRepo) GetByUserID(_ context.Context, userID int64) ([]domain.Subscription, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var subscriptions []domain.Subscription
	for id := int64(1); id <= r.s.nextSubID; id++ {
		if sub, ok := r.s.subs[id]; ok && sub.UserID == userID {
			subscriptions = append(subscriptions, sub)
		}
	}
	return subscriptions, nil
}

func (r *fakeSubscriptionRepo) GetByChannelID(_ context.Context, channelID int64) ([]domain.Subscription, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var subscriptions []domain.Subscription
	for id := int64(1); id <= r.s.nextSubID; id++ {
		if sub, ok := r.s.subs[id]; ok && sub.ChannelID == channelID {
			subscriptions = append(subscriptions, sub)
		}
	}
	return subscriptions, nil
}

type fakeMessageRepo struct{ s *memStore }

func (r *fakeMessageRepo) Create(_ context.Context, message *domain.Message) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	r.s.nextMessageID++
	message.ID = r.s.nextMessageID
	message.CreatedAt = time.Now()
	r.s.messages = append(r.s.messages, *message)
	return nil
}

func (r *fakeMessageRepo) GetByChannelID(_ context.Context, channelID int64) ([]domain.Message, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	var messages []domain.Message
	for _, msg := range r.s.messages {
		if msg.ChannelID == channelID {
			messages = append(messages, msg)
		}
	}
	return messages, nil
}

// fakePermissionRepo evaluates ownership and membership against the store
// under one lock, mirroring the single-statement query of the real one.
type fakePermissionRepo struct{ s *memStore }

func (r *fakePermissionRepo) CanPost(_ context.Context, userID, channelID int64) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	channel, ok := r.s.channels[channelID]
	if !ok {
		return false, domain.ErrChannelNotFound
	}

	if channel.OwnerID == userID {
		return true, nil
	}

	_, subscribed := r.s.subByPair[[2]int64{userID, channelID}]
	return subscribed, nil
}

// fakeProducer records published events
type fakeProducer struct {
	mu     sync.Mutex
	events []string
	fail   bool
}

func (p *fakeProducer) NotifySubscription(_ context.Context, eventType string, _ *domain.Subscription) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.fail {
		return domain.ErrDatabaseOperation
	}
	p.events = append(p.events, eventType)
	return nil
}

func (p *fakeProducer) NotifyMessage(_ context.Context, _ *domain.Message) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.fail {
		return domain.ErrDatabaseOperation
	}
	p.events = append(p.events, "message.posted")
	return nil
}

func (p *fakeProducer) Close() error { return nil }

// env bundles the usecases over one shared in-memory store
type env struct {
	store    *memStore
	producer *fakeProducer

	users         domain.UserUseCase
	channels      domain.ChannelUseCase
	subscriptions domain.SubscriptionUseCase
	messages      domain.MessageUseCase
}

func newEnv() *env {
	return newEnvWithProducer(&fakeProducer{})
}

func newEnvWithProducer(producer *fakeProducer) *env {
	store := newMemStore()
	log := nopLogger()

	userRepo := &fakeUserRepo{s: store}
	channelRepo := &fakeChannelRepo{s: store}
	subRepo := &fakeSubscriptionRepo{s: store}
	msgRepo := &fakeMessageRepo{s: store}
	permRepo := &fakePermissionRepo{s: store}

	return &env{
		store:         store,
		producer:      producer,
		users:         NewUserUseCase(userRepo, log),
		channels:      NewChannelUseCase(channelRepo, userRepo, log),
		subscriptions: NewSubscriptionUseCase(subRepo, userRepo, channelRepo, producer, log),
		messages:      NewMessageUseCase(msgRepo, userRepo, permRepo, producer, log),
	}
}
