package broadcaster

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"collectioneer/internal/ports/outbound"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// ChannelName returns the Redis pub/sub channel carrying the events of an auction
func ChannelName(auctionID uuid.UUID) string {
	return fmt.Sprintf("auction:%s", auctionID.String())
}

// subscription is the Redis connection of one client. Its listener forwards
// every message to the client's event channel until the pubsub is closed.
type subscription struct {
	pubsub   *redis.PubSub
	events   chan outbound.Event
	auctions map[uuid.UUID]struct{}
	done     chan struct{}
}

// RedisBroadcaster implements the broadcaster interface using Redis pub/sub
type RedisBroadcaster struct {
	client        *redis.Client
	subscriptions map[string]*subscription // clientID -> subscription
	mu            sync.RWMutex
	now           func() time.Time
	logger        zerolog.Logger
}

type RedisBroadcasterParams struct {
	RedisClient *redis.Client
	Now         func() time.Time
	Logger      zerolog.Logger
}

func NewBroadcaster(params RedisBroadcasterParams) *RedisBroadcaster {
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &RedisBroadcaster{
		client:        params.RedisClient,
		subscriptions: make(map[string]*subscription),
		now:           now,
		logger:        params.Logger.With().Str("component", "redis_broadcaster").Logger(),
	}
}

// Subscribe subscribes a client to events for a specific auction
func (r *RedisBroadcaster) Subscribe(ctx context.Context, auctionID uuid.UUID, clientID string, eventChan chan outbound.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sub, exists := r.subscriptions[clientID]
	if exists {
		if _, ok := sub.auctions[auctionID]; ok {
			r.logger.Debug().
				Str("client_id", clientID).
				Str("auction_id", auctionID.String()).
				Msg("Client already subscribed to auction")
			return nil
		}
		// Subscribe the existing connection to an additional channel
		if err := sub.pubsub.Subscribe(ctx, ChannelName(auctionID)); err != nil {
			r.logger.Error().Err(err).Str("client_id", clientID).Str("auction_id", auctionID.String()).Msg("Failed to subscribe to Redis channel")
			return fmt.Errorf("failed to subscribe to auction %s: %w", auctionID, err)
		}
	} else {
		pubsub := r.client.Subscribe(ctx, ChannelName(auctionID))
		// Wait for the confirmation so no event published after we return is missed
		if _, err := pubsub.Receive(ctx); err != nil {
			_ = pubsub.Close()
			r.logger.Error().Err(err).Str("client_id", clientID).Str("auction_id", auctionID.String()).Msg("Failed to subscribe to Redis channel")
			return fmt.Errorf("failed to subscribe to auction %s: %w", auctionID, err)
		}

		sub = &subscription{
			pubsub:   pubsub,
			events:   eventChan,
			auctions: make(map[uuid.UUID]struct{}),
			done:     make(chan struct{}),
		}
		r.subscriptions[clientID] = sub
		go r.listen(sub, clientID)
	}
	sub.auctions[auctionID] = struct{}{}

	r.logger.Info().
		Str("client_id", clientID).
		Str("auction_id", auctionID.String()).
		Msg("Client subscribed to auction via Redis")
	return nil
}

// Unsubscribe unsubscribes a client from events for a specific auction. The
// client's Redis connection is released with its last auction.
func (r *RedisBroadcaster) Unsubscribe(ctx context.Context, auctionID uuid.UUID, clientID string) error {
	r.mu.Lock()
	sub, exists := r.subscriptions[clientID]
	if !exists {
		r.mu.Unlock()
		return nil
	}
	if _, ok := sub.auctions[auctionID]; !ok {
		r.mu.Unlock()
		return nil
	}
	delete(sub.auctions, auctionID)

	if len(sub.auctions) > 0 {
		defer r.mu.Unlock()
		if err := sub.pubsub.Unsubscribe(ctx, ChannelName(auctionID)); err != nil {
			r.logger.Error().Err(err).Str("client_id", clientID).Str("auction_id", auctionID.String()).Msg("Error unsubscribing from Redis channel")
			return fmt.Errorf("failed to unsubscribe from auction %s: %w", auctionID, err)
		}
		r.logger.Info().Str("client_id", clientID).Str("auction_id", auctionID.String()).Msg("Client unsubscribed from auction")
		return nil
	}

	delete(r.subscriptions, clientID)
	r.mu.Unlock()

	r.logger.Info().Str("client_id", clientID).Str("auction_id", auctionID.String()).Msg("Client unsubscribed from auction")
	return r.release(ctx, clientID, sub)
}

// RemoveClient drops every subscription of a client and waits for its
// listener to stop
func (r *RedisBroadcaster) RemoveClient(ctx context.Context, clientID string) error {
	r.mu.Lock()
	sub, exists := r.subscriptions[clientID]
	delete(r.subscriptions, clientID)
	r.mu.Unlock()

	if !exists {
		return nil
	}
	return r.release(ctx, clientID, sub)
}

func (r *RedisBroadcaster) release(ctx context.Context, clientID string, sub *subscription) error {
	if err := sub.pubsub.Close(); err != nil {
		r.logger.Error().Err(err).Str("client_id", clientID).Msg("Error closing Redis pubsub for client")
	}

	select {
	case <-sub.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Publish publishes an event to all subscribers of an auction via Redis
func (r *RedisBroadcaster) Publish(ctx context.Context, auctionID uuid.UUID, event outbound.Event) error {
	if event.Timestamp == 0 {
		event.Timestamp = r.now().Unix()
	}
	event.AuctionID = auctionID

	eventJSON, err := json.Marshal(event)
	if err != nil {
		r.logger.Error().Err(err).Msg("Failed to marshal event")
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	result := r.client.Publish(ctx, ChannelName(auctionID), eventJSON)
	if err := result.Err(); err != nil {
		r.logger.Error().Err(err).Str("auction_id", auctionID.String()).Msg("Failed to publish to Redis")
		return fmt.Errorf("failed to publish to Redis: %w", err)
	}

	r.logger.Debug().
		Str("event_type", string(event.Type)).
		Str("auction_id", auctionID.String()).
		Int64("subscriber_count", result.Val()).
		Msg("Published event to auction")

	return nil
}

// IsSubscribed checks if a client is subscribed to an auction
func (r *RedisBroadcaster) IsSubscribed(ctx context.Context, auctionID uuid.UUID, clientID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sub, exists := r.subscriptions[clientID]
	if !exists {
		return false
	}
	_, ok := sub.auctions[auctionID]
	return ok
}

// Close releases every client subscription. The Redis client is left open
// for its other users.
func (r *RedisBroadcaster) Close(ctx context.Context) error {
	r.mu.Lock()
	subs := r.subscriptions
	r.subscriptions = make(map[string]*subscription)
	r.mu.Unlock()

	for clientID, sub := range subs {
		if err := r.release(ctx, clientID, sub); err != nil {
			return err
		}
	}
	return nil
}

// listen forwards Redis messages to the client's event channel. A slow client
// loses events rather than blocking the others.
func (r *RedisBroadcaster) listen(sub *subscription, clientID string) {
	defer close(sub.done)

	for msg := range sub.pubsub.Channel() {
		var event outbound.Event
		if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
			r.logger.Error().Err(err).Str("client_id", clientID).Msg("Failed to unmarshal Redis message for client")
			continue
		}

		select {
		case sub.events <- event:
		default:
			r.logger.Warn().
				Str("client_id", clientID).
				Str("event_type", string(event.Type)).
				Msg("Local channel full for client, dropping event")
		}
	}

	r.logger.Debug().Str("client_id", clientID).Msg("Redis listener stopped for client")
}
