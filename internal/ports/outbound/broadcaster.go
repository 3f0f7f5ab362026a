package outbound

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_broadcaster.go -package=mocks collectioneer/internal/ports/outbound Broadcaster

// EventType represents the type of event being broadcasted
type EventType string

const (
	EventTypeAuctionCreated EventType = "auction.created"
	EventTypeBidPlaced      EventType = "bid.placed"
	EventTypeAuctionClosed  EventType = "auction.closed"
)

// Event represents a broadcast event
type Event struct {
	Type      EventType              `json:"type"`
	AuctionID uuid.UUID              `json:"auction_id"`
	Data      map[string]interface{} `json:"data"`
	Timestamp int64                  `json:"timestamp"`
}

// Broadcaster defines the interface for broadcasting auction events
type Broadcaster interface {
	// Subscribe subscribes a client to events for a specific auction.
	// All auctions a client follows deliver to the same channel, which the
	// caller owns and closes after RemoveClient.
	Subscribe(ctx context.Context, auctionID uuid.UUID, clientID string, eventChan chan Event) error

	// Unsubscribe unsubscribes a client from events for a specific auction
	Unsubscribe(ctx context.Context, auctionID uuid.UUID, clientID string) error

	// Publish publishes an event to all subscribers of an auction
	Publish(ctx context.Context, auctionID uuid.UUID, event Event) error

	// RemoveClient drops every subscription of a client. Once it returns no
	// further event is delivered to the client's channel.
	RemoveClient(ctx context.Context, clientID string) error

	// IsSubscribed checks if a client is subscribed to an auction
	IsSubscribed(ctx context.Context, auctionID uuid.UUID, clientID string) bool
}
