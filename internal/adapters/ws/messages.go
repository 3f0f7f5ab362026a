package ws

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"collectioneer/internal/domain/auction"
	"collectioneer/internal/domain/shared"

	"github.com/google/uuid"
)

type MessageType string

const (
	// Client to Server message types
	MessageTypeSubscribe     MessageType = "subscribe"
	MessageTypeUnsubscribe   MessageType = "unsubscribe"
	MessageTypePlaceBid      MessageType = "place_bid"
	MessageTypeCreateAuction MessageType = "create_auction"
	MessageTypeGetAuction    MessageType = "get_auction"
	MessageTypeListAuctions  MessageType = "list_auctions"
	MessageTypePing          MessageType = "ping"

	// Server to Client message types
	MessageTypeBidPlaced      MessageType = "bid_placed"
	MessageTypeAuctionClosed  MessageType = "auction_closed"
	MessageTypeAuctionUpdate  MessageType = "auction_update"
	MessageTypeAuctionCreated MessageType = "auction_created"
	MessageTypeError          MessageType = "error"
	MessageTypePong           MessageType = "pong"
)

// Error codes carried by error messages
const (
	CodeInvalidRequest         = "invalid_request"
	CodeNotFound               = "not_found"
	CodeBidRejected            = "bid_rejected"
	CodeAuctionClosed          = "auction_closed"
	CodeConflict               = "conflict"
	CodeCollectibleUnavailable = "collectible_unavailable"
	CodeUnavailable            = "unavailable"
	CodeInternal               = "internal_error"
)

type ClientMessage struct {
	Type      MessageType            `json:"type"`
	AuctionID *uuid.UUID             `json:"auction_id,omitempty"`
	Data      map[string]interface{} `json:"data,omitempty"`
	Timestamp int64                  `json:"timestamp"`
}

// ServerMessage represents a message sent from server to client
type ServerMessage struct {
	Type      MessageType            `json:"type"`
	AuctionID *uuid.UUID             `json:"auction_id,omitempty"`
	Data      map[string]interface{} `json:"data,omitempty"`
	Error     *string                `json:"error,omitempty"`
	Code      string                 `json:"code,omitempty"`
	Timestamp int64                  `json:"timestamp"`
}

func NewServerMessage(msgType MessageType) *ServerMessage {
	return &ServerMessage{
		Type:      msgType,
		Data:      make(map[string]interface{}),
		Timestamp: time.Now().Unix(),
	}
}

// NewErrorMessage reports err to the client with the code matching its kind
func NewErrorMessage(err error, auctionID *uuid.UUID) *ServerMessage {
	text := err.Error()
	return &ServerMessage{
		Type:      MessageTypeError,
		AuctionID: auctionID,
		Error:     &text,
		Code:      ErrorCode(err),
		Timestamp: time.Now().Unix(),
	}
}

// ErrorCode classifies an error for clients
func ErrorCode(err error) string {
	switch {
	case errors.Is(err, shared.ErrEntityNotFound):
		return CodeNotFound
	case errors.Is(err, shared.ErrBidAmountTooLow),
		errors.Is(err, shared.ErrBidBelowStartingPrice),
		errors.Is(err, shared.ErrBidAmountInvalid):
		return CodeBidRejected
	case errors.Is(err, shared.ErrAuctionClosed),
		errors.Is(err, shared.ErrAuctionAlreadyClosed):
		return CodeAuctionClosed
	case errors.Is(err, shared.ErrBidConflict):
		return CodeConflict
	case errors.Is(err, shared.ErrCollectibleAlreadyInAuction):
		return CodeCollectibleUnavailable
	case errors.Is(err, errServerBusy):
		return CodeUnavailable
	case errors.Is(err, shared.ErrInvalidRequest),
		errors.Is(err, shared.ErrInvalidStartingPrice),
		errors.Is(err, shared.ErrInvalidDeadline),
		errors.Is(err, shared.ErrInvalidTimeFormat),
		errors.Is(err, shared.ErrMessageTypeRequired),
		errors.Is(err, shared.ErrAuctionIDRequired),
		errors.Is(err, shared.ErrInvalidAmount),
		errors.Is(err, shared.ErrCommunityIDRequired),
		errors.Is(err, shared.ErrCollectibleIDRequired),
		errors.Is(err, shared.ErrDeadlineRequired),
		errors.Is(err, shared.ErrStartingPriceRequired),
		errors.Is(err, shared.ErrUnknownMessageType),
		errors.Is(err, shared.ErrInvalidIDFormat):
		return CodeInvalidRequest
	default:
		return CodeInternal
	}
}

// NewAuctionMessage describes an auction as seen at now
func NewAuctionMessage(msgType MessageType, a *auction.Auction, now time.Time) *ServerMessage {
	msg := NewServerMessage(msgType)
	msg.AuctionID = &a.ID
	msg.Data["auction_id"] = a.ID
	msg.Data["community_id"] = a.CommunityID
	msg.Data["auctioneer_id"] = a.AuctioneerID
	msg.Data["collectible_id"] = a.CollectibleID
	msg.Data["starting_price"] = a.StartingPrice
	msg.Data["current_price"] = a.CurrentPrice
	msg.Data["deadline"] = a.Deadline.Format(time.RFC3339)
	msg.Data["state"] = a.StateAt(now)
	if a.WinnerID != nil {
		msg.Data["winner_id"] = a.WinnerID
	}
	return msg
}

func (m *ClientMessage) validateAuctionID() error {
	if m.AuctionID == nil || *m.AuctionID == uuid.Nil {
		return shared.ErrAuctionIDRequired
	}
	return nil
}

// ParseClientMessage parses a JSON message from client
func ParseClientMessage(data []byte) (*ClientMessage, error) {
	var msg ClientMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return nil, fmt.Errorf("failed to parse client message: %v: %w", err, shared.ErrInvalidRequest)
	}

	if msg.Type == "" {
		return nil, shared.ErrMessageTypeRequired
	}

	return &msg, nil
}

// Validate validates a client message
func (m *ClientMessage) Validate() error {
	switch m.Type {
	case MessageTypeSubscribe, MessageTypeUnsubscribe, MessageTypeGetAuction:
		return m.validateAuctionID()
	case MessageTypePlaceBid:
		if err := m.validateAuctionID(); err != nil {
			return err
		}
		if _, err := m.amount(); err != nil {
			return err
		}
	case MessageTypeCreateAuction:
		if _, err := m.uuidField("community_id", shared.ErrCommunityIDRequired); err != nil {
			return err
		}
		if _, err := m.uuidField("collectible_id", shared.ErrCollectibleIDRequired); err != nil {
			return err
		}
		if _, ok := m.Data["starting_price"].(float64); !ok {
			return shared.ErrStartingPriceRequired
		}
		if _, err := m.deadline(); err != nil {
			return err
		}
	case MessageTypeListAuctions:
		if _, ok := m.Data["community_id"]; ok {
			if _, err := m.uuidField("community_id", shared.ErrCommunityIDRequired); err != nil {
				return err
			}
		}
	case MessageTypePing:

	default:
		return shared.ErrUnknownMessageType
	}

	return nil
}

func (m *ClientMessage) amount() (float64, error) {
	amount, ok := m.Data["amount"].(float64)
	if !ok || amount <= 0 {
		return 0, shared.ErrInvalidAmount
	}
	return amount, nil
}

func (m *ClientMessage) uuidField(key string, missing error) (uuid.UUID, error) {
	raw, ok := m.Data[key].(string)
	if !ok || raw == "" {
		return uuid.Nil, missing
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%s: %w", key, shared.ErrInvalidIDFormat)
	}
	return id, nil
}

func (m *ClientMessage) deadline() (time.Time, error) {
	raw, ok := m.Data["deadline"].(string)
	if !ok || raw == "" {
		return time.Time{}, shared.ErrDeadlineRequired
	}
	deadline, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, shared.ErrInvalidTimeFormat
	}
	return deadline, nil
}

func (m *ClientMessage) intField(key string) int {
	if v, ok := m.Data[key].(float64); ok {
		return int(v)
	}
	return 0
}
