package ws

import (
	"fmt"
	"testing"

	"collectioneer/internal/domain/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestParseClientMessage(t *testing.T) {
	_, err := ParseClientMessage([]byte(`{"type":`))
	require.ErrorIs(t, err, shared.ErrInvalidRequest)

	_, err = ParseClientMessage([]byte(`{"data":{}}`))
	require.ErrorIs(t, err, shared.ErrMessageTypeRequired)

	id := uuid.New()
	msg, err := ParseClientMessage([]byte(fmt.Sprintf(`{"type":"place_bid","auction_id":%q,"data":{"amount":12.5}}`, id)))
	require.NoError(t, err)
	require.Equal(t, MessageTypePlaceBid, msg.Type)
	require.Equal(t, id, *msg.AuctionID)
	require.Equal(t, 12.5, msg.Data["amount"])
}

func TestClientMessage_Validate(t *testing.T) {
	t.Parallel()

	auctionID := uuid.New()
	validCreate := func() map[string]interface{} {
		return map[string]interface{}{
			"community_id":   uuid.NewString(),
			"collectible_id": uuid.NewString(),
			"starting_price": 100.0,
			"deadline":       "2030-01-02T15:04:05Z",
		}
	}
	without := func(key string) map[string]interface{} {
		data := validCreate()
		delete(data, key)
		return data
	}
	with := func(key string, value interface{}) map[string]interface{} {
		data := validCreate()
		data[key] = value
		return data
	}

	tests := []struct {
		name    string
		msg     ClientMessage
		wantErr error
	}{
		{name: "ping", msg: ClientMessage{Type: MessageTypePing}},
		{name: "subscribe", msg: ClientMessage{Type: MessageTypeSubscribe, AuctionID: &auctionID}},
		{name: "subscribe without auction", msg: ClientMessage{Type: MessageTypeSubscribe}, wantErr: shared.ErrAuctionIDRequired},
		{name: "get auction with nil id", msg: ClientMessage{Type: MessageTypeGetAuction, AuctionID: &uuid.Nil}, wantErr: shared.ErrAuctionIDRequired},
		{name: "bid", msg: ClientMessage{Type: MessageTypePlaceBid, AuctionID: &auctionID, Data: map[string]interface{}{"amount": 10.0}}},
		{name: "bid without amount", msg: ClientMessage{Type: MessageTypePlaceBid, AuctionID: &auctionID}, wantErr: shared.ErrInvalidAmount},
		{name: "bid with negative amount", msg: ClientMessage{Type: MessageTypePlaceBid, AuctionID: &auctionID, Data: map[string]interface{}{"amount": -1.0}}, wantErr: shared.ErrInvalidAmount},
		{name: "bid with string amount", msg: ClientMessage{Type: MessageTypePlaceBid, AuctionID: &auctionID, Data: map[string]interface{}{"amount": "10"}}, wantErr: shared.ErrInvalidAmount},
		{name: "create auction", msg: ClientMessage{Type: MessageTypeCreateAuction, Data: validCreate()}},
		{name: "create without community", msg: ClientMessage{Type: MessageTypeCreateAuction, Data: without("community_id")}, wantErr: shared.ErrCommunityIDRequired},
		{name: "create without collectible", msg: ClientMessage{Type: MessageTypeCreateAuction, Data: without("collectible_id")}, wantErr: shared.ErrCollectibleIDRequired},
		{name: "create with malformed collectible", msg: ClientMessage{Type: MessageTypeCreateAuction, Data: with("collectible_id", "abc")}, wantErr: shared.ErrInvalidIDFormat},
		{name: "create without price", msg: ClientMessage{Type: MessageTypeCreateAuction, Data: without("starting_price")}, wantErr: shared.ErrStartingPriceRequired},
		{name: "create without deadline", msg: ClientMessage{Type: MessageTypeCreateAuction, Data: without("deadline")}, wantErr: shared.ErrDeadlineRequired},
		{name: "create with malformed deadline", msg: ClientMessage{Type: MessageTypeCreateAuction, Data: with("deadline", "tomorrow")}, wantErr: shared.ErrInvalidTimeFormat},
		{name: "list", msg: ClientMessage{Type: MessageTypeListAuctions}},
		{name: "list with malformed community", msg: ClientMessage{Type: MessageTypeListAuctions, Data: map[string]interface{}{"community_id": "x"}}, wantErr: shared.ErrInvalidIDFormat},
		{name: "unknown", msg: ClientMessage{Type: "shout"}, wantErr: shared.ErrUnknownMessageType},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := tc.msg.Validate()
			if tc.wantErr == nil {
				require.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestErrorCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		err  error
		want string
	}{
		{err: shared.ErrAuctionNotFound, want: CodeNotFound},
		{err: fmt.Errorf("failed to link: %w", shared.ErrCollectibleNotFound), want: CodeNotFound},
		{err: shared.ErrBidAmountTooLow, want: CodeBidRejected},
		{err: shared.ErrBidBelowStartingPrice, want: CodeBidRejected},
		{err: shared.ErrAuctionClosed, want: CodeAuctionClosed},
		{err: fmt.Errorf("failed to save bid: %w", shared.ErrBidConflict), want: CodeConflict},
		{err: shared.ErrCollectibleAlreadyInAuction, want: CodeCollectibleUnavailable},
		{err: shared.ErrInvalidDeadline, want: CodeInvalidRequest},
		{err: fmt.Errorf("message validation failed: %w", shared.ErrUnknownMessageType), want: CodeInvalidRequest},
		{err: errServerBusy, want: CodeUnavailable},
		{err: fmt.Errorf("connection refused"), want: CodeInternal},
	}

	for _, tc := range tests {
		require.Equal(t, tc.want, ErrorCode(tc.err), tc.err.Error())
	}
}
