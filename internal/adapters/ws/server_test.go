package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"collectioneer/internal/adapters/broadcaster"
	"collectioneer/internal/config"
	"collectioneer/internal/domain/shared"
	inmocks "collectioneer/internal/ports/inbound/mocks"
	"collectioneer/internal/ports/outbound"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

type serverFixture struct {
	server      *Server
	http        *httptest.Server
	auctions    *inmocks.MockAuctionService
	broadcaster *broadcaster.RedisBroadcaster
}

func newServerFixture(t *testing.T) *serverFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	f := &serverFixture{
		auctions: inmocks.NewMockAuctionService(ctrl),
		broadcaster: broadcaster.NewBroadcaster(broadcaster.RedisBroadcasterParams{
			RedisClient: client,
			Logger:      zerolog.Nop(),
		}),
	}
	f.server = NewServer(ServerParams{
		Config:         &config.Config{},
		AuctionService: f.auctions,
		Broadcaster:    f.broadcaster,
		Logger:         zerolog.Nop(),
	})
	f.http = httptest.NewServer(f.server.Routes())
	t.Cleanup(func() {
		f.http.Close()
		f.server.handler.disconnectAll()
		_ = f.broadcaster.Close(context.Background())
	})
	return f
}

func (f *serverFixture) dial(t *testing.T, userID uuid.UUID) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(f.http.URL, "http") + "/ws?user_id=" + userID.String()
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	require.Equal(t, http.StatusSwitchingProtocols, resp.StatusCode)
	return conn
}

func send(t *testing.T, conn *websocket.Conn, msg map[string]interface{}) {
	t.Helper()
	require.NoError(t, conn.WriteJSON(msg))
}

func receive(t *testing.T, conn *websocket.Conn) ServerMessage {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	var msg ServerMessage
	require.NoError(t, conn.ReadJSON(&msg))
	return msg
}

func TestServer_Exchange(t *testing.T) {
	f := newServerFixture(t)
	userID := uuid.New()
	a := testAuction()
	a.Deadline = time.Now().Add(time.Hour)

	f.auctions.EXPECT().GetAuction(gomock.Any(), a.ID).Return(a, nil)
	f.auctions.EXPECT().PlaceBid(gomock.Any(), gomock.Any()).Return(nil, shared.ErrBidAmountTooLow)

	conn := f.dial(t, userID)
	defer conn.Close()

	send(t, conn, map[string]interface{}{"type": "ping"})
	require.Equal(t, MessageTypePong, receive(t, conn).Type)

	send(t, conn, map[string]interface{}{"type": "subscribe", "auction_id": a.ID.String()})
	subscribed := receive(t, conn)
	require.Equal(t, "subscribed", subscribed.Data["status"])
	require.Equal(t, a.ID, *subscribed.AuctionID)

	require.NoError(t, f.broadcaster.Publish(context.Background(), a.ID, outbound.Event{
		Type: outbound.EventTypeBidPlaced,
		Data: map[string]interface{}{"amount": 150.0},
	}))
	placed := receive(t, conn)
	require.Equal(t, MessageTypeBidPlaced, placed.Type)
	require.Equal(t, 150.0, placed.Data["amount"])

	send(t, conn, map[string]interface{}{
		"type":       "place_bid",
		"auction_id": a.ID.String(),
		"data":       map[string]interface{}{"amount": 120.0},
	})
	rejected := receive(t, conn)
	require.Equal(t, MessageTypeError, rejected.Type)
	require.Equal(t, CodeBidRejected, rejected.Code)
	require.Equal(t, a.ID, *rejected.AuctionID)
}

func TestServer_InvalidMessage(t *testing.T) {
	f := newServerFixture(t)
	conn := f.dial(t, uuid.New())
	defer conn.Close()

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{not json")))
	reply := receive(t, conn)
	require.Equal(t, MessageTypeError, reply.Type)
	require.Equal(t, CodeInvalidRequest, reply.Code)

	send(t, conn, map[string]interface{}{"type": "place_bid", "auction_id": uuid.NewString()})
	require.Equal(t, CodeInvalidRequest, receive(t, conn).Code)
}

func TestServer_DisconnectUnregistersClient(t *testing.T) {
	f := newServerFixture(t)
	conn := f.dial(t, uuid.New())

	require.Eventually(t, func() bool { return f.server.handler.GetConnectedClients() == 1 }, 2*time.Second, 10*time.Millisecond)
	require.NoError(t, conn.Close())
	require.Eventually(t, func() bool { return f.server.handler.GetConnectedClients() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestServer_RequiresUserID(t *testing.T) {
	f := newServerFixture(t)

	tests := []struct {
		name  string
		query string
	}{
		{name: "missing", query: ""},
		{name: "malformed", query: "?user_id=nope"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := http.Get(f.http.URL + "/ws" + tc.query)
			require.NoError(t, err)
			defer resp.Body.Close()
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestServer_Health(t *testing.T) {
	f := newServerFixture(t)

	resp, err := http.Get(f.http.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "ok", body["status"])
	require.Equal(t, "collectioneer", body["service"])
	require.Equal(t, 0.0, body["clients"])
}
