package ws

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"collectioneer/internal/config"

	"github.com/alitto/pond"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBufferSize = 100
)

var (
	errClientStopped = errors.New("client is stopped")
	errSendQueueFull = errors.New("client send channel is full")
	errServerBusy    = errors.New("too many requests in flight")
)

type WsClient struct {
	id         string
	userID     uuid.UUID
	conn       *websocket.Conn
	sendChan   chan *ServerMessage
	ctx        context.Context
	cancel     context.CancelFunc
	handler    *WsHandler
	workerPool *pond.WorkerPool
	stopped    bool
	mu         sync.Mutex
	logger     zerolog.Logger
}

type WsClientParams struct {
	UserID  uuid.UUID
	Conn    *websocket.Conn
	Handler *WsHandler
	Logger  zerolog.Logger
}

// NewClient creates a new WebSocket client. Its messages are handled on a
// private worker pool so one slow request does not block the socket.
func NewClient(params WsClientParams) *WsClient {
	ctx, cancel := context.WithCancel(context.Background())
	id := uuid.New().String()
	logger := params.Logger.With().
		Str("client_id", id).
		Str("user_id", params.UserID.String()).
		Logger()

	pool := pond.New(
		config.WSMaxWorkers,
		config.WSMaxCapacity,
		pond.Strategy(pond.Balanced()),
		pond.PanicHandler(func(p interface{}) {
			logger.Error().Interface("panic", p).Msg("Client message handler panicked")
		}),
	)

	return &WsClient{
		id:         id,
		userID:     params.UserID,
		conn:       params.Conn,
		sendChan:   make(chan *ServerMessage, sendBufferSize),
		ctx:        ctx,
		cancel:     cancel,
		handler:    params.Handler,
		workerPool: pool,
		logger:     logger,
	}
}

func (client *WsClient) Start() {
	go client.messageSender()
	go client.messageReceiver()
}

// Stop closes the connection and waits for in-flight messages to finish
func (client *WsClient) Stop() {
	client.mu.Lock()
	if client.stopped {
		client.mu.Unlock()
		return
	}
	client.stopped = true
	client.mu.Unlock()

	client.cancel()
	if client.conn != nil {
		client.conn.Close()
	}
	client.workerPool.StopAndWait()
}

// Send queues a message for the client
func (client *WsClient) Send(msg *ServerMessage) error {
	client.mu.Lock()
	stopped := client.stopped
	client.mu.Unlock()
	if stopped {
		return errClientStopped
	}

	select {
	case client.sendChan <- msg:
		return nil
	case <-client.ctx.Done():
		return errClientStopped
	case <-time.After(100 * time.Millisecond):
		return errSendQueueFull
	}
}

// messageSender owns all writes to the connection, keepalive pings included
func (client *WsClient) messageSender() {
	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	for {
		select {
		case msg := <-client.sendChan:
			client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.conn.WriteJSON(msg); err != nil {
				client.logger.Error().Err(err).Msg("Failed to send message to client")
				client.cancel()
				return
			}
		case <-ticker.C:
			client.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := client.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				client.logger.Debug().Err(err).Msg("Failed to ping client")
				client.cancel()
				return
			}
		case <-client.ctx.Done():
			return
		}
	}
}

func (client *WsClient) messageReceiver() {
	// Cancel context to notify handler about disconnection
	defer client.cancel()

	client.conn.SetReadLimit(maxMessageSize)
	client.conn.SetReadDeadline(time.Now().Add(pongWait))
	client.conn.SetPongHandler(func(string) error {
		return client.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, message, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				client.logger.Error().Err(err).Msg("WebSocket read error for client")
			} else {
				client.logger.Debug().Str("error", err.Error()).Msg("WebSocket connection closed for client")
			}
			return
		}

		submitted := client.workerPool.TrySubmit(func() {
			if auctionID, err := client.handleMessage(message); err != nil {
				client.logger.Warn().Err(err).Msg("Failed to handle client message")
				_ = client.Send(NewErrorMessage(err, auctionID))
			}
		})
		if !submitted {
			_ = client.Send(NewErrorMessage(errServerBusy, nil))
		}
	}
}

// handleMessage processes one raw message and returns the auction it
// concerned along with any error to report
func (client *WsClient) handleMessage(data []byte) (*uuid.UUID, error) {
	msg, err := ParseClientMessage(data)
	if err != nil {
		return nil, err
	}

	if err := msg.Validate(); err != nil {
		return msg.AuctionID, fmt.Errorf("message validation failed: %w", err)
	}

	if client.handler == nil {
		return msg.AuctionID, fmt.Errorf("handler not available")
	}
	return msg.AuctionID, client.handler.HandleClientMessage(client, msg)
}
