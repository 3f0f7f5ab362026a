package ws

import (
	"context"
	"net/http"
	"sync"
	"time"

	"collectioneer/internal/domain/shared"
	"collectioneer/internal/ports/inbound"
	"collectioneer/internal/ports/outbound"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const eventBufferSize = 100

// WsHandler manages WebSocket connections and message routing
type WsHandler struct {
	clients        map[string]*WsClient // clientID -> Client
	clientsMu      sync.RWMutex
	eventChannels  map[string]chan outbound.Event // clientID -> local event channel
	channelsMu     sync.RWMutex
	upgrader       websocket.Upgrader
	auctionService inbound.AuctionService
	broadcaster    outbound.Broadcaster
	now            func() time.Time
	logger         zerolog.Logger
}

type WsHandlerParams struct {
	Upgrader       websocket.Upgrader
	AuctionService inbound.AuctionService
	Broadcaster    outbound.Broadcaster
	Now            func() time.Time
	Logger         zerolog.Logger
}

// NewHandler creates a new WebSocket handler
func NewHandler(params WsHandlerParams) *WsHandler {
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &WsHandler{
		clients:        make(map[string]*WsClient),
		eventChannels:  make(map[string]chan outbound.Event),
		upgrader:       params.Upgrader,
		auctionService: params.AuctionService,
		broadcaster:    params.Broadcaster,
		now:            now,
		logger:         params.Logger.With().Str("component", "ws_handler").Logger(),
	}
}

// HandleWebSocket handles WebSocket connection upgrades
func (handler *WsHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	userIDStr := r.URL.Query().Get("user_id")
	if userIDStr == "" {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		http.Error(w, "invalid user_id format", http.StatusBadRequest)
		return
	}

	conn, err := handler.upgrader.Upgrade(w, r, nil)
	if err != nil {
		handler.logger.Error().Err(err).Msg("Failed to upgrade WebSocket connection")
		return
	}

	client := NewClient(WsClientParams{
		UserID:  userID,
		Conn:    conn,
		Handler: handler,
		Logger:  handler.logger,
	})

	handler.registerClient(client)
	eventChan := handler.createEventChannel(client.id)

	client.Start()
	go handler.listenForClientEvents(client, eventChan)

	go func() {
		<-client.ctx.Done()
		handler.unregisterClient(client)
	}()

	handler.logger.Info().Str("client_id", client.id).Str("user_id", client.userID.String()).Msg("WebSocket client connected")
}

// createEventChannel creates a local event channel for a client
func (handler *WsHandler) createEventChannel(clientID string) chan outbound.Event {
	handler.channelsMu.Lock()
	defer handler.channelsMu.Unlock()

	if eventChan, exists := handler.eventChannels[clientID]; exists {
		return eventChan
	}

	eventChan := make(chan outbound.Event, eventBufferSize)
	handler.eventChannels[clientID] = eventChan

	handler.logger.Debug().Str("client_id", clientID).Msg("Created local event channel for client")
	return eventChan
}

func (handler *WsHandler) getEventChannel(clientID string) chan outbound.Event {
	handler.channelsMu.RLock()
	defer handler.channelsMu.RUnlock()

	return handler.eventChannels[clientID]
}

// removeEventChannel closes a client's event channel once the broadcaster
// has stopped delivering to it
func (handler *WsHandler) removeEventChannel(clientID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := handler.broadcaster.RemoveClient(ctx, clientID); err != nil {
		handler.logger.Error().Err(err).Str("client_id", clientID).Msg("Failed to remove client subscriptions")
		// the broadcaster may still write to the channel, so leave it open
		handler.channelsMu.Lock()
		delete(handler.eventChannels, clientID)
		handler.channelsMu.Unlock()
		return
	}

	handler.channelsMu.Lock()
	defer handler.channelsMu.Unlock()

	if eventChan, exists := handler.eventChannels[clientID]; exists {
		close(eventChan)
		delete(handler.eventChannels, clientID)
		handler.logger.Debug().Str("client_id", clientID).Msg("Removed local event channel for client")
	}
}

func (handler *WsHandler) registerClient(client *WsClient) {
	handler.clientsMu.Lock()
	defer handler.clientsMu.Unlock()
	handler.clients[client.id] = client
	handler.logger.Debug().Str("client_id", client.id).Int("total_clients", len(handler.clients)).Msg("Client registered")
}

func (handler *WsHandler) unregisterClient(client *WsClient) {
	handler.clientsMu.Lock()
	delete(handler.clients, client.id)
	total := len(handler.clients)
	handler.clientsMu.Unlock()

	client.Stop()
	handler.removeEventChannel(client.id)

	handler.logger.Info().Str("client_id", client.id).Str("user_id", client.userID.String()).Int("total_clients", total).Msg("WebSocket client disconnected")
}

// listenForClientEvents forwards broadcast events to the client's socket
func (handler *WsHandler) listenForClientEvents(client *WsClient, eventChan <-chan outbound.Event) {
	for {
		select {
		case event, ok := <-eventChan:
			if !ok {
				return
			}
			if err := client.Send(handler.convertEventToMessage(event)); err != nil {
				handler.logger.Error().Err(err).Str("client_id", client.id).Msg("Failed to send event to WebSocket client")
				continue
			}
			handler.logger.Debug().Str("client_id", client.id).Str("event_type", string(event.Type)).Msg("Sent event to WebSocket client")

		case <-client.ctx.Done():
			return
		}
	}
}

// HandleClientMessage routes a validated message. Errors returned here are
// reported to the client as error messages.
func (handler *WsHandler) HandleClientMessage(client *WsClient, msg *ClientMessage) error {
	switch msg.Type {
	case MessageTypeSubscribe:
		return handler.handleSubscribe(client, msg)
	case MessageTypeUnsubscribe:
		return handler.handleUnsubscribe(client, msg)
	case MessageTypePlaceBid:
		return handler.handlePlaceBid(client, msg)
	case MessageTypeCreateAuction:
		return handler.handleCreateAuction(client, msg)
	case MessageTypeGetAuction:
		return handler.handleGetAuction(client, msg)
	case MessageTypeListAuctions:
		return handler.handleListAuctions(client, msg)
	case MessageTypePing:
		return client.Send(NewServerMessage(MessageTypePong))
	default:
		handler.logger.Warn().Str("client_id", client.id).Str("message_type", string(msg.Type)).Msg("Unknown message type from client")
		return shared.ErrUnknownMessageType
	}
}

func (handler *WsHandler) convertEventToMessage(event outbound.Event) *ServerMessage {
	msgType := MessageTypeAuctionUpdate
	switch event.Type {
	case outbound.EventTypeBidPlaced:
		msgType = MessageTypeBidPlaced
	case outbound.EventTypeAuctionClosed:
		msgType = MessageTypeAuctionClosed
	case outbound.EventTypeAuctionCreated:
		msgType = MessageTypeAuctionCreated
	}

	auctionID := event.AuctionID
	return &ServerMessage{
		Type:      msgType,
		AuctionID: &auctionID,
		Data:      event.Data,
		Timestamp: event.Timestamp,
	}
}

// disconnectAll stops every client. Hijacked connections are not closed by
// the HTTP server's shutdown.
func (handler *WsHandler) disconnectAll() {
	handler.clientsMu.RLock()
	clients := make([]*WsClient, 0, len(handler.clients))
	for _, client := range handler.clients {
		clients = append(clients, client)
	}
	handler.clientsMu.RUnlock()

	for _, client := range clients {
		client.Stop()
	}
}

// GetConnectedClients returns the number of connected clients
func (handler *WsHandler) GetConnectedClients() int {
	handler.clientsMu.RLock()
	defer handler.clientsMu.RUnlock()
	return len(handler.clients)
}

func (handler *WsHandler) handleSubscribe(client *WsClient, msg *ClientMessage) error {
	eventChan := handler.getEventChannel(client.id)
	if eventChan == nil {
		handler.logger.Error().Str("client_id", client.id).Msg("No event channel found for client")
		return shared.ErrClientEventChannelAbsent
	}

	if _, err := handler.auctionService.GetAuction(client.ctx, *msg.AuctionID); err != nil {
		return err
	}

	if err := handler.broadcaster.Subscribe(client.ctx, *msg.AuctionID, client.id, eventChan); err != nil {
		handler.logger.Error().Err(err).Str("client_id", client.id).Str("auction_id", msg.AuctionID.String()).Msg("Failed to subscribe to auction")
		return err
	}

	response := NewServerMessage(MessageTypeAuctionUpdate)
	response.AuctionID = msg.AuctionID
	response.Data["status"] = "subscribed"

	handler.logger.Info().Str("client_id", client.id).Str("auction_id", msg.AuctionID.String()).Msg("Client subscribed to auction")
	return client.Send(response)
}

func (handler *WsHandler) handleUnsubscribe(client *WsClient, msg *ClientMessage) error {
	if err := handler.broadcaster.Unsubscribe(client.ctx, *msg.AuctionID, client.id); err != nil {
		return err
	}

	response := NewServerMessage(MessageTypeAuctionUpdate)
	response.AuctionID = msg.AuctionID
	response.Data["status"] = "unsubscribed"

	handler.logger.Info().Str("client_id", client.id).Str("auction_id", msg.AuctionID.String()).Msg("Client unsubscribed from auction")
	return client.Send(response)
}

// handlePlaceBid places a bid for the connected user. Subscribers, the bidder
// included, learn about the accepted bid from the bid_placed event.
func (handler *WsHandler) handlePlaceBid(client *WsClient, msg *ClientMessage) error {
	amount, err := msg.amount()
	if err != nil {
		return err
	}

	placed, err := handler.auctionService.PlaceBid(client.ctx, inbound.PlaceBidCommand{
		AuctionID: *msg.AuctionID,
		BidderID:  client.userID,
		Amount:    amount,
	})
	if err != nil {
		return err
	}

	handler.logger.Info().
		Str("bid_id", placed.ID.String()).
		Str("auction_id", msg.AuctionID.String()).
		Str("user_id", client.userID.String()).
		Float64("amount", amount).
		Msg("Bid placed successfully")
	return nil
}

func (handler *WsHandler) handleCreateAuction(client *WsClient, msg *ClientMessage) error {
	communityID, err := msg.uuidField("community_id", shared.ErrCommunityIDRequired)
	if err != nil {
		return err
	}
	collectibleID, err := msg.uuidField("collectible_id", shared.ErrCollectibleIDRequired)
	if err != nil {
		return err
	}
	startingPrice, ok := msg.Data["starting_price"].(float64)
	if !ok {
		return shared.ErrStartingPriceRequired
	}
	deadline, err := msg.deadline()
	if err != nil {
		return err
	}

	created, err := handler.auctionService.CreateAuction(client.ctx, inbound.CreateAuctionCommand{
		CommunityID:   communityID,
		AuctioneerID:  client.userID,
		CollectibleID: collectibleID,
		StartingPrice: startingPrice,
		Deadline:      deadline,
	})
	if err != nil {
		return err
	}

	handler.logger.Info().Str("auction_id", created.ID.String()).Str("user_id", client.userID.String()).Msg("Auction created successfully")
	return client.Send(NewAuctionMessage(MessageTypeAuctionCreated, created, handler.now()))
}

func (handler *WsHandler) handleGetAuction(client *WsClient, msg *ClientMessage) error {
	a, err := handler.auctionService.GetAuction(client.ctx, *msg.AuctionID)
	if err != nil {
		return err
	}
	return client.Send(NewAuctionMessage(MessageTypeAuctionUpdate, a, handler.now()))
}

func (handler *WsHandler) handleListAuctions(client *WsClient, msg *ClientMessage) error {
	query := inbound.ListAuctionsQuery{
		Page:     msg.intField("page"),
		PageSize: msg.intField("page_size"),
	}
	if openOnly, ok := msg.Data["open_only"].(bool); ok {
		query.OpenOnly = openOnly
	}
	if _, ok := msg.Data["community_id"]; ok {
		communityID, err := msg.uuidField("community_id", shared.ErrCommunityIDRequired)
		if err != nil {
			return err
		}
		query.CommunityID = &communityID
	}

	auctions, err := handler.auctionService.ListAuctions(client.ctx, query)
	if err != nil {
		return err
	}

	now := handler.now()
	items := make([]map[string]interface{}, 0, len(auctions))
	for _, a := range auctions {
		items = append(items, NewAuctionMessage(MessageTypeAuctionUpdate, a, now).Data)
	}

	response := NewServerMessage(MessageTypeAuctionUpdate)
	response.Data["auctions"] = items
	response.Data["count"] = len(items)
	return client.Send(response)
}
