package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"collectioneer/internal/domain/auction"
	"collectioneer/internal/domain/shared"
	"collectioneer/internal/ports/inbound"
	"collectioneer/internal/ports/outbound"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100
)

// AuctionService implements the auction and bid use cases
type AuctionService struct {
	uow          outbound.UnitOfWork
	auctionRepo  outbound.AuctionRepository
	bidRepo      outbound.BidRepository
	collectibles inbound.CollectibleService
	broadcaster  outbound.Broadcaster
	scheduler    outbound.CloseScheduler
	locks        *keyedMutex
	now          func() time.Time
	logger       zerolog.Logger
}

type AuctionServiceParams struct {
	UnitOfWork   outbound.UnitOfWork
	AuctionRepo  outbound.AuctionRepository
	BidRepo      outbound.BidRepository
	Collectibles inbound.CollectibleService
	Broadcaster  outbound.Broadcaster
	Scheduler    outbound.CloseScheduler
	Now          func() time.Time
	Logger       zerolog.Logger
}

// NewAuctionService creates a new auction service
func NewAuctionService(params AuctionServiceParams) *AuctionService {
	return &AuctionService{
		uow:          params.UnitOfWork,
		auctionRepo:  params.AuctionRepo,
		bidRepo:      params.BidRepo,
		collectibles: params.Collectibles,
		broadcaster:  params.Broadcaster,
		scheduler:    params.Scheduler,
		locks:        newKeyedMutex(),
		now:          clockOrDefault(params.Now),
		logger:       params.Logger.With().Str("component", "auction_service").Logger(),
	}
}

// SetScheduler sets the close scheduler. The scheduler calls back into the
// service, so it can only be attached once both exist.
func (service *AuctionService) SetScheduler(scheduler outbound.CloseScheduler) {
	service.scheduler = scheduler
}

// CreateAuction persists a new auction, then links it to its collectible in a
// second commit. A collectible still listed in an unsettled auction is
// rejected before anything is stored; a link that fails later leaves the
// auction in place.
func (service *AuctionService) CreateAuction(ctx context.Context, cmd inbound.CreateAuctionCommand) (*auction.Auction, error) {
	service.logger.Info().
		Str("community_id", cmd.CommunityID.String()).
		Str("auctioneer_id", cmd.AuctioneerID.String()).
		Str("collectible_id", cmd.CollectibleID.String()).
		Float64("starting_price", cmd.StartingPrice).
		Time("deadline", cmd.Deadline).
		Msg("Attempting to create auction")

	now := service.now()
	if cmd.StartingPrice <= 0 {
		service.logger.Warn().Float64("starting_price", cmd.StartingPrice).Msg("Starting price must be greater than 0")
		return nil, shared.ErrInvalidStartingPrice
	}
	if !cmd.Deadline.After(now) {
		service.logger.Warn().
			Time("deadline", cmd.Deadline).
			Time("current_time", now).
			Msg("Deadline must be in the future")
		return nil, shared.ErrInvalidDeadline
	}

	unlock := service.locks.Lock(cmd.CollectibleID)
	defer unlock()

	ctx = service.uow.Begin(ctx)

	listed, err := service.auctionRepo.List(ctx, outbound.AuctionFilter{
		CollectibleID: &cmd.CollectibleID,
		Unsettled:     true,
	}, 1, 1)
	if err != nil {
		service.logger.Error().Err(err).Str("collectible_id", cmd.CollectibleID.String()).Msg("Failed to check collectible listings")
		return nil, err
	}
	if len(listed) > 0 {
		service.logger.Warn().
			Str("collectible_id", cmd.CollectibleID.String()).
			Str("listed_in", listed[0].ID.String()).
			Msg("Collectible is already listed in an unsettled auction")
		return nil, shared.ErrCollectibleAlreadyInAuction
	}

	a := auction.New(cmd.CommunityID, cmd.AuctioneerID, cmd.CollectibleID, cmd.StartingPrice, cmd.Deadline, now)
	if _, err := service.auctionRepo.Add(ctx, a); err != nil {
		service.logger.Error().Err(err).Str("auction_id", a.ID.String()).Msg("Failed to stage auction")
		return nil, err
	}
	if err := service.uow.Complete(ctx); err != nil {
		service.logger.Error().Err(err).Str("auction_id", a.ID.String()).Msg("Failed to save auction")
		return nil, fmt.Errorf("failed to save auction: %w", err)
	}

	err = service.collectibles.RegisterAuctionIDInCollectible(ctx, inbound.RegisterAuctionIDCommand{
		CollectibleID: a.CollectibleID,
		AuctionID:     a.ID,
	})
	if err != nil {
		service.logger.Error().
			Err(err).
			Str("auction_id", a.ID.String()).
			Str("collectible_id", a.CollectibleID.String()).
			Msg("Failed to link collectible to auction")
		return nil, fmt.Errorf("failed to link collectible %s to auction %s: %w", a.CollectibleID, a.ID, err)
	}
	if err := service.uow.Complete(ctx); err != nil {
		service.logger.Error().Err(err).Str("auction_id", a.ID.String()).Msg("Failed to save collectible link")
		return nil, fmt.Errorf("failed to save collectible link: %w", err)
	}

	service.logger.Info().Str("auction_id", a.ID.String()).Msg("Auction created successfully")

	// Schedule auction for closing
	if service.scheduler != nil {
		if err := service.scheduler.ScheduleClose(ctx, a.ID, a.Deadline); err != nil {
			service.logger.Error().Err(err).Str("auction_id", a.ID.String()).Msg("Failed to schedule auction close")
		} else {
			service.logger.Debug().
				Str("auction_id", a.ID.String()).
				Time("deadline", a.Deadline).
				Msg("Auction scheduled for closing")
		}
	}

	service.publish(ctx, outbound.Event{
		Type:      outbound.EventTypeAuctionCreated,
		AuctionID: a.ID,
		Data: map[string]interface{}{
			"community_id":   a.CommunityID,
			"collectible_id": a.CollectibleID,
			"starting_price": a.StartingPrice,
			"deadline":       a.Deadline.Unix(),
		},
		Timestamp: a.CreatedAt.Unix(),
	})

	return a, nil
}

// GetAuction retrieves an auction by ID
func (service *AuctionService) GetAuction(ctx context.Context, auctionID uuid.UUID) (*auction.Auction, error) {
	service.logger.Debug().Str("auction_id", auctionID.String()).Msg("Retrieving auction")

	a, err := service.auctionRepo.GetByID(ctx, auctionID)
	if err != nil {
		service.logger.Error().Err(err).Str("auction_id", auctionID.String()).Msg("Failed to retrieve auction")
		return nil, err
	}

	service.logger.Debug().
		Str("auction_id", a.ID.String()).
		Str("state", string(a.StateAt(service.now()))).
		Float64("current_price", a.CurrentPrice).
		Msg("Auction retrieved successfully")

	return a, nil
}

// ListAuctions retrieves a page of auctions. Pages hold at most maxPageSize
// auctions.
func (service *AuctionService) ListAuctions(ctx context.Context, query inbound.ListAuctionsQuery) ([]*auction.Auction, error) {
	if query.Page <= 0 {
		query.Page = defaultPage
	}
	if query.PageSize <= 0 {
		query.PageSize = defaultPageSize
	}
	if query.PageSize > maxPageSize {
		query.PageSize = maxPageSize
	}

	filter := outbound.AuctionFilter{CommunityID: query.CommunityID}
	if query.OpenOnly {
		now := service.now()
		filter.OpenAt = &now
	}

	return service.auctionRepo.List(ctx, filter, query.Page, query.PageSize)
}

// CloseAuction settles an auction whose deadline has passed. The highest bid,
// if any, wins.
func (service *AuctionService) CloseAuction(ctx context.Context, auctionID uuid.UUID) (*shared.AuctionResult, error) {
	unlock := service.locks.Lock(auctionID)
	defer unlock()

	service.logger.Info().Str("auction_id", auctionID.String()).Msg("Closing auction")

	ctx = service.uow.Begin(ctx)

	a, err := service.auctionRepo.GetByID(ctx, auctionID)
	if err != nil {
		service.logger.Error().Err(err).Str("auction_id", auctionID.String()).Msg("Failed to retrieve auction for closing")
		return nil, err
	}

	now := service.now()
	if a.IsSettled() {
		service.logger.Warn().Str("auction_id", auctionID.String()).Msg("Auction already closed")
		return nil, shared.ErrAuctionAlreadyClosed
	}
	if a.IsOpen(now) {
		service.logger.Warn().
			Str("auction_id", auctionID.String()).
			Time("deadline", a.Deadline).
			Msg("Auction deadline has not passed")
		return nil, shared.ErrAuctionStillOpen
	}

	// Get the highest bid to determine winner
	result := &shared.AuctionResult{AuctionID: auctionID}
	highestBid, err := service.bidRepo.GetHighest(ctx, auctionID)
	switch {
	case err == nil:
		result.WinnerID = &highestBid.BidderID
		result.FinalPrice = &highestBid.Amount
	case errors.Is(err, shared.ErrNoBidsFound):
		service.logger.Info().Str("auction_id", auctionID.String()).Msg("Auction closing with no bids")
	default:
		service.logger.Error().Err(err).Str("auction_id", auctionID.String()).Msg("Failed to get highest bid")
		return nil, err
	}

	expectedVersion := a.Version
	if err := a.Close(result.WinnerID, now); err != nil {
		return nil, err
	}
	if err := service.auctionRepo.Update(ctx, a, expectedVersion); err != nil {
		service.logger.Error().Err(err).Str("auction_id", auctionID.String()).Msg("Failed to stage auction close")
		return nil, err
	}
	if err := service.uow.Complete(ctx); err != nil {
		service.logger.Error().Err(err).Str("auction_id", auctionID.String()).Msg("Failed to save auction close")
		return nil, fmt.Errorf("failed to save auction close: %w", err)
	}
	result.ClosedAt = *a.ClosedAt

	logEvent := service.logger.Info().Str("auction_id", auctionID.String())
	if result.WinnerID != nil {
		logEvent = logEvent.Str("winner_id", result.WinnerID.String()).Float64("final_price", *result.FinalPrice)
	}
	logEvent.Msg("Auction closed successfully")

	service.publish(ctx, outbound.Event{
		Type:      outbound.EventTypeAuctionClosed,
		AuctionID: auctionID,
		Data: map[string]interface{}{
			"winner_id":   result.WinnerID,
			"final_price": result.FinalPrice,
		},
		Timestamp: result.ClosedAt.Unix(),
	})

	return result, nil
}

// CloseExpiredAuctions settles up to limit auctions past their deadline and
// returns how many it closed. Auctions closed concurrently elsewhere are skipped.
func (service *AuctionService) CloseExpiredAuctions(ctx context.Context, limit int) (int, error) {
	expired, err := service.auctionRepo.ListExpired(ctx, service.now(), limit)
	if err != nil {
		service.logger.Error().Err(err).Msg("Failed to list expired auctions")
		return 0, err
	}

	closed := 0
	var errs []error
	for _, a := range expired {
		if _, err := service.CloseAuction(ctx, a.ID); err != nil {
			if errors.Is(err, shared.ErrAuctionAlreadyClosed) || errors.Is(err, shared.ErrBidConflict) {
				continue
			}
			errs = append(errs, fmt.Errorf("auction %s: %w", a.ID, err))
			continue
		}
		closed++
	}

	if len(expired) > 0 {
		service.logger.Info().
			Int("expired", len(expired)).
			Int("closed", closed).
			Msg("Closed expired auctions")
	}

	return closed, errors.Join(errs...)
}

// publish broadcasts an event without failing the operation that produced it
func (service *AuctionService) publish(ctx context.Context, event outbound.Event) {
	if service.broadcaster == nil {
		return
	}
	if err := service.broadcaster.Publish(ctx, event.AuctionID, event); err != nil {
		service.logger.Error().
			Err(err).
			Str("auction_id", event.AuctionID.String()).
			Str("event_type", string(event.Type)).
			Msg("Failed to broadcast event")
	}
}
