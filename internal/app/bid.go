package app

import (
	"context"
	"fmt"

	"collectioneer/internal/domain/bid"
	"collectioneer/internal/ports/inbound"
	"collectioneer/internal/ports/outbound"

	"github.com/google/uuid"
)

// PlaceBid places a new bid on an open auction. Bids on one auction are
// serialized in process and guarded across processes by the auction version.
func (service *AuctionService) PlaceBid(ctx context.Context, cmd inbound.PlaceBidCommand) (*bid.Bid, error) {
	unlock := service.locks.Lock(cmd.AuctionID)
	defer unlock()

	service.logger.Info().
		Str("auction_id", cmd.AuctionID.String()).
		Str("bidder_id", cmd.BidderID.String()).
		Float64("amount", cmd.Amount).
		Msg("Attempting to place bid")

	ctx = service.uow.Begin(ctx)

	a, err := service.auctionRepo.GetByID(ctx, cmd.AuctionID)
	if err != nil {
		service.logger.Error().Err(err).Str("auction_id", cmd.AuctionID.String()).Msg("Failed to retrieve auction for bid")
		return nil, err
	}

	now := service.now()
	expectedVersion := a.Version
	previousPrice := a.CurrentPrice
	if err := a.AcceptBid(cmd.Amount, now); err != nil {
		service.logger.Warn().
			Err(err).
			Str("auction_id", cmd.AuctionID.String()).
			Float64("current_price", previousPrice).
			Float64("amount", cmd.Amount).
			Msg("Bid rejected")
		return nil, err
	}

	newBid := bid.New(a.ID, cmd.BidderID, cmd.Amount, now)
	if _, err := service.bidRepo.Add(ctx, newBid); err != nil {
		service.logger.Error().Err(err).Str("bid_id", newBid.ID.String()).Msg("Failed to stage bid")
		return nil, err
	}
	if err := service.auctionRepo.Update(ctx, a, expectedVersion); err != nil {
		service.logger.Error().Err(err).Str("auction_id", a.ID.String()).Msg("Failed to stage auction price")
		return nil, err
	}
	if err := service.uow.Complete(ctx); err != nil {
		service.logger.Error().
			Err(err).
			Str("bid_id", newBid.ID.String()).
			Int64("expected_version", expectedVersion).
			Msg("Failed to save bid")
		return nil, fmt.Errorf("failed to save bid: %w", err)
	}

	service.logger.Info().
		Str("bid_id", newBid.ID.String()).
		Str("auction_id", newBid.AuctionID.String()).
		Str("bidder_id", newBid.BidderID.String()).
		Float64("amount", newBid.Amount).
		Msg("Bid placed successfully")

	// Broadcast the new bid
	service.publish(ctx, outbound.Event{
		Type:      outbound.EventTypeBidPlaced,
		AuctionID: newBid.AuctionID,
		Data: map[string]interface{}{
			"bid_id":    newBid.ID,
			"bidder_id": newBid.BidderID,
			"amount":    newBid.Amount,
		},
		Timestamp: newBid.CreatedAt.Unix(),
	})

	return newBid, nil
}

// GetBids retrieves the bids of an auction in submission order
func (service *AuctionService) GetBids(ctx context.Context, auctionID uuid.UUID) ([]*bid.Bid, error) {
	return service.bidRepo.ListByAuction(ctx, auctionID)
}
