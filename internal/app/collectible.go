package app

import (
	"context"
	"errors"
	"strings"
	"time"

	"collectioneer/internal/domain/collectible"
	"collectioneer/internal/domain/shared"
	"collectioneer/internal/ports/inbound"
	"collectioneer/internal/ports/outbound"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// CollectibleService implements the collectible use cases
type CollectibleService struct {
	uow             outbound.UnitOfWork
	collectibleRepo outbound.CollectibleRepository
	auctionRepo     outbound.AuctionRepository
	reviews         inbound.ReviewService
	now             func() time.Time
	logger          zerolog.Logger
}

type CollectibleServiceParams struct {
	UnitOfWork      outbound.UnitOfWork
	CollectibleRepo outbound.CollectibleRepository
	AuctionRepo     outbound.AuctionRepository
	Reviews         inbound.ReviewService
	Now             func() time.Time
	Logger          zerolog.Logger
}

// NewCollectibleService creates a new collectible service
func NewCollectibleService(params CollectibleServiceParams) *CollectibleService {
	return &CollectibleService{
		uow:             params.UnitOfWork,
		collectibleRepo: params.CollectibleRepo,
		auctionRepo:     params.AuctionRepo,
		reviews:         params.Reviews,
		now:             clockOrDefault(params.Now),
		logger:          params.Logger.With().Str("component", "collectible_service").Logger(),
	}
}

// RegisterCollectible creates a collectible owned by the caller
func (service *CollectibleService) RegisterCollectible(ctx context.Context, cmd inbound.RegisterCollectibleCommand) (*collectible.Collectible, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, shared.ErrInvalidCollectible
	}

	ctx = service.uow.Begin(ctx)

	c := collectible.New(cmd.CommunityID, name, cmd.Description, cmd.OwnerID, cmd.Value, service.now())
	if _, err := service.collectibleRepo.Add(ctx, c); err != nil {
		service.logger.Error().Err(err).Str("collectible_id", c.ID.String()).Msg("Failed to stage collectible")
		return nil, err
	}
	if err := service.uow.Complete(ctx); err != nil {
		service.logger.Error().Err(err).Str("collectible_id", c.ID.String()).Msg("Failed to save collectible")
		return nil, err
	}

	service.logger.Info().
		Str("collectible_id", c.ID.String()).
		Str("community_id", c.CommunityID.String()).
		Str("owner_id", c.OwnerID.String()).
		Msg("Collectible registered")

	return c, nil
}

// RegisterAuctionIDInCollectible records the auction a collectible is listed
// under. It joins the caller's unit of work when there is one.
func (service *CollectibleService) RegisterAuctionIDInCollectible(ctx context.Context, cmd inbound.RegisterAuctionIDCommand) error {
	ctx = service.uow.Begin(ctx)

	c, err := service.collectibleRepo.GetByID(ctx, cmd.CollectibleID)
	if err != nil {
		service.logger.Error().Err(err).Str("collectible_id", cmd.CollectibleID.String()).Msg("Failed to retrieve collectible")
		return err
	}

	currentSettled, err := service.listingSettled(ctx, c, cmd.AuctionID)
	if err != nil {
		return err
	}

	if err := c.LinkAuction(cmd.AuctionID, currentSettled, service.now()); err != nil {
		service.logger.Warn().
			Err(err).
			Str("collectible_id", c.ID.String()).
			Str("auction_id", cmd.AuctionID.String()).
			Msg("Collectible cannot be linked")
		return err
	}

	if err := service.collectibleRepo.Update(ctx, c); err != nil {
		return err
	}
	if err := service.uow.Complete(ctx); err != nil {
		service.logger.Error().Err(err).Str("collectible_id", c.ID.String()).Msg("Failed to save collectible link")
		return err
	}

	service.logger.Debug().
		Str("collectible_id", c.ID.String()).
		Str("auction_id", cmd.AuctionID.String()).
		Msg("Collectible linked to auction")
	return nil
}

// listingSettled reports whether the auction the collectible is listed under,
// other than auctionID, has been settled. A listing whose auction no longer
// exists counts as settled.
func (service *CollectibleService) listingSettled(ctx context.Context, c *collectible.Collectible, auctionID uuid.UUID) (bool, error) {
	if c.AuctionID == nil || *c.AuctionID == auctionID {
		return false, nil
	}

	current, err := service.auctionRepo.GetByID(ctx, *c.AuctionID)
	if errors.Is(err, shared.ErrEntityNotFound) {
		return true, nil
	}
	if err != nil {
		service.logger.Error().Err(err).Str("auction_id", c.AuctionID.String()).Msg("Failed to retrieve current auction of collectible")
		return false, err
	}
	return current.IsSettled(), nil
}

// GetCollectible retrieves a collectible with its review summary
func (service *CollectibleService) GetCollectible(ctx context.Context, collectibleID uuid.UUID) (*inbound.CollectibleDetails, error) {
	c, err := service.collectibleRepo.GetByID(ctx, collectibleID)
	if err != nil {
		return nil, err
	}

	average, count, err := service.reviews.GetCollectibleStats(ctx, inbound.CollectibleStatsQuery{CollectibleID: collectibleID})
	if err != nil {
		service.logger.Error().Err(err).Str("collectible_id", collectibleID.String()).Msg("Failed to compute review stats")
		return nil, err
	}

	return &inbound.CollectibleDetails{
		Collectible:   c,
		AverageRating: average,
		ReviewCount:   count,
	}, nil
}
