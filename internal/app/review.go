package app

import (
	"context"
	"time"

	"collectioneer/internal/domain/review"
	"collectioneer/internal/ports/inbound"
	"collectioneer/internal/ports/outbound"

	"github.com/rs/zerolog"
)

// ReviewService implements the review use cases
type ReviewService struct {
	uow        outbound.UnitOfWork
	reviewRepo outbound.ReviewRepository
	now        func() time.Time
	logger     zerolog.Logger
}

type ReviewServiceParams struct {
	UnitOfWork outbound.UnitOfWork
	ReviewRepo outbound.ReviewRepository
	Now        func() time.Time
	Logger     zerolog.Logger
}

func NewReviewService(params ReviewServiceParams) *ReviewService {
	return &ReviewService{
		uow:        params.UnitOfWork,
		reviewRepo: params.ReviewRepo,
		now:        clockOrDefault(params.Now),
		logger:     params.Logger.With().Str("component", "review_service").Logger(),
	}
}

func (service *ReviewService) CreateReview(ctx context.Context, cmd inbound.CreateReviewCommand) (*review.Review, error) {
	rv, err := review.New(cmd.ReviewerID, cmd.CollectibleID, cmd.Content, cmd.Rating, service.now())
	if err != nil {
		service.logger.Warn().Err(err).Int("rating", cmd.Rating).Msg("Invalid review")
		return nil, err
	}

	ctx = service.uow.Begin(ctx)
	if _, err := service.reviewRepo.Add(ctx, rv); err != nil {
		return nil, err
	}
	if err := service.uow.Complete(ctx); err != nil {
		service.logger.Error().Err(err).Str("review_id", rv.ID.String()).Msg("Failed to save review")
		return nil, err
	}

	service.logger.Info().
		Str("review_id", rv.ID.String()).
		Str("collectible_id", rv.CollectibleID.String()).
		Int("rating", rv.Rating).
		Msg("Review created")
	return rv, nil
}

func (service *ReviewService) GetCollectibleReviews(ctx context.Context, query inbound.CollectibleReviewsQuery) ([]*review.Review, error) {
	return service.reviewRepo.ListByCollectible(ctx, query.CollectibleID)
}

// GetCollectibleStats returns the average rating and the review count, both
// zero when the collectible has no reviews
func (service *ReviewService) GetCollectibleStats(ctx context.Context, query inbound.CollectibleStatsQuery) (float64, int, error) {
	reviews, err := service.reviewRepo.ListByCollectible(ctx, query.CollectibleID)
	if err != nil {
		return 0, 0, err
	}
	average, count := review.Stats(reviews)
	return average, count, nil
}

func (service *ReviewService) GetUserReviews(ctx context.Context, query inbound.UserReviewsQuery) ([]*review.Review, error) {
	return service.reviewRepo.ListByReviewer(ctx, query.UserID)
}
