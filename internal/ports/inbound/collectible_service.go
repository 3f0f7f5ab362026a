package inbound

import (
	"context"

	"collectioneer/internal/domain/collectible"
	"collectioneer/internal/domain/review"

	"github.com/google/uuid"
)

// CollectibleService defines the interface for collectible operations
type CollectibleService interface {
	RegisterCollectible(ctx context.Context, cmd RegisterCollectibleCommand) (*collectible.Collectible, error)

	// RegisterAuctionIDInCollectible links a collectible to the auction it is listed under
	RegisterAuctionIDInCollectible(ctx context.Context, cmd RegisterAuctionIDCommand) error

	GetCollectible(ctx context.Context, collectibleID uuid.UUID) (*CollectibleDetails, error)
}

// ReviewService defines the interface for review operations
type ReviewService interface {
	CreateReview(ctx context.Context, cmd CreateReviewCommand) (*review.Review, error)
	GetCollectibleReviews(ctx context.Context, query CollectibleReviewsQuery) ([]*review.Review, error)

	// GetCollectibleStats returns the average rating and review count
	GetCollectibleStats(ctx context.Context, query CollectibleStatsQuery) (float64, int, error)

	GetUserReviews(ctx context.Context, query UserReviewsQuery) ([]*review.Review, error)
}

type RegisterCollectibleCommand struct {
	Name        string    `json:"name"`
	CommunityID uuid.UUID `json:"community_id"`
	Description string    `json:"description"`
	OwnerID     uuid.UUID `json:"owner_id"`
	Value       float64   `json:"value"`
}

type RegisterAuctionIDCommand struct {
	CollectibleID uuid.UUID `json:"collectible_id"`
	AuctionID     uuid.UUID `json:"auction_id"`
}

// CollectibleDetails is a collectible with its review summary
type CollectibleDetails struct {
	*collectible.Collectible
	AverageRating float64 `json:"average_rating"`
	ReviewCount   int     `json:"review_count"`
}

type CreateReviewCommand struct {
	ReviewerID    uuid.UUID `json:"reviewer_id"`
	CollectibleID uuid.UUID `json:"collectible_id"`
	Content       string    `json:"content"`
	Rating        int       `json:"rating"`
}

type CollectibleReviewsQuery struct {
	CollectibleID uuid.UUID
}

type CollectibleStatsQuery struct {
	CollectibleID uuid.UUID
}

type UserReviewsQuery struct {
	UserID uuid.UUID
}
