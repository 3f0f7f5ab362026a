package inbound

import (
	"context"
	"time"

	"collectioneer/internal/domain/auction"
	"collectioneer/internal/domain/bid"
	"collectioneer/internal/domain/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_services.go -package=mocks collectioneer/internal/ports/inbound AuctionService,CollectibleService,ReviewService,RoleService,CommunityService,PostService,CommentService,UserService

// AuctionService defines the interface for auction operations
type AuctionService interface {
	// CreateAuction persists a new auction and links it to its collectible
	CreateAuction(ctx context.Context, cmd CreateAuctionCommand) (*auction.Auction, error)

	// PlaceBid places a new bid on an open auction
	PlaceBid(ctx context.Context, cmd PlaceBidCommand) (*bid.Bid, error)

	// GetAuction retrieves an auction by ID
	GetAuction(ctx context.Context, auctionID uuid.UUID) (*auction.Auction, error)

	// ListAuctions retrieves a page of auctions
	ListAuctions(ctx context.Context, query ListAuctionsQuery) ([]*auction.Auction, error)

	// GetBids retrieves the bids of an auction in submission order
	GetBids(ctx context.Context, auctionID uuid.UUID) ([]*bid.Bid, error)

	// CloseAuction settles an auction whose deadline has passed
	CloseAuction(ctx context.Context, auctionID uuid.UUID) (*shared.AuctionResult, error)

	// CloseExpiredAuctions settles up to limit overdue auctions
	CloseExpiredAuctions(ctx context.Context, limit int) (int, error)
}

// CreateAuctionCommand is the request to create an auction
type CreateAuctionCommand struct {
	CommunityID   uuid.UUID `json:"community_id"`
	AuctioneerID  uuid.UUID `json:"auctioneer_id"`
	CollectibleID uuid.UUID `json:"collectible_id"`
	StartingPrice float64   `json:"starting_price"`
	Deadline      time.Time `json:"deadline"`
}

// PlaceBidCommand is the request to place a bid
type PlaceBidCommand struct {
	AuctionID uuid.UUID `json:"auction_id"`
	BidderID  uuid.UUID `json:"bidder_id"`
	Amount    float64   `json:"amount"`
}

// ListAuctionsQuery is the request to list auctions
type ListAuctionsQuery struct {
	CommunityID *uuid.UUID `json:"community_id,omitempty"`
	OpenOnly    bool       `json:"open_only"`
	Page        int        `json:"page"`
	PageSize    int        `json:"page_size"`
}
