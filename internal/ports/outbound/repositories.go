package outbound

import (
	"context"
	"time"

	"collectioneer/internal/domain/auction"
	"collectioneer/internal/domain/bid"
	"collectioneer/internal/domain/collectible"
	"collectioneer/internal/domain/community"
	"collectioneer/internal/domain/post"
	"collectioneer/internal/domain/review"
	"collectioneer/internal/domain/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_repositories.go -package=mocks collectioneer/internal/ports/outbound AuctionRepository,BidRepository,CollectibleRepository,ReviewRepository,RoleRepository,CommunityRepository,PostRepository,CommentRepository,UserRepository,MediaElementRepository

// Write methods stage their change on the unit of work carried by ctx and
// return before anything is stored. Without a unit of work they commit at once.

// AuctionFilter narrows auction listings
type AuctionFilter struct {
	CommunityID *uuid.UUID
	CollectibleID *uuid.UUID
	// OpenAt, when set, keeps only auctions still open at that instant
	OpenAt *time.Time
	// Unsettled keeps only auctions whose close has not been recorded
	Unsettled bool
}

// AuctionRepository defines the interface for auction data operations
type AuctionRepository interface {
	// Add stages a new auction and returns it with its identity
	Add(ctx context.Context, auction *auction.Auction) (*auction.Auction, error)

	// GetByID retrieves an auction by ID
	GetByID(ctx context.Context, id uuid.UUID) (*auction.Auction, error)

	// List retrieves a page of auctions, newest first
	List(ctx context.Context, filter AuctionFilter, page, pageSize int) ([]*auction.Auction, error)

	// ListExpired retrieves unsettled auctions whose deadline is at or before now
	ListExpired(ctx context.Context, now time.Time, limit int) ([]*auction.Auction, error)

	// Update stages an update that only applies while the stored version
	// still equals expectedVersion, failing with ErrBidConflict otherwise
	Update(ctx context.Context, auction *auction.Auction, expectedVersion int64) error
}

// BidRepository defines the interface for bid data operations
type BidRepository interface {
	// Add stages a new bid
	Add(ctx context.Context, bid *bid.Bid) (*bid.Bid, error)

	// ListByAuction retrieves the bids of an auction in submission order
	ListByAuction(ctx context.Context, auctionID uuid.UUID) ([]*bid.Bid, error)

	// GetHighest retrieves the highest bid, or ErrNoBidsFound
	GetHighest(ctx context.Context, auctionID uuid.UUID) (*bid.Bid, error)
}

// CollectibleRepository defines the interface for collectible data operations
type CollectibleRepository interface {
	Add(ctx context.Context, collectible *collectible.Collectible) (*collectible.Collectible, error)
	GetByID(ctx context.Context, id uuid.UUID) (*collectible.Collectible, error)
	Update(ctx context.Context, collectible *collectible.Collectible) error
}

// ReviewRepository defines the interface for review data operations
type ReviewRepository interface {
	Add(ctx context.Context, review *review.Review) (*review.Review, error)
	ListByCollectible(ctx context.Context, collectibleID uuid.UUID) ([]*review.Review, error)
	ListByReviewer(ctx context.Context, reviewerID uuid.UUID) ([]*review.Review, error)
}

// RoleRepository defines the interface for role data operations
type RoleRepository interface {
	Add(ctx context.Context, role *community.Role) (*community.Role, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*community.Role, error)
}

// CommunityRepository defines the interface for community data operations
type CommunityRepository interface {
	Add(ctx context.Context, community *community.Community) (*community.Community, error)
	GetByID(ctx context.Context, id uuid.UUID) (*community.Community, error)
	List(ctx context.Context) ([]*community.Community, error)
}

// PostRepository defines the interface for post data operations
type PostRepository interface {
	Add(ctx context.Context, post *post.Post) (*post.Post, error)
	GetByID(ctx context.Context, id uuid.UUID) (*post.Post, error)

	// Search matches term case-insensitively against title and content
	Search(ctx context.Context, term string, communityID uuid.UUID) ([]*post.Post, error)
}

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	Add(ctx context.Context, comment *post.Comment) (*post.Comment, error)
	ListByTarget(ctx context.Context, targetType post.TargetType, targetID uuid.UUID) ([]*post.Comment, error)
}

// UserRepository defines the interface for user data operations
type UserRepository interface {
	// Add fails with ErrDuplicatedCredentials when the email is taken
	Add(ctx context.Context, user *shared.User) (*shared.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*shared.User, error)
	GetByEmail(ctx context.Context, email string) (*shared.User, error)
}

// MediaElementRepository defines the interface for media element data operations
type MediaElementRepository interface {
	Add(ctx context.Context, media *shared.MediaElement) (*shared.MediaElement, error)

	// ListByUploader retrieves media elements, most recent first
	ListByUploader(ctx context.Context, uploaderID uuid.UUID) ([]*shared.MediaElement, error)
}

// Repositories groups every repository together with the unit of work that commits them
type Repositories struct {
	UnitOfWork             UnitOfWork
	AuctionRepository      AuctionRepository
	BidRepository          BidRepository
	CollectibleRepository  CollectibleRepository
	ReviewRepository       ReviewRepository
	CommunityRepository    CommunityRepository
	RoleRepository         RoleRepository
	PostRepository         PostRepository
	CommentRepository      CommentRepository
	UserRepository         UserRepository
	MediaElementRepository MediaElementRepository
}
