package shared

import (
	"errors"
	"fmt"
)

// ErrEntityNotFound is wrapped by every entity-specific not-found error
var ErrEntityNotFound = errors.New("entity not found")

// Domain-specific errors
var (
	// Not found errors
	ErrAuctionNotFound     = fmt.Errorf("auction %w", ErrEntityNotFound)
	ErrCollectibleNotFound = fmt.Errorf("collectible %w", ErrEntityNotFound)
	ErrCommunityNotFound   = fmt.Errorf("community %w", ErrEntityNotFound)
	ErrPostNotFound        = fmt.Errorf("post %w", ErrEntityNotFound)
	ErrUserNotFound        = fmt.Errorf("user %w", ErrEntityNotFound)

	// Auction errors
	ErrAuctionClosed        = errors.New("auction is closed")
	ErrAuctionAlreadyClosed = errors.New("auction already closed")
	ErrAuctionStillOpen     = errors.New("auction deadline has not passed")
	ErrInvalidDeadline      = errors.New("deadline must be in the future")
	ErrInvalidStartingPrice = errors.New("starting price must be greater than 0")

	// Bid errors
	ErrBidAmountTooLow       = errors.New("bid amount must be higher than current highest bid")
	ErrBidAmountInvalid      = errors.New("bid amount must be greater than 0")
	ErrBidBelowStartingPrice = errors.New("bid amount must be higher than starting price")
	ErrBidConflict           = errors.New("auction was modified concurrently")
	ErrNoBidsFound           = errors.New("no bids found")

	// Collectible errors
	ErrInvalidCollectible          = errors.New("collectible name is required")
	ErrCollectibleAlreadyInAuction = errors.New("collectible is already listed in another auction")

	// Review errors
	ErrInvalidRating = errors.New("rating must be between 1 and 5")

	// Community and role errors
	ErrInvalidCommunity = errors.New("community name is required")
	ErrInvalidRoleType  = errors.New("unknown role type")
	ErrRoleCreation     = errors.New("role creation failed")

	// Post and comment errors
	ErrInvalidPost          = errors.New("post title is required")
	ErrInvalidCommentTarget = errors.New("comment must target exactly one post or collectible")
	ErrEmptyComment         = errors.New("comment content is required")

	// User errors
	ErrDuplicatedCredentials = errors.New("email is already registered")
	ErrInvalidCredentials    = errors.New("email and password are required")

	// Unit of work errors
	ErrNoUnitOfWork = errors.New("no unit of work in context")

	// Validation errors
	ErrInvalidTimeFormat = errors.New("invalid time format")
	ErrInvalidRequest    = errors.New("invalid request")

	// WebSocket message validation errors
	ErrMessageTypeRequired      = errors.New("message type is required")
	ErrAuctionIDRequired        = errors.New("auction_id is required")
	ErrInvalidAmount            = errors.New("valid amount is required")
	ErrCommunityIDRequired      = errors.New("community_id is required")
	ErrCollectibleIDRequired    = errors.New("collectible_id is required")
	ErrDeadlineRequired         = errors.New("deadline is required")
	ErrStartingPriceRequired    = errors.New("starting_price is required")
	ErrUnknownMessageType       = errors.New("unknown message type")
	ErrInvalidIDFormat          = errors.New("invalid id format")
	ErrClientEventChannelAbsent = errors.New("client event channel not found")
)

// RoleCreationError hides the storage cause of a failed role creation behind a
// fixed message while keeping it reachable through errors.Unwrap.
type RoleCreationError struct {
	Err error
}

func (e *RoleCreationError) Error() string {
	return "Unknown error creating role."
}

func (e *RoleCreationError) Unwrap() error {
	return e.Err
}

// Is reports ErrRoleCreation as a match so callers need not use errors.As.
func (e *RoleCreationError) Is(target error) bool {
	return target == ErrRoleCreation
}
