package auction

import (
	"time"

	"collectioneer/internal/domain/shared"

	"github.com/google/uuid"
)

// State represents the lifecycle state of an auction at a point in time
type State string

const (
	StateOpen   State = "open"
	StateClosed State = "closed"
)

// Auction represents a time-bounded sale of one collectible
type Auction struct {
	ID            uuid.UUID  `json:"id"`
	CommunityID   uuid.UUID  `json:"community_id"`
	AuctioneerID  uuid.UUID  `json:"auctioneer_id"`
	CollectibleID uuid.UUID  `json:"collectible_id"`
	StartingPrice float64    `json:"starting_price"`
	CurrentPrice  float64    `json:"current_price"`
	Deadline      time.Time  `json:"deadline"`
	ClosedAt      *time.Time `json:"closed_at,omitempty"`
	WinnerID      *uuid.UUID `json:"winner_id,omitempty"`
	Version       int64      `json:"version"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// New creates an open auction whose current price starts at the floor price
func New(communityID, auctioneerID, collectibleID uuid.UUID, startingPrice float64, deadline, now time.Time) *Auction {
	now = shared.Timestamp(now)
	return &Auction{
		ID:            uuid.New(),
		CommunityID:   communityID,
		AuctioneerID:  auctioneerID,
		CollectibleID: collectibleID,
		StartingPrice: startingPrice,
		CurrentPrice:  startingPrice,
		Deadline:      shared.Timestamp(deadline),
		Version:       1,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// StateAt returns the state of the auction at now. Closing is time-driven, so
// an auction past its deadline is closed even before it has been settled.
func (a *Auction) StateAt(now time.Time) State {
	if a.ClosedAt != nil || !now.Before(a.Deadline) {
		return StateClosed
	}
	return StateOpen
}

// IsOpen returns true if the auction accepts bids at now
func (a *Auction) IsOpen(now time.Time) bool {
	return a.StateAt(now) == StateOpen
}

// IsSettled returns true once the close has been recorded
func (a *Auction) IsSettled() bool {
	return a.ClosedAt != nil
}

// HasBids returns true if a bid has ever been accepted. Bids strictly increase
// the price, so the price only equals the floor while there are none.
func (a *Auction) HasBids() bool {
	return a.CurrentPrice > a.StartingPrice
}

// AcceptBid validates amount against the bid policy and raises the current price
func (a *Auction) AcceptBid(amount float64, now time.Time) error {
	if amount <= 0 {
		return shared.ErrBidAmountInvalid
	}
	if !a.IsOpen(now) {
		return shared.ErrAuctionClosed
	}
	if !a.HasBids() && amount <= a.StartingPrice {
		return shared.ErrBidBelowStartingPrice
	}
	if amount <= a.CurrentPrice {
		return shared.ErrBidAmountTooLow
	}

	a.CurrentPrice = amount
	a.Version++
	a.UpdatedAt = shared.Timestamp(now)
	return nil
}

// Close records the settlement of the auction
func (a *Auction) Close(winnerID *uuid.UUID, now time.Time) error {
	if a.IsSettled() {
		return shared.ErrAuctionAlreadyClosed
	}
	if now.Before(a.Deadline) {
		return shared.ErrAuctionStillOpen
	}

	closedAt := shared.Timestamp(now)
	a.ClosedAt = &closedAt
	a.WinnerID = winnerID
	a.Version++
	a.UpdatedAt = closedAt
	return nil
}
