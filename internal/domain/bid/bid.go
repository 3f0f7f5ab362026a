package bid

import (
	"time"

	"collectioneer/internal/domain/shared"

	"github.com/google/uuid"
)

// Bid represents an offer submitted against an auction. Bids are append-only.
type Bid struct {
	ID        uuid.UUID `json:"id"`
	AuctionID uuid.UUID `json:"auction_id"`
	BidderID  uuid.UUID `json:"bidder_id"`
	Amount    float64   `json:"amount"`
	CreatedAt time.Time `json:"created_at"`
}

// New creates a bid
func New(auctionID, bidderID uuid.UUID, amount float64, now time.Time) *Bid {
	return &Bid{
		ID:        uuid.New(),
		AuctionID: auctionID,
		BidderID:  bidderID,
		Amount:    amount,
		CreatedAt: shared.Timestamp(now),
	}
}

// IsValid returns true if the bid amount is valid (greater than 0)
func (b *Bid) IsValid() bool {
	return b.Amount > 0
}
