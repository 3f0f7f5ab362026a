package collectible

import (
	"time"

	"collectioneer/internal/domain/shared"

	"github.com/google/uuid"
)

// Collectible is an item owned by a collector and optionally listed in an auction
type Collectible struct {
	ID          uuid.UUID  `json:"id"`
	CommunityID uuid.UUID  `json:"community_id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	OwnerID     uuid.UUID  `json:"owner_id"`
	Value       float64    `json:"value"`
	AuctionID   *uuid.UUID `json:"auction_id,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// New creates a collectible that is not listed in any auction
func New(communityID uuid.UUID, name, description string, ownerID uuid.UUID, value float64, now time.Time) *Collectible {
	now = shared.Timestamp(now)
	return &Collectible{
		ID:          uuid.New(),
		CommunityID: communityID,
		Name:        name,
		Description: description,
		OwnerID:     ownerID,
		Value:       value,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// LinkAuction records the auction the collectible is listed under. A listed
// collectible moves to a new auction only once its current one is settled.
// Relinking to the same auction is a no-op.
func (c *Collectible) LinkAuction(auctionID uuid.UUID, currentSettled bool, now time.Time) error {
	if c.AuctionID != nil {
		if *c.AuctionID == auctionID {
			return nil
		}
		if !currentSettled {
			return shared.ErrCollectibleAlreadyInAuction
		}
	}
	c.AuctionID = &auctionID
	c.UpdatedAt = shared.Timestamp(now)
	return nil
}
