package shared

import (
	"time"

	"github.com/google/uuid"
)

// AuctionResult represents the settlement of a closed auction
type AuctionResult struct {
	AuctionID  uuid.UUID
	WinnerID   *uuid.UUID
	FinalPrice *float64
	ClosedAt   time.Time
}

// Timestamp normalizes t to the precision every supported store keeps.
func Timestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}
