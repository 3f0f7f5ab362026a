package outbound

import (
	"context"
	"time"

	"github.com/google/uuid"
)

//go:generate mockgen -destination=mocks/mock_scheduler.go -package=mocks collectioneer/internal/ports/outbound CloseScheduler

// CloseScheduler arranges for an auction to be settled at its deadline
type CloseScheduler interface {
	ScheduleClose(ctx context.Context, auctionID uuid.UUID, deadline time.Time) error
}
