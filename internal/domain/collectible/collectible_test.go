package collectible

import (
	"testing"
	"time"

	"collectioneer/internal/domain/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestCollectible_LinkAuction(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	current := uuid.New()
	next := uuid.New()

	tests := []struct {
		name           string
		linked         *uuid.UUID
		target         uuid.UUID
		currentSettled bool
		wantErr        error
		wantAuction    uuid.UUID
	}{
		{name: "unlisted", target: next, wantAuction: next},
		{name: "same auction", linked: &current, target: current, wantAuction: current},
		{name: "current auction unsettled", linked: &current, target: next, wantErr: shared.ErrCollectibleAlreadyInAuction, wantAuction: current},
		{name: "current auction settled", linked: &current, target: next, currentSettled: true, wantAuction: next},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c := New(uuid.New(), "Penny Black", "", uuid.New(), 2500, now)
			if tc.linked != nil {
				id := *tc.linked
				c.AuctionID = &id
			}

			err := c.LinkAuction(tc.target, tc.currentSettled, now.Add(time.Minute))
			require.ErrorIs(t, err, tc.wantErr)
			require.NotNil(t, c.AuctionID)
			require.Equal(t, tc.wantAuction, *c.AuctionID)
		})
	}
}
