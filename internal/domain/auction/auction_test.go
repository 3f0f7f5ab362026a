package auction

import (
	"testing"
	"time"

	"collectioneer/internal/domain/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func newTestAuction(now time.Time) *Auction {
	return New(uuid.New(), uuid.New(), uuid.New(), 100, now.Add(24*time.Hour), now)
}

func TestAuction_StateAt(t *testing.T) {
	now := time.Now()
	a := newTestAuction(now)

	require.Equal(t, StateOpen, a.StateAt(now))
	require.Equal(t, StateClosed, a.StateAt(a.Deadline))
	require.Equal(t, StateClosed, a.StateAt(a.Deadline.Add(time.Second)))

	closedAt := now
	a.ClosedAt = &closedAt
	require.Equal(t, StateClosed, a.StateAt(now), "settled auction is closed regardless of deadline")
}

func TestAuction_AcceptBid(t *testing.T) {
	t.Parallel()

	now := time.Now()

	tests := []struct {
		name          string
		prior         []float64
		amount        float64
		at            time.Time
		expectedError error
		expectedPrice float64
	}{
		{
			name:          "first_bid_above_floor",
			amount:        200,
			at:            now,
			expectedPrice: 200,
		},
		{
			name:          "first_bid_equal_to_floor",
			amount:        100,
			at:            now,
			expectedError: shared.ErrBidBelowStartingPrice,
			expectedPrice: 100,
		},
		{
			name:          "first_bid_below_floor",
			amount:        50,
			at:            now,
			expectedError: shared.ErrBidBelowStartingPrice,
			expectedPrice: 100,
		},
		{
			name:          "outbid",
			prior:         []float64{150},
			amount:        151,
			at:            now,
			expectedPrice: 151,
		},
		{
			name:          "equal_to_highest",
			prior:         []float64{150},
			amount:        150,
			at:            now,
			expectedError: shared.ErrBidAmountTooLow,
			expectedPrice: 150,
		},
		{
			name:          "below_highest_but_above_floor",
			prior:         []float64{150},
			amount:        120,
			at:            now,
			expectedError: shared.ErrBidAmountTooLow,
			expectedPrice: 150,
		},
		{
			name:          "zero_amount",
			amount:        0,
			at:            now,
			expectedError: shared.ErrBidAmountInvalid,
			expectedPrice: 100,
		},
		{
			name:          "after_deadline",
			amount:        500,
			at:            now.Add(48 * time.Hour),
			expectedError: shared.ErrAuctionClosed,
			expectedPrice: 100,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			a := newTestAuction(now)
			for _, p := range tc.prior {
				require.NoError(t, a.AcceptBid(p, now))
			}
			version := a.Version

			err := a.AcceptBid(tc.amount, tc.at)
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				require.Equal(t, version, a.Version, "rejected bid must not bump the version")
			} else {
				require.NoError(t, err)
				require.Equal(t, version+1, a.Version)
			}
			require.Equal(t, tc.expectedPrice, a.CurrentPrice)
		})
	}
}

func TestAuction_Close(t *testing.T) {
	now := time.Now()
	a := newTestAuction(now)

	require.ErrorIs(t, a.Close(nil, now), shared.ErrAuctionStillOpen)

	winner := uuid.New()
	after := a.Deadline.Add(time.Minute)
	require.NoError(t, a.Close(&winner, after))
	require.True(t, a.IsSettled())
	require.Equal(t, winner, *a.WinnerID)
	require.Equal(t, StateClosed, a.StateAt(now))

	require.ErrorIs(t, a.Close(nil, after), shared.ErrAuctionAlreadyClosed)
}
