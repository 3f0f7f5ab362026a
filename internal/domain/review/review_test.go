package review

import (
	"testing"
	"time"

	"collectioneer/internal/domain/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestNew_RatingBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		rating      int
		expectError bool
	}{
		{name: "lowest", rating: MinRating},
		{name: "highest", rating: MaxRating},
		{name: "zero", rating: 0, expectError: true},
		{name: "six", rating: 6, expectError: true},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			r, err := New(uuid.New(), uuid.New(), "content", tc.rating, time.Now())
			if tc.expectError {
				require.ErrorIs(t, err, shared.ErrInvalidRating)
				require.Nil(t, r)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.rating, r.Rating)
		})
	}
}

func TestStats(t *testing.T) {
	avg, count := Stats(nil)
	require.Zero(t, avg)
	require.Zero(t, count)

	reviews := []*Review{{Rating: 5}, {Rating: 3}}
	avg, count = Stats(reviews)
	require.Equal(t, 4.0, avg)
	require.Equal(t, 2, count)
}
