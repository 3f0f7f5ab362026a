package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	inmocks "collectioneer/internal/ports/inbound/mocks"

	"github.com/golang/mock/gomock"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestNewSweeper_InvalidSpec(t *testing.T) {
	ctrl := gomock.NewController(t)
	_, err := NewSweeper(SweeperParams{
		Closer: inmocks.NewMockAuctionService(ctrl),
		Spec:   "every now and then",
		Logger: zerolog.Nop(),
	})
	require.Error(t, err)
}

func TestSweeper_Sweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	closer := inmocks.NewMockAuctionService(ctrl)

	s, err := NewSweeper(SweeperParams{Closer: closer, Spec: "@every 1m", BatchSize: 50, Logger: zerolog.Nop()})
	require.NoError(t, err)

	closer.EXPECT().CloseExpiredAuctions(gomock.Any(), 50).Return(3, nil)
	require.Equal(t, 3, s.Sweep(context.Background()))

	closer.EXPECT().CloseExpiredAuctions(gomock.Any(), 50).Return(1, errors.New("auction x: database unavailable"))
	require.Equal(t, 1, s.Sweep(context.Background()))
}

func TestSweeper_RunsOnSchedule(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	ctrl := gomock.NewController(t)
	closer := inmocks.NewMockAuctionService(ctrl)

	swept := make(chan struct{}, 1)
	closer.EXPECT().CloseExpiredAuctions(gomock.Any(), 10).DoAndReturn(
		func(context.Context, int) (int, error) {
			select {
			case swept <- struct{}{}:
			default:
			}
			return 0, nil
		}).MinTimes(1)

	s, err := NewSweeper(SweeperParams{Closer: closer, Spec: "@every 1s", BatchSize: 10, Logger: zerolog.Nop()})
	require.NoError(t, err)
	s.Start()

	select {
	case <-swept:
	case <-time.After(3 * time.Second):
		t.Fatal("sweep did not run")
	}
	s.Stop()
}
