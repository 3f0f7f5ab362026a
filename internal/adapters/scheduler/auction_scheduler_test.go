package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"collectioneer/internal/domain/shared"
	inmocks "collectioneer/internal/ports/inbound/mocks"
	"collectioneer/internal/ports/outbound"

	"github.com/alicebob/miniredis/v2"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

var (
	_ outbound.CloseScheduler = (*AuctionScheduler)(nil)
	_ AuctionCloser           = (*inmocks.MockAuctionService)(nil)
	_ ExpiredCloser           = (*inmocks.MockAuctionService)(nil)
)

var now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newTestScheduler(t *testing.T, server *miniredis.Miniredis, closer AuctionCloser, pollInterval time.Duration) (*AuctionScheduler, *redis.Client) {
	t.Helper()
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	s := NewAuctionScheduler(AuctionSchedulerParams{
		RedisClient:  client,
		Closer:       closer,
		PollInterval: pollInterval,
		PoolSize:     2,
		BatchSize:    10,
		Now:          func() time.Time { return now },
		Logger:       zerolog.Nop(),
	})
	return s, client
}

func TestAuctionScheduler_ScheduleClose(t *testing.T) {
	server := miniredis.RunT(t)
	ctrl := gomock.NewController(t)
	s, client := newTestScheduler(t, server, inmocks.NewMockAuctionService(ctrl), time.Second)
	t.Cleanup(func() {
		s.Stop()
		_ = client.Close()
	})

	id := uuid.New()
	deadline := now.Add(time.Hour)
	require.NoError(t, s.ScheduleClose(context.Background(), id, deadline))

	score, err := server.ZScore(ExpirationsKey, id.String())
	require.NoError(t, err)
	require.Equal(t, float64(deadline.Unix()), score)

	// rescheduling moves the deadline
	require.NoError(t, s.ScheduleClose(context.Background(), id, deadline.Add(time.Hour)))
	score, err = server.ZScore(ExpirationsKey, id.String())
	require.NoError(t, err)
	require.Equal(t, float64(deadline.Add(time.Hour).Unix()), score)
}

func TestAuctionScheduler_ScheduleCloseRoundsUp(t *testing.T) {
	server := miniredis.RunT(t)
	ctrl := gomock.NewController(t)
	closer := inmocks.NewMockAuctionService(ctrl)
	s, client := newTestScheduler(t, server, closer, time.Second)
	t.Cleanup(func() {
		s.Stop()
		_ = client.Close()
	})
	ctx := context.Background()

	id := uuid.New()
	require.NoError(t, s.ScheduleClose(ctx, id, now.Add(300*time.Millisecond)))

	score, err := server.ZScore(ExpirationsKey, id.String())
	require.NoError(t, err)
	require.Equal(t, float64(now.Unix()+1), score)

	// not due within the second the deadline falls in
	require.Zero(t, s.dispatchDue(ctx))
}

func TestAuctionScheduler_DispatchDue(t *testing.T) {
	server := miniredis.RunT(t)
	ctrl := gomock.NewController(t)
	closer := inmocks.NewMockAuctionService(ctrl)
	s, client := newTestScheduler(t, server, closer, time.Second)
	t.Cleanup(func() { _ = client.Close() })
	ctx := context.Background()

	closed := uuid.New()
	settled := uuid.New()
	failing := uuid.New()
	early := uuid.New()
	future := uuid.New()
	require.NoError(t, s.ScheduleClose(ctx, closed, now.Add(-time.Minute)))
	require.NoError(t, s.ScheduleClose(ctx, settled, now.Add(-2*time.Minute)))
	require.NoError(t, s.ScheduleClose(ctx, failing, now))
	require.NoError(t, s.ScheduleClose(ctx, early, now.Add(-time.Second)))
	require.NoError(t, s.ScheduleClose(ctx, future, now.Add(time.Hour)))

	closer.EXPECT().CloseAuction(gomock.Any(), closed).Return(&shared.AuctionResult{AuctionID: closed, ClosedAt: now}, nil)
	closer.EXPECT().CloseAuction(gomock.Any(), settled).Return(nil, shared.ErrAuctionAlreadyClosed)
	closer.EXPECT().CloseAuction(gomock.Any(), failing).Return(nil, errors.New("database unavailable"))
	closer.EXPECT().CloseAuction(gomock.Any(), early).Return(nil, shared.ErrAuctionStillOpen)

	require.Equal(t, 4, s.dispatchDue(ctx))
	s.Stop()

	members, err := server.ZMembers(ExpirationsKey)
	require.NoError(t, err)
	require.ElementsMatch(t, []string{failing.String(), early.String(), future.String()}, members)

	score, err := server.ZScore(ExpirationsKey, failing.String())
	require.NoError(t, err)
	require.Equal(t, float64(now.Unix()), score)

	score, err = server.ZScore(ExpirationsKey, early.String())
	require.NoError(t, err)
	require.Equal(t, float64(now.Add(-time.Second).Unix()), score)
}

func TestAuctionScheduler_LoopClosesDueAuctions(t *testing.T) {
	ignore := goleak.IgnoreCurrent()

	server, err := miniredis.Run()
	require.NoError(t, err)
	ctrl := gomock.NewController(t)
	closer := inmocks.NewMockAuctionService(ctrl)
	s, client := newTestScheduler(t, server, closer, 10*time.Millisecond)

	id := uuid.New()
	done := make(chan struct{})
	closer.EXPECT().CloseAuction(gomock.Any(), id).DoAndReturn(
		func(context.Context, uuid.UUID) (*shared.AuctionResult, error) {
			close(done)
			return &shared.AuctionResult{AuctionID: id, ClosedAt: now}, nil
		})

	require.NoError(t, s.ScheduleClose(context.Background(), id, now.Add(-time.Second)))
	s.Start()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("scheduled close did not run")
	}

	s.Stop()
	require.NoError(t, client.Close())
	server.Close()

	goleak.VerifyNone(t, ignore)
}
