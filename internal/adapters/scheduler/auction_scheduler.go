package scheduler

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"time"

	"collectioneer/internal/domain/shared"

	"github.com/alitto/pond"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// ExpirationsKey is the sorted set of pending closes scored by deadline
const ExpirationsKey = "auction:expirations"

// AuctionCloser settles a single auction
type AuctionCloser interface {
	CloseAuction(ctx context.Context, auctionID uuid.UUID) (*shared.AuctionResult, error)
}

// AuctionScheduler closes auctions at their deadline. Deadlines live in a
// Redis sorted set so that any instance can pick up a due close.
type AuctionScheduler struct {
	redis        *redis.Client
	closer       AuctionCloser
	pool         *pond.WorkerPool
	pollInterval time.Duration
	batchSize    int
	now          func() time.Time
	logger       zerolog.Logger
	ctx          context.Context
	cancel       context.CancelFunc
	wg           sync.WaitGroup
}

type AuctionSchedulerParams struct {
	RedisClient  *redis.Client
	Closer       AuctionCloser
	PollInterval time.Duration
	PoolSize     int
	BatchSize    int
	Now          func() time.Time
	Logger       zerolog.Logger
}

func NewAuctionScheduler(params AuctionSchedulerParams) *AuctionScheduler {
	ctx, cancel := context.WithCancel(context.Background())

	now := params.Now
	if now == nil {
		now = time.Now
	}
	batchSize := params.BatchSize
	if batchSize <= 0 {
		batchSize = 10
	}
	poolSize := params.PoolSize
	if poolSize <= 0 {
		poolSize = 1
	}
	pollInterval := params.PollInterval
	if pollInterval <= 0 {
		pollInterval = time.Second
	}

	return &AuctionScheduler{
		redis:        params.RedisClient,
		closer:       params.Closer,
		pool:         pond.New(poolSize, batchSize),
		pollInterval: pollInterval,
		batchSize:    batchSize,
		now:          now,
		logger:       params.Logger.With().Str("component", "auction_scheduler").Logger(),
		ctx:          ctx,
		cancel:       cancel,
	}
}

// ScheduleClose adds an auction to the expiration schedule. Scheduling an
// auction again moves its deadline.
func (s *AuctionScheduler) ScheduleClose(ctx context.Context, auctionID uuid.UUID, deadline time.Time) error {
	err := s.redis.ZAdd(ctx, ExpirationsKey, redis.Z{
		Score:  expirationScore(deadline),
		Member: auctionID.String(),
	}).Err()
	if err != nil {
		s.logger.Error().Err(err).Str("auction_id", auctionID.String()).Msg("Failed to schedule auction close")
		return fmt.Errorf("failed to schedule auction close: %w", err)
	}

	s.logger.Debug().
		Str("auction_id", auctionID.String()).
		Time("deadline", deadline).
		Msg("Auction scheduled for closing")
	return nil
}

// expirationScore is the deadline in unix seconds, rounded up so an auction is
// never claimed before its deadline
func expirationScore(deadline time.Time) float64 {
	score := deadline.Unix()
	if deadline.After(time.Unix(score, 0)) {
		score++
	}
	return float64(score)
}

// Start begins the scheduler loop
func (s *AuctionScheduler) Start() {
	s.logger.Info().Dur("poll_interval", s.pollInterval).Msg("Starting auction scheduler")

	s.wg.Add(1)
	go s.schedulerLoop()
}

// Stop gracefully stops the scheduler and waits for running closes
func (s *AuctionScheduler) Stop() {
	s.logger.Info().Msg("Stopping auction scheduler")
	s.cancel()
	s.wg.Wait()
	s.pool.StopAndWait()
}

func (s *AuctionScheduler) schedulerLoop() {
	defer s.wg.Done()

	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.dispatchDue(s.ctx)
		case <-s.ctx.Done():
			s.logger.Info().Msg("Scheduler loop stopped")
			return
		}
	}
}

// dispatchDue hands every due close to the worker pool and returns how many
// it dispatched
func (s *AuctionScheduler) dispatchDue(ctx context.Context) int {
	due, err := s.redis.ZRangeByScoreWithScores(ctx, ExpirationsKey, &redis.ZRangeBy{
		Min:   "-inf",
		Max:   strconv.FormatInt(s.now().Unix(), 10),
		Count: int64(s.batchSize),
	}).Result()
	if err != nil {
		if ctx.Err() == nil {
			s.logger.Error().Err(err).Msg("Failed to get due auction closes")
		}
		return 0
	}

	dispatched := 0
	for _, z := range due {
		member, _ := z.Member.(string)

		// Whoever removes the member owns the close
		removed, err := s.redis.ZRem(ctx, ExpirationsKey, member).Result()
		if err != nil || removed == 0 {
			continue
		}

		auctionID, err := uuid.Parse(member)
		if err != nil {
			s.logger.Error().Err(err).Str("auction_id", member).Msg("Invalid auction ID in schedule")
			continue
		}

		score := z.Score
		s.pool.Submit(func() {
			s.closeAuction(auctionID, score)
		})
		dispatched++
	}

	if dispatched > 0 {
		s.logger.Debug().Int("count", dispatched).Msg("Dispatched due auction closes")
	}
	return dispatched
}

// closeAuction settles one auction. Failures other than the auction being
// gone or settled put it back on the schedule for the next poll. An auction
// claimed a little early, as with clock skew between instances, is put back
// quietly.
func (s *AuctionScheduler) closeAuction(auctionID uuid.UUID, score float64) {
	result, err := s.closer.CloseAuction(s.ctx, auctionID)
	switch {
	case err == nil:
		logEvent := s.logger.Info().Str("auction_id", auctionID.String())
		if result.WinnerID != nil {
			logEvent = logEvent.Str("winner_id", result.WinnerID.String())
		}
		logEvent.Msg("Auction closed by scheduler")
	case errors.Is(err, shared.ErrAuctionAlreadyClosed), errors.Is(err, shared.ErrEntityNotFound):
		s.logger.Debug().Err(err).Str("auction_id", auctionID.String()).Msg("Skipping scheduled close")
	case errors.Is(err, shared.ErrAuctionStillOpen):
		s.logger.Debug().Str("auction_id", auctionID.String()).Msg("Auction not due yet, rescheduling")
		s.reschedule(auctionID, score)
	default:
		s.logger.Error().Err(err).Str("auction_id", auctionID.String()).Msg("Failed to close auction, rescheduling")
		s.reschedule(auctionID, score)
	}
}

func (s *AuctionScheduler) reschedule(auctionID uuid.UUID, score float64) {
	if err := s.redis.ZAdd(context.Background(), ExpirationsKey, redis.Z{Score: score, Member: auctionID.String()}).Err(); err != nil {
		s.logger.Error().Err(err).Str("auction_id", auctionID.String()).Msg("Failed to reschedule auction close")
	}
}
