package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// ExpiredCloser settles a batch of overdue auctions
type ExpiredCloser interface {
	CloseExpiredAuctions(ctx context.Context, limit int) (int, error)
}

// Sweeper periodically settles auctions whose deadline passed without a
// scheduled close, for example because Redis was unavailable at creation.
type Sweeper struct {
	cron      *cron.Cron
	closer    ExpiredCloser
	batchSize int
	ctx       context.Context
	cancel    context.CancelFunc
	logger    zerolog.Logger
}

type SweeperParams struct {
	Closer    ExpiredCloser
	Spec      string
	BatchSize int
	Logger    zerolog.Logger
}

func NewSweeper(params SweeperParams) (*Sweeper, error) {
	logger := params.Logger.With().Str("component", "deadline_sweeper").Logger()
	ctx, cancel := context.WithCancel(context.Background())

	s := &Sweeper{
		closer:    params.Closer,
		batchSize: params.BatchSize,
		ctx:       ctx,
		cancel:    cancel,
		logger:    logger,
	}
	cronLogger := cronLogger{logger: logger}
	s.cron = cron.New(
		cron.WithLogger(cronLogger),
		cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
	)

	if _, err := s.cron.AddFunc(params.Spec, func() { s.Sweep(s.ctx) }); err != nil {
		cancel()
		return nil, fmt.Errorf("invalid sweep spec %q: %w", params.Spec, err)
	}
	return s, nil
}

// Start runs the sweep on its schedule
func (s *Sweeper) Start() {
	s.logger.Info().Msg("Starting deadline sweeper")
	s.cron.Start()
}

// Stop cancels a running sweep and waits for it to return
func (s *Sweeper) Stop() {
	s.logger.Info().Msg("Stopping deadline sweeper")
	s.cancel()
	<-s.cron.Stop().Done()
}

// Sweep closes one batch of overdue auctions
func (s *Sweeper) Sweep(ctx context.Context) int {
	closed, err := s.closer.CloseExpiredAuctions(ctx, s.batchSize)
	if err != nil {
		s.logger.Error().Err(err).Int("closed", closed).Msg("Deadline sweep finished with errors")
		return closed
	}
	if closed > 0 {
		s.logger.Info().Int("closed", closed).Msg("Deadline sweep closed overdue auctions")
	}
	return closed
}

// cronLogger routes cron's own logging through zerolog
type cronLogger struct {
	logger zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
