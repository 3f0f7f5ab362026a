package main

import (
	"context"
	"fmt"
	"time"

	"collectioneer/internal/adapters/broadcaster"
	"collectioneer/internal/adapters/db"
	"collectioneer/internal/adapters/redis"
	"collectioneer/internal/adapters/scheduler"
	"collectioneer/internal/adapters/ws"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 30 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the realtime auction server",
	Long: `Starts the websocket server, the Redis backed auction close scheduler and
the overdue auction sweeper. Stops gracefully on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(cmd.Context())
	},
}

func serve(ctx context.Context) error {
	log.Info().Msg("Starting Collectioneer...")

	conn, err := openDatabase(ctx)
	if err != nil {
		return err
	}
	defer conn.Close()

	repos := db.NewRepositoryFactory(conn).GetAllRepositories()
	log.Info().Msg("Database repositories initialized")

	redisClient := redis.NewClient(cfg.Redis)
	defer redisClient.Close()
	if err := redis.Ping(ctx, redisClient); err != nil {
		return err
	}
	log.Info().Msg("Redis connection established")

	redisBroadcaster := broadcaster.NewBroadcaster(broadcaster.RedisBroadcasterParams{
		RedisClient: redisClient,
		Logger:      log.Logger,
	})

	svc := newServices(repos, redisBroadcaster)

	auctionScheduler := scheduler.NewAuctionScheduler(scheduler.AuctionSchedulerParams{
		RedisClient:  redisClient,
		Closer:       svc.auctions,
		PollInterval: cfg.Scheduler.PollInterval,
		PoolSize:     cfg.Scheduler.PoolSize,
		BatchSize:    cfg.Scheduler.BatchSize,
		Logger:       log.Logger,
	})
	svc.auctions.SetScheduler(auctionScheduler)

	sweeper, err := scheduler.NewSweeper(scheduler.SweeperParams{
		Closer:    svc.auctions,
		Spec:      cfg.Scheduler.SweepSpec,
		BatchSize: cfg.Scheduler.BatchSize,
		Logger:    log.Logger,
	})
	if err != nil {
		return err
	}

	wsServer := ws.NewServer(ws.ServerParams{
		Config:         cfg,
		AuctionService: svc.auctions,
		Broadcaster:    redisBroadcaster,
		Logger:         log.Logger,
	})

	g, gctx := errgroup.WithContext(ctx)

	g.Go(wsServer.Start)

	g.Go(func() error {
		// settle what expired while the service was down
		sweeper.Sweep(gctx)

		auctionScheduler.Start()
		sweeper.Start()
		log.Info().Msg("Auction scheduler started")

		<-gctx.Done()
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("Starting graceful shutdown...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		var shutdownErr error
		if err := wsServer.Stop(shutdownCtx); err != nil {
			shutdownErr = fmt.Errorf("error stopping websocket server: %w", err)
		}

		auctionScheduler.Stop()
		sweeper.Stop()
		log.Info().Msg("Auction scheduler stopped")

		if err := redisBroadcaster.Close(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Error closing broadcaster")
		}
		return shutdownErr
	})

	if err := g.Wait(); err != nil {
		return err
	}

	log.Info().Msg("Graceful shutdown completed")
	return nil
}
