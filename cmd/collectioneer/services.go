package main

import (
	"context"
	"fmt"

	"collectioneer/internal/adapters/db"
	"collectioneer/internal/app"
	"collectioneer/internal/ports/outbound"

	"github.com/rs/zerolog/log"
)

// services holds every use case bound to one set of repositories
type services struct {
	auctions     *app.AuctionService
	collectibles *app.CollectibleService
	reviews      *app.ReviewService
	roles        *app.RoleService
	communities  *app.CommunityService
	posts        *app.PostService
	comments     *app.CommentService
	users        *app.UserService
}

// openDatabase connects to the configured database and applies its schema
func openDatabase(ctx context.Context) (*db.Connection, error) {
	conn, err := db.NewConnection(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := conn.Migrate(ctx); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	log.Info().Str("driver", cfg.Database.Driver).Msg("Database connection established")
	return conn, nil
}

func newServices(repos outbound.Repositories, broadcaster outbound.Broadcaster) *services {
	logger := log.Logger
	s := &services{}

	s.reviews = app.NewReviewService(app.ReviewServiceParams{
		UnitOfWork: repos.UnitOfWork,
		ReviewRepo: repos.ReviewRepository,
		Logger:     logger,
	})
	s.collectibles = app.NewCollectibleService(app.CollectibleServiceParams{
		UnitOfWork:      repos.UnitOfWork,
		CollectibleRepo: repos.CollectibleRepository,
		AuctionRepo:     repos.AuctionRepository,
		Reviews:         s.reviews,
		Logger:          logger,
	})
	s.auctions = app.NewAuctionService(app.AuctionServiceParams{
		UnitOfWork:   repos.UnitOfWork,
		AuctionRepo:  repos.AuctionRepository,
		BidRepo:      repos.BidRepository,
		Collectibles: s.collectibles,
		Broadcaster:  broadcaster,
		Logger:       logger,
	})
	s.roles = app.NewRoleService(app.RoleServiceParams{
		UnitOfWork: repos.UnitOfWork,
		RoleRepo:   repos.RoleRepository,
		Logger:     logger,
	})
	s.communities = app.NewCommunityService(app.CommunityServiceParams{
		UnitOfWork:    repos.UnitOfWork,
		CommunityRepo: repos.CommunityRepository,
		Roles:         s.roles,
		Logger:        logger,
	})
	s.posts = app.NewPostService(app.PostServiceParams{
		UnitOfWork: repos.UnitOfWork,
		PostRepo:   repos.PostRepository,
		Logger:     logger,
	})
	s.comments = app.NewCommentService(app.CommentServiceParams{
		UnitOfWork:  repos.UnitOfWork,
		CommentRepo: repos.CommentRepository,
		UserRepo:    repos.UserRepository,
		MediaRepo:   repos.MediaElementRepository,
		Logger:      logger,
	})
	s.users = app.NewUserService(app.UserServiceParams{
		UnitOfWork: repos.UnitOfWork,
		UserRepo:   repos.UserRepository,
		MediaRepo:  repos.MediaElementRepository,
		Logger:     logger,
	})

	log.Info().Msg("Business services initialized")
	return s
}
