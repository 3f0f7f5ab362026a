// Package memory is an in-process storage adapter. It keeps every entity in
// maps guarded by one lock and commits units of work with an undo log.
package memory

import (
	"context"
	"sync"

	"collectioneer/internal/adapters/changeset"
	"collectioneer/internal/domain/auction"
	"collectioneer/internal/domain/bid"
	"collectioneer/internal/domain/collectible"
	"collectioneer/internal/domain/community"
	"collectioneer/internal/domain/post"
	"collectioneer/internal/domain/review"
	"collectioneer/internal/domain/shared"
	"collectioneer/internal/ports/outbound"

	"github.com/google/uuid"
)

// op mutates the store and returns how to revert the mutation.
// It runs with the store lock held.
type op func(s *Store) (undo func(), err error)

// Store holds the state shared by the memory repositories
type Store struct {
	mu sync.RWMutex

	auctions     map[uuid.UUID]*auction.Auction
	bids         []*bid.Bid
	collectibles map[uuid.UUID]*collectible.Collectible
	reviews      []*review.Review
	communities  map[uuid.UUID]*community.Community
	roles        []*community.Role
	posts        map[uuid.UUID]*post.Post
	comments     []*post.Comment
	users        map[uuid.UUID]*shared.User
	emails       map[string]uuid.UUID
	media        []*shared.MediaElement
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{
		auctions:     make(map[uuid.UUID]*auction.Auction),
		collectibles: make(map[uuid.UUID]*collectible.Collectible),
		communities:  make(map[uuid.UUID]*community.Community),
		posts:        make(map[uuid.UUID]*post.Post),
		users:        make(map[uuid.UUID]*shared.User),
		emails:       make(map[string]uuid.UUID),
	}
}

// apply stages o on the unit of work carried by ctx, or runs it right away
func (s *Store) apply(ctx context.Context, o op) error {
	if set, ok := changeset.From[op](ctx); ok {
		set.Add(o)
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := o(s)
	return err
}

// UnitOfWork commits staged operations under the store lock. When one of them
// fails, the ones already applied are reverted in reverse order.
type UnitOfWork struct {
	store *Store
}

// NewUnitOfWork creates a unit of work over store
func NewUnitOfWork(store *Store) *UnitOfWork {
	return &UnitOfWork{store: store}
}

func (u *UnitOfWork) Begin(ctx context.Context) context.Context {
	ctx, _ = changeset.With[op](ctx)
	return ctx
}

func (u *UnitOfWork) Complete(ctx context.Context) error {
	set, ok := changeset.From[op](ctx)
	if !ok {
		return shared.ErrNoUnitOfWork
	}
	ops := set.Drain()
	if len(ops) == 0 {
		return nil
	}

	u.store.mu.Lock()
	defer u.store.mu.Unlock()

	undos := make([]func(), 0, len(ops))
	for _, o := range ops {
		undo, err := o(u.store)
		if err != nil {
			for i := len(undos) - 1; i >= 0; i-- {
				undos[i]()
			}
			return err
		}
		undos = append(undos, undo)
	}
	return nil
}

// Repositories returns every repository backed by store
func Repositories(store *Store) outbound.Repositories {
	return outbound.Repositories{
		UnitOfWork:             NewUnitOfWork(store),
		AuctionRepository:      NewAuctionRepository(store),
		BidRepository:          NewBidRepository(store),
		CollectibleRepository:  NewCollectibleRepository(store),
		ReviewRepository:       NewReviewRepository(store),
		CommunityRepository:    NewCommunityRepository(store),
		RoleRepository:         NewRoleRepository(store),
		PostRepository:         NewPostRepository(store),
		CommentRepository:      NewCommentRepository(store),
		UserRepository:         NewUserRepository(store),
		MediaElementRepository: NewMediaElementRepository(store),
	}
}
