package memory

import (
	"context"

	"collectioneer/internal/domain/collectible"
	"collectioneer/internal/domain/review"
	"collectioneer/internal/domain/shared"

	"github.com/google/uuid"
)

// CollectibleRepository implements the collectible repository interface
type CollectibleRepository struct {
	store *Store
}

// NewCollectibleRepository creates a new collectible repository
func NewCollectibleRepository(store *Store) *CollectibleRepository {
	return &CollectibleRepository{store: store}
}

func (r *CollectibleRepository) Add(ctx context.Context, c *collectible.Collectible) (*collectible.Collectible, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	stored := *c

	err := r.store.apply(ctx, func(s *Store) (func(), error) {
		s.collectibles[stored.ID] = &stored
		return func() { delete(s.collectibles, stored.ID) }, nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CollectibleRepository) GetByID(ctx context.Context, id uuid.UUID) (*collectible.Collectible, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	c, ok := r.store.collectibles[id]
	if !ok {
		return nil, shared.ErrCollectibleNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *CollectibleRepository) Update(ctx context.Context, c *collectible.Collectible) error {
	updated := *c

	return r.store.apply(ctx, func(s *Store) (func(), error) {
		current, ok := s.collectibles[updated.ID]
		if !ok {
			return nil, shared.ErrCollectibleNotFound
		}
		s.collectibles[updated.ID] = &updated
		return func() { s.collectibles[updated.ID] = current }, nil
	})
}

// ReviewRepository implements the review repository interface
type ReviewRepository struct {
	store *Store
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(store *Store) *ReviewRepository {
	return &ReviewRepository{store: store}
}

func (r *ReviewRepository) Add(ctx context.Context, rv *review.Review) (*review.Review, error) {
	if rv.ID == uuid.Nil {
		rv.ID = uuid.New()
	}
	stored := *rv

	err := r.store.apply(ctx, func(s *Store) (func(), error) {
		n := len(s.reviews)
		s.reviews = append(s.reviews, &stored)
		return func() { s.reviews = s.reviews[:n] }, nil
	})
	if err != nil {
		return nil, err
	}
	return rv, nil
}

func (r *ReviewRepository) ListByCollectible(ctx context.Context, collectibleID uuid.UUID) ([]*review.Review, error) {
	return r.list(func(rv *review.Review) bool { return rv.CollectibleID == collectibleID }), nil
}

func (r *ReviewRepository) ListByReviewer(ctx context.Context, reviewerID uuid.UUID) ([]*review.Review, error) {
	return r.list(func(rv *review.Review) bool { return rv.ReviewerID == reviewerID }), nil
}

func (r *ReviewRepository) list(match func(*review.Review) bool) []*review.Review {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var reviews []*review.Review
	for _, rv := range r.store.reviews {
		if match(rv) {
			cp := *rv
			reviews = append(reviews, &cp)
		}
	}
	return reviews
}
