package memory

import (
	"context"
	"sort"
	"time"

	"collectioneer/internal/domain/auction"
	"collectioneer/internal/domain/bid"
	"collectioneer/internal/domain/shared"
	"collectioneer/internal/ports/outbound"

	"github.com/google/uuid"
)

// AuctionRepository implements the auction repository interface
type AuctionRepository struct {
	store *Store
}

// NewAuctionRepository creates a new auction repository
func NewAuctionRepository(store *Store) *AuctionRepository {
	return &AuctionRepository{store: store}
}

func cloneAuction(a *auction.Auction) *auction.Auction {
	cp := *a
	return &cp
}

// Add stages a new auction
func (r *AuctionRepository) Add(ctx context.Context, a *auction.Auction) (*auction.Auction, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	stored := cloneAuction(a)

	err := r.store.apply(ctx, func(s *Store) (func(), error) {
		s.auctions[stored.ID] = stored
		return func() { delete(s.auctions, stored.ID) }, nil
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

// GetByID retrieves an auction by ID
func (r *AuctionRepository) GetByID(ctx context.Context, id uuid.UUID) (*auction.Auction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	a, ok := r.store.auctions[id]
	if !ok {
		return nil, shared.ErrAuctionNotFound
	}
	return cloneAuction(a), nil
}

// List retrieves a page of auctions, newest first
func (r *AuctionRepository) List(ctx context.Context, filter outbound.AuctionFilter, page, pageSize int) ([]*auction.Auction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var auctions []*auction.Auction
	for _, a := range r.store.auctions {
		if filter.CommunityID != nil && a.CommunityID != *filter.CommunityID {
			continue
		}
		if filter.CollectibleID != nil && a.CollectibleID != *filter.CollectibleID {
			continue
		}
		if filter.Unsettled && a.IsSettled() {
			continue
		}
		if filter.OpenAt != nil && !a.IsOpen(*filter.OpenAt) {
			continue
		}
		auctions = append(auctions, cloneAuction(a))
	}

	sort.Slice(auctions, func(i, j int) bool {
		if auctions[i].CreatedAt.Equal(auctions[j].CreatedAt) {
			return auctions[i].ID.String() < auctions[j].ID.String()
		}
		return auctions[i].CreatedAt.After(auctions[j].CreatedAt)
	})

	return paginate(auctions, page, pageSize), nil
}

// ListExpired retrieves unsettled auctions past their deadline, earliest first
func (r *AuctionRepository) ListExpired(ctx context.Context, now time.Time, limit int) ([]*auction.Auction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var auctions []*auction.Auction
	for _, a := range r.store.auctions {
		if a.IsSettled() || now.Before(a.Deadline) {
			continue
		}
		auctions = append(auctions, cloneAuction(a))
	}

	sort.Slice(auctions, func(i, j int) bool {
		return auctions[i].Deadline.Before(auctions[j].Deadline)
	})

	if limit > 0 && len(auctions) > limit {
		auctions = auctions[:limit]
	}
	return auctions, nil
}

// Update stages a version-checked update
func (r *AuctionRepository) Update(ctx context.Context, a *auction.Auction, expectedVersion int64) error {
	updated := cloneAuction(a)

	return r.store.apply(ctx, func(s *Store) (func(), error) {
		current, ok := s.auctions[updated.ID]
		if !ok {
			return nil, shared.ErrAuctionNotFound
		}
		if current.Version != expectedVersion {
			return nil, shared.ErrBidConflict
		}
		s.auctions[updated.ID] = updated
		return func() { s.auctions[updated.ID] = current }, nil
	})
}

func paginate[T any](items []T, page, pageSize int) []T {
	if page < 1 || pageSize < 1 {
		return items
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return nil
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}

// BidRepository implements the bid repository interface
type BidRepository struct {
	store *Store
}

// NewBidRepository creates a new bid repository
func NewBidRepository(store *Store) *BidRepository {
	return &BidRepository{store: store}
}

// Add stages a new bid
func (r *BidRepository) Add(ctx context.Context, b *bid.Bid) (*bid.Bid, error) {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	stored := *b

	err := r.store.apply(ctx, func(s *Store) (func(), error) {
		n := len(s.bids)
		s.bids = append(s.bids, &stored)
		return func() { s.bids = s.bids[:n] }, nil
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

// ListByAuction retrieves the bids of an auction in submission order
func (r *BidRepository) ListByAuction(ctx context.Context, auctionID uuid.UUID) ([]*bid.Bid, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var bids []*bid.Bid
	for _, b := range r.store.bids {
		if b.AuctionID == auctionID {
			cp := *b
			bids = append(bids, &cp)
		}
	}
	return bids, nil
}

// GetHighest retrieves the highest bid of an auction
func (r *BidRepository) GetHighest(ctx context.Context, auctionID uuid.UUID) (*bid.Bid, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var highest *bid.Bid
	for _, b := range r.store.bids {
		if b.AuctionID != auctionID {
			continue
		}
		if highest == nil || b.Amount > highest.Amount {
			highest = b
		}
	}
	if highest == nil {
		return nil, shared.ErrNoBidsFound
	}
	cp := *highest
	return &cp, nil
}
