package memory

import (
	"context"
	"sort"

	"collectioneer/internal/domain/shared"

	"github.com/google/uuid"
)

// UserRepository implements the user repository interface
type UserRepository struct {
	store *Store
}

// NewUserRepository creates a new user repository
func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

// Add stages a new user. The email uniqueness check runs when the write is applied.
func (r *UserRepository) Add(ctx context.Context, u *shared.User) (*shared.User, error) {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	stored := *u

	err := r.store.apply(ctx, func(s *Store) (func(), error) {
		if _, taken := s.emails[stored.Email]; taken {
			return nil, shared.ErrDuplicatedCredentials
		}
		s.users[stored.ID] = &stored
		s.emails[stored.Email] = stored.ID
		return func() {
			delete(s.users, stored.ID)
			delete(s.emails, stored.Email)
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*shared.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	u, ok := r.store.users[id]
	if !ok {
		return nil, shared.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*shared.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	id, ok := r.store.emails[email]
	if !ok {
		return nil, shared.ErrUserNotFound
	}
	cp := *r.store.users[id]
	return &cp, nil
}

// MediaElementRepository implements the media element repository interface
type MediaElementRepository struct {
	store *Store
}

// NewMediaElementRepository creates a new media element repository
func NewMediaElementRepository(store *Store) *MediaElementRepository {
	return &MediaElementRepository{store: store}
}

func (r *MediaElementRepository) Add(ctx context.Context, m *shared.MediaElement) (*shared.MediaElement, error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	stored := *m

	err := r.store.apply(ctx, func(s *Store) (func(), error) {
		n := len(s.media)
		s.media = append(s.media, &stored)
		return func() { s.media = s.media[:n] }, nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// ListByUploader retrieves media elements, most recent first
func (r *MediaElementRepository) ListByUploader(ctx context.Context, uploaderID uuid.UUID) ([]*shared.MediaElement, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var media []*shared.MediaElement
	for i := len(r.store.media) - 1; i >= 0; i-- {
		if m := r.store.media[i]; m.UploaderID == uploaderID {
			cp := *m
			media = append(media, &cp)
		}
	}
	sort.SliceStable(media, func(i, j int) bool {
		return media[i].CreatedAt.After(media[j].CreatedAt)
	})
	return media, nil
}
