package memory

import (
	"context"
	"sort"
	"strings"

	"collectioneer/internal/domain/community"
	"collectioneer/internal/domain/post"
	"collectioneer/internal/domain/shared"

	"github.com/google/uuid"
)

// CommunityRepository implements the community repository interface
type CommunityRepository struct {
	store *Store
}

// NewCommunityRepository creates a new community repository
func NewCommunityRepository(store *Store) *CommunityRepository {
	return &CommunityRepository{store: store}
}

func (r *CommunityRepository) Add(ctx context.Context, c *community.Community) (*community.Community, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	stored := *c

	err := r.store.apply(ctx, func(s *Store) (func(), error) {
		s.communities[stored.ID] = &stored
		return func() { delete(s.communities, stored.ID) }, nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CommunityRepository) GetByID(ctx context.Context, id uuid.UUID) (*community.Community, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	c, ok := r.store.communities[id]
	if !ok {
		return nil, shared.ErrCommunityNotFound
	}
	cp := *c
	return &cp, nil
}

// List retrieves every community ordered by name
func (r *CommunityRepository) List(ctx context.Context) ([]*community.Community, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	communities := make([]*community.Community, 0, len(r.store.communities))
	for _, c := range r.store.communities {
		cp := *c
		communities = append(communities, &cp)
	}
	sort.Slice(communities, func(i, j int) bool {
		return communities[i].Name < communities[j].Name
	})
	return communities, nil
}

// RoleRepository implements the role repository interface
type RoleRepository struct {
	store *Store
}

// NewRoleRepository creates a new role repository
func NewRoleRepository(store *Store) *RoleRepository {
	return &RoleRepository{store: store}
}

func (r *RoleRepository) Add(ctx context.Context, role *community.Role) (*community.Role, error) {
	if role.ID == uuid.Nil {
		role.ID = uuid.New()
	}
	stored := *role

	err := r.store.apply(ctx, func(s *Store) (func(), error) {
		n := len(s.roles)
		s.roles = append(s.roles, &stored)
		return func() { s.roles = s.roles[:n] }, nil
	})
	if err != nil {
		return nil, err
	}
	return role, nil
}

func (r *RoleRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*community.Role, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var roles []*community.Role
	for _, role := range r.store.roles {
		if role.UserID == userID {
			cp := *role
			roles = append(roles, &cp)
		}
	}
	return roles, nil
}

// PostRepository implements the post repository interface
type PostRepository struct {
	store *Store
}

// NewPostRepository creates a new post repository
func NewPostRepository(store *Store) *PostRepository {
	return &PostRepository{store: store}
}

func (r *PostRepository) Add(ctx context.Context, p *post.Post) (*post.Post, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	stored := *p

	err := r.store.apply(ctx, func(s *Store) (func(), error) {
		s.posts[stored.ID] = &stored
		return func() { delete(s.posts, stored.ID) }, nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *PostRepository) GetByID(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.posts[id]
	if !ok {
		return nil, shared.ErrPostNotFound
	}
	cp := *p
	return &cp, nil
}

// Search matches term case-insensitively against title and content, newest first
func (r *PostRepository) Search(ctx context.Context, term string, communityID uuid.UUID) ([]*post.Post, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	term = strings.ToLower(term)
	var posts []*post.Post
	for _, p := range r.store.posts {
		if p.CommunityID != communityID {
			continue
		}
		if !strings.Contains(strings.ToLower(p.Title), term) && !strings.Contains(strings.ToLower(p.Content), term) {
			continue
		}
		cp := *p
		posts = append(posts, &cp)
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

// CommentRepository implements the comment repository interface
type CommentRepository struct {
	store *Store
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(store *Store) *CommentRepository {
	return &CommentRepository{store: store}
}

func (r *CommentRepository) Add(ctx context.Context, c *post.Comment) (*post.Comment, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	stored := *c

	err := r.store.apply(ctx, func(s *Store) (func(), error) {
		n := len(s.comments)
		s.comments = append(s.comments, &stored)
		return func() { s.comments = s.comments[:n] }, nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *CommentRepository) ListByTarget(ctx context.Context, targetType post.TargetType, targetID uuid.UUID) ([]*post.Comment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var comments []*post.Comment
	for _, c := range r.store.comments {
		if c.TargetType == targetType && c.TargetID == targetID {
			cp := *c
			comments = append(comments, &cp)
		}
	}
	return comments, nil
}
