package inbound

import (
	"context"

	"collectioneer/internal/domain/community"
	"collectioneer/internal/domain/post"

	"github.com/google/uuid"
)

// RoleService defines the interface for role operations
type RoleService interface {
	CreateNewRole(ctx context.Context, cmd CreateRoleCommand) (*community.Role, error)
	GetUserRoles(ctx context.Context, userID uuid.UUID) ([]*community.Role, error)
}

// CommunityService defines the interface for community operations
type CommunityService interface {
	// CreateNewCommunity creates a community and makes its creator the founder
	CreateNewCommunity(ctx context.Context, cmd CreateCommunityCommand) (*community.Community, error)

	// AddUserToCommunity grants a user the member role in a community
	AddUserToCommunity(ctx context.Context, cmd JoinCommunityCommand) error

	GetCommunities(ctx context.Context) ([]*community.Community, error)
	GetCommunity(ctx context.Context, query GetCommunityQuery) (*community.Community, error)
}

// PostService defines the interface for post operations
type PostService interface {
	AddPost(ctx context.Context, cmd AddPostCommand) (*post.Post, error)
	Search(ctx context.Context, query PostSearchQuery) ([]*post.Post, error)
	GetPost(ctx context.Context, postID uuid.UUID) (*post.Post, error)
}

// CommentService defines the interface for comment operations
type CommentService interface {
	PostComment(ctx context.Context, cmd PostCommentCommand) (*post.Comment, error)
	GetCommentsForCollectible(ctx context.Context, collectibleID uuid.UUID) ([]*post.CommentDTO, error)
	GetCommentsForPost(ctx context.Context, postID uuid.UUID) ([]*post.CommentDTO, error)
	MapCommentToDTO(ctx context.Context, comment *post.Comment) (*post.CommentDTO, error)
}

type CreateRoleCommand struct {
	UserID      uuid.UUID          `json:"user_id"`
	CommunityID uuid.UUID          `json:"community_id"`
	RoleType    community.RoleType `json:"role_type"`
}

type CreateCommunityCommand struct {
	Name        string    `json:"name"`
	Description string    `json:"description"`
	UserID      uuid.UUID `json:"user_id"`
}

type JoinCommunityCommand struct {
	UserID      uuid.UUID `json:"user_id"`
	CommunityID uuid.UUID `json:"community_id"`
}

type GetCommunityQuery struct {
	CommunityID uuid.UUID
}

type AddPostCommand struct {
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	CommunityID uuid.UUID `json:"community_id"`
	AuthorID    uuid.UUID `json:"author_id"`
}

type PostSearchQuery struct {
	SearchTerm  string
	CommunityID uuid.UUID
}

// PostCommentCommand targets exactly one of PostID or CollectibleID
type PostCommentCommand struct {
	AuthorID      uuid.UUID  `json:"author_id"`
	Content       string     `json:"content"`
	PostID        *uuid.UUID `json:"post_id,omitempty"`
	CollectibleID *uuid.UUID `json:"collectible_id,omitempty"`
}
