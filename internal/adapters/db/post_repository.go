package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"collectioneer/internal/domain/post"
	"collectioneer/internal/domain/shared"

	"github.com/google/uuid"
)

// PostRepository implements the post repository interface
type PostRepository struct {
	conn *Connection
}

// NewPostRepository creates a new post repository
func NewPostRepository(conn *Connection) *PostRepository {
	return &PostRepository{conn: conn}
}

// Add stages a new post
func (r *PostRepository) Add(ctx context.Context, p *post.Post) (*post.Post, error) {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	query := r.conn.Rebind(`
		INSERT INTO posts (id, community_id, title, content, author_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`)
	args := []any{p.ID, p.CommunityID, p.Title, p.Content, p.AuthorID, p.CreatedAt}

	err := r.conn.apply(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to create post: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// GetByID retrieves a post by ID
func (r *PostRepository) GetByID(ctx context.Context, id uuid.UUID) (*post.Post, error) {
	query := r.conn.Rebind(`
		SELECT id, community_id, title, content, author_id, created_at
		FROM posts
		WHERE id = $1
	`)

	var p post.Post
	err := r.conn.GetDB().QueryRowContext(ctx, query, id).Scan(&p.ID, &p.CommunityID, &p.Title, &p.Content, &p.AuthorID, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	p.CreatedAt = p.CreatedAt.UTC()
	return &p, nil
}

// Search matches term case-insensitively against title and content, newest first
func (r *PostRepository) Search(ctx context.Context, term string, communityID uuid.UUID) ([]*post.Post, error) {
	query := r.conn.Rebind(`
		SELECT id, community_id, title, content, author_id, created_at
		FROM posts
		WHERE community_id = $1 AND (LOWER(title) LIKE $2 OR LOWER(content) LIKE $3)
		ORDER BY created_at DESC
	`)
	pattern := "%" + strings.ToLower(term) + "%"

	rows, err := r.conn.GetDB().QueryContext(ctx, query, communityID, pattern, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to search posts: %w", err)
	}
	defer rows.Close()

	var posts []*post.Post
	for rows.Next() {
		var p post.Post
		if err := rows.Scan(&p.ID, &p.CommunityID, &p.Title, &p.Content, &p.AuthorID, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		p.CreatedAt = p.CreatedAt.UTC()
		posts = append(posts, &p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating posts: %w", err)
	}

	return posts, nil
}

// CommentRepository implements the comment repository interface
type CommentRepository struct {
	conn *Connection
}

// NewCommentRepository creates a new comment repository
func NewCommentRepository(conn *Connection) *CommentRepository {
	return &CommentRepository{conn: conn}
}

// Add stages a new comment
func (r *CommentRepository) Add(ctx context.Context, c *post.Comment) (*post.Comment, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	query := r.conn.Rebind(`
		INSERT INTO comments (id, target_type, target_id, author_id, content, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`)
	args := []any{c.ID, string(c.TargetType), c.TargetID, c.AuthorID, c.Content, c.CreatedAt}

	err := r.conn.apply(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to create comment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ListByTarget retrieves the comments on a post or collectible, oldest first
func (r *CommentRepository) ListByTarget(ctx context.Context, targetType post.TargetType, targetID uuid.UUID) ([]*post.Comment, error) {
	query := r.conn.Rebind(`
		SELECT id, target_type, target_id, author_id, content, created_at
		FROM comments
		WHERE target_type = $1 AND target_id = $2
		ORDER BY created_at ASC
	`)

	rows, err := r.conn.GetDB().QueryContext(ctx, query, string(targetType), targetID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	defer rows.Close()

	var comments []*post.Comment
	for rows.Next() {
		var (
			c      post.Comment
			target string
		)
		if err := rows.Scan(&c.ID, &target, &c.TargetID, &c.AuthorID, &c.Content, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		c.TargetType = post.TargetType(target)
		c.CreatedAt = c.CreatedAt.UTC()
		comments = append(comments, &c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating comments: %w", err)
	}

	return comments, nil
}
