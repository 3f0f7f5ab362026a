package db

import (
	"context"
	"database/sql"
	"fmt"

	"collectioneer/internal/domain/review"

	"github.com/google/uuid"
)

// ReviewRepository implements the review repository interface
type ReviewRepository struct {
	conn *Connection
}

// NewReviewRepository creates a new review repository
func NewReviewRepository(conn *Connection) *ReviewRepository {
	return &ReviewRepository{conn: conn}
}

// Add stages a new review
func (r *ReviewRepository) Add(ctx context.Context, rv *review.Review) (*review.Review, error) {
	if rv.ID == uuid.Nil {
		rv.ID = uuid.New()
	}

	query := r.conn.Rebind(`
		INSERT INTO reviews (id, reviewer_id, collectible_id, content, rating, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`)
	args := []any{rv.ID, rv.ReviewerID, rv.CollectibleID, rv.Content, rv.Rating, rv.CreatedAt}

	err := r.conn.apply(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to create review: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rv, nil
}

// ListByCollectible retrieves the reviews of a collectible, oldest first
func (r *ReviewRepository) ListByCollectible(ctx context.Context, collectibleID uuid.UUID) ([]*review.Review, error) {
	return r.list(ctx, "collectible_id", collectibleID)
}

// ListByReviewer retrieves the reviews written by a user, oldest first
func (r *ReviewRepository) ListByReviewer(ctx context.Context, reviewerID uuid.UUID) ([]*review.Review, error) {
	return r.list(ctx, "reviewer_id", reviewerID)
}

// list filters on column, which is always one of the constants above
func (r *ReviewRepository) list(ctx context.Context, column string, id uuid.UUID) ([]*review.Review, error) {
	query := r.conn.Rebind(`
		SELECT id, reviewer_id, collectible_id, content, rating, created_at
		FROM reviews
		WHERE ` + column + ` = $1
		ORDER BY created_at ASC
	`)

	rows, err := r.conn.GetDB().QueryContext(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	var reviews []*review.Review
	for rows.Next() {
		var rv review.Review
		err := rows.Scan(
			&rv.ID,
			&rv.ReviewerID,
			&rv.CollectibleID,
			&rv.Content,
			&rv.Rating,
			&rv.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		rv.CreatedAt = rv.CreatedAt.UTC()
		reviews = append(reviews, &rv)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reviews: %w", err)
	}

	return reviews, nil
}
