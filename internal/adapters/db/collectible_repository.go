package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"collectioneer/internal/domain/collectible"
	"collectioneer/internal/domain/shared"

	"github.com/google/uuid"
)

// CollectibleRepository implements the collectible repository interface
type CollectibleRepository struct {
	conn *Connection
}

// NewCollectibleRepository creates a new collectible repository
func NewCollectibleRepository(conn *Connection) *CollectibleRepository {
	return &CollectibleRepository{conn: conn}
}

// Add stages a new collectible
func (r *CollectibleRepository) Add(ctx context.Context, c *collectible.Collectible) (*collectible.Collectible, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	query := r.conn.Rebind(`
		INSERT INTO collectibles (id, community_id, name, description, owner_id, estimated_value, auction_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`)
	args := []any{
		c.ID,
		c.CommunityID,
		c.Name,
		c.Description,
		c.OwnerID,
		c.Value,
		nullUUID(c.AuctionID),
		c.CreatedAt,
		c.UpdatedAt,
	}

	err := r.conn.apply(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to create collectible: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// GetByID retrieves a collectible by ID
func (r *CollectibleRepository) GetByID(ctx context.Context, id uuid.UUID) (*collectible.Collectible, error) {
	query := r.conn.Rebind(`
		SELECT id, community_id, name, description, owner_id, estimated_value, auction_id, created_at, updated_at
		FROM collectibles
		WHERE id = $1
	`)

	var (
		c         collectible.Collectible
		auctionID uuid.NullUUID
	)
	err := r.conn.GetDB().QueryRowContext(ctx, query, id).Scan(
		&c.ID,
		&c.CommunityID,
		&c.Name,
		&c.Description,
		&c.OwnerID,
		&c.Value,
		&auctionID,
		&c.CreatedAt,
		&c.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.ErrCollectibleNotFound
		}
		return nil, fmt.Errorf("failed to get collectible: %w", err)
	}

	if auctionID.Valid {
		c.AuctionID = &auctionID.UUID
	}
	c.CreatedAt = c.CreatedAt.UTC()
	c.UpdatedAt = c.UpdatedAt.UTC()
	return &c, nil
}

// Update stages an update of a collectible
func (r *CollectibleRepository) Update(ctx context.Context, c *collectible.Collectible) error {
	query := r.conn.Rebind(`
		UPDATE collectibles
		SET name = $1, description = $2, estimated_value = $3, auction_id = $4, updated_at = $5
		WHERE id = $6
	`)
	args := []any{
		c.Name,
		c.Description,
		c.Value,
		nullUUID(c.AuctionID),
		c.UpdatedAt,
		c.ID,
	}

	return r.conn.apply(ctx, func(ctx context.Context, tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("failed to update collectible: %w", err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}

		if rowsAffected == 0 {
			return shared.ErrCollectibleNotFound
		}

		return nil
	})
}
