package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"collectioneer/internal/domain/auction"
	"collectioneer/internal/domain/shared"
	"collectioneer/internal/ports/outbound"

	"github.com/google/uuid"
)

const auctionColumns = `id, community_id, auctioneer_id, collectible_id, starting_price, current_price, deadline, closed_at, winner_id, version, created_at, updated_at`

// scanner is satisfied by both *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

// AuctionRepository implements the auction repository interface
type AuctionRepository struct {
	conn *Connection
}

// NewAuctionRepository creates a new auction repository
func NewAuctionRepository(conn *Connection) *AuctionRepository {
	return &AuctionRepository{conn: conn}
}

func scanAuction(row scanner) (*auction.Auction, error) {
	var (
		a        auction.Auction
		closedAt sql.NullTime
		winnerID uuid.NullUUID
	)
	err := row.Scan(
		&a.ID,
		&a.CommunityID,
		&a.AuctioneerID,
		&a.CollectibleID,
		&a.StartingPrice,
		&a.CurrentPrice,
		&a.Deadline,
		&closedAt,
		&winnerID,
		&a.Version,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	a.Deadline = a.Deadline.UTC()
	a.CreatedAt = a.CreatedAt.UTC()
	a.UpdatedAt = a.UpdatedAt.UTC()
	if closedAt.Valid {
		t := closedAt.Time.UTC()
		a.ClosedAt = &t
	}
	if winnerID.Valid {
		a.WinnerID = &winnerID.UUID
	}
	return &a, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *t, Valid: true}
}

func nullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}

// Add stages a new auction
func (r *AuctionRepository) Add(ctx context.Context, a *auction.Auction) (*auction.Auction, error) {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}

	query := r.conn.Rebind(`
		INSERT INTO auctions (` + auctionColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`)
	args := []any{
		a.ID,
		a.CommunityID,
		a.AuctioneerID,
		a.CollectibleID,
		a.StartingPrice,
		a.CurrentPrice,
		a.Deadline,
		nullTime(a.ClosedAt),
		nullUUID(a.WinnerID),
		a.Version,
		a.CreatedAt,
		a.UpdatedAt,
	}

	err := r.conn.apply(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to create auction: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

// GetByID retrieves an auction by ID
func (r *AuctionRepository) GetByID(ctx context.Context, id uuid.UUID) (*auction.Auction, error) {
	query := r.conn.Rebind(`
		SELECT ` + auctionColumns + `
		FROM auctions
		WHERE id = $1
	`)

	a, err := scanAuction(r.conn.GetDB().QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.ErrAuctionNotFound
		}
		return nil, fmt.Errorf("failed to get auction: %w", err)
	}

	return a, nil
}

// List retrieves a page of auctions with optional filters, newest first
func (r *AuctionRepository) List(ctx context.Context, filter outbound.AuctionFilter, page, pageSize int) ([]*auction.Auction, error) {
	baseQuery := `
		SELECT ` + auctionColumns + `
		FROM auctions
		WHERE 1 = 1
	`

	var whereClause string
	var args []any
	argCount := 1

	if filter.CommunityID != nil {
		whereClause += fmt.Sprintf(" AND community_id = $%d", argCount)
		args = append(args, *filter.CommunityID)
		argCount++
	}
	if filter.CollectibleID != nil {
		whereClause += fmt.Sprintf(" AND collectible_id = $%d", argCount)
		args = append(args, *filter.CollectibleID)
		argCount++
	}
	if filter.Unsettled {
		whereClause += " AND closed_at IS NULL"
	}
	if filter.OpenAt != nil {
		whereClause += fmt.Sprintf(" AND closed_at IS NULL AND deadline > $%d", argCount)
		args = append(args, shared.Timestamp(*filter.OpenAt))
		argCount++
	}

	// Add pagination
	limitClause := fmt.Sprintf("LIMIT $%d", argCount)
	offsetClause := fmt.Sprintf("OFFSET $%d", argCount+1)
	args = append(args, pageSize, (page-1)*pageSize)

	query := baseQuery + whereClause + " ORDER BY created_at DESC, id " + limitClause + " " + offsetClause

	return r.query(ctx, "list auctions", r.conn.Rebind(query), args...)
}

// ListExpired retrieves unsettled auctions whose deadline has passed, earliest first
func (r *AuctionRepository) ListExpired(ctx context.Context, now time.Time, limit int) ([]*auction.Auction, error) {
	query := r.conn.Rebind(`
		SELECT ` + auctionColumns + `
		FROM auctions
		WHERE closed_at IS NULL AND deadline <= $1
		ORDER BY deadline ASC
		LIMIT $2
	`)

	return r.query(ctx, "list expired auctions", query, shared.Timestamp(now), limit)
}

func (r *AuctionRepository) query(ctx context.Context, action, query string, args ...any) ([]*auction.Auction, error) {
	rows, err := r.conn.GetDB().QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", action, err)
	}
	defer rows.Close()

	var auctions []*auction.Auction
	for rows.Next() {
		a, err := scanAuction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan auction: %w", err)
		}
		auctions = append(auctions, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating auctions: %w", err)
	}

	return auctions, nil
}

// Update stages an update guarded by the auction version. It fails with
// ErrBidConflict when another writer got there first.
func (r *AuctionRepository) Update(ctx context.Context, a *auction.Auction, expectedVersion int64) error {
	query := r.conn.Rebind(`
		UPDATE auctions
		SET current_price = $1, closed_at = $2, winner_id = $3, version = $4, updated_at = $5
		WHERE id = $6 AND version = $7
	`)
	existsQuery := r.conn.Rebind(`SELECT 1 FROM auctions WHERE id = $1`)
	args := []any{
		a.CurrentPrice,
		nullTime(a.ClosedAt),
		nullUUID(a.WinnerID),
		a.Version,
		a.UpdatedAt,
		a.ID,
		expectedVersion,
	}

	return r.conn.apply(ctx, func(ctx context.Context, tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx, query, args...)
		if err != nil {
			return fmt.Errorf("failed to update auction: %w", err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rowsAffected > 0 {
			return nil
		}

		var exists int
		if err := tx.QueryRowContext(ctx, existsQuery, a.ID).Scan(&exists); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return shared.ErrAuctionNotFound
			}
			return fmt.Errorf("failed to check auction: %w", err)
		}
		return shared.ErrBidConflict
	})
}
