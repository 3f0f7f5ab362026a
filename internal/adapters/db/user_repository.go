package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"collectioneer/internal/domain/shared"

	"github.com/google/uuid"
)

const userColumns = `id, username, email, name, password_hash, created_at`

// UserRepository implements the user repository interface
type UserRepository struct {
	conn *Connection
}

// NewUserRepository creates a new user repository
func NewUserRepository(conn *Connection) *UserRepository {
	return &UserRepository{conn: conn}
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*shared.User, error) {
	query := r.conn.Rebind(`
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`)
	return r.get(ctx, query, id)
}

// GetByEmail retrieves a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*shared.User, error) {
	query := r.conn.Rebind(`
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
	`)
	return r.get(ctx, query, email)
}

func (r *UserRepository) get(ctx context.Context, query string, arg any) (*shared.User, error) {
	var user shared.User
	err := r.conn.GetDB().QueryRowContext(ctx, query, arg).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.Name,
		&user.PasswordHash,
		&user.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	user.CreatedAt = user.CreatedAt.UTC()
	return &user, nil
}

// Add stages a new user. A taken email surfaces as ErrDuplicatedCredentials
// when the write is applied.
func (r *UserRepository) Add(ctx context.Context, user *shared.User) (*shared.User, error) {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	query := r.conn.Rebind(`
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)
	`)
	args := []any{user.ID, user.Username, user.Email, user.Name, user.PasswordHash, user.CreatedAt}

	err := r.conn.apply(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			if isUniqueViolation(err) {
				return shared.ErrDuplicatedCredentials
			}
			return fmt.Errorf("failed to create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// MediaElementRepository implements the media element repository interface
type MediaElementRepository struct {
	conn *Connection
}

// NewMediaElementRepository creates a new media element repository
func NewMediaElementRepository(conn *Connection) *MediaElementRepository {
	return &MediaElementRepository{conn: conn}
}

// Add stages a new media element
func (r *MediaElementRepository) Add(ctx context.Context, m *shared.MediaElement) (*shared.MediaElement, error) {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}

	query := r.conn.Rebind(`
		INSERT INTO media_elements (id, uploader_id, name, media_url, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`)
	args := []any{m.ID, m.UploaderID, m.Name, m.MediaURL, m.CreatedAt}

	err := r.conn.apply(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to create media element: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

// ListByUploader retrieves media elements, most recent first
func (r *MediaElementRepository) ListByUploader(ctx context.Context, uploaderID uuid.UUID) ([]*shared.MediaElement, error) {
	query := r.conn.Rebind(`
		SELECT id, uploader_id, name, media_url, created_at
		FROM media_elements
		WHERE uploader_id = $1
		ORDER BY created_at DESC
	`)

	rows, err := r.conn.GetDB().QueryContext(ctx, query, uploaderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list media elements: %w", err)
	}
	defer rows.Close()

	var media []*shared.MediaElement
	for rows.Next() {
		var m shared.MediaElement
		if err := rows.Scan(&m.ID, &m.UploaderID, &m.Name, &m.MediaURL, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan media element: %w", err)
		}
		m.CreatedAt = m.CreatedAt.UTC()
		media = append(media, &m)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating media elements: %w", err)
	}

	return media, nil
}
