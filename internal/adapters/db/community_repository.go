package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"collectioneer/internal/domain/community"
	"collectioneer/internal/domain/shared"

	"github.com/google/uuid"
)

// CommunityRepository implements the community repository interface
type CommunityRepository struct {
	conn *Connection
}

// NewCommunityRepository creates a new community repository
func NewCommunityRepository(conn *Connection) *CommunityRepository {
	return &CommunityRepository{conn: conn}
}

// Add stages a new community
func (r *CommunityRepository) Add(ctx context.Context, c *community.Community) (*community.Community, error) {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	query := r.conn.Rebind(`
		INSERT INTO communities (id, name, description, created_at)
		VALUES ($1, $2, $3, $4)
	`)
	args := []any{c.ID, c.Name, c.Description, c.CreatedAt}

	err := r.conn.apply(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to create community: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// GetByID retrieves a community by ID
func (r *CommunityRepository) GetByID(ctx context.Context, id uuid.UUID) (*community.Community, error) {
	query := r.conn.Rebind(`
		SELECT id, name, description, created_at
		FROM communities
		WHERE id = $1
	`)

	var c community.Community
	err := r.conn.GetDB().QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, shared.ErrCommunityNotFound
		}
		return nil, fmt.Errorf("failed to get community: %w", err)
	}

	c.CreatedAt = c.CreatedAt.UTC()
	return &c, nil
}

// List retrieves every community ordered by name
func (r *CommunityRepository) List(ctx context.Context) ([]*community.Community, error) {
	query := `
		SELECT id, name, description, created_at
		FROM communities
		ORDER BY name ASC
	`

	rows, err := r.conn.GetDB().QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list communities: %w", err)
	}
	defer rows.Close()

	var communities []*community.Community
	for rows.Next() {
		var c community.Community
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan community: %w", err)
		}
		c.CreatedAt = c.CreatedAt.UTC()
		communities = append(communities, &c)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating communities: %w", err)
	}

	return communities, nil
}

// RoleRepository implements the role repository interface
type RoleRepository struct {
	conn *Connection
}

// NewRoleRepository creates a new role repository
func NewRoleRepository(conn *Connection) *RoleRepository {
	return &RoleRepository{conn: conn}
}

// Add stages a new role
func (r *RoleRepository) Add(ctx context.Context, role *community.Role) (*community.Role, error) {
	if role.ID == uuid.Nil {
		role.ID = uuid.New()
	}

	query := r.conn.Rebind(`
		INSERT INTO roles (id, user_id, community_id, role_type, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`)
	args := []any{role.ID, role.UserID, role.CommunityID, int(role.Type), role.CreatedAt}

	err := r.conn.apply(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("failed to create role: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return role, nil
}

// ListByUser retrieves the roles of a user, oldest first
func (r *RoleRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*community.Role, error) {
	query := r.conn.Rebind(`
		SELECT id, user_id, community_id, role_type, created_at
		FROM roles
		WHERE user_id = $1
		ORDER BY created_at ASC
	`)

	rows, err := r.conn.GetDB().QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list roles: %w", err)
	}
	defer rows.Close()

	var roles []*community.Role
	for rows.Next() {
		var (
			role     community.Role
			roleType int
		)
		if err := rows.Scan(&role.ID, &role.UserID, &role.CommunityID, &roleType, &role.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan role: %w", err)
		}
		role.Type = community.RoleType(roleType)
		role.CreatedAt = role.CreatedAt.UTC()
		roles = append(roles, &role)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating roles: %w", err)
	}

	return roles, nil
}
