package db

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"collectioneer/internal/config"
	"collectioneer/internal/ports/outbound"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

var (
	_ outbound.UnitOfWork             = (*UnitOfWork)(nil)
	_ outbound.AuctionRepository      = (*AuctionRepository)(nil)
	_ outbound.BidRepository          = (*BidRepository)(nil)
	_ outbound.CollectibleRepository  = (*CollectibleRepository)(nil)
	_ outbound.ReviewRepository       = (*ReviewRepository)(nil)
	_ outbound.CommunityRepository    = (*CommunityRepository)(nil)
	_ outbound.RoleRepository         = (*RoleRepository)(nil)
	_ outbound.PostRepository         = (*PostRepository)(nil)
	_ outbound.CommentRepository      = (*CommentRepository)(nil)
	_ outbound.UserRepository         = (*UserRepository)(nil)
	_ outbound.MediaElementRepository = (*MediaElementRepository)(nil)
)

var now = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

// newTestConnection opens a migrated sqlite database private to the test
func newTestConnection(t *testing.T) *Connection {
	t.Helper()
	ctx := context.Background()

	conn, err := NewConnection(ctx, config.DatabaseConfig{
		Driver: config.DriverSQLite,
		URL:    filepath.Join(t.TempDir(), "collectioneer.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, conn.Migrate(ctx))
	return conn
}

func TestMigrate_IsIdempotent(t *testing.T) {
	conn := newTestConnection(t)
	require.NoError(t, conn.Migrate(context.Background()))
}

func TestParseDialect(t *testing.T) {
	d, err := ParseDialect("SQLite")
	require.NoError(t, err)
	require.Equal(t, SQLite, d)

	_, err = ParseDialect("oracle")
	require.ErrorContains(t, err, "unsupported database driver")
}

func TestDialect_Rebind(t *testing.T) {
	query := "UPDATE auctions SET version = $1 WHERE id = $2 AND version = $3"

	require.Equal(t, query, Postgres.Rebind(query))
	require.Equal(t, "UPDATE auctions SET version = ? WHERE id = ? AND version = ?", MySQL.Rebind(query))
	require.Equal(t, "UPDATE auctions SET version = ? WHERE id = ? AND version = ?", SQLite.Rebind(query))
}

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "postgres unique", err: &pq.Error{Code: "23505"}, want: true},
		{name: "postgres other", err: &pq.Error{Code: "23503"}, want: false},
		{name: "mysql duplicate", err: &mysql.MySQLError{Number: 1062}, want: true},
		{name: "mysql other", err: &mysql.MySQLError{Number: 1452}, want: false},
		{name: "sqlite message", err: errors.New("constraint failed: UNIQUE constraint failed: users.email (2067)"), want: true},
		{name: "unrelated", err: errors.New("connection refused"), want: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, isUniqueViolation(tc.err))
		})
	}
}

func TestExecuteTransaction_RollsBackOnError(t *testing.T) {
	conn := newTestConnection(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := conn.ExecuteTransaction(ctx, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `INSERT INTO communities (id, name, description, created_at) VALUES ('c1', 'coins', '', ?)`, now)
		require.NoError(t, err)
		return boom
	})
	require.ErrorIs(t, err, boom)

	var count int
	require.NoError(t, conn.GetDB().QueryRowContext(ctx, `SELECT COUNT(*) FROM communities`).Scan(&count))
	require.Zero(t, count)
}
