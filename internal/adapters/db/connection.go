package db

import (
	"context"
	"database/sql"
	"fmt"

	"collectioneer/internal/config"
)

// Connection represents a database connection
type Connection struct {
	db      *sql.DB
	dialect Dialect
}

// NewConnection creates a new database connection
func NewConnection(ctx context.Context, cfg config.DatabaseConfig) (*Connection, error) {
	dialect, err := ParseDialect(cfg.Driver)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open(dialect.DriverName(), cfg.GetConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	// Test the connection
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Set connection pool settings
	maxOpen, maxIdle := cfg.MaxOpenConns, cfg.MaxIdleConns
	if dialect == SQLite {
		// a single writer avoids SQLITE_BUSY between pooled connections
		maxOpen, maxIdle = 1, 1
	}
	if maxOpen > 0 {
		db.SetMaxOpenConns(maxOpen)
	}
	if maxIdle > 0 {
		db.SetMaxIdleConns(maxIdle)
	}

	return &Connection{db: db, dialect: dialect}, nil
}

// GetDB returns the underlying sql.DB instance
func (c *Connection) GetDB() *sql.DB {
	return c.db
}

// Dialect returns the SQL dialect of the connection
func (c *Connection) Dialect() Dialect {
	return c.dialect
}

// Rebind rewrites a query written with $n placeholders for the connection's dialect
func (c *Connection) Rebind(query string) string {
	return c.dialect.Rebind(query)
}

// Close closes the database connection
func (c *Connection) Close() error {
	return c.db.Close()
}

// BeginTransaction starts a new database transaction
func (c *Connection) BeginTransaction(ctx context.Context) (*sql.Tx, error) {
	tx, err := c.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// ExecuteTransaction executes a function within a transaction
func (c *Connection) ExecuteTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := c.BeginTransaction(ctx)
	if err != nil {
		return err
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("tx failed: %w, rollback failed: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
