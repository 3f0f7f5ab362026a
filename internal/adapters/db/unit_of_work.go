package db

import (
	"context"
	"database/sql"

	"collectioneer/internal/adapters/changeset"
	"collectioneer/internal/domain/shared"
)

// op is a staged write, run inside the transaction of the committing unit of work
type op func(ctx context.Context, tx *sql.Tx) error

// UnitOfWork commits the writes staged on a context in one transaction
type UnitOfWork struct {
	conn *Connection
}

// NewUnitOfWork creates a new unit of work
func NewUnitOfWork(conn *Connection) *UnitOfWork {
	return &UnitOfWork{conn: conn}
}

func (u *UnitOfWork) Begin(ctx context.Context) context.Context {
	ctx, _ = changeset.With[op](ctx)
	return ctx
}

func (u *UnitOfWork) Complete(ctx context.Context) error {
	set, ok := changeset.From[op](ctx)
	if !ok {
		return shared.ErrNoUnitOfWork
	}
	ops := set.Drain()
	if len(ops) == 0 {
		return nil
	}

	return u.conn.ExecuteTransaction(ctx, func(tx *sql.Tx) error {
		for _, o := range ops {
			if err := o(ctx, tx); err != nil {
				return err
			}
		}
		return nil
	})
}

// apply stages o on the unit of work carried by ctx, or runs it in its own transaction
func (c *Connection) apply(ctx context.Context, o op) error {
	if set, ok := changeset.From[op](ctx); ok {
		set.Add(o)
		return nil
	}
	return c.ExecuteTransaction(ctx, func(tx *sql.Tx) error {
		return o(ctx, tx)
	})
}
