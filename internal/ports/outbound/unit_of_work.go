package outbound

import "context"

//go:generate mockgen -destination=mocks/mock_unit_of_work.go -package=mocks collectioneer/internal/ports/outbound UnitOfWork

// UnitOfWork is a commit boundary grouping the writes staged by repositories
type UnitOfWork interface {
	// Begin returns a context carrying a unit of work. A context that already
	// carries one is returned unchanged, so nested operations share a commit.
	Begin(ctx context.Context) context.Context

	// Complete atomically commits the writes staged so far and clears them.
	// Writes of a failed commit are discarded.
	Complete(ctx context.Context) error
}
