// Package changeset carries the writes staged by repositories through a
// context until a unit of work commits them.
package changeset

import (
	"context"
	"sync"
)

type contextKey[Op any] struct{}

// Set is an ordered list of staged operations
type Set[Op any] struct {
	mu  sync.Mutex
	ops []Op
}

// With returns a context carrying a change set for Op. A context that already
// carries one is returned unchanged together with the existing set.
func With[Op any](ctx context.Context) (context.Context, *Set[Op]) {
	if set, ok := From[Op](ctx); ok {
		return ctx, set
	}
	set := &Set[Op]{}
	return context.WithValue(ctx, contextKey[Op]{}, set), set
}

// From returns the change set carried by ctx, if any
func From[Op any](ctx context.Context) (*Set[Op], bool) {
	set, ok := ctx.Value(contextKey[Op]{}).(*Set[Op])
	return set, ok
}

// Add appends op to the set
func (s *Set[Op]) Add(op Op) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ops = append(s.ops, op)
}

// Drain removes and returns the staged operations in the order they were added
func (s *Set[Op]) Drain() []Op {
	s.mu.Lock()
	defer s.mu.Unlock()
	ops := s.ops
	s.ops = nil
	return ops
}

// Len returns the number of staged operations
func (s *Set[Op]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.ops)
}
