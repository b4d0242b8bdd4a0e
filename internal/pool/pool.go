// Package pool keeps the live objects of one kind (bullets, entities) as
// copy-on-write snapshots. The logic goroutine publishes a new slice whenever
// the set changes and readers iterate an immutable view without locking.
package pool

import (
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/vovakirdan/danmaku/internal/core"
)

// Pool is a copy-on-write set of collidables keyed by id.
// The zero value is an empty pool ready for use.
type Pool[T core.Collidable] struct {
	mu   sync.Mutex
	snap atomic.Pointer[[]T]
}

// New creates a pool holding items.
func New[T core.Collidable](items ...T) *Pool[T] {
	p := &Pool[T]{}
	if len(items) > 0 {
		p.Replace(items)
	}
	return p
}

// Load returns the current snapshot. The slice must not be modified.
func (p *Pool[T]) Load() []T {
	if s := p.snap.Load(); s != nil {
		return *s
	}
	return nil
}

// Len returns the number of items in the current snapshot.
func (p *Pool[T]) Len() int {
	return len(p.Load())
}

// Add publishes a snapshot with item appended.
func (p *Pool[T]) Add(item T) {
	p.mu.Lock()
	defer p.mu.Unlock()

	old := p.Load()
	next := make([]T, len(old), len(old)+1)
	copy(next, old)
	next = append(next, item)
	p.snap.Store(&next)
}

// Remove publishes a snapshot without the item with the given id.
// It reports whether anything was removed.
func (p *Pool[T]) Remove(id uuid.UUID) bool {
	removed := p.RemoveFunc(func(item T) bool { return item.ID() == id })
	return removed > 0
}

// RemoveFunc drops every item for which drop returns true and returns how
// many were dropped. No snapshot is published when nothing matches.
func (p *Pool[T]) RemoveFunc(drop func(T) bool) int {
	p.mu.Lock()
	defer p.mu.Unlock()

	old := p.Load()
	next := make([]T, 0, len(old))
	for _, item := range old {
		if !drop(item) {
			next = append(next, item)
		}
	}
	removed := len(old) - len(next)
	if removed > 0 {
		p.snap.Store(&next)
	}
	return removed
}

// Replace publishes a copy of items as the new snapshot.
func (p *Pool[T]) Replace(items []T) {
	next := make([]T, len(items))
	copy(next, items)

	p.mu.Lock()
	p.snap.Store(&next)
	p.mu.Unlock()
}

// Clear publishes an empty snapshot.
func (p *Pool[T]) Clear() {
	p.Replace(nil)
}
