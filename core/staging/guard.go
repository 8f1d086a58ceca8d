package staging

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/semaphore"
)

// Guard serialises replace cycles per target table inside one process. The
// Loader itself takes no locks; every writer of a dataset has to go through
// the same Guard for cycles not to interleave. A nil Guard runs fn unguarded.
type Guard struct {
	mu    sync.Mutex
	slots map[string]*semaphore.Weighted
}

// NewGuard creates an empty guard.
func NewGuard() *Guard {
	return &Guard{slots: make(map[string]*semaphore.Weighted)}
}

// Do runs fn while holding the slot of target. It waits until the slot is
// free or ctx is done.
func (g *Guard) Do(ctx context.Context, target string, fn func() error) error {
	if g == nil {
		return fn()
	}
	slot := g.slot(target)
	if err := slot.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("%s: waiting for running replace: %w", target, err)
	}
	defer slot.Release(1)
	return fn()
}

func (g *Guard) slot(target string) *semaphore.Weighted {
	g.mu.Lock()
	defer g.mu.Unlock()
	s, ok := g.slots[target]
	if !ok {
		s = semaphore.NewWeighted(1)
		g.slots[target] = s
	}
	return s
}
