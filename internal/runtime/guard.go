package runtime

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/aretw0/contentpub/pkg/ports"
)

// guardEntry holds the mutex and the reference count.
type guardEntry struct {
	mu   sync.Mutex
	refs int
}

// flowGuard serialises work on the same flow name.
// Local callers share a ref-counted mutex per key; an optional
// DistributedLocker extends the exclusion to other processes.
type flowGuard struct {
	mu      sync.Mutex
	entries map[string]*guardEntry

	locker ports.DistributedLocker
	ttl    time.Duration
	logger *slog.Logger
}

func newFlowGuard() *flowGuard {
	return &flowGuard{
		entries: make(map[string]*guardEntry),
		ttl:     DefaultLockTTL,
	}
}

func (g *flowGuard) acquire(key string) *guardEntry {
	g.mu.Lock()
	defer g.mu.Unlock()

	entry, ok := g.entries[key]
	if !ok {
		entry = &guardEntry{}
		g.entries[key] = entry
	}
	entry.refs++
	return entry
}

func (g *flowGuard) release(key string) {
	g.mu.Lock()
	defer g.mu.Unlock()

	entry, ok := g.entries[key]
	if !ok {
		return
	}
	entry.refs--
	if entry.refs <= 0 {
		delete(g.entries, key)
	}
}

// active reports how many keys currently have holders or waiters.
func (g *flowGuard) active() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.entries)
}

// withLock runs fn while holding the lock for key.
func (g *flowGuard) withLock(ctx context.Context, key string, fn func(context.Context) error) error {
	entry := g.acquire(key)
	entry.mu.Lock()
	defer func() {
		entry.mu.Unlock()
		g.release(key)
	}()

	if g.locker != nil {
		unlock, err := g.locker.Lock(ctx, key, g.ttl)
		if err != nil {
			return fmt.Errorf("failed to acquire distributed lock: %w", err)
		}
		defer func() {
			if err := unlock(ctx); err != nil {
				g.logger.Warn("Failed to release distributed lock (will expire via TTL)",
					"key", key,
					"err", err,
				)
			}
		}()
	}

	return fn(ctx)
}
