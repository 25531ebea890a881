// Package cache provides core.Cache implementations.
//
// The collection store only ever stores one key ("all"), but the adapters are
// general purpose so a host can share one cache between several page sources.
package cache

import (
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/aretw0/jadof/pkg/core"
)

// Memory is an unbounded in-process cache.
type Memory struct {
	mu      sync.RWMutex
	entries map[string]any
}

// NewMemory creates an empty Memory cache.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]any)}
}

func (m *Memory) Get(key string) (any, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.entries[key]
	return v, ok
}

func (m *Memory) Set(key string, value any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
}

func (m *Memory) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	clear(m.entries)
}

// Len returns the number of entries.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

// LRU is a size-bounded cache evicting the least recently used key.
type LRU struct {
	c *lru.Cache[string, any]
}

// NewLRU creates an LRU cache holding at most size keys.
func NewLRU(size int) (*LRU, error) {
	c, err := lru.New[string, any](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create lru cache: %w", err)
	}
	return &LRU{c: c}, nil
}

func (l *LRU) Get(key string) (any, bool) { return l.c.Get(key) }
func (l *LRU) Set(key string, value any)  { l.c.Add(key, value) }
func (l *LRU) Clear()                     { l.c.Purge() }

// Len returns the number of entries.
func (l *LRU) Len() int { return l.c.Len() }

// Expiring is an LRU cache whose entries also expire after a TTL, bounding how
// stale a memoized collection can get without watching the filesystem.
type Expiring struct {
	c *expirable.LRU[string, any]
}

// NewExpiring creates an expiring cache. A size of 0 means unbounded.
func NewExpiring(size int, ttl time.Duration) *Expiring {
	return &Expiring{c: expirable.NewLRU[string, any](size, nil, ttl)}
}

func (e *Expiring) Get(key string) (any, bool) { return e.c.Get(key) }
func (e *Expiring) Set(key string, value any)  { e.c.Add(key, value) }
func (e *Expiring) Clear()                     { e.c.Purge() }

// Len returns the number of entries.
func (e *Expiring) Len() int { return e.c.Len() }

var (
	_ core.Cache = (*Memory)(nil)
	_ core.Cache = (*LRU)(nil)
	_ core.Cache = (*Expiring)(nil)
)
