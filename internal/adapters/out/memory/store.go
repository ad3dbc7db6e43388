// Package memory provides the in-memory implementation of the session order
// store. State lives only in the process: it is not persisted and is lost on
// restart, which matches the conversational nature of in-progress orders.
package memory

import (
	"hash/fnv"
	"sync"
	"time"

	"orderbot/internal/core/domain/model/order"
	"orderbot/internal/core/ports"
)

// shardCount is a power of two so the shard index reduces to a mask.
const shardCount = 32

var _ ports.SessionStore = (*Store)(nil)

type entry struct {
	ord     *order.Order
	touched time.Time
}

type shard struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

// Store maps session ids to in-progress orders across a fixed set of shards.
// Each shard has its own RWMutex, so sessions hashing to different shards
// never contend, and read-modify-write sequences for one session are atomic
// because they run under that session's shard lock.
//
// Every access refreshes the entry's last-touched timestamp, which Sweep
// uses to reap abandoned sessions when a TTL is configured.
type Store struct {
	shards [shardCount]shard

	// now is replaceable in tests.
	now func() time.Time
}

// NewStore creates an empty session order store.
func NewStore() *Store {
	s := &Store{now: time.Now}
	for i := range s.shards {
		s.shards[i].entries = make(map[string]*entry)
	}
	return s
}

func (s *Store) shardFor(sessionID string) *shard {
	h := fnv.New32a()
	h.Write([]byte(sessionID))
	return &s.shards[h.Sum32()&(shardCount-1)]
}

// Get returns a copy of the session's order, or (nil, false) when absent.
func (s *Store) Get(sessionID string) (*order.Order, bool) {
	sh := s.shardFor(sessionID)
	sh.mu.RLock()
	defer sh.mu.RUnlock()

	e, ok := sh.entries[sessionID]
	if !ok {
		return nil, false
	}
	return e.ord.Clone(), true
}

// Upsert stores a copy of ord for the session, creating or replacing the
// entry.
func (s *Store) Upsert(sessionID string, ord *order.Order) {
	sh := s.shardFor(sessionID)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	sh.entries[sessionID] = &entry{ord: ord.Clone(), touched: s.now()}
}

// Delete removes the session's entry. No-op when absent.
func (s *Store) Delete(sessionID string) {
	sh := s.shardFor(sessionID)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	delete(sh.entries, sessionID)
}

// Mutate runs fn under the session's shard lock as one atomic
// read-modify-write. fn receives the stored order (nil when absent) and
// returns the next state; nil removes the entry. The returned order is an
// independent copy of whatever was stored.
func (s *Store) Mutate(sessionID string, fn func(current *order.Order) *order.Order) *order.Order {
	sh := s.shardFor(sessionID)
	sh.mu.Lock()
	defer sh.mu.Unlock()

	var current *order.Order
	if e, ok := sh.entries[sessionID]; ok {
		current = e.ord
	}

	next := fn(current)
	if next == nil {
		delete(sh.entries, sessionID)
		return nil
	}

	sh.entries[sessionID] = &entry{ord: next.Clone(), touched: s.now()}
	return next.Clone()
}

// Len reports the number of sessions currently holding an in-progress order.
func (s *Store) Len() int {
	n := 0
	for i := range s.shards {
		sh := &s.shards[i]
		sh.mu.RLock()
		n += len(sh.entries)
		sh.mu.RUnlock()
	}
	return n
}

// Sweep removes every session whose order has not been touched within
// maxIdle and returns how many were removed. Called by the session janitor;
// never called when no TTL is configured, so by default sessions live until
// completion or process restart.
func (s *Store) Sweep(maxIdle time.Duration) int {
	cutoff := s.now().Add(-maxIdle)
	swept := 0
	for i := range s.shards {
		sh := &s.shards[i]
		sh.mu.Lock()
		for id, e := range sh.entries {
			if e.touched.Before(cutoff) {
				delete(sh.entries, id)
				swept++
			}
		}
		sh.mu.Unlock()
	}
	return swept
}
