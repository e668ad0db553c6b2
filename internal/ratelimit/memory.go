// internal/ratelimit/memory.go
package ratelimit

import (
	"context"
	"sync"
	"time"
)

type bucket struct {
	count         int
	windowResetAt time.Time
}

// MemoryStore is a process-local counter. State is lost on restart; this is
// a soft control, not a security boundary.
type MemoryStore struct {
	mtx     sync.Mutex
	buckets map[string]*bucket
	now     func() time.Time
}

func NewMemoryStore() *MemoryStore {
	s := &MemoryStore{
		buckets: make(map[string]*bucket),
		now:     time.Now,
	}

	// Clean up expired buckets every minute
	go s.cleanup()

	return s
}

// newMemoryStoreAt is used by tests to control the clock.
func newMemoryStoreAt(now func() time.Time) *MemoryStore {
	return &MemoryStore{
		buckets: make(map[string]*bucket),
		now:     now,
	}
}

func (s *MemoryStore) cleanup() {
	for {
		time.Sleep(time.Minute)
		now := s.now()
		s.mtx.Lock()
		for key, b := range s.buckets {
			if now.After(b.windowResetAt) {
				delete(s.buckets, key)
			}
		}
		s.mtx.Unlock()
	}
}

func (s *MemoryStore) Check(ctx context.Context, key string, limit int, window time.Duration) (Result, error) {
	now := s.now()

	s.mtx.Lock()
	defer s.mtx.Unlock()

	b, exists := s.buckets[key]
	if !exists || now.After(b.windowResetAt) {
		s.buckets[key] = &bucket{count: 1, windowResetAt: now.Add(window)}
		return Result{Allowed: true, Remaining: limit - 1}, nil
	}

	if b.count >= limit {
		return Result{Allowed: false, Remaining: 0}, nil
	}

	b.count++
	return Result{Allowed: true, Remaining: limit - b.count}, nil
}
