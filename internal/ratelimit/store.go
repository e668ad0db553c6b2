// internal/ratelimit/store.go
package ratelimit

import (
	"context"
	"time"
)

// Result reports the outcome of a single counter check.
type Result struct {
	Allowed   bool `json:"allowed"`
	Remaining int  `json:"remaining"`
}

// Store counts submissions per key within a fixed window. Implementations
// are injected where needed so the in-memory counter can be swapped for a
// shared one (Redis) without touching call sites.
type Store interface {
	Check(ctx context.Context, key string, limit int, window time.Duration) (Result, error)
}
