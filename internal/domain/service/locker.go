package service

import (
	"context"
	"time"
)

// Locker provides a mutual-exclusion lease shared by every process that
// materializes views.
type Locker interface {
	// Acquire blocks until the lock is held or ctx is done. The returned
	// release func must be called exactly once.
	Acquire(ctx context.Context, key string, ttl time.Duration) (release func(context.Context) error, err error)
}
