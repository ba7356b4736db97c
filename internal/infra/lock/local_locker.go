package lock

import (
	"context"
	"sync"
	"time"

	"foodbank/internal/domain/service"

	"github.com/pkg/errors"
)

// localLocker serializes holders inside one process. The ttl is ignored:
// a holder keeps the lock until release.
type localLocker struct {
	mu    sync.Mutex
	slots map[string]chan struct{}
}

// NewLocalLocker creates an in-process Locker.
func NewLocalLocker() service.Locker {
	return &localLocker{slots: make(map[string]chan struct{})}
}

func (l *localLocker) slot(key string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()

	ch, ok := l.slots[key]
	if !ok {
		ch = make(chan struct{}, 1)
		l.slots[key] = ch
	}

	return ch
}

// Acquire waits for the key's slot or for ctx to be done.
func (l *localLocker) Acquire(ctx context.Context, key string, _ time.Duration) (func(context.Context) error, error) {
	ch := l.slot(key)

	select {
	case ch <- struct{}{}:
	case <-ctx.Done():
		return nil, errors.Wrapf(ctx.Err(), "timed out waiting for lock %s", key)
	}

	var once sync.Once

	return func(context.Context) error {
		once.Do(func() { <-ch })

		return nil
	}, nil
}
