// Package lock implements service.Locker on Redis, with an in-process
// fallback for single-instance deployments.
package lock

import (
	"context"
	"time"

	"foodbank/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	redis "github.com/redis/go-redis/v9"
)

const (
	lockReleaseScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
  return redis.call("DEL", KEYS[1])
end
return 0
`
	defaultRetryInterval = 100 * time.Millisecond
)

type redisLocker struct {
	client        *redis.Client
	script        *redis.Script
	retryInterval time.Duration
}

// NewRedisLocker creates a Locker backed by SET NX with a token-checked release.
func NewRedisLocker(client *redis.Client) service.Locker {
	return &redisLocker{
		client:        client,
		script:        redis.NewScript(lockReleaseScript),
		retryInterval: defaultRetryInterval,
	}
}

// Acquire polls SET NX until the key is taken or ctx is done.
func (l *redisLocker) Acquire(ctx context.Context, key string, ttl time.Duration) (func(context.Context) error, error) {
	if key == "" {
		return nil, errors.New("lock key is empty")
	}
	if ttl <= 0 {
		return nil, errors.New("lock ttl must be positive")
	}

	token := uuid.NewString()
	ticker := time.NewTicker(l.retryInterval)
	defer ticker.Stop()

	for {
		ok, err := l.client.SetNX(ctx, key, token, ttl).Result()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to acquire lock %s", key)
		}
		if ok {
			return func(releaseCtx context.Context) error {
				return errors.WithStack(l.script.Run(releaseCtx, l.client, []string{key}, token).Err())
			}, nil
		}

		select {
		case <-ctx.Done():
			return nil, errors.Wrapf(ctx.Err(), "timed out waiting for lock %s", key)
		case <-ticker.C:
		}
	}
}
