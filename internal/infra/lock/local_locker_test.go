package lock

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLocker_Exclusive(t *testing.T) {
	locker := NewLocalLocker()
	ctx := context.Background()

	release, err := locker.Acquire(ctx, "views:rebuild", time.Second)
	require.NoError(t, err)

	waitCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()

	_, err = locker.Acquire(waitCtx, "views:rebuild", time.Second)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	other, err := locker.Acquire(ctx, "other", time.Second)
	require.NoError(t, err)
	require.NoError(t, other(ctx))

	require.NoError(t, release(ctx))
	// a second release is a no-op
	require.NoError(t, release(ctx))

	again, err := locker.Acquire(ctx, "views:rebuild", time.Second)
	require.NoError(t, err)
	assert.NoError(t, again(ctx))
}
