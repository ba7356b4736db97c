package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromContext(t *testing.T) {
	t.Run("empty context", func(t *testing.T) {
		s := FromContext(context.Background())
		assert.NotNil(t, s)
		assert.Empty(t, s.UserID)
		assert.False(t, s.IsAdmin)
	})

	t.Run("stored session", func(t *testing.T) {
		ctx := WithSession(context.Background(), &Session{UserID: "U1", DisplayName: "山田"})
		s := FromContext(ctx)
		assert.Equal(t, "U1", s.UserID)
		assert.Equal(t, "山田", s.Actor())
	})

	t.Run("actor falls back to user id", func(t *testing.T) {
		assert.Equal(t, "U2", (&Session{UserID: "U2"}).Actor())
	})
}
