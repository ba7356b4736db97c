package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestBcryptHasher_HashAndCheck(t *testing.T) {
	hasher := NewBcryptHasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("pantry-admin-token")
	require.NoError(t, err)
	assert.NotEqual(t, "pantry-admin-token", hash)

	assert.True(t, hasher.Check("pantry-admin-token", hash))
	assert.False(t, hasher.Check("wrong-token", hash))
	assert.False(t, hasher.Check("", hash))
	assert.False(t, hasher.Check("pantry-admin-token", "invalid_hash"))
}

func TestBcryptHasher_EmptySecret(t *testing.T) {
	_, err := NewBcryptHasher().Hash("")
	require.Error(t, err)
}

func TestBcryptHasher_WithCustomCost(t *testing.T) {
	tests := []struct {
		name string
		cost int
		want int
	}{
		{name: "explicit", cost: 6, want: 6},
		{name: "below minimum", cost: 1, want: bcrypt.MinCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := NewBcryptHasherWithCost(tt.cost).Hash("secret")
			require.NoError(t, err)

			cost, err := bcrypt.Cost([]byte(hash))
			require.NoError(t, err)
			assert.Equal(t, tt.want, cost)
		})
	}
}
