package validator

import (
	"testing"

	domainerrors "foodbank/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	ID    string `json:"reservation_id" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	require.NoError(t, v.Validate(&sample{ID: "250412001"}))

	err := v.Validate(&sample{Email: "not-mail"})
	var validationErr *domainerrors.ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, []string{"reservation_id", "email"}, validationErr.Fields)
}
