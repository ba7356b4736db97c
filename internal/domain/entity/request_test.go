package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRequestStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from RequestStatus
		to   RequestStatus
		want bool
	}{
		{RequestStatusPending, RequestStatusApproved, true},
		{RequestStatusPending, RequestStatusCancelled, true},
		{RequestStatusApproved, RequestStatusReady, true},
		{RequestStatusApproved, RequestStatusCancelled, true},
		{RequestStatusReady, RequestStatusCompleted, true},
		{RequestStatusPending, RequestStatusReady, false},
		{RequestStatusPending, RequestStatusPending, false},
		{RequestStatusReady, RequestStatusCancelled, false},
		{RequestStatusCompleted, RequestStatusApproved, false},
		{RequestStatusCancelled, RequestStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestRequestStatus_IsTerminal(t *testing.T) {
	assert.True(t, RequestStatusCompleted.IsTerminal())
	assert.True(t, RequestStatusCancelled.IsTerminal())
	assert.False(t, RequestStatusPending.IsTerminal())
	assert.False(t, RequestStatusReady.IsTerminal())
}

func TestRequestStatus_IsValid(t *testing.T) {
	assert.True(t, RequestStatusReady.IsValid())
	assert.False(t, RequestStatus("shipped").IsValid())
}
