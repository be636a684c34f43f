package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidTransition(t *testing.T) {
	tests := []struct {
		name string
		from OrderStatus
		to   OrderStatus
		want bool
	}{
		{"pending to in progress", StatusPending, StatusInProgress, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"pending skips to ready", StatusPending, StatusReady, false},
		{"in progress to ready", StatusInProgress, StatusReady, true},
		{"in progress to served", StatusInProgress, StatusServed, false},
		{"ready to served", StatusReady, StatusServed, true},
		{"ready to cancelled", StatusReady, StatusCancelled, true},
		{"served is terminal", StatusServed, StatusCancelled, false},
		{"cancelled is terminal", StatusCancelled, StatusPending, false},
		{"no self transition", StatusPending, StatusPending, false},
		{"backwards move", StatusReady, StatusInProgress, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidTransition(tt.from, tt.to))
		})
	}
}

func TestTerminalAndActive(t *testing.T) {
	assert.True(t, StatusServed.Terminal())
	assert.True(t, StatusCancelled.Terminal())
	assert.False(t, StatusPending.Terminal())
	assert.False(t, StatusReady.Terminal())

	assert.True(t, StatusInProgress.Active())
	assert.False(t, StatusServed.Active())
}

func TestStateTransitionError(t *testing.T) {
	err := &StateTransitionError{OrderID: 7, From: StatusServed, To: StatusReady}
	assert.Equal(t, `order 7: illegal status transition "Served" -> "Ready"`, err.Error())
}
