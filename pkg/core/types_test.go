package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOrderStatus(t *testing.T) {
	tests := []struct {
		in   string
		want OrderStatus
	}{
		{"Pending", StatusPending},
		{"In Progress", StatusInProgress},
		{"Ready", StatusReady},
		{"Served", StatusServed},
		{"Cancelled", StatusCancelled},
		{"garbage", StatusPending},
		{"", StatusPending},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseOrderStatus(tt.in), "input %q", tt.in)
	}
}

func TestParseUserRole(t *testing.T) {
	assert.Equal(t, RoleManager, ParseUserRole("Manager"))
	assert.Equal(t, RoleFrontDesk, ParseUserRole("Front Desk"))
	assert.Equal(t, RoleKitchen, ParseUserRole("Kitchen"))
	assert.Equal(t, RoleFrontDesk, ParseUserRole("unknown"))
}
