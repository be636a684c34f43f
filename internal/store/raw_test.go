package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderdesk-labs/orderdesk/internal/testutil"
	"github.com/orderdesk-labs/orderdesk/pkg/core"
)

func TestInsertOrderKeepsCallerValues(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewSeededStore(t)

	o, err := s.InsertOrder(ctx, core.Order{
		TableNumber:  7,
		Status:       core.StatusReady,
		CustomerName: "Ada",
		Total:        12.34,
		RestaurantID: 1,
	})
	require.NoError(t, err)
	require.NotZero(t, o.ID)
	assert.NotEmpty(t, o.CreatedAt)

	got, err := s.GetOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, core.StatusReady, got.Status)
	assert.InDelta(t, 12.34, got.Total, 0.001)
}

func TestInsertOrderItemDoesNotBumpTotal(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewSeededStore(t)

	o, err := s.CreateOrder(ctx, 1, 2, "Ada", "")
	require.NoError(t, err)

	oi, err := s.InsertOrderItem(ctx, core.OrderItem{
		Quantity:   2,
		UnitPrice:  6.99,
		OrderID:    o.ID,
		MenuItemID: 1,
	})
	require.NoError(t, err)
	require.NotZero(t, oi.ID)

	// The raw insert carries no bookkeeping; the total stays put.
	got, err := s.GetOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.Zero(t, got.Total)
}

func TestSetOrderTotal(t *testing.T) {
	ctx := context.Background()
	s := testutil.NewSeededStore(t)

	o, err := s.CreateOrder(ctx, 1, 2, "Ada", "")
	require.NoError(t, err)

	require.NoError(t, s.SetOrderTotal(ctx, o.ID, 19.95))
	got, err := s.GetOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.InDelta(t, 19.95, got.Total, 0.001)
}
