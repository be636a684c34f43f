package backend_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderdesk-labs/orderdesk/internal/backend"
	"github.com/orderdesk-labs/orderdesk/internal/testutil"
	"github.com/orderdesk-labs/orderdesk/pkg/core"
)

func TestStrictRejectsIllegalTransitions(t *testing.T) {
	ctx := context.Background()
	st := backend.Strict(testutil.NewSeededStore(t), testutil.NewTestLogger(t))

	o, err := st.CreateOrder(ctx, 1, 2, "Ada", "")
	require.NoError(t, err)

	// Pending cannot jump straight to Served.
	err = st.UpdateOrderStatus(ctx, o.ID, core.StatusServed)
	var ste *core.StateTransitionError
	require.ErrorAs(t, err, &ste)
	assert.Equal(t, o.ID, ste.OrderID)
	assert.Equal(t, core.StatusPending, ste.From)
	assert.Equal(t, core.StatusServed, ste.To)

	got, err := st.GetOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, core.StatusPending, got.Status, "rejected transition leaves the order untouched")
}

func TestStrictAllowsLifecycleWalk(t *testing.T) {
	ctx := context.Background()
	st := backend.Strict(testutil.NewSeededStore(t), testutil.NewTestLogger(t))

	o, err := st.CreateOrder(ctx, 1, 2, "Ada", "")
	require.NoError(t, err)

	for _, status := range []core.OrderStatus{
		core.StatusInProgress, core.StatusReady, core.StatusServed,
	} {
		require.NoError(t, st.UpdateOrderStatus(ctx, o.ID, status))
	}

	// Served is terminal.
	err = st.CancelOrder(ctx, o.ID)
	var ste *core.StateTransitionError
	assert.ErrorAs(t, err, &ste)
}

func TestStrictCancelFromActive(t *testing.T) {
	ctx := context.Background()
	st := backend.Strict(testutil.NewSeededStore(t), testutil.NewTestLogger(t))

	o, err := st.CreateOrder(ctx, 1, 2, "Ada", "")
	require.NoError(t, err)
	require.NoError(t, st.UpdateOrderStatus(ctx, o.ID, core.StatusInProgress))
	require.NoError(t, st.CancelOrder(ctx, o.ID))

	got, err := st.GetOrder(ctx, o.ID)
	require.NoError(t, err)
	assert.Equal(t, core.StatusCancelled, got.Status)
}

func TestStrictPassesThroughUnknownOrders(t *testing.T) {
	ctx := context.Background()
	st := backend.Strict(testutil.NewSeededStore(t), testutil.NewTestLogger(t))

	err := st.UpdateOrderStatus(ctx, 9999, core.StatusServed)
	require.NoError(t, err)
	var ste *core.StateTransitionError
	assert.False(t, errors.As(err, &ste))
}
