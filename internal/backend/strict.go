package backend

import (
	"context"
	"log/slog"

	"github.com/orderdesk-labs/orderdesk/pkg/core"
)

// strictStore enforces the order lifecycle on top of any backend. Status
// changes that the lifecycle forbids come back as *core.StateTransitionError
// without touching the underlying store.
type strictStore struct {
	core.Store
	logger *slog.Logger
}

var _ core.Store = (*strictStore)(nil)

// Strict wraps a store with order-lifecycle validation.
func Strict(st core.Store, logger *slog.Logger) core.Store {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &strictStore{Store: st, logger: logger}
}

func (s *strictStore) checkTransition(ctx context.Context, orderID int64, to core.OrderStatus) error {
	order, err := s.Store.GetOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if order.ID == 0 {
		// Unknown orders pass through; the backend treats them as no-ops.
		return nil
	}
	if !core.ValidTransition(order.Status, to) {
		s.logger.Warn("rejected status transition",
			slog.Int64("order_id", orderID),
			slog.String("from", string(order.Status)),
			slog.String("to", string(to)))
		return &core.StateTransitionError{OrderID: orderID, From: order.Status, To: to}
	}
	return nil
}

func (s *strictStore) UpdateOrderStatus(ctx context.Context, orderID int64, status core.OrderStatus) error {
	if err := s.checkTransition(ctx, orderID, status); err != nil {
		return err
	}
	return s.Store.UpdateOrderStatus(ctx, orderID, status)
}

func (s *strictStore) CancelOrder(ctx context.Context, orderID int64) error {
	if err := s.checkTransition(ctx, orderID, core.StatusCancelled); err != nil {
		return err
	}
	return s.Store.CancelOrder(ctx, orderID)
}
