package store

import (
	"context"
	"fmt"

	"github.com/orderdesk-labs/orderdesk/pkg/core"
)

// Resource-server primitives. The development JSON:API server maps POST
// and PATCH requests onto these; they write exactly what the request
// carries and never recompute totals, because a JSON:API resource server
// is a dumb row store — the remote client owns the bookkeeping.

// InsertOrder writes an order row as-is and returns it with its id.
func (s *SQLiteStore) InsertOrder(ctx context.Context, o core.Order) (core.Order, error) {
	tx, err := s.begin(ctx)
	if err != nil {
		return core.Order{}, err
	}
	defer tx.Rollback()

	if o.CreatedAt == "" {
		o.CreatedAt = nowTimestamp()
	}
	if o.UpdatedAt == "" {
		o.UpdatedAt = o.CreatedAt
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO orders (table_number, status, customer_name, notes, total, restaurant_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		o.TableNumber, string(o.Status), o.CustomerName, o.Notes, o.Total,
		o.RestaurantID, o.CreatedAt, o.UpdatedAt)
	if err != nil {
		return core.Order{}, fmt.Errorf("failed to insert order: %w", err)
	}
	o.ID, err = res.LastInsertId()
	if err != nil {
		return core.Order{}, fmt.Errorf("failed to read order id: %w", err)
	}
	return o, commit(tx, "insert order")
}

// InsertOrderItem writes an order line as-is, keeping the unit price the
// caller captured, and returns it with its id.
func (s *SQLiteStore) InsertOrderItem(ctx context.Context, oi core.OrderItem) (core.OrderItem, error) {
	tx, err := s.begin(ctx)
	if err != nil {
		return core.OrderItem{}, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO order_item (quantity, unit_price, special_instructions, order_id, menu_item_id)
		 VALUES (?, ?, ?, ?, ?)`,
		oi.Quantity, oi.UnitPrice, oi.SpecialInstructions, oi.OrderID, oi.MenuItemID)
	if err != nil {
		return core.OrderItem{}, fmt.Errorf("failed to insert order item: %w", err)
	}
	oi.ID, err = res.LastInsertId()
	if err != nil {
		return core.OrderItem{}, fmt.Errorf("failed to read order item id: %w", err)
	}
	return oi, commit(tx, "insert order item")
}

// SetOrderTotal overwrites an order's running total.
func (s *SQLiteStore) SetOrderTotal(ctx context.Context, orderID int64, total float64) error {
	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`UPDATE orders SET total = ?, updated_at = ? WHERE id = ?`,
		total, nowTimestamp(), orderID)
	if err != nil {
		return fmt.Errorf("failed to set order total: %w", err)
	}
	return commit(tx, "set order total")
}
