package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/orderdesk-labs/orderdesk/pkg/core"
)

const orderColumns = `id, table_number, status, customer_name, notes, total, restaurant_id, created_at, updated_at`

func scanOrder(row interface {
	Scan(dest ...any) error
}) (core.Order, error) {
	var o core.Order
	var status string
	err := row.Scan(&o.ID, &o.TableNumber, &status, &o.CustomerName, &o.Notes,
		&o.Total, &o.RestaurantID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return core.Order{}, err
	}
	o.Status = core.OrderStatus(status)
	return o, nil
}

func scanOrders(rows *sql.Rows) ([]core.Order, error) {
	var out []core.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) listOrdersWhere(ctx context.Context, op, where, order string, args ...any) ([]core.Order, error) {
	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE `+where+` ORDER BY `+order, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to %s: %w", op, err)
	}
	defer rows.Close()

	out, err := scanOrders(rows)
	if err != nil {
		return nil, err
	}
	return out, commit(tx, op)
}

// ListOrders returns a restaurant's orders, newest first.
func (s *SQLiteStore) ListOrders(ctx context.Context, restaurantID int64) ([]core.Order, error) {
	return s.listOrdersWhere(ctx, "list orders", "restaurant_id = ?", "id DESC", restaurantID)
}

// ListOrdersByStatus returns a restaurant's orders in one status, oldest
// first.
func (s *SQLiteStore) ListOrdersByStatus(ctx context.Context, restaurantID int64, status core.OrderStatus) ([]core.Order, error) {
	return s.listOrdersWhere(ctx, "list orders by status",
		"restaurant_id = ? AND status = ?", "id ASC", restaurantID, string(status))
}

// ListActiveOrders returns orders that are neither Served nor Cancelled,
// oldest first.
func (s *SQLiteStore) ListActiveOrders(ctx context.Context, restaurantID int64) ([]core.Order, error) {
	return s.listOrdersWhere(ctx, "list active orders",
		"restaurant_id = ? AND status != ? AND status != ?", "id ASC",
		restaurantID, string(core.StatusServed), string(core.StatusCancelled))
}

// GetOrder returns the order with the given id, or a zero record when it
// does not exist.
func (s *SQLiteStore) GetOrder(ctx context.Context, id int64) (core.Order, error) {
	tx, err := s.begin(ctx)
	if err != nil {
		return core.Order{}, err
	}
	defer tx.Rollback()

	o, err := scanOrder(tx.QueryRowContext(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE id = ?`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return core.Order{}, commit(tx, "get order")
	}
	if err != nil {
		return core.Order{}, fmt.Errorf("failed to get order: %w", err)
	}
	return o, commit(tx, "get order")
}

// CreateOrder opens a new order with status Pending and total 0. The
// restaurant must exist; otherwise no row is written and a zero record
// comes back.
func (s *SQLiteStore) CreateOrder(ctx context.Context, restaurantID int64, tableNumber int, customerName, notes string) (core.Order, error) {
	tx, err := s.begin(ctx)
	if err != nil {
		return core.Order{}, err
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx,
		`SELECT count(1) FROM restaurant WHERE id = ?`, restaurantID).Scan(&exists)
	if err != nil {
		return core.Order{}, fmt.Errorf("failed to check restaurant: %w", err)
	}
	if exists == 0 {
		s.logger.Warn("create order for unknown restaurant", slog.Int64("restaurant_id", restaurantID))
		return core.Order{}, commit(tx, "create order")
	}

	now := nowTimestamp()
	res, err := tx.ExecContext(ctx,
		`INSERT INTO orders (table_number, status, customer_name, notes, total, restaurant_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, 0, ?, ?, ?)`,
		tableNumber, string(core.StatusPending), customerName, notes, restaurantID, now, now)
	if err != nil {
		return core.Order{}, fmt.Errorf("failed to create order: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return core.Order{}, fmt.Errorf("failed to read order id: %w", err)
	}

	if err := commit(tx, "create order"); err != nil {
		return core.Order{}, err
	}

	return core.Order{
		ID:           id,
		TableNumber:  tableNumber,
		Status:       core.StatusPending,
		CustomerName: customerName,
		Notes:        notes,
		RestaurantID: restaurantID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// AddOrderItem appends a line at the menu item's current price, bumps
// the order total, and refreshes the update timestamp — all in one
// transaction. When either id is unresolved the call is a silent no-op.
func (s *SQLiteStore) AddOrderItem(ctx context.Context, orderID, menuItemID int64, quantity int, instructions string) error {
	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var orderExists int
	if err := tx.QueryRowContext(ctx,
		`SELECT count(1) FROM orders WHERE id = ?`, orderID).Scan(&orderExists); err != nil {
		return fmt.Errorf("failed to check order: %w", err)
	}

	var price float64
	err = tx.QueryRowContext(ctx,
		`SELECT price FROM menu_item WHERE id = ?`, menuItemID).Scan(&price)
	if errors.Is(err, sql.ErrNoRows) || orderExists == 0 {
		s.logger.Debug("add order item skipped, unresolved id",
			slog.Int64("order_id", orderID), slog.Int64("menu_item_id", menuItemID))
		return commit(tx, "add order item")
	}
	if err != nil {
		return fmt.Errorf("failed to read menu item price: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO order_item (quantity, unit_price, special_instructions, order_id, menu_item_id)
		 VALUES (?, ?, ?, ?, ?)`,
		quantity, price, instructions, orderID, menuItemID)
	if err != nil {
		return fmt.Errorf("failed to insert order item: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`UPDATE orders SET total = total + ?, updated_at = ? WHERE id = ?`,
		price*float64(quantity), nowTimestamp(), orderID)
	if err != nil {
		return fmt.Errorf("failed to update order total: %w", err)
	}

	return commit(tx, "add order item")
}

// UpdateOrderStatus sets an order's status and refreshes the update
// timestamp. Unknown order ids are a silent no-op.
func (s *SQLiteStore) UpdateOrderStatus(ctx context.Context, orderID int64, status core.OrderStatus) error {
	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`UPDATE orders SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), nowTimestamp(), orderID)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	return commit(tx, "update order status")
}

// CancelOrder marks an order Cancelled.
func (s *SQLiteStore) CancelOrder(ctx context.Context, orderID int64) error {
	return s.UpdateOrderStatus(ctx, orderID, core.StatusCancelled)
}

// ListOrderItems returns an order's lines with menu item names resolved.
func (s *SQLiteStore) ListOrderItems(ctx context.Context, orderID int64) ([]core.OrderItem, error) {
	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx,
		`SELECT oi.id, oi.quantity, oi.unit_price, oi.special_instructions,
		        oi.order_id, oi.menu_item_id, mi.name
		 FROM order_item oi JOIN menu_item mi ON mi.id = oi.menu_item_id
		 WHERE oi.order_id = ? ORDER BY oi.id`, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list order items: %w", err)
	}
	defer rows.Close()

	var out []core.OrderItem
	for rows.Next() {
		var oi core.OrderItem
		if err := rows.Scan(&oi.ID, &oi.Quantity, &oi.UnitPrice, &oi.SpecialInstructions,
			&oi.OrderID, &oi.MenuItemID, &oi.MenuItemName); err != nil {
			return nil, fmt.Errorf("failed to scan order item: %w", err)
		}
		out = append(out, oi)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, commit(tx, "list order items")
}

// CountOrders returns the number of orders ever placed at a restaurant.
func (s *SQLiteStore) CountOrders(ctx context.Context, restaurantID int64) (int, error) {
	return s.countWhere(ctx, "count orders", "restaurant_id = ?", restaurantID)
}

// CountOrdersByStatus counts a restaurant's orders in one status.
func (s *SQLiteStore) CountOrdersByStatus(ctx context.Context, restaurantID int64, status core.OrderStatus) (int, error) {
	return s.countWhere(ctx, "count orders by status",
		"restaurant_id = ? AND status = ?", restaurantID, string(status))
}

func (s *SQLiteStore) countWhere(ctx context.Context, op, where string, args ...any) (int, error) {
	tx, err := s.begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var n int
	if err := tx.QueryRowContext(ctx,
		`SELECT count(1) FROM orders WHERE `+where, args...).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to %s: %w", op, err)
	}
	return n, commit(tx, op)
}

// Revenue sums the totals of Served orders.
func (s *SQLiteStore) Revenue(ctx context.Context, restaurantID int64) (float64, error) {
	tx, err := s.begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	var total float64
	err = tx.QueryRowContext(ctx,
		`SELECT coalesce(sum(total), 0) FROM orders WHERE restaurant_id = ? AND status = ?`,
		restaurantID, string(core.StatusServed)).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("failed to compute revenue: %w", err)
	}
	return total, commit(tx, "revenue")
}
