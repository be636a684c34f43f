package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/orderdesk-labs/orderdesk/pkg/core"
)

func scanMenuItems(rows *sql.Rows) ([]core.MenuItem, error) {
	var out []core.MenuItem
	for rows.Next() {
		var m core.MenuItem
		if err := rows.Scan(&m.ID, &m.Name, &m.Description, &m.Price, &m.Available, &m.CategoryID); err != nil {
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// ListMenuItemsByCategory returns the items of one category.
func (s *SQLiteStore) ListMenuItemsByCategory(ctx context.Context, categoryID int64) ([]core.MenuItem, error) {
	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx,
		`SELECT id, name, description, price, available, category_id FROM menu_item
		 WHERE category_id = ? ORDER BY id`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	defer rows.Close()

	out, err := scanMenuItems(rows)
	if err != nil {
		return nil, err
	}
	return out, commit(tx, "list menu items")
}

// ListMenuItemsByRestaurant returns every item across a restaurant's
// categories.
func (s *SQLiteStore) ListMenuItemsByRestaurant(ctx context.Context, restaurantID int64) ([]core.MenuItem, error) {
	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx,
		`SELECT id, name, description, price, available, category_id FROM menu_item
		 WHERE category_id IN (SELECT id FROM category WHERE restaurant_id = ?)
		 ORDER BY id`, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu items: %w", err)
	}
	defer rows.Close()

	out, err := scanMenuItems(rows)
	if err != nil {
		return nil, err
	}
	return out, commit(tx, "list menu items")
}

// GetMenuItem returns the menu item with the given id, or a zero record
// when it does not exist.
func (s *SQLiteStore) GetMenuItem(ctx context.Context, id int64) (core.MenuItem, error) {
	tx, err := s.begin(ctx)
	if err != nil {
		return core.MenuItem{}, err
	}
	defer tx.Rollback()

	var m core.MenuItem
	err = tx.QueryRowContext(ctx,
		`SELECT id, name, description, price, available, category_id FROM menu_item WHERE id = ?`, id).
		Scan(&m.ID, &m.Name, &m.Description, &m.Price, &m.Available, &m.CategoryID)
	if errors.Is(err, sql.ErrNoRows) {
		return core.MenuItem{}, commit(tx, "get menu item")
	}
	if err != nil {
		return core.MenuItem{}, fmt.Errorf("failed to get menu item: %w", err)
	}
	return m, commit(tx, "get menu item")
}

// SetMenuItemAvailability flips an item's availability flag. Existing
// order lines keep the prices they were added at.
func (s *SQLiteStore) SetMenuItemAvailability(ctx context.Context, id int64, available bool) error {
	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`UPDATE menu_item SET available = ? WHERE id = ?`, available, id)
	if err != nil {
		return fmt.Errorf("failed to update menu item availability: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		s.logger.Debug("availability update for unknown menu item", slog.Int64("id", id))
	}
	return commit(tx, "update menu item availability")
}
