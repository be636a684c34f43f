package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/orderdesk-labs/orderdesk/pkg/core"
)

// ListRestaurants returns all restaurants.
func (s *SQLiteStore) ListRestaurants(ctx context.Context) ([]core.Restaurant, error) {
	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx,
		`SELECT id, name, cuisine_type, description FROM restaurant ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list restaurants: %w", err)
	}
	defer rows.Close()

	var out []core.Restaurant
	for rows.Next() {
		var r core.Restaurant
		if err := rows.Scan(&r.ID, &r.Name, &r.CuisineType, &r.Description); err != nil {
			return nil, fmt.Errorf("failed to scan restaurant: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, commit(tx, "list restaurants")
}

// GetRestaurant returns the restaurant with the given id, or a zero
// record when it does not exist.
func (s *SQLiteStore) GetRestaurant(ctx context.Context, id int64) (core.Restaurant, error) {
	tx, err := s.begin(ctx)
	if err != nil {
		return core.Restaurant{}, err
	}
	defer tx.Rollback()

	var r core.Restaurant
	err = tx.QueryRowContext(ctx,
		`SELECT id, name, cuisine_type, description FROM restaurant WHERE id = ?`, id).
		Scan(&r.ID, &r.Name, &r.CuisineType, &r.Description)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Restaurant{}, commit(tx, "get restaurant")
	}
	if err != nil {
		return core.Restaurant{}, fmt.Errorf("failed to get restaurant: %w", err)
	}
	return r, commit(tx, "get restaurant")
}

// ListCategories returns a restaurant's categories, sort order ascending.
func (s *SQLiteStore) ListCategories(ctx context.Context, restaurantID int64) ([]core.Category, error) {
	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx,
		`SELECT id, name, sort_order, restaurant_id FROM category
		 WHERE restaurant_id = ? ORDER BY sort_order`, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var out []core.Category
	for rows.Next() {
		var c core.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.SortOrder, &c.RestaurantID); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, commit(tx, "list categories")
}

// ListUsers returns a restaurant's staff accounts.
func (s *SQLiteStore) ListUsers(ctx context.Context, restaurantID int64) ([]core.User, error) {
	tx, err := s.begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx,
		`SELECT id, username, display_name, role, restaurant_id FROM app_user
		 WHERE restaurant_id = ? ORDER BY id`, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	var out []core.User
	for rows.Next() {
		var u core.User
		var role string
		if err := rows.Scan(&u.ID, &u.Username, &u.DisplayName, &role, &u.RestaurantID); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		u.Role = core.ParseUserRole(role)
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, commit(tx, "list users")
}

// GetUserByUsername returns the user with the given username, or a zero
// record when it does not exist.
func (s *SQLiteStore) GetUserByUsername(ctx context.Context, username string) (core.User, error) {
	tx, err := s.begin(ctx)
	if err != nil {
		return core.User{}, err
	}
	defer tx.Rollback()

	var u core.User
	var role string
	err = tx.QueryRowContext(ctx,
		`SELECT id, username, display_name, role, restaurant_id FROM app_user WHERE username = ?`,
		username).
		Scan(&u.ID, &u.Username, &u.DisplayName, &role, &u.RestaurantID)
	if errors.Is(err, sql.ErrNoRows) {
		return core.User{}, commit(tx, "get user")
	}
	if err != nil {
		return core.User{}, fmt.Errorf("failed to get user: %w", err)
	}
	u.Role = core.ParseUserRole(role)
	return u, commit(tx, "get user")
}
