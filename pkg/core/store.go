package core

import "context"

// Store is the single data-access contract for the order-management
// system. Two backends implement it: the embedded SQLite store and the
// remote JSON:API client. Callers must not assume which one they hold.
//
// Every read returns a snapshot; nothing streams or subscribes. Lookups
// by id that resolve to nothing return a zero-valued record and a nil
// error, so callers check the ID field rather than the error. Only
// infrastructure failures (database errors, HTTP transport failures)
// surface as errors.
type Store interface {
	// ListRestaurants returns all restaurants.
	ListRestaurants(ctx context.Context) ([]Restaurant, error)
	// GetRestaurant returns the restaurant with the given id.
	GetRestaurant(ctx context.Context, id int64) (Restaurant, error)

	// ListCategories returns a restaurant's categories, sort order ascending.
	ListCategories(ctx context.Context, restaurantID int64) ([]Category, error)

	// ListMenuItemsByCategory returns the items of one category.
	ListMenuItemsByCategory(ctx context.Context, categoryID int64) ([]MenuItem, error)
	// ListMenuItemsByRestaurant returns every item across a restaurant's
	// categories.
	ListMenuItemsByRestaurant(ctx context.Context, restaurantID int64) ([]MenuItem, error)
	// GetMenuItem returns the menu item with the given id.
	GetMenuItem(ctx context.Context, id int64) (MenuItem, error)
	// SetMenuItemAvailability flips an item's availability flag.
	SetMenuItemAvailability(ctx context.Context, id int64, available bool) error

	// ListOrders returns a restaurant's orders, newest first.
	ListOrders(ctx context.Context, restaurantID int64) ([]Order, error)
	// ListOrdersByStatus returns a restaurant's orders in one status,
	// oldest first.
	ListOrdersByStatus(ctx context.Context, restaurantID int64, status OrderStatus) ([]Order, error)
	// ListActiveOrders returns orders that are neither Served nor
	// Cancelled, oldest first.
	ListActiveOrders(ctx context.Context, restaurantID int64) ([]Order, error)
	// GetOrder returns the order with the given id.
	GetOrder(ctx context.Context, id int64) (Order, error)
	// CreateOrder opens a new order with status Pending and total 0.
	CreateOrder(ctx context.Context, restaurantID int64, tableNumber int, customerName, notes string) (Order, error)
	// AddOrderItem appends a line to an order at the menu item's current
	// price, increments the order total, and refreshes its update
	// timestamp. It silently does nothing when either id is unresolved.
	AddOrderItem(ctx context.Context, orderID, menuItemID int64, quantity int, instructions string) error
	// UpdateOrderStatus sets an order's status. Transitions are not
	// validated here; wrap the store with backend.Strict to enforce the
	// lifecycle.
	UpdateOrderStatus(ctx context.Context, orderID int64, status OrderStatus) error
	// CancelOrder marks an order Cancelled.
	CancelOrder(ctx context.Context, orderID int64) error

	// ListOrderItems returns an order's lines with menu item names
	// resolved.
	ListOrderItems(ctx context.Context, orderID int64) ([]OrderItem, error)

	// CountOrders returns the number of orders ever placed at a restaurant.
	CountOrders(ctx context.Context, restaurantID int64) (int, error)
	// Revenue sums the totals of Served orders.
	Revenue(ctx context.Context, restaurantID int64) (float64, error)
	// CountOrdersByStatus counts a restaurant's orders in one status.
	CountOrdersByStatus(ctx context.Context, restaurantID int64, status OrderStatus) (int, error)
}
