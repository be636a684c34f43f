package core

// OrderStatus is the lifecycle state of an order. The constants carry the
// exact wire strings used by both backends.
type OrderStatus string

const (
	StatusPending    OrderStatus = "Pending"
	StatusInProgress OrderStatus = "In Progress"
	StatusReady      OrderStatus = "Ready"
	StatusServed     OrderStatus = "Served"
	StatusCancelled  OrderStatus = "Cancelled"
)

// ParseOrderStatus maps a wire string to an OrderStatus.
// Unknown strings fall back to StatusPending.
func ParseOrderStatus(s string) OrderStatus {
	switch OrderStatus(s) {
	case StatusPending, StatusInProgress, StatusReady, StatusServed, StatusCancelled:
		return OrderStatus(s)
	}
	return StatusPending
}

// UserRole is the staff role attached to a user. Roles are passed through
// to callers; this package does not enforce authorization.
type UserRole string

const (
	RoleManager   UserRole = "Manager"
	RoleFrontDesk UserRole = "Front Desk"
	RoleKitchen   UserRole = "Kitchen"
)

// ParseUserRole maps a wire string to a UserRole.
// Unknown strings fall back to RoleFrontDesk.
func ParseUserRole(s string) UserRole {
	switch UserRole(s) {
	case RoleManager, RoleFrontDesk, RoleKitchen:
		return UserRole(s)
	}
	return RoleFrontDesk
}

// Restaurant is a venue that owns categories, orders, and users.
type Restaurant struct {
	ID          int64
	Name        string
	CuisineType string
	Description string
}

// Category groups menu items within a restaurant. SortOrder defines the
// display order, ascending.
type Category struct {
	ID           int64
	Name         string
	SortOrder    int
	RestaurantID int64
}

// MenuItem is a sellable item inside a category.
type MenuItem struct {
	ID          int64
	Name        string
	Description string
	Price       float64
	Available   bool
	CategoryID  int64
}

// Order is a table order. Total is the running sum of its line items;
// unit prices are frozen when a line is added, so later menu price edits
// never change an existing order.
type Order struct {
	ID           int64
	TableNumber  int
	Status       OrderStatus
	CustomerName string
	Notes        string
	Total        float64
	RestaurantID int64
	CreatedAt    string
	UpdatedAt    string
}

// OrderItem is one line of an order: a quantity of one menu item at the
// unit price captured when the line was added. MenuItemName is
// denormalized by the producing backend so callers never re-resolve it.
type OrderItem struct {
	ID                  int64
	Quantity            int
	UnitPrice           float64
	SpecialInstructions string
	OrderID             int64
	MenuItemID          int64
	MenuItemName        string
}

// User is a staff account scoped to one restaurant.
type User struct {
	ID           int64
	Username     string
	DisplayName  string
	Role         UserRole
	RestaurantID int64
}
