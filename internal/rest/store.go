package rest

import (
	"context"
	"log/slog"
	"sort"
	"strconv"

	"github.com/orderdesk-labs/orderdesk/internal/jsonapi"
	"github.com/orderdesk-labs/orderdesk/pkg/core"
)

// ListRestaurants returns all restaurants.
func (c *Client) ListRestaurants(ctx context.Context) ([]core.Restaurant, error) {
	body, err := c.get(ctx, "/restaurant/", nil)
	if err != nil || body == nil {
		return nil, err
	}
	resources, _ := jsonapi.DecodeMany(body)
	out := make([]core.Restaurant, 0, len(resources))
	for _, r := range resources {
		out = append(out, parseRestaurant(r))
	}
	return out, nil
}

// GetRestaurant returns the restaurant with the given id, or a zero
// record when the server has no such resource.
func (c *Client) GetRestaurant(ctx context.Context, id int64) (core.Restaurant, error) {
	body, err := c.get(ctx, "/restaurant/"+formatID(id)+"/", nil)
	if err != nil || body == nil {
		return core.Restaurant{}, err
	}
	return parseRestaurant(jsonapi.DecodeOne(body)), nil
}

// ListCategories returns a restaurant's categories, sort order ascending.
func (c *Client) ListCategories(ctx context.Context, restaurantID int64) ([]core.Category, error) {
	q := filterQuery("restaurant_id", restaurantID)
	q.Set("sort", "sort_order")
	body, err := c.get(ctx, "/category/", q)
	if err != nil || body == nil {
		return nil, err
	}
	resources, _ := jsonapi.DecodeMany(body)
	out := make([]core.Category, 0, len(resources))
	for _, r := range resources {
		out = append(out, parseCategory(r))
	}
	return out, nil
}

// ListMenuItemsByCategory returns the items of one category.
func (c *Client) ListMenuItemsByCategory(ctx context.Context, categoryID int64) ([]core.MenuItem, error) {
	body, err := c.get(ctx, "/menu_item/", filterQuery("category_id", categoryID))
	if err != nil || body == nil {
		return nil, err
	}
	resources, _ := jsonapi.DecodeMany(body)
	out := make([]core.MenuItem, 0, len(resources))
	for _, r := range resources {
		out = append(out, parseMenuItem(r))
	}
	return out, nil
}

// ListMenuItemsByRestaurant lists the restaurant's categories and then
// fetches each category's items with one request apiece, sequentially.
// The resource server offers no cross-category filter.
func (c *Client) ListMenuItemsByRestaurant(ctx context.Context, restaurantID int64) ([]core.MenuItem, error) {
	categories, err := c.ListCategories(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	var out []core.MenuItem
	for _, cat := range categories {
		items, err := c.ListMenuItemsByCategory(ctx, cat.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, items...)
	}
	return out, nil
}

// GetMenuItem returns the menu item with the given id, or a zero record
// when the server has no such resource.
func (c *Client) GetMenuItem(ctx context.Context, id int64) (core.MenuItem, error) {
	body, err := c.get(ctx, "/menu_item/"+formatID(id)+"/", nil)
	if err != nil || body == nil {
		return core.MenuItem{}, err
	}
	return parseMenuItem(jsonapi.DecodeOne(body)), nil
}

// SetMenuItemAvailability flips an item's availability flag.
func (c *Client) SetMenuItemAvailability(ctx context.Context, id int64, available bool) error {
	body, err := encodeResource(typeMenuItem, id, patchAvailabilityAttrs{Available: available})
	if err != nil {
		return err
	}
	_, err = c.patch(ctx, "/menu_item/"+formatID(id)+"/", body)
	return err
}

func (c *Client) listOrders(ctx context.Context, restaurantID int64, sortParam string, status *core.OrderStatus) ([]core.Order, error) {
	q := filterQuery("restaurant_id", restaurantID)
	q.Set("sort", sortParam)
	if status != nil {
		q.Set("filter[status]", string(*status))
	}
	body, err := c.get(ctx, "/orders/", q)
	if err != nil || body == nil {
		return nil, err
	}
	resources, _ := jsonapi.DecodeMany(body)
	out := make([]core.Order, 0, len(resources))
	for _, r := range resources {
		out = append(out, parseOrder(r))
	}
	return out, nil
}

// ListOrders returns a restaurant's orders, newest first.
func (c *Client) ListOrders(ctx context.Context, restaurantID int64) ([]core.Order, error) {
	return c.listOrders(ctx, restaurantID, "-id", nil)
}

// ListOrdersByStatus returns a restaurant's orders in one status, oldest
// first.
func (c *Client) ListOrdersByStatus(ctx context.Context, restaurantID int64, status core.OrderStatus) ([]core.Order, error) {
	return c.listOrders(ctx, restaurantID, "id", &status)
}

// ListActiveOrders fetches all of the restaurant's orders and keeps the
// ones that are neither Served nor Cancelled, oldest first. The server's
// filter syntax cannot express a negated status match.
func (c *Client) ListActiveOrders(ctx context.Context, restaurantID int64) ([]core.Order, error) {
	orders, err := c.listOrders(ctx, restaurantID, "id", nil)
	if err != nil {
		return nil, err
	}
	var out []core.Order
	for _, o := range orders {
		if o.Status.Active() {
			out = append(out, o)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// GetOrder returns the order with the given id, or a zero record when
// the server has no such resource.
func (c *Client) GetOrder(ctx context.Context, id int64) (core.Order, error) {
	body, err := c.get(ctx, "/orders/"+formatID(id)+"/", nil)
	if err != nil || body == nil {
		return core.Order{}, err
	}
	return parseOrder(jsonapi.DecodeOne(body)), nil
}

// CreateOrder opens a new order with status Pending and total 0.
func (c *Client) CreateOrder(ctx context.Context, restaurantID int64, tableNumber int, customerName, notes string) (core.Order, error) {
	body, err := encodeResource(typeOrder, 0, createOrderAttrs{
		RestaurantID: restaurantID,
		TableNumber:  tableNumber,
		Status:       string(core.StatusPending),
		CustomerName: customerName,
		Notes:        notes,
		Total:        0,
	})
	if err != nil {
		return core.Order{}, err
	}
	resp, err := c.post(ctx, "/orders/", body)
	if err != nil || resp == nil {
		return core.Order{}, err
	}
	return parseOrder(jsonapi.DecodeOne(resp)), nil
}

// AddOrderItem appends a line to an order in three round trips: read the
// menu item for its current price, post the line, then re-read the order
// and patch its total. The read-then-patch of the total is not guarded;
// two clients adding to the same order concurrently can lose an update.
func (c *Client) AddOrderItem(ctx context.Context, orderID, menuItemID int64, quantity int, instructions string) error {
	item, err := c.GetMenuItem(ctx, menuItemID)
	if err != nil {
		return err
	}
	if item.ID == 0 {
		c.logger.Debug("add order item skipped, menu item unresolved",
			slog.Int64("menu_item_id", menuItemID))
		return nil
	}

	body, err := encodeResource(typeOrderItem, 0, createOrderItemAttrs{
		OrderID:             orderID,
		MenuItemID:          menuItemID,
		Quantity:            quantity,
		UnitPrice:           jsonapi.Money(item.Price),
		SpecialInstructions: instructions,
	})
	if err != nil {
		return err
	}
	if _, err := c.post(ctx, "/order_item/", body); err != nil {
		return err
	}

	order, err := c.GetOrder(ctx, orderID)
	if err != nil {
		return err
	}
	if order.ID == 0 {
		c.logger.Debug("add order item total not updated, order unresolved",
			slog.Int64("order_id", orderID))
		return nil
	}

	total := order.Total + item.Price*float64(quantity)
	patchBody, err := encodeResource(typeOrder, orderID, patchTotalAttrs{Total: jsonapi.Money(total)})
	if err != nil {
		return err
	}
	_, err = c.patch(ctx, "/orders/"+formatID(orderID)+"/", patchBody)
	return err
}

// UpdateOrderStatus sets an order's status.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID int64, status core.OrderStatus) error {
	body, err := encodeResource(typeOrder, orderID, patchStatusAttrs{Status: string(status)})
	if err != nil {
		return err
	}
	_, err = c.patch(ctx, "/orders/"+formatID(orderID)+"/", body)
	return err
}

// CancelOrder marks an order Cancelled.
func (c *Client) CancelOrder(ctx context.Context, orderID int64) error {
	return c.UpdateOrderStatus(ctx, orderID, core.StatusCancelled)
}

// ListOrderItems returns an order's lines with menu item names resolved
// from the side-loaded include.
func (c *Client) ListOrderItems(ctx context.Context, orderID int64) ([]core.OrderItem, error) {
	q := filterQuery("order_id", orderID)
	q.Set("include", "menu_item")
	body, err := c.get(ctx, "/order_item/", q)
	if err != nil || body == nil {
		return nil, err
	}
	resources, included := jsonapi.DecodeMany(body)
	names := jsonapi.IncludedMap(included)

	out := make([]core.OrderItem, 0, len(resources))
	for _, r := range resources {
		oi := parseOrderItem(r)
		key := typeMenuItem + ":" + strconv.FormatInt(oi.MenuItemID, 10)
		if mi, ok := names[key]; ok {
			oi.MenuItemName = parseMenuItem(mi).Name
		}
		out = append(out, oi)
	}
	return out, nil
}

// CountOrders counts a restaurant's orders client-side; the resource
// server exposes no aggregate endpoints.
func (c *Client) CountOrders(ctx context.Context, restaurantID int64) (int, error) {
	orders, err := c.ListOrders(ctx, restaurantID)
	if err != nil {
		return 0, err
	}
	return len(orders), nil
}

// Revenue sums the totals of Served orders client-side.
func (c *Client) Revenue(ctx context.Context, restaurantID int64) (float64, error) {
	orders, err := c.ListOrdersByStatus(ctx, restaurantID, core.StatusServed)
	if err != nil {
		return 0, err
	}
	var total float64
	for _, o := range orders {
		total += o.Total
	}
	return total, nil
}

// CountOrdersByStatus counts a restaurant's orders in one status
// client-side.
func (c *Client) CountOrdersByStatus(ctx context.Context, restaurantID int64, status core.OrderStatus) (int, error) {
	orders, err := c.ListOrdersByStatus(ctx, restaurantID, status)
	if err != nil {
		return 0, err
	}
	return len(orders), nil
}
