package rest

import (
	"encoding/json"

	"github.com/orderdesk-labs/orderdesk/internal/jsonapi"
	"github.com/orderdesk-labs/orderdesk/pkg/core"
)

// JSON:API resource type names, matching the server's endpoints.
const (
	typeRestaurant = "restaurant"
	typeCategory   = "category"
	typeMenuItem   = "menu_item"
	typeOrder      = "orders"
	typeOrderItem  = "order_item"
)

// Attribute payloads. Numeric fields use jsonapi.Number so that string
// encodings coming off the wire still decode.

type restaurantAttrs struct {
	Name        string `json:"name"`
	CuisineType string `json:"cuisine_type"`
	Description string `json:"description"`
}

type categoryAttrs struct {
	Name         string         `json:"name"`
	SortOrder    jsonapi.Number `json:"sort_order"`
	RestaurantID jsonapi.Number `json:"restaurant_id"`
}

type menuItemAttrs struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Price       jsonapi.Number `json:"price"`
	Available   bool           `json:"available"`
	CategoryID  jsonapi.Number `json:"category_id"`
}

type orderAttrs struct {
	TableNumber  jsonapi.Number `json:"table_number"`
	Status       string         `json:"status"`
	CustomerName string         `json:"customer_name"`
	Notes        string         `json:"notes"`
	Total        jsonapi.Number `json:"total"`
	RestaurantID jsonapi.Number `json:"restaurant_id"`
	CreatedAt    string         `json:"created_at"`
	UpdatedAt    string         `json:"updated_at"`
}

type orderItemAttrs struct {
	Quantity            jsonapi.Number `json:"quantity"`
	UnitPrice           jsonapi.Number `json:"unit_price"`
	SpecialInstructions string         `json:"special_instructions"`
	OrderID             jsonapi.Number `json:"order_id"`
	MenuItemID          jsonapi.Number `json:"menu_item_id"`
}

// parse* converters tolerate malformed attributes: a resource that does
// not decode yields a zero-valued record, consistent with the not-found
// contract.

func parseRestaurant(r jsonapi.Resource) core.Restaurant {
	var a restaurantAttrs
	_ = json.Unmarshal(r.Attributes, &a)
	return core.Restaurant{
		ID:          int64(r.ID),
		Name:        a.Name,
		CuisineType: a.CuisineType,
		Description: a.Description,
	}
}

func parseCategory(r jsonapi.Resource) core.Category {
	var a categoryAttrs
	_ = json.Unmarshal(r.Attributes, &a)
	return core.Category{
		ID:           int64(r.ID),
		Name:         a.Name,
		SortOrder:    int(a.SortOrder),
		RestaurantID: int64(a.RestaurantID),
	}
}

func parseMenuItem(r jsonapi.Resource) core.MenuItem {
	var a menuItemAttrs
	_ = json.Unmarshal(r.Attributes, &a)
	return core.MenuItem{
		ID:          int64(r.ID),
		Name:        a.Name,
		Description: a.Description,
		Price:       float64(a.Price),
		Available:   a.Available,
		CategoryID:  int64(a.CategoryID),
	}
}

func parseOrder(r jsonapi.Resource) core.Order {
	var a orderAttrs
	_ = json.Unmarshal(r.Attributes, &a)
	return core.Order{
		ID:           int64(r.ID),
		TableNumber:  int(a.TableNumber),
		Status:       core.OrderStatus(a.Status),
		CustomerName: a.CustomerName,
		Notes:        a.Notes,
		Total:        float64(a.Total),
		RestaurantID: int64(a.RestaurantID),
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
}

func parseOrderItem(r jsonapi.Resource) core.OrderItem {
	var a orderItemAttrs
	_ = json.Unmarshal(r.Attributes, &a)
	return core.OrderItem{
		ID:                  int64(r.ID),
		Quantity:            int(a.Quantity),
		UnitPrice:           float64(a.UnitPrice),
		SpecialInstructions: a.SpecialInstructions,
		OrderID:             int64(a.OrderID),
		MenuItemID:          int64(a.MenuItemID),
		// MenuItemName is resolved from the included array by the caller.
	}
}

// Write payloads. Money fields serialize with two decimals, matching the
// resource server's stored representation.

type createOrderAttrs struct {
	RestaurantID int64         `json:"restaurant_id"`
	TableNumber  int           `json:"table_number"`
	Status       string        `json:"status"`
	CustomerName string        `json:"customer_name"`
	Notes        string        `json:"notes"`
	Total        jsonapi.Money `json:"total"`
}

type createOrderItemAttrs struct {
	OrderID             int64         `json:"order_id"`
	MenuItemID          int64         `json:"menu_item_id"`
	Quantity            int           `json:"quantity"`
	UnitPrice           jsonapi.Money `json:"unit_price"`
	SpecialInstructions string        `json:"special_instructions"`
}

type patchTotalAttrs struct {
	Total jsonapi.Money `json:"total"`
}

type patchStatusAttrs struct {
	Status string `json:"status"`
}

type patchAvailabilityAttrs struct {
	Available bool `json:"available"`
}

// encodeResource builds a {data:{type,id,attributes}} body. id 0 is
// omitted (creates carry no id).
func encodeResource(resType string, id int64, attrs any) ([]byte, error) {
	raw, err := json.Marshal(attrs)
	if err != nil {
		return nil, err
	}
	return jsonapi.EncodeOne(jsonapi.Resource{
		Type:       resType,
		ID:         jsonapi.ID(id),
		Attributes: raw,
	})
}
