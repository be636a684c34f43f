package server

import (
	"encoding/json"

	"github.com/orderdesk-labs/orderdesk/internal/jsonapi"
	"github.com/orderdesk-labs/orderdesk/pkg/core"
)

// Attribute shapes served on the wire. Money fields render with two
// decimals; jsonapi.Number keeps incoming bodies tolerant of string
// encodings.

type restaurantAttrs struct {
	Name        string `json:"name"`
	CuisineType string `json:"cuisine_type"`
	Description string `json:"description"`
}

type categoryAttrs struct {
	Name         string `json:"name"`
	SortOrder    int    `json:"sort_order"`
	RestaurantID int64  `json:"restaurant_id"`
}

type menuItemAttrs struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Price       jsonapi.Money `json:"price"`
	Available   bool          `json:"available"`
	CategoryID  int64         `json:"category_id"`
}

type orderAttrs struct {
	TableNumber  int           `json:"table_number"`
	Status       string        `json:"status"`
	CustomerName string        `json:"customer_name"`
	Notes        string        `json:"notes"`
	Total        jsonapi.Money `json:"total"`
	RestaurantID int64         `json:"restaurant_id"`
	CreatedAt    string        `json:"created_at"`
	UpdatedAt    string        `json:"updated_at"`
}

type orderItemAttrs struct {
	Quantity            int           `json:"quantity"`
	UnitPrice           jsonapi.Money `json:"unit_price"`
	SpecialInstructions string        `json:"special_instructions"`
	OrderID             int64         `json:"order_id"`
	MenuItemID          int64         `json:"menu_item_id"`
}

// Incoming creates and patches. Pointer fields distinguish "absent" from
// "zero" so a PATCH only touches what the request carries.

type orderWriteAttrs struct {
	TableNumber  jsonapi.Number `json:"table_number"`
	Status       *string        `json:"status"`
	CustomerName string         `json:"customer_name"`
	Notes        string         `json:"notes"`
	Total        *jsonapi.Money `json:"total"`
	RestaurantID jsonapi.Number `json:"restaurant_id"`
}

type orderItemWriteAttrs struct {
	Quantity            jsonapi.Number `json:"quantity"`
	UnitPrice           jsonapi.Money  `json:"unit_price"`
	SpecialInstructions string         `json:"special_instructions"`
	OrderID             jsonapi.Number `json:"order_id"`
	MenuItemID          jsonapi.Number `json:"menu_item_id"`
}

type menuItemWriteAttrs struct {
	Available *bool `json:"available"`
}

func makeResource(resType string, id int64, attrs any) jsonapi.Resource {
	raw, _ := json.Marshal(attrs)
	return jsonapi.Resource{Type: resType, ID: jsonapi.ID(id), Attributes: raw}
}

func restaurantResource(r core.Restaurant) jsonapi.Resource {
	return makeResource("restaurant", r.ID, restaurantAttrs{
		Name:        r.Name,
		CuisineType: r.CuisineType,
		Description: r.Description,
	})
}

func categoryResource(c core.Category) jsonapi.Resource {
	return makeResource("category", c.ID, categoryAttrs{
		Name:         c.Name,
		SortOrder:    c.SortOrder,
		RestaurantID: c.RestaurantID,
	})
}

func menuItemResource(m core.MenuItem) jsonapi.Resource {
	return makeResource("menu_item", m.ID, menuItemAttrs{
		Name:        m.Name,
		Description: m.Description,
		Price:       jsonapi.Money(m.Price),
		Available:   m.Available,
		CategoryID:  m.CategoryID,
	})
}

func orderResource(o core.Order) jsonapi.Resource {
	return makeResource("orders", o.ID, orderAttrs{
		TableNumber:  o.TableNumber,
		Status:       string(o.Status),
		CustomerName: o.CustomerName,
		Notes:        o.Notes,
		Total:        jsonapi.Money(o.Total),
		RestaurantID: o.RestaurantID,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	})
}

func orderItemResource(oi core.OrderItem) jsonapi.Resource {
	return makeResource("order_item", oi.ID, orderItemAttrs{
		Quantity:            oi.Quantity,
		UnitPrice:           jsonapi.Money(oi.UnitPrice),
		SpecialInstructions: oi.SpecialInstructions,
		OrderID:             oi.OrderID,
		MenuItemID:          oi.MenuItemID,
	})
}
