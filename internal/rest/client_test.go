package rest

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orderdesk-labs/orderdesk/internal/testutil"
	"github.com/orderdesk-labs/orderdesk/pkg/core"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/api", testutil.NewTestLogger(t))
}

func jsonBody(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/vnd.api+json")
	io.WriteString(w, body)
}

func TestListRestaurantsNormalizesIDs(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/restaurant/", r.URL.Path)
		assert.Equal(t, "application/vnd.api+json", r.Header.Get("Accept"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		jsonBody(w, `{"data": [
			{"type": "restaurant", "id": "1", "attributes": {"name": "Siam Garden", "cuisine_type": "Thai"}},
			{"type": "restaurant", "id": 2, "attributes": {"name": "Golden Dragon", "cuisine_type": "Chinese"}}
		]}`)
	})

	restaurants, err := c.ListRestaurants(context.Background())
	require.NoError(t, err)
	require.Len(t, restaurants, 2)
	assert.Equal(t, int64(1), restaurants[0].ID)
	assert.Equal(t, int64(2), restaurants[1].ID)
	assert.Equal(t, "Golden Dragon", restaurants[1].Name)
}

func TestListOrdersQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/orders/", r.URL.Path)
		assert.Equal(t, "1", r.URL.Query().Get("filter[restaurant_id]"))
		assert.Equal(t, "-id", r.URL.Query().Get("sort"))
		jsonBody(w, `{"data": [
			{"type": "orders", "id": "4", "attributes": {"status": "Pending", "total": "24.97", "restaurant_id": 1}},
			{"type": "orders", "id": "2", "attributes": {"status": "Served", "total": 10, "restaurant_id": 1}}
		]}`)
	})

	orders, err := c.ListOrders(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, int64(4), orders[0].ID)
	assert.InDelta(t, 24.97, orders[0].Total, 0.001)
	assert.Equal(t, core.StatusServed, orders[1].Status)
}

func TestListOrdersByStatusQuery(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "In Progress", r.URL.Query().Get("filter[status]"))
		assert.Equal(t, "id", r.URL.Query().Get("sort"))
		jsonBody(w, `{"data": []}`)
	})

	orders, err := c.ListOrdersByStatus(context.Background(), 1, core.StatusInProgress)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestListActiveOrdersFiltersClientSide(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		jsonBody(w, `{"data": [
			{"type": "orders", "id": "3", "attributes": {"status": "Ready"}},
			{"type": "orders", "id": "1", "attributes": {"status": "Served"}},
			{"type": "orders", "id": "2", "attributes": {"status": "Pending"}},
			{"type": "orders", "id": "4", "attributes": {"status": "Cancelled"}}
		]}`)
	})

	orders, err := c.ListActiveOrders(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, int64(2), orders[0].ID)
	assert.Equal(t, int64(3), orders[1].ID)
}

func TestGetOrderNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	o, err := c.GetOrder(context.Background(), 42)
	require.NoError(t, err)
	assert.Zero(t, o.ID)
}

func TestServerErrorDegradesToEmpty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	orders, err := c.ListOrders(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestTransportErrorSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()
	c := NewClient(srv.URL+"/api", testutil.NewTestLogger(t))

	_, err := c.ListRestaurants(context.Background())
	assert.Error(t, err)
}

func TestListMenuItemsByRestaurantFansOut(t *testing.T) {
	var paths []string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		switch r.URL.Path {
		case "/api/category/":
			jsonBody(w, `{"data": [
				{"type": "category", "id": "10", "attributes": {"name": "Appetizers", "sort_order": 0}},
				{"type": "category", "id": "11", "attributes": {"name": "Drinks", "sort_order": 1}}
			]}`)
		case "/api/menu_item/":
			switch r.URL.Query().Get("filter[category_id]") {
			case "10":
				jsonBody(w, `{"data": [{"type": "menu_item", "id": "1", "attributes": {"name": "Spring Rolls", "price": 6.99, "available": true, "category_id": 10}}]}`)
			case "11":
				jsonBody(w, `{"data": [{"type": "menu_item", "id": "2", "attributes": {"name": "Thai Iced Tea", "price": "3.99", "available": true, "category_id": 11}}]}`)
			}
		}
	})

	items, err := c.ListMenuItemsByRestaurant(context.Background(), 1)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Spring Rolls", items[0].Name)
	assert.InDelta(t, 3.99, items[1].Price, 0.001)

	// One category request, then one item request per category.
	assert.Equal(t, []string{"/api/category/", "/api/menu_item/", "/api/menu_item/"}, paths)
}

func TestCreateOrderPostsPendingZeroTotal(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		body, _ := io.ReadAll(r.Body)

		var doc struct {
			Data struct {
				Type       string         `json:"type"`
				Attributes map[string]any `json:"attributes"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(body, &doc))
		assert.Equal(t, "orders", doc.Data.Type)
		assert.Equal(t, "Pending", doc.Data.Attributes["status"])
		assert.Equal(t, 0.0, doc.Data.Attributes["total"])
		assert.Equal(t, 4.0, doc.Data.Attributes["table_number"])

		w.WriteHeader(http.StatusCreated)
		jsonBody(w, `{"data": {"type": "orders", "id": "9", "attributes": {"status": "Pending", "table_number": 4, "restaurant_id": 1}}}`)
	})

	o, err := c.CreateOrder(context.Background(), 1, 4, "Ada", "")
	require.NoError(t, err)
	assert.Equal(t, int64(9), o.ID)
	assert.Equal(t, core.StatusPending, o.Status)
}

func TestAddOrderItemThreeSteps(t *testing.T) {
	type call struct {
		method string
		path   string
		body   []byte
	}
	var calls []call

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		calls = append(calls, call{r.Method, r.URL.Path, body})

		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/menu_item/5/":
			jsonBody(w, `{"data": {"type": "menu_item", "id": "5", "attributes": {"name": "Pad Thai", "price": 12.99, "available": true}}}`)
		case r.Method == http.MethodPost && r.URL.Path == "/api/order_item/":
			w.WriteHeader(http.StatusCreated)
			jsonBody(w, `{"data": {"type": "order_item", "id": "31"}}`)
		case r.Method == http.MethodGet && r.URL.Path == "/api/orders/9/":
			jsonBody(w, `{"data": {"type": "orders", "id": "9", "attributes": {"status": "Pending", "total": 10.00}}}`)
		case r.Method == http.MethodPatch && r.URL.Path == "/api/orders/9/":
			jsonBody(w, `{"data": {"type": "orders", "id": "9"}}`)
		default:
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})

	require.NoError(t, c.AddOrderItem(context.Background(), 9, 5, 2, "no peanuts"))

	require.Len(t, calls, 4)
	assert.Equal(t, http.MethodGet, calls[0].method)
	assert.Equal(t, http.MethodPost, calls[1].method)
	assert.Equal(t, http.MethodGet, calls[2].method)
	assert.Equal(t, http.MethodPatch, calls[3].method)

	var posted struct {
		Data struct {
			Attributes map[string]any `json:"attributes"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(calls[1].body, &posted))
	assert.Equal(t, 12.99, posted.Data.Attributes["unit_price"])
	assert.Equal(t, 2.0, posted.Data.Attributes["quantity"])
	assert.Equal(t, "no peanuts", posted.Data.Attributes["special_instructions"])

	var patched struct {
		Data struct {
			Attributes map[string]any `json:"attributes"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(calls[3].body, &patched))
	assert.InDelta(t, 35.98, patched.Data.Attributes["total"].(float64), 0.001)
}

func TestAddOrderItemStringPriceTotalsTwoDecimals(t *testing.T) {
	var patchedTotal string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/menu_item/2/":
			jsonBody(w, `{"data": {"type": "menu_item", "id": "2", "attributes": {"name": "Coconut Water", "price": "3.50", "available": true}}}`)
		case r.Method == http.MethodPost:
			w.WriteHeader(http.StatusCreated)
			jsonBody(w, `{"data": {"type": "order_item", "id": "1"}}`)
		case r.Method == http.MethodGet && r.URL.Path == "/api/orders/1/":
			jsonBody(w, `{"data": {"type": "orders", "id": "1", "attributes": {"status": "Pending", "total": 0}}}`)
		case r.Method == http.MethodPatch:
			body, _ := io.ReadAll(r.Body)
			var doc struct {
				Data struct {
					Attributes map[string]json.RawMessage `json:"attributes"`
				} `json:"data"`
			}
			require.NoError(t, json.Unmarshal(body, &doc))
			patchedTotal = string(doc.Data.Attributes["total"])
			jsonBody(w, `{"data": {"type": "orders", "id": "1"}}`)
		}
	})

	require.NoError(t, c.AddOrderItem(context.Background(), 1, 2, 2, ""))
	assert.Equal(t, "7.00", patchedTotal)
}

func TestAddOrderItemUnknownMenuItem(t *testing.T) {
	var calls int
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusNotFound)
	})

	require.NoError(t, c.AddOrderItem(context.Background(), 9, 999, 1, ""))
	assert.Equal(t, 1, calls, "stops after the menu item lookup")
}

func TestListOrderItemsResolvesNames(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "7", r.URL.Query().Get("filter[order_id]"))
		assert.Equal(t, "menu_item", r.URL.Query().Get("include"))
		jsonBody(w, `{
			"data": [
				{"type": "order_item", "id": "1", "attributes": {"quantity": 2, "unit_price": "6.99", "order_id": 7, "menu_item_id": 5}},
				{"type": "order_item", "id": "2", "attributes": {"quantity": 1, "unit_price": 8.99, "order_id": 7, "menu_item_id": 6}}
			],
			"included": [
				{"type": "menu_item", "id": "5", "attributes": {"name": "Spring Rolls"}},
				{"type": "menu_item", "id": "6", "attributes": {"name": "Satay Chicken"}}
			]
		}`)
	})

	items, err := c.ListOrderItems(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Spring Rolls", items[0].MenuItemName)
	assert.InDelta(t, 6.99, items[0].UnitPrice, 0.001)
	assert.Equal(t, "Satay Chicken", items[1].MenuItemName)
}

func TestRevenueSumsServedOrders(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Served", r.URL.Query().Get("filter[status]"))
		jsonBody(w, `{"data": [
			{"type": "orders", "id": "1", "attributes": {"status": "Served", "total": 10.50}},
			{"type": "orders", "id": "2", "attributes": {"status": "Served", "total": "4.25"}}
		]}`)
	})

	rev, err := c.Revenue(context.Background(), 1)
	require.NoError(t, err)
	assert.InDelta(t, 14.75, rev, 0.001)
}
