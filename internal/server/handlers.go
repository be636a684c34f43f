package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/orderdesk-labs/orderdesk/internal/jsonapi"
	"github.com/orderdesk-labs/orderdesk/pkg/core"
)

func (s *Server) writeDoc(w http.ResponseWriter, status int, body []byte, err error) {
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", jsonapi.ContentType)
	w.WriteHeader(status)
	w.Write(body)
}

func (s *Server) writeMany(w http.ResponseWriter, resources, included []jsonapi.Resource) {
	body, err := jsonapi.EncodeMany(resources, included)
	s.writeDoc(w, http.StatusOK, body, err)
}

func (s *Server) writeOne(w http.ResponseWriter, status int, r jsonapi.Resource) {
	body, err := jsonapi.EncodeOne(r)
	s.writeDoc(w, status, body, err)
}

func (s *Server) writeError(w http.ResponseWriter, status int, title string) {
	w.Header().Set("Content-Type", jsonapi.ContentType)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"errors": []map[string]string{{
			"status": strconv.Itoa(status),
			"title":  title,
		}},
	})
}

func (s *Server) storeError(w http.ResponseWriter, err error) bool {
	if err != nil {
		s.writeError(w, http.StatusInternalServerError, err.Error())
		return true
	}
	return false
}

func urlID(r *http.Request) int64 {
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id
}

func filterID(r *http.Request, field string) int64 {
	id, _ := strconv.ParseInt(r.URL.Query().Get("filter["+field+"]"), 10, 64)
	return id
}

// decodeAttrs unpacks the attributes of a single-resource request body.
func decodeAttrs(r *http.Request, attrs any) bool {
	var doc jsonapi.Document
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		return false
	}
	var res jsonapi.Resource
	if err := json.Unmarshal(doc.Data, &res); err != nil {
		return false
	}
	return json.Unmarshal(res.Attributes, attrs) == nil
}

func (s *Server) listRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := s.store.ListRestaurants(r.Context())
	if s.storeError(w, err) {
		return
	}
	resources := make([]jsonapi.Resource, 0, len(restaurants))
	for _, rt := range restaurants {
		resources = append(resources, restaurantResource(rt))
	}
	s.writeMany(w, resources, nil)
}

func (s *Server) getRestaurant(w http.ResponseWriter, r *http.Request) {
	rt, err := s.store.GetRestaurant(r.Context(), urlID(r))
	if s.storeError(w, err) {
		return
	}
	if rt.ID == 0 {
		s.writeError(w, http.StatusNotFound, "restaurant not found")
		return
	}
	s.writeOne(w, http.StatusOK, restaurantResource(rt))
}

func (s *Server) listCategories(w http.ResponseWriter, r *http.Request) {
	// Only sort=sort_order is ever requested, which is the store's
	// natural order.
	categories, err := s.store.ListCategories(r.Context(), filterID(r, "restaurant_id"))
	if s.storeError(w, err) {
		return
	}
	resources := make([]jsonapi.Resource, 0, len(categories))
	for _, c := range categories {
		resources = append(resources, categoryResource(c))
	}
	s.writeMany(w, resources, nil)
}

func (s *Server) listMenuItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.store.ListMenuItemsByCategory(r.Context(), filterID(r, "category_id"))
	if s.storeError(w, err) {
		return
	}
	resources := make([]jsonapi.Resource, 0, len(items))
	for _, m := range items {
		resources = append(resources, menuItemResource(m))
	}
	s.writeMany(w, resources, nil)
}

func (s *Server) getMenuItem(w http.ResponseWriter, r *http.Request) {
	m, err := s.store.GetMenuItem(r.Context(), urlID(r))
	if s.storeError(w, err) {
		return
	}
	if m.ID == 0 {
		s.writeError(w, http.StatusNotFound, "menu item not found")
		return
	}
	s.writeOne(w, http.StatusOK, menuItemResource(m))
}

func (s *Server) patchMenuItem(w http.ResponseWriter, r *http.Request) {
	var attrs menuItemWriteAttrs
	if !decodeAttrs(r, &attrs) {
		s.writeError(w, http.StatusBadRequest, "malformed body")
		return
	}
	id := urlID(r)
	if attrs.Available != nil {
		if s.storeError(w, s.store.SetMenuItemAvailability(r.Context(), id, *attrs.Available)) {
			return
		}
	}
	m, err := s.store.GetMenuItem(r.Context(), id)
	if s.storeError(w, err) {
		return
	}
	s.writeOne(w, http.StatusOK, menuItemResource(m))
}

func (s *Server) listOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	restaurantID := filterID(r, "restaurant_id")

	var orders []core.Order
	var err error
	if status := r.URL.Query().Get("filter[status]"); status != "" {
		orders, err = s.store.ListOrdersByStatus(ctx, restaurantID, core.OrderStatus(status))
	} else {
		orders, err = s.store.ListOrders(ctx, restaurantID)
	}
	if s.storeError(w, err) {
		return
	}

	// The store returns status-filtered lists ascending and unfiltered
	// lists descending; reverse when the request asks for the other.
	sortParam := r.URL.Query().Get("sort")
	descending := r.URL.Query().Get("filter[status]") == ""
	if (sortParam == "id" && descending) || (sortParam == "-id" && !descending) {
		for i, j := 0, len(orders)-1; i < j; i, j = i+1, j-1 {
			orders[i], orders[j] = orders[j], orders[i]
		}
	}

	resources := make([]jsonapi.Resource, 0, len(orders))
	for _, o := range orders {
		resources = append(resources, orderResource(o))
	}
	s.writeMany(w, resources, nil)
}

func (s *Server) getOrder(w http.ResponseWriter, r *http.Request) {
	o, err := s.store.GetOrder(r.Context(), urlID(r))
	if s.storeError(w, err) {
		return
	}
	if o.ID == 0 {
		s.writeError(w, http.StatusNotFound, "order not found")
		return
	}
	s.writeOne(w, http.StatusOK, orderResource(o))
}

func (s *Server) createOrder(w http.ResponseWriter, r *http.Request) {
	var attrs orderWriteAttrs
	if !decodeAttrs(r, &attrs) {
		s.writeError(w, http.StatusBadRequest, "malformed body")
		return
	}

	status := string(core.StatusPending)
	if attrs.Status != nil {
		status = *attrs.Status
	}
	var total float64
	if attrs.Total != nil {
		total = float64(*attrs.Total)
	}

	o, err := s.store.InsertOrder(r.Context(), core.Order{
		TableNumber:  int(attrs.TableNumber),
		Status:       core.OrderStatus(status),
		CustomerName: attrs.CustomerName,
		Notes:        attrs.Notes,
		Total:        total,
		RestaurantID: int64(attrs.RestaurantID),
	})
	if s.storeError(w, err) {
		return
	}
	s.writeOne(w, http.StatusCreated, orderResource(o))
}

func (s *Server) patchOrder(w http.ResponseWriter, r *http.Request) {
	var attrs orderWriteAttrs
	if !decodeAttrs(r, &attrs) {
		s.writeError(w, http.StatusBadRequest, "malformed body")
		return
	}
	ctx := r.Context()
	id := urlID(r)

	if attrs.Status != nil {
		if s.storeError(w, s.store.UpdateOrderStatus(ctx, id, core.OrderStatus(*attrs.Status))) {
			return
		}
	}
	if attrs.Total != nil {
		if s.storeError(w, s.store.SetOrderTotal(ctx, id, float64(*attrs.Total))) {
			return
		}
	}

	o, err := s.store.GetOrder(ctx, id)
	if s.storeError(w, err) {
		return
	}
	s.writeOne(w, http.StatusOK, orderResource(o))
}

func (s *Server) listOrderItems(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	items, err := s.store.ListOrderItems(ctx, filterID(r, "order_id"))
	if s.storeError(w, err) {
		return
	}

	resources := make([]jsonapi.Resource, 0, len(items))
	for _, oi := range items {
		resources = append(resources, orderItemResource(oi))
	}

	var included []jsonapi.Resource
	if r.URL.Query().Get("include") == "menu_item" {
		seen := make(map[int64]bool)
		for _, oi := range items {
			if seen[oi.MenuItemID] {
				continue
			}
			seen[oi.MenuItemID] = true
			m, err := s.store.GetMenuItem(ctx, oi.MenuItemID)
			if s.storeError(w, err) {
				return
			}
			if m.ID != 0 {
				included = append(included, menuItemResource(m))
			}
		}
	}
	s.writeMany(w, resources, included)
}

func (s *Server) createOrderItem(w http.ResponseWriter, r *http.Request) {
	var attrs orderItemWriteAttrs
	if !decodeAttrs(r, &attrs) {
		s.writeError(w, http.StatusBadRequest, "malformed body")
		return
	}

	oi, err := s.store.InsertOrderItem(r.Context(), core.OrderItem{
		Quantity:            int(attrs.Quantity),
		UnitPrice:           float64(attrs.UnitPrice),
		SpecialInstructions: attrs.SpecialInstructions,
		OrderID:             int64(attrs.OrderID),
		MenuItemID:          int64(attrs.MenuItemID),
	})
	if s.storeError(w, err) {
		return
	}
	s.writeOne(w, http.StatusCreated, orderItemResource(oi))
}
