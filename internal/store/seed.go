package store

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/orderdesk-labs/orderdesk/pkg/core"
)

type seedItem struct {
	name  string
	desc  string
	price float64
}

type seedCategory struct {
	name  string
	items []seedItem
}

// Seed bootstraps the demo restaurants. It is idempotent: when any
// restaurant row already exists the whole operation is skipped.
func (s *SQLiteStore) Seed(ctx context.Context) error {
	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	var count int
	if err := tx.QueryRowContext(ctx, `SELECT count(1) FROM restaurant`).Scan(&count); err != nil {
		tx.Rollback()
		return fmt.Errorf("failed to check seed state: %w", err)
	}
	if err := commit(tx, "seed check"); err != nil {
		return err
	}
	if count > 0 {
		s.logger.Info("database already seeded")
		return nil
	}

	s.logger.Info("seeding database")

	if err := s.seedRestaurant(ctx, "Siam Garden", "Thai",
		"Authentic Thai cuisine with bold flavors", siamGardenMenu); err != nil {
		return err
	}
	if err := s.seedRestaurant(ctx, "Golden Dragon", "Chinese",
		"Traditional Chinese dishes from multiple regions", goldenDragonMenu); err != nil {
		return err
	}
	if err := s.seedRestaurant(ctx, "The Crafted Bite", "Sandwiches & More",
		"Gourmet sandwiches, fresh salads, and espresso", craftedBiteMenu); err != nil {
		return err
	}

	if err := s.seedSampleOrders(ctx); err != nil {
		return err
	}

	s.logger.Info("database seeded")
	return nil
}

// seedRestaurant writes one restaurant, its full menu, and its three
// default users in a single transaction, so a reader never observes a
// partially seeded restaurant.
func (s *SQLiteStore) seedRestaurant(ctx context.Context, name, cuisine, desc string, menu []seedCategory) error {
	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		`INSERT INTO restaurant (name, cuisine_type, description) VALUES (?, ?, ?)`,
		name, cuisine, desc)
	if err != nil {
		return fmt.Errorf("failed to seed restaurant: %w", err)
	}
	restaurantID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read restaurant id: %w", err)
	}

	for sortOrder, cat := range menu {
		catRes, err := tx.ExecContext(ctx,
			`INSERT INTO category (name, sort_order, restaurant_id) VALUES (?, ?, ?)`,
			cat.name, sortOrder, restaurantID)
		if err != nil {
			return fmt.Errorf("failed to seed category: %w", err)
		}
		categoryID, err := catRes.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read category id: %w", err)
		}

		for _, item := range cat.items {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO menu_item (name, description, price, available, category_id)
				 VALUES (?, ?, ?, 1, ?)`,
				item.name, item.desc, item.price, categoryID)
			if err != nil {
				return fmt.Errorf("failed to seed menu item: %w", err)
			}
		}
	}

	prefix := strings.ToLower(name[:3])
	users := []struct {
		suffix  string
		display string
		role    core.UserRole
	}{
		{"_manager", " Manager", core.RoleManager},
		{"_frontdesk", " Front Desk", core.RoleFrontDesk},
		{"_kitchen", " Kitchen", core.RoleKitchen},
	}
	for _, u := range users {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO app_user (username, display_name, role, restaurant_id) VALUES (?, ?, ?, ?)`,
			prefix+u.suffix, name+u.display, string(u.role), restaurantID)
		if err != nil {
			return fmt.Errorf("failed to seed user: %w", err)
		}
	}

	s.logger.Debug("seeded restaurant", slog.String("name", name), slog.Int64("id", restaurantID))
	return commit(tx, "seed restaurant")
}

// seedSampleOrders creates two demo orders per restaurant and fills the
// first with two lines from the restaurant's first category.
func (s *SQLiteStore) seedSampleOrders(ctx context.Context) error {
	tx, err := s.begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	rows, err := tx.QueryContext(ctx, `SELECT id FROM restaurant ORDER BY id`)
	if err != nil {
		return fmt.Errorf("failed to list restaurants for sample orders: %w", err)
	}
	var restaurantIDs []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan restaurant id: %w", err)
		}
		restaurantIDs = append(restaurantIDs, id)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return err
	}

	now := nowTimestamp()
	for _, rid := range restaurantIDs {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO orders (table_number, status, customer_name, notes, total, restaurant_id, created_at, updated_at)
			 VALUES (1, ?, 'Walk-In Guest', '', 0, ?, ?, ?)`,
			string(core.StatusPending), rid, now, now)
		if err != nil {
			return fmt.Errorf("failed to seed order: %w", err)
		}
		orderID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("failed to read order id: %w", err)
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO orders (table_number, status, customer_name, notes, total, restaurant_id, created_at, updated_at)
			 VALUES (3, ?, 'Table 3', 'No spicy', 0, ?, ?, ?)`,
			string(core.StatusInProgress), rid, now, now)
		if err != nil {
			return fmt.Errorf("failed to seed order: %w", err)
		}

		// Two lines from the restaurant's first category, quantities 1 and 2.
		itemRows, err := tx.QueryContext(ctx,
			`SELECT id, price FROM menu_item
			 WHERE category_id = (SELECT id FROM category WHERE restaurant_id = ? ORDER BY sort_order LIMIT 1)
			 ORDER BY id LIMIT 2`, rid)
		if err != nil {
			return fmt.Errorf("failed to pick sample items: %w", err)
		}
		type line struct {
			id    int64
			price float64
		}
		var lines []line
		for itemRows.Next() {
			var l line
			if err := itemRows.Scan(&l.id, &l.price); err != nil {
				itemRows.Close()
				return fmt.Errorf("failed to scan sample item: %w", err)
			}
			lines = append(lines, l)
		}
		itemRows.Close()
		if err := itemRows.Err(); err != nil {
			return err
		}

		total := 0.0
		for i, l := range lines {
			qty := i + 1
			_, err := tx.ExecContext(ctx,
				`INSERT INTO order_item (quantity, unit_price, special_instructions, order_id, menu_item_id)
				 VALUES (?, ?, '', ?, ?)`, qty, l.price, orderID, l.id)
			if err != nil {
				return fmt.Errorf("failed to seed order item: %w", err)
			}
			total += l.price * float64(qty)
		}
		if _, err := tx.ExecContext(ctx,
			`UPDATE orders SET total = ? WHERE id = ?`, total, orderID); err != nil {
			return fmt.Errorf("failed to set sample order total: %w", err)
		}
	}

	return commit(tx, "seed sample orders")
}

var siamGardenMenu = []seedCategory{
	{"Appetizers", []seedItem{
		{"Spring Rolls", "Crispy vegetable spring rolls with sweet chili sauce", 6.99},
		{"Satay Chicken", "Grilled chicken skewers with peanut dipping sauce", 8.99},
		{"Tom Yum Soup", "Spicy and sour soup with shrimp and mushrooms", 7.99},
		{"Fresh Rolls", "Rice paper rolls with shrimp, herbs, and peanut sauce", 7.49},
		{"Fried Tofu", "Golden crispy tofu with sweet chili dip", 5.99},
	}},
	{"Curries", []seedItem{
		{"Green Curry", "Coconut green curry with bamboo shoots and basil", 13.99},
		{"Red Curry", "Spicy red curry with bell peppers and Thai eggplant", 13.99},
		{"Massaman Curry", "Rich peanut curry with potatoes and onions", 14.99},
		{"Panang Curry", "Creamy panang curry with kaffir lime leaves", 14.49},
		{"Yellow Curry", "Mild coconut curry with potatoes and carrots", 12.99},
	}},
	{"Stir Fry & Noodles", []seedItem{
		{"Pad Thai", "Classic stir-fried rice noodles with shrimp and peanuts", 12.99},
		{"Pad See Ew", "Wide rice noodles with Chinese broccoli and egg", 11.99},
		{"Drunken Noodles", "Spicy wide noodles with basil and vegetables", 12.49},
		{"Pineapple Fried Rice", "Fried rice with pineapple, cashews, and raisins", 11.99},
		{"Thai Basil Chicken", "Stir-fried chicken with holy basil and chilies", 12.49},
	}},
	{"Drinks", []seedItem{
		{"Thai Iced Tea", "Sweetened black tea with condensed milk", 3.99},
		{"Coconut Water", "Fresh young coconut water", 3.49},
		{"Lemongrass Tea", "Hot lemongrass and ginger tea", 2.99},
		{"Mango Smoothie", "Fresh mango blended with ice", 4.99},
	}},
	{"Espresso & Coffee", []seedItem{
		{"Thai Coffee", "Strong brewed coffee with sweetened condensed milk", 3.99},
		{"Espresso", "Double shot of espresso", 2.99},
		{"Cappuccino", "Espresso with steamed milk foam", 4.49},
		{"Iced Latte", "Espresso with cold milk over ice", 4.49},
	}},
}

var goldenDragonMenu = []seedCategory{
	{"Appetizers", []seedItem{
		{"Wonton Soup", "Pork and shrimp wontons in clear broth", 6.99},
		{"Egg Rolls", "Crispy pork and vegetable egg rolls", 5.99},
		{"Potstickers", "Pan-fried pork dumplings with soy dipping sauce", 7.99},
		{"Hot & Sour Soup", "Classic spicy and tangy soup with tofu and mushrooms", 6.49},
		{"Crab Rangoon", "Fried wonton with cream cheese and crab filling", 7.49},
	}},
	{"Main Courses", []seedItem{
		{"Kung Pao Chicken", "Spicy diced chicken with peanuts and dried chilies", 13.99},
		{"Sweet & Sour Pork", "Crispy pork in tangy sweet and sour sauce", 12.99},
		{"Beef & Broccoli", "Tender beef and broccoli in savory brown sauce", 14.49},
		{"Mapo Tofu", "Soft tofu in spicy Sichuan chili bean sauce", 11.99},
		{"General Tso Chicken", "Crispy chicken in a sweet and mildly spicy sauce", 13.49},
		{"Mongolian Beef", "Sliced beef with scallions in sweet soy sauce", 14.99},
	}},
	{"Noodles & Rice", []seedItem{
		{"Lo Mein", "Soft egg noodles with vegetables and choice of protein", 11.99},
		{"Chow Fun", "Wide rice noodles stir-fried with beef and bean sprouts", 12.49},
		{"Yang Chow Fried Rice", "Fried rice with shrimp, pork, and egg", 10.99},
		{"Dan Dan Noodles", "Spicy Sichuan noodles with ground pork and peanuts", 11.49},
	}},
	{"Drinks", []seedItem{
		{"Jasmine Tea", "Fragrant hot jasmine green tea", 2.49},
		{"Chinese Iced Tea", "Chilled chrysanthemum tea", 2.99},
		{"Lychee Juice", "Sweet lychee fruit juice", 3.49},
		{"Plum Juice", "Traditional sour plum drink", 3.49},
	}},
	{"Espresso & Coffee", []seedItem{
		{"Yuan Yang", "Hong Kong-style coffee and tea blend", 3.99},
		{"Espresso", "Double shot of espresso", 2.99},
		{"Mocha", "Espresso with chocolate and steamed milk", 4.99},
		{"Iced Americano", "Espresso with cold water over ice", 3.49},
	}},
}

var craftedBiteMenu = []seedCategory{
	{"Sandwiches", []seedItem{
		{"Classic Club", "Turkey, bacon, lettuce, tomato on sourdough", 10.99},
		{"Philly Cheesesteak", "Shaved beef, peppers, onions, and provolone on hoagie", 12.99},
		{"Caprese Panini", "Fresh mozzarella, tomato, basil, and balsamic on ciabatta", 10.49},
		{"Reuben", "Corned beef, sauerkraut, Swiss, and Thousand Island on rye", 11.99},
		{"BBQ Pulled Pork", "Slow-smoked pulled pork with coleslaw on brioche", 11.49},
		{"Veggie Wrap", "Hummus, roasted vegetables, and feta in a spinach tortilla", 9.49},
		{"Turkey Avocado", "Smoked turkey, avocado, sprouts, and aioli on wheat", 10.99},
		{"Grilled Chicken BLT", "Grilled chicken breast with bacon, lettuce, tomato", 11.49},
	}},
	{"Salads", []seedItem{
		{"Caesar Salad", "Romaine, parmesan, croutons, and Caesar dressing", 8.99},
		{"Greek Salad", "Mixed greens, feta, olives, cucumber, tomato, red onion", 9.49},
		{"Cobb Salad", "Chicken, bacon, egg, avocado, blue cheese, and tomato", 11.99},
		{"Asian Sesame Salad", "Mixed greens, mandarin, almonds, crispy wontons, sesame", 10.49},
		{"Harvest Bowl", "Quinoa, roasted sweet potato, kale, cranberries, goat cheese", 10.99},
	}},
	{"Sides", []seedItem{
		{"French Fries", "Crispy golden fries with sea salt", 3.99},
		{"Onion Rings", "Beer-battered onion rings", 4.49},
		{"Sweet Potato Fries", "Crispy sweet potato fries with chipotle aioli", 4.99},
		{"Cup of Soup", "Daily rotating soup selection", 4.49},
	}},
	{"Drinks", []seedItem{
		{"Fresh Lemonade", "House-made lemonade with real lemons", 3.49},
		{"Iced Green Tea", "Brewed green tea over ice", 2.99},
		{"Sparkling Water", "San Pellegrino sparkling mineral water", 2.49},
		{"Fresh OJ", "Freshly squeezed orange juice", 4.49},
		{"Craft Soda", "Rotating selection of artisan sodas", 3.49},
	}},
	{"Espresso & Coffee", []seedItem{
		{"Espresso", "Double shot of locally roasted espresso", 2.99},
		{"Americano", "Espresso with hot water", 3.49},
		{"Cappuccino", "Espresso with velvety steamed milk foam", 4.49},
		{"Latte", "Espresso with smooth steamed milk", 4.49},
		{"Mocha", "Espresso, chocolate, steamed milk, whipped cream", 4.99},
		{"Cold Brew", "Slow-steeped cold brew coffee, served over ice", 3.99},
		{"Flat White", "Ristretto shots with micro-foam milk", 4.49},
	}},
}
