package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/orderdesk-labs/orderdesk/pkg/core"
)

// NewOrdersCommand creates the orders command group.
func NewOrdersCommand() *cobra.Command {
	var restaurantID int64
	var status string
	var activeOnly bool

	cmd := &cobra.Command{
		Use:     "orders",
		Aliases: []string{"order"},
		Short:   "List and manage orders",
		Example: `  # All orders, newest first
  orderdesk orders --restaurant 1

  # Orders still in flight
  orderdesk orders --restaurant 1 --active

  # Kitchen queue
  orderdesk orders --restaurant 1 --status "In Progress"

  # Open an order and add two of item 5
  orderdesk orders create --restaurant 1 --table 4 --customer "Walk-In Guest"
  orderdesk orders add 9 5 --quantity 2`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, closer, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer closer()

			ctx := cmd.Context()
			var orders []core.Order
			switch {
			case status != "":
				orders, err = st.ListOrdersByStatus(ctx, restaurantID, core.ParseOrderStatus(status))
			case activeOnly:
				orders, err = st.ListActiveOrders(ctx, restaurantID)
			default:
				orders, err = st.ListOrders(ctx, restaurantID)
			}
			if err != nil {
				return err
			}

			renderOrders(cmd, orders)
			return nil
		},
	}

	cmd.PersistentFlags().Int64VarP(&restaurantID, "restaurant", "r", 1, "Restaurant id")
	cmd.Flags().StringVarP(&status, "status", "s", "", "Filter by status (Pending, In Progress, Ready, Served, Cancelled)")
	cmd.Flags().BoolVarP(&activeOnly, "active", "a", false, "Only orders that are neither Served nor Cancelled")

	cmd.AddCommand(newOrderCreateCommand(&restaurantID))
	cmd.AddCommand(newOrderAddCommand())
	cmd.AddCommand(newOrderStatusCommand())
	cmd.AddCommand(newOrderCancelCommand())
	cmd.AddCommand(newOrderShowCommand())

	return cmd
}

func renderOrders(cmd *cobra.Command, orders []core.Order) {
	t := newTable(cmd.OutOrStdout())
	t.AppendHeader(table.Row{"ID", "Table", "Status", "Customer", "Total", "Created"})
	for _, o := range orders {
		t.AppendRow(table.Row{o.ID, o.TableNumber, string(o.Status), o.CustomerName, money(o.Total), o.CreatedAt})
	}
	t.Render()
	fmt.Fprintf(cmd.OutOrStdout(), "(%d orders)\n", len(orders))
}

func parseArgID(arg, what string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", what, arg)
	}
	return id, nil
}

func newOrderCreateCommand(restaurantID *int64) *cobra.Command {
	var tableNumber int
	var customer string
	var notes string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Open a new order",
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, closer, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer closer()

			o, err := st.CreateOrder(cmd.Context(), *restaurantID, tableNumber, customer, notes)
			if err != nil {
				return err
			}
			if o.ID == 0 {
				return fmt.Errorf("restaurant %d not found", *restaurantID)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Order %d opened for table %d\n", o.ID, o.TableNumber)
			return nil
		},
	}

	cmd.Flags().IntVarP(&tableNumber, "table", "t", 0, "Table number")
	cmd.Flags().StringVarP(&customer, "customer", "c", "", "Customer name")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "Order notes")

	return cmd
}

func newOrderAddCommand() *cobra.Command {
	var quantity int
	var instructions string

	cmd := &cobra.Command{
		Use:   "add <order-id> <item-id>",
		Short: "Add a menu item to an order",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			orderID, err := parseArgID(args[0], "order id")
			if err != nil {
				return err
			}
			itemID, err := parseArgID(args[1], "item id")
			if err != nil {
				return err
			}

			st, closer, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer closer()

			if err := st.AddOrderItem(cmd.Context(), orderID, itemID, quantity, instructions); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %d x item %d to order %d\n", quantity, itemID, orderID)
			return nil
		},
	}

	cmd.Flags().IntVarP(&quantity, "quantity", "q", 1, "Quantity")
	cmd.Flags().StringVarP(&instructions, "instructions", "i", "", "Special instructions")

	return cmd
}

func newOrderStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status <order-id> <status>",
		Short: "Move an order to a new status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			orderID, err := parseArgID(args[0], "order id")
			if err != nil {
				return err
			}

			st, closer, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer closer()

			status := core.ParseOrderStatus(args[1])
			if err := st.UpdateOrderStatus(cmd.Context(), orderID, status); err != nil {
				var ste *core.StateTransitionError
				if errors.As(err, &ste) {
					return fmt.Errorf("order %d cannot move from %s to %s", ste.OrderID, ste.From, ste.To)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Order %d is now %s\n", orderID, status)
			return nil
		},
	}
}

func newOrderCancelCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "cancel <order-id>",
		Short: "Cancel an order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orderID, err := parseArgID(args[0], "order id")
			if err != nil {
				return err
			}

			st, closer, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer closer()

			if err := st.CancelOrder(cmd.Context(), orderID); err != nil {
				var ste *core.StateTransitionError
				if errors.As(err, &ste) {
					return fmt.Errorf("order %d cannot be cancelled from %s", ste.OrderID, ste.From)
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Order %d cancelled\n", orderID)
			return nil
		},
	}
}

func newOrderShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <order-id>",
		Short: "Show an order with its lines",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orderID, err := parseArgID(args[0], "order id")
			if err != nil {
				return err
			}

			st, closer, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer closer()

			ctx := cmd.Context()
			o, err := st.GetOrder(ctx, orderID)
			if err != nil {
				return err
			}
			if o.ID == 0 {
				return fmt.Errorf("order %d not found", orderID)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Order %d  table %d  %s\n", o.ID, o.TableNumber, o.Status)
			if o.CustomerName != "" {
				fmt.Fprintf(out, "Customer: %s\n", o.CustomerName)
			}
			if o.Notes != "" {
				fmt.Fprintf(out, "Notes: %s\n", o.Notes)
			}

			items, err := st.ListOrderItems(ctx, orderID)
			if err != nil {
				return err
			}

			t := newTable(out)
			t.AppendHeader(table.Row{"Qty", "Item", "Unit Price", "Line Total", "Instructions"})
			for _, oi := range items {
				t.AppendRow(table.Row{
					oi.Quantity, oi.MenuItemName, money(oi.UnitPrice),
					money(oi.UnitPrice * float64(oi.Quantity)), oi.SpecialInstructions,
				})
			}
			t.AppendFooter(table.Row{"", "", "", money(o.Total), ""})
			t.Render()
			return nil
		},
	}
}
