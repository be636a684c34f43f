package cli

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/orderdesk-labs/orderdesk/pkg/core"
)

// NewMenuCommand creates the menu command group.
func NewMenuCommand() *cobra.Command {
	var restaurantID int64
	var categoryID int64

	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Show a restaurant's menu",
		Example: `  # Full menu of restaurant 1
  orderdesk menu --restaurant 1

  # One category only
  orderdesk menu --restaurant 1 --category 3

  # Mark item 7 as sold out
  orderdesk menu available 7 false`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, closer, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer closer()

			ctx := cmd.Context()
			var items []core.MenuItem
			if categoryID != 0 {
				items, err = st.ListMenuItemsByCategory(ctx, categoryID)
			} else {
				items, err = st.ListMenuItemsByRestaurant(ctx, restaurantID)
			}
			if err != nil {
				return err
			}

			t := newTable(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"ID", "Name", "Description", "Price", "Available"})
			for _, m := range items {
				t.AppendRow(table.Row{m.ID, m.Name, m.Description, money(m.Price), yesNo(m.Available)})
			}
			t.Render()
			return nil
		},
	}

	cmd.Flags().Int64VarP(&restaurantID, "restaurant", "r", 1, "Restaurant id")
	cmd.Flags().Int64VarP(&categoryID, "category", "c", 0, "Category id (0 for all)")

	cmd.AddCommand(newMenuAvailableCommand())

	return cmd
}

func newMenuAvailableCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "available <item-id> <true|false>",
		Short: "Set a menu item's availability",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid item id %q", args[0])
			}
			available, err := strconv.ParseBool(args[1])
			if err != nil {
				return fmt.Errorf("invalid availability %q", args[1])
			}

			st, closer, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer closer()

			if err := st.SetMenuItemAvailability(cmd.Context(), id, available); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Item %d availability set to %s\n", id, yesNo(available))
			return nil
		},
	}
}
