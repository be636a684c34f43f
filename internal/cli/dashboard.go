package cli

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/orderdesk-labs/orderdesk/pkg/core"
)

// NewDashboardCommand creates the dashboard command.
func NewDashboardCommand() *cobra.Command {
	var restaurantID int64

	cmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show order counts and revenue for a restaurant",
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, closer, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer closer()

			ctx := cmd.Context()
			r, err := st.GetRestaurant(ctx, restaurantID)
			if err != nil {
				return err
			}
			if r.ID == 0 {
				return fmt.Errorf("restaurant %d not found", restaurantID)
			}

			total, err := st.CountOrders(ctx, restaurantID)
			if err != nil {
				return err
			}
			revenue, err := st.Revenue(ctx, restaurantID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)\n\n", r.Name, r.CuisineType)

			t := newTable(out)
			t.AppendHeader(table.Row{"Status", "Orders"})
			for _, status := range []core.OrderStatus{
				core.StatusPending, core.StatusInProgress, core.StatusReady,
				core.StatusServed, core.StatusCancelled,
			} {
				n, err := st.CountOrdersByStatus(ctx, restaurantID, status)
				if err != nil {
					return err
				}
				t.AppendRow(table.Row{string(status), n})
			}
			t.AppendFooter(table.Row{"Total", total})
			t.Render()

			fmt.Fprintf(out, "\nRevenue (served orders): %s\n", money(revenue))
			return nil
		},
	}

	cmd.Flags().Int64VarP(&restaurantID, "restaurant", "r", 1, "Restaurant id")

	return cmd
}
