package cli

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// NewRestaurantsCommand creates the restaurants command.
func NewRestaurantsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "restaurants",
		Short: "List restaurants",
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, closer, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer closer()

			restaurants, err := st.ListRestaurants(cmd.Context())
			if err != nil {
				return err
			}

			t := newTable(cmd.OutOrStdout())
			t.AppendHeader(table.Row{"ID", "Name", "Cuisine", "Description"})
			for _, r := range restaurants {
				t.AppendRow(table.Row{r.ID, r.Name, r.CuisineType, r.Description})
			}
			t.Render()
			return nil
		},
	}
}
