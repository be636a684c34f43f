package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/orderdesk-labs/orderdesk/internal/store"
)

// NewSeedCommand creates the seed command. Seeding always targets the
// embedded database, whatever backend the config selects.
func NewSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load sample restaurants, menus, and orders into the embedded database",
		Long: `Load the sample data set into the embedded SQLite database.

Seeding is idempotent: a database that already holds restaurants is left
untouched.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg := GetConfig(ctx)

			s := store.New(GetLogger(ctx))
			if err := s.Open(cfg.Database); err != nil {
				return err
			}
			defer s.Close()

			if err := s.InitSchema(); err != nil {
				return err
			}
			if err := s.Seed(ctx); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Database ready at %s\n", cfg.Database)
			return nil
		},
	}
}
