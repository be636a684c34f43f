package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/orderdesk-labs/orderdesk/internal/server"
	"github.com/orderdesk-labs/orderdesk/internal/store"
)

// NewServeCommand creates the serve command.
func NewServeCommand() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the development JSON:API resource server",
		Long: `Run a JSON:API resource server over the embedded SQLite database.

This gives the remote (ALS) backend a local endpoint to talk to. The
database is migrated and seeded before the server starts.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			cfg := GetConfig(ctx)
			logger := GetLogger(ctx)

			s := store.New(logger)
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

			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return server.NewServer(s, port, logger).Serve(ctx)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 5656, "Port to serve on")

	return cmd
}
