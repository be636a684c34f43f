// Package cli provides the command-line interface for orderdesk.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/orderdesk-labs/orderdesk/internal/backend"
	"github.com/orderdesk-labs/orderdesk/internal/config"
	"github.com/orderdesk-labs/orderdesk/pkg/core"
)

var (
	cfgFile string
	verbose bool
)

// Version information (set at build time).
var (
	Version   = "0.1.0"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

// configKey is used to store config in context.
type configKey struct{}

// loggerKey is used to store the logger in context.
type loggerKey struct{}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "orderdesk",
		Short: "Orderdesk - Restaurant Order Management",
		Long: `Orderdesk is a restaurant order-management tool.

It works against either an embedded SQLite database or a remote JSON:API
resource server; the data_source_type setting (or the DATA_SOURCE_TYPE
environment variable) decides which.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip config loading for help and completion commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}

			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: level,
			}))

			ctx := context.WithValue(cmd.Context(), configKey{}, cfg)
			ctx = context.WithValue(ctx, loggerKey{}, logger)
			cmd.SetContext(ctx)

			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./orderdesk.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	rootCmd.AddCommand(NewVersionCommand())
	rootCmd.AddCommand(NewSeedCommand())
	rootCmd.AddCommand(NewServeCommand())
	rootCmd.AddCommand(NewRestaurantsCommand())
	rootCmd.AddCommand(NewMenuCommand())
	rootCmd.AddCommand(NewOrdersCommand())
	rootCmd.AddCommand(NewDashboardCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// GetConfig retrieves the config from the command context.
func GetConfig(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey{}).(*config.Config); ok {
		return c
	}
	return &config.Config{
		APIBaseURL:     config.DefaultAPIBaseURL,
		DataSourceType: config.SourceLocal,
		Database:       config.DefaultDatabasePath,
	}
}

// GetLogger retrieves the logger from the command context.
func GetLogger(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.New(slog.DiscardHandler)
}

// openStore wires the configured data backend for a command.
func openStore(cmd *cobra.Command) (core.Store, func() error, error) {
	ctx := cmd.Context()
	return backend.New(ctx, GetConfig(ctx), GetLogger(ctx))
}
