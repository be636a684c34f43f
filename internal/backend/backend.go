// Package backend wires a concrete core.Store from the site
// configuration: the embedded SQLite store for LOCAL, the remote JSON:API
// client for ALS.
package backend

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/orderdesk-labs/orderdesk/internal/config"
	"github.com/orderdesk-labs/orderdesk/internal/rest"
	"github.com/orderdesk-labs/orderdesk/internal/store"
	"github.com/orderdesk-labs/orderdesk/pkg/core"
)

// New builds the store the configuration selects and returns it with a
// close function. The embedded store is opened, migrated, and seeded
// before it is handed out; the remote client needs no teardown and gets
// a no-op closer.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (core.Store, func() error, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	var st core.Store
	var closer func() error

	switch {
	case cfg.Remote():
		logger.Info("using remote data backend", slog.String("base_url", cfg.APIBaseURL))
		st = rest.NewClient(cfg.APIBaseURL, logger)
		closer = func() error { return nil }
	default:
		logger.Info("using embedded data backend", slog.String("database", cfg.Database))
		s := store.New(logger)
		if err := s.Open(cfg.Database); err != nil {
			return nil, nil, fmt.Errorf("failed to open embedded store: %w", err)
		}
		if err := s.InitSchema(); err != nil {
			s.Close()
			return nil, nil, fmt.Errorf("failed to migrate embedded store: %w", err)
		}
		if err := s.Seed(ctx); err != nil {
			s.Close()
			return nil, nil, fmt.Errorf("failed to seed embedded store: %w", err)
		}
		st = s
		closer = s.Close
	}

	if cfg.StrictStatusFlow {
		st = Strict(st, logger)
	}
	return st, closer, nil
}
