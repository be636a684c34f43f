// Package server provides a development JSON:API resource server backed
// by the embedded SQLite store. It exists so the remote client has a
// local endpoint to talk to; it serves rows as-is and performs no order
// bookkeeping of its own.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/orderdesk-labs/orderdesk/internal/store"
)

// Server is the development resource server.
type Server struct {
	store  *store.SQLiteStore
	port   int
	logger *slog.Logger
}

// NewServer creates a server over an opened store.
func NewServer(st *store.SQLiteStore, port int, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Server{store: st, port: port, logger: logger}
}

// Routes builds the JSON:API route tree.
func (s *Server) Routes() http.Handler {
	r := chi.NewMux()
	r.Use(
		middleware.RequestID,
		middleware.Recoverer,
	)

	r.Route("/api", func(r chi.Router) {
		r.Get("/restaurant/", s.listRestaurants)
		r.Get("/restaurant/{id}/", s.getRestaurant)

		r.Get("/category/", s.listCategories)

		r.Get("/menu_item/", s.listMenuItems)
		r.Get("/menu_item/{id}/", s.getMenuItem)
		r.Patch("/menu_item/{id}/", s.patchMenuItem)

		r.Get("/orders/", s.listOrders)
		r.Get("/orders/{id}/", s.getOrder)
		r.Post("/orders/", s.createOrder)
		r.Patch("/orders/{id}/", s.patchOrder)

		r.Get("/order_item/", s.listOrderItems)
		r.Post("/order_item/", s.createOrderItem)
	})

	return r
}

// Serve starts the server and blocks until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("starting resource server", slog.String("addr", fmt.Sprintf("http://localhost:%d/api", s.port)))

	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Addr:    addr,
		Handler: s.Routes(),
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down resource server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}
