package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/CodeWander-666/GULLYLINK-AI/internal/app/server/handlers"
	"github.com/CodeWander-666/GULLYLINK-AI/internal/core/contracts"
	"github.com/CodeWander-666/GULLYLINK-AI/internal/core/services"
	"github.com/CodeWander-666/GULLYLINK-AI/pkg/middleware"
)

type Server struct {
	mux        *http.ServeMux
	log        *slog.Logger
	name       string
	addr       string
	apiHandler *handlers.APIHandler
	wsHandler  *handlers.WSHandler
}

func NewServer(
	log *slog.Logger,
	name, addr string,
	catalog *services.CatalogService,
	orders *services.OrderService,
	dispatch *services.DispatchService,
	hub contracts.Registry,
) *Server {
	s := &Server{
		mux:        http.NewServeMux(),
		log:        log,
		name:       name,
		addr:       addr,
		apiHandler: handlers.NewAPIHandler(catalog, orders),
		wsHandler:  handlers.NewWSHandler(hub, dispatch),
	}

	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.HandleFunc("GET /healthz", s.apiHandler.Healthz)
	s.mux.HandleFunc("GET /api/vendors", s.apiHandler.ListVendors)
	s.mux.HandleFunc("GET /api/vendors/online", s.apiHandler.OnlineVendors)
	s.mux.HandleFunc("GET /api/menu/{vendor_id}", s.apiHandler.GetMenu)
	s.mux.HandleFunc("POST /api/order", s.apiHandler.PlaceOrder)
	s.mux.HandleFunc("GET /ws", s.wsHandler.Handler)
}

// Handler returns the full middleware-wrapped handler chain.
func (s *Server) Handler() http.Handler {
	var h http.Handler = s.mux
	h = middleware.RequestLogger(s.log)(h)
	h = middleware.TracerMiddleware(s.name)(h)
	return h
}

// Start serves until ctx is cancelled, then drains and shuts down.
// No WriteTimeout on the server: it would cut long-lived websocket
// connections; the ws layer enforces its own per-message deadline.
func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 15 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", "addr", s.addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
			return err
		}
		return nil
	}
}
