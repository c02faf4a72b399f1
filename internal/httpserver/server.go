package httpserver

import (
	"context"
	"log"
	"net/http"
	"time"

	"onlinemart-client/internal/cart"
	"onlinemart-client/internal/catalog"
	"onlinemart-client/internal/dashboard"
	"onlinemart-client/internal/orders"
	"onlinemart-client/internal/session"
	"onlinemart-client/internal/watchlist"
)

// Deps bundles the sync-core stores the web shell serves.
type Deps struct {
	Auth       authGateway
	Sessions   *session.Store
	Cart       *cart.Cart
	Watchlist  *watchlist.Watchlist
	Shop       *catalog.BuyerShop
	Catalog    *catalog.AdminCatalog
	Orders     *orders.BuyerOrders
	AdminList  *orders.AdminOrders
	Dashboard  *dashboard.AdminDashboard
	Insights   *dashboard.BuyerInsights
}

// Server wraps the web client shell's HTTP server setup.
type Server struct {
	httpServer *http.Server
	logger     *log.Logger
}

// New builds a Server exposing the commerce workflow on addr.
func New(addr string, logger *log.Logger, deps Deps, allowedOrigins []string) *Server {
	router := buildRouter(logger, deps, allowedOrigins)

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{
		httpServer: httpSrv,
		logger:     logger,
	}
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
