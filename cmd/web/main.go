package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"onlinemart-client/internal/api"
	"onlinemart-client/internal/cart"
	"onlinemart-client/internal/catalog"
	"onlinemart-client/internal/config"
	"onlinemart-client/internal/dashboard"
	"onlinemart-client/internal/httpserver"
	"onlinemart-client/internal/orders"
	"onlinemart-client/internal/session"
	"onlinemart-client/internal/watchlist"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	logger := log.New(os.Stdout, "[web] ", log.LstdFlags|log.LUTC)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}

	gateway, err := api.New(cfg.BaseURL, cfg.RequestTimeout, logger)
	if err != nil {
		logger.Fatalf("init gateway: %v", err)
	}

	sessions := session.NewStore(cfg.SessionFile, logger)
	watch := watchlist.New(gateway, watchlist.ConfirmFirst)

	srv := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		Auth:      gateway,
		Sessions:  sessions,
		Cart:      cart.New(gateway),
		Watchlist: watch,
		Shop:      catalog.NewBuyerShop(gateway, watch),
		Catalog:   catalog.NewAdminCatalog(gateway),
		Orders:    orders.NewBuyerOrders(gateway),
		AdminList: orders.NewAdminOrders(gateway),
		Dashboard: dashboard.NewAdminDashboard(gateway),
		Insights:  dashboard.NewBuyerInsights(gateway),
	}, cfg.AllowedOrigins)

	go func() {
		logger.Printf("web client shell listening on %s (api %s)", cfg.HTTPAddr, cfg.BaseURL)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("serve: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("shutdown: %v", err)
	}
}
