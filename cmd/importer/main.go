package main

import (
	"context"
	"flag"
	"log"
	"os"

	"onlinemart-client/internal/api"
	"onlinemart-client/internal/config"
	"onlinemart-client/internal/domain"
	"onlinemart-client/internal/importer"
	"onlinemart-client/internal/session"
)

func main() {
	filePath := flag.String("file", "", "path to a product CSV export")
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	logger := log.New(os.Stdout, "[importer] ", log.LstdFlags|log.LUTC)

	if *filePath == "" {
		logger.Fatal("missing -file argument")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}
	gateway, err := api.New(cfg.BaseURL, cfg.RequestTimeout, logger)
	if err != nil {
		logger.Fatalf("init gateway: %v", err)
	}

	snapshot := session.NewStore(cfg.SessionFile, logger).Snapshot()
	if session.Authorize(snapshot, domain.RoleAdmin) != session.Allow {
		logger.Fatal("an admin session is required; log in with the desktop shell first")
	}

	f, err := os.Open(*filePath)
	if err != nil {
		logger.Fatalf("open csv: %v", err)
	}
	defer f.Close()

	imported, err := importer.NewCSVImporter(f, gateway, snapshot.Token).Run(context.Background())
	if err != nil {
		logger.Fatalf("imported %d products before failure: %v", imported, err)
	}
	logger.Printf("imported %d products", imported)
}
