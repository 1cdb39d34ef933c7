package main

import (
	"log"

	"nsbridge/internal/api"
	"nsbridge/internal/config"
	"nsbridge/internal/integration"
	"nsbridge/internal/logger"
	"nsbridge/internal/netsuite"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}

	// Initialize logger
	logger := logger.New(cfg.LogLevel)

	// One NetSuite client per process; credentials never change between
	// events.
	client := netsuite.NewClient(cfg, logger)
	coordinator := integration.NewCoordinator(cfg, client, logger)

	// Initialize API server
	server := api.New(cfg, logger, coordinator)

	// Start server
	logger.Info("Starting API server on port " + cfg.APIPort)
	if err := server.Start(); err != nil {
		logger.Fatal("Failed to start server: %v", err)
	}
}
