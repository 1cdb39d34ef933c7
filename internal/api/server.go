package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"nsbridge/internal/api/handlers"
	"nsbridge/internal/api/middleware"
	"nsbridge/internal/config"
	"nsbridge/internal/integration"
	"nsbridge/internal/logger"

	"github.com/gin-gonic/gin"
)

type Server struct {
	config *config.Config
	logger *logger.Logger
	router *gin.Engine
	server *http.Server
}

func New(cfg *config.Config, logger *logger.Logger, coordinator *integration.Coordinator) *Server {
	// Set Gin mode
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS())

	// Initialize handlers
	orderHandler := handlers.NewOrderHandler(coordinator, logger)
	shipmentHandler := handlers.NewShipmentHandler(coordinator, logger)
	inventoryHandler := handlers.NewInventoryHandler(coordinator, logger)
	productHandler := handlers.NewProductHandler(coordinator, logger)

	// Routes
	router.POST("/add_order", orderHandler.AddOrder)
	router.POST("/update_order", orderHandler.UpdateOrder)
	router.POST("/shipments", shipmentHandler.Create)
	router.POST("/inventory_stock", inventoryHandler.Stock)
	router.POST("/products", productHandler.Pull)

	return &Server{
		config: cfg,
		logger: logger,
		router: router,
	}
}

func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%s", s.config.APIHost, s.config.APIPort)

	s.server = &http.Server{
		Addr:    addr,
		Handler: s.router,
		// NetSuite calls can block for up to the 175 s read timeout, so the
		// write timeout has to outlast an entire event.
		ReadTimeout:  15 * time.Second,
		WriteTimeout: (config.ReadTimeout + 15) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("Starting server on " + addr)
	return s.server.ListenAndServe()
}

func (s *Server) Stop(ctx context.Context) error {
	s.logger.Info("Shutting down server...")
	return s.server.Shutdown(ctx)
}

// GetRouter exposes the router for handler-level tests.
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}
