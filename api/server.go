package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"go.uber.org/zap"

	"github.com/CristiGvl/picoTherm/internal/config"
	"github.com/CristiGvl/picoTherm/internal/filter"
	"github.com/CristiGvl/picoTherm/internal/platform"
	"github.com/CristiGvl/picoTherm/internal/sensors"
)

// Server represents the API server.
type Server struct {
	app         *fiber.App
	harvester   sensors.Harvester
	filter      *filter.Filter
	defaultUnit sensors.TemperatureType
	timeout     time.Duration
	log         *zap.Logger
}

// NewServer creates a new API server around the given harvester.
func NewServer(cfg *config.Config, harvester sensors.Harvester, f *filter.Filter, log *zap.Logger) (*Server, error) {
	unit, err := cfg.Sensors.TemperatureType()
	if err != nil {
		return nil, err
	}

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ServerHeader: "picoTherm",
		AppName:      "picoTherm v1.0",
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,OPTIONS",
		AllowHeaders: "*",
	}))

	server := &Server{
		app:         app,
		harvester:   harvester,
		filter:      f,
		defaultUnit: unit,
		timeout:     cfg.Sensors.Timeout,
		log:         log,
	}

	server.setupRoutes()
	return server, nil
}

// setupRoutes configures all API routes.
func (s *Server) setupRoutes() {
	api := s.app.Group("/api")

	api.Get("/temps", s.getTemps)
	api.Get("/fans", s.getFans)
	api.Get("/health", s.healthCheck)
}

// Start starts the API server.
func (s *Server) Start(address string) error {
	return s.app.Listen(address)
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}

// Health check endpoint.
func (s *Server) healthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"platform":  platform.Describe(),
		"timestamp": time.Now().Unix(),
	})
}
