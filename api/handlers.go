package api

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/CristiGvl/picoTherm/internal/sensors"
)

// requestUnit resolves the unit for one request: the configured default
// unless a ?unit= token overrides it.
func (s *Server) requestUnit(c *fiber.Ctx) (sensors.TemperatureType, error) {
	token := c.Query("unit")
	if token == "" {
		return s.defaultUnit, nil
	}
	return sensors.ParseTemperatureType(token)
}

// Temperature endpoint. An empty sensor list is a normal response, not an
// error: hosts without readable sensors report nothing.
func (s *Server) getTemps(c *fiber.Ctx) error {
	unit, err := s.requestUnit(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	harvests, err := s.harvester.Temperatures(ctx, unit, s.filter)
	if err != nil {
		s.log.Error("temperature harvest failed", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"unit":    unit.String(),
		"count":   len(harvests),
		"sensors": harvests,
	})
}

// Fan endpoint.
func (s *Server) getFans(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	fans, err := s.harvester.Fans(ctx, s.filter)
	if err != nil {
		s.log.Error("fan harvest failed", zap.Error(err))
		return c.Status(500).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"count": len(fans),
		"fans":  fans,
	})
}
