package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

type healthHandler struct{}

func NewHealthHandler() Handler {
	return &healthHandler{}
}

// Handle @Summary Health check
// @Tags Service
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *healthHandler) Handle(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}
