package http

import (
	"github.com/NeuralTrust/TrustTag/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
)

const runningMessage = "TrustTag AI service is running"

type rootHandler struct{}

func NewRootHandler() Handler {
	return &rootHandler{}
}

// Handle @Summary Service banner
// @Tags Service
// @Produce json
// @Success 200 {object} response.MessageResponse
// @Router / [get]
func (h *rootHandler) Handle(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(response.MessageResponse{Message: runningMessage})
}
