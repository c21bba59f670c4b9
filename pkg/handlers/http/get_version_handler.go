package http

import (
	"github.com/NeuralTrust/TrustTag/pkg/version"
	"github.com/gofiber/fiber/v2"
)

type getVersionHandler struct{}

func NewGetVersionHandler() Handler {
	return &getVersionHandler{}
}

// Handle @Summary Get TrustTag version
// @Description Returns the build information of the running service
// @Tags Service
// @Produce json
// @Success 200 {object} version.Info
// @Router /api/v1/version [get]
func (h *getVersionHandler) Handle(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(version.GetInfo())
}
