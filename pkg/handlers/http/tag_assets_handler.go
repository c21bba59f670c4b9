package http

import (
	"github.com/NeuralTrust/TrustTag/pkg/app/tagging"
	"github.com/NeuralTrust/TrustTag/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type tagAssetsHandler struct {
	logger       *logrus.Logger
	orchestrator tagging.Orchestrator
}

func NewTagAssetsHandler(logger *logrus.Logger, orchestrator tagging.Orchestrator) Handler {
	return &tagAssetsHandler{
		logger:       logger,
		orchestrator: orchestrator,
	}
}

// Handle @Summary Generate tags for a batch of assets
// @Description Returns one result per asset in input order. Assets whose collaborator fails get fallback tags.
// @Tags Tagging
// @Accept json
// @Produce json
// @Param request body request.TagAssetsRequest true "Assets to tag"
// @Success 200 {array} tagging.Result
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /tag-assets [post]
func (h *tagAssetsHandler) Handle(c *fiber.Ctx) error {
	var req request.TagAssetsRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	results := h.orchestrator.Tag(c.UserContext(), req.ToAssets())
	if len(results) != len(req.Assets) {
		h.logger.WithFields(logrus.Fields{
			"expected": len(req.Assets),
			"got":      len(results),
		}).Error("tagging returned a mismatched batch")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "error generating tags"})
	}

	return c.Status(fiber.StatusOK).JSON(results)
}
