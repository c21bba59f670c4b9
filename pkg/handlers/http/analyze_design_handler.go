package http

import (
	"errors"

	"github.com/NeuralTrust/TrustTag/pkg/app/design"
	"github.com/NeuralTrust/TrustTag/pkg/domain"
	"github.com/NeuralTrust/TrustTag/pkg/handlers/http/request"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type analyzeDesignHandler struct {
	logger   *logrus.Logger
	analyzer design.Analyzer
}

func NewAnalyzeDesignHandler(logger *logrus.Logger, analyzer design.Analyzer) Handler {
	return &analyzeDesignHandler{
		logger:   logger,
		analyzer: analyzer,
	}
}

// Handle @Summary Design feedback for an image asset
// @Tags Design
// @Accept json
// @Produce json
// @Param request body request.AssetRequest true "Image asset"
// @Success 200 {object} design.Report
// @Failure 400 {object} map[string]interface{} "Invalid request data or non-image asset"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /analyze-design [post]
func (h *analyzeDesignHandler) Handle(c *fiber.Ctx) error {
	var req request.AssetRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	report, err := h.analyzer.Analyze(c.UserContext(), req.ToAsset())
	if err != nil {
		if errors.Is(err, domain.ErrUnsupportedAssetType) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		h.logger.WithError(err).WithField("url", req.URL).Error("failed to analyze design")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "error analyzing design"})
	}

	return c.Status(fiber.StatusOK).JSON(report)
}
