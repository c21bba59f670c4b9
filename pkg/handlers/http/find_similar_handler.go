package http

import (
	"errors"

	"github.com/NeuralTrust/TrustTag/pkg/app/similarity"
	"github.com/NeuralTrust/TrustTag/pkg/domain"
	"github.com/NeuralTrust/TrustTag/pkg/handlers/http/request"
	"github.com/NeuralTrust/TrustTag/pkg/handlers/http/response"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type findSimilarHandler struct {
	logger       *logrus.Logger
	finder       similarity.Finder
	defaultLimit int
}

func NewFindSimilarHandler(logger *logrus.Logger, finder similarity.Finder, defaultLimit int) Handler {
	return &findSimilarHandler{
		logger:       logger,
		finder:       finder,
		defaultLimit: defaultLimit,
	}
}

// Handle @Summary Find assets similar to a reference asset
// @Description Ranks the library by tag overlap with the reference asset, best first.
// @Tags Similarity
// @Accept json
// @Produce json
// @Param request body request.FindSimilarRequest true "Reference asset and limit"
// @Success 200 {object} response.FindSimilarResponse
// @Failure 400 {object} map[string]interface{} "Invalid request data"
// @Failure 404 {object} map[string]interface{} "Asset not found"
// @Failure 422 {object} map[string]interface{} "Not enough candidates for a full page"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /find-similar [post]
func (h *findSimilarHandler) Handle(c *fiber.Ctx) error {
	var req request.FindSimilarRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrInvalidJsonPayload})
	}
	if err := req.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	result, err := h.finder.FindSimilar(c.UserContext(), req.AssetID, req.EffectiveLimit(h.defaultLimit))
	if err != nil {
		switch {
		case domain.IsNotFoundError(err):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "asset not found"})
		case errors.Is(err, domain.ErrInvalidLimit):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, domain.ErrInsufficientCandidates):
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
		}
		h.logger.WithError(err).WithField("asset_id", req.AssetID).Error("failed to find similar assets")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "error finding similar assets"})
	}

	return c.Status(fiber.StatusOK).JSON(response.NewFindSimilarResponse(result))
}
