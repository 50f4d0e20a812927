package handler

import (
	"errors"
	"net/http"

	"drherbs-api/internal/core/logger"
	"drherbs-api/internal/features/marketing/ports"
	"drherbs-api/internal/features/marketing/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// MarketingHandler handles HTTP requests for admin analytics.
type MarketingHandler struct {
	service ports.MarketingService
}

// NewMarketingHandler creates a new MarketingHandler.
func NewMarketingHandler(s ports.MarketingService) *MarketingHandler {
	return &MarketingHandler{
		service: s,
	}
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}

// PixelReport handles GET /api/marketing/facebook-pixel (admin).
// @Summary Conversion report for one ad code
// @Tags Marketing
// @Produce json
// @Security AdminToken
// @Param ad_code query string true "Ad code"
// @Success 200 {object} domain.PixelReport
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/marketing/facebook-pixel [get]
func (h *MarketingHandler) PixelReport(c *fiber.Ctx) error {
	report, err := h.service.PixelReport(c.Context(), c.Query("ad_code"))
	if err != nil {
		return h.writeError(c, err, "Failed to build pixel report")
	}

	return c.Status(http.StatusOK).JSON(report)
}

// Dashboard handles GET /api/marketing/dashboard (admin).
// @Summary Admin dashboard summary
// @Tags Marketing
// @Produce json
// @Security AdminToken
// @Success 200 {object} domain.DashboardStats
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/marketing/dashboard [get]
func (h *MarketingHandler) Dashboard(c *fiber.Ctx) error {
	stats, err := h.service.Dashboard(c.Context())
	if err != nil {
		return h.writeError(c, err, "Failed to build dashboard")
	}

	return c.Status(http.StatusOK).JSON(stats)
}

// writeError maps service errors to HTTP responses.
func (h *MarketingHandler) writeError(c *fiber.Ctx, err error, fallback string) error {
	if errors.Is(err, service.ErrMissingAdCode) {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})
	}

	logger.Get().Error(fallback,
		zap.String("ray_id", rayID(c)),
		zap.Error(err),
	)
	return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
		Message: fallback,
		RayID:   rayID(c),
	})
}

func rayID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return "unknown"
}
