package handler

import (
	"errors"
	"net/http"

	"drherbs-api/internal/core/logger"
	"drherbs-api/internal/features/reviews/ports"
	"drherbs-api/internal/features/reviews/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ReviewHandler handles HTTP requests for product reviews.
type ReviewHandler struct {
	service ports.ReviewService
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(s ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{
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

type submitRequest struct {
	ProductID    string `json:"product_id"`
	CustomerName string `json:"customer_name"`
	Rating       int    `json:"rating"`
	Comment      string `json:"comment"`
}

// List handles GET /api/reviews.
// @Summary List a product's reviews
// @Tags Reviews
// @Produce json
// @Param product_id query string true "Product ID"
// @Success 200 {array} domain.Review
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/reviews [get]
func (h *ReviewHandler) List(c *fiber.Ctx) error {
	reviews, err := h.service.ListForProduct(c.Context(), c.Query("product_id"))
	if err != nil {
		return h.writeError(c, err, "Failed to load reviews")
	}

	return c.Status(http.StatusOK).JSON(reviews)
}

// Submit handles POST /api/reviews.
// @Summary Submit a review
// @Tags Reviews
// @Accept json
// @Produce json
// @Param review body submitRequest true "Review"
// @Success 201 {object} domain.Review
// @Failure 400 {object} ErrorResponse
// @Router /api/reviews [post]
func (h *ReviewHandler) Submit(c *fiber.Ctx) error {
	var req submitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID(c),
		})
	}

	created, err := h.service.Submit(c.Context(), req.ProductID, req.CustomerName, req.Rating, req.Comment)
	if err != nil {
		return h.writeError(c, err, "Failed to submit review")
	}

	return c.Status(http.StatusCreated).JSON(created)
}

// writeError maps service errors to HTTP responses.
func (h *ReviewHandler) writeError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrInvalidReview), errors.Is(err, service.ErrMissingProductID):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})
	default:
		logger.Get().Error(fallback,
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
			Message: fallback,
			RayID:   rayID(c),
		})
	}
}

func rayID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return "unknown"
}
