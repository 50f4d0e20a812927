package handler

import (
	"errors"
	"net/http"

	"drherbs-api/internal/core/logger"
	"drherbs-api/internal/features/cart/ports"
	"drherbs-api/internal/features/cart/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionHeader identifies the shopper's cart session. The handler mints a
// fresh id when the client sends none and echoes it back on every response,
// so a browser only has to remember one opaque value.
const SessionHeader = "X-Session-ID"

// CartHandler handles HTTP requests for the shopping cart.
type CartHandler struct {
	service ports.CartService
}

// NewCartHandler creates a new CartHandler.
func NewCartHandler(s ports.CartService) *CartHandler {
	return &CartHandler{
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

type addItemRequest struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// Get handles GET /api/cart.
// @Summary Get the cart
// @Description Returns the session's cart with computed subtotal, shipping and total.
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string false "Cart session id; minted when absent"
// @Success 200 {object} domain.View
// @Failure 502 {object} ErrorResponse
// @Router /api/cart [get]
func (h *CartHandler) Get(c *fiber.Ctx) error {
	view, err := h.service.Get(c.Context(), h.session(c))
	if err != nil {
		return h.writeError(c, err, "Failed to load cart")
	}

	return c.Status(http.StatusOK).JSON(view)
}

// AddItem handles POST /api/cart/items.
// @Summary Add a product to the cart
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Cart session id; minted when absent"
// @Param item body addItemRequest true "Product and quantity"
// @Success 200 {object} domain.View
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/cart/items [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	var req addItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID(c),
		})
	}
	if req.ProductID == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "product_id is required",
			RayID:   rayID(c),
		})
	}

	view, err := h.service.AddItem(c.Context(), h.session(c), req.ProductID, req.Quantity)
	if err != nil {
		return h.writeError(c, err, "Failed to add item")
	}

	return c.Status(http.StatusOK).JSON(view)
}

// UpdateQuantity handles PUT /api/cart/items/:productId.
// @Summary Change a line's quantity
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Session-ID header string false "Cart session id; minted when absent"
// @Param productId path string true "Product ID"
// @Param item body updateQuantityRequest true "New quantity, at least 1"
// @Success 200 {object} domain.View
// @Failure 400 {object} ErrorResponse
// @Router /api/cart/items/{productId} [put]
func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	var req updateQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID(c),
		})
	}

	view, err := h.service.UpdateQuantity(c.Context(), h.session(c), c.Params("productId"), req.Quantity)
	if err != nil {
		return h.writeError(c, err, "Failed to update quantity")
	}

	return c.Status(http.StatusOK).JSON(view)
}

// RemoveItem handles DELETE /api/cart/items/:productId.
// @Summary Remove a product from the cart
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string false "Cart session id; minted when absent"
// @Param productId path string true "Product ID"
// @Success 200 {object} domain.View
// @Failure 502 {object} ErrorResponse
// @Router /api/cart/items/{productId} [delete]
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	view, err := h.service.RemoveItem(c.Context(), h.session(c), c.Params("productId"))
	if err != nil {
		return h.writeError(c, err, "Failed to remove item")
	}

	return c.Status(http.StatusOK).JSON(view)
}

// Clear handles DELETE /api/cart.
// @Summary Empty the cart
// @Tags Cart
// @Produce json
// @Param X-Session-ID header string false "Cart session id; minted when absent"
// @Success 204
// @Failure 502 {object} ErrorResponse
// @Router /api/cart [delete]
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	if err := h.service.Clear(c.Context(), h.session(c)); err != nil {
		return h.writeError(c, err, "Failed to clear cart")
	}

	return c.SendStatus(http.StatusNoContent)
}

// session resolves the cart session id and echoes it on the response.
func (h *CartHandler) session(c *fiber.Ctx) string {
	id := c.Get(SessionHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Set(SessionHeader, id)
	return id
}

// writeError maps service errors to HTTP responses.
func (h *CartHandler) writeError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrInvalidQuantity):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})
	case errors.Is(err, service.ErrUnknownProduct):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Message: "Product not found",
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
