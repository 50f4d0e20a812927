package handler

import (
	"errors"
	"net/http"

	"drherbs-api/internal/core/logger"
	"drherbs-api/internal/features/orders/domain"
	"drherbs-api/internal/features/orders/ports"
	"drherbs-api/internal/features/orders/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// SessionHeader identifies the shopper's cart session, shared with the cart
// endpoints so checkout drains the same cart the shopper filled.
const SessionHeader = "X-Session-ID"

// OrderHandler handles HTTP requests for checkout and order administration.
type OrderHandler struct {
	service ports.OrderService
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(s ports.OrderService) *OrderHandler {
	return &OrderHandler{
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

type updateStatusRequest struct {
	Status string `json:"status"`
}

// Checkout handles POST /api/orders.
// @Summary Place an order
// @Description Converts the session's cart into a pending cash-on-delivery order.
// @Tags Orders
// @Accept json
// @Produce json
// @Param X-Session-ID header string true "Cart session id"
// @Param form body domain.CheckoutForm true "Checkout form"
// @Success 201 {object} domain.Order
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/orders [post]
func (h *OrderHandler) Checkout(c *fiber.Ctx) error {
	session := c.Get(SessionHeader)
	if session == "" {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Missing " + SessionHeader + " header",
			RayID:   rayID(c),
		})
	}

	var form domain.CheckoutForm
	if err := c.BodyParser(&form); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID(c),
		})
	}

	order, err := h.service.Checkout(c.Context(), session, form)
	if err != nil {
		return h.writeError(c, err, "Failed to place order")
	}

	return c.Status(http.StatusCreated).JSON(order)
}

// List handles GET /api/orders/admin (admin).
// @Summary List all orders
// @Tags Orders
// @Produce json
// @Security AdminToken
// @Success 200 {array} domain.Order
// @Failure 401 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /api/orders/admin [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	orders, err := h.service.List(c.Context())
	if err != nil {
		return h.writeError(c, err, "Failed to load orders")
	}

	return c.Status(http.StatusOK).JSON(orders)
}

// UpdateStatus handles PUT /api/orders/admin/:id/status (admin).
// @Summary Update an order's status
// @Tags Orders
// @Accept json
// @Produce json
// @Security AdminToken
// @Param id path string true "Order ID"
// @Param status body updateStatusRequest true "New status"
// @Success 200 {object} domain.Order
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/orders/admin/{id}/status [put]
func (h *OrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var req updateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID(c),
		})
	}

	status, err := domain.ParseStatus(req.Status)
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})
	}

	order, err := h.service.UpdateStatus(c.Context(), c.Params("id"), status)
	if err != nil {
		return h.writeError(c, err, "Failed to update order")
	}

	return c.Status(http.StatusOK).JSON(order)
}

// writeError maps service errors to HTTP responses.
func (h *OrderHandler) writeError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrInvalidForm), errors.Is(err, service.ErrEmptyCart):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})
	case errors.Is(err, service.ErrOrderNotFound):
		return c.Status(http.StatusNotFound).JSON(ErrorResponse{
			Message: "Order not found",
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
