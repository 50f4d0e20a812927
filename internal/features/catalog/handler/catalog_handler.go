package handler

import (
	"errors"
	"net/http"

	"drherbs-api/internal/core/logger"
	"drherbs-api/internal/core/money"
	"drherbs-api/internal/features/catalog/domain"
	"drherbs-api/internal/features/catalog/ports"
	"drherbs-api/internal/features/catalog/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CatalogHandler handles HTTP requests for the product catalog.
type CatalogHandler struct {
	service ports.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(s ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{
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

// List handles GET /api/products.
// @Summary List products
// @Description Returns the product listing filtered and sorted by the query parameters.
// @Tags Catalog
// @Produce json
// @Param search query string false "Name substring, case-insensitive"
// @Param category query string false "Exact category"
// @Param min_price query number false "Inclusive lower price bound in dollars"
// @Param max_price query number false "Inclusive upper price bound in dollars"
// @Param rating query number false "Minimum rating, 0 disables the filter"
// @Param sort query string false "One of: newest, price-low, price-high, rating"
// @Success 200 {array} domain.Product
// @Failure 502 {object} ErrorResponse
// @Router /api/products [get]
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	criteria := domain.Criteria{
		Search:    c.Query("search"),
		Category:  c.Query("category"),
		MinPrice:  money.FromDollars(c.QueryFloat("min_price", 0)),
		MaxPrice:  money.FromDollars(c.QueryFloat("max_price", 0)),
		MinRating: c.QueryFloat("rating", 0),
		Sort:      domain.SortKey(c.Query("sort", string(domain.SortNewest))),
	}

	products, err := h.service.List(c.Context(), criteria)
	if err != nil {
		logger.Get().Error("Failed to list products",
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
			Message: "Failed to load products",
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusOK).JSON(products)
}

// Get handles GET /api/products/:id.
// @Summary Get a product
// @Tags Catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} domain.Product
// @Failure 404 {object} ErrorResponse
// @Router /api/products/{id} [get]
func (h *CatalogHandler) Get(c *fiber.Ctx) error {
	id := c.Params("id")

	product, err := h.service.Get(c.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Message: "Product not found",
				RayID:   rayID(c),
			})
		}
		logger.Get().Error("Failed to fetch product",
			zap.String("product_id", id),
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return c.Status(http.StatusBadGateway).JSON(ErrorResponse{
			Message: "Failed to load product",
			RayID:   rayID(c),
		})
	}

	return c.Status(http.StatusOK).JSON(product)
}

// Create handles POST /api/products (admin).
// @Summary Create a product
// @Tags Catalog
// @Accept json
// @Produce json
// @Param product body domain.Product true "Product"
// @Success 201 {object} domain.Product
// @Failure 400 {object} ErrorResponse
// @Router /api/products [post]
func (h *CatalogHandler) Create(c *fiber.Ctx) error {
	var product domain.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID(c),
		})
	}

	created, err := h.service.Create(c.Context(), product)
	if err != nil {
		return h.writeError(c, err, "Failed to create product")
	}

	return c.Status(http.StatusCreated).JSON(created)
}

// Update handles PUT /api/products/:id (admin).
// @Summary Update a product
// @Tags Catalog
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param product body domain.Product true "Product"
// @Success 200 {object} domain.Product
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /api/products/{id} [put]
func (h *CatalogHandler) Update(c *fiber.Ctx) error {
	var product domain.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID(c),
		})
	}

	updated, err := h.service.Update(c.Context(), c.Params("id"), product)
	if err != nil {
		return h.writeError(c, err, "Failed to update product")
	}

	return c.Status(http.StatusOK).JSON(updated)
}

// Delete handles DELETE /api/products/:id (admin).
// @Summary Delete a product
// @Tags Catalog
// @Produce json
// @Param id path string true "Product ID"
// @Success 204
// @Failure 502 {object} ErrorResponse
// @Router /api/products/{id} [delete]
func (h *CatalogHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return h.writeError(c, err, "Failed to delete product")
	}

	return c.SendStatus(http.StatusNoContent)
}

// writeError maps service errors to HTTP responses.
func (h *CatalogHandler) writeError(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrInvalidProduct):
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: err.Error(),
			RayID:   rayID(c),
		})
	case errors.Is(err, service.ErrProductNotFound):
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
