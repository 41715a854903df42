package handlers

import (
	"log"
	"strings"

	"perricueva/internal/models"
	"perricueva/internal/services"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler handles the public, read-only catalog routes.
type CatalogHandler struct {
	service *services.CatalogService
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(service *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		service: service,
	}
}

// RegisterRoutes registers the catalog routes with the Fiber app.
func (h *CatalogHandler) RegisterRoutes(router fiber.Router) {
	catalogRoutes := router.Group("/products")
	catalogRoutes.Get("/", h.HandleGetProducts)
	catalogRoutes.Get("/:id", h.HandleGetProductByID)
}

// HandleGetProducts lists products newest-first, optionally filtered by
// the categoria query parameter.
func (h *CatalogHandler) HandleGetProducts(c *fiber.Ctx) error {
	category := c.Query("categoria")
	if category != "" && !models.IsValidCategory(category) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unknown categoria: " + category,
		})
	}

	products, err := h.service.GetAllProducts(category)
	if err != nil {
		log.Printf("Error getting products: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not retrieve products",
		})
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *CatalogHandler) HandleGetProductByID(c *fiber.Ctx) error {
	productID := c.Params("id")
	product, err := h.service.GetProductByID(productID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "Product not found",
			})
		}
		log.Printf("Error getting product by ID %s: %v", productID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Could not retrieve product",
		})
	}
	return c.JSON(product)
}
