package handlers

import (
	"log"

	"perricueva/internal/auth"
	"perricueva/internal/models"
	"perricueva/internal/ratelimit"
	"perricueva/internal/services"
	"perricueva/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// AdminHandler is the mutation gateway: rate limit, PIN, action and payload
// checks in fixed order, then the store operation. Each failure short-circuits
// with its own response.
type AdminHandler struct {
	adminService *services.AdminService
	pinValidator *auth.PinValidator
	limiter      *ratelimit.Limiter
	validate     *validator.Validate
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(adminService *services.AdminService, pinValidator *auth.PinValidator, limiter *ratelimit.Limiter) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		pinValidator: pinValidator,
		limiter:      limiter,
		validate:     validator.New(),
	}
}

// RegisterRoutes registers the admin mutation route with the Fiber app.
// Only POST is routed; Fiber answers other methods with 405.
func (h *AdminHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/admin-products", h.HandleAdminProducts)
}

// AdminProductRequest represents the request body for a product mutation.
type AdminProductRequest struct {
	Pin     string               `json:"pin"`
	Action  string               `json:"action"`
	Product *models.ProductInput `json:"product"`
}

// HandleAdminProducts authorizes and executes one product mutation.
func (h *AdminHandler) HandleAdminProducts(c *fiber.Ctx) error {
	clientKey := ClientKey(c)
	if !h.limiter.Allow(clientKey) {
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error": "Too many requests, try again later",
		})
	}

	var req AdminProductRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing admin-products request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request",
		})
	}

	if !h.pinValidator.Configured() {
		log.Println("Rejecting admin-products request: no admin PIN configured")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Server configuration error",
		})
	}

	if err := h.validate.Var(req.Pin, "required,min=4,max=20"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": auth.ErrBadFormat.Error(),
		})
	}

	valid, err := h.pinValidator.Validate(req.Pin)
	if err != nil || !valid {
		// Log the attempting identity for audit, never the submitted value.
		log.Printf("Unauthorized admin-products attempt from client %s", clientKey)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "Unauthorized",
		})
	}

	if err := h.validate.Var(req.Action, "required,oneof=insert update delete"); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid action",
		})
	}

	if err := validation.ValidateProduct(req.Product, req.Action); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	var product *models.Product
	switch req.Action {
	case validation.ActionInsert:
		product, err = h.adminService.InsertProduct(req.Product)
	case validation.ActionUpdate:
		product, err = h.adminService.UpdateProduct(req.Product)
	case validation.ActionDelete:
		err = h.adminService.DeleteProduct(req.Product.ID)
	}
	if err != nil {
		// Store internals stay in the server log; the caller only sees a
		// generic message.
		log.Printf("Store operation %s failed for client %s: %v", req.Action, clientKey, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Database operation failed",
		})
	}

	if product == nil {
		return c.JSON(fiber.Map{
			"success": true,
			"data":    nil,
		})
	}
	return c.JSON(fiber.Map{
		"success": true,
		"data":    product,
	})
}
