package handlers

import (
	"log"

	"perricueva/internal/auth"
	"perricueva/internal/ratelimit"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// PinHandler handles the standalone admin-UI unlock check.
type PinHandler struct {
	pinValidator *auth.PinValidator
	limiter      *ratelimit.Limiter
	validate     *validator.Validate
}

// NewPinHandler creates a new PinHandler.
func NewPinHandler(pinValidator *auth.PinValidator, limiter *ratelimit.Limiter) *PinHandler {
	return &PinHandler{
		pinValidator: pinValidator,
		limiter:      limiter,
		validate:     validator.New(),
	}
}

// RegisterRoutes registers the PIN validation route with the Fiber app.
func (h *PinHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/validate-pin", h.HandleValidatePin)
}

// ValidatePinRequest represents the request body for PIN validation.
type ValidatePinRequest struct {
	Pin string `json:"pin" validate:"required,min=4,max=20"`
}

// HandleValidatePin checks a submitted PIN and reports only its validity.
func (h *PinHandler) HandleValidatePin(c *fiber.Ctx) error {
	clientKey := ClientKey(c)
	if !h.limiter.Allow(clientKey) {
		return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
			"error": "Too many attempts, try again later",
		})
	}

	var req ValidatePinRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing validate-pin request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request",
		})
	}

	if !h.pinValidator.Configured() {
		log.Println("Rejecting validate-pin request: no admin PIN configured")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Admin PIN not configured",
		})
	}

	if err := h.validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": auth.ErrBadFormat.Error(),
		})
	}

	valid, err := h.pinValidator.Validate(req.Pin)
	if err != nil {
		log.Printf("PIN validation error for client %s: %v", clientKey, err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request",
		})
	}

	if !valid {
		log.Printf("Invalid PIN attempt from client %s", clientKey)
	}
	return c.JSON(fiber.Map{
		"valid": valid,
	})
}
