package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// CORS headers echoed on every response. The panel is served from a
// different origin, so the API stays fully permissive.
const (
	allowOrigin  = "*"
	allowHeaders = "authorization, x-client-info, apikey, content-type"
)

// CORS sets permissive CORS headers on every response and answers
// preflight OPTIONS requests with an empty 200.
func CORS() fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Set("Access-Control-Allow-Origin", allowOrigin)
		c.Set("Access-Control-Allow-Headers", allowHeaders)

		if c.Method() == fiber.MethodOptions {
			return c.SendStatus(fiber.StatusOK)
		}

		return c.Next()
	}
}
