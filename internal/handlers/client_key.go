package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ClientKey derives the rate-limiting key for a request: the first entry of
// X-Forwarded-For, else the proxy's CF-Connecting-IP, else "unknown".
// Untraceable clients therefore share one bucket; that is accepted behavior.
func ClientKey(c *fiber.Ctx) string {
	if fwd := c.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if key := strings.TrimSpace(first); key != "" {
			return key
		}
	}
	if ip := c.Get("CF-Connecting-IP"); ip != "" {
		return ip
	}
	return "unknown"
}
