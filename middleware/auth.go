package middleware

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"solcraft-backend/auth"
)

// SessionMiddleware verifies the Bearer session token and attaches the
// subject to the request context. Invalid and expired tokens both answer 401
// with the same generic message.
func SessionMiddleware(tokens *auth.TokenManager) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  "error",
				"message": "authentication required",
			})
		}

		token, err := auth.ExtractBearer(authHeader)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  "error",
				"message": "authentication required",
			})
		}

		claims, err := tokens.Verify(token)
		if err != nil {
			log.Printf("🚫 [SESSION] rejected token for %s: %v", c.Path(), err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"status":  "error",
				"message": "invalid or expired token",
			})
		}

		c.Locals("user_id", claims.UserID)
		c.Locals("wallet_address", claims.WalletAddress)
		return c.Next()
	}
}

// UserID reads the subject set by SessionMiddleware. Zero means unauthenticated.
func UserID(c *fiber.Ctx) uint {
	if id, ok := c.Locals("user_id").(uint); ok {
		return id
	}
	return 0
}
