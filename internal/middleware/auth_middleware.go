package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"bdgaraj_backend/pkg/utils/jwt"
)

const CtxAdminKey = "admin"

// AuthMiddleware bearer token'ı doğrular ve claims'i context'e koyar.
// Token'ın geçerliliğinde tek otorite sunucudur; client tarafında
// expiry kontrolü yapılmaz.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization header missing",
			})
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Authorization header must be 'Bearer <token>'",
			})
		}

		claims, err := jwt.ValidateToken(parts[1])
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid or expired token",
			})
		}

		c.Locals(CtxAdminKey, claims)
		return c.Next()
	}
}
