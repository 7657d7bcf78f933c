package middleware

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"

	"pasar/internal/models"
	"pasar/internal/repositories"
	"pasar/internal/services"
)

// userKey is the fiber locals key holding the authenticated user record.
const userKey = "user"

// AuthRequired is a Fiber middleware that checks for a valid JWT token and
// loads the authenticated user's record into the request locals.
func AuthRequired(authService *services.AuthService, userRepo repositories.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header is required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		claims, err := authService.ValidateToken(parts[1])
		if err != nil {
			log.Printf("JWT validation failed: %v", err)
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
				"error":   err.Error(),
			})
		}

		userID, _ := claims["user_id"].(string)
		user, err := userRepo.GetByID(c.UserContext(), userID)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Could not load user",
				"error":   err.Error(),
			})
		}
		if user == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "User no longer exists",
			})
		}

		c.Locals(userKey, user)
		return c.Next()
	}
}

// CurrentUser returns the user record stored by AuthRequired, or nil when
// the request is unauthenticated.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(userKey).(*models.User)
	return user
}
