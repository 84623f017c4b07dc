package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Claims stored by the auth middleware. Keys must stay in sync with
// internals/middlewares/auth.

func GetAccountIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	v, ok := c.Locals("user_id").(string)
	if !ok || v == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - missing account id")
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - invalid account id")
	}
	return id, nil
}

func GetEmailFromToken(c *fiber.Ctx) string {
	v, _ := c.Locals("userEmail").(string)
	return v
}

func GetRoleFromToken(c *fiber.Ctx) string {
	v, _ := c.Locals("userRole").(string)
	return v
}
