package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/verdantlabs/vigor/internal/services"
)

func apiError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func apiFieldErrors(c *fiber.Ctx, fieldErrors services.FieldErrors) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"errors": fieldErrors})
}

func sendNoContent(c *fiber.Ctx) error {
	return c.SendStatus(fiber.StatusNoContent)
}
