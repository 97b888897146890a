package utils

import (
	"github.com/gofiber/fiber/v2"
)

// One envelope everywhere: {"status":"success","data":...} for success,
// {"status":"error","message":...} for failure.

func Success(c *fiber.Ctx, code int, data interface{}) error {
	return c.Status(code).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}

// SuccessWithNote is Success plus the degraded-response marker, used when a
// read was served from fallback data.
func SuccessWithNote(c *fiber.Ctx, code int, data interface{}, note string) error {
	return c.Status(code).JSON(fiber.Map{
		"status": "success",
		"data":   data,
		"note":   note,
	})
}

func Error(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{
		"status":  "error",
		"message": message,
	})
}
