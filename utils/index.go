package utils

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorResponse writes {"status","message","error"}. Client errors are
// reported as "fail", server errors as "error".
func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	var errMsg interface{}
	if err != nil {
		errMsg = err.Error()
	} else {
		errMsg = nil
	}
	state := "error"
	if status < fiber.StatusInternalServerError {
		state = "fail"
	}
	return c.Status(status).JSON(fiber.Map{
		"status":  state,
		"message": message,
		"error":   errMsg,
	})
}

func SuccessResponse(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "success",
		"data":   data,
	})
}
