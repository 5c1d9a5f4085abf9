package handler

import (
	"context"
	"time"

	"cinema_statistics/constants"
	"cinema_statistics/utils"

	"github.com/gofiber/fiber/v2"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

// Health reports ok when the database answers a ping within two seconds.
func Health(db Pinger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			return utils.ErrorResponse(c, fiber.StatusServiceUnavailable, constants.ERROR_DATABASE_DOWN, err)
		}
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"database": "ok"})
	}
}
