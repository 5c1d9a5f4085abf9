package router

import (
	"cinema_statistics/constants"
	"cinema_statistics/handler"
	"cinema_statistics/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

type Deps struct {
	Statistic *handler.StatisticHandler
	Health    fiber.Handler
	JWTSecret []byte
	// AccessLog toggles the fiber request logger.
	AccessLog bool
}

func SetupRoutes(app *fiber.App, deps Deps) {
	if deps.Health != nil {
		app.Get("/health", deps.Health)
	}

	api := app.Group("/api")
	if deps.AccessLog {
		api.Use(logger.New(logger.Config{
			Format: "${time} ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
		}))
	}
	v1 := api.Group("/v1")

	statistic := v1.Group("/statistics", middleware.Protected(deps.JWTSecret))
	statistic.Get("/dashboard", middleware.RequireRoles(constants.ROLE_ADMIN, constants.ROLE_STAFF), deps.Statistic.GetDashboardStatistics)
	statistic.Get("/revenue/summary", middleware.RequireRoles(constants.ROLE_ADMIN), deps.Statistic.GetRevenueSummary)
	statistic.Get("/revenue/by-movie", middleware.RequireRoles(constants.ROLE_ADMIN), deps.Statistic.GetRevenueByMovie)
	statistic.Get("/tickets/summary", middleware.RequireRoles(constants.ROLE_ADMIN), deps.Statistic.GetTicketsSoldSummary)
	statistic.Get("/occupancy", middleware.RequireRoles(constants.ROLE_ADMIN), deps.Statistic.GetOccupancyRateSummary)
}
