package handler

import (
	"context"

	"cinema_statistics/constants"
	"cinema_statistics/model"
	"cinema_statistics/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type StatisticService interface {
	GetDashboardStatistics(ctx context.Context) (model.DashboardStatistics, error)
	GetRevenueSummary(ctx context.Context) (model.RevenueSummary, error)
	GetRevenueByMovie(ctx context.Context, period utils.Period) ([]model.MovieRevenue, error)
	GetTicketsSoldSummary(ctx context.Context) (model.TicketsSoldSummary, error)
	GetOccupancyRateSummary(ctx context.Context, period utils.Period) (model.OccupancyRateSummary, error)
}

type StatisticHandler struct {
	svc StatisticService
	log *zap.Logger
}

func NewStatisticHandler(svc StatisticService, log *zap.Logger) *StatisticHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &StatisticHandler{svc: svc, log: log}
}

// GET /statistics/dashboard
func (h *StatisticHandler) GetDashboardStatistics(c *fiber.Ctx) error {
	stats, err := h.svc.GetDashboardStatistics(c.UserContext())
	if err != nil {
		return h.fail(c, "dashboard", "", constants.ERROR_GET_DASHBOARD_STATISTICS, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, stats)
}

// GET /statistics/revenue/summary
func (h *StatisticHandler) GetRevenueSummary(c *fiber.Ctx) error {
	summary, err := h.svc.GetRevenueSummary(c.UserContext())
	if err != nil {
		return h.fail(c, "revenue_summary", "", constants.ERROR_GET_REVENUE_SUMMARY, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, summary)
}

// GET /statistics/revenue/by-movie?period=today|week|month|all
func (h *StatisticHandler) GetRevenueByMovie(c *fiber.Ctx) error {
	period := utils.ParsePeriod(c.Query("period"))
	rows, err := h.svc.GetRevenueByMovie(c.UserContext(), period)
	if err != nil {
		return h.fail(c, "revenue_by_movie", period, constants.ERROR_GET_REVENUE_BY_MOVIE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, rows)
}

// GET /statistics/tickets/summary
func (h *StatisticHandler) GetTicketsSoldSummary(c *fiber.Ctx) error {
	summary, err := h.svc.GetTicketsSoldSummary(c.UserContext())
	if err != nil {
		return h.fail(c, "tickets_summary", "", constants.ERROR_GET_TICKETS_SUMMARY, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, summary)
}

// GET /statistics/occupancy?period=today|week|month|all
func (h *StatisticHandler) GetOccupancyRateSummary(c *fiber.Ctx) error {
	period := utils.ParsePeriod(c.Query("period"))
	summary, err := h.svc.GetOccupancyRateSummary(c.UserContext(), period)
	if err != nil {
		return h.fail(c, "occupancy_rate", period, constants.ERROR_GET_OCCUPANCY_RATE, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, summary)
}

func (h *StatisticHandler) fail(c *fiber.Ctx, op string, period utils.Period, message string, err error) error {
	h.log.Error("statistic request failed",
		zap.String("request_id", c.GetRespHeader(fiber.HeaderXRequestID)),
		zap.String("operation", op),
		zap.String("period", string(period)),
		zap.Error(err),
	)
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, message, err)
}
