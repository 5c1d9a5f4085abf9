// Package statistic computes read-only business metrics (tickets sold,
// revenue, bookings, occupancy) over the booking tables.
//
// Every call resolves its time windows from the injected clock, runs its
// queries concurrently, and returns either a complete result or an error.
package statistic

import (
	"context"
	"strconv"
	"time"

	"cinema_statistics/clock"
	"cinema_statistics/model"
	"cinema_statistics/utils"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

type Service struct {
	db      *gorm.DB
	clock   clock.Clock
	timeout time.Duration
	log     *zap.Logger
}

type Option func(*Service)

func WithClock(c clock.Clock) Option {
	return func(s *Service) { s.clock = c }
}

// WithTimeout bounds every aggregator call. Zero means no bound.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) { s.timeout = d }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.log = l }
}

func NewService(db *gorm.DB, opts ...Option) *Service {
	s := &Service{
		db:    db,
		clock: clock.SystemClock{Location: time.Local},
		log:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) begin(ctx context.Context, op string) (context.Context, context.CancelFunc, time.Time) {
	now := s.clock.Now(ctx)
	s.log.Debug("statistic query", zap.String("operation", op), zap.Time("now", now))
	if s.timeout > 0 {
		ctx, cancel := context.WithTimeout(ctx, s.timeout)
		return ctx, cancel, now
	}
	ctx, cancel := context.WithCancel(ctx)
	return ctx, cancel, now
}

// GetDashboardStatistics returns today's tickets sold, paid revenue and bookings.
// The three figures use their own tables and date columns and need not reconcile.
func (s *Service) GetDashboardStatistics(ctx context.Context) (model.DashboardStatistics, error) {
	ctx, cancel, now := s.begin(ctx, "dashboard")
	defer cancel()

	today := utils.ResolvePeriod(utils.PeriodToday, now)

	var stats model.DashboardStatistics
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		stats.TicketsSoldToday, err = countSoldTickets(gctx, s.db, today)
		return err
	})
	g.Go(func() (err error) {
		stats.RevenueToday, err = sumPaidRevenue(gctx, s.db, today)
		return err
	})
	g.Go(func() (err error) {
		stats.BookingsToday, err = countBookings(gctx, s.db, today)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.DashboardStatistics{}, err
	}
	return stats, nil
}

// GetRevenueSummary returns paid revenue for today, this ISO week and this month.
// Each window is summed independently.
func (s *Service) GetRevenueSummary(ctx context.Context) (model.RevenueSummary, error) {
	ctx, cancel, now := s.begin(ctx, "revenue_summary")
	defer cancel()

	var summary model.RevenueSummary
	targets := map[utils.Period]*float64{
		utils.PeriodToday: &summary.RevenueToday,
		utils.PeriodWeek:  &summary.RevenueThisWeek,
		utils.PeriodMonth: &summary.RevenueThisMonth,
	}

	g, gctx := errgroup.WithContext(ctx)
	for period, dst := range targets {
		w := utils.ResolvePeriod(period, now)
		g.Go(func() (err error) {
			*dst, err = sumPaidRevenue(gctx, s.db, w)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return model.RevenueSummary{}, err
	}
	return summary, nil
}

// GetRevenueByMovie ranks active movies by paid revenue, highest first.
// The period filters on the invoice payment date.
func (s *Service) GetRevenueByMovie(ctx context.Context, period utils.Period) ([]model.MovieRevenue, error) {
	ctx, cancel, now := s.begin(ctx, "revenue_by_movie")
	defer cancel()

	return revenueByMovie(ctx, s.db, utils.ResolvePeriod(period, now))
}

// GetTicketsSoldSummary counts sold tickets for today, this ISO week and this month.
func (s *Service) GetTicketsSoldSummary(ctx context.Context) (model.TicketsSoldSummary, error) {
	ctx, cancel, now := s.begin(ctx, "tickets_summary")
	defer cancel()

	var summary model.TicketsSoldSummary
	targets := map[utils.Period]*int64{
		utils.PeriodToday: &summary.TicketsToday,
		utils.PeriodWeek:  &summary.TicketsThisWeek,
		utils.PeriodMonth: &summary.TicketsThisMonth,
	}

	g, gctx := errgroup.WithContext(ctx)
	for period, dst := range targets {
		w := utils.ResolvePeriod(period, now)
		g.Go(func() (err error) {
			*dst, err = countSoldTickets(gctx, s.db, w)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return model.TicketsSoldSummary{}, err
	}
	return summary, nil
}

// GetOccupancyRateSummary divides sold tickets by offered seats. Both sides
// filter showtimes.start_time by the same window; capacity is counted once
// per showtime, so a room screening three times contributes three times.
func (s *Service) GetOccupancyRateSummary(ctx context.Context, period utils.Period) (model.OccupancyRateSummary, error) {
	ctx, cancel, now := s.begin(ctx, "occupancy_rate")
	defer cancel()

	w := utils.ResolvePeriod(period, now)

	var sold, capacity int64
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		sold, err = countSoldTicketsByShowtime(gctx, s.db, w)
		return err
	})
	g.Go(func() (err error) {
		capacity, err = sumShowtimeCapacity(gctx, s.db, w)
		return err
	})
	if err := g.Wait(); err != nil {
		return model.OccupancyRateSummary{}, err
	}

	return model.OccupancyRateSummary{
		TotalTicketsSold: sold,
		TotalCapacity:    capacity,
		OccupancyRate:    FormatRate(OccupancyRate(sold, capacity)),
	}, nil
}

// OccupancyRate is sold/capacity as a percentage, 0 when capacity is 0.
func OccupancyRate(sold, capacity int64) float64 {
	if capacity <= 0 {
		return 0
	}
	return float64(sold) / float64(capacity) * 100
}

// FormatRate renders a percentage with exactly two decimals.
func FormatRate(rate float64) string {
	return strconv.FormatFloat(rate, 'f', 2, 64)
}
