package database

import (
	"context"
	"testing"
	"time"

	"cinema_statistics/clock"
	"cinema_statistics/model"
	"cinema_statistics/statistic"
	"cinema_statistics/utils"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, Migrate(db))
	return db
}

func TestSeedDataIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	now := time.Date(2026, time.October, 14, 15, 0, 0, 0, time.UTC)

	require.NoError(t, SeedData(db, now))
	require.NoError(t, SeedData(db, now))

	var showtimes, tickets int64
	require.NoError(t, db.Model(&model.Showtime{}).Count(&showtimes).Error)
	require.NoError(t, db.Model(&model.Ticket{}).Count(&tickets).Error)
	assert.Equal(t, int64(4), showtimes)
	assert.Equal(t, int64(17), tickets)
}

func TestSeededStatistics(t *testing.T) {
	db := openTestDB(t)
	now := time.Date(2026, time.October, 14, 15, 0, 0, 0, time.UTC)
	require.NoError(t, SeedData(db, now))

	svc := statistic.NewService(db, statistic.WithClock(clock.Fixed(now)))
	ctx := context.Background()

	dashboard, err := svc.GetDashboardStatistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.DashboardStatistics{TicketsSoldToday: 3, RevenueToday: 270000, BookingsToday: 2}, dashboard)

	movies, err := svc.GetRevenueByMovie(ctx, utils.PeriodAll)
	require.NoError(t, err)
	require.Len(t, movies, 2)
	assert.Equal(t, "Mai", movies[0].Title)
	assert.Equal(t, 630000.0, movies[0].TotalRevenue)
	assert.Equal(t, "Lat Mat 7", movies[1].Title)
	assert.Equal(t, 180000.0, movies[1].TotalRevenue)

	occupancy, err := svc.GetOccupancyRateSummary(ctx, utils.PeriodAll)
	require.NoError(t, err)
	assert.Equal(t, model.OccupancyRateSummary{TotalTicketsSold: 14, TotalCapacity: 400, OccupancyRate: "3.50"}, occupancy)
}
