package statistic

import (
	"fmt"
	"testing"
	"time"

	"cinema_statistics/clock"
	"cinema_statistics/model"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Wednesday, ISO week starts Monday 2026-10-12.
var testNow = time.Date(2026, time.October, 14, 15, 0, 0, 0, time.UTC)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// every pooled connection to :memory: would be a separate database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&model.Movie{},
		&model.CinemaRoom{},
		&model.Showtime{},
		&model.TicketBooking{},
		&model.Ticket{},
		&model.Invoice{},
	))
	return db
}

func newTestService(db *gorm.DB, now time.Time) *Service {
	return NewService(db, WithClock(clock.Fixed(now)))
}

type fixture struct {
	t  *testing.T
	db *gorm.DB
}

func newFixture(t *testing.T, db *gorm.DB) fixture {
	return fixture{t: t, db: db}
}

func (f fixture) create(value any) {
	f.t.Helper()
	require.NoError(f.t, f.db.Create(value).Error)
}

func (f fixture) movie(title, status string) model.Movie {
	poster := "https://cdn.example.com/" + title + ".jpg"
	m := model.Movie{Title: title, PosterUrl: &poster, Duration: 120, Status: status}
	f.create(&m)
	return m
}

func (f fixture) room(capacity int) model.CinemaRoom {
	r := model.CinemaRoom{Name: "Room", Capacity: capacity}
	f.create(&r)
	return r
}

func (f fixture) showtime(movie model.Movie, room model.CinemaRoom, start time.Time) model.Showtime {
	s := model.Showtime{
		StartTime:    start.UTC(),
		EndTime:      start.Add(2 * time.Hour).UTC(),
		MovieId:      movie.ID,
		CinemaRoomId: room.ID,
	}
	f.create(&s)
	return s
}

// booking creates a booking with n tickets.
func (f fixture) booking(showtime model.Showtime, status string, at time.Time, n int) model.TicketBooking {
	b := model.TicketBooking{BookingDate: at.UTC(), Status: status, ShowtimeId: showtime.ID}
	f.create(&b)
	for i := 0; i < n; i++ {
		f.create(&model.Ticket{SeatLabel: fmt.Sprintf("A%d", i+1), Price: 75000, TicketBookingId: b.ID})
	}
	return b
}

func (f fixture) invoice(booking model.TicketBooking, amount float64, status string, paidAt time.Time) model.Invoice {
	paid := paidAt.UTC()
	inv := model.Invoice{Amount: amount, PaymentStatus: status, PaymentDate: &paid, TicketBookingId: booking.ID}
	f.create(&inv)
	return inv
}
