package database

import (
	"fmt"
	"time"

	"cinema_statistics/constants"
	"cinema_statistics/model"

	"gorm.io/gorm"
)

type seedBooking struct {
	showtime int
	status   string
	daysAgo  int
	tickets  int
	invoice  string // payment status, "" for none
}

// SeedData inserts a small demo dataset anchored at now. It does nothing when
// showtimes already exist.
func SeedData(db *gorm.DB, now time.Time) error {
	var existing int64
	if err := db.Model(&model.Showtime{}).Count(&existing).Error; err != nil {
		return fmt.Errorf("failed to check seed state: %w", err)
	}
	if existing > 0 {
		return nil
	}

	now = now.UTC()
	return db.Transaction(func(tx *gorm.DB) error {
		movies := []model.Movie{
			{Title: "Mai", Duration: 131, Status: constants.MOVIE_STATUS_ACTIVE},
			{Title: "Lat Mat 7", Duration: 138, Status: constants.MOVIE_STATUS_ACTIVE},
			{Title: "Bo Gia", Duration: 128, Status: constants.MOVIE_STATUS_INACTIVE},
		}
		for i := range movies {
			poster := fmt.Sprintf("https://cdn.example.com/posters/%d.jpg", i+1)
			movies[i].PosterUrl = &poster
		}
		if err := tx.Create(&movies).Error; err != nil {
			return fmt.Errorf("failed to seed movies: %w", err)
		}

		rooms := []model.CinemaRoom{
			{Name: "Room 1", Capacity: 120},
			{Name: "Room 2", Capacity: 80},
		}
		if err := tx.Create(&rooms).Error; err != nil {
			return fmt.Errorf("failed to seed rooms: %w", err)
		}

		showtimes := []model.Showtime{
			{MovieId: movies[0].ID, CinemaRoomId: rooms[0].ID, StartTime: now.Add(2 * time.Hour)},
			{MovieId: movies[0].ID, CinemaRoomId: rooms[0].ID, StartTime: now.AddDate(0, 0, -3)},
			{MovieId: movies[1].ID, CinemaRoomId: rooms[1].ID, StartTime: now.Add(5 * time.Hour)},
			{MovieId: movies[2].ID, CinemaRoomId: rooms[1].ID, StartTime: now.AddDate(0, 0, -20)},
		}
		for i := range showtimes {
			showtimes[i].EndTime = showtimes[i].StartTime.Add(150 * time.Minute)
		}
		if err := tx.Create(&showtimes).Error; err != nil {
			return fmt.Errorf("failed to seed showtimes: %w", err)
		}

		bookings := []seedBooking{
			{0, constants.BOOKING_STATUS_CONFIRMED, 0, 3, constants.PAYMENT_STATUS_PAID},
			{0, constants.BOOKING_STATUS_PENDING, 0, 2, constants.PAYMENT_STATUS_PENDING},
			{1, constants.BOOKING_STATUS_COMPLETED, 4, 4, constants.PAYMENT_STATUS_PAID},
			{2, constants.BOOKING_STATUS_CONFIRMED, 1, 2, constants.PAYMENT_STATUS_PAID},
			{2, constants.BOOKING_STATUS_CANCELLED, 1, 1, constants.PAYMENT_STATUS_REFUNDED},
			{3, constants.BOOKING_STATUS_COMPLETED, 21, 5, constants.PAYMENT_STATUS_PAID},
		}
		for _, sb := range bookings {
			bookedAt := now.AddDate(0, 0, -sb.daysAgo)
			booking := model.TicketBooking{
				BookingDate: bookedAt,
				Status:      sb.status,
				ShowtimeId:  showtimes[sb.showtime].ID,
			}
			if err := tx.Create(&booking).Error; err != nil {
				return fmt.Errorf("failed to seed booking: %w", err)
			}

			const price = 90000
			tickets := make([]model.Ticket, sb.tickets)
			for i := range tickets {
				tickets[i] = model.Ticket{
					SeatLabel:       fmt.Sprintf("B%d", i+1),
					Price:           price,
					TicketBookingId: booking.ID,
				}
			}
			if err := tx.Create(&tickets).Error; err != nil {
				return fmt.Errorf("failed to seed tickets: %w", err)
			}

			if sb.invoice == "" {
				continue
			}
			invoice := model.Invoice{
				Amount:          float64(price * sb.tickets),
				PaymentStatus:   sb.invoice,
				TicketBookingId: booking.ID,
			}
			if sb.invoice == constants.PAYMENT_STATUS_PAID {
				invoice.PaymentDate = &bookedAt
			}
			if err := tx.Create(&invoice).Error; err != nil {
				return fmt.Errorf("failed to seed invoice: %w", err)
			}
		}
		return nil
	})
}
