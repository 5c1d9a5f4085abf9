package statistic

import (
	"context"
	"fmt"

	"cinema_statistics/constants"
	"cinema_statistics/model"
	"cinema_statistics/utils"

	"gorm.io/gorm"
)

// applyWindow restricts column to w. Bounds are bound in UTC.
func applyWindow(q *gorm.DB, column string, w utils.Window) *gorm.DB {
	if !w.Bounded {
		return q
	}
	return q.Where(fmt.Sprintf("%s >= ? AND %s < ?", column, column), w.Start.UTC(), w.End.UTC())
}

func soldTicketsQuery(db *gorm.DB) *gorm.DB {
	return db.Table("tickets").
		Joins("JOIN ticket_bookings ON ticket_bookings.id = tickets.ticket_booking_id").
		Where("ticket_bookings.status IN ?", constants.SOLD_BOOKING_STATUSES)
}

// countSoldTickets counts tickets of confirmed/completed bookings made within w.
func countSoldTickets(ctx context.Context, db *gorm.DB, w utils.Window) (int64, error) {
	var count int64
	q := applyWindow(soldTicketsQuery(db.WithContext(ctx)), "ticket_bookings.booking_date", w)
	if err := q.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count sold tickets: %w", err)
	}
	return count, nil
}

// countSoldTicketsByShowtime counts sold tickets whose showtime starts within w.
func countSoldTicketsByShowtime(ctx context.Context, db *gorm.DB, w utils.Window) (int64, error) {
	var count int64
	q := soldTicketsQuery(db.WithContext(ctx)).
		Joins("JOIN showtimes ON showtimes.id = ticket_bookings.showtime_id")
	if err := applyWindow(q, "showtimes.start_time", w).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count sold tickets by showtime: %w", err)
	}
	return count, nil
}

func sumPaidRevenue(ctx context.Context, db *gorm.DB, w utils.Window) (float64, error) {
	var total float64
	q := db.WithContext(ctx).Table("invoices").
		Where("invoices.payment_status = ?", constants.PAYMENT_STATUS_PAID)
	err := applyWindow(q, "invoices.payment_date", w).
		Select("COALESCE(SUM(invoices.amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("sum paid revenue: %w", err)
	}
	return total, nil
}

func countBookings(ctx context.Context, db *gorm.DB, w utils.Window) (int64, error) {
	var count int64
	q := applyWindow(db.WithContext(ctx).Table("ticket_bookings"), "ticket_bookings.booking_date", w)
	if err := q.Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return count, nil
}

// sumShowtimeCapacity adds up room capacity once per showtime starting within w.
func sumShowtimeCapacity(ctx context.Context, db *gorm.DB, w utils.Window) (int64, error) {
	var total int64
	q := db.WithContext(ctx).Table("showtimes").
		Joins("JOIN cinema_rooms ON cinema_rooms.id = showtimes.cinema_room_id")
	err := applyWindow(q, "showtimes.start_time", w).
		Select("COALESCE(SUM(cinema_rooms.capacity), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, fmt.Errorf("sum showtime capacity: %w", err)
	}
	return total, nil
}

// revenueByMovie groups paid invoices of active movies by movie id.
// Tickets are not joined so an invoice is counted exactly once.
func revenueByMovie(ctx context.Context, db *gorm.DB, w utils.Window) ([]model.MovieRevenue, error) {
	q := db.WithContext(ctx).Table("movies").
		Select("movies.id AS movie_id, movies.title, movies.poster_url, SUM(invoices.amount) AS total_revenue").
		Joins("JOIN showtimes ON showtimes.movie_id = movies.id").
		Joins("JOIN ticket_bookings ON ticket_bookings.showtime_id = showtimes.id").
		Joins("JOIN invoices ON invoices.ticket_booking_id = ticket_bookings.id").
		Where("invoices.payment_status = ?", constants.PAYMENT_STATUS_PAID).
		Where("movies.status = ?", constants.MOVIE_STATUS_ACTIVE)

	rows := make([]model.MovieRevenue, 0)
	err := applyWindow(q, "invoices.payment_date", w).
		Group("movies.id, movies.title, movies.poster_url").
		Having("SUM(invoices.amount) > 0").
		Order("total_revenue DESC").
		Order("movies.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("revenue by movie: %w", err)
	}
	return rows, nil
}
