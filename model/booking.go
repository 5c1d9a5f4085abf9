package model

import "time"

type TicketBooking struct {
	DTO
	BookingDate time.Time `gorm:"not null;index" json:"booking_date"`
	Status      string    `gorm:"not null;index;default:'pending'" json:"status"` // pending, confirmed, completed, cancelled
	ShowtimeId  uint      `gorm:"not null;index" json:"showtimeId"`
	Showtime    Showtime  `gorm:"foreignKey:ShowtimeId" json:"-"`

	Tickets  []Ticket  `gorm:"foreignKey:TicketBookingId" json:"-"`
	Invoices []Invoice `gorm:"foreignKey:TicketBookingId" json:"-"`
}
