package model

import "time"

type Invoice struct {
	DTO
	Amount          float64       `gorm:"type:decimal(12,2);not null" json:"amount"`
	PaymentStatus   string        `gorm:"not null;index;default:'pending'" json:"payment_status"` // pending, paid, refunded
	PaymentDate     *time.Time    `gorm:"index" json:"payment_date"`
	TicketBookingId uint          `gorm:"not null;index" json:"ticketBookingId"`
	TicketBooking   TicketBooking `gorm:"foreignKey:TicketBookingId" json:"-"`
}
