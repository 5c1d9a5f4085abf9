package model

type Ticket struct {
	DTO
	SeatLabel       string        `gorm:"size:10" json:"seatLabel"`
	Price           float64       `gorm:"type:decimal(12,2)" json:"price"`
	TicketBookingId uint          `gorm:"not null;index" json:"ticketBookingId"`
	TicketBooking   TicketBooking `gorm:"foreignKey:TicketBookingId" json:"-"`
}
