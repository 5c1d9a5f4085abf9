package model

import "time"

type Showtime struct {
	DTO
	StartTime    time.Time  `gorm:"not null;index" json:"start_time"`
	EndTime      time.Time  `json:"end_time"`
	MovieId      uint       `gorm:"not null;index" json:"movieId"`
	CinemaRoomId uint       `gorm:"not null;index" json:"cinemaRoomId"`
	Movie        Movie      `gorm:"foreignKey:MovieId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	CinemaRoom   CinemaRoom `gorm:"foreignKey:CinemaRoomId;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`

	Bookings []TicketBooking `gorm:"foreignKey:ShowtimeId" json:"-"`
}
