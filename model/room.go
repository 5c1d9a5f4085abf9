package model

type CinemaRoom struct {
	DTO
	Name     string `gorm:"not null" json:"name"`
	Capacity int    `gorm:"not null;default:0" json:"capacity"`

	Showtimes []Showtime `gorm:"foreignKey:CinemaRoomId" json:"-"`
}
