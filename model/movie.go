package model

type Movie struct {
	DTO
	Title     string  `gorm:"not null;index" json:"title"`
	PosterUrl *string `gorm:"column:poster_url;type:varchar(255)" json:"poster_url"`
	Duration  int     `json:"duration"`
	Status    string  `gorm:"not null;index;default:'active'" json:"status"` // active, inactive

	Showtimes []Showtime `gorm:"foreignKey:MovieId" json:"-"`
}
