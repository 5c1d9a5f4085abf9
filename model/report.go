package model

type DashboardStatistics struct {
	TicketsSoldToday int64   `json:"ticketsSoldToday"`
	RevenueToday     float64 `json:"revenueToday"`
	BookingsToday    int64   `json:"bookingsToday"`
}

type RevenueSummary struct {
	RevenueToday     float64 `json:"revenueToday"`
	RevenueThisWeek  float64 `json:"revenueThisWeek"`
	RevenueThisMonth float64 `json:"revenueThisMonth"`
}

type MovieRevenue struct {
	MovieId      uint    `json:"movieId"`
	Title        string  `json:"title"`
	PosterUrl    *string `json:"poster_url"`
	TotalRevenue float64 `json:"totalRevenue"`
}

type TicketsSoldSummary struct {
	TicketsToday     int64 `json:"ticketsToday"`
	TicketsThisWeek  int64 `json:"ticketsThisWeek"`
	TicketsThisMonth int64 `json:"ticketsThisMonth"`
}

type OccupancyRateSummary struct {
	TotalTicketsSold int64  `json:"totalTicketsSold"`
	TotalCapacity    int64  `json:"totalCapacity"`
	OccupancyRate    string `json:"occupancyRate"` // percent, 2 decimals
}
