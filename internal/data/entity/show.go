package entity

// Show is one scheduled screening of a movie at a theater. It is immutable
// after scheduling; seat availability is always derived, never stored here.
type Show struct {
	ID           string  `json:"id"`
	MovieID      string  `json:"movieId"`
	TheaterID    string  `json:"theaterId"`
	ShowDate     string  `json:"showDate"` // 2006-01-02
	ShowTime     string  `json:"showTime"` // 15:04
	ScreenNumber string  `json:"screenNumber"`
	ShowType     string  `json:"showType"` // 2D, 3D, IMAX, ...
	TicketPrice  float64 `json:"ticketPrice"`
	TotalSeats   int     `json:"totalSeats"`
}

// DateTime returns the denormalized show timestamp stamped onto bookings.
func (s *Show) DateTime() string {
	return s.ShowDate + "T" + s.ShowTime
}
