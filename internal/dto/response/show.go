package response

import (
	"quickshow-booking/internal/data/entity"
	"quickshow-booking/internal/inventory"
)

// ShowResponse is a show enriched with live availability. Availability is
// never stored on the show record; it is derived on every read.
type ShowResponse struct {
	entity.Show
	AvailableSeats int `json:"availableSeats"`
}

type SeatMapResponse struct {
	ShowID         string             `json:"showId"`
	AvailableSeats int                `json:"availableSeats"`
	BookedSeats    []string           `json:"bookedSeats"`
	Rows           [][]inventory.Seat `json:"rows"`
}
