// Package inventory derives live seat availability from the booking ledger.
// It holds no state of its own: every answer is recomputed from the bookings
// passed in, so cancellations free seats without any release step.
package inventory

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"quickshow-booking/internal/data/entity"
)

// Auditorium layout used for seat maps: rows A-J, ten seats each.
const (
	seatRows    = "ABCDEFGHIJ"
	seatsPerRow = 10
)

// BookedSeats returns the set of seat labels held by active bookings on the
// show. A duplicate across bookings would violate the ledger invariant; the
// union silently absorbs it here, the create path is what prevents it.
func BookedSeats(bookings []entity.Booking, showID string) map[string]bool {
	seats := make(map[string]bool)
	for _, b := range bookings {
		if b.ShowID != showID || !b.Active() {
			continue
		}
		for _, seat := range b.SeatNumbers {
			seats[seat] = true
		}
	}
	return seats
}

// BookedSeatList is BookedSeats flattened and sorted for stable output.
func BookedSeatList(bookings []entity.Booking, showID string) []string {
	set := BookedSeats(bookings, showID)
	seats := make([]string, 0, len(set))
	for seat := range set {
		seats = append(seats, seat)
	}
	sort.Strings(seats)
	return seats
}

// AvailableSeats computes totalSeats minus the booked-seat count, clamped at
// zero. A negative raw value means an upstream invariant was violated; it is
// logged, never returned.
func AvailableSeats(show *entity.Show, bookings []entity.Booking, log *zap.Logger) int {
	booked := len(BookedSeats(bookings, show.ID))
	available := show.TotalSeats - booked
	if available < 0 {
		if log != nil {
			log.Warn("booked seats exceed show capacity",
				zap.String("show_id", show.ID),
				zap.Int("total_seats", show.TotalSeats),
				zap.Int("booked_seats", booked),
			)
		}
		return 0
	}
	return available
}

// Seat is one cell of the rendered seat map.
type Seat struct {
	SeatNumber string `json:"seatNumber"`
	Row        string `json:"row"`
	Booked     bool   `json:"booked"`
	Selected   bool   `json:"selected"`
}

// SeatMap renders the deterministic auditorium grid, annotating each seat by
// set-membership against the booked set and the caller's selection.
func SeatMap(booked map[string]bool, selected []string) [][]Seat {
	selectedSet := make(map[string]bool, len(selected))
	for _, seat := range selected {
		selectedSet[seat] = true
	}

	grid := make([][]Seat, 0, len(seatRows))
	for _, row := range seatRows {
		rowSeats := make([]Seat, 0, seatsPerRow)
		for n := 1; n <= seatsPerRow; n++ {
			label := fmt.Sprintf("%c%d", row, n)
			rowSeats = append(rowSeats, Seat{
				SeatNumber: label,
				Row:        string(row),
				Booked:     booked[label],
				Selected:   selectedSet[label],
			})
		}
		grid = append(grid, rowSeats)
	}
	return grid
}
