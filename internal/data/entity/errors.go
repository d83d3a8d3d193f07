package entity

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMovieNotFound   = errors.New("movie not found")
	ErrShowNotFound    = errors.New("show not found")
	ErrBookingNotFound = errors.New("booking not found")

	// ErrRemoteUnavailable marks a failed remote call. It never reaches a
	// caller of the gateway; the gateway absorbs it and serves the mirror.
	ErrRemoteUnavailable = errors.New("remote authority unavailable")
)

// InvalidSelectionError rejects a seat selection before anything is persisted:
// empty set, more than MaxSeatsPerBooking labels, or a duplicate label.
type InvalidSelectionError struct {
	Reason string
}

func (e *InvalidSelectionError) Error() string {
	return "invalid seat selection: " + e.Reason
}

// SeatConflictError reports which requested seats are already held by an
// active booking on the show. The whole request fails; no partial reservation.
type SeatConflictError struct {
	ShowID string
	Seats  []string
}

func (e *SeatConflictError) Error() string {
	return fmt.Sprintf("seats already booked on show %s: %s", e.ShowID, strings.Join(e.Seats, ", "))
}
