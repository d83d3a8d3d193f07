package entity

import (
	"time"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// MaxSeatsPerBooking bounds a single seat selection.
const MaxSeatsPerBooking = 6

// Booking is one entry in the ledger. Bookings are never deleted; the only
// transition is CONFIRMED -> CANCELLED and CANCELLED is terminal.
type Booking struct {
	ID            string        `json:"id"`
	UserID        string        `json:"userId"`
	ShowID        string        `json:"showId"`
	SeatNumbers   []string      `json:"seatNumbers"`
	TotalAmount   float64       `json:"totalAmount"`
	BookingStatus BookingStatus `json:"bookingStatus"`
	BookingDate   time.Time     `json:"bookingDate"`
	ShowDateTime  string        `json:"showDateTime"`
	CancelledAt   *time.Time    `json:"cancelledAt,omitempty"`
}

// Active reports whether the booking counts against seat inventory.
func (b *Booking) Active() bool {
	return b.BookingStatus == BookingStatusConfirmed
}

// Clone returns a copy sharing no mutable state with the receiver.
func (b *Booking) Clone() *Booking {
	c := *b
	c.SeatNumbers = append([]string(nil), b.SeatNumbers...)
	if b.CancelledAt != nil {
		t := *b.CancelledAt
		c.CancelledAt = &t
	}
	return &c
}
