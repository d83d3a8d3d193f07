package response

import (
	"time"

	"quickshow-booking/internal/data/entity"
)

type BookingResponse struct {
	ID            string               `json:"id"`
	UserID        string               `json:"userId"`
	ShowID        string               `json:"showId"`
	SeatNumbers   []string             `json:"seatNumbers"`
	TotalAmount   float64              `json:"totalAmount"`
	BookingStatus entity.BookingStatus `json:"bookingStatus"`
	BookingDate   time.Time            `json:"bookingDate"`
	ShowDateTime  string               `json:"showDateTime"`
	CancelledAt   *time.Time           `json:"cancelledAt,omitempty"`
	Source        string               `json:"source,omitempty"`
}

func BookingToResponse(b *entity.Booking, source string) *BookingResponse {
	return &BookingResponse{
		ID:            b.ID,
		UserID:        b.UserID,
		ShowID:        b.ShowID,
		SeatNumbers:   append([]string(nil), b.SeatNumbers...),
		TotalAmount:   b.TotalAmount,
		BookingStatus: b.BookingStatus,
		BookingDate:   b.BookingDate,
		ShowDateTime:  b.ShowDateTime,
		CancelledAt:   b.CancelledAt,
		Source:        source,
	}
}
