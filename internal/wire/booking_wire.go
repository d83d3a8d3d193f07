package wire

import (
	"github.com/go-chi/chi/v5"

	"quickshow-booking/internal/adaptor"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	// Identity comes from the global middleware (X-User-ID header or the
	// configured default user); there is no session auth in this service.

	// POST /api/bookings - reserve seats, booking is created CONFIRMED
	r.Post("/api/bookings", bookingHandler.CreateBooking)

	// GET /api/bookings - caller's booking history, both statuses
	r.Get("/api/bookings", bookingHandler.GetUserBookings)

	// PUT /api/bookings/{id}/cancel - idempotent cancellation
	r.Put("/api/bookings/{id}/cancel", bookingHandler.CancelBooking)
}
