package gateway

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"quickshow-booking/internal/data/entity"
	"quickshow-booking/internal/data/remote"
	"quickshow-booking/internal/data/store"
)

func (g *Gateway) BookingsByUser(ctx context.Context, userID string) ([]entity.Booking, Source, error) {
	return route(ctx, g, "bookings by user",
		func(ctx context.Context) ([]entity.Booking, error) {
			return g.remote.TicketsByUser(ctx, userID)
		},
		func(ctx context.Context) ([]entity.Booking, error) {
			bookings, err := store.Load[entity.Booking](ctx, g.store, store.CollectionBookings)
			if err != nil {
				return nil, err
			}
			matches := []entity.Booking{}
			for _, b := range bookings {
				if b.UserID == userID {
					matches = append(matches, b)
				}
			}
			return matches, nil
		},
	)
}

// BookingsByShow reads the mirror directly: seat inventory is derived from
// the local ledger and the remote authority exposes no per-show ticket list.
func (g *Gateway) BookingsByShow(ctx context.Context, showID string) ([]entity.Booking, error) {
	bookings, err := store.Load[entity.Booking](ctx, g.store, store.CollectionBookings)
	if err != nil {
		return nil, err
	}
	matches := []entity.Booking{}
	for _, b := range bookings {
		if b.ShowID == showID {
			matches = append(matches, b)
		}
	}
	return matches, nil
}

func (g *Gateway) BookingByID(ctx context.Context, id string) (*entity.Booking, error) {
	bookings, err := store.Load[entity.Booking](ctx, g.store, store.CollectionBookings)
	if err != nil {
		return nil, err
	}
	for i := range bookings {
		if bookings[i].ID == id {
			return bookings[i].Clone(), nil
		}
	}
	return nil, fmt.Errorf("booking %s: %w", id, entity.ErrBookingNotFound)
}

// CreateBooking appends a CONFIRMED booking. On the local path the
// seat-overlap check runs inside the store's atomic write path, so two
// concurrent creates with overlapping seats on the same show can never both
// commit; either the whole seat set is reserved or nothing is.
func (g *Gateway) CreateBooking(ctx context.Context, show *entity.Show, booking *entity.Booking) (*entity.Booking, Source, error) {
	return route(ctx, g, "create booking",
		func(ctx context.Context) (*entity.Booking, error) {
			return g.remote.CreateTicket(ctx, &remote.CreateTicketRequest{
				ShowID:      booking.ShowID,
				UserID:      booking.UserID,
				SeatNumbers: booking.SeatNumbers,
				TotalAmount: booking.TotalAmount,
			})
		},
		func(ctx context.Context) (*entity.Booking, error) {
			return g.createLocal(ctx, show, booking)
		},
	)
}

func (g *Gateway) createLocal(ctx context.Context, show *entity.Show, booking *entity.Booking) (*entity.Booking, error) {
	err := store.Mutate(ctx, g.store, store.CollectionBookings, func(bookings []entity.Booking) ([]entity.Booking, error) {
		taken := make(map[string]bool)
		seatCount := 0
		for _, b := range bookings {
			if b.ShowID != booking.ShowID || !b.Active() {
				continue
			}
			seatCount += len(b.SeatNumbers)
			for _, seat := range b.SeatNumbers {
				taken[seat] = true
			}
		}

		var conflicts []string
		for _, seat := range booking.SeatNumbers {
			if taken[seat] {
				conflicts = append(conflicts, seat)
			}
		}
		if len(conflicts) > 0 {
			return nil, &entity.SeatConflictError{ShowID: booking.ShowID, Seats: conflicts}
		}

		if seatCount+len(booking.SeatNumbers) > show.TotalSeats {
			return nil, &entity.SeatConflictError{ShowID: booking.ShowID, Seats: booking.SeatNumbers}
		}

		return append(bookings, *booking.Clone()), nil
	})
	if err != nil {
		return nil, err
	}

	g.log.Info("booking appended to local ledger",
		zap.String("booking_id", booking.ID),
		zap.String("show_id", booking.ShowID),
		zap.Int("seats", len(booking.SeatNumbers)),
	)

	return booking.Clone(), nil
}

// CancelBooking flips a booking to CANCELLED. Cancelling an already
// cancelled booking is a no-op returning the stored state.
func (g *Gateway) CancelBooking(ctx context.Context, id string) (*entity.Booking, Source, error) {
	return route(ctx, g, "cancel booking",
		func(ctx context.Context) (*entity.Booking, error) {
			return g.remote.CancelTicket(ctx, id)
		},
		func(ctx context.Context) (*entity.Booking, error) {
			return g.cancelLocal(ctx, id)
		},
	)
}

func (g *Gateway) cancelLocal(ctx context.Context, id string) (*entity.Booking, error) {
	var cancelled *entity.Booking

	err := store.Mutate(ctx, g.store, store.CollectionBookings, func(bookings []entity.Booking) ([]entity.Booking, error) {
		for i := range bookings {
			if bookings[i].ID != id {
				continue
			}
			if bookings[i].BookingStatus != entity.BookingStatusCancelled {
				now := time.Now().UTC()
				bookings[i].BookingStatus = entity.BookingStatusCancelled
				bookings[i].CancelledAt = &now
			}
			cancelled = bookings[i].Clone()
			return bookings, nil
		}
		return nil, fmt.Errorf("booking %s: %w", id, entity.ErrBookingNotFound)
	})
	if err != nil {
		return nil, err
	}

	g.log.Info("booking cancelled in local ledger", zap.String("booking_id", id))
	return cancelled, nil
}
