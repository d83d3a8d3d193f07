package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"quickshow-booking/internal/data/entity"
	"quickshow-booking/internal/dto/request"
	"quickshow-booking/internal/dto/response"
	"quickshow-booking/internal/gateway"
)

type BookingService interface {
	CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error)
	CancelBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error)
	ListUserBookings(ctx context.Context, userID string) (*response.Sourced[response.BookingResponse], error)
}

type bookingService struct {
	gw  *gateway.Gateway
	log *zap.Logger
}

func NewBookingService(gw *gateway.Gateway, log *zap.Logger) BookingService {
	return &bookingService{
		gw:  gw,
		log: log.With(zap.String("service", "booking")),
	}
}

// CreateBooking runs the ledger's create operation: validate the selection,
// resolve the show, then append a CONFIRMED booking through the gateway. The
// selection is rejected before anything touches persistence; the seat-overlap
// check happens at commit time inside the gateway's atomic write path.
func (s *bookingService) CreateBooking(ctx context.Context, userID string, req *request.CreateBookingRequest) (*response.BookingResponse, error) {
	if err := validateSelection(req.SeatNumbers); err != nil {
		s.log.Warn("seat selection rejected",
			zap.String("show_id", req.ShowID),
			zap.Error(err),
		)
		return nil, err
	}

	show, _, err := s.gw.Show(ctx, req.ShowID)
	if err != nil {
		return nil, fmt.Errorf("resolve show: %w", err)
	}

	booking := &entity.Booking{
		ID:            uuid.NewString(),
		UserID:        userID,
		ShowID:        show.ID,
		SeatNumbers:   append([]string(nil), req.SeatNumbers...),
		TotalAmount:   req.TotalAmount,
		BookingStatus: entity.BookingStatusConfirmed,
		BookingDate:   time.Now().UTC(),
		ShowDateTime:  show.DateTime(),
	}

	created, source, err := s.gw.CreateBooking(ctx, show, booking)
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.log.Info("booking created",
		zap.String("booking_id", created.ID),
		zap.String("show_id", created.ShowID),
		zap.String("user_id", created.UserID),
		zap.Int("seat_count", len(created.SeatNumbers)),
		zap.Float64("total_amount", created.TotalAmount),
		zap.String("source", string(source)),
	)

	return response.BookingToResponse(created, string(source)), nil
}

// CancelBooking flips the booking to CANCELLED. Cancelling twice is a no-op
// that returns the already-cancelled state; CANCELLED is terminal and the
// record is kept for history. Seats free up through derivation alone.
func (s *bookingService) CancelBooking(ctx context.Context, bookingID string) (*response.BookingResponse, error) {
	cancelled, source, err := s.gw.CancelBooking(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}

	s.log.Info("booking cancelled",
		zap.String("booking_id", bookingID),
		zap.String("source", string(source)),
	)

	return response.BookingToResponse(cancelled, string(source)), nil
}

func (s *bookingService) ListUserBookings(ctx context.Context, userID string) (*response.Sourced[response.BookingResponse], error) {
	bookings, source, err := s.gw.BookingsByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list user bookings: %w", err)
	}

	items := make([]response.BookingResponse, 0, len(bookings))
	for i := range bookings {
		items = append(items, *response.BookingToResponse(&bookings[i], ""))
	}

	return response.NewSourced(string(source), items), nil
}

// validateSelection enforces the selection rules: non-empty, at most
// MaxSeatsPerBooking labels, no blanks, no duplicates.
func validateSelection(seats []string) error {
	if len(seats) == 0 {
		return &entity.InvalidSelectionError{Reason: "no seats selected"}
	}
	if len(seats) > entity.MaxSeatsPerBooking {
		return &entity.InvalidSelectionError{
			Reason: fmt.Sprintf("%d seats selected, maximum is %d", len(seats), entity.MaxSeatsPerBooking),
		}
	}

	seen := make(map[string]bool, len(seats))
	for _, seat := range seats {
		if strings.TrimSpace(seat) == "" {
			return &entity.InvalidSelectionError{Reason: "blank seat label"}
		}
		if seen[seat] {
			return &entity.InvalidSelectionError{Reason: "duplicate seat label " + seat}
		}
		seen[seat] = true
	}
	return nil
}
