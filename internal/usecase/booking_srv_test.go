package usecase

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"quickshow-booking/internal/data/entity"
	"quickshow-booking/internal/data/store"
	"quickshow-booking/internal/dto/request"
	"quickshow-booking/internal/gateway"
)

// newLocalServices wires the service layer against an in-memory mirror with
// the remote disabled, optionally replacing the seeded shows and bookings.
func newLocalServices(t *testing.T, shows []entity.Show, bookings []entity.Booking) (BookingService, CatalogueService, *gateway.Gateway) {
	t.Helper()
	ctx := context.Background()

	mem := store.NewMemory()
	if shows != nil {
		require.NoError(t, store.Save(ctx, mem, store.CollectionShows, shows))
	}
	if bookings != nil {
		require.NoError(t, store.Save(ctx, mem, store.CollectionBookings, bookings))
	}

	gw := gateway.New(nil, mem, true, zap.NewNop())
	return NewBookingService(gw, zap.NewNop()), NewCatalogueService(gw, zap.NewNop()), gw
}

func TestCreateBooking_Confirmed(t *testing.T) {
	booking, catalogue, _ := newLocalServices(t, nil, nil)
	ctx := context.Background()

	created, err := booking.CreateBooking(ctx, "alice", &request.CreateBookingRequest{
		ShowID:      "sh-1",
		SeatNumbers: []string{"A1", "A2"},
		TotalAmount: 37.00,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "alice", created.UserID)
	assert.Equal(t, entity.BookingStatusConfirmed, created.BookingStatus)
	assert.Equal(t, []string{"A1", "A2"}, created.SeatNumbers)
	assert.Equal(t, "2026-09-05T18:30", created.ShowDateTime)
	assert.Equal(t, "fallback", created.Source)

	// Availability drops by exactly the seats taken: 100 total, seed holds
	// E5/E6, this booking holds A1/A2.
	show, err := catalogue.GetShow(ctx, "sh-1")
	require.NoError(t, err)
	assert.Equal(t, 96, show.AvailableSeats)
}

func TestCreateBooking_RejectsOversizedSelection(t *testing.T) {
	booking, _, gw := newLocalServices(t, nil, nil)
	ctx := context.Background()

	_, err := booking.CreateBooking(ctx, "alice", &request.CreateBookingRequest{
		ShowID:      "sh-1",
		SeatNumbers: []string{"A1", "A2", "A3", "A4", "A5", "A6", "A7"},
	})

	var invalid *entity.InvalidSelectionError
	require.ErrorAs(t, err, &invalid)

	ledger, err := gw.BookingsByShow(ctx, "sh-1")
	require.NoError(t, err)
	assert.Len(t, ledger, 1, "rejected selection must not reach the ledger")
}

func TestCreateBooking_RejectsDuplicateSeat(t *testing.T) {
	booking, _, _ := newLocalServices(t, nil, nil)

	_, err := booking.CreateBooking(context.Background(), "alice", &request.CreateBookingRequest{
		ShowID:      "sh-1",
		SeatNumbers: []string{"A1", "A1"},
	})

	var invalid *entity.InvalidSelectionError
	assert.ErrorAs(t, err, &invalid)
}

func TestCreateBooking_RejectsBlankSeat(t *testing.T) {
	booking, _, _ := newLocalServices(t, nil, nil)

	_, err := booking.CreateBooking(context.Background(), "alice", &request.CreateBookingRequest{
		ShowID:      "sh-1",
		SeatNumbers: []string{"A1", "  "},
	})

	var invalid *entity.InvalidSelectionError
	assert.ErrorAs(t, err, &invalid)
}

func TestCreateBooking_UnknownShow(t *testing.T) {
	booking, _, _ := newLocalServices(t, nil, nil)

	_, err := booking.CreateBooking(context.Background(), "alice", &request.CreateBookingRequest{
		ShowID:      "sh-missing",
		SeatNumbers: []string{"A1"},
	})

	assert.ErrorIs(t, err, entity.ErrShowNotFound)
}

func TestCreateBooking_SeatConflict(t *testing.T) {
	shows := []entity.Show{{
		ID: "sh-tiny", MovieID: "mv-1", TheaterID: "th-1",
		ShowDate: "2026-09-10", ShowTime: "20:00", TicketPrice: 10, TotalSeats: 10,
	}}
	existing := []entity.Booking{{
		ID: "bk-held", UserID: "bob", ShowID: "sh-tiny",
		SeatNumbers: []string{"A1"}, BookingStatus: entity.BookingStatusConfirmed,
	}}
	booking, _, gw := newLocalServices(t, shows, existing)
	ctx := context.Background()

	_, err := booking.CreateBooking(ctx, "alice", &request.CreateBookingRequest{
		ShowID:      "sh-tiny",
		SeatNumbers: []string{"A1", "A2"},
	})

	var conflict *entity.SeatConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "sh-tiny", conflict.ShowID)
	assert.Equal(t, []string{"A1"}, conflict.Seats)

	// All-or-nothing: the free seat A2 must not be held either.
	ledger, err := gw.BookingsByShow(ctx, "sh-tiny")
	require.NoError(t, err)
	require.Len(t, ledger, 1)
	assert.Equal(t, "bk-held", ledger[0].ID)
}

func TestCreateBooking_CapacityExceeded(t *testing.T) {
	shows := []entity.Show{{
		ID: "sh-two", MovieID: "mv-1", TheaterID: "th-1",
		ShowDate: "2026-09-10", ShowTime: "20:00", TicketPrice: 10, TotalSeats: 2,
	}}
	existing := []entity.Booking{{
		ID: "bk-held", UserID: "bob", ShowID: "sh-two",
		SeatNumbers: []string{"A1"}, BookingStatus: entity.BookingStatusConfirmed,
	}}
	booking, _, _ := newLocalServices(t, shows, existing)

	_, err := booking.CreateBooking(context.Background(), "alice", &request.CreateBookingRequest{
		ShowID:      "sh-two",
		SeatNumbers: []string{"B1", "B2"},
	})

	var conflict *entity.SeatConflictError
	assert.ErrorAs(t, err, &conflict, "two seats cannot fit in the one remaining")
}

func TestCancelBooking_FreesSeatsThroughDerivation(t *testing.T) {
	booking, catalogue, _ := newLocalServices(t, nil, nil)
	ctx := context.Background()

	created, err := booking.CreateBooking(ctx, "alice", &request.CreateBookingRequest{
		ShowID:      "sh-1",
		SeatNumbers: []string{"B5"},
		TotalAmount: 18.50,
	})
	require.NoError(t, err)

	before, err := catalogue.GetShow(ctx, "sh-1")
	require.NoError(t, err)

	cancelled, err := booking.CancelBooking(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, cancelled.BookingStatus)
	assert.NotNil(t, cancelled.CancelledAt)

	after, err := catalogue.GetShow(ctx, "sh-1")
	require.NoError(t, err)
	assert.Equal(t, before.AvailableSeats+1, after.AvailableSeats)

	seatmap, err := catalogue.SeatMap(ctx, "sh-1", nil)
	require.NoError(t, err)
	assert.NotContains(t, seatmap.BookedSeats, "B5")

	// The record survives cancellation for history.
	listed, err := booking.ListUserBookings(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, listed.Items, 1)
	assert.Equal(t, entity.BookingStatusCancelled, listed.Items[0].BookingStatus)
}

func TestCancelBooking_SeatReleasedForRebooking(t *testing.T) {
	booking, _, _ := newLocalServices(t, nil, nil)
	ctx := context.Background()

	created, err := booking.CreateBooking(ctx, "alice", &request.CreateBookingRequest{
		ShowID:      "sh-1",
		SeatNumbers: []string{"C7"},
	})
	require.NoError(t, err)

	_, err = booking.CancelBooking(ctx, created.ID)
	require.NoError(t, err)

	rebooked, err := booking.CreateBooking(ctx, "bob", &request.CreateBookingRequest{
		ShowID:      "sh-1",
		SeatNumbers: []string{"C7"},
	})
	require.NoError(t, err, "a cancelled booking's seats are free again")
	assert.Equal(t, "bob", rebooked.UserID)
}

func TestCancelBooking_UnknownID(t *testing.T) {
	booking, _, _ := newLocalServices(t, nil, nil)

	_, err := booking.CancelBooking(context.Background(), "bk-ghost")
	assert.ErrorIs(t, err, entity.ErrBookingNotFound)
}

func TestCreateBooking_ConcurrentOverlapAdmitsExactlyOne(t *testing.T) {
	booking, _, gw := newLocalServices(t, nil, nil)
	ctx := context.Background()

	const contenders = 16
	var wg sync.WaitGroup
	var successes, conflicts atomic.Int64

	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := booking.CreateBooking(ctx, "racer", &request.CreateBookingRequest{
				ShowID:      "sh-1",
				SeatNumbers: []string{"H1", "H2"},
			})
			var conflict *entity.SeatConflictError
			switch {
			case err == nil:
				successes.Add(1)
			case errors.As(err, &conflict):
				conflicts.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), successes.Load(), "overlapping concurrent creates must admit exactly one")
	assert.Equal(t, int64(contenders-1), conflicts.Load())

	ledger, err := gw.BookingsByShow(ctx, "sh-1")
	require.NoError(t, err)

	holders := 0
	for _, b := range ledger {
		if b.Active() && len(b.SeatNumbers) == 2 && b.SeatNumbers[0] == "H1" {
			holders++
		}
	}
	assert.Equal(t, 1, holders)
}
