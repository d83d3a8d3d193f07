package inventory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quickshow-booking/internal/data/entity"
)

func TestBookedSeats_UnionOfActiveBookingsOnly(t *testing.T) {
	bookings := []entity.Booking{
		{ID: "b1", ShowID: "sh-1", BookingStatus: entity.BookingStatusConfirmed, SeatNumbers: []string{"A1", "A2"}},
		{ID: "b2", ShowID: "sh-1", BookingStatus: entity.BookingStatusCancelled, SeatNumbers: []string{"B1"}},
		{ID: "b3", ShowID: "sh-2", BookingStatus: entity.BookingStatusConfirmed, SeatNumbers: []string{"C1"}},
		{ID: "b4", ShowID: "sh-1", BookingStatus: entity.BookingStatusConfirmed, SeatNumbers: []string{"A3"}},
	}

	seats := BookedSeats(bookings, "sh-1")

	assert.Len(t, seats, 3)
	assert.True(t, seats["A1"])
	assert.True(t, seats["A2"])
	assert.True(t, seats["A3"])
	assert.False(t, seats["B1"], "cancelled bookings must not hold seats")
	assert.False(t, seats["C1"], "other shows must not leak in")
}

func TestBookedSeatList_Sorted(t *testing.T) {
	bookings := []entity.Booking{
		{ShowID: "sh-1", BookingStatus: entity.BookingStatusConfirmed, SeatNumbers: []string{"B2", "A1"}},
	}

	assert.Equal(t, []string{"A1", "B2"}, BookedSeatList(bookings, "sh-1"))
}

func TestAvailableSeats_Derivation(t *testing.T) {
	show := &entity.Show{ID: "sh-1", TotalSeats: 10}
	bookings := []entity.Booking{
		{ShowID: "sh-1", BookingStatus: entity.BookingStatusConfirmed, SeatNumbers: []string{"A1", "A2", "A3"}},
		{ShowID: "sh-1", BookingStatus: entity.BookingStatusCancelled, SeatNumbers: []string{"B1", "B2"}},
	}

	assert.Equal(t, 7, AvailableSeats(show, bookings, nil))
}

func TestAvailableSeats_ClampedAtZero(t *testing.T) {
	// Over-booked state can only come from an upstream invariant violation;
	// the derivation must not surface a negative count.
	show := &entity.Show{ID: "sh-1", TotalSeats: 1}
	bookings := []entity.Booking{
		{ShowID: "sh-1", BookingStatus: entity.BookingStatusConfirmed, SeatNumbers: []string{"A1", "A2"}},
	}

	assert.Equal(t, 0, AvailableSeats(show, bookings, nil))
}

func TestSeatMap_DeterministicGrid(t *testing.T) {
	booked := map[string]bool{"A1": true, "J10": true}
	grid := SeatMap(booked, []string{"B2"})

	require.Len(t, grid, 10)
	for _, row := range grid {
		require.Len(t, row, 10)
	}

	assert.Equal(t, "A1", grid[0][0].SeatNumber)
	assert.True(t, grid[0][0].Booked)
	assert.Equal(t, "J10", grid[9][9].SeatNumber)
	assert.True(t, grid[9][9].Booked)

	assert.Equal(t, "B2", grid[1][1].SeatNumber)
	assert.True(t, grid[1][1].Selected)
	assert.False(t, grid[1][1].Booked)

	// Same inputs, same grid.
	assert.Equal(t, grid, SeatMap(booked, []string{"B2"}))
}
