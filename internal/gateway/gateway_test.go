package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"quickshow-booking/internal/data/entity"
	"quickshow-booking/internal/data/remote"
	"quickshow-booking/internal/data/store"
)

func newRemoteGateway(t *testing.T, handler http.Handler) (*Gateway, *httptest.Server, *atomic.Int64) {
	t.Helper()

	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		handler.ServeHTTP(w, r)
	}))
	t.Cleanup(server.Close)

	client := remote.NewClient(server.URL, 2*time.Second)
	gw := New(client, store.NewMemory(), false, zap.NewNop())
	return gw, server, &hits
}

func failingRemote() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	})
}

func TestMovies_RemoteServesAndTagsSource(t *testing.T) {
	gw, _, hits := newRemoteGateway(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/movies", r.URL.Path)
		json.NewEncoder(w).Encode([]entity.Movie{{ID: "rm-1", Title: "Remote Feature"}})
	}))

	movies, source, err := gw.Movies(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SourceRemote, source)
	require.Len(t, movies, 1)
	assert.Equal(t, "rm-1", movies[0].ID)
	assert.Equal(t, int64(1), hits.Load())
}

func TestMovies_RemoteFailureFallsBackTransparently(t *testing.T) {
	gw, _, hits := newRemoteGateway(t, failingRemote())

	movies, source, err := gw.Movies(context.Background())
	require.NoError(t, err, "remote failure must never surface to the caller")
	assert.Equal(t, SourceFallback, source)
	assert.Len(t, movies, 4, "fallback serves the seeded mirror")
	assert.Equal(t, int64(1), hits.Load())
}

func TestMovies_PreferLocalSkipsRemote(t *testing.T) {
	var hits atomic.Int64
	counting := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer counting.Close()

	client := remote.NewClient(counting.URL, time.Second)
	gw := New(client, store.NewMemory(), true, zap.NewNop())

	_, source, err := gw.Movies(context.Background())
	require.NoError(t, err)
	assert.Equal(t, SourceFallback, source)
	assert.Equal(t, int64(0), hits.Load())
}

func TestSearchMovies_BlankQuerySkipsEverything(t *testing.T) {
	gw, _, hits := newRemoteGateway(t, failingRemote())

	movies, source, err := gw.SearchMovies(context.Background(), "   ")
	require.NoError(t, err)
	assert.Equal(t, SourceFallback, source)
	assert.Empty(t, movies)
	assert.Equal(t, int64(0), hits.Load(), "blank query must not touch the remote transport")
}

func TestSearchMovies_LocalCaseInsensitiveSubstring(t *testing.T) {
	gw := New(nil, store.NewMemory(), true, zap.NewNop())

	movies, _, err := gw.SearchMovies(context.Background(), "VOID")
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "Edge of the Void", movies[0].Title)
}

func TestShow_LocalNotFound(t *testing.T) {
	gw := New(nil, store.NewMemory(), true, zap.NewNop())

	_, _, err := gw.Show(context.Background(), "sh-missing")
	assert.ErrorIs(t, err, entity.ErrShowNotFound)
}

func TestCreateBooking_FallbackReadYourWrites(t *testing.T) {
	gw, _, _ := newRemoteGateway(t, failingRemote())
	ctx := context.Background()

	show, source, err := gw.Show(ctx, "sh-2")
	require.NoError(t, err)
	require.Equal(t, SourceFallback, source)

	booking := &entity.Booking{
		ID:            "bk-rt-1",
		UserID:        "demo-user",
		ShowID:        show.ID,
		SeatNumbers:   []string{"C1", "C2"},
		TotalAmount:   24.00,
		BookingStatus: entity.BookingStatusConfirmed,
		BookingDate:   time.Now().UTC(),
		ShowDateTime:  show.DateTime(),
	}

	created, source, err := gw.CreateBooking(ctx, show, booking)
	require.NoError(t, err, "create must succeed against the mirror when the remote is down")
	assert.Equal(t, SourceFallback, source)
	assert.Equal(t, "bk-rt-1", created.ID)

	// The write through the fallback path is visible to the next read.
	bookings, source, err := gw.BookingsByUser(ctx, "demo-user")
	require.NoError(t, err)
	assert.Equal(t, SourceFallback, source)

	var found bool
	for _, b := range bookings {
		if b.ID == "bk-rt-1" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestCreateBooking_ConflictLeavesLedgerUnchanged(t *testing.T) {
	gw := New(nil, store.NewMemory(), true, zap.NewNop())
	ctx := context.Background()

	show, _, err := gw.Show(ctx, "sh-1")
	require.NoError(t, err)

	// Seed booking bk-seed-1 already holds E5/E6 on sh-1.
	booking := &entity.Booking{
		ID:            "bk-x",
		UserID:        "someone",
		ShowID:        show.ID,
		SeatNumbers:   []string{"E5", "F1"},
		BookingStatus: entity.BookingStatusConfirmed,
	}

	_, _, err = gw.CreateBooking(ctx, show, booking)

	var conflict *entity.SeatConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "sh-1", conflict.ShowID)
	assert.Equal(t, []string{"E5"}, conflict.Seats)

	bookings, err := gw.BookingsByShow(ctx, "sh-1")
	require.NoError(t, err)
	assert.Len(t, bookings, 1, "no partial reservation for the free seat")
}

func TestCancelBooking_IdempotentLocal(t *testing.T) {
	gw := New(nil, store.NewMemory(), true, zap.NewNop())
	ctx := context.Background()

	first, _, err := gw.CancelBooking(ctx, "bk-seed-1")
	require.NoError(t, err)
	assert.Equal(t, entity.BookingStatusCancelled, first.BookingStatus)
	require.NotNil(t, first.CancelledAt)

	second, _, err := gw.CancelBooking(ctx, "bk-seed-1")
	require.NoError(t, err, "cancelling a cancelled booking is a no-op")
	assert.Equal(t, entity.BookingStatusCancelled, second.BookingStatus)
	assert.Equal(t, *first.CancelledAt, *second.CancelledAt)
}

func TestCancelBooking_UnknownID(t *testing.T) {
	gw := New(nil, store.NewMemory(), true, zap.NewNop())

	_, _, err := gw.CancelBooking(context.Background(), "bk-ghost")
	assert.ErrorIs(t, err, entity.ErrBookingNotFound)
}
