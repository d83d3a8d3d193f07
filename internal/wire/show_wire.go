package wire

import (
	"github.com/go-chi/chi/v5"

	"quickshow-booking/internal/adaptor"
)

func wireShow(r chi.Router, showHandler *adaptor.ShowHandler) {
	// GET /api/shows/upcoming - all scheduled shows with availability
	r.Get("/api/shows/upcoming", showHandler.GetUpcomingShows)

	// GET /api/shows/movie/{movieId}?date= - shows for a movie, optional date
	r.Get("/api/shows/movie/{movieId}", showHandler.GetShowsForMovie)

	// GET /api/shows/{id} - show details with availability
	r.Get("/api/shows/{id}", showHandler.GetShowByID)

	// GET /api/shows/{id}/seatmap?selected= - rendered seat grid
	r.Get("/api/shows/{id}/seatmap", showHandler.GetSeatMap)
}
