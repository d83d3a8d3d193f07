package wire

import (
	"github.com/go-chi/chi/v5"

	"quickshow-booking/internal/adaptor"
)

func wireMovie(r chi.Router, movieHandler *adaptor.MovieHandler) {
	// GET /api/movies - list the catalogue
	r.Get("/api/movies", movieHandler.GetMovies)

	// GET /api/movies/search?title= - case-insensitive title search
	r.Get("/api/movies/search", movieHandler.SearchMovies)

	// GET /api/movies/{id} - movie details
	r.Get("/api/movies/{id}", movieHandler.GetMovieByID)
}
