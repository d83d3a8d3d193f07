package wire

import (
	"github.com/go-chi/chi/v5"

	"quickshow-booking/internal/adaptor"
)

func wireTheater(r chi.Router, theaterHandler *adaptor.TheaterHandler) {
	// GET /api/theaters - list theaters
	r.Get("/api/theaters", theaterHandler.GetTheaters)
}
