package adaptor

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"quickshow-booking/internal/usecase"
	"quickshow-booking/pkg/utils"
)

type ShowHandler struct {
	service usecase.CatalogueService
	log     *zap.Logger
}

func NewShowHandler(service usecase.CatalogueService, log *zap.Logger) *ShowHandler {
	return &ShowHandler{
		service: service,
		log:     log.With(zap.String("handler", "show")),
	}
}

// GetUpcomingShows handles GET /api/shows/upcoming
func (h *ShowHandler) GetUpcomingShows(w http.ResponseWriter, r *http.Request) {
	shows, err := h.service.ListUpcomingShows(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list upcoming shows")
		return
	}

	utils.ResponseSuccess(w, "success", shows)
}

// GetShowByID handles GET /api/shows/{id}
func (h *ShowHandler) GetShowByID(w http.ResponseWriter, r *http.Request) {
	showID := chi.URLParam(r, "id")
	if showID == "" {
		utils.ResponseBadRequest(w, "Show ID is required", nil)
		return
	}

	show, err := h.service.GetShow(r.Context(), showID)
	if err != nil {
		handleServiceError(w, h.log, err, "get show by ID")
		return
	}

	utils.ResponseSuccess(w, "success", show)
}

// GetShowsForMovie handles GET /api/shows/movie/{movieId}?date=2026-09-05
// The date is optional; omitting it returns every show for the movie.
func (h *ShowHandler) GetShowsForMovie(w http.ResponseWriter, r *http.Request) {
	movieID := chi.URLParam(r, "movieId")
	if movieID == "" {
		utils.ResponseBadRequest(w, "Movie ID is required", nil)
		return
	}

	isoDate := r.URL.Query().Get("date")

	shows, err := h.service.ShowsForMovieOnDate(r.Context(), movieID, isoDate)
	if err != nil {
		handleServiceError(w, h.log, err, "list shows for movie")
		return
	}

	utils.ResponseSuccess(w, "success", shows)
}

// GetSeatMap handles GET /api/shows/{id}/seatmap?selected=A1,A2
func (h *ShowHandler) GetSeatMap(w http.ResponseWriter, r *http.Request) {
	showID := chi.URLParam(r, "id")
	if showID == "" {
		utils.ResponseBadRequest(w, "Show ID is required", nil)
		return
	}

	selected := utils.SplitCSV(r.URL.Query().Get("selected"))

	seatMap, err := h.service.SeatMap(r.Context(), showID, selected)
	if err != nil {
		handleServiceError(w, h.log, err, "get seat map")
		return
	}

	utils.ResponseSuccess(w, "success", seatMap)
}
