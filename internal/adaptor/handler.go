package adaptor

import (
	"errors"
	"net/http"

	"go.uber.org/zap"

	"quickshow-booking/internal/data/entity"
	"quickshow-booking/internal/usecase"
	"quickshow-booking/pkg/utils"
)

type Handler struct {
	Movie   *MovieHandler
	Theater *TheaterHandler
	Show    *ShowHandler
	Booking *BookingHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Movie:   NewMovieHandler(service.Catalogue, log),
		Theater: NewTheaterHandler(service.Catalogue, log),
		Show:    NewShowHandler(service.Catalogue, log),
		Booking: NewBookingHandler(service.Booking, log),
	}
}

// handleServiceError maps the domain error taxonomy onto HTTP statuses.
// ErrRemoteUnavailable never shows up here; the gateway absorbs it.
func handleServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string) {
	var invalidSelection *entity.InvalidSelectionError
	var seatConflict *entity.SeatConflictError

	switch {
	case errors.Is(err, entity.ErrMovieNotFound),
		errors.Is(err, entity.ErrShowNotFound),
		errors.Is(err, entity.ErrBookingNotFound):
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, err.Error())

	case errors.As(err, &invalidSelection):
		log.Warn(operation+" failed - invalid selection", zap.Error(err))
		utils.ResponseBadRequest(w, invalidSelection.Error(), nil)

	case errors.As(err, &seatConflict):
		log.Warn(operation+" failed - seat conflict",
			zap.Error(err),
			zap.String("show_id", seatConflict.ShowID),
			zap.Strings("seats", seatConflict.Seats),
		)
		utils.ResponseConflict(w, seatConflict.Error(), map[string]any{
			"showId": seatConflict.ShowID,
			"seats":  seatConflict.Seats,
		})

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, "Internal server error")
	}
}
