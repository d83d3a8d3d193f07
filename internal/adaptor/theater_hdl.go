package adaptor

import (
	"net/http"

	"go.uber.org/zap"

	"quickshow-booking/internal/usecase"
	"quickshow-booking/pkg/utils"
)

type TheaterHandler struct {
	service usecase.CatalogueService
	log     *zap.Logger
}

func NewTheaterHandler(service usecase.CatalogueService, log *zap.Logger) *TheaterHandler {
	return &TheaterHandler{
		service: service,
		log:     log.With(zap.String("handler", "theater")),
	}
}

// GetTheaters handles GET /api/theaters
func (h *TheaterHandler) GetTheaters(w http.ResponseWriter, r *http.Request) {
	theaters, err := h.service.ListTheaters(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list theaters")
		return
	}

	utils.ResponseSuccess(w, "success", theaters)
}
