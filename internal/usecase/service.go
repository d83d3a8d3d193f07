package usecase

import (
	"go.uber.org/zap"

	"quickshow-booking/internal/gateway"
)

type Service struct {
	Catalogue CatalogueService
	Booking   BookingService
}

func NewService(gw *gateway.Gateway, log *zap.Logger) *Service {
	return &Service{
		Catalogue: NewCatalogueService(gw, log),
		Booking:   NewBookingService(gw, log),
	}
}
