// internal/wire/wire.go
package wire

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"quickshow-booking/internal/adaptor"
	"quickshow-booking/internal/gateway"
	"quickshow-booking/internal/usecase"
	"quickshow-booking/pkg/middleware"
	"quickshow-booking/pkg/utils"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and the router
func Wiring(gw *gateway.Gateway, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(gw, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, config, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, config *utils.Config, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.Identity(config.Remote.DefaultUserID, logger))

	wireMovie(r, handler.Movie)
	wireTheater(r, handler.Theater)
	wireShow(r, handler.Show)
	wireBooking(r, handler.Booking)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
