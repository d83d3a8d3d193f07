package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"quickshow-booking/internal/data/entity"
	"quickshow-booking/internal/dto/response"
	"quickshow-booking/internal/gateway"
	"quickshow-booking/internal/inventory"
)

type CatalogueService interface {
	ListMovies(ctx context.Context) (*response.Sourced[entity.Movie], error)
	GetMovie(ctx context.Context, id string) (*entity.Movie, error)
	SearchMovies(ctx context.Context, query string) (*response.Sourced[entity.Movie], error)
	ListTheaters(ctx context.Context) (*response.Sourced[entity.Theater], error)
	ListUpcomingShows(ctx context.Context) (*response.Sourced[response.ShowResponse], error)
	GetShow(ctx context.Context, id string) (*response.ShowResponse, error)
	ShowsForMovieOnDate(ctx context.Context, movieID, isoDate string) (*response.Sourced[response.ShowResponse], error)
	SeatMap(ctx context.Context, showID string, selected []string) (*response.SeatMapResponse, error)
}

type catalogueService struct {
	gw  *gateway.Gateway
	log *zap.Logger
}

func NewCatalogueService(gw *gateway.Gateway, log *zap.Logger) CatalogueService {
	return &catalogueService{
		gw:  gw,
		log: log.With(zap.String("service", "catalogue")),
	}
}

func (s *catalogueService) ListMovies(ctx context.Context) (*response.Sourced[entity.Movie], error) {
	movies, source, err := s.gw.Movies(ctx)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return response.NewSourced(string(source), movies), nil
}

func (s *catalogueService) GetMovie(ctx context.Context, id string) (*entity.Movie, error) {
	movie, _, err := s.gw.Movie(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get movie: %w", err)
	}
	return movie, nil
}

func (s *catalogueService) SearchMovies(ctx context.Context, query string) (*response.Sourced[entity.Movie], error) {
	movies, source, err := s.gw.SearchMovies(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search movies: %w", err)
	}
	return response.NewSourced(string(source), movies), nil
}

func (s *catalogueService) ListTheaters(ctx context.Context) (*response.Sourced[entity.Theater], error) {
	theaters, source, err := s.gw.Theaters(ctx)
	if err != nil {
		return nil, fmt.Errorf("list theaters: %w", err)
	}
	return response.NewSourced(string(source), theaters), nil
}

func (s *catalogueService) ListUpcomingShows(ctx context.Context) (*response.Sourced[response.ShowResponse], error) {
	shows, source, err := s.gw.UpcomingShows(ctx)
	if err != nil {
		return nil, fmt.Errorf("list upcoming shows: %w", err)
	}

	enriched, err := s.enrichShows(ctx, shows)
	if err != nil {
		return nil, err
	}
	return response.NewSourced(string(source), enriched), nil
}

func (s *catalogueService) GetShow(ctx context.Context, id string) (*response.ShowResponse, error) {
	show, _, err := s.gw.Show(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get show: %w", err)
	}
	return s.enrichShow(ctx, show)
}

func (s *catalogueService) ShowsForMovieOnDate(ctx context.Context, movieID, isoDate string) (*response.Sourced[response.ShowResponse], error) {
	shows, source, err := s.gw.ShowsForMovie(ctx, movieID, isoDate)
	if err != nil {
		return nil, fmt.Errorf("shows for movie: %w", err)
	}

	enriched, err := s.enrichShows(ctx, shows)
	if err != nil {
		return nil, err
	}
	return response.NewSourced(string(source), enriched), nil
}

func (s *catalogueService) SeatMap(ctx context.Context, showID string, selected []string) (*response.SeatMapResponse, error) {
	show, _, err := s.gw.Show(ctx, showID)
	if err != nil {
		return nil, fmt.Errorf("get show: %w", err)
	}

	bookings, err := s.gw.BookingsByShow(ctx, show.ID)
	if err != nil {
		return nil, fmt.Errorf("load bookings for show %s: %w", show.ID, err)
	}

	booked := inventory.BookedSeats(bookings, show.ID)
	return &response.SeatMapResponse{
		ShowID:         show.ID,
		AvailableSeats: inventory.AvailableSeats(show, bookings, s.log),
		BookedSeats:    inventory.BookedSeatList(bookings, show.ID),
		Rows:           inventory.SeatMap(booked, selected),
	}, nil
}

// enrichShow attaches live availability; availability is derived, never read
// from the show record.
func (s *catalogueService) enrichShow(ctx context.Context, show *entity.Show) (*response.ShowResponse, error) {
	bookings, err := s.gw.BookingsByShow(ctx, show.ID)
	if err != nil {
		return nil, fmt.Errorf("load bookings for show %s: %w", show.ID, err)
	}
	return &response.ShowResponse{
		Show:           *show,
		AvailableSeats: inventory.AvailableSeats(show, bookings, s.log),
	}, nil
}

func (s *catalogueService) enrichShows(ctx context.Context, shows []entity.Show) ([]response.ShowResponse, error) {
	enriched := make([]response.ShowResponse, 0, len(shows))
	for i := range shows {
		e, err := s.enrichShow(ctx, &shows[i])
		if err != nil {
			return nil, err
		}
		enriched = append(enriched, *e)
	}
	return enriched, nil
}
