package gateway

import (
	"context"
	"fmt"
	"strings"

	"quickshow-booking/internal/data/entity"
	"quickshow-booking/internal/data/store"
)

func (g *Gateway) Movies(ctx context.Context) ([]entity.Movie, Source, error) {
	return route(ctx, g, "list movies",
		g.remoteListMovies,
		func(ctx context.Context) ([]entity.Movie, error) {
			return store.Load[entity.Movie](ctx, g.store, store.CollectionMovies)
		},
	)
}

func (g *Gateway) Movie(ctx context.Context, id string) (*entity.Movie, Source, error) {
	return route(ctx, g, "get movie",
		func(ctx context.Context) (*entity.Movie, error) {
			return g.remote.GetMovie(ctx, id)
		},
		func(ctx context.Context) (*entity.Movie, error) {
			movies, err := store.Load[entity.Movie](ctx, g.store, store.CollectionMovies)
			if err != nil {
				return nil, err
			}
			for i := range movies {
				if movies[i].ID == id {
					return &movies[i], nil
				}
			}
			return nil, fmt.Errorf("movie %s: %w", id, entity.ErrMovieNotFound)
		},
	)
}

// SearchMovies matches a case-insensitive substring of the title. A blank
// query returns an empty result immediately, with no remote or mirror lookup.
func (g *Gateway) SearchMovies(ctx context.Context, query string) ([]entity.Movie, Source, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []entity.Movie{}, SourceFallback, nil
	}

	return route(ctx, g, "search movies",
		func(ctx context.Context) ([]entity.Movie, error) {
			return g.remote.SearchMovies(ctx, query)
		},
		func(ctx context.Context) ([]entity.Movie, error) {
			movies, err := store.Load[entity.Movie](ctx, g.store, store.CollectionMovies)
			if err != nil {
				return nil, err
			}
			needle := strings.ToLower(query)
			matches := []entity.Movie{}
			for _, m := range movies {
				if strings.Contains(strings.ToLower(m.Title), needle) {
					matches = append(matches, m)
				}
			}
			return matches, nil
		},
	)
}

// Theaters is served from the mirror by policy: the remote authority exposes
// no theater listing.
func (g *Gateway) Theaters(ctx context.Context) ([]entity.Theater, Source, error) {
	theaters, err := store.Load[entity.Theater](ctx, g.store, store.CollectionTheaters)
	if err != nil {
		return nil, SourceFallback, err
	}
	return theaters, SourceFallback, nil
}

// UpcomingShows is likewise mirror-only; no remote endpoint lists all shows.
func (g *Gateway) UpcomingShows(ctx context.Context) ([]entity.Show, Source, error) {
	shows, err := store.Load[entity.Show](ctx, g.store, store.CollectionShows)
	if err != nil {
		return nil, SourceFallback, err
	}
	return shows, SourceFallback, nil
}

func (g *Gateway) Show(ctx context.Context, id string) (*entity.Show, Source, error) {
	return route(ctx, g, "get show",
		func(ctx context.Context) (*entity.Show, error) {
			return g.remote.GetShow(ctx, id)
		},
		func(ctx context.Context) (*entity.Show, error) {
			return g.localShow(ctx, id)
		},
	)
}

// ShowsForMovie lists shows for a movie, optionally restricted to one date.
// The remote authority only serves the movie+date form, so a dateless lookup
// is answered from the mirror.
func (g *Gateway) ShowsForMovie(ctx context.Context, movieID, isoDate string) ([]entity.Show, Source, error) {
	local := func(ctx context.Context) ([]entity.Show, error) {
		shows, err := store.Load[entity.Show](ctx, g.store, store.CollectionShows)
		if err != nil {
			return nil, err
		}
		matches := []entity.Show{}
		for _, s := range shows {
			if s.MovieID == movieID && (isoDate == "" || s.ShowDate == isoDate) {
				matches = append(matches, s)
			}
		}
		return matches, nil
	}

	if isoDate == "" {
		shows, err := local(ctx)
		if err != nil {
			return nil, SourceFallback, err
		}
		return shows, SourceFallback, nil
	}

	return route(ctx, g, "shows for movie on date",
		func(ctx context.Context) ([]entity.Show, error) {
			return g.remote.ShowsForMovieOnDate(ctx, movieID, isoDate)
		},
		local,
	)
}

func (g *Gateway) remoteListMovies(ctx context.Context) ([]entity.Movie, error) {
	return g.remote.ListMovies(ctx)
}

func (g *Gateway) localShow(ctx context.Context, id string) (*entity.Show, error) {
	shows, err := store.Load[entity.Show](ctx, g.store, store.CollectionShows)
	if err != nil {
		return nil, err
	}
	for i := range shows {
		if shows[i].ID == id {
			return &shows[i], nil
		}
	}
	return nil, fmt.Errorf("show %s: %w", id, entity.ErrShowNotFound)
}
