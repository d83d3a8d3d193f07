package gateway

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"quickshow-booking/internal/data/entity"
	"quickshow-booking/internal/data/remote"
	"quickshow-booking/internal/data/store"
)

// Source tags where a gateway result came from, so tests and operators can
// tell degraded mode apart from a genuinely empty mirror.
type Source string

const (
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
)

// RemoteAPI is the slice of the remote authority the gateway consumes.
type RemoteAPI interface {
	ListMovies(ctx context.Context) ([]entity.Movie, error)
	GetMovie(ctx context.Context, id string) (*entity.Movie, error)
	SearchMovies(ctx context.Context, title string) ([]entity.Movie, error)
	GetShow(ctx context.Context, id string) (*entity.Show, error)
	ShowsForMovieOnDate(ctx context.Context, movieID, isoDate string) ([]entity.Show, error)
	TicketsByUser(ctx context.Context, userID string) ([]entity.Booking, error)
	CreateTicket(ctx context.Context, req *remote.CreateTicketRequest) (*entity.Booking, error)
	CancelTicket(ctx context.Context, id string) (*entity.Booking, error)
}

// Gateway presents one uniform operation surface regardless of whether the
// authoritative data lives remotely or in the local fallback mirror. Routing
// is evaluated per call: prefer-local or a missing remote endpoint goes
// straight to the mirror; otherwise the remote is attempted and any failure
// is absorbed into a transparent fallback.
type Gateway struct {
	remote      RemoteAPI // nil when no remote endpoint is configured
	store       store.Store
	preferLocal bool
	log         *zap.Logger
}

func New(remoteAPI RemoteAPI, st store.Store, preferLocal bool, log *zap.Logger) *Gateway {
	return &Gateway{
		remote:      remoteAPI,
		store:       st,
		preferLocal: preferLocal,
		log:         log.With(zap.String("component", "gateway")),
	}
}

func (g *Gateway) localOnly() bool {
	return g.preferLocal || g.remote == nil
}

// route attempts the remote call unless routed local, and falls back to the
// mirror on any remote failure. The remote error never escapes; it is logged
// and the caller only ever sees local errors or clean data.
func route[T any](ctx context.Context, g *Gateway, op string,
	remoteFn func(context.Context) (T, error),
	localFn func(context.Context) (T, error),
) (T, Source, error) {
	if !g.localOnly() {
		v, err := remoteFn(ctx)
		if err == nil {
			return v, SourceRemote, nil
		}
		if !errors.Is(err, entity.ErrRemoteUnavailable) {
			// The client wraps everything as ErrRemoteUnavailable; anything
			// else still falls back, it is just worth noticing in the logs.
			g.log.Error("unexpected remote error", zap.String("op", op), zap.Error(err))
		}
		g.log.Warn("remote call failed, serving local mirror",
			zap.String("op", op),
			zap.Error(err),
		)
	}

	v, err := localFn(ctx)
	if err != nil {
		var zero T
		return zero, SourceFallback, err
	}
	return v, SourceFallback, nil
}
