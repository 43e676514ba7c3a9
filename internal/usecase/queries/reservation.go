package queries

import (
	"context"

	"canchacontrol/internal/domain/reservation"
	"canchacontrol/internal/infra"
	"canchacontrol/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrReservationNotFound = errs.New("reservation not found")

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	// List serves the dashboard reservation list. An empty filter reads the
	// snapshot cache; any filter hits the authoritative store.
	List(ctx context.Context, filter ReservationFilter) ([]ReservationView, error)
}

type ReservationViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, filter ReservationFilter) ([]*ReservationView, error)
	OccupiedSlots(ctx context.Context, fieldID uuid.UUID, date reservation.Date) ([]reservation.BookedSlot, error)
}

type reservationQueriesImpl struct {
	repo  ReservationViewRepo
	cache DashboardCache
}

func NewReservationQueries(repo ReservationViewRepo, cache DashboardCache) ReservationQueries {
	return &reservationQueriesImpl{repo: repo, cache: cache}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return view, nil
}

func (q *reservationQueriesImpl) List(ctx context.Context, filter ReservationFilter) ([]ReservationView, error) {
	if filter.IsEmpty() {
		views, err := q.cache.ReadReservations(ctx)
		if err != nil {
			return nil, errs.Mark(err, ErrQueryFailed)
		}
		return views, nil
	}

	rows, err := q.repo.List(ctx, filter)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	views := make([]ReservationView, 0, len(rows))
	for _, row := range rows {
		views = append(views, *row)
	}
	return views, nil
}
