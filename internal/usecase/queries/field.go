package queries

import (
	"context"

	"canchacontrol/internal/infra"
	"canchacontrol/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrFieldNotFound = errs.New("field not found")
	ErrQueryFailed   = errs.New("query failed")
)

type FieldQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*FieldView, error)
	// List serves the dashboard field list. Unfiltered reads come from the
	// snapshot cache; a type filter always hits the authoritative store.
	List(ctx context.Context, typeFilter *string) ([]FieldView, error)
}

type FieldViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*FieldView, error)
	List(ctx context.Context, typeFilter *string) ([]*FieldView, error)
}

type fieldQueriesImpl struct {
	repo  FieldViewRepo
	cache DashboardCache
}

func NewFieldQueries(repo FieldViewRepo, cache DashboardCache) FieldQueries {
	return &fieldQueriesImpl{repo: repo, cache: cache}
}

func (q *fieldQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*FieldView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrFieldNotFound
		}
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	return view, nil
}

func (q *fieldQueriesImpl) List(ctx context.Context, typeFilter *string) ([]FieldView, error) {
	if typeFilter == nil {
		views, err := q.cache.ReadFields(ctx)
		if err != nil {
			return nil, errs.Mark(err, ErrQueryFailed)
		}
		return views, nil
	}

	rows, err := q.repo.List(ctx, typeFilter)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}
	views := make([]FieldView, 0, len(rows))
	for _, row := range rows {
		views = append(views, *row)
	}
	return views, nil
}
