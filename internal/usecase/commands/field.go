package commands

import (
	"context"
	"errors"

	"canchacontrol/internal/domain/field"
	reqdto "canchacontrol/internal/handler/dto/request"
	"canchacontrol/internal/infra"
	"canchacontrol/internal/pkg/clock"
	"canchacontrol/internal/pkg/errs"
	"canchacontrol/internal/pkg/patch"
	"canchacontrol/internal/usecase/queries"
	"canchacontrol/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrFieldNotFound           = errs.New("field not found")
	ErrDuplicateFieldName      = errs.New("duplicate field name")
	ErrFieldValidation         = errs.New("field validation failed")
	ErrDatabaseOperationFailed = errs.New("database operation failed")
)

type FieldCommands interface {
	Create(ctx context.Context, req reqdto.CreateFieldRequest, actorID uuid.UUID) (*queries.FieldView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateFieldRequest, actorID uuid.UUID) (*queries.FieldView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type fieldCommandsImpl struct {
	uow   shared.UnitOfWork
	views queries.FieldViewRepo
	cache queries.DashboardCache
	clock clock.Clock
}

func NewFieldCommands(uow shared.UnitOfWork, views queries.FieldViewRepo, cache queries.DashboardCache, clk clock.Clock) FieldCommands {
	return &fieldCommandsImpl{
		uow:   uow,
		views: views,
		cache: cache,
		clock: clk,
	}
}

func (f *fieldCommandsImpl) Create(ctx context.Context, req reqdto.CreateFieldRequest, actorID uuid.UUID) (*queries.FieldView, error) {
	entity, err := field.NewField(req.Name, req.Type, req.HourlyRateCents, req.Capacity, req.Indoor, actorID, f.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrFieldValidation)
	}

	err = f.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, createErr := tx.Fields().Create(ctx, tx.DB(), entity)
		return createErr
	})
	if err != nil {
		return nil, mapFieldWriteErr(err)
	}

	return f.readAfterWrite(ctx, entity.ID())
}

func (f *fieldCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateFieldRequest, actorID uuid.UUID) (*queries.FieldView, error) {
	var entity *field.Field

	err := f.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, readErr := tx.Reads().FieldByID(ctx, id)
		if readErr != nil {
			if infra.IsKind(readErr, infra.KindNotFound) {
				return ErrFieldNotFound
			}
			return errs.Mark(readErr, ErrDatabaseOperationFailed)
		}

		now := f.clock.Now()
		entity = field.ReconstructField(
			snap.ID, snap.Name, snap.Type, snap.HourlyRateCents, snap.Capacity, snap.Indoor,
			snap.CreatedBy, actorID, snap.CreatedAt, now,
		)
		updateErr := entity.UpdateDetails(
			patch.Coalesce(req.Name, snap.Name),
			patch.Coalesce(req.Type, snap.Type),
			patch.Coalesce(req.HourlyRateCents, snap.HourlyRateCents),
			patch.Coalesce(req.Capacity, snap.Capacity),
			patch.Coalesce(req.Indoor, snap.Indoor),
			actorID, now,
		)
		if updateErr != nil {
			return errs.Mark(updateErr, ErrFieldValidation)
		}

		return tx.Fields().Update(ctx, tx.DB(), entity)
	})
	if err != nil {
		return nil, mapFieldWriteErr(err)
	}

	return f.readAfterWrite(ctx, id)
}

func (f *fieldCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := f.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Fields().Delete(ctx, tx.DB(), id)
	})
	if err != nil {
		return mapFieldWriteErr(err)
	}

	f.cache.AfterFieldWrite(ctx, queries.FieldCacheDelta{DeletedID: id})
	// Detaching reservations from the field changes their field_name; the
	// reservation list must refetch rather than patch.
	f.cache.InvalidateAll()
	return nil
}

// readAfterWrite fetches the authoritative view and converges the cache.
func (f *fieldCommandsImpl) readAfterWrite(ctx context.Context, id uuid.UUID) (*queries.FieldView, error) {
	view, err := f.views.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	f.cache.AfterFieldWrite(ctx, queries.FieldCacheDelta{Upserted: view})
	return view, nil
}

func mapFieldWriteErr(err error) error {
	switch {
	case errors.Is(err, ErrFieldNotFound), errors.Is(err, ErrFieldValidation):
		return err
	case infra.IsKind(err, infra.KindNotFound):
		return ErrFieldNotFound
	case infra.IsKind(err, infra.KindDuplicateKey):
		return ErrDuplicateFieldName
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}
