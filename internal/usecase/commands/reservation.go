package commands

import (
	"context"
	"errors"
	"fmt"

	"canchacontrol/internal/domain/reservation"
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
	ErrReservationNotFound   = errs.New("reservation not found")
	ErrReservationConflict   = errs.New("reservation conflict")
	ErrReservationValidation = errs.New("reservation validation failed")
	ErrInvalidPaymentStatus  = errs.New("invalid payment status")
)

// ConflictError carries the colliding bookings so the API can show the
// operator exactly which slots are taken.
type ConflictError struct {
	Colliding []shared.ConflictingSlot
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("time slot conflicts with %d reservation(s)", len(e.Colliding))
}

type ReservationCommands interface {
	Create(ctx context.Context, req reqdto.CreateReservationRequest, actorID uuid.UUID) (*queries.ReservationView, error)
	Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateReservationRequest) (*queries.ReservationView, error)
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status string) (*queries.ReservationView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type reservationCommandsImpl struct {
	uow   shared.UnitOfWork
	views queries.ReservationViewRepo
	cache queries.DashboardCache
	clock clock.Clock
}

func NewReservationCommands(uow shared.UnitOfWork, views queries.ReservationViewRepo, cache queries.DashboardCache, clk clock.Clock) ReservationCommands {
	return &reservationCommandsImpl{
		uow:   uow,
		views: views,
		cache: cache,
		clock: clk,
	}
}

func (r *reservationCommandsImpl) Create(ctx context.Context, req reqdto.CreateReservationRequest, actorID uuid.UUID) (*queries.ReservationView, error) {
	client, err := reservation.NewClientInfo(req.ClientName, req.ClientPhone, req.ClientEmail)
	if err != nil {
		return nil, errs.Mark(err, ErrReservationValidation)
	}
	date, err := reservation.ParseDate(req.Date)
	if err != nil {
		return nil, errs.Mark(err, ErrReservationValidation)
	}
	slot, err := reservation.ParseTimeRange(req.StartTime, req.EndTime)
	if err != nil {
		return nil, errs.Mark(err, ErrReservationValidation)
	}
	status := reservation.StatusPending
	if req.PaymentStatus != nil {
		status = reservation.PaymentStatus(*req.PaymentStatus)
		if !status.IsValid() {
			return nil, ErrInvalidPaymentStatus
		}
	}
	note := reservation.NewNote(patch.Coalesce(req.Note, ""))

	var entity *reservation.Reservation

	// Conflict check and insert run in one transaction; the storage exclusion
	// constraint backs it up against concurrent writers.
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		fieldSnap, readErr := tx.Reads().FieldByID(ctx, req.FieldID)
		if readErr != nil {
			if infra.IsKind(readErr, infra.KindNotFound) {
				return ErrFieldNotFound
			}
			return errs.Mark(readErr, ErrDatabaseOperationFailed)
		}

		if status.BlocksSlot() {
			if conflictErr := r.ensureSlotFree(ctx, tx, req.FieldID, date, slot, uuid.Nil); conflictErr != nil {
				return conflictErr
			}
		}

		var buildErr error
		entity, buildErr = reservation.NewReservation(
			reservation.FieldSpec{ID: fieldSnap.ID, Name: fieldSnap.Name, HourlyRateCents: fieldSnap.HourlyRateCents},
			client, date, slot, status, note, actorID, r.clock.Now(),
		)
		if buildErr != nil {
			return errs.Mark(buildErr, ErrReservationValidation)
		}

		_, createErr := tx.Reservations().Create(ctx, tx.DB(), entity)
		return createErr
	})
	if err != nil {
		return nil, mapReservationWriteErr(err)
	}

	return r.readAfterWrite(ctx, entity.ID())
}

func (r *reservationCommandsImpl) Update(ctx context.Context, id uuid.UUID, req reqdto.UpdateReservationRequest) (*queries.ReservationView, error) {
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, readErr := tx.Reads().ReservationByID(ctx, id)
		if readErr != nil {
			if infra.IsKind(readErr, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return errs.Mark(readErr, ErrDatabaseOperationFailed)
		}

		now := r.clock.Now()

		client, clientErr := reservation.NewClientInfo(
			patch.Coalesce(req.ClientName, snap.ClientName),
			coalescePtr(req.ClientPhone, snap.ClientPhone),
			coalescePtr(req.ClientEmail, snap.ClientEmail),
		)
		if clientErr != nil {
			return errs.Mark(clientErr, ErrReservationValidation)
		}

		date := snap.Date
		if req.Date != nil {
			parsed, dateErr := reservation.ParseDate(*req.Date)
			if dateErr != nil {
				return errs.Mark(dateErr, ErrReservationValidation)
			}
			date = parsed
		}
		slot := snap.Slot
		if req.StartTime != nil || req.EndTime != nil {
			parsed, slotErr := reservation.ParseTimeRange(
				patch.Coalesce(req.StartTime, snap.Slot.Start().String()),
				patch.Coalesce(req.EndTime, snap.Slot.End().String()),
			)
			if slotErr != nil {
				return errs.Mark(slotErr, ErrReservationValidation)
			}
			slot = parsed
		}

		fieldID := snap.FieldID
		if req.FieldID != nil {
			fieldID = req.FieldID
		}

		price, priceErr := reservation.NewMoney(snap.PriceCents)
		if priceErr != nil {
			return errs.Mark(priceErr, ErrDatabaseOperationFailed)
		}

		entity := reservation.ReconstructReservation(
			snap.ID, fieldID, client, date, slot, price,
			snap.PaymentStatus, reservation.NewNote(snap.Note),
			snap.CreatedBy, snap.CreatedAt, now,
		)
		entity.UpdateClient(client, now)
		if req.Note != nil {
			entity.UpdateNote(reservation.NewNote(*req.Note), now)
		}

		// A schedule change re-validates the slot against the authoritative
		// store and reprices against the target field's current rate.
		if req.ChangesSchedule() {
			if fieldID == nil {
				return errs.Mark(errs.New("reservation has no field to schedule against"), ErrReservationValidation)
			}
			fieldSnap, fieldErr := tx.Reads().FieldByID(ctx, *fieldID)
			if fieldErr != nil {
				if infra.IsKind(fieldErr, infra.KindNotFound) {
					return ErrFieldNotFound
				}
				return errs.Mark(fieldErr, ErrDatabaseOperationFailed)
			}

			if snap.PaymentStatus.BlocksSlot() {
				if conflictErr := r.ensureSlotFree(ctx, tx, *fieldID, date, slot, id); conflictErr != nil {
					return conflictErr
				}
			}

			if reschedErr := entity.Reschedule(date, slot, fieldSnap.HourlyRateCents, now); reschedErr != nil {
				return errs.Mark(reschedErr, ErrReservationValidation)
			}
		}

		return tx.Reservations().Update(ctx, tx.DB(), entity)
	})
	if err != nil {
		return nil, mapReservationWriteErr(err)
	}

	return r.readAfterWrite(ctx, id)
}

func (r *reservationCommandsImpl) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status string) (*queries.ReservationView, error) {
	newStatus := reservation.PaymentStatus(status)
	if !newStatus.IsValid() {
		return nil, ErrInvalidPaymentStatus
	}

	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, readErr := tx.Reads().ReservationByID(ctx, id)
		if readErr != nil {
			if infra.IsKind(readErr, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return errs.Mark(readErr, ErrDatabaseOperationFailed)
		}

		// Reviving a cancelled booking re-occupies the slot, so it needs the
		// same conflict check as a fresh booking.
		if !snap.PaymentStatus.BlocksSlot() && newStatus.BlocksSlot() && snap.FieldID != nil {
			if conflictErr := r.ensureSlotFree(ctx, tx, *snap.FieldID, snap.Date, snap.Slot, id); conflictErr != nil {
				return conflictErr
			}
		}

		return tx.Reservations().UpdatePaymentStatus(ctx, tx.DB(), id, newStatus, r.clock.Now())
	})
	if err != nil {
		return nil, mapReservationWriteErr(err)
	}

	return r.readAfterWrite(ctx, id)
}

func (r *reservationCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Reservations().Delete(ctx, tx.DB(), id)
	})
	if err != nil {
		return mapReservationWriteErr(err)
	}

	r.cache.AfterReservationWrite(ctx, queries.ReservationCacheDelta{DeletedID: id})
	return nil
}

func (r *reservationCommandsImpl) ensureSlotFree(ctx context.Context, tx shared.Tx, fieldID uuid.UUID, date reservation.Date, slot reservation.TimeRange, excludeID uuid.UUID) error {
	colliding, err := tx.Reads().ConflictingSlots(ctx, fieldID, date, slot, excludeID)
	if err != nil {
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
	if len(colliding) > 0 {
		return errs.Mark(&ConflictError{Colliding: colliding}, ErrReservationConflict)
	}
	return nil
}

func (r *reservationCommandsImpl) readAfterWrite(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	view, err := r.views.FindByID(ctx, id)
	if err != nil {
		return nil, errs.Mark(err, ErrDatabaseOperationFailed)
	}
	r.cache.AfterReservationWrite(ctx, queries.ReservationCacheDelta{Upserted: view})
	return view, nil
}

func mapReservationWriteErr(err error) error {
	switch {
	case errors.Is(err, ErrReservationNotFound),
		errors.Is(err, ErrFieldNotFound),
		errors.Is(err, ErrReservationConflict),
		errors.Is(err, ErrReservationValidation),
		errors.Is(err, ErrInvalidPaymentStatus):
		return err
	case infra.IsKind(err, infra.KindNotFound):
		return ErrReservationNotFound
	case infra.IsKind(err, infra.KindConflict):
		// The exclusion constraint caught a concurrent overlap.
		return errs.Mark(err, ErrReservationConflict)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return ErrFieldNotFound
	default:
		return errs.Mark(err, ErrDatabaseOperationFailed)
	}
}

func coalescePtr(override *string, fallback *string) *string {
	if override != nil {
		return override
	}
	return fallback
}
