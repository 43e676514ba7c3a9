package writerepo

import (
	"context"
	"time"

	"canchacontrol/internal/domain/reservation"
	"canchacontrol/internal/infra"
	"canchacontrol/internal/infra/db"
	"canchacontrol/internal/pkg/pgconv"
	"canchacontrol/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationRepository struct{}

func NewReservationRepository() shared.ReservationRepository {
	return &ReservationRepository{}
}

func (r *ReservationRepository) Create(ctx context.Context, tx db.DBTX, res *reservation.Reservation) (uuid.UUID, error) {
	_, err := tx.Exec(ctx,
		`INSERT INTO reservations (id, field_id, client_name, client_phone, client_email,
		                           reservation_date, start_min, end_min, total_price_cents,
		                           payment_status, note, created_by, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		res.ID(), pgconv.UUIDPtrToPgtype(res.FieldID()),
		res.Client().Name(), pgconv.StringPtrToPgtype(res.Client().Phone()), pgconv.StringPtrToPgtype(res.Client().Email()),
		res.Date().String(), res.Slot().Start().Minutes(), res.Slot().End().Minutes(), res.Price().Cents(),
		res.Status().String(), noteToPgtext(res.Note()), res.CreatedBy(), res.CreatedAt(), res.UpdatedAt(),
	)
	if err != nil {
		return uuid.Nil, wrapWriteErr("failed to create reservation", err)
	}
	return res.ID(), nil
}

func (r *ReservationRepository) Update(ctx context.Context, tx db.DBTX, res *reservation.Reservation) error {
	tag, err := tx.Exec(ctx,
		`UPDATE reservations
		    SET field_id = $2, client_name = $3, client_phone = $4, client_email = $5,
		        reservation_date = $6, start_min = $7, end_min = $8,
		        total_price_cents = $9, payment_status = $10, note = $11, updated_at = $12
		  WHERE id = $1`,
		res.ID(), pgconv.UUIDPtrToPgtype(res.FieldID()),
		res.Client().Name(), pgconv.StringPtrToPgtype(res.Client().Phone()), pgconv.StringPtrToPgtype(res.Client().Email()),
		res.Date().String(), res.Slot().Start().Minutes(), res.Slot().End().Minutes(),
		res.Price().Cents(), res.Status().String(), noteToPgtext(res.Note()), res.UpdatedAt(),
	)
	if err != nil {
		return wrapWriteErr("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) UpdatePaymentStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status reservation.PaymentStatus, now time.Time) error {
	tag, err := tx.Exec(ctx,
		`UPDATE reservations SET payment_status = $2, updated_at = $3 WHERE id = $1`,
		id, status.String(), now,
	)
	if err != nil {
		return wrapWriteErr("failed to update payment status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error {
	tag, err := tx.Exec(ctx, `DELETE FROM reservations WHERE id = $1`, id)
	if err != nil {
		return wrapWriteErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func noteToPgtext(n reservation.Note) any {
	if n.IsEmpty() {
		return nil
	}
	return n.String()
}
