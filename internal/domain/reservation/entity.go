package reservation

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus   = errors.New("invalid payment status")
	ErrAlreadyCanceled = errors.New("reservation is already cancelled")
)

// FieldSpec is the write-side snapshot of the booked field, enough to price
// the slot without depending on the field aggregate.
type FieldSpec struct {
	ID              uuid.UUID
	Name            string
	HourlyRateCents int64
}

// Reservation is a booked time interval on a field for a named client.
// The field reference may become nil if the field is later deleted; such
// orphaned reservations are tolerated.
type Reservation struct {
	id        uuid.UUID
	fieldID   *uuid.UUID
	client    ClientInfo
	date      Date
	slot      TimeRange
	price     Money
	status    PaymentStatus
	note      Note
	createdBy uuid.UUID
	createdAt time.Time
	updatedAt time.Time
}

func NewReservation(
	fld FieldSpec,
	client ClientInfo,
	date Date,
	slot TimeRange,
	status PaymentStatus,
	note Note,
	createdBy uuid.UUID,
	now time.Time,
) (*Reservation, error) {
	if status == "" {
		status = StatusPending
	}
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	if date.IsZero() {
		return nil, ErrInvalidDate
	}

	fieldID := fld.ID
	return &Reservation{
		id:        uuid.New(),
		fieldID:   &fieldID,
		client:    client,
		date:      date,
		slot:      slot,
		price:     PriceFor(fld.HourlyRateCents, slot),
		status:    status,
		note:      note,
		createdBy: createdBy,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructReservation(
	id uuid.UUID,
	fieldID *uuid.UUID,
	client ClientInfo,
	date Date,
	slot TimeRange,
	price Money,
	status PaymentStatus,
	note Note,
	createdBy uuid.UUID,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		fieldID:   fieldID,
		client:    client,
		date:      date,
		slot:      slot,
		price:     price,
		status:    status,
		note:      note,
		createdBy: createdBy,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Reschedule moves the reservation to a new date/slot and reprices it against
// the field's current hourly rate. Callers must re-run the conflict check.
func (r *Reservation) Reschedule(date Date, slot TimeRange, hourlyRateCents int64, now time.Time) error {
	if date.IsZero() {
		return ErrInvalidDate
	}
	r.date = date
	r.slot = slot
	r.price = PriceFor(hourlyRateCents, slot)
	r.updatedAt = now
	return nil
}

func (r *Reservation) UpdateClient(client ClientInfo, now time.Time) {
	r.client = client
	r.updatedAt = now
}

func (r *Reservation) UpdateNote(note Note, now time.Time) {
	r.note = note
	r.updatedAt = now
}

func (r *Reservation) SetPaymentStatus(status PaymentStatus, now time.Time) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	r.status = status
	r.updatedAt = now
	return nil
}

func (r *Reservation) Cancel(now time.Time) error {
	if r.status == StatusCancelled {
		return ErrAlreadyCanceled
	}
	r.status = StatusCancelled
	r.updatedAt = now
	return nil
}

func (r *Reservation) IsCancelled() bool {
	return r.status == StatusCancelled
}

// BlocksSlot reports whether this reservation occupies its interval for
// conflict purposes.
func (r *Reservation) BlocksSlot() bool {
	return r.status.BlocksSlot()
}

func (r *Reservation) ID() uuid.UUID         { return r.id }
func (r *Reservation) FieldID() *uuid.UUID   { return r.fieldID }
func (r *Reservation) Client() ClientInfo    { return r.client }
func (r *Reservation) Date() Date            { return r.date }
func (r *Reservation) Slot() TimeRange       { return r.slot }
func (r *Reservation) Price() Money          { return r.price }
func (r *Reservation) Status() PaymentStatus { return r.status }
func (r *Reservation) Note() Note            { return r.note }
func (r *Reservation) CreatedBy() uuid.UUID  { return r.createdBy }
func (r *Reservation) CreatedAt() time.Time  { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time  { return r.updatedAt }
