package shared

import (
	"context"
	"time"

	"canchacontrol/internal/domain/field"
	"canchacontrol/internal/domain/reservation"
	"canchacontrol/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// Reads: Direct access to command reads outside transactions
	Reads() CommandReads
}

type Tx interface {
	Fields() FieldRepository
	Reservations() ReservationRepository
	Users() UserRepository
	Reads() CommandReads
	DB() db.DBTX
}

// CommandReads are authoritative-store reads used by the write side. They
// bypass any display cache by construction.
type CommandReads interface {
	FieldByID(ctx context.Context, id uuid.UUID) (*FieldSnapshot, error)
	ReservationByID(ctx context.Context, id uuid.UUID) (*ReservationSnapshot, error)
	// ConflictingSlots returns the non-cancelled reservations on (fieldID,
	// date) whose [start,end) intervals overlap slot, excluding excludeID
	// (uuid.Nil to exclude nothing).
	ConflictingSlots(ctx context.Context, fieldID uuid.UUID, date reservation.Date, slot reservation.TimeRange, excludeID uuid.UUID) ([]ConflictingSlot, error)
}

// Write-side snapshots prevent dependency on read-side query types
type FieldSnapshot struct {
	ID              uuid.UUID
	Name            string
	Type            string
	HourlyRateCents int64
	Capacity        int
	Indoor          bool
	CreatedBy       uuid.UUID
	CreatedAt       time.Time
}

type ReservationSnapshot struct {
	ID            uuid.UUID
	FieldID       *uuid.UUID
	ClientName    string
	ClientPhone   *string
	ClientEmail   *string
	Date          reservation.Date
	Slot          reservation.TimeRange
	PriceCents    int64
	PaymentStatus reservation.PaymentStatus
	Note          string
	CreatedBy     uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type ConflictingSlot struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	ClientName    string    `json:"client_name"`
	Date          string    `json:"date"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
}

type FieldRepository interface {
	Create(ctx context.Context, tx db.DBTX, f *field.Field) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, f *field.Field) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type ReservationRepository interface {
	Create(ctx context.Context, tx db.DBTX, r *reservation.Reservation) (uuid.UUID, error)
	Update(ctx context.Context, tx db.DBTX, r *reservation.Reservation) error
	UpdatePaymentStatus(ctx context.Context, tx db.DBTX, id uuid.UUID, status reservation.PaymentStatus, now time.Time) error
	Delete(ctx context.Context, tx db.DBTX, id uuid.UUID) error
}

type UserRepository interface {
	UpdateLastLogin(ctx context.Context, tx db.DBTX, userID uuid.UUID) error
}
