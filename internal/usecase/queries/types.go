package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type FieldView struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Type            string    `json:"type"`
	HourlyRateCents int64     `json:"hourly_rate_cents"`
	Capacity        int       `json:"capacity"`
	Indoor          bool      `json:"indoor"`
	CreatedBy       uuid.UUID `json:"created_by"`
	UpdatedBy       uuid.UUID `json:"updated_by"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type ReservationView struct {
	ID              uuid.UUID  `json:"id"`
	FieldID         *uuid.UUID `json:"field_id,omitempty"`
	FieldName       *string    `json:"field_name,omitempty"`
	ClientName      string     `json:"client_name"`
	ClientPhone     *string    `json:"client_phone,omitempty"`
	ClientEmail     *string    `json:"client_email,omitempty"`
	Date            string     `json:"date"`
	StartTime       string     `json:"start_time"`
	EndTime         string     `json:"end_time"`
	TotalPriceCents int64      `json:"total_price_cents"`
	PaymentStatus   string     `json:"payment_status"`
	Note            *string    `json:"note,omitempty"`
	CreatedBy       uuid.UUID  `json:"created_by"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

type AuthorizedUserView struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"is_active"`
	LastLogin *time.Time `json:"last_login,omitempty"`
}

// UserCredentialView is the login read: the authorized view plus the stored
// hash for verification. It never leaves the auth use case.
type UserCredentialView struct {
	User         AuthorizedUserView
	PasswordHash string
}

// OccupiedSlot is one booked interval on a field/date schedule view.
type OccupiedSlot struct {
	ReservationID uuid.UUID `json:"reservation_id"`
	ClientName    string    `json:"client_name"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
}

type FreeSlot struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type AvailabilityView struct {
	FieldID  uuid.UUID      `json:"field_id"`
	Date     string         `json:"date"`
	Occupied []OccupiedSlot `json:"occupied"`
	Free     []FreeSlot     `json:"free"`
}

// ReservationStatsView aggregates a date range for the revenue report.
type ReservationStatsView struct {
	From                string `json:"from"`
	To                  string `json:"to"`
	Total               int    `json:"total"`
	Pending             int    `json:"pending"`
	Partial             int    `json:"partial"`
	Completed           int    `json:"completed"`
	Cancelled           int    `json:"cancelled"`
	TotalRevenueCents   int64  `json:"total_revenue_cents"`
	PendingRevenueCents int64  `json:"pending_revenue_cents"`
}

// ReservationFilter narrows reservation list reads. Date bounds are
// inclusive; SameDayOrder switches ordering from created-at desc (dashboard
// lists) to start-time asc (schedule views).
type ReservationFilter struct {
	FieldID       *uuid.UUID
	Date          *string
	From          *string
	To            *string
	PaymentStatus *string
	SameDayOrder  bool
	Limit         int32
}

func (f ReservationFilter) IsEmpty() bool {
	return f.FieldID == nil && f.Date == nil && f.From == nil && f.To == nil &&
		f.PaymentStatus == nil && !f.SameDayOrder && f.Limit == 0
}

// DashboardCache is the local snapshot of the field and reservation lists.
// It is display-only state: conflict checks and command reads never consult
// it, and every read of it may be stale by at most one reconcile round trip.
type DashboardCache interface {
	ReadFields(ctx context.Context) ([]FieldView, error)
	ReadReservations(ctx context.Context) ([]ReservationView, error)
	ApplyFieldDelta(delta FieldCacheDelta)
	ApplyReservationDelta(delta ReservationCacheDelta)
	ReconcileFields(ctx context.Context) error
	ReconcileReservations(ctx context.Context) error
	// AfterFieldWrite / AfterReservationWrite apply the configured
	// convergence strategy (optimistic patch or refetch-only).
	AfterFieldWrite(ctx context.Context, delta FieldCacheDelta)
	AfterReservationWrite(ctx context.Context, delta ReservationCacheDelta)
	InvalidateAll()
}

type FieldCacheDelta struct {
	Upserted  *FieldView
	DeletedID uuid.UUID
}

type ReservationCacheDelta struct {
	Upserted  *ReservationView
	DeletedID uuid.UUID
}
