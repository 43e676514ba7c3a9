//go:build unit || e2e

package builder

import (
	"time"

	domreservation "canchacontrol/internal/domain/reservation"
	reqdto "canchacontrol/internal/handler/dto/request"
	"canchacontrol/internal/usecase/queries"
	"canchacontrol/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationBuilder struct {
	ID              uuid.UUID
	FieldID         uuid.UUID
	FieldName       string
	HourlyRateCents int64
	ClientName      string
	ClientPhone     *string
	ClientEmail     *string
	Date            string
	StartTime       string
	EndTime         string
	PaymentStatus   string
	Note            string
	CreatedBy       uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewReservationBuilder() *ReservationBuilder {
	now := time.Now()
	phone := "+54 11 5555-0101"
	return &ReservationBuilder{
		ID:              uuid.New(),
		FieldID:         uuid.New(),
		FieldName:       "Cancha Central",
		HourlyRateCents: 250000,
		ClientName:      "Juan Perez",
		ClientPhone:     &phone,
		Date:            "2026-09-15",
		StartTime:       "18:00",
		EndTime:         "19:30",
		PaymentStatus:   "pending",
		Note:            "",
		CreatedBy:       uuid.New(),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (r *ReservationBuilder) With(mutate func(*ReservationBuilder)) *ReservationBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *ReservationBuilder) BuildDomain() (*domreservation.Reservation, error) {
	client, err := domreservation.NewClientInfo(r.ClientName, r.ClientPhone, r.ClientEmail)
	if err != nil {
		return nil, err
	}
	date, err := domreservation.ParseDate(r.Date)
	if err != nil {
		return nil, err
	}
	slot, err := domreservation.ParseTimeRange(r.StartTime, r.EndTime)
	if err != nil {
		return nil, err
	}
	spec := domreservation.FieldSpec{
		ID:              r.FieldID,
		Name:            r.FieldName,
		HourlyRateCents: r.HourlyRateCents,
	}
	return domreservation.NewReservation(
		spec, client, date, slot,
		domreservation.PaymentStatus(r.PaymentStatus),
		domreservation.NewNote(r.Note),
		r.CreatedBy, r.CreatedAt,
	)
}

func (r *ReservationBuilder) BuildView() *queries.ReservationView {
	fieldID := r.FieldID
	fieldName := r.FieldName
	view := &queries.ReservationView{
		ID:              r.ID,
		FieldID:         &fieldID,
		FieldName:       &fieldName,
		ClientName:      r.ClientName,
		ClientPhone:     r.ClientPhone,
		ClientEmail:     r.ClientEmail,
		Date:            r.Date,
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		TotalPriceCents: r.priceCents(),
		PaymentStatus:   r.PaymentStatus,
		CreatedBy:       r.CreatedBy,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
	if r.Note != "" {
		note := r.Note
		view.Note = &note
	}
	return view
}

func (r *ReservationBuilder) BuildSnapshot() *shared.ReservationSnapshot {
	fieldID := r.FieldID
	date, _ := domreservation.ParseDate(r.Date)
	slot, _ := domreservation.ParseTimeRange(r.StartTime, r.EndTime)
	return &shared.ReservationSnapshot{
		ID:            r.ID,
		FieldID:       &fieldID,
		ClientName:    r.ClientName,
		ClientPhone:   r.ClientPhone,
		ClientEmail:   r.ClientEmail,
		Date:          date,
		Slot:          slot,
		PriceCents:    r.priceCents(),
		PaymentStatus: domreservation.PaymentStatus(r.PaymentStatus),
		Note:          r.Note,
		CreatedBy:     r.CreatedBy,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func (r *ReservationBuilder) BuildBookedSlot() domreservation.BookedSlot {
	slot, _ := domreservation.ParseTimeRange(r.StartTime, r.EndTime)
	return domreservation.BookedSlot{
		ReservationID: r.ID,
		ClientName:    r.ClientName,
		Range:         slot,
	}
}

func (r *ReservationBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	req := reqdto.CreateReservationRequest{
		FieldID:     r.FieldID,
		ClientName:  r.ClientName,
		ClientPhone: r.ClientPhone,
		ClientEmail: r.ClientEmail,
		Date:        r.Date,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
	}
	if r.PaymentStatus != "" {
		status := r.PaymentStatus
		req.PaymentStatus = &status
	}
	if r.Note != "" {
		note := r.Note
		req.Note = &note
	}
	return req
}

func (r *ReservationBuilder) BuildUpdateRequestDTO() reqdto.UpdateReservationRequest {
	fieldID := r.FieldID
	clientName := r.ClientName
	date := r.Date
	start := r.StartTime
	end := r.EndTime
	return reqdto.UpdateReservationRequest{
		FieldID:     &fieldID,
		ClientName:  &clientName,
		ClientPhone: r.ClientPhone,
		ClientEmail: r.ClientEmail,
		Date:        &date,
		StartTime:   &start,
		EndTime:     &end,
	}
}

func (r *ReservationBuilder) priceCents() int64 {
	slot, err := domreservation.ParseTimeRange(r.StartTime, r.EndTime)
	if err != nil {
		return 0
	}
	return domreservation.PriceFor(r.HourlyRateCents, slot).Cents()
}
