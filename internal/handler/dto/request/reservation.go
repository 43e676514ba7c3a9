package request

import (
	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	FieldID       uuid.UUID `json:"field_id" binding:"required"`
	ClientName    string    `json:"client_name" binding:"required"`
	ClientPhone   *string   `json:"client_phone,omitempty"`
	ClientEmail   *string   `json:"client_email,omitempty"`
	Date          string    `json:"date" binding:"required"`
	StartTime     string    `json:"start_time" binding:"required"`
	EndTime       string    `json:"end_time" binding:"required"`
	PaymentStatus *string   `json:"payment_status,omitempty"`
	Note          *string   `json:"note,omitempty"`
}

// UpdateReservationRequest is a partial update. Changing the field, date or
// times re-runs the conflict check against the authoritative store.
type UpdateReservationRequest struct {
	FieldID     *uuid.UUID `json:"field_id,omitempty"`
	ClientName  *string    `json:"client_name,omitempty"`
	ClientPhone *string    `json:"client_phone,omitempty"`
	ClientEmail *string    `json:"client_email,omitempty"`
	Date        *string    `json:"date,omitempty"`
	StartTime   *string    `json:"start_time,omitempty"`
	EndTime     *string    `json:"end_time,omitempty"`
	Note        *string    `json:"note,omitempty"`
}

func (r UpdateReservationRequest) ChangesSchedule() bool {
	return r.FieldID != nil || r.Date != nil || r.StartTime != nil || r.EndTime != nil
}

type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required"`
}
