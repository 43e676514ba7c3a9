package response

import (
	"time"

	"canchacontrol/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID              uuid.UUID  `json:"id"`
	FieldID         *uuid.UUID `json:"fieldId,omitempty"`
	FieldName       *string    `json:"fieldName,omitempty"`
	ClientName      string     `json:"clientName"`
	ClientPhone     *string    `json:"clientPhone,omitempty"`
	ClientEmail     *string    `json:"clientEmail,omitempty"`
	Date            string     `json:"date"`
	StartTime       string     `json:"startTime"`
	EndTime         string     `json:"endTime"`
	TotalPriceCents int64      `json:"totalPriceCents"`
	PaymentStatus   string     `json:"paymentStatus"`
	Note            *string    `json:"note,omitempty"`
	CreatedAt       time.Time  `json:"createdAt"`
	UpdatedAt       time.Time  `json:"updatedAt"`
}

func FromReservationView(rm *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:              rm.ID,
		FieldID:         rm.FieldID,
		FieldName:       rm.FieldName,
		ClientName:      rm.ClientName,
		ClientPhone:     rm.ClientPhone,
		ClientEmail:     rm.ClientEmail,
		Date:            rm.Date,
		StartTime:       rm.StartTime,
		EndTime:         rm.EndTime,
		TotalPriceCents: rm.TotalPriceCents,
		PaymentStatus:   rm.PaymentStatus,
		Note:            rm.Note,
		CreatedAt:       rm.CreatedAt,
		UpdatedAt:       rm.UpdatedAt,
	}
}

func FromReservationViews(rms []queries.ReservationView) []*ReservationResponse {
	out := make([]*ReservationResponse, len(rms))
	for i := range rms {
		out[i] = FromReservationView(&rms[i])
	}
	return out
}

type ReservationStatsResponse struct {
	From                string `json:"from"`
	To                  string `json:"to"`
	Total               int    `json:"total"`
	Pending             int    `json:"pending"`
	Partial             int    `json:"partial"`
	Completed           int    `json:"completed"`
	Cancelled           int    `json:"cancelled"`
	TotalRevenueCents   int64  `json:"totalRevenueCents"`
	PendingRevenueCents int64  `json:"pendingRevenueCents"`
}

func FromReservationStatsView(rm *queries.ReservationStatsView) *ReservationStatsResponse {
	return &ReservationStatsResponse{
		From:                rm.From,
		To:                  rm.To,
		Total:               rm.Total,
		Pending:             rm.Pending,
		Partial:             rm.Partial,
		Completed:           rm.Completed,
		Cancelled:           rm.Cancelled,
		TotalRevenueCents:   rm.TotalRevenueCents,
		PendingRevenueCents: rm.PendingRevenueCents,
	}
}
