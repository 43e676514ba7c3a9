package response

import (
	"time"

	"canchacontrol/internal/usecase/queries"

	"github.com/google/uuid"
)

type FieldResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Type            string    `json:"type"`
	HourlyRateCents int64     `json:"hourlyRateCents"`
	Capacity        int       `json:"capacity"`
	Indoor          bool      `json:"indoor"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func FromFieldView(rm *queries.FieldView) *FieldResponse {
	return &FieldResponse{
		ID:              rm.ID,
		Name:            rm.Name,
		Type:            rm.Type,
		HourlyRateCents: rm.HourlyRateCents,
		Capacity:        rm.Capacity,
		Indoor:          rm.Indoor,
		CreatedAt:       rm.CreatedAt,
		UpdatedAt:       rm.UpdatedAt,
	}
}

func FromFieldViews(rms []queries.FieldView) []*FieldResponse {
	out := make([]*FieldResponse, len(rms))
	for i := range rms {
		out[i] = FromFieldView(&rms[i])
	}
	return out
}

type AvailabilityResponse struct {
	FieldID  uuid.UUID              `json:"fieldId"`
	Date     string                 `json:"date"`
	Occupied []OccupiedSlotResponse `json:"occupied"`
	Free     []FreeSlotResponse     `json:"free"`
}

type OccupiedSlotResponse struct {
	ReservationID uuid.UUID `json:"reservationId"`
	ClientName    string    `json:"clientName"`
	StartTime     string    `json:"startTime"`
	EndTime       string    `json:"endTime"`
}

type FreeSlotResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

func FromAvailabilityView(rm *queries.AvailabilityView) *AvailabilityResponse {
	resp := &AvailabilityResponse{
		FieldID:  rm.FieldID,
		Date:     rm.Date,
		Occupied: make([]OccupiedSlotResponse, len(rm.Occupied)),
		Free:     make([]FreeSlotResponse, len(rm.Free)),
	}
	for i, o := range rm.Occupied {
		resp.Occupied[i] = OccupiedSlotResponse{
			ReservationID: o.ReservationID,
			ClientName:    o.ClientName,
			StartTime:     o.StartTime,
			EndTime:       o.EndTime,
		}
	}
	for i, f := range rm.Free {
		resp.Free[i] = FreeSlotResponse{StartTime: f.StartTime, EndTime: f.EndTime}
	}
	return resp
}
