package request

type CreateFieldRequest struct {
	Name            string `json:"name" binding:"required"`
	Type            string `json:"type" binding:"required"`
	HourlyRateCents int64  `json:"hourly_rate_cents" binding:"min=0"`
	Capacity        int    `json:"capacity" binding:"required,gt=0"`
	Indoor          bool   `json:"indoor"`
}

// UpdateFieldRequest is a partial update; omitted fields keep their stored
// values.
type UpdateFieldRequest struct {
	Name            *string `json:"name,omitempty"`
	Type            *string `json:"type,omitempty"`
	HourlyRateCents *int64  `json:"hourly_rate_cents,omitempty"`
	Capacity        *int    `json:"capacity,omitempty"`
	Indoor          *bool   `json:"indoor,omitempty"`
}
