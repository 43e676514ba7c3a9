//go:build unit || e2e

package builder

import (
	"time"

	domfield "canchacontrol/internal/domain/field"
	reqdto "canchacontrol/internal/handler/dto/request"
	"canchacontrol/internal/usecase/queries"
	"canchacontrol/internal/usecase/shared"

	"github.com/google/uuid"
)

type FieldBuilder struct {
	ID              uuid.UUID
	Name            string
	Type            string
	HourlyRateCents int64
	Capacity        int
	Indoor          bool
	CreatedBy       uuid.UUID
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func NewFieldBuilder() *FieldBuilder {
	now := time.Now()
	return &FieldBuilder{
		ID:              uuid.New(),
		Name:            "Cancha Central",
		Type:            "futbol5",
		HourlyRateCents: 250000,
		Capacity:        10,
		Indoor:          false,
		CreatedBy:       uuid.New(),
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func (f *FieldBuilder) With(mutate func(*FieldBuilder)) *FieldBuilder {
	mutate(f)
	return f
}

// Build methods
func (f *FieldBuilder) BuildDomain() (*domfield.Field, error) {
	return domfield.NewField(f.Name, f.Type, f.HourlyRateCents, f.Capacity, f.Indoor, f.CreatedBy, f.CreatedAt)
}

func (f *FieldBuilder) BuildView() *queries.FieldView {
	return &queries.FieldView{
		ID:              f.ID,
		Name:            f.Name,
		Type:            f.Type,
		HourlyRateCents: f.HourlyRateCents,
		Capacity:        f.Capacity,
		Indoor:          f.Indoor,
		CreatedBy:       f.CreatedBy,
		UpdatedBy:       f.CreatedBy,
		CreatedAt:       f.CreatedAt,
		UpdatedAt:       f.UpdatedAt,
	}
}

func (f *FieldBuilder) BuildSnapshot() *shared.FieldSnapshot {
	return &shared.FieldSnapshot{
		ID:              f.ID,
		Name:            f.Name,
		Type:            f.Type,
		HourlyRateCents: f.HourlyRateCents,
		Capacity:        f.Capacity,
		Indoor:          f.Indoor,
		CreatedBy:       f.CreatedBy,
		CreatedAt:       f.CreatedAt,
	}
}

func (f *FieldBuilder) BuildCreateRequestDTO() reqdto.CreateFieldRequest {
	return reqdto.CreateFieldRequest{
		Name:            f.Name,
		Type:            f.Type,
		HourlyRateCents: f.HourlyRateCents,
		Capacity:        f.Capacity,
		Indoor:          f.Indoor,
	}
}

func (f *FieldBuilder) BuildUpdateRequestDTO() reqdto.UpdateFieldRequest {
	name := f.Name
	fieldType := f.Type
	rate := f.HourlyRateCents
	capacity := f.Capacity
	indoor := f.Indoor
	return reqdto.UpdateFieldRequest{
		Name:            &name,
		Type:            &fieldType,
		HourlyRateCents: &rate,
		Capacity:        &capacity,
		Indoor:          &indoor,
	}
}
