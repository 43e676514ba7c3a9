package field

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmptyName       = errors.New("field name cannot be empty")
	ErrEmptyType       = errors.New("field type cannot be empty")
	ErrNegativePrice   = errors.New("hourly price cannot be negative")
	ErrInvalidCapacity = errors.New("capacity must be positive")
)

// Field is a rentable sports surface. The id is immutable once assigned;
// hourly price is stored in cents and must be non-negative.
type Field struct {
	id              uuid.UUID
	name            string
	fieldType       string
	hourlyRateCents int64
	capacity        int
	indoor          bool
	createdBy       uuid.UUID
	updatedBy       uuid.UUID
	createdAt       time.Time
	updatedAt       time.Time
}

func NewField(name, fieldType string, hourlyRateCents int64, capacity int, indoor bool, createdBy uuid.UUID, now time.Time) (*Field, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	fieldType = strings.TrimSpace(fieldType)
	if fieldType == "" {
		return nil, ErrEmptyType
	}
	if hourlyRateCents < 0 {
		return nil, ErrNegativePrice
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	return &Field{
		id:              uuid.New(),
		name:            name,
		fieldType:       fieldType,
		hourlyRateCents: hourlyRateCents,
		capacity:        capacity,
		indoor:          indoor,
		createdBy:       createdBy,
		updatedBy:       createdBy,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructField(
	id uuid.UUID,
	name, fieldType string,
	hourlyRateCents int64,
	capacity int,
	indoor bool,
	createdBy, updatedBy uuid.UUID,
	createdAt, updatedAt time.Time,
) *Field {
	return &Field{
		id:              id,
		name:            name,
		fieldType:       fieldType,
		hourlyRateCents: hourlyRateCents,
		capacity:        capacity,
		indoor:          indoor,
		createdBy:       createdBy,
		updatedBy:       updatedBy,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// UpdateDetails applies an admin edit. The id and creation metadata never change.
func (f *Field) UpdateDetails(name, fieldType string, hourlyRateCents int64, capacity int, indoor bool, updatedBy uuid.UUID, now time.Time) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}
	fieldType = strings.TrimSpace(fieldType)
	if fieldType == "" {
		return ErrEmptyType
	}
	if hourlyRateCents < 0 {
		return ErrNegativePrice
	}
	if capacity <= 0 {
		return ErrInvalidCapacity
	}

	f.name = name
	f.fieldType = fieldType
	f.hourlyRateCents = hourlyRateCents
	f.capacity = capacity
	f.indoor = indoor
	f.updatedBy = updatedBy
	f.updatedAt = now
	return nil
}

func (f *Field) ID() uuid.UUID          { return f.id }
func (f *Field) Name() string           { return f.name }
func (f *Field) Type() string           { return f.fieldType }
func (f *Field) HourlyRateCents() int64 { return f.hourlyRateCents }
func (f *Field) Capacity() int          { return f.capacity }
func (f *Field) Indoor() bool           { return f.indoor }
func (f *Field) CreatedBy() uuid.UUID   { return f.createdBy }
func (f *Field) UpdatedBy() uuid.UUID   { return f.updatedBy }
func (f *Field) CreatedAt() time.Time   { return f.createdAt }
func (f *Field) UpdatedAt() time.Time   { return f.updatedAt }
