package queries

import (
	"context"

	"canchacontrol/internal/domain/reservation"
	"canchacontrol/internal/infra"
	"canchacontrol/internal/pkg/errs"

	"github.com/google/uuid"
)

// Business hours bound the free-slot derivation. Bookings outside these hours
// still show up as occupied.
const (
	openingMinutes = 8 * 60  // 08:00
	closingMinutes = 23 * 60 // 23:00
)

var ErrInvalidAvailabilityDate = errs.New("invalid availability date")

type AvailabilityQueries interface {
	// GetAvailability returns the occupied and free slots for a field on one
	// date, straight from the authoritative store.
	GetAvailability(ctx context.Context, fieldID uuid.UUID, date string) (*AvailabilityView, error)
}

type availabilityQueriesImpl struct {
	fields       FieldViewRepo
	reservations ReservationViewRepo
}

func NewAvailabilityQueries(fields FieldViewRepo, reservations ReservationViewRepo) AvailabilityQueries {
	return &availabilityQueriesImpl{fields: fields, reservations: reservations}
}

func (q *availabilityQueriesImpl) GetAvailability(ctx context.Context, fieldID uuid.UUID, date string) (*AvailabilityView, error) {
	day, err := reservation.ParseDate(date)
	if err != nil {
		return nil, ErrInvalidAvailabilityDate
	}

	if _, err := q.fields.FindByID(ctx, fieldID); err != nil {
		return nil, mapFieldErr(err)
	}

	booked, err := q.reservations.OccupiedSlots(ctx, fieldID, day)
	if err != nil {
		return nil, errs.Mark(err, ErrQueryFailed)
	}

	schedule := reservation.NewDaySchedule(fieldID, day, booked)

	open, _ := reservation.TimeOfDayFromMinutes(openingMinutes)
	close, _ := reservation.TimeOfDayFromMinutes(closingMinutes)

	view := &AvailabilityView{
		FieldID:  fieldID,
		Date:     day.String(),
		Occupied: []OccupiedSlot{},
		Free:     []FreeSlot{},
	}
	for _, slot := range schedule.OccupiedSlots() {
		view.Occupied = append(view.Occupied, OccupiedSlot{
			ReservationID: slot.ReservationID,
			ClientName:    slot.ClientName,
			StartTime:     slot.Range.Start().String(),
			EndTime:       slot.Range.End().String(),
		})
	}
	for _, gap := range schedule.FreeSlots(open, close) {
		view.Free = append(view.Free, FreeSlot{
			StartTime: gap.Start().String(),
			EndTime:   gap.End().String(),
		})
	}
	return view, nil
}

func mapFieldErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return ErrFieldNotFound
	}
	return errs.Mark(err, ErrQueryFailed)
}
