package reservation

import (
	"sort"

	"github.com/google/uuid"
)

// BookedSlot is one occupied interval on a field's daily schedule.
type BookedSlot struct {
	ReservationID uuid.UUID
	ClientName    string
	Range         TimeRange
}

// DaySchedule is the set of occupied slots for one field on one date,
// ordered by start time. It must be built from non-cancelled reservations
// only; cancelled rows never belong here.
type DaySchedule struct {
	fieldID uuid.UUID
	date    Date
	slots   []BookedSlot
}

func NewDaySchedule(fieldID uuid.UUID, date Date, slots []BookedSlot) *DaySchedule {
	sorted := make([]BookedSlot, len(slots))
	copy(sorted, slots)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Range.Start().Before(sorted[j].Range.Start())
	})
	return &DaySchedule{fieldID: fieldID, date: date, slots: sorted}
}

func (s *DaySchedule) FieldID() uuid.UUID {
	return s.fieldID
}

func (s *DaySchedule) Date() Date {
	return s.date
}

// OccupiedSlots returns the booked intervals ordered by start time ascending.
func (s *DaySchedule) OccupiedSlots() []BookedSlot {
	out := make([]BookedSlot, len(s.slots))
	copy(out, s.slots)
	return out
}

// Conflicts returns every booked slot overlapping the candidate range.
// excludeID skips the reservation being updated so a record never conflicts
// with itself.
func (s *DaySchedule) Conflicts(candidate TimeRange, excludeID uuid.UUID) []BookedSlot {
	var hits []BookedSlot
	for _, slot := range s.slots {
		if excludeID != uuid.Nil && slot.ReservationID == excludeID {
			continue
		}
		if slot.Range.Overlaps(candidate) {
			hits = append(hits, slot)
		}
	}
	return hits
}

func (s *DaySchedule) IsAvailable(candidate TimeRange, excludeID uuid.UUID) bool {
	return len(s.Conflicts(candidate, excludeID)) == 0
}

// FreeSlots derives the gaps between booked slots within [open,close).
// Overlapping or back-to-back bookings merge into a single occupied block.
func (s *DaySchedule) FreeSlots(open, close TimeOfDay) []TimeRange {
	if !open.Before(close) {
		return nil
	}

	var free []TimeRange
	cursor := open
	for _, slot := range s.slots {
		start := slot.Range.Start()
		end := slot.Range.End()
		if end.Minutes() <= cursor.Minutes() || start.Minutes() >= close.Minutes() {
			continue
		}
		if cursor.Minutes() < start.Minutes() {
			if gap, err := NewTimeRange(cursor, start); err == nil {
				free = append(free, gap)
			}
		}
		if end.Minutes() > cursor.Minutes() {
			cursor = end
		}
	}
	if cursor.Minutes() < close.Minutes() {
		if gap, err := NewTimeRange(cursor, close); err == nil {
			free = append(free, gap)
		}
	}
	return free
}
