package reservation

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidTimeOfDay  = errors.New("invalid time of day")
	ErrInvalidTimeRange  = errors.New("start time must be before end time")
	ErrInvalidDate       = errors.New("invalid reservation date")
	ErrClientNameMissing = errors.New("client name is required")
	ErrNegativePrice     = errors.New("price cannot be negative")
)

const minutesPerDay = 24 * 60

// TimeOfDay is a wall-clock time within a single day, stored as minutes from
// midnight. Reservations never span midnight, so day rollover is out of scope.
type TimeOfDay struct {
	minutes int
}

func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: hour*60 + minute}, nil
}

// ParseTimeOfDay accepts "HH:MM" (and tolerates "HH:MM:SS" as stored by the
// backend time columns).
func ParseTimeOfDay(value string) (TimeOfDay, error) {
	parts := strings.SplitN(strings.TrimSpace(value), ":", 3)
	if len(parts) < 2 {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	var hour, minute int
	if _, err := fmt.Sscanf(parts[0]+":"+parts[1], "%d:%d", &hour, &minute); err != nil {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return NewTimeOfDay(hour, minute)
}

func TimeOfDayFromMinutes(minutes int) (TimeOfDay, error) {
	if minutes < 0 || minutes >= minutesPerDay {
		return TimeOfDay{}, ErrInvalidTimeOfDay
	}
	return TimeOfDay{minutes: minutes}, nil
}

func (t TimeOfDay) Minutes() int {
	return t.minutes
}

func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t.minutes < other.minutes
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.minutes/60, t.minutes%60)
}

// TimeRange is a half-open interval [start,end) of wall-clock times within
// one day. Zero-length ranges are invalid input.
type TimeRange struct {
	start TimeOfDay
	end   TimeOfDay
}

func NewTimeRange(start, end TimeOfDay) (TimeRange, error) {
	if !start.Before(end) {
		return TimeRange{}, ErrInvalidTimeRange
	}
	return TimeRange{start: start, end: end}, nil
}

func ParseTimeRange(start, end string) (TimeRange, error) {
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return TimeRange{}, err
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return TimeRange{}, err
	}
	return NewTimeRange(s, e)
}

func (r TimeRange) Start() TimeOfDay {
	return r.start
}

func (r TimeRange) End() TimeOfDay {
	return r.end
}

// Overlaps implements half-open interval intersection: touching ranges
// (aEnd == bStart) do not overlap.
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.start.minutes < other.end.minutes && other.start.minutes < r.end.minutes
}

func (r TimeRange) Duration() time.Duration {
	return time.Duration(r.end.minutes-r.start.minutes) * time.Minute
}

func (r TimeRange) String() string {
	return r.start.String() + "-" + r.end.String()
}

// Date is a civil date with no timezone attached; the backend stores it as a
// plain date column.
type Date struct {
	year  int
	month time.Month
	day   int
}

const dateLayout = "2006-01-02"

func NewDate(year int, month time.Month, day int) Date {
	return Date{year: year, month: month, day: day}
}

func ParseDate(value string) (Date, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(value))
	if err != nil {
		return Date{}, ErrInvalidDate
	}
	return Date{year: t.Year(), month: t.Month(), day: t.Day()}, nil
}

func DateOf(t time.Time) Date {
	return Date{year: t.Year(), month: t.Month(), day: t.Day()}
}

func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
}

func (d Date) String() string {
	return d.Time().Format(dateLayout)
}

func (d Date) Equal(other Date) bool {
	return d == other
}

func (d Date) IsZero() bool {
	return d == Date{}
}

// ClientInfo carries the booking contact. Only the name is required.
type ClientInfo struct {
	name  string
	phone *string
	email *string
}

func NewClientInfo(name string, phone, email *string) (ClientInfo, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return ClientInfo{}, ErrClientNameMissing
	}
	return ClientInfo{name: name, phone: trimPtr(phone), email: trimPtr(email)}, nil
}

func (c ClientInfo) Name() string   { return c.name }
func (c ClientInfo) Phone() *string { return c.phone }
func (c ClientInfo) Email() *string { return c.email }

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

type Money struct {
	cents int64
}

func NewMoney(cents int64) (Money, error) {
	if cents < 0 {
		return Money{}, ErrNegativePrice
	}
	return Money{cents: cents}, nil
}

func (m Money) Cents() int64 {
	return m.cents
}

// PriceFor computes hourlyRate * duration, rounded to whole cents.
func PriceFor(hourlyRateCents int64, slot TimeRange) Money {
	minutes := int64(slot.Duration() / time.Minute)
	return Money{cents: hourlyRateCents * minutes / 60}
}

type Note struct {
	value string
}

func NewNote(value string) Note {
	return Note{value: strings.TrimSpace(value)}
}

func (n Note) String() string {
	return n.value
}

func (n Note) IsEmpty() bool {
	return n.value == ""
}
