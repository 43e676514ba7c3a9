//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"canchacontrol/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustTimeOfDay(t *testing.T, hour, minute int) reservation.TimeOfDay {
	t.Helper()
	tod, err := reservation.NewTimeOfDay(hour, minute)
	require.NoError(t, err)
	return tod
}

func mustRange(t *testing.T, start, end string) reservation.TimeRange {
	t.Helper()
	r, err := reservation.ParseTimeRange(start, end)
	require.NoError(t, err)
	return r
}

func TestTimeOfDay(t *testing.T) {
	t.Run("valid boundaries", func(t *testing.T) {
		cases := []struct {
			name         string
			hour, minute int
			wantMinutes  int
		}{
			{name: "midnight", hour: 0, minute: 0, wantMinutes: 0},
			{name: "last minute of day", hour: 23, minute: 59, wantMinutes: 1439},
			{name: "mid afternoon", hour: 14, minute: 30, wantMinutes: 870},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				tod, err := reservation.NewTimeOfDay(c.hour, c.minute)
				require.NoError(t, err)
				assert.Equal(t, c.wantMinutes, tod.Minutes())
			})
		}
	})

	t.Run("invalid components", func(t *testing.T) {
		cases := []struct {
			name         string
			hour, minute int
		}{
			{name: "hour 24", hour: 24, minute: 0},
			{name: "negative hour", hour: -1, minute: 0},
			{name: "minute 60", hour: 10, minute: 60},
			{name: "negative minute", hour: 10, minute: -1},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				_, err := reservation.NewTimeOfDay(c.hour, c.minute)
				require.ErrorIs(t, err, reservation.ErrInvalidTimeOfDay)
			})
		}
	})

	t.Run("parsing", func(t *testing.T) {
		tod, err := reservation.ParseTimeOfDay("09:30")
		require.NoError(t, err)
		assert.Equal(t, 570, tod.Minutes())

		tod, err = reservation.ParseTimeOfDay("18:00:00")
		require.NoError(t, err)
		assert.Equal(t, 1080, tod.Minutes())

		tod, err = reservation.ParseTimeOfDay(" 08:15 ")
		require.NoError(t, err)
		assert.Equal(t, "08:15", tod.String())

		for _, bad := range []string{"", "9", "aa:bb", "25:00", "10:75"} {
			_, err := reservation.ParseTimeOfDay(bad)
			require.ErrorIs(t, err, reservation.ErrInvalidTimeOfDay, "input %q", bad)
		}
	})

	t.Run("string round trip", func(t *testing.T) {
		tod := mustTimeOfDay(t, 7, 5)
		assert.Equal(t, "07:05", tod.String())
	})
}

func TestTimeRangeOverlaps(t *testing.T) {
	cases := []struct {
		name string
		a, b [2]string
		want bool
	}{
		{name: "identical ranges", a: [2]string{"10:00", "11:00"}, b: [2]string{"10:00", "11:00"}, want: true},
		{name: "partial overlap", a: [2]string{"10:00", "11:00"}, b: [2]string{"10:30", "11:30"}, want: true},
		{name: "containment", a: [2]string{"09:00", "12:00"}, b: [2]string{"10:00", "11:00"}, want: true},
		{name: "touching end to start", a: [2]string{"10:00", "11:00"}, b: [2]string{"11:00", "12:00"}, want: false},
		{name: "touching start to end", a: [2]string{"11:00", "12:00"}, b: [2]string{"10:00", "11:00"}, want: false},
		{name: "disjoint", a: [2]string{"08:00", "09:00"}, b: [2]string{"20:00", "21:00"}, want: false},
		{name: "one minute overlap", a: [2]string{"10:00", "11:01"}, b: [2]string{"11:00", "12:00"}, want: true},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := mustRange(t, c.a[0], c.a[1])
			b := mustRange(t, c.b[0], c.b[1])

			assert.Equal(t, c.want, a.Overlaps(b))
			// overlap is symmetric
			assert.Equal(t, c.want, b.Overlaps(a))
		})
	}

	t.Run("range overlaps itself", func(t *testing.T) {
		r := mustRange(t, "10:00", "11:00")
		assert.True(t, r.Overlaps(r))
	})
}

func TestTimeRangeValidation(t *testing.T) {
	t.Run("start must precede end", func(t *testing.T) {
		start := mustTimeOfDay(t, 12, 0)
		end := mustTimeOfDay(t, 11, 0)
		_, err := reservation.NewTimeRange(start, end)
		require.ErrorIs(t, err, reservation.ErrInvalidTimeRange)
	})

	t.Run("zero length range rejected", func(t *testing.T) {
		tod := mustTimeOfDay(t, 12, 0)
		_, err := reservation.NewTimeRange(tod, tod)
		require.ErrorIs(t, err, reservation.ErrInvalidTimeRange)
	})

	t.Run("duration", func(t *testing.T) {
		r := mustRange(t, "18:00", "19:30")
		assert.Equal(t, 90*time.Minute, r.Duration())
	})
}

func TestDate(t *testing.T) {
	t.Run("parse and format", func(t *testing.T) {
		d, err := reservation.ParseDate("2026-09-15")
		require.NoError(t, err)
		assert.Equal(t, "2026-09-15", d.String())
		assert.False(t, d.IsZero())
	})

	t.Run("invalid inputs", func(t *testing.T) {
		for _, bad := range []string{"", "15/09/2026", "2026-13-01", "2026-02-30", "not-a-date"} {
			_, err := reservation.ParseDate(bad)
			require.ErrorIs(t, err, reservation.ErrInvalidDate, "input %q", bad)
		}
	})

	t.Run("equality", func(t *testing.T) {
		a, err := reservation.ParseDate("2026-09-15")
		require.NoError(t, err)
		b := reservation.NewDate(2026, time.September, 15)
		assert.True(t, a.Equal(b))
	})
}

func TestClientInfo(t *testing.T) {
	t.Run("name is required", func(t *testing.T) {
		_, err := reservation.NewClientInfo("", nil, nil)
		require.ErrorIs(t, err, reservation.ErrClientNameMissing)

		_, err = reservation.NewClientInfo("   ", nil, nil)
		require.ErrorIs(t, err, reservation.ErrClientNameMissing)
	})

	t.Run("trims name and contact details", func(t *testing.T) {
		phone := "  +54 11 5555-0101 "
		blank := "   "
		client, err := reservation.NewClientInfo("  Juan Perez ", &phone, &blank)
		require.NoError(t, err)

		assert.Equal(t, "Juan Perez", client.Name())
		require.NotNil(t, client.Phone())
		assert.Equal(t, "+54 11 5555-0101", *client.Phone())
		// blank contact fields collapse to nil
		assert.Nil(t, client.Email())
	})
}

func TestPriceFor(t *testing.T) {
	cases := []struct {
		name      string
		rateCents int64
		start     string
		end       string
		want      int64
	}{
		{name: "exact hour", rateCents: 250000, start: "18:00", end: "19:00", want: 250000},
		{name: "hour and a half", rateCents: 250000, start: "18:00", end: "19:30", want: 375000},
		{name: "half hour", rateCents: 100000, start: "10:00", end: "10:30", want: 50000},
		{name: "odd minutes truncate", rateCents: 10000, start: "10:00", end: "10:01", want: 166},
		{name: "zero rate", rateCents: 0, start: "10:00", end: "12:00", want: 0},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			slot := mustRange(t, c.start, c.end)
			assert.Equal(t, c.want, reservation.PriceFor(c.rateCents, slot).Cents())
		})
	}
}

func TestMoney(t *testing.T) {
	_, err := reservation.NewMoney(-1)
	require.ErrorIs(t, err, reservation.ErrNegativePrice)

	m, err := reservation.NewMoney(375000)
	require.NoError(t, err)
	assert.Equal(t, int64(375000), m.Cents())
}

func TestPaymentStatus(t *testing.T) {
	t.Run("validity", func(t *testing.T) {
		for _, s := range []reservation.PaymentStatus{
			reservation.StatusPending,
			reservation.StatusPartial,
			reservation.StatusCompleted,
			reservation.StatusCancelled,
		} {
			assert.True(t, s.IsValid(), "status %s", s)
		}
		assert.False(t, reservation.PaymentStatus("refunded").IsValid())
		assert.False(t, reservation.PaymentStatus("").IsValid())
	})

	t.Run("only cancelled frees the slot", func(t *testing.T) {
		assert.True(t, reservation.StatusPending.BlocksSlot())
		assert.True(t, reservation.StatusPartial.BlocksSlot())
		assert.True(t, reservation.StatusCompleted.BlocksSlot())
		assert.False(t, reservation.StatusCancelled.BlocksSlot())
	})
}
