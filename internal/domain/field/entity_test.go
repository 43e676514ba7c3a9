//go:build unit

package field_test

import (
	"testing"
	"time"

	"canchacontrol/internal/domain/field"
	"canchacontrol/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.FieldBuilder)
	errIs  error
}

func TestField(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewFieldBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Cancha Central", actual.Name())
		assert.Equal(t, "futbol5", actual.Type())
		assert.Equal(t, int64(250000), actual.HourlyRateCents())
		assert.Equal(t, 10, actual.Capacity())
		assert.Equal(t, actual.CreatedBy(), actual.UpdatedBy())
		assert.Equal(t, actual.CreatedAt(), actual.UpdatedAt())
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "empty name",
				mutate: func(b *builder.FieldBuilder) { b.Name = "" },
				errIs:  field.ErrEmptyName,
			},
			{
				name:   "whitespace only name",
				mutate: func(b *builder.FieldBuilder) { b.Name = "   " },
				errIs:  field.ErrEmptyName,
			},
			{
				name:   "empty type",
				mutate: func(b *builder.FieldBuilder) { b.Type = "" },
				errIs:  field.ErrEmptyType,
			},
			{
				name:   "negative hourly rate",
				mutate: func(b *builder.FieldBuilder) { b.HourlyRateCents = -1 },
				errIs:  field.ErrNegativePrice,
			},
			{
				name:   "zero rate is allowed",
				mutate: func(b *builder.FieldBuilder) { b.HourlyRateCents = 0 },
			},
			{
				name:   "zero capacity",
				mutate: func(b *builder.FieldBuilder) { b.Capacity = 0 },
				errIs:  field.ErrInvalidCapacity,
			},
			{
				name:   "negative capacity",
				mutate: func(b *builder.FieldBuilder) { b.Capacity = -5 },
				errIs:  field.ErrInvalidCapacity,
			},
		})
	})

	t.Run("name trimming", func(t *testing.T) {
		actual, err := builder.NewFieldBuilder().
			With(func(b *builder.FieldBuilder) { b.Name = "  Cancha Norte  " }).
			BuildDomain()
		require.NoError(t, err)
		assert.Equal(t, "Cancha Norte", actual.Name())
	})

	t.Run("update details", func(t *testing.T) {
		actual, err := builder.NewFieldBuilder().BuildDomain()
		require.NoError(t, err)

		editor := uuid.New()
		later := actual.CreatedAt().Add(time.Hour)
		require.NoError(t, actual.UpdateDetails("Cancha Sur", "padel", 180000, 4, true, editor, later))

		assert.Equal(t, "Cancha Sur", actual.Name())
		assert.Equal(t, "padel", actual.Type())
		assert.Equal(t, int64(180000), actual.HourlyRateCents())
		assert.Equal(t, 4, actual.Capacity())
		assert.True(t, actual.Indoor())
		assert.Equal(t, editor, actual.UpdatedBy())
		assert.Equal(t, later, actual.UpdatedAt())
		// creation metadata stays put
		assert.NotEqual(t, editor, actual.CreatedBy())
	})

	t.Run("update rejects invalid values without mutating", func(t *testing.T) {
		actual, err := builder.NewFieldBuilder().BuildDomain()
		require.NoError(t, err)

		err = actual.UpdateDetails("", "padel", 180000, 4, true, uuid.New(), time.Now())
		require.ErrorIs(t, err, field.ErrEmptyName)
		assert.Equal(t, "Cancha Central", actual.Name())
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewFieldBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
