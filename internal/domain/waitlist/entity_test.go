//go:build unit

package waitlist_test

import (
	"testing"

	"bookslot/internal/domain/schedule"
	"bookslot/internal/domain/waitlist"
	"bookslot/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testCase struct {
	name   string
	mutate func(*builder.WaitlistBuilder)
	errIs  error
}

func TestEntry(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewWaitlistBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Sam Waiting", actual.Customer().Name())
		assert.Equal(t, "2030-06-15", actual.Date())
		assert.Equal(t, "10:00", actual.PreferredTimeSlot())
		assert.False(t, actual.Notified())
	})

	t.Run("validation", func(t *testing.T) {
		runCases(t, []testCase{
			{
				name:   "malformed date",
				mutate: func(b *builder.WaitlistBuilder) { b.Date = "June 15" },
				errIs:  schedule.ErrInvalidDate,
			},
			{
				name:   "malformed preferred slot",
				mutate: func(b *builder.WaitlistBuilder) { b.PreferredTimeSlot = "10:60" },
				errIs:  schedule.ErrInvalidTimeSlot,
			},
			{
				name:   "empty preferred slot is allowed",
				mutate: func(b *builder.WaitlistBuilder) { b.PreferredTimeSlot = "" },
			},
			{
				name:   "missing location is allowed",
				mutate: func(b *builder.WaitlistBuilder) { b.LocationID = nil },
			},
		})
	})

	t.Run("mark notified is one-way", func(t *testing.T) {
		entry, err := builder.NewWaitlistBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, entry.MarkNotified())
		assert.True(t, entry.Notified())

		require.ErrorIs(t, entry.MarkNotified(), waitlist.ErrAlreadyNotified)
	})
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewWaitlistBuilder().With(c.mutate).BuildDomain()

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
