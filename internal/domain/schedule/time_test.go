//go:build unit

package schedule_test

import (
	"testing"

	"bookslot/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinutes(t *testing.T) {
	cases := []struct {
		name string
		slot string
		want int
		err  error
	}{
		{name: "midnight", slot: "00:00", want: 0},
		{name: "morning slot", slot: "09:30", want: 570},
		{name: "last slot of the day", slot: "23:59", want: 1439},
		{name: "hour out of range", slot: "24:00", err: schedule.ErrInvalidTimeSlot},
		{name: "minute out of range", slot: "10:60", err: schedule.ErrInvalidTimeSlot},
		{name: "12-hour format", slot: "9:30", err: schedule.ErrInvalidTimeSlot},
		{name: "missing separator", slot: "0930", err: schedule.ErrInvalidTimeSlot},
		{name: "non-numeric", slot: "ab:cd", err: schedule.ErrInvalidTimeSlot},
		{name: "empty", slot: "", err: schedule.ErrInvalidTimeSlot},
		{name: "trailing garbage", slot: "09:30x", err: schedule.ErrInvalidTimeSlot},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := schedule.ToMinutes(tc.slot)
			if tc.err != nil {
				require.ErrorIs(t, err, tc.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestFormatMinutesRoundTrip(t *testing.T) {
	for _, slot := range []string{"00:00", "00:15", "09:05", "13:45", "23:59"} {
		minutes, err := schedule.ToMinutes(slot)
		require.NoError(t, err)
		assert.Equal(t, slot, schedule.FormatMinutes(minutes))
	}
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                   string
		aStart, aDur           int
		bStart, bDur           int
		want                   bool
	}{
		{name: "identical intervals", aStart: 600, aDur: 60, bStart: 600, bDur: 60, want: true},
		{name: "partial overlap", aStart: 600, aDur: 60, bStart: 630, bDur: 60, want: true},
		{name: "contained interval", aStart: 600, aDur: 120, bStart: 630, bDur: 30, want: true},
		{name: "end touches start", aStart: 540, aDur: 60, bStart: 600, bDur: 60, want: false},
		{name: "start touches end", aStart: 660, aDur: 60, bStart: 600, bDur: 60, want: false},
		{name: "one minute past the boundary", aStart: 540, aDur: 61, bStart: 600, bDur: 60, want: true},
		{name: "disjoint", aStart: 480, aDur: 30, bStart: 600, bDur: 30, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, schedule.Overlaps(tc.aStart, tc.aDur, tc.bStart, tc.bDur))
			// Overlap is symmetric.
			assert.Equal(t, tc.want, schedule.Overlaps(tc.bStart, tc.bDur, tc.aStart, tc.aDur))
		})
	}
}

func TestParseDate(t *testing.T) {
	_, err := schedule.ParseDate("2026-02-14")
	require.NoError(t, err)

	for _, bad := range []string{"2026-2-14", "14-02-2026", "2026-13-01", "2026-02-30", "not-a-date", ""} {
		_, err := schedule.ParseDate(bad)
		assert.ErrorIs(t, err, schedule.ErrInvalidDate, "input %q", bad)
	}
}

func TestSlotStart(t *testing.T) {
	start, err := schedule.SlotStart("2026-02-14", 570)
	require.NoError(t, err)
	assert.Equal(t, 9, start.Hour())
	assert.Equal(t, 30, start.Minute())
	assert.Equal(t, 14, start.Day())
}
