package schedule

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidTimeSlot = errors.New("time slot must be in HH:mm 24-hour format")
	ErrInvalidDate     = errors.New("date must be in YYYY-MM-DD format")
)

// DateLayout is the canonical calendar-date form used across the service.
// Dates are location-local; no timezone conversion happens anywhere.
const DateLayout = "2006-01-02"

// ToMinutes converts an "HH:mm" slot label to minutes since midnight.
func ToMinutes(slot string) (int, error) {
	if len(slot) != 5 || slot[2] != ':' {
		return 0, ErrInvalidTimeSlot
	}

	hours, ok := atoi2(slot[0], slot[1])
	if !ok || hours > 23 {
		return 0, ErrInvalidTimeSlot
	}
	minutes, ok := atoi2(slot[3], slot[4])
	if !ok || minutes > 59 {
		return 0, ErrInvalidTimeSlot
	}

	return hours*60 + minutes, nil
}

// FormatMinutes is the inverse of ToMinutes.
func FormatMinutes(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// Overlaps reports whether [aStart, aStart+aDuration) and
// [bStart, bStart+bDuration) intersect. Intervals are half-open: a slot
// ending exactly when another starts does not overlap.
func Overlaps(aStart, aDuration, bStart, bDuration int) bool {
	return max(aStart, bStart) < min(aStart+aDuration, bStart+bDuration)
}

// ParseDate validates a canonical YYYY-MM-DD date string.
func ParseDate(date string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, date, time.Local)
	if err != nil || t.Format(DateLayout) != date {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

// SlotStart resolves a date + minutes-since-midnight pair to a wall-clock
// instant on the location-local clock.
func SlotStart(date string, startMinutes int) (time.Time, error) {
	day, err := ParseDate(date)
	if err != nil {
		return time.Time{}, err
	}
	return day.Add(time.Duration(startMinutes) * time.Minute), nil
}

func atoi2(hi, lo byte) (int, bool) {
	if hi < '0' || hi > '9' || lo < '0' || lo > '9' {
		return 0, false
	}
	return int(hi-'0')*10 + int(lo-'0'), true
}
