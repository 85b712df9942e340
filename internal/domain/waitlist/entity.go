package waitlist

import (
	"errors"
	"time"

	"bookslot/internal/domain/appointment"
	"bookslot/internal/domain/schedule"

	"github.com/google/uuid"
)

var ErrAlreadyNotified = errors.New("waitlist entry already notified")

// Entry is a deferred booking request. Entries queue per
// (service, location, date) group and are promoted oldest-first. They never
// expire on their own; only promotion or an explicit operator delete
// removes them.
type Entry struct {
	id                uuid.UUID
	customer          appointment.Customer
	serviceID         uuid.UUID
	locationID        *uuid.UUID
	date              string
	preferredTimeSlot string
	notified          bool
	createdAt         time.Time
}

func NewEntry(
	customer appointment.Customer,
	serviceID uuid.UUID,
	locationID *uuid.UUID,
	date string,
	preferredTimeSlot string,
) (*Entry, error) {
	if _, err := schedule.ParseDate(date); err != nil {
		return nil, err
	}
	// The preferred slot is a hint, not a booking; an empty one is fine.
	if preferredTimeSlot != "" {
		if _, err := schedule.ToMinutes(preferredTimeSlot); err != nil {
			return nil, err
		}
	}

	return &Entry{
		id:                uuid.New(),
		customer:          customer,
		serviceID:         serviceID,
		locationID:        locationID,
		date:              date,
		preferredTimeSlot: preferredTimeSlot,
		notified:          false,
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	customer appointment.Customer,
	serviceID uuid.UUID,
	locationID *uuid.UUID,
	date string,
	preferredTimeSlot string,
	notified bool,
	createdAt time.Time,
) *Entry {
	return &Entry{
		id:                id,
		customer:          customer,
		serviceID:         serviceID,
		locationID:        locationID,
		date:              date,
		preferredTimeSlot: preferredTimeSlot,
		notified:          notified,
		createdAt:         createdAt,
	}
}

func (e *Entry) ID() uuid.UUID                  { return e.id }
func (e *Entry) Customer() appointment.Customer { return e.customer }
func (e *Entry) ServiceID() uuid.UUID           { return e.serviceID }
func (e *Entry) LocationID() *uuid.UUID         { return e.locationID }
func (e *Entry) Date() string                   { return e.date }
func (e *Entry) PreferredTimeSlot() string      { return e.preferredTimeSlot }
func (e *Entry) Notified() bool                 { return e.notified }
func (e *Entry) CreatedAt() time.Time           { return e.createdAt }

// MarkNotified flips the entry to notified. Promotion never books on the
// customer's behalf; it only flags that the slot opened up.
func (e *Entry) MarkNotified() error {
	if e.notified {
		return ErrAlreadyNotified
	}
	e.notified = true
	return nil
}
