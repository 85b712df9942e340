package appointment

import (
	"errors"
	"time"

	"bookslot/internal/domain/catalog"
	"bookslot/internal/domain/schedule"
	"bookslot/internal/pkg/clock"

	"github.com/google/uuid"
)

var (
	ErrStartsInPast     = errors.New("appointment starts in the past")
	ErrTerminalStatus   = errors.New("appointment is in a terminal status")
	ErrInvalidStatus    = errors.New("invalid appointment status")
	ErrInvalidDuration  = errors.New("duration must be between 15 and 480 minutes")
	ErrServiceRequired  = errors.New("service is required")
	ErrLocationRequired = errors.New("location is required")
)

type Services struct {
	Clock clock.Clock
}

// Appointment is the reservation aggregate. It owns its customer contact
// snapshot and the frozen service snapshot; the loyalty balance lives on
// the user record, never here.
type Appointment struct {
	id              uuid.UUID
	customer        Customer
	userID          *uuid.UUID
	serviceID       uuid.UUID
	snapshot        ServiceSnapshot
	locationID      uuid.UUID
	notes           string
	date            string
	startMinutes    int
	durationMinutes int
	status          Status
	payment         Payment
	loyaltyAwarded  int
	calendarEventID string
	confirmedAt     *time.Time
	remindedAt      *time.Time
	createdAt       time.Time
	updatedAt       time.Time
}

// NewAppointment books a slot against a resolved service and location.
// Duration and price always come from the service, never from the caller,
// so they cannot be spoofed by the request payload.
func NewAppointment(
	services *Services,
	customer Customer,
	userID *uuid.UUID,
	svc *catalog.Service,
	locationID uuid.UUID,
	date string,
	timeSlot string,
	notes string,
	paymentIntentID string,
	currency string,
) (*Appointment, error) {
	if svc == nil {
		return nil, ErrServiceRequired
	}
	if locationID == uuid.Nil {
		return nil, ErrLocationRequired
	}

	startMinutes, err := schedule.ToMinutes(timeSlot)
	if err != nil {
		return nil, err
	}
	start, err := schedule.SlotStart(date, startMinutes)
	if err != nil {
		return nil, err
	}
	if start.Before(services.Clock.Now()) {
		return nil, ErrStartsInPast
	}

	note, err := NewNote(notes)
	if err != nil {
		return nil, err
	}

	return &Appointment{
		id:         uuid.New(),
		customer:   customer,
		userID:     userID,
		serviceID:  svc.ID,
		locationID: locationID,
		snapshot: ServiceSnapshot{
			Name:            svc.Name,
			DurationMinutes: svc.DurationMinutes,
			Price:           svc.Price,
		},
		notes:           note,
		date:            date,
		startMinutes:    startMinutes,
		durationMinutes: svc.DurationMinutes,
		status:          StatusScheduled,
		payment:         NewPayment(svc.Price, currency, paymentIntentID),
	}, nil
}

func Reconstruct(
	id uuid.UUID,
	customer Customer,
	userID *uuid.UUID,
	serviceID uuid.UUID,
	snapshot ServiceSnapshot,
	locationID uuid.UUID,
	notes string,
	date string,
	startMinutes, durationMinutes int,
	status Status,
	payment Payment,
	loyaltyAwarded int,
	calendarEventID string,
	confirmedAt, remindedAt *time.Time,
	createdAt, updatedAt time.Time,
) *Appointment {
	return &Appointment{
		id:              id,
		customer:        customer,
		userID:          userID,
		serviceID:       serviceID,
		snapshot:        snapshot,
		locationID:      locationID,
		notes:           notes,
		date:            date,
		startMinutes:    startMinutes,
		durationMinutes: durationMinutes,
		status:          status,
		payment:         payment,
		loyaltyAwarded:  loyaltyAwarded,
		calendarEventID: calendarEventID,
		confirmedAt:     confirmedAt,
		remindedAt:      remindedAt,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (a *Appointment) ID() uuid.UUID             { return a.id }
func (a *Appointment) Customer() Customer        { return a.customer }
func (a *Appointment) UserID() *uuid.UUID        { return a.userID }
func (a *Appointment) ServiceID() uuid.UUID      { return a.serviceID }
func (a *Appointment) Snapshot() ServiceSnapshot { return a.snapshot }
func (a *Appointment) LocationID() uuid.UUID     { return a.locationID }
func (a *Appointment) Notes() string             { return a.notes }
func (a *Appointment) Date() string              { return a.date }
func (a *Appointment) StartMinutes() int         { return a.startMinutes }
func (a *Appointment) DurationMinutes() int      { return a.durationMinutes }
func (a *Appointment) EndMinutes() int           { return a.startMinutes + a.durationMinutes }
func (a *Appointment) Status() Status            { return a.status }
func (a *Appointment) Payment() Payment          { return a.payment }
func (a *Appointment) LoyaltyAwarded() int       { return a.loyaltyAwarded }
func (a *Appointment) CalendarEventID() string   { return a.calendarEventID }
func (a *Appointment) ConfirmedAt() *time.Time   { return a.confirmedAt }
func (a *Appointment) RemindedAt() *time.Time    { return a.remindedAt }
func (a *Appointment) CreatedAt() time.Time      { return a.createdAt }
func (a *Appointment) UpdatedAt() time.Time      { return a.updatedAt }

func (a *Appointment) TimeSlot() string {
	return schedule.FormatMinutes(a.startMinutes)
}

// CountsForConflicts reports whether this appointment occupies its slot.
// Cancelled appointments free the interval.
func (a *Appointment) CountsForConflicts() bool {
	return a.status != StatusCancelled
}

// ApplyService re-freezes the snapshot and duration from a newly resolved
// service. Price and duration can never be held stale across a service
// change.
func (a *Appointment) ApplyService(svc *catalog.Service) error {
	if svc == nil {
		return ErrServiceRequired
	}
	a.serviceID = svc.ID
	a.snapshot = ServiceSnapshot{
		Name:            svc.Name,
		DurationMinutes: svc.DurationMinutes,
		Price:           svc.Price,
	}
	a.durationMinutes = svc.DurationMinutes
	return nil
}

func (a *Appointment) MoveToLocation(locationID uuid.UUID) error {
	if locationID == uuid.Nil {
		return ErrLocationRequired
	}
	a.locationID = locationID
	return nil
}

func (a *Appointment) Reschedule(date, timeSlot string) error {
	startMinutes, err := schedule.ToMinutes(timeSlot)
	if err != nil {
		return err
	}
	if _, err := schedule.ParseDate(date); err != nil {
		return err
	}
	a.date = date
	a.startMinutes = startMinutes
	return nil
}

func (a *Appointment) SetDurationMinutes(minutes int) error {
	if minutes < catalog.MinDurationMinutes || minutes > catalog.MaxDurationMinutes {
		return ErrInvalidDuration
	}
	a.durationMinutes = minutes
	return nil
}

func (a *Appointment) SetNotes(notes string) error {
	note, err := NewNote(notes)
	if err != nil {
		return err
	}
	a.notes = note
	return nil
}

func (a *Appointment) MergeCustomer(patch Customer) {
	a.customer = a.customer.Merge(patch)
}

// TransitionTo enforces the status machine: scheduled may move to cancelled
// or completed; terminal states admit no further transitions.
func (a *Appointment) TransitionTo(next Status) error {
	if !next.IsValid() {
		return ErrInvalidStatus
	}
	if next == a.status {
		return nil
	}
	if a.status.IsTerminal() {
		return ErrTerminalStatus
	}
	a.status = next
	return nil
}

// RedeemFromPayment reduces the payable amount by redeemed points, floored
// at zero.
func (a *Appointment) RedeemFromPayment(points int) {
	a.payment.Amount -= points
	if a.payment.Amount < 0 {
		a.payment.Amount = 0
	}
}

func (a *Appointment) AwardLoyalty(points int) {
	a.loyaltyAwarded = points
}

func (a *Appointment) AttachCalendarEvent(eventID string) {
	a.calendarEventID = eventID
}

func (a *Appointment) MarkConfirmationSent(at time.Time) {
	a.confirmedAt = &at
}

func (a *Appointment) MarkReminderSent(at time.Time) {
	a.remindedAt = &at
}
