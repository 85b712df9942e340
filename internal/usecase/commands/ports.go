package commands

import (
	"context"

	"bookslot/internal/usecase/queries"
)

// Realtime event names pushed to connected clients.
const (
	EventAppointmentCreated = "appointments:created"
	EventAppointmentUpdated = "appointments:updated"
	EventAppointmentDeleted = "appointments:deleted"
	EventWaitlistUpdated    = "waitlist:updated"
)

// Broadcaster fans an event out to connected clients. Implementations must
// never block the caller on slow consumers; failures are logged, not
// returned, because a booking that committed is booked regardless of
// whether anyone heard about it.
type Broadcaster interface {
	Broadcast(ctx context.Context, event string, payload any)
}

// NotificationSender delivers customer-facing messages. All sends are
// best-effort: the engine records the failure and moves on.
type NotificationSender interface {
	SendBookingConfirmation(ctx context.Context, appt *queries.AppointmentView) error
	SendSlotOpened(ctx context.Context, entry *queries.WaitlistEntryView) error
	SendReminder(ctx context.Context, target *queries.ReminderTarget) error
}

// CalendarSync mirrors appointments into an external calendar. Optional and
// best-effort; a sync failure never fails the booking.
type CalendarSync interface {
	UpsertEvent(ctx context.Context, appt *queries.AppointmentView) (string, error)
	DeleteEvent(ctx context.Context, eventID string) error
}

type PaymentIntent struct {
	ID           string
	ClientSecret string
	Amount       int
	Currency     string
}

// PaymentGateway creates payment intents with the external processor.
type PaymentGateway interface {
	CreateIntent(ctx context.Context, amount int, currency string, metadata map[string]string) (*PaymentIntent, error)
	Enabled() bool
}
