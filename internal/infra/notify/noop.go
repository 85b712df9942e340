package notify

import (
	"context"

	"bookslot/internal/usecase/queries"
)

// NoopNotifier is bound when neither SMTP nor Twilio is configured.
type NoopNotifier struct{}

func NewNoopNotifier() *NoopNotifier {
	return &NoopNotifier{}
}

func (NoopNotifier) SendBookingConfirmation(context.Context, *queries.AppointmentView) error {
	return nil
}

func (NoopNotifier) SendSlotOpened(context.Context, *queries.WaitlistEntryView) error {
	return nil
}

func (NoopNotifier) SendReminder(context.Context, *queries.ReminderTarget) error {
	return nil
}
