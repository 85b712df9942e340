package notify

import (
	"context"
	"fmt"
	"log/slog"

	"bookslot/internal/usecase/queries"
)

// Dispatcher composes notification messages and fans them out over whichever
// channels are configured. Either sender may be nil; a nil channel is skipped.
type Dispatcher struct {
	email EmailSender
	sms   SMSSender
}

func NewDispatcher(email EmailSender, sms SMSSender) *Dispatcher {
	return &Dispatcher{email: email, sms: sms}
}

func (d *Dispatcher) SendBookingConfirmation(_ context.Context, view *queries.AppointmentView) error {
	subject := "Your appointment is confirmed"
	body := fmt.Sprintf(
		"Hi %s,\n\nYour appointment for %s at %s is confirmed.\n\nDate: %s\nTime: %s\nDuration: %d minutes\nPrice: %d %s\n\nSee you then!",
		view.Customer.Name,
		view.ServiceSnapshot.Name,
		view.LocationName,
		view.Date,
		view.TimeSlot,
		view.DurationMinutes,
		view.Payment.Amount,
		view.Payment.Currency,
	)
	sms := fmt.Sprintf(
		"Confirmed: %s at %s on %s %s. Reply to this number with questions.",
		view.ServiceSnapshot.Name, view.LocationName, view.Date, view.TimeSlot,
	)
	return d.deliver(view.Customer.Email, view.Customer.Phone, subject, body, sms)
}

func (d *Dispatcher) SendSlotOpened(_ context.Context, entry *queries.WaitlistEntryView) error {
	subject := "A slot just opened up"
	slot := "any time"
	if entry.PreferredTimeSlot != nil {
		slot = *entry.PreferredTimeSlot
	}
	body := fmt.Sprintf(
		"Hi %s,\n\nGood news: a slot for %s on %s has opened up (your preference: %s).\n\nBook soon before someone else takes it.",
		entry.Customer.Name,
		entry.ServiceName,
		entry.Date,
		slot,
	)
	sms := fmt.Sprintf(
		"A slot for %s on %s just opened up. Book soon!",
		entry.ServiceName, entry.Date,
	)
	return d.deliver(entry.Customer.Email, entry.Customer.Phone, subject, body, sms)
}

func (d *Dispatcher) SendReminder(_ context.Context, target *queries.ReminderTarget) error {
	subject := "Reminder: your upcoming appointment"
	body := fmt.Sprintf(
		"Hi %s,\n\nThis is a reminder for your %s appointment on %s at %s, %s.\n\nSee you soon!",
		target.CustomerName,
		target.ServiceName,
		target.Date,
		target.TimeSlot,
		target.LocationName,
	)
	sms := fmt.Sprintf(
		"Reminder: %s on %s at %s, %s.",
		target.ServiceName, target.Date, target.TimeSlot, target.LocationName,
	)
	return d.deliver(target.CustomerEmail, target.CustomerPhone, subject, body, sms)
}

// deliver returns an error only when every attempted channel failed. One
// landed message is a delivered notification.
func (d *Dispatcher) deliver(email, phone, subject, body, smsBody string) error {
	var attempted, failed int

	if d.email != nil && email != "" {
		attempted++
		if err := d.email.Send(email, subject, body); err != nil {
			failed++
			slog.Warn("email notification failed", "to", email, "error", err.Error())
		}
	}
	if d.sms != nil && phone != "" {
		attempted++
		if err := d.sms.Send(phone, smsBody); err != nil {
			failed++
			slog.Warn("sms notification failed", "to", phone, "error", err.Error())
		}
	}

	if attempted > 0 && failed == attempted {
		return fmt.Errorf("all %d notification channels failed", attempted)
	}
	return nil
}
