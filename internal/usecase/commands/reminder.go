package commands

import (
	"context"
	"log/slog"

	"bookslot/internal/domain/schedule"
	"bookslot/internal/pkg/clock"
	"bookslot/internal/usecase/queries"
	"bookslot/internal/usecase/shared"
)

type ReminderCommands interface {
	// SendDueReminders sends a reminder for every appointment scheduled
	// tomorrow that has not been reminded yet. One failed send never blocks
	// the rest.
	SendDueReminders(ctx context.Context) (int, error)
}

type reminderUseCaseImpl struct {
	uow             shared.UnitOfWork
	clock           clock.Clock
	appointmentQrys queries.AppointmentQueries
	notifier        NotificationSender
}

func NewReminderUseCase(
	uow shared.UnitOfWork,
	clk clock.Clock,
	appointmentQrys queries.AppointmentQueries,
	notifier NotificationSender,
) ReminderCommands {
	return &reminderUseCaseImpl{
		uow:             uow,
		clock:           clk,
		appointmentQrys: appointmentQrys,
		notifier:        notifier,
	}
}

func (uc *reminderUseCaseImpl) SendDueReminders(ctx context.Context) (int, error) {
	tomorrow := uc.clock.Now().AddDate(0, 0, 1).Format(schedule.DateLayout)

	targets, err := uc.appointmentQrys.DueReminders(ctx, tomorrow)
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, target := range targets {
		if err := uc.notifier.SendReminder(ctx, target); err != nil {
			slog.Warn("reminder send failed", "appointment_id", target.ID, "error", err.Error())
			continue
		}

		now := uc.clock.Now()
		if err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Appointments().MarkReminderSent(ctx, tx.DB(), target.ID, now)
		}); err != nil {
			slog.Warn("reminder stamp failed", "appointment_id", target.ID, "error", err.Error())
			continue
		}
		sent++
	}
	return sent, nil
}
