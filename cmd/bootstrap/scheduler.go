package bootstrap

import (
	"context"

	"bookslot/internal/jobs"
	"bookslot/internal/pkg/config"
	"bookslot/internal/usecase/commands"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewReminderScheduler,
	),
	fx.Invoke(registerScheduler),
)

func NewReminderScheduler(cfg config.Config, reminders commands.ReminderCommands) *jobs.ReminderScheduler {
	return jobs.NewReminderScheduler(reminders, cfg.Booking.ReminderCron)
}

func registerScheduler(lc fx.Lifecycle, scheduler *jobs.ReminderScheduler) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return scheduler.Start()
		},
		OnStop: func(_ context.Context) error {
			scheduler.Stop()
			return nil
		},
	})
}
