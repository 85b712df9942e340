package jobs

import (
	"context"
	"log/slog"
	"time"

	"bookslot/internal/usecase/commands"

	"github.com/robfig/cron/v3"
)

// ReminderScheduler runs the next-day reminder sweep on a cron schedule.
type ReminderScheduler struct {
	cron      *cron.Cron
	reminders commands.ReminderCommands
	spec      string
}

func NewReminderScheduler(reminders commands.ReminderCommands, spec string) *ReminderScheduler {
	return &ReminderScheduler{
		cron:      cron.New(),
		reminders: reminders,
		spec:      spec,
	}
}

func (s *ReminderScheduler) Start() error {
	if _, err := s.cron.AddFunc(s.spec, s.run); err != nil {
		return err
	}
	s.cron.Start()
	slog.Info("reminder scheduler started", "spec", s.spec)
	return nil
}

// Stop waits for an in-flight sweep to finish before returning.
func (s *ReminderScheduler) Stop() {
	<-s.cron.Stop().Done()
	slog.Info("reminder scheduler stopped")
}

func (s *ReminderScheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	sent, err := s.reminders.SendDueReminders(ctx)
	if err != nil {
		slog.Error("reminder sweep failed", "error", err.Error())
		return
	}
	slog.Info("reminder sweep completed", "sent", sent)
}
