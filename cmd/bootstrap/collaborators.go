package bootstrap

import (
	"context"
	"log/slog"

	"bookslot/internal/infra/calendar"
	"bookslot/internal/infra/notify"
	"bookslot/internal/infra/payment"
	"bookslot/internal/infra/realtime"
	"bookslot/internal/pkg/config"
	"bookslot/internal/usecase/commands"

	"go.uber.org/fx"
)

// Optional collaborators are selected once at startup from configuration.
// Absent configuration binds a no-op implementation; nothing downstream
// checks the environment again.
var CollaboratorsModule = fx.Module("collaborators",
	fx.Provide(
		NewBroadcaster,
		NewNotifier,
		NewCalendarSync,
		NewPaymentGateway,
	),
)

func NewBroadcaster(lc fx.Lifecycle, cfg config.Config) (commands.Broadcaster, error) {
	if !cfg.Redis.Enabled() {
		slog.Info("realtime broadcast disabled: no redis endpoint configured")
		return realtime.NewNoopBroadcaster(), nil
	}

	broadcaster, cleanup, err := realtime.NewRedisBroadcaster(cfg.Redis)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	slog.Info("realtime broadcast enabled", "channel", cfg.Redis.Channel)
	return broadcaster, nil
}

func NewNotifier(cfg config.Config) commands.NotificationSender {
	var email notify.EmailSender
	var sms notify.SMSSender

	if cfg.SMTP.Enabled() {
		email = notify.NewSMTPSender(cfg.SMTP)
		slog.Info("email notifications enabled", "host", cfg.SMTP.Host)
	}
	if cfg.Twilio.Enabled() {
		sms = notify.NewTwilioSender(cfg.Twilio)
		slog.Info("sms notifications enabled")
	}

	if email == nil && sms == nil {
		slog.Info("notifications disabled: no smtp or twilio configuration")
		return notify.NewNoopNotifier()
	}
	return notify.NewDispatcher(email, sms)
}

func NewCalendarSync(cfg config.Config) commands.CalendarSync {
	if !cfg.Calendar.Enabled() {
		slog.Info("calendar sync disabled: no bridge url configured")
		return calendar.NewNoopBridge()
	}

	slog.Info("calendar sync enabled", "bridge_url", cfg.Calendar.BridgeURL)
	return calendar.NewWebhookBridge(cfg.Calendar)
}

func NewPaymentGateway(cfg config.Config) commands.PaymentGateway {
	if !cfg.Stripe.Enabled() {
		slog.Info("payments disabled: no stripe secret key configured")
	} else {
		slog.Info("payments enabled")
	}
	return payment.NewStripeGateway(cfg.Stripe)
}
