package components

import (
	"bookslot/internal/pkg/clock"
	"bookslot/internal/pkg/config"
	"bookslot/internal/usecase/commands"
	"bookslot/internal/usecase/queries"
	"bookslot/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAppointmentQueries,
		queries.NewWaitlistQueries,
		queries.NewCatalogQueries,
		queries.NewUserQueries,
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		NewAppointmentCommands,
		commands.NewWaitlistUseCase,
		commands.NewAuthCommands,
		commands.NewCatalogUseCase,
		NewPaymentCommands,
		commands.NewReminderUseCase,
	),
)

func NewAppointmentCommands(
	uow shared.UnitOfWork,
	clk clock.Clock,
	appointmentQrys queries.AppointmentQueries,
	waitlistQrys queries.WaitlistQueries,
	broadcaster commands.Broadcaster,
	notifier commands.NotificationSender,
	calendar commands.CalendarSync,
	cfg config.Config,
) commands.AppointmentCommands {
	return commands.NewAppointmentUseCase(
		uow, clk, appointmentQrys, waitlistQrys,
		broadcaster, notifier, calendar,
		cfg.Booking.Currency,
	)
}

func NewPaymentCommands(uow shared.UnitOfWork, gateway commands.PaymentGateway, cfg config.Config) commands.PaymentCommands {
	return commands.NewPaymentUseCase(uow, gateway, cfg.Booking.Currency)
}
