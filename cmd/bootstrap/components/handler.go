package components

import (
	"bookslot/internal/handler"
	"bookslot/internal/handler/api"
	"bookslot/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewAppointmentHandler,
		api.NewWaitlistHandler,
		api.NewCatalogHandler,
		api.NewPaymentHandler,
		middleware.NewAuthMiddleware,
		NewHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func NewHandlers(
	auth *api.AuthHandler,
	appointment *api.AppointmentHandler,
	waitlist *api.WaitlistHandler,
	catalog *api.CatalogHandler,
	payment *api.PaymentHandler,
) handler.Handlers {
	return handler.Handlers{
		Auth:        auth,
		Appointment: appointment,
		Waitlist:    waitlist,
		Catalog:     catalog,
		Payment:     payment,
	}
}
