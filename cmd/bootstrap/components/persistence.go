package components

import (
	"bookslot/internal/infra/db"
	"bookslot/internal/infra/readstore"
	"bookslot/internal/infra/uow"
	"bookslot/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewExecutor,
		uow.NewPostgresUoW,
		fx.Annotate(
			readstore.NewAppointmentReadStore,
			fx.As(new(queries.AppointmentReadStore)),
		),
		fx.Annotate(
			readstore.NewWaitlistReadStore,
			fx.As(new(queries.WaitlistReadStore)),
		),
		fx.Annotate(
			readstore.NewCatalogReadStore,
			fx.As(new(queries.CatalogReadStore)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
	),
)

// Read stores outside a transaction run directly on the pool.
func NewExecutor(pool *pgxpool.Pool) db.Executor {
	return pool
}
