package queries

import (
	"context"

	"bookslot/internal/infra"
	"bookslot/internal/pkg/errs"

	"github.com/google/uuid"
)

type CatalogQueries interface {
	GetService(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	ListServices(ctx context.Context, includeInactive bool) ([]*ServiceView, error)
	GetLocation(ctx context.Context, id uuid.UUID) (*LocationView, error)
	ListLocations(ctx context.Context, includeInactive bool) ([]*LocationView, error)
}

type CatalogReadStore interface {
	FindServiceByID(ctx context.Context, id uuid.UUID) (*ServiceView, error)
	FindServices(ctx context.Context, includeInactive bool) ([]*ServiceView, error)
	FindLocationByID(ctx context.Context, id uuid.UUID) (*LocationView, error)
	FindLocations(ctx context.Context, includeInactive bool) ([]*LocationView, error)
}

type catalogQueriesImpl struct {
	store CatalogReadStore
}

func NewCatalogQueries(store CatalogReadStore) CatalogQueries {
	return &catalogQueriesImpl{store: store}
}

func (q *catalogQueriesImpl) GetService(ctx context.Context, id uuid.UUID) (*ServiceView, error) {
	svc, err := q.store.FindServiceByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrServiceNotAvailable
		}
		return nil, err
	}
	return svc, nil
}

func (q *catalogQueriesImpl) ListServices(ctx context.Context, includeInactive bool) ([]*ServiceView, error) {
	return q.store.FindServices(ctx, includeInactive)
}

func (q *catalogQueriesImpl) GetLocation(ctx context.Context, id uuid.UUID) (*LocationView, error) {
	loc, err := q.store.FindLocationByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrLocationNotAvailable
		}
		return nil, err
	}
	return loc, nil
}

func (q *catalogQueriesImpl) ListLocations(ctx context.Context, includeInactive bool) ([]*LocationView, error) {
	return q.store.FindLocations(ctx, includeInactive)
}
