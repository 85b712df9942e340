package commands

import (
	"context"

	"bookslot/internal/domain/catalog"
	"bookslot/internal/infra"
	"bookslot/internal/pkg/errs"
	"bookslot/internal/usecase/queries"
	"bookslot/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateServiceInput struct {
	Name            string
	Description     string
	DurationMinutes int
	Price           int
	Category        string
}

type UpdateServiceInput struct {
	Name            *string
	Description     *string
	DurationMinutes *int
	Price           *int
	Category        *string
	IsActive        *bool
}

type CreateLocationInput struct {
	Name                string
	Address             string
	Timezone            string
	SlotIntervalMinutes int
}

type UpdateLocationInput struct {
	Name                *string
	Address             *string
	Timezone            *string
	SlotIntervalMinutes *int
	IsActive            *bool
}

type CatalogCommands interface {
	CreateService(ctx context.Context, in CreateServiceInput) (*queries.ServiceView, error)
	UpdateService(ctx context.Context, id uuid.UUID, in UpdateServiceInput) (*queries.ServiceView, error)
	CreateLocation(ctx context.Context, in CreateLocationInput) (*queries.LocationView, error)
	UpdateLocation(ctx context.Context, id uuid.UUID, in UpdateLocationInput) (*queries.LocationView, error)
}

type catalogUseCaseImpl struct {
	uow         shared.UnitOfWork
	catalogQrys queries.CatalogQueries
}

func NewCatalogUseCase(uow shared.UnitOfWork, catalogQrys queries.CatalogQueries) CatalogCommands {
	return &catalogUseCaseImpl{uow: uow, catalogQrys: catalogQrys}
}

func (uc *catalogUseCaseImpl) CreateService(ctx context.Context, in CreateServiceInput) (*queries.ServiceView, error) {
	svc, err := catalog.NewService(in.Name, in.Description, in.DurationMinutes, in.Price, in.Category)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var id uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, derr := tx.Catalog().CreateService(ctx, tx.DB(), serviceSnapshot(svc))
		if derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		id = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.catalogQrys.GetService(ctx, id)
}

func (uc *catalogUseCaseImpl) UpdateService(ctx context.Context, id uuid.UUID, in UpdateServiceInput) (*queries.ServiceView, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().ServiceByID(ctx, id)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.ErrServiceNotAvailable
			}
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}

		if in.Name != nil {
			snap.Name = *in.Name
		}
		if in.Description != nil {
			snap.Description = *in.Description
		}
		if in.DurationMinutes != nil {
			snap.DurationMinutes = *in.DurationMinutes
		}
		if in.Price != nil {
			snap.Price = *in.Price
		}
		if in.Category != nil {
			snap.Category = *in.Category
		}
		if in.IsActive != nil {
			snap.IsActive = *in.IsActive
		}

		// Revalidate the patched record through the same rules as creation.
		svc, derr := catalog.NewService(snap.Name, snap.Description, snap.DurationMinutes, snap.Price, snap.Category)
		if derr != nil {
			return errs.Mark(derr, errs.ErrDomainValidation)
		}
		svc.ID = id
		svc.IsActive = snap.IsActive

		if derr := tx.Catalog().UpdateService(ctx, tx.DB(), serviceSnapshot(svc)); derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.catalogQrys.GetService(ctx, id)
}

func (uc *catalogUseCaseImpl) CreateLocation(ctx context.Context, in CreateLocationInput) (*queries.LocationView, error) {
	loc, err := catalog.NewLocation(in.Name, in.Address, in.SlotIntervalMinutes)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	snap := locationSnapshot(loc)
	snap.Timezone = in.Timezone

	var id uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		created, derr := tx.Catalog().CreateLocation(ctx, tx.DB(), snap)
		if derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		id = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.catalogQrys.GetLocation(ctx, id)
}

func (uc *catalogUseCaseImpl) UpdateLocation(ctx context.Context, id uuid.UUID, in UpdateLocationInput) (*queries.LocationView, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		snap, derr := tx.Reads().LocationByID(ctx, id)
		if derr != nil {
			if infra.IsKind(derr, infra.KindNotFound) {
				return errs.ErrLocationNotAvailable
			}
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}

		if in.Name != nil {
			snap.Name = *in.Name
		}
		if in.Address != nil {
			snap.Address = *in.Address
		}
		if in.Timezone != nil {
			snap.Timezone = *in.Timezone
		}
		if in.SlotIntervalMinutes != nil {
			snap.SlotIntervalMinutes = *in.SlotIntervalMinutes
		}
		if in.IsActive != nil {
			snap.IsActive = *in.IsActive
		}

		loc, derr := catalog.NewLocation(snap.Name, snap.Address, snap.SlotIntervalMinutes)
		if derr != nil {
			return errs.Mark(derr, errs.ErrDomainValidation)
		}
		loc.ID = id
		loc.IsActive = snap.IsActive

		next := locationSnapshot(loc)
		next.Timezone = snap.Timezone
		if derr := tx.Catalog().UpdateLocation(ctx, tx.DB(), next); derr != nil {
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return uc.catalogQrys.GetLocation(ctx, id)
}

func serviceSnapshot(svc *catalog.Service) shared.ServiceSnapshot {
	return shared.ServiceSnapshot{
		ID:              svc.ID,
		Name:            svc.Name,
		Description:     svc.Description,
		DurationMinutes: svc.DurationMinutes,
		Price:           svc.Price,
		Category:        svc.Category,
		IsActive:        svc.IsActive,
	}
}

func locationSnapshot(loc *catalog.Location) shared.LocationSnapshot {
	return shared.LocationSnapshot{
		ID:                  loc.ID,
		Name:                loc.Name,
		Address:             loc.Address,
		SlotIntervalMinutes: loc.SlotIntervalMinutes,
		IsActive:            loc.IsActive,
	}
}
