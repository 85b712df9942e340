package repository

import (
	"context"

	"bookslot/internal/infra"
	"bookslot/internal/infra/db"
	"bookslot/internal/usecase/shared"

	"github.com/google/uuid"
)

type CatalogRepository struct{}

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{}
}

func (r *CatalogRepository) CreateService(ctx context.Context, tx db.Executor, svc shared.ServiceSnapshot) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `
		INSERT INTO services (id, name, description, duration_minutes, price, category, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`,
		svc.ID, svc.Name, svc.Description, svc.DurationMinutes, svc.Price, svc.Category, svc.IsActive,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create service", err)
	}
	return id, nil
}

func (r *CatalogRepository) UpdateService(ctx context.Context, tx db.Executor, svc shared.ServiceSnapshot) error {
	tag, err := tx.Exec(ctx, `
		UPDATE services
		SET name = $2,
			description = $3,
			duration_minutes = $4,
			price = $5,
			category = $6,
			is_active = $7,
			updated_at = now()
		WHERE id = $1
	`, svc.ID, svc.Name, svc.Description, svc.DurationMinutes, svc.Price, svc.Category, svc.IsActive)
	if err != nil {
		return infra.WrapRepoErr("failed to update service", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("service not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *CatalogRepository) CreateLocation(ctx context.Context, tx db.Executor, loc shared.LocationSnapshot) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `
		INSERT INTO locations (id, name, address, timezone, slot_interval_minutes, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`,
		loc.ID, loc.Name, loc.Address, loc.Timezone, loc.SlotIntervalMinutes, loc.IsActive,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create location", err)
	}
	return id, nil
}

func (r *CatalogRepository) UpdateLocation(ctx context.Context, tx db.Executor, loc shared.LocationSnapshot) error {
	tag, err := tx.Exec(ctx, `
		UPDATE locations
		SET name = $2,
			address = $3,
			timezone = $4,
			slot_interval_minutes = $5,
			is_active = $6,
			updated_at = now()
		WHERE id = $1
	`, loc.ID, loc.Name, loc.Address, loc.Timezone, loc.SlotIntervalMinutes, loc.IsActive)
	if err != nil {
		return infra.WrapRepoErr("failed to update location", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("location not found", nil, infra.KindNotFound)
	}
	return nil
}
