package readstore

import (
	"context"

	"bookslot/internal/infra"
	"bookslot/internal/infra/db"
	"bookslot/internal/usecase/queries"

	"github.com/google/uuid"
)

type CatalogReadStore struct {
	exec db.Executor
}

func NewCatalogReadStore(exec db.Executor) *CatalogReadStore {
	return &CatalogReadStore{exec: exec}
}

func (r *CatalogReadStore) FindServiceByID(ctx context.Context, id uuid.UUID) (*queries.ServiceView, error) {
	var view queries.ServiceView
	err := r.exec.QueryRow(ctx, `
		SELECT id, name, description, duration_minutes, price, category, is_active, created_at, updated_at
		FROM services
		WHERE id = $1
	`, id).Scan(&view.ID, &view.Name, &view.Description, &view.DurationMinutes, &view.Price,
		&view.Category, &view.IsActive, &view.CreatedAt, &view.UpdatedAt)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service by ID", err)
	}
	return &view, nil
}

func (r *CatalogReadStore) FindServices(ctx context.Context, includeInactive bool) ([]*queries.ServiceView, error) {
	rows, err := r.exec.Query(ctx, `
		SELECT id, name, description, duration_minutes, price, category, is_active, created_at, updated_at
		FROM services
		WHERE is_active OR $1
		ORDER BY category ASC, name ASC
	`, includeInactive)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list services", err)
	}
	defer rows.Close()

	var views []*queries.ServiceView
	for rows.Next() {
		var view queries.ServiceView
		if err := rows.Scan(&view.ID, &view.Name, &view.Description, &view.DurationMinutes, &view.Price,
			&view.Category, &view.IsActive, &view.CreatedAt, &view.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan service", err)
		}
		views = append(views, &view)
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to iterate services", rows.Err())
	}
	return views, nil
}

func (r *CatalogReadStore) FindLocationByID(ctx context.Context, id uuid.UUID) (*queries.LocationView, error) {
	var view queries.LocationView
	err := r.exec.QueryRow(ctx, `
		SELECT id, name, address, timezone, slot_interval_minutes, is_active, created_at, updated_at
		FROM locations
		WHERE id = $1
	`, id).Scan(&view.ID, &view.Name, &view.Address, &view.Timezone, &view.SlotIntervalMinutes,
		&view.IsActive, &view.CreatedAt, &view.UpdatedAt)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("location not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find location by ID", err)
	}
	return &view, nil
}

func (r *CatalogReadStore) FindLocations(ctx context.Context, includeInactive bool) ([]*queries.LocationView, error) {
	rows, err := r.exec.Query(ctx, `
		SELECT id, name, address, timezone, slot_interval_minutes, is_active, created_at, updated_at
		FROM locations
		WHERE is_active OR $1
		ORDER BY name ASC
	`, includeInactive)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list locations", err)
	}
	defer rows.Close()

	var views []*queries.LocationView
	for rows.Next() {
		var view queries.LocationView
		if err := rows.Scan(&view.ID, &view.Name, &view.Address, &view.Timezone, &view.SlotIntervalMinutes,
			&view.IsActive, &view.CreatedAt, &view.UpdatedAt); err != nil {
			return nil, infra.WrapRepoErr("failed to scan location", err)
		}
		views = append(views, &view)
	}
	if rows.Err() != nil {
		return nil, infra.WrapRepoErr("failed to iterate locations", rows.Err())
	}
	return views, nil
}
