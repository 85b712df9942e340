package readstore

import (
	"context"

	"bookslot/internal/infra"
	"bookslot/internal/infra/db"
	"bookslot/internal/usecase/shared"

	"github.com/google/uuid"
)

// Write-side snapshot lookups. These run on whatever executor the caller
// holds, usually the command transaction, so validation sees its own
// uncommitted writes.

func ServiceSnapshotByID(ctx context.Context, exec db.Executor, id uuid.UUID) (*shared.ServiceSnapshot, error) {
	var snap shared.ServiceSnapshot
	err := exec.QueryRow(ctx, `
		SELECT id, name, description, duration_minutes, price, category, is_active
		FROM services
		WHERE id = $1
	`, id).Scan(&snap.ID, &snap.Name, &snap.Description, &snap.DurationMinutes, &snap.Price, &snap.Category, &snap.IsActive)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("service not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find service", err)
	}
	return &snap, nil
}

func LocationSnapshotByID(ctx context.Context, exec db.Executor, id uuid.UUID) (*shared.LocationSnapshot, error) {
	var snap shared.LocationSnapshot
	err := exec.QueryRow(ctx, `
		SELECT id, name, address, timezone, slot_interval_minutes, is_active
		FROM locations
		WHERE id = $1
	`, id).Scan(&snap.ID, &snap.Name, &snap.Address, &snap.Timezone, &snap.SlotIntervalMinutes, &snap.IsActive)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("location not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find location", err)
	}
	return &snap, nil
}

func UserSnapshotByID(ctx context.Context, exec db.Executor, id uuid.UUID) (*shared.UserSnapshot, error) {
	var snap shared.UserSnapshot
	err := exec.QueryRow(ctx, `
		SELECT id, email, name, password_hash, role, phone, loyalty_points, is_active
		FROM users
		WHERE id = $1
	`, id).Scan(&snap.ID, &snap.Email, &snap.Name, &snap.PasswordHash, &snap.Role, &snap.Phone, &snap.LoyaltyPoints, &snap.IsActive)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user", err)
	}
	return &snap, nil
}

func UserSnapshotByEmail(ctx context.Context, exec db.Executor, email string) (*shared.UserSnapshot, error) {
	var snap shared.UserSnapshot
	err := exec.QueryRow(ctx, `
		SELECT id, email, name, password_hash, role, phone, loyalty_points, is_active
		FROM users
		WHERE email = $1
	`, email).Scan(&snap.ID, &snap.Email, &snap.Name, &snap.PasswordHash, &snap.Role, &snap.Phone, &snap.LoyaltyPoints, &snap.IsActive)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by email", err)
	}
	return &snap, nil
}
