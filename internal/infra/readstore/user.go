package readstore

import (
	"context"

	"bookslot/internal/infra"
	"bookslot/internal/infra/db"
	"bookslot/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadStore struct {
	exec db.Executor
}

func NewUserReadStore(exec db.Executor) *UserReadStore {
	return &UserReadStore{exec: exec}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AuthorizedUserView, error) {
	var view queries.AuthorizedUserView
	err := r.exec.QueryRow(ctx, `
		SELECT id, email, name, role, loyalty_points, is_active
		FROM users
		WHERE id = $1
	`, id).Scan(&view.ID, &view.Email, &view.Name, &view.Role, &view.LoyaltyPoints, &view.IsActive)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return &view, nil
}

func (r *UserReadStore) FindByEmail(ctx context.Context, email string) (*queries.AuthorizedUserView, string, error) {
	var (
		view queries.AuthorizedUserView
		hash string
	)
	err := r.exec.QueryRow(ctx, `
		SELECT id, email, name, role, loyalty_points, is_active, password_hash
		FROM users
		WHERE email = $1
	`, email).Scan(&view.ID, &view.Email, &view.Name, &view.Role, &view.LoyaltyPoints, &view.IsActive, &hash)
	if err != nil {
		if infra.IsNoRows(err) {
			return nil, "", infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find user by email", err)
	}
	return &view, hash, nil
}
