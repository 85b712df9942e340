package repository

import (
	"context"

	"bookslot/internal/domain/user"
	"bookslot/internal/infra"
	"bookslot/internal/infra/db"

	"github.com/google/uuid"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(ctx context.Context, tx db.Executor, u *user.User) (uuid.UUID, error) {
	var id uuid.UUID
	err := tx.QueryRow(ctx, `
		INSERT INTO users (id, name, email, password_hash, role, phone, loyalty_points)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`,
		u.ID(), u.Name(), u.Email().Value(), u.PasswordHash(), u.Role().String(), u.Phone(), u.LoyaltyPoints(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create user", err)
	}
	return id, nil
}

func (r *UserRepository) LoyaltyBalanceForUpdate(ctx context.Context, tx db.Executor, id uuid.UUID) (int, error) {
	var balance int
	err := tx.QueryRow(ctx, `
		SELECT loyalty_points FROM users WHERE id = $1 FOR UPDATE
	`, id).Scan(&balance)
	if err != nil {
		if infra.IsNoRows(err) {
			return 0, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return 0, infra.WrapRepoErr("failed to lock loyalty balance", err)
	}
	return balance, nil
}

func (r *UserRepository) UpdateLoyaltyBalance(ctx context.Context, tx db.Executor, id uuid.UUID, balance int) error {
	tag, err := tx.Exec(ctx, `
		UPDATE users SET loyalty_points = $2, updated_at = now() WHERE id = $1
	`, id, balance)
	if err != nil {
		return infra.WrapRepoErr("failed to update loyalty balance", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("user not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *UserRepository) UpdateLastLogin(ctx context.Context, tx db.Executor, id uuid.UUID) error {
	_, err := tx.Exec(ctx, `
		UPDATE users SET last_login_at = now() WHERE id = $1
	`, id)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}
