package commands

import (
	"context"
	"log/slog"

	"bookslot/internal/domain/user"
	"bookslot/internal/infra"
	"bookslot/internal/pkg/errs"
	"bookslot/internal/pkg/jwt"
	"bookslot/internal/pkg/password"
	"bookslot/internal/usecase/queries"
	"bookslot/internal/usecase/shared"

	"github.com/google/uuid"
)

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

type LoginInput struct {
	Email    string
	Password string
}

type AuthResult struct {
	UserID uuid.UUID
	Token  string
}

type AuthCommands interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, in LoginInput) (*AuthResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.UserReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.UserReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	name, err := user.NewName(in.Name)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	plain, err := user.NewPassword(in.Password)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	hashed, err := password.Hash(plain.Value())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	// Self-registration always yields a regular account; staff and admin
	// roles are assigned out of band.
	account := user.NewUser(name, email, hashed, user.RoleUser, in.Phone)

	var userID uuid.UUID
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, derr := tx.Users().Create(ctx, tx.DB(), account)
		if derr != nil {
			if infra.IsKind(derr, infra.KindDuplicateKey) {
				return errs.ErrEmailAlreadyTaken
			}
			return errs.Mark(derr, errs.ErrDatabaseOperationFailed)
		}
		userID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	token, err := a.jwtService.GenerateToken(userID, user.RoleUser)
	if err != nil {
		return nil, errs.Wrap(err, "token generation failed")
	}

	return &AuthResult{UserID: userID, Token: token}, nil
}

func (a *authCommandsImpl) Login(ctx context.Context, in LoginInput) (*AuthResult, error) {
	email, err := user.NewEmail(in.Email)
	if err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	view, hashed, err := a.readStore.FindByEmail(ctx, email.Value())
	if err != nil {
		// Same error as a password mismatch to prevent user enumeration
		return nil, errs.ErrInvalidCredentials
	}
	if !view.IsActive {
		return nil, errs.ErrUserInactive
	}

	if err := password.Compare(hashed, in.Password); err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	role, err := user.NewRole(view.Role)
	if err != nil {
		return nil, errs.ErrInvalidCredentials
	}

	token, err := a.jwtService.GenerateToken(view.ID, role)
	if err != nil {
		return nil, errs.Wrap(err, "token generation failed")
	}

	if err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Users().UpdateLastLogin(ctx, tx.DB(), view.ID)
	}); err != nil {
		// Not critical; the login itself succeeded
		slog.Warn("failed to update last login", "user_id", view.ID, "error", err.Error())
	}

	return &AuthResult{UserID: view.ID, Token: token}, nil
}
