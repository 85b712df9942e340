//go:build unit || e2e

package builder

import (
	"bookslot/internal/domain/user"
	"bookslot/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserBuilder struct {
	Name          string
	Email         string
	PasswordHash  string
	Role          string
	Phone         string
	LoyaltyPoints int
	IsActive      bool
}

func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		Name:         "Test User",
		Email:        "test@example.com",
		PasswordHash: "hashed_password",
		Role:         "user",
		Phone:        "555-0000",
		IsActive:     true,
	}
}

func (u *UserBuilder) With(mutate func(*UserBuilder)) *UserBuilder {
	mutate(u)
	return u
}

// Build methods
func (u *UserBuilder) BuildDomain() (*user.User, error) {
	name, err := user.NewName(u.Name)
	if err != nil {
		return nil, err
	}

	email, err := user.NewEmail(u.Email)
	if err != nil {
		return nil, err
	}

	role, err := user.NewRole(u.Role)
	if err != nil {
		return nil, err
	}

	return user.NewUser(name, email, u.PasswordHash, role, u.Phone), nil
}

func (u *UserBuilder) BuildReadModel() *queries.AuthorizedUserView {
	return &queries.AuthorizedUserView{
		ID:            uuid.New(),
		Email:         u.Email,
		Name:          u.Name,
		Role:          u.Role,
		LoyaltyPoints: u.LoyaltyPoints,
		IsActive:      u.IsActive,
	}
}

// Fluent builder methods
func (u *UserBuilder) WithName(name string) *UserBuilder {
	u.Name = name
	return u
}

func (u *UserBuilder) WithEmail(email string) *UserBuilder {
	u.Email = email
	return u
}

func (u *UserBuilder) WithRole(role string) *UserBuilder {
	u.Role = role
	return u
}

func (u *UserBuilder) WithLoyaltyPoints(points int) *UserBuilder {
	u.LoyaltyPoints = points
	return u
}

func (u *UserBuilder) AsInactive() *UserBuilder {
	u.IsActive = false
	return u
}
