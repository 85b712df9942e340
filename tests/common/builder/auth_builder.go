//go:build unit || e2e

package builder

import (
	reqdto "bookslot/internal/handler/dto/request"
)

type AuthBuilder struct {
	Name     string
	Email    string
	Password string
	Phone    string
}

func NewAuthBuilder() *AuthBuilder {
	return &AuthBuilder{
		Name:     "Test User",
		Email:    "test@example.com",
		Password: "password123",
		Phone:    "555-0000",
	}
}

func (a *AuthBuilder) BuildLoginDTO() reqdto.LoginRequest {
	return reqdto.LoginRequest{
		Email:    a.Email,
		Password: a.Password,
	}
}

func (a *AuthBuilder) BuildRegisterDTO() reqdto.RegisterRequest {
	return reqdto.RegisterRequest{
		Name:     a.Name,
		Email:    a.Email,
		Password: a.Password,
		Phone:    a.Phone,
	}
}
