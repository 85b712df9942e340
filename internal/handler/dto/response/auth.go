package response

import (
	"bookslot/internal/usecase/queries"

	"github.com/google/uuid"
)

type AuthResponse struct {
	UserID uuid.UUID `json:"userId"`
	Token  string    `json:"token"`
}

type UserResponse struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Role          string    `json:"role"`
	LoyaltyPoints int       `json:"loyaltyPoints"`
}

func FromAuthorizedUserView(rm *queries.AuthorizedUserView) *UserResponse {
	return &UserResponse{
		ID:            rm.ID,
		Email:         rm.Email,
		Name:          rm.Name,
		Role:          rm.Role,
		LoyaltyPoints: rm.LoyaltyPoints,
	}
}
