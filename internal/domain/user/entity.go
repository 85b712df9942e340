package user

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrNegativeBalance = errors.New("loyalty balance cannot go negative")

// User is an account holder. Its loyalty balance is the single source of
// truth for that account; nothing else caches it, and only the ledger
// applied during booking mutates it.
type User struct {
	id            uuid.UUID
	name          string
	email         Email
	passwordHash  string
	role          Role
	phone         string
	loyaltyPoints int
	createdAt     time.Time
	updatedAt     time.Time
}

func NewUser(name string, email Email, passwordHash string, role Role, phone string) *User {
	return &User{
		id:           uuid.New(),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		phone:        phone,
	}
}

func Reconstruct(
	id uuid.UUID,
	name string,
	email Email,
	passwordHash string,
	role Role,
	phone string,
	loyaltyPoints int,
	createdAt, updatedAt time.Time,
) *User {
	return &User{
		id:            id,
		name:          name,
		email:         email,
		passwordHash:  passwordHash,
		role:          role,
		phone:         phone,
		loyaltyPoints: loyaltyPoints,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Name() string         { return u.name }
func (u *User) Email() Email         { return u.email }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Role() Role           { return u.role }
func (u *User) Phone() string        { return u.phone }
func (u *User) LoyaltyPoints() int   { return u.loyaltyPoints }
func (u *User) CreatedAt() time.Time { return u.createdAt }
func (u *User) UpdatedAt() time.Time { return u.updatedAt }

// SetLoyaltyPoints replaces the balance with a ledger result. The ledger
// already clamps redemption, so a negative balance here is a programming
// error, not a policy outcome.
func (u *User) SetLoyaltyPoints(balance int) error {
	if balance < 0 {
		return ErrNegativeBalance
	}
	u.loyaltyPoints = balance
	return nil
}
