//go:build unit

package user_test

import (
	"strings"
	"testing"

	"bookslot/internal/domain/user"
	"bookslot/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUser(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.Equal(t, "Test User", actual.Name())
		assert.Equal(t, "test@example.com", actual.Email().Value())
		assert.Equal(t, user.RoleUser, actual.Role())
		assert.Equal(t, 0, actual.LoyaltyPoints())
	})

	t.Run("email validation", func(t *testing.T) {
		cases := []struct {
			name  string
			email string
			errIs error
		}{
			{name: "missing at sign", email: "test.example.com", errIs: user.ErrInvalidEmail},
			{name: "missing domain dot", email: "test@example", errIs: user.ErrInvalidEmail},
			{name: "empty", email: "", errIs: user.ErrInvalidEmail},
			{name: "plus addressing", email: "test+tag@example.com"},
			{name: "subdomain", email: "test@mail.example.com"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := user.NewEmail(tc.email)
				if tc.errIs == nil {
					require.NoError(t, err)
				} else {
					require.ErrorIs(t, err, tc.errIs)
				}
			})
		}
	})

	t.Run("email is lowercased and trimmed", func(t *testing.T) {
		email, err := user.NewEmail("  Test@Example.COM  ")
		require.NoError(t, err)
		assert.Equal(t, "test@example.com", email.Value())
	})

	t.Run("name validation", func(t *testing.T) {
		_, err := user.NewName("   ")
		require.ErrorIs(t, err, user.ErrInvalidName)

		_, err = user.NewName(strings.Repeat("a", 121))
		require.ErrorIs(t, err, user.ErrInvalidName)

		name, err := user.NewName("  Ada  ")
		require.NoError(t, err)
		assert.Equal(t, "Ada", name)
	})

	t.Run("password minimum length", func(t *testing.T) {
		_, err := user.NewPassword("12345")
		require.ErrorIs(t, err, user.ErrPasswordTooWeak)

		pw, err := user.NewPassword("123456")
		require.NoError(t, err)
		assert.Equal(t, "123456", pw.Value())
	})

	t.Run("role validation", func(t *testing.T) {
		for _, valid := range []string{"user", "staff", "admin"} {
			role, err := user.NewRole(valid)
			require.NoError(t, err)
			assert.Equal(t, valid, string(role))
		}

		_, err := user.NewRole("superadmin")
		require.ErrorIs(t, err, user.ErrInvalidRole)
	})

	t.Run("loyalty balance never goes negative", func(t *testing.T) {
		actual, err := builder.NewUserBuilder().BuildDomain()
		require.NoError(t, err)

		require.NoError(t, actual.SetLoyaltyPoints(40))
		assert.Equal(t, 40, actual.LoyaltyPoints())

		require.ErrorIs(t, actual.SetLoyaltyPoints(-1), user.ErrNegativeBalance)
		assert.Equal(t, 40, actual.LoyaltyPoints())
	})
}
