//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"bookslot/internal/domain/user"
	"bookslot/internal/handler/dto/request"
	"bookslot/internal/handler/dto/response"
	"bookslot/tests/common/authtest"
	"bookslot/tests/common/dbtest"
	"bookslot/tests/common/httptest"
	"bookslot/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	registerURL = "/api/auth/register"
	loginURL    = "/api/auth/login"
	meURL       = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) TestRegister() {
	s.Run("register then login and fetch own profile", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, request.RegisterRequest{
			Name:     "Fresh User",
			Email:    "fresh@example.com",
			Password: "password123",
			Phone:    "555-0101",
		}, "")

		var registered response.AuthResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &registered)
		s.NotEmpty(registered.Token)

		// The registration token works immediately.
		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, registered.Token)

		var me response.UserResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &me)
		s.Equal("fresh@example.com", me.Email)
		s.Equal("user", me.Role)
		s.Equal(0, me.LoyaltyPoints)
	})

	s.Run("duplicate email is rejected", func() {
		dbtest.CreateTestUser(s.T(), s.DB, "taken@example.com", "user")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, request.RegisterRequest{
			Name:     "Second Owner",
			Email:    "Taken@Example.com",
			Password: "password123",
		}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Email is already registered")
	})

	s.Run("weak password is rejected", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, registerURL, request.RegisterRequest{
			Name:     "Weak",
			Email:    "weak@example.com",
			Password: "12345",
		}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid registration data")
	})
}

func (s *authSuite) TestLogin() {
	s.Run("valid credentials return a token", func() {
		dbtest.CreateTestUser(s.T(), s.DB, "login@example.com", "user")

		token := authtest.LoginUser(s.T(), s.Router, "login@example.com", "password123")
		s.NotEmpty(token)
	})

	s.Run("wrong password is rejected", func() {
		dbtest.CreateTestUser(s.T(), s.DB, "login@example.com", "user")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, request.LoginRequest{
			Email:    "login@example.com",
			Password: "wrong-password",
		}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("unknown email is rejected with the same message", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, request.LoginRequest{
			Email:    "nobody@example.com",
			Password: "password123",
		}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("inactive account cannot log in", func() {
		dbtest.CreateTestUser(s.T(), s.DB, "inactive@example.com", "user")
		_, err := s.DB.Exec(s.T().Context(), "UPDATE users SET is_active = false WHERE email = 'inactive@example.com'")
		require.NoError(s.T(), err)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL, request.LoginRequest{
			Email:    "inactive@example.com",
			Password: "password123",
		}, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusForbidden, "Account is inactive")
	})
}

func (s *authSuite) TestMe() {
	s.Run("requires a token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("rejects a garbage token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "not-a-jwt")
		s.Equal(http.StatusUnauthorized, w.Code)
	})

	s.Run("rejects an expired token", func() {
		userID := dbtest.CreateTestUser(s.T(), s.DB, "expired@example.com", "user")
		token := authtest.NewJWTHelper(s.Config.JWT).CreateExpiredToken(s.T(), userID, user.RoleUser)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)
		s.Equal(http.StatusUnauthorized, w.Code)
	})
}
