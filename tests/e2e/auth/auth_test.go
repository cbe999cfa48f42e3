//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	reqdto "slotbooker/internal/handler/dto/request"
	"slotbooker/internal/handler/dto/response"
	"slotbooker/tests/common/authtest"
	"slotbooker/tests/common/dbtest"
	"slotbooker/tests/common/httptest"
	"slotbooker/tests/e2e"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL = "/api/auth/login"
	statsURL = "/api/bookings/stats"
)

type AuthSuite struct {
	e2e.SharedSuite
}

func (s *AuthSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AuthSuite))
}

func (s *AuthSuite) TestLogin() {
	s.Run("Normal case: staff can log in and read protected routes", func() {
		t := s.T()

		dbtest.CreateTestCustomer(t, s.DB, "organiser@example.com", "Meera Iyer", "organiser")
		token := authtest.LoginUser(t, s.Router, "organiser@example.com", dbtest.TestPassword)

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, statsURL, nil, token)
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var stats response.BookingStatsResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &stats))
		require.Zero(t, stats.TotalBookings)
	})

	s.Run("Error case: wrong password is rejected", func() {
		t := s.T()

		dbtest.CreateTestCustomer(t, s.DB, "organiser@example.com", "Meera Iyer", "organiser")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			reqdto.LoginRequest{Email: "organiser@example.com", Password: "wrong-password"}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Error case: guests provisioned by admission cannot log in", func() {
		t := s.T()

		// Guests carry an empty password hash
		_, err := s.DB.Exec(s.T().Context(),
			"INSERT INTO customers (email, full_name, password_hash, role) VALUES ($1, $2, '', 'customer')",
			"guest@example.com", "Asha Rao")
		require.NoError(t, err)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL,
			reqdto.LoginRequest{Email: "guest@example.com", Password: dbtest.TestPassword}, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	s.Run("Error case: protected routes refuse missing or weak credentials", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, statsURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)

		// A plain customer role is not staff
		dbtest.CreateTestCustomer(t, s.DB, "customer@example.com", "Ravi Kumar", "customer")
		token := authtest.LoginUser(t, s.Router, "customer@example.com", dbtest.TestPassword)

		fw := httptest.PerformRequest(t, s.Router, http.MethodGet, statsURL, nil, token)
		require.Equal(t, http.StatusForbidden, fw.Code)
	})
}
