//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"recruitflow/internal/domain/user"
	"recruitflow/internal/handler/dto/request"
	"recruitflow/internal/handler/dto/response"
	"recruitflow/internal/pkg/cookie"
	"recruitflow/tests/common/authtest"
	"recruitflow/tests/common/dbtest"
	"recruitflow/tests/common/httptest"
	"recruitflow/tests/e2e"

	"github.com/stretchr/testify/suite"
)

const (
	loginURL = "/api/auth/login"
	meURL    = "/api/auth/me"
)

type AuthSuite struct {
	e2e.SharedSuite
	jwtHelper *authtest.JWTHelper
}

func (s *AuthSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwtHelper = authtest.NewJWTHelper(s.Config.JWT)
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(AuthSuite))
}

func (s *AuthSuite) TestLogin() {
	s.Run("valid credentials set the token cookie", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: dbtest.AdminEmail, Password: dbtest.SeedPassword}, "")

		var body response.LoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(dbtest.AdminID, body.UserID)
		s.Equal("admin", body.Role)

		tokenCookie := httptest.ExtractCookie(rec, cookie.AccessTokenCookieName)
		s.Require().NotNil(tokenCookie)
		s.NotEmpty(tokenCookie.Value)
		s.True(tokenCookie.HttpOnly)
	})

	s.Run("wrong password is rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: dbtest.AdminEmail, Password: "wrong-password"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})

	s.Run("unknown email gets the same rejection", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
			request.LoginRequest{Email: "nobody@example.com", Password: dbtest.SeedPassword}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid email or password")
	})
}

func (s *AuthSuite) TestMe() {
	s.Run("returns the authenticated user's profile", func() {
		token := s.jwtHelper.GenerateToken(s.T(), dbtest.CandidateID, user.RoleCandidate)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)

		var body response.MeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(dbtest.CandidateID, body.ID)
		s.Equal(dbtest.CandidateEmail, body.Email)
		s.Equal("candidate", body.Role)
	})

	s.Run("expired token is rejected", func() {
		token := s.jwtHelper.CreateExpiredToken(s.T(), dbtest.CandidateID, user.RoleCandidate)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})

	s.Run("missing token is rejected", func() {
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "")
	})
}
