package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prakharmi/finance-assistant/internal/dto"
	"github.com/prakharmi/finance-assistant/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type AuthHandlerTestSuite struct {
	suite.Suite
	handler *AuthHandler
	echo    *echo.Echo
}

func TestAuthHandlerSuite(t *testing.T) {
	suite.Run(t, new(AuthHandlerTestSuite))
}

func (s *AuthHandlerTestSuite) SetupTest() {
	s.echo = echo.New()
	s.handler = NewAuthHandler()
}

func (s *AuthHandlerTestSuite) TestMe() {
	user := &models.User{
		ID:          uuid.New(),
		Subject:     "provider|user-123",
		Email:       gofakeit.Email(),
		DisplayName: gofakeit.Name(),
		AvatarURL:   gofakeit.URL(),
	}

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user", user)

	s.NoError(s.handler.Me(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.UserProfileResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(user.ID, response.ID)
	s.Equal(user.Email, response.Email)
	s.Equal(user.DisplayName, response.DisplayName)
	s.Equal(user.AvatarURL, response.AvatarURL)
}

func (s *AuthHandlerTestSuite) TestMe_MissingUser() {
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)

	s.NoError(s.handler.Me(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Contains(rec.Body.String(), "AUTH_001")
}

func (s *AuthHandlerTestSuite) TestMe_WrongContextType() {
	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	rec := httptest.NewRecorder()
	c := s.echo.NewContext(req, rec)
	c.Set("user", "not-a-user")

	s.NoError(s.handler.Me(c))
	s.Equal(http.StatusUnauthorized, rec.Code)
}
