package handlers

import (
	"net/http"

	"github.com/prakharmi/finance-assistant/internal/dto"
	"github.com/prakharmi/finance-assistant/internal/errors"
	"github.com/prakharmi/finance-assistant/internal/models"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles authentication-related HTTP requests
type AuthHandler struct{}

// NewAuthHandler creates a new auth handler
func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// Me returns the authenticated user's profile
// @Summary Current user
// @Description Retrieve the profile of the authenticated user
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.UserProfileResponse "User profile"
// @Failure 401 {object} errors.ErrorResponse "AUTH_001 - Missing or invalid authentication"
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user, ok := c.Get("user").(*models.User)
	if !ok || user == nil {
		return SendError(c, errors.AuthMissingToken)
	}

	return c.JSON(http.StatusOK, dto.NewUserProfileResponse(user))
}
