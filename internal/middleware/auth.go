package middleware

import (
	stderrors "errors"

	"github.com/prakharmi/finance-assistant/internal/errors"
	"github.com/prakharmi/finance-assistant/internal/handlers"
	"github.com/prakharmi/finance-assistant/internal/repositories"
	"github.com/prakharmi/finance-assistant/internal/services"

	"github.com/labstack/echo/v4"
)

// RequireAuth creates a middleware that requires a valid identity-provider
// access token. The first authenticated request for a subject provisions
// the local user record; concurrent first requests converge on one row via
// the subject uniqueness constraint.
func RequireAuth(tokenService services.TokenServiceInterface, userRepo repositories.UserRepositoryInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.VerifyToken(token)
			if err != nil {
				if stderrors.Is(err, services.ErrExpiredToken) {
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				return handlers.SendError(c, errors.AuthInvalidSignature)
			}

			user, err := userRepo.GetOrCreateBySubject(claims.Subject, claims.Email, claims.Name, claims.Picture)
			if err != nil {
				return handlers.SendError(c, errors.AuthUserProvisioning)
			}

			c.Set("user_id", user.ID)
			c.Set("user_email", user.Email)
			c.Set("user", user)

			return next(c)
		}
	}
}
