package auth

import (
	"strings"

	"doctorsportal/cmd/internal/domain/entity"
	"doctorsportal/cmd/internal/utils/apierror"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

const identityKey = "auth.identity"

// UserStore is the lookup the admin gate needs.
type UserStore interface {
	FindByEmail(email string) (*entity.User, error)
}

// Require verifies the bearer credential on every request it wraps.
// Missing credential is 401; a present but invalid or expired one is 403.
func Require(tokens *TokenManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			raw, found := strings.CutPrefix(header, "Bearer ")
			if !found || strings.TrimSpace(raw) == "" {
				return c.JSON(apierror.MissingTokenError.Code(), apierror.MissingTokenError)
			}

			ident, err := tokens.Verify(strings.TrimSpace(raw))
			if err != nil {
				return c.JSON(apierror.InvalidTokenError.Code(), apierror.InvalidTokenError)
			}

			c.Set(identityKey, ident)
			return next(c)
		}
	}
}

// RequireAdmin gates privileged routes. It must be layered after Require.
func RequireAdmin(users UserStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ident, ok := IdentityFrom(c)
			if !ok {
				return c.JSON(apierror.MissingTokenError.Code(), apierror.MissingTokenError)
			}

			user, err := users.FindByEmail(ident.Email)
			if err != nil {
				log.Errorf("failed to check admin role for %s: %v", ident.Email, err)
				return c.JSON(apierror.InternalServerError.Code(), apierror.InternalServerError)
			}

			if user == nil || !user.IsAdmin() {
				apierr := apierror.NewForbidden("administrator role required")
				return c.JSON(apierr.Code(), apierr)
			}
			return next(c)
		}
	}
}

// IdentityFrom returns the verified identity Require stored on the
// request context.
func IdentityFrom(c echo.Context) (*Identity, bool) {
	ident, ok := c.Get(identityKey).(*Identity)
	return ident, ok
}
