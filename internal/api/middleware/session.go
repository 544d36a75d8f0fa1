package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/shop-catalog/internal/core/domain"
	"github.com/99minutos/shop-catalog/internal/core/ports"
)

// Session admits a request only when the token's login is still the shop's
// current user. A later login by someone else invalidates older tokens.
// Must run after Auth.
func Session(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			login, _ := c.Get(LoginKey).(string)
			if login == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			current, err := auth.CurrentUser(c.Request().Context())
			if errors.Is(err, domain.ErrNoCurrentUser) {
				return echo.NewHTTPError(http.StatusUnauthorized, "no active session")
			}
			if err != nil {
				return err
			}
			if current.Login() != login {
				return echo.NewHTTPError(http.StatusUnauthorized, "session replaced by another login")
			}

			return next(c)
		}
	}
}
