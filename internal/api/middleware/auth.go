package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/corphq/api/internal/core/ports"
)

// SessionAuth validates the bearer session token against the session store
// and injects the session's identity into the request context. The store's
// TTL reaper runs on its own cadence, so expiry is also checked here.
func SessionAuth(sessions ports.SessionRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			session, err := sessions.FindByToken(c.Request().Context(), parts[1])
			if err != nil {
				return err
			}
			if session == nil || !session.ExpireAt.After(time.Now().UTC()) {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			c.Set("username", session.Username)
			c.Set("role", session.UserRole)

			return next(c)
		}
	}
}
