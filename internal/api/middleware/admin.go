package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/homeworkbot/panel-api/internal/api/metrics"
	"github.com/homeworkbot/panel-api/internal/core/domain"
)

// RequireAdmin enforces admin privilege on a route already behind
// InitData. A verified but unprivileged identity yields 403, kept
// distinct from the 401 of a missing identity.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, _ := c.Get(identityKey).(*domain.Identity)
			if identity == nil {
				return domain.ErrAuthRequired
			}
			if !identity.IsAdmin {
				metrics.AuthDecisionsTotal.WithLabelValues("forbidden").Inc()
				return domain.ErrAdminRequired
			}
			return next(c)
		}
	}
}
