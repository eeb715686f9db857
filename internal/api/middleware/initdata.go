package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/homeworkbot/panel-api/internal/api/metrics"
	"github.com/homeworkbot/panel-api/internal/core/domain"
	"github.com/homeworkbot/panel-api/internal/core/ports"
)

// HeaderInitData is the fallback carrier for the assertion when the
// panel cannot use the query string.
const HeaderInitData = "X-Telegram-Init-Data"

const identityKey = "identity"

// RawInitData extracts the raw assertion from the request: the `init`
// query parameter first, the header as fallback. Empty means the caller
// presented nothing.
func RawInitData(c echo.Context) string {
	if v := c.QueryParam("init"); v != "" {
		return v
	}
	return c.Request().Header.Get(HeaderInitData)
}

// Identity returns the identity injected by InitData, or nil when the
// route is not behind it.
func Identity(c echo.Context) *domain.Identity {
	identity, _ := c.Get(identityKey).(*domain.Identity)
	return identity
}

// InitData verifies the caller's assertion and injects the resulting
// identity into the request context. Requests without a verifiable
// identity are rejected with 401; admin status is resolved but not
// enforced here (see RequireAdmin).
func InitData(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, err := auth.Identify(c.Request().Context(), RawInitData(c))
			if err != nil {
				metrics.AuthDecisionsTotal.WithLabelValues("unauthenticated").Inc()
				return err
			}
			metrics.AuthDecisionsTotal.WithLabelValues("verified").Inc()
			c.Set(identityKey, identity)
			return next(c)
		}
	}
}
