package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/homeworkbot/panel-api/internal/api/middleware"
	"github.com/homeworkbot/panel-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the InitData middleware
// and fast-fails when a handler is reached without one (the route was
// wired without the middleware, or the middleware was bypassed).
func ctxIdentity(c echo.Context) (*domain.Identity, error) {
	identity := middleware.Identity(c)
	if identity == nil {
		return nil, domain.ErrAuthRequired
	}
	return identity, nil
}
