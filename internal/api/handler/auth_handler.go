package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// AuthHandler answers the panel's advisory identity probe.
type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

type meResponse struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username,omitempty"`
	IsAdmin  bool   `json:"is_admin"`
}

// Me reports who the verified caller is and whether they hold admin
// privilege. Non-admin is a value here, never a failure.
//
// @Summary      Resolve the caller's identity
// @Tags         auth
// @Produce      json
// @Param        init  query     string  true  "Telegram init-data assertion"
// @Success      200   {object}  meResponse
// @Failure      401   {object}  map[string]string
// @Router       /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	identity, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, meResponse{
		UserID:   identity.UserID,
		Username: identity.Username,
		IsAdmin:  identity.IsAdmin,
	})
}
