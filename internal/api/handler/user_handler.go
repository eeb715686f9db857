package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/homeworkbot/panel-api/internal/core/domain"
	"github.com/homeworkbot/panel-api/internal/core/ports"
)

const userListLimit = 100

type UserHandler struct {
	users ports.UserRepository
}

func NewUserHandler(users ports.UserRepository) *UserHandler {
	return &UserHandler{users: users}
}

type usersResponse struct {
	Users []domain.User `json:"users"`
}

type userResponse struct {
	User *domain.User `json:"user"`
}

// List handles GET /users.
//
// @Summary      Latest known users
// @Tags         users
// @Produce      json
// @Success      200  {object}  usersResponse
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.users.List(c.Request().Context(), userListLimit)
	if err != nil {
		return err
	}
	if users == nil {
		users = []domain.User{}
	}
	return c.JSON(http.StatusOK, usersResponse{Users: users})
}

// Get handles GET /users/:id. An unknown id answers `{"user": null}`
// rather than 404 — the panel relies on it.
//
// @Summary      Single user by id
// @Tags         users
// @Produce      json
// @Param        id   path      int  true  "Telegram user id"
// @Success      200  {object}  userResponse
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	var userID int64
	if err := echo.PathParamsBinder(c).Int64("id", &userID).BindError(); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	user, err := h.users.FindByID(c.Request().Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return c.JSON(http.StatusOK, userResponse{User: nil})
		}
		return err
	}
	return c.JSON(http.StatusOK, userResponse{User: user})
}

// Block handles POST /users/block (admin): the user stops receiving
// broadcasts. Unknown ids are created muted.
//
// @Summary      Mute a user for broadcasts
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      userIDRequest  true  "Telegram user id"
// @Success      200   {object}  okResponse
// @Failure      403   {object}  map[string]string
// @Router       /users/block [post]
func (h *UserHandler) Block(c echo.Context) error {
	return h.setMuted(c, true)
}

// Unblock handles POST /users/unblock (admin).
//
// @Summary      Unmute a user for broadcasts
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      userIDRequest  true  "Telegram user id"
// @Success      200   {object}  okResponse
// @Failure      403   {object}  map[string]string
// @Router       /users/unblock [post]
func (h *UserHandler) Unblock(c echo.Context) error {
	return h.setMuted(c, false)
}

func (h *UserHandler) setMuted(c echo.Context, muted bool) error {
	var req userIDRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.users.SetMuted(c.Request().Context(), req.UserID, muted); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okResponse{OK: true})
}
