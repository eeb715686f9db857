package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/homeworkbot/panel-api/internal/core/domain"
	"github.com/homeworkbot/panel-api/internal/core/ports"
)

type ModeHandler struct {
	flags ports.FlagRepository
}

func NewModeHandler(flags ports.FlagRepository) *ModeHandler {
	return &ModeHandler{flags: flags}
}

// Get handles GET /modes.
//
// @Summary      Global bot switches
// @Tags         modes
// @Produce      json
// @Success      200  {object}  domain.Modes
// @Router       /modes [get]
func (h *ModeHandler) Get(c echo.Context) error {
	modes, err := h.flags.GetModes(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, modes)
}

// Set handles POST /modes (admin). Both switches are written on every
// call, so omitted fields fall back to off.
//
// @Summary      Toggle global bot switches
// @Tags         modes
// @Accept       json
// @Produce      json
// @Param        body  body      modesRequest  true  "Desired switch state"
// @Success      200   {object}  okResponse
// @Failure      403   {object}  map[string]string
// @Router       /modes [post]
func (h *ModeHandler) Set(c echo.Context) error {
	var req modesRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	modes := &domain.Modes{Vacation: req.Vacation, Maintenance: req.Maintenance}
	if err := h.flags.SetModes(c.Request().Context(), modes); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okResponse{OK: true})
}
