package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/homeworkbot/panel-api/internal/core/domain"
	"github.com/homeworkbot/panel-api/internal/core/ports"
)

const (
	rebusListLimit = 100
	rebusTopLimit  = 20
)

type RebusHandler struct {
	rebuses ports.RebusRepository
}

func NewRebusHandler(rebuses ports.RebusRepository) *RebusHandler {
	return &RebusHandler{rebuses: rebuses}
}

type rebusListResponse struct {
	Items []domain.Rebus `json:"items"`
}

type rebusTopResponse struct {
	Top []domain.RebusScore `json:"top"`
}

// List handles GET /rebuses.
//
// @Summary      Newest rebus puzzles
// @Tags         rebuses
// @Produce      json
// @Success      200  {object}  rebusListResponse
// @Router       /rebuses [get]
func (h *RebusHandler) List(c echo.Context) error {
	items, err := h.rebuses.List(c.Request().Context(), rebusListLimit)
	if err != nil {
		return err
	}
	if items == nil {
		items = []domain.Rebus{}
	}
	return c.JSON(http.StatusOK, rebusListResponse{Items: items})
}

// Top handles GET /rebuses/top.
//
// @Summary      Rebus leaderboard
// @Tags         rebuses
// @Produce      json
// @Success      200  {object}  rebusTopResponse
// @Router       /rebuses/top [get]
func (h *RebusHandler) Top(c echo.Context) error {
	top, err := h.rebuses.TopScores(c.Request().Context(), rebusTopLimit)
	if err != nil {
		return err
	}
	if top == nil {
		top = []domain.RebusScore{}
	}
	return c.JSON(http.StatusOK, rebusTopResponse{Top: top})
}
