package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/homeworkbot/panel-api/internal/api/metrics"
	"github.com/homeworkbot/panel-api/internal/api/middleware"
	"github.com/homeworkbot/panel-api/internal/core/domain"
	"github.com/homeworkbot/panel-api/internal/core/ports"
)

// BroadcastHandler accepts fan-out requests. Authorization is the
// orchestrator's first step, so the route carries no admin middleware.
type BroadcastHandler struct {
	broadcasts ports.BroadcastService
}

func NewBroadcastHandler(broadcasts ports.BroadcastService) *BroadcastHandler {
	return &BroadcastHandler{broadcasts: broadcasts}
}

// Send handles POST /broadcast.
//
// @Summary      Broadcast a message to all unmuted users
// @Tags         broadcast
// @Accept       json
// @Produce      json
// @Param        init  query     string            true  "Telegram init-data assertion"
// @Param        body  body      broadcastRequest  true  "Scope and optional literal text"
// @Success      200   {object}  broadcastResponse
// @Failure      401   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /broadcast [post]
func (h *BroadcastHandler) Send(c echo.Context) error {
	var req broadcastRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	if req.Scope == "" {
		req.Scope = string(domain.ScopeAll)
	}

	result, err := h.broadcasts.Broadcast(c.Request().Context(), ports.BroadcastInput{
		RawInitData: middleware.RawInitData(c),
		Scope:       domain.BroadcastScope(req.Scope),
		Text:        req.Text,
	})
	if err != nil {
		return err
	}

	metrics.BroadcastsTotal.WithLabelValues(string(result.Scope)).Inc()
	metrics.BroadcastRecipients.Observe(float64(result.Sent))

	return c.JSON(http.StatusOK, broadcastResponse{
		OK:    result.Accepted,
		Sent:  result.Sent,
		Scope: string(result.Scope),
	})
}
