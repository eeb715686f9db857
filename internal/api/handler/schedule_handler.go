package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/homeworkbot/panel-api/internal/core/domain"
	"github.com/homeworkbot/panel-api/internal/core/ports"
)

const scheduleListLimit = 10

type ScheduleHandler struct {
	schedules ports.ScheduleRepository
}

func NewScheduleHandler(schedules ports.ScheduleRepository) *ScheduleHandler {
	return &ScheduleHandler{schedules: schedules}
}

type scheduleResponse struct {
	Kind  string   `json:"kind"`
	Files []string `json:"files"`
}

// List handles GET /schedule/:kind. File ids are exposed as opaque
// telegram-file: references; the panel fetches bytes through /file/:id.
//
// @Summary      Timetable files for a kind
// @Tags         schedule
// @Produce      json
// @Param        kind  path      string  true  "Schedule kind (today, week, ...)"
// @Success      200   {object}  scheduleResponse
// @Router       /schedule/{kind} [get]
func (h *ScheduleHandler) List(c echo.Context) error {
	kind := c.Param("kind")

	files, err := h.schedules.ListByKind(c.Request().Context(), kind, scheduleListLimit)
	if err != nil {
		return err
	}

	refs := make([]string, 0, len(files))
	for _, f := range files {
		refs = append(refs, "telegram-file:"+f.FileID)
	}
	return c.JSON(http.StatusOK, scheduleResponse{Kind: kind, Files: refs})
}

// Add handles POST /schedule (admin).
//
// @Summary      Attach a timetable file to a kind
// @Tags         schedule
// @Accept       json
// @Produce      json
// @Param        body  body      scheduleAddRequest  true  "Kind and Telegram file_id"
// @Success      200   {object}  okResponse
// @Failure      403   {object}  map[string]string
// @Router       /schedule [post]
func (h *ScheduleHandler) Add(c echo.Context) error {
	var req scheduleAddRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	file := &domain.ScheduleFile{Kind: req.Kind, FileID: req.FileID}
	if err := h.schedules.Add(c.Request().Context(), file); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okResponse{OK: true})
}

// Clear handles POST /schedule/clear (admin).
//
// @Summary      Remove all timetable files of a kind
// @Tags         schedule
// @Accept       json
// @Produce      json
// @Param        body  body      scheduleClearRequest  true  "Kind"
// @Success      200   {object}  okResponse
// @Failure      403   {object}  map[string]string
// @Router       /schedule/clear [post]
func (h *ScheduleHandler) Clear(c echo.Context) error {
	var req scheduleClearRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.schedules.Clear(c.Request().Context(), req.Kind); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okResponse{OK: true})
}
