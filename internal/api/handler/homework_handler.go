package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/homeworkbot/panel-api/internal/core/domain"
	"github.com/homeworkbot/panel-api/internal/core/ports"
)

type HomeworkHandler struct {
	homework ports.HomeworkRepository
}

func NewHomeworkHandler(homework ports.HomeworkRepository) *HomeworkHandler {
	return &HomeworkHandler{homework: homework}
}

type homeworkResponse struct {
	Date string `json:"date"`
	Text string `json:"text"`
}

// Get handles GET /homework?date=. A date without an entry answers with
// the placeholder text rather than 404 — the panel renders it verbatim.
//
// @Summary      Homework for a date
// @Tags         homework
// @Produce      json
// @Param        date  query     string  true  "ISO date (yyyy-mm-dd)"
// @Success      200   {object}  homeworkResponse
// @Router       /homework [get]
func (h *HomeworkHandler) Get(c echo.Context) error {
	date := c.QueryParam("date")
	if date == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "date is required")
	}

	hw, err := h.homework.FindByDate(c.Request().Context(), date)
	if err != nil {
		if errors.Is(err, domain.ErrHomeworkNotFound) {
			return c.JSON(http.StatusOK, homeworkResponse{Date: date, Text: domain.NoHomeworkText})
		}
		return err
	}
	text := hw.Text
	if text == "" {
		text = "—"
	}
	return c.JSON(http.StatusOK, homeworkResponse{Date: date, Text: text})
}

// Save handles POST /homework (admin).
//
// @Summary      Create or replace a homework entry
// @Tags         homework
// @Accept       json
// @Produce      json
// @Param        body  body      homeworkUpsertRequest  true  "Date and text"
// @Success      200   {object}  okResponse
// @Failure      403   {object}  map[string]string
// @Router       /homework [post]
func (h *HomeworkHandler) Save(c echo.Context) error {
	var req homeworkUpsertRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.homework.Upsert(c.Request().Context(), &domain.Homework{Date: req.Date, Text: req.Text}); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okResponse{OK: true})
}

// Delete handles POST /homework/delete (admin).
//
// @Summary      Delete a homework entry
// @Tags         homework
// @Accept       json
// @Produce      json
// @Param        body  body      homeworkDeleteRequest  true  "Date"
// @Success      200   {object}  okResponse
// @Failure      403   {object}  map[string]string
// @Router       /homework/delete [post]
func (h *HomeworkHandler) Delete(c echo.Context) error {
	var req homeworkDeleteRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	if err := h.homework.Delete(c.Request().Context(), req.Date); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, okResponse{OK: true})
}
