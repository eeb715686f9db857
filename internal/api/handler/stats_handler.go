package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/homeworkbot/panel-api/internal/core/ports"
)

const (
	statsClickWindow = 14 * 24 * time.Hour
	statsClickLimit  = 8
)

type StatsHandler struct {
	users    ports.UserRepository
	homework ports.HomeworkRepository
	rebuses  ports.RebusRepository
	events   ports.EventRepository
	logger   zerolog.Logger
}

func NewStatsHandler(
	users ports.UserRepository,
	homework ports.HomeworkRepository,
	rebuses ports.RebusRepository,
	events ports.EventRepository,
	logger zerolog.Logger,
) *StatsHandler {
	return &StatsHandler{
		users:    users,
		homework: homework,
		rebuses:  rebuses,
		events:   events,
		logger:   logger,
	}
}

// statsResponse renders topClicks as [text, count] pairs, the shape the
// panel chart expects.
type statsResponse struct {
	Users     int64    `json:"users"`
	Homework  int64    `json:"homework"`
	Rebuses   int64    `json:"rebuses"`
	Sessions  int64    `json:"sessions"`
	TopClicks [][2]any `json:"topClicks"`
}

// Get handles GET /stats (admin).
//
// @Summary      Dashboard counters and click leaderboard
// @Tags         stats
// @Produce      json
// @Success      200  {object}  statsResponse
// @Failure      403  {object}  map[string]string
// @Router       /stats [get]
func (h *StatsHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	users, err := h.users.Count(ctx)
	if err != nil {
		return err
	}
	homework, err := h.homework.Count(ctx)
	if err != nil {
		return err
	}
	rebuses, err := h.rebuses.Count(ctx)
	if err != nil {
		return err
	}
	sessions, err := h.rebuses.SessionCount(ctx)
	if err != nil {
		return err
	}

	resp := statsResponse{
		Users:     users,
		Homework:  homework,
		Rebuses:   rebuses,
		Sessions:  sessions,
		TopClicks: [][2]any{},
	}

	// The click leaderboard is decorative; a broken aggregate must not
	// take the whole dashboard down.
	since := time.Now().Add(-statsClickWindow)
	clicks, err := h.events.TopTexts(ctx, since, statsClickLimit)
	if err != nil {
		h.logger.Warn().Err(err).Msg("stats: click aggregate failed")
	} else {
		for _, click := range clicks {
			resp.TopClicks = append(resp.TopClicks, [2]any{click.Text, click.Count})
		}
	}

	return c.JSON(http.StatusOK, resp)
}
